package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"teampulse/internal/cache"
	"teampulse/internal/model"
	"teampulse/internal/repository"
)

var (
	ErrNoAnswers        = errors.New("no answers submitted")
	ErrUnknownDimension = errors.New("unknown dimension")
	ErrValueOutOfRange  = errors.New("value must be between 1 and 10")
	ErrEmptyText        = errors.New("text answer must not be empty")
)

// AnswerSubmission is one answered question from a check-in.
type AnswerSubmission struct {
	QuestionID int    `json:"questionId"`
	Dimension  string `json:"dimension"`
	Value      int    `json:"value,omitempty"`
	Text       string `json:"text,omitempty"`
}

// AnswerService validates and stores submitted check-in answers,
// bumps the streak, and notifies the admin feed. A fired early signal
// is re-evaluated after each submission so admins hear about it the
// moment the detector trips.
type AnswerService struct {
	answerRepo  repository.AnswerRepo
	streaks     cache.StreakCache
	wellness    *WellnessService
	broadcaster Broadcaster
}

// NewAnswerService creates a new answer service
func NewAnswerService(answerRepo repository.AnswerRepo, streaks cache.StreakCache, wellness *WellnessService) *AnswerService {
	return &AnswerService{
		answerRepo: answerRepo,
		streaks:    streaks,
		wellness:   wellness,
	}
}

// SetBroadcaster attaches the live feed. Wired after construction
// because the hub and the services are built in the same assembly step.
func (s *AnswerService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// SubmitResult is what the client gets back after a submission.
type SubmitResult struct {
	Stored int   `json:"stored"`
	Streak int64 `json:"streak"`
}

// Submit validates and persists a batch of answers for the user.
// The batch is all-or-nothing: one invalid answer rejects the lot.
func (s *AnswerService) Submit(ctx context.Context, userID string, submissions []AnswerSubmission) (*SubmitResult, error) {
	if len(submissions) == 0 {
		return nil, ErrNoAnswers
	}

	now := time.Now().UTC()
	answers := make([]*model.Answer, 0, len(submissions))
	for i, sub := range submissions {
		dim, ok := model.ParseDimension(sub.Dimension)
		if !ok {
			return nil, fmt.Errorf("answer %d: %w: %q", i, ErrUnknownDimension, sub.Dimension)
		}

		answer := &model.Answer{
			ID:         uuid.NewString(),
			UserID:     userID,
			QuestionID: sub.QuestionID,
			Dimension:  dim,
			CreatedAt:  now,
		}
		if dim.IsNumeric() {
			if sub.Value < 1 || sub.Value > 10 {
				return nil, fmt.Errorf("answer %d: %w", i, ErrValueOutOfRange)
			}
			answer.Value = sub.Value
		} else {
			if strings.TrimSpace(sub.Text) == "" {
				return nil, fmt.Errorf("answer %d: %w", i, ErrEmptyText)
			}
			answer.Text = strings.TrimSpace(sub.Text)
		}
		answers = append(answers, answer)
	}

	if err := s.answerRepo.CreateMany(ctx, answers); err != nil {
		return nil, err
	}

	day := now.Format("2006-01-02")
	streak, err := s.streaks.Bump(ctx, userID, day)
	if err != nil {
		// the streak counter is best effort
		streak = 0
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastCheckinReceived(userID, len(answers))
		if signal, err := s.wellness.GetEarlySignal(ctx, userID); err == nil && signal != nil {
			s.broadcaster.BroadcastEarlySignal(userID, *signal)
		}
	}

	return &SubmitResult{Stored: len(answers), Streak: streak}, nil
}

// Streak returns the user's current consecutive-day streak.
func (s *AnswerService) Streak(ctx context.Context, userID string) (int64, error) {
	return s.streaks.Get(ctx, userID)
}
