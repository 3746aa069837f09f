package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"teampulse/internal/model"
	"teampulse/internal/service"
	"teampulse/internal/transport/rest/middleware"
)

// stubAnswerRepo fails every write when err is set.
type stubAnswerRepo struct {
	err error
}

func (s *stubAnswerRepo) Create(ctx context.Context, answer *model.Answer) error {
	return s.err
}

func (s *stubAnswerRepo) CreateMany(ctx context.Context, answers []*model.Answer) error {
	return s.err
}

func (s *stubAnswerRepo) FetchAnswers(ctx context.Context, userID string, start, end time.Time) ([]model.Answer, error) {
	return nil, s.err
}

func (s *stubAnswerRepo) LastAnswerTime(ctx context.Context, userID string) (*time.Time, error) {
	return nil, s.err
}

type stubStreakCache struct{}

func (stubStreakCache) Bump(ctx context.Context, userID, day string) (int64, error) {
	return 1, nil
}

func (stubStreakCache) Get(ctx context.Context, userID string) (int64, error) {
	return 1, nil
}

func newSubmitRequest(t *testing.T, answers []service.AnswerSubmission) *http.Request {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{"answers": answers})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/v1/checkins/answers", bytes.NewReader(body))
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, "u1")
	return req.WithContext(ctx)
}

func TestSubmitAnswersStoreOutageIsServerError(t *testing.T) {
	repo := &stubAnswerRepo{err: errors.New("write concern timeout")}
	answerSvc := service.NewAnswerService(repo, stubStreakCache{}, service.NewWellnessService(repo))
	h := NewCheckinHandler(nil, answerSvc, nil)

	rec := httptest.NewRecorder()
	h.SubmitAnswers(rec, newSubmitRequest(t, []service.AnswerSubmission{
		{Dimension: "mood", Value: 7},
	}))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp["error"] != "failed to store answers" {
		t.Errorf("error = %q, want the generic store message", resp["error"])
	}
}

func TestSubmitAnswersValidationIsBadRequest(t *testing.T) {
	repo := &stubAnswerRepo{}
	answerSvc := service.NewAnswerService(repo, stubStreakCache{}, service.NewWellnessService(repo))
	h := NewCheckinHandler(nil, answerSvc, nil)

	rec := httptest.NewRecorder()
	h.SubmitAnswers(rec, newSubmitRequest(t, []service.AnswerSubmission{
		{Dimension: "mood", Value: 0},
	}))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
