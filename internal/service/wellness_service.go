package service

import (
	"context"
	"time"

	"teampulse/internal/engine"
	"teampulse/internal/model"
	"teampulse/internal/repository"
)

// Lookback windows for the analytical queries.
const (
	signalLookbackDays      = 28
	correlationLookbackDays = 30
	dayPatternLookbackDays  = 60
	benchmarkWindowDays     = 7
)

// WellnessService runs the behavioral signal engine over a user's
// answer history. Every result is recomputed from the store on each
// call; the service holds no state beyond its repository, so concurrent
// queries need no coordination. Store read failures propagate untouched;
// "not enough data" comes back as a nil result, never an error.
type WellnessService struct {
	answerRepo repository.AnswerRepo
}

// NewWellnessService creates a new wellness service
func NewWellnessService(answerRepo repository.AnswerRepo) *WellnessService {
	return &WellnessService{answerRepo: answerRepo}
}

// GetMetrics computes the period's MetricsSnapshot and its risk tier.
// Returns nil when the minimum sample gate fails.
func (s *WellnessService) GetMetrics(ctx context.Context, userID string, periodDays int) (*model.MetricsReport, error) {
	now := time.Now().UTC()
	answers, err := s.answerRepo.FetchAnswers(ctx, userID, now.AddDate(0, 0, -periodDays), now)
	if err != nil {
		return nil, err
	}

	snapshot := engine.ComputeMetrics(answers)
	if snapshot == nil {
		return nil, nil
	}
	return &model.MetricsReport{
		Metrics: *snapshot,
		Risk:    engine.ClassifyRisk(*snapshot),
	}, nil
}

// GetRollingScore returns the decay-weighted wellbeing scalar for the
// trailing window. Always defined, zero when the window is empty.
func (s *WellnessService) GetRollingScore(ctx context.Context, userID string, windowDays int) (model.RollingScore, error) {
	now := time.Now().UTC()
	answers, err := s.answerRepo.FetchAnswers(ctx, userID, now.AddDate(0, 0, -windowDays), now)
	if err != nil {
		return model.RollingScore{WindowDays: windowDays}, err
	}
	return engine.ComputeRollingScore(answers, now, windowDays), nil
}

// GetEarlySignal runs the recent-vs-baseline detector over the last 28
// days. Returns nil when the gates are unmet.
func (s *WellnessService) GetEarlySignal(ctx context.Context, userID string) (*model.EarlySignal, error) {
	now := time.Now().UTC()
	answers, err := s.answerRepo.FetchAnswers(ctx, userID, now.AddDate(0, 0, -signalLookbackDays), now)
	if err != nil {
		return nil, err
	}
	return engine.DetectEarlySignal(engine.AggregateDaily(answers)), nil
}

// GetCorrelations surfaces the strong pairwise correlations over the
// last 30 days plus the day-of-week pattern over the last 60.
func (s *WellnessService) GetCorrelations(ctx context.Context, userID string) ([]model.CorrelationInsight, error) {
	now := time.Now().UTC()
	answers, err := s.answerRepo.FetchAnswers(ctx, userID, now.AddDate(0, 0, -dayPatternLookbackDays), now)
	if err != nil {
		return nil, err
	}

	pairStart := now.AddDate(0, 0, -correlationLookbackDays)
	var recent []model.Answer
	for _, a := range answers {
		if !a.CreatedAt.Before(pairStart) {
			recent = append(recent, a)
		}
	}

	insights := engine.CorrelationInsights(engine.AggregateDaily(recent))
	if dow := engine.DayOfWeekInsight(answers); dow != nil {
		insights = append(insights, *dow)
	}
	return insights, nil
}

// GetQuestionPriorities ranks the dimensions worth asking about next,
// from the last 3 days of answers.
func (s *WellnessService) GetQuestionPriorities(ctx context.Context, userID string) ([]model.Dimension, error) {
	pattern, err := s.recentPattern(ctx, userID)
	if err != nil {
		return nil, err
	}
	return engine.PrioritizeQuestions(pattern), nil
}

// NeedsSupport reports whether the recent pattern warrants supportive
// framing in the next check-in.
func (s *WellnessService) NeedsSupport(ctx context.Context, userID string) (bool, error) {
	pattern, err := s.recentPattern(ctx, userID)
	if err != nil {
		return false, err
	}
	return engine.NeedsSupport(pattern), nil
}

// GetSelfBenchmark compares the current 7-day metrics window against
// the previous one. Returns nil when the current window is gated.
func (s *WellnessService) GetSelfBenchmark(ctx context.Context, userID string) (*model.SelfBenchmark, error) {
	now := time.Now().UTC()

	currentAnswers, err := s.answerRepo.FetchAnswers(ctx, userID, now.AddDate(0, 0, -benchmarkWindowDays), now)
	if err != nil {
		return nil, err
	}
	current := engine.ComputeMetrics(currentAnswers)
	if current == nil {
		return nil, nil
	}

	prevAnswers, err := s.answerRepo.FetchAnswers(ctx, userID,
		now.AddDate(0, 0, -2*benchmarkWindowDays), now.AddDate(0, 0, -benchmarkWindowDays))
	if err != nil {
		return nil, err
	}
	previous := engine.ComputeMetrics(prevAnswers)

	benchmark := &model.SelfBenchmark{Current: *current, Previous: previous}
	if previous != nil {
		benchmark.Deltas = &model.BenchmarkDeltas{
			WHO5:            current.WHO5 - previous.WHO5,
			PHQ9:            current.PHQ9 - previous.PHQ9,
			GAD7:            current.GAD7 - previous.GAD7,
			Burnout:         current.Burnout - previous.Burnout,
			SleepHours:      current.SleepHours - previous.SleepHours,
			WorkLifeBalance: current.WorkLifeBalance - previous.WorkLifeBalance,
			StressLevel:     current.StressLevel - previous.StressLevel,
		}
	}
	return benchmark, nil
}

func (s *WellnessService) recentPattern(ctx context.Context, userID string) (map[model.Dimension]float64, error) {
	now := time.Now().UTC()
	answers, err := s.answerRepo.FetchAnswers(ctx, userID, now.AddDate(0, 0, -engine.PatternDays), now)
	if err != nil {
		return nil, err
	}
	return engine.AveragePattern(answers), nil
}
