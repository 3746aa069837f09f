package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"teampulse/internal/model"
)

// seedWeek writes one answer per dimension per day for the 7 days
// ending daysAgo days before now.
func seedWeek(repo *fakeAnswerRepo, userID string, daysAgo int, values map[model.Dimension]int) {
	now := time.Now().UTC()
	for day := 0; day < 7; day++ {
		at := now.Add(-time.Duration(daysAgo+day)*24*time.Hour - time.Hour)
		for dim, v := range values {
			repo.answers = append(repo.answers, model.Answer{
				ID:        uuid.NewString(),
				UserID:    userID,
				Dimension: dim,
				Value:     v,
				CreatedAt: at,
			})
		}
	}
}

func TestGetMetricsNotEnoughData(t *testing.T) {
	repo := &fakeAnswerRepo{}
	svc := NewWellnessService(repo)

	report, err := svc.GetMetrics(context.Background(), "u1", 7)
	if err != nil {
		t.Fatalf("GetMetrics: %v", err)
	}
	if report != nil {
		t.Errorf("expected nil report without data, got %+v", report)
	}
}

func TestGetMetricsWithRisk(t *testing.T) {
	repo := &fakeAnswerRepo{}
	svc := NewWellnessService(repo)
	seedWeek(repo, "u1", 0, map[model.Dimension]int{
		model.DimMood:   8,
		model.DimEnergy: 7,
		model.DimStress: 3,
	})

	report, err := svc.GetMetrics(context.Background(), "u1", 7)
	if err != nil {
		t.Fatalf("GetMetrics: %v", err)
	}
	if report == nil {
		t.Fatal("expected a report, got nil")
	}
	if report.Metrics.WHO5 != 75 {
		t.Errorf("WHO5 = %v, want 75", report.Metrics.WHO5)
	}
	if report.Risk == "" {
		t.Error("missing risk tier")
	}
}

func TestGetEarlySignalNoHistory(t *testing.T) {
	repo := &fakeAnswerRepo{}
	svc := NewWellnessService(repo)

	signal, err := svc.GetEarlySignal(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetEarlySignal: %v", err)
	}
	if signal != nil {
		t.Errorf("expected nil signal without history, got %+v", signal)
	}
}

func TestGetSelfBenchmarkDeltas(t *testing.T) {
	repo := &fakeAnswerRepo{}
	svc := NewWellnessService(repo)

	// previous week was worse than the current one
	seedWeek(repo, "u1", 0, map[model.Dimension]int{
		model.DimMood:   8,
		model.DimEnergy: 6,
		model.DimStress: 4,
	})
	seedWeek(repo, "u1", 7, map[model.Dimension]int{
		model.DimMood:   6,
		model.DimEnergy: 6,
		model.DimStress: 6,
	})

	benchmark, err := svc.GetSelfBenchmark(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetSelfBenchmark: %v", err)
	}
	if benchmark == nil {
		t.Fatal("expected a benchmark, got nil")
	}
	if benchmark.Previous == nil || benchmark.Deltas == nil {
		t.Fatal("expected previous window and deltas")
	}

	// WHO-5: 70 now vs 60 last week
	if math.Abs(benchmark.Deltas.WHO5-10) > 1e-6 {
		t.Errorf("WHO5 delta = %v, want 10", benchmark.Deltas.WHO5)
	}
	// stress level: 16 now vs 24 last week
	if math.Abs(benchmark.Deltas.StressLevel-(-8)) > 1e-6 {
		t.Errorf("StressLevel delta = %v, want -8", benchmark.Deltas.StressLevel)
	}
}

func TestGetSelfBenchmarkWithoutPreviousWeek(t *testing.T) {
	repo := &fakeAnswerRepo{}
	svc := NewWellnessService(repo)
	seedWeek(repo, "u1", 0, map[model.Dimension]int{
		model.DimMood:   7,
		model.DimEnergy: 7,
		model.DimStress: 4,
	})

	benchmark, err := svc.GetSelfBenchmark(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetSelfBenchmark: %v", err)
	}
	if benchmark == nil {
		t.Fatal("expected a benchmark, got nil")
	}
	if benchmark.Previous != nil || benchmark.Deltas != nil {
		t.Errorf("expected no previous window, got %+v / %+v", benchmark.Previous, benchmark.Deltas)
	}
}

func TestWellnessOperationsPropagateStoreErrors(t *testing.T) {
	storeErr := errors.New("answer store unavailable")
	repo := &fakeAnswerRepo{err: storeErr}
	svc := NewWellnessService(repo)
	ctx := context.Background()

	if _, err := svc.GetMetrics(ctx, "u1", 7); !errors.Is(err, storeErr) {
		t.Errorf("GetMetrics error = %v, want %v", err, storeErr)
	}
	if _, err := svc.GetRollingScore(ctx, "u1", 14); !errors.Is(err, storeErr) {
		t.Errorf("GetRollingScore error = %v, want %v", err, storeErr)
	}
	if _, err := svc.GetEarlySignal(ctx, "u1"); !errors.Is(err, storeErr) {
		t.Errorf("GetEarlySignal error = %v, want %v", err, storeErr)
	}
	if _, err := svc.GetCorrelations(ctx, "u1"); !errors.Is(err, storeErr) {
		t.Errorf("GetCorrelations error = %v, want %v", err, storeErr)
	}
	if _, err := svc.GetSelfBenchmark(ctx, "u1"); !errors.Is(err, storeErr) {
		t.Errorf("GetSelfBenchmark error = %v, want %v", err, storeErr)
	}
	if _, err := svc.GetQuestionPriorities(ctx, "u1"); !errors.Is(err, storeErr) {
		t.Errorf("GetQuestionPriorities error = %v, want %v", err, storeErr)
	}
	if _, err := svc.NeedsSupport(ctx, "u1"); !errors.Is(err, storeErr) {
		t.Errorf("NeedsSupport error = %v, want %v", err, storeErr)
	}
}

func TestGetRollingScoreEmpty(t *testing.T) {
	repo := &fakeAnswerRepo{}
	svc := NewWellnessService(repo)

	score, err := svc.GetRollingScore(context.Background(), "u1", 14)
	if err != nil {
		t.Fatalf("GetRollingScore: %v", err)
	}
	if score.Total != 0 || score.WindowDays != 14 {
		t.Errorf("score = %+v, want zero total over 14 days", score)
	}
}
