package engine

import (
	"strings"
	"testing"
	"time"

	"teampulse/internal/model"
)

func TestCorrelationInsightsSleepDrivesMood(t *testing.T) {
	var days []map[model.Dimension]float64
	for i := 0; i < 10; i++ {
		v := float64(3 + i%5)
		days = append(days, map[model.Dimension]float64{
			model.DimSleep: v,
			model.DimMood:  v,
		})
	}

	insights := CorrelationInsights(series(days))
	if len(insights) != 1 {
		t.Fatalf("expected 1 insight, got %d: %+v", len(insights), insights)
	}
	if insights[0].Type != "sleep_mood" {
		t.Errorf("Type = %q, want sleep_mood", insights[0].Type)
	}
	if !almostEqual(insights[0].Strength, 1) {
		t.Errorf("Strength = %v, want 1", insights[0].Strength)
	}
	if !strings.Contains(insights[0].Description, "sleep") {
		t.Errorf("Description %q does not mention sleep", insights[0].Description)
	}
}

func TestCorrelationInsightsConstantSeriesIsQuiet(t *testing.T) {
	days := steadyDays(10, map[model.Dimension]float64{
		model.DimSleep:      7,
		model.DimMood:       7,
		model.DimStress:     4,
		model.DimFocus:      6,
		model.DimEnergy:     6,
		model.DimMotivation: 6,
		model.DimWorkload:   5,
	})

	if insights := CorrelationInsights(series(days)); len(insights) != 0 {
		t.Errorf("expected no insights for constant series, got %+v", insights)
	}
}

func TestCorrelationInsightsWorkloadStress(t *testing.T) {
	var days []map[model.Dimension]float64
	for i := 0; i < 10; i++ {
		workload := float64(3 + i%6)
		days = append(days, map[model.Dimension]float64{
			model.DimWorkload: workload,
			model.DimStress:   workload - 1,
		})
	}

	insights := CorrelationInsights(series(days))
	if len(insights) != 1 {
		t.Fatalf("expected 1 insight, got %d: %+v", len(insights), insights)
	}
	if insights[0].Type != "workload_burnout" {
		t.Errorf("Type = %q, want workload_burnout", insights[0].Type)
	}
	if insights[0].Strength <= 0.6 {
		t.Errorf("Strength = %v, want above the workload threshold", insights[0].Strength)
	}
}

func TestCorrelationInsightsNegativeStressFocus(t *testing.T) {
	var days []map[model.Dimension]float64
	for i := 0; i < 10; i++ {
		stress := float64(2 + i%7)
		days = append(days, map[model.Dimension]float64{
			model.DimStress: stress,
			model.DimFocus:  10 - stress,
		})
	}

	insights := CorrelationInsights(series(days))
	if len(insights) != 1 {
		t.Fatalf("expected 1 insight, got %d: %+v", len(insights), insights)
	}
	if insights[0].Type != "stress_concentration" {
		t.Errorf("Type = %q, want stress_concentration", insights[0].Type)
	}
	if insights[0].Strength >= 0 {
		t.Errorf("Strength = %v, want negative", insights[0].Strength)
	}
}

func TestDayOfWeekInsightAlwaysEmitsWithData(t *testing.T) {
	monday := time.Date(2026, 8, 3, 10, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	answers := []model.Answer{
		answerAt(model.DimMood, 9, monday),
		answerAt(model.DimMood, 9, monday.AddDate(0, 0, 7)),
		answerAt(model.DimMood, 3, tuesday),
		answerAt(model.DimMood, 3, tuesday.AddDate(0, 0, 7)),
	}

	insight := DayOfWeekInsight(answers)
	if insight == nil {
		t.Fatal("expected an insight, got nil")
	}
	if insight.Type != "day_of_week" {
		t.Errorf("Type = %q, want day_of_week", insight.Type)
	}
	if insight.Strength != 1.0 {
		t.Errorf("Strength = %v, want 1.0", insight.Strength)
	}
	if !strings.Contains(insight.Description, "Monday") || !strings.Contains(insight.Description, "Tuesday") {
		t.Errorf("Description %q should name Monday as best and Tuesday as toughest", insight.Description)
	}
}

func TestDayOfWeekInsightNoData(t *testing.T) {
	if insight := DayOfWeekInsight(nil); insight != nil {
		t.Errorf("expected nil without answers, got %+v", insight)
	}
}
