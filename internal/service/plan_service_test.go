package service

import (
	"testing"
	"time"

	"teampulse/internal/model"
)

func planIDs(items []model.PlanItem) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

func TestBuildDailyPlanWithoutMetrics(t *testing.T) {
	tuesday := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	items := buildDailyPlan(nil, model.DefaultGoals(), tuesday)

	if len(items) != 4 {
		t.Fatalf("got %d items, want 4: %v", len(items), planIDs(items))
	}
	want := []string{"movement", "hydrate", "gratitude", "social_connect"}
	for i, id := range want {
		if items[i].ID != id {
			t.Errorf("item %d = %s, want %s", i, items[i].ID, id)
		}
	}
	if items[0].DurationMinutes != model.DefaultGoals().MoveTarget {
		t.Errorf("movement duration = %d, want %d", items[0].DurationMinutes, model.DefaultGoals().MoveTarget)
	}
}

func TestBuildDailyPlanMondayPlanning(t *testing.T) {
	monday := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	items := buildDailyPlan(nil, model.DefaultGoals(), monday)

	if len(items) != 4 {
		t.Fatalf("got %d items, want 4: %v", len(items), planIDs(items))
	}
	if items[1].ID != "monday_planning" {
		t.Errorf("item 1 = %s, want monday_planning", items[1].ID)
	}
}

func TestBuildDailyPlanCrisis(t *testing.T) {
	m := &model.MetricsSnapshot{
		WHO5:            30,
		PHQ9:            16,
		GAD7:            16,
		Burnout:         80,
		SleepHours:      5,
		WorkLifeBalance: 2,
		StressLevel:     30,
	}
	tuesday := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	items := buildDailyPlan(m, model.DefaultGoals(), tuesday)

	if len(items) != 6 {
		t.Fatalf("got %d items, want 6: %v", len(items), planIDs(items))
	}
	if items[0].ID != "multi_crisis" {
		t.Errorf("item 0 = %s, want multi_crisis", items[0].ID)
	}

	perCategory := make(map[string]int)
	seen := make(map[string]bool)
	for _, item := range items {
		if seen[item.ID] {
			t.Errorf("duplicate item %s", item.ID)
		}
		seen[item.ID] = true
		perCategory[item.Category]++
	}
	for cat, n := range perCategory {
		if n > 2 {
			t.Errorf("category %s has %d items, want at most 2", cat, n)
		}
	}
}

func TestBuildDailyPlanModerate(t *testing.T) {
	m := &model.MetricsSnapshot{
		WHO5:            55,
		PHQ9:            8,
		GAD7:            7,
		Burnout:         55,
		SleepHours:      6.8,
		WorkLifeBalance: 5,
		StressLevel:     18,
	}
	tuesday := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	items := buildDailyPlan(m, model.DefaultGoals(), tuesday)

	if len(items) != 5 {
		t.Fatalf("got %d items, want 5: %v", len(items), planIDs(items))
	}
	seen := make(map[string]bool)
	for _, item := range items {
		seen[item.ID] = true
	}
	if !seen["burnout_creeping"] {
		t.Errorf("expected burnout_creeping in %v", planIDs(items))
	}
}
