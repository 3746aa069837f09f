package engine

import (
	"testing"
	"time"

	"teampulse/internal/model"
)

// series builds an ascending daily series where values[i] supplies day i.
func series(values []map[model.Dimension]float64) []DailyAggregate {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	daily := make([]DailyAggregate, 0, len(values))
	for i, v := range values {
		daily = append(daily, DailyAggregate{
			Day:    base.AddDate(0, 0, i),
			Values: v,
		})
	}
	return daily
}

func steadyDays(n int, values map[model.Dimension]float64) []map[model.Dimension]float64 {
	out := make([]map[model.Dimension]float64, n)
	for i := range out {
		day := make(map[model.Dimension]float64, len(values))
		for dim, v := range values {
			day[dim] = v
		}
		out[i] = day
	}
	return out
}

var calmDay = map[model.Dimension]float64{
	model.DimStress:   4,
	model.DimMood:     7,
	model.DimEnergy:   6,
	model.DimSleep:    7,
	model.DimWorkload: 5,
}

func TestDetectEarlySignalNeedsTenDays(t *testing.T) {
	days := steadyDays(9, map[model.Dimension]float64{
		model.DimStress: 9,
		model.DimMood:   2,
	})
	if s := DetectEarlySignal(series(days)); s != nil {
		t.Errorf("expected nil with 9 days of history, got %+v", s)
	}
}

func TestDetectEarlySignalStablePatternStaysQuiet(t *testing.T) {
	days := steadyDays(20, calmDay)
	if s := DetectEarlySignal(series(days)); s != nil {
		t.Errorf("expected nil for a flat series, got %+v", s)
	}
}

func TestDetectEarlySignalSingleIndicatorStaysQuiet(t *testing.T) {
	days := steadyDays(15, calmDay)
	// stress spikes in the last week, everything else flat
	for i := 8; i < 15; i++ {
		days[i][model.DimStress] = 6
	}
	if s := DetectEarlySignal(series(days)); s != nil {
		t.Errorf("expected nil with only one indicator firing, got %+v", s)
	}
}

func TestDetectEarlySignalStressSpikeWithMoodDrop(t *testing.T) {
	days := steadyDays(15, calmDay)
	for i := 8; i < 15; i++ {
		days[i][model.DimStress] = 6   // +2.0 vs baseline
		days[i][model.DimMood] = 5.5   // -1.5 vs baseline
	}

	signal := DetectEarlySignal(series(days))
	if signal == nil {
		t.Fatal("expected a signal, got nil")
	}

	if signal.Level != model.SignalAlert {
		t.Errorf("Level = %v, want %v", signal.Level, model.SignalAlert)
	}
	wantIndicators := map[string]bool{
		"stress spike vs baseline": false,
		"mood drop":                false,
	}
	for _, ind := range signal.Indicators {
		if _, ok := wantIndicators[ind]; ok {
			wantIndicators[ind] = true
		}
	}
	for ind, seen := range wantIndicators {
		if !seen {
			t.Errorf("missing indicator %q in %v", ind, signal.Indicators)
		}
	}

	if signal.Deltas.Stress == nil || !almostEqual(*signal.Deltas.Stress, 2) {
		t.Errorf("stress delta = %v, want 2", signal.Deltas.Stress)
	}
	if signal.Deltas.Mood == nil || !almostEqual(*signal.Deltas.Mood, -1.5) {
		t.Errorf("mood delta = %v, want -1.5", signal.Deltas.Mood)
	}

	// 15 days of history out of the 21 that earn full confidence
	if !almostEqual(signal.Confidence, 15.0/21.0) {
		t.Errorf("Confidence = %v, want %v", signal.Confidence, 15.0/21.0)
	}
}

func TestDetectEarlySignalThinBaselineStaysQuiet(t *testing.T) {
	// 11 days leaves only 4 baseline days after the 7-day recent window
	days := steadyDays(11, calmDay)
	for i := 4; i < 11; i++ {
		days[i][model.DimStress] = 8
		days[i][model.DimMood] = 3
	}
	if s := DetectEarlySignal(series(days)); s != nil {
		t.Errorf("expected nil with a 4-day baseline, got %+v", s)
	}
}

func TestDetectEarlySignalShortHistoryConfidence(t *testing.T) {
	days := steadyDays(12, calmDay)
	for i := 5; i < 12; i++ {
		days[i][model.DimStress] = 6.5
		days[i][model.DimMood] = 5
		days[i][model.DimEnergy] = 4.5
	}

	signal := DetectEarlySignal(series(days))
	if signal == nil {
		t.Fatal("expected a signal, got nil")
	}
	if !almostEqual(signal.Confidence, 12.0/21.0) {
		t.Errorf("Confidence = %v, want %v", signal.Confidence, 12.0/21.0)
	}
	if signal.Confidence < confidenceFloor {
		t.Errorf("Confidence = %v, below the floor %v", signal.Confidence, confidenceFloor)
	}
}

func TestDetectEarlySignalSustainedDeterioration(t *testing.T) {
	days := steadyDays(25, calmDay)
	for i := 18; i < 25; i++ {
		days[i][model.DimStress] = 6.5  // spike
		days[i][model.DimMood] = 5      // drop
		days[i][model.DimEnergy] = 4.5  // decrease
		days[i][model.DimSleep] = 5.5   // quality drop
		days[i][model.DimWorkload] = 7  // spike
	}

	signal := DetectEarlySignal(series(days))
	if signal == nil {
		t.Fatal("expected a signal, got nil")
	}
	if signal.Level != model.SignalCritical {
		t.Errorf("Level = %v, want %v (score %v)", signal.Level, model.SignalCritical, signal.Score)
	}
	if signal.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0 with 25 days of history", signal.Confidence)
	}
}

func TestBurnoutTrendSlopeSkipsIncompleteDays(t *testing.T) {
	days := steadyDays(12, calmDay)
	// strip energy from most days so fewer than minSlopePoints remain
	for i := 0; i < 8; i++ {
		delete(days[i], model.DimEnergy)
	}
	if slope := burnoutTrendSlope(series(days)); slope != nil {
		t.Errorf("expected nil slope with %d complete days, got %v", 4, *slope)
	}
}

func TestLeastSquaresSlope(t *testing.T) {
	slope, ok := leastSquaresSlope([]point{{0, 1}, {1, 3}, {2, 5}, {3, 7}})
	if !ok || !almostEqual(slope, 2) {
		t.Errorf("slope = %v, %v; want 2, true", slope, ok)
	}

	if _, ok := leastSquaresSlope([]point{{1, 5}, {1, 6}}); ok {
		t.Error("expected degenerate fit for identical x values")
	}

	if _, ok := leastSquaresSlope(nil); ok {
		t.Error("expected degenerate fit for empty input")
	}
}
