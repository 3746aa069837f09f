package engine

import "teampulse/internal/model"

// Windowing for the recent-vs-baseline comparison.
const (
	minHistoryDays  = 10
	recentWindow    = 7
	maxBaselineDays = 21
	minBaselineDays = 5
	minDeltaSamples = 3
)

// Indicator thresholds and weights. Each rule is independently additive.
const (
	stressSpikeDelta   = 1.5
	stressRisingDelta  = 1.0
	moodDropDelta      = -1.2
	moodDriftDelta     = -0.8
	energyDropDelta    = -1.2
	sleepDropDelta     = -0.8
	workloadSpikeDelta = 1.5
	slopeRising        = 0.12
	slopeUptick        = 0.08
)

// Gate and level cutoffs.
const (
	signalMinScore      = 3
	signalMinIndicators = 2
	alertScore          = 4
	criticalScore       = 6
	minSlopePoints      = 6
	confidenceFloor     = 0.35
	confidenceFullDays  = 21.0
)

// DetectEarlySignal compares a short recent window against a trailing
// baseline and returns a graded alert, or nil when the history is too
// thin or too few independent indicators fire. The daily series must be
// ordered ascending (AggregateDaily output).
func DetectEarlySignal(daily []DailyAggregate) *model.EarlySignal {
	if len(daily) < minHistoryDays {
		return nil
	}

	recentLen := recentWindow
	if len(daily) < recentLen {
		recentLen = len(daily)
	}
	baselineLen := len(daily) - recentLen
	if baselineLen > maxBaselineDays {
		baselineLen = maxBaselineDays
	}
	if baselineLen < minBaselineDays {
		return nil
	}

	recent := daily[len(daily)-recentLen:]
	baseline := daily[len(daily)-recentLen-baselineLen : len(daily)-recentLen]

	delta := func(dim model.Dimension) *float64 {
		r, rok := windowAverage(recent, dim)
		b, bok := windowAverage(baseline, dim)
		if !rok || !bok {
			return nil
		}
		d := r - b
		return &d
	}

	deltas := model.SignalDeltas{
		Stress:   delta(model.DimStress),
		Mood:     delta(model.DimMood),
		Energy:   delta(model.DimEnergy),
		Sleep:    delta(model.DimSleep),
		Workload: delta(model.DimWorkload),
	}
	deltas.BurnoutSlope = burnoutTrendSlope(daily)

	var score float64
	var indicators []string

	if d := deltas.Stress; d != nil {
		if *d >= stressSpikeDelta {
			score += 2
			indicators = append(indicators, "stress spike vs baseline")
		} else if *d >= stressRisingDelta {
			score++
			indicators = append(indicators, "stress rising")
		}
	}
	if d := deltas.Mood; d != nil {
		if *d <= moodDropDelta {
			score += 2
			indicators = append(indicators, "mood drop")
		} else if *d <= moodDriftDelta {
			score++
			indicators = append(indicators, "mood drifting down")
		}
	}
	if d := deltas.Energy; d != nil && *d <= energyDropDelta {
		score++
		indicators = append(indicators, "energy decrease")
	}
	if d := deltas.Sleep; d != nil && *d <= sleepDropDelta {
		score++
		indicators = append(indicators, "sleep quality drop")
	}
	if d := deltas.Workload; d != nil && *d >= workloadSpikeDelta {
		score++
		indicators = append(indicators, "workload spike")
	}
	if s := deltas.BurnoutSlope; s != nil {
		if *s >= slopeRising {
			score += 2
			indicators = append(indicators, "burnout slope rising")
		} else if *s >= slopeUptick {
			score++
			indicators = append(indicators, "burnout slope uptick")
		}
	}

	if score < signalMinScore || len(indicators) < signalMinIndicators {
		return nil
	}

	level := model.SignalWatch
	if score >= criticalScore {
		level = model.SignalCritical
	} else if score >= alertScore {
		level = model.SignalAlert
	}

	return &model.EarlySignal{
		Level:      level,
		Score:      score,
		Confidence: clamp(float64(len(daily))/confidenceFullDays, confidenceFloor, 1.0),
		Indicators: indicators,
		Deltas:     deltas,
	}
}

// windowAverage averages a dimension over the window's days, requiring
// at least minDeltaSamples non-absent days for the comparison to mean
// anything.
func windowAverage(window []DailyAggregate, dim model.Dimension) (float64, bool) {
	var sum float64
	var n int
	for _, day := range window {
		if v, ok := day.Get(dim); ok {
			sum += v
			n++
		}
	}
	if n < minDeltaSamples {
		return 0, false
	}
	return sum / float64(n), true
}

// burnoutTrendSlope fits a least-squares line through the composite
// burnout proxy. Days missing any of the four inputs are skipped; the
// slope is undefined with fewer than minSlopePoints usable days or a
// degenerate fit.
func burnoutTrendSlope(daily []DailyAggregate) *float64 {
	var points []point
	for idx, day := range daily {
		stress, ok1 := day.Get(model.DimStress)
		workload, ok2 := day.Get(model.DimWorkload)
		energy, ok3 := day.Get(model.DimEnergy)
		mood, ok4 := day.Get(model.DimMood)
		if !ok1 || !ok2 || !ok3 || !ok4 {
			continue
		}
		burnout := (stress + workload + (10 - energy) + (10 - mood)) / 4
		points = append(points, point{x: float64(idx), y: burnout})
	}

	if len(points) < minSlopePoints {
		return nil
	}
	slope, ok := leastSquaresSlope(points)
	if !ok {
		return nil
	}
	return &slope
}
