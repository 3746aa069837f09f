package engine

import "teampulse/internal/model"

// Minimum sample gate: a MetricsSnapshot is only trustworthy once the
// period holds a full week of 3-question check-ins.
const (
	MinSampleAnswers = 21
	MinSampleDays    = 7
)

// ComputeMetrics derives a MetricsSnapshot from the period's answers, or
// nil when the minimum sample gate fails. Each component average skips
// dimensions that were never answered in the period; a formula whose
// inputs are all absent falls back to 0 for that formula only.
func ComputeMetrics(answers []model.Answer) *model.MetricsSnapshot {
	sums := make(map[model.Dimension]float64)
	counts := make(map[model.Dimension]int)
	days := make(map[string]struct{})

	total := 0
	for _, a := range answers {
		if !a.HasNumericValue() {
			continue
		}
		sums[a.Dimension] += float64(a.Value)
		counts[a.Dimension]++
		days[a.CreatedAt.UTC().Format("2006-01-02")] = struct{}{}
		total++
	}

	if total < MinSampleAnswers || len(days) < MinSampleDays {
		return nil
	}

	avg := func(dim model.Dimension) (float64, bool) {
		if counts[dim] == 0 {
			return 0, false
		}
		return sums[dim] / float64(counts[dim]), true
	}

	// mean over the components that are present; 0 when all absent
	mean := func(parts ...func() (float64, bool)) float64 {
		var sum float64
		var n int
		for _, part := range parts {
			if v, ok := part(); ok {
				sum += v
				n++
			}
		}
		if n == 0 {
			return 0
		}
		return sum / float64(n)
	}

	direct := func(dim model.Dimension) func() (float64, bool) {
		return func() (float64, bool) { return avg(dim) }
	}
	inverted := func(dim model.Dimension) func() (float64, bool) {
		return func() (float64, bool) {
			v, ok := avg(dim)
			return 10 - v, ok
		}
	}

	who5 := clamp(mean(direct(model.DimMood), direct(model.DimEnergy), direct(model.DimWellbeing))*10, 0, 100)
	phq9 := clamp(mean(inverted(model.DimMood), inverted(model.DimEnergy), inverted(model.DimMotivation))*2.7, 0, 27)
	gad7 := clamp(mean(direct(model.DimStress), inverted(model.DimFocus))*2.1, 0, 21)
	burnout := clamp(mean(direct(model.DimStress), direct(model.DimWorkload), inverted(model.DimEnergy), inverted(model.DimMotivation))*10, 0, 100)

	sleepHours := mean(direct(model.DimSleep))
	workLife := clamp(10-mean(direct(model.DimWorkload)), 0, 10)
	stressLevel := clamp(mean(direct(model.DimStress))*4, 0, 40)

	return &model.MetricsSnapshot{
		WHO5:            who5,
		PHQ9:            phq9,
		GAD7:            gad7,
		Burnout:         burnout,
		SleepHours:      sleepHours,
		WorkLifeBalance: workLife,
		StressLevel:     stressLevel,
	}
}

// ClassifyRisk grades a snapshot into an advisory tier. Checks run
// critical first; the first matching tier wins.
func ClassifyRisk(m model.MetricsSnapshot) model.RiskLevel {
	switch {
	case m.WHO5 < 50 || m.PHQ9 >= 15 || m.GAD7 >= 15 || m.Burnout >= 70:
		return model.RiskCritical
	case m.WHO5 < 60 || m.PHQ9 >= 10 || m.GAD7 >= 10 || m.Burnout >= 50:
		return model.RiskHigh
	case m.WHO5 < 70 || m.PHQ9 >= 5 || m.GAD7 >= 5 || m.Burnout >= 35:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}
