package engine

import (
	"fmt"
	"time"

	"github.com/montanaflynn/stats"

	"teampulse/internal/model"
)

// Per-pair significance thresholds on |r|. Some signals are noisier
// than others, so the cutoffs were tuned individually.
const (
	sleepMoodThreshold        = 0.5
	stressFocusThreshold      = 0.4
	energyMotivationThreshold = 0.5
	workloadStressThreshold   = 0.6
)

// CorrelationInsights computes Pearson correlations for the fixed
// dimension pairs over the daily series (callers pass the last 30 days)
// and surfaces only the relations strong enough to act on.
func CorrelationInsights(daily []DailyAggregate) []model.CorrelationInsight {
	var insights []model.CorrelationInsight

	if r, ok := pairCorrelation(daily, model.DimSleep, model.DimMood); ok && abs(r) > sleepMoodThreshold {
		insight := model.CorrelationInsight{
			Type:     "sleep_mood",
			Strength: r,
		}
		if r > 0 {
			insight.Description = fmt.Sprintf("Your sleep is strongly linked to your mood (r=%.2f)", r)
			insight.Recommendation = "Sleep quality directly drives your mood. Protect 7-8 hours every night."
		} else {
			insight.Description = fmt.Sprintf("Your sleep moves against your mood (r=%.2f)", r)
			insight.Recommendation = "Unusual: sleep does not lift your mood. Look at stress and workload as drivers instead."
		}
		insights = append(insights, insight)
	}

	if r, ok := pairCorrelation(daily, model.DimStress, model.DimFocus); ok && abs(r) > stressFocusThreshold {
		insight := model.CorrelationInsight{
			Type:     "stress_concentration",
			Strength: r,
		}
		if r < 0 {
			insight.Description = fmt.Sprintf("Stress lowers your concentration (r=%.2f)", r)
			insight.Recommendation = "High stress is eroding your focus. Take a real break every 90 minutes and get outside once a day."
		} else {
			insight.Description = fmt.Sprintf("Stress raises your concentration (r=%.2f)", r)
			insight.Recommendation = "Stress is not hurting your concentration. Keep an eye on it anyway."
		}
		insights = append(insights, insight)
	}

	if r, ok := pairCorrelation(daily, model.DimEnergy, model.DimMotivation); ok && abs(r) > energyMotivationThreshold {
		insight := model.CorrelationInsight{
			Type:     "energy_productivity",
			Strength: r,
		}
		if r > 0 {
			insight.Description = fmt.Sprintf("Energy strongly drives your motivation (r=%.2f)", r)
			insight.Recommendation = "Keep energy topped up: steady sleep, light snacks, and movement every couple of hours."
		} else {
			insight.Description = fmt.Sprintf("Your motivation rises when energy dips (r=%.2f)", r)
			insight.Recommendation = "Watch for overdrive days; pushing through low energy tends to backfire."
		}
		insights = append(insights, insight)
	}

	if r, ok := pairCorrelation(daily, model.DimWorkload, model.DimStress); ok && abs(r) > workloadStressThreshold {
		insight := model.CorrelationInsight{
			Type:     "workload_burnout",
			Strength: r,
		}
		if r > 0 {
			insight.Description = fmt.Sprintf("Heavy workload pushes your stress up (r=%.2f)", r)
			insight.Recommendation = "Delegate what you can and raise the load with your lead before it compounds into burnout."
		} else {
			insight.Description = fmt.Sprintf("More workload is not raising your stress (r=%.2f)", r)
			insight.Recommendation = "Your capacity looks healthy right now."
		}
		insights = append(insights, insight)
	}

	return insights
}

// pairCorrelation computes Pearson r over the days where both
// dimensions are present. ok is false when there is nothing to
// correlate; a constant series comes back as r=0 and never clears a
// threshold.
func pairCorrelation(daily []DailyAggregate, dimA, dimB model.Dimension) (float64, bool) {
	var seriesA, seriesB []float64
	for _, day := range daily {
		a, okA := day.Get(dimA)
		b, okB := day.Get(dimB)
		if !okA || !okB {
			continue
		}
		seriesA = append(seriesA, a)
		seriesB = append(seriesB, b)
	}
	if len(seriesA) == 0 {
		return 0, false
	}

	r, err := stats.Pearson(seriesA, seriesB)
	if err != nil {
		return 0, false
	}
	return r, true
}

// DayOfWeekInsight finds the strongest and weakest weekday by the mean
// of all numeric answer values combined (callers pass the last 60 days).
// Unlike the pair correlations it has no strength gate: any data at all
// produces the insight.
func DayOfWeekInsight(answers []model.Answer) *model.CorrelationInsight {
	var sums, counts [7]float64
	for _, a := range answers {
		if !a.HasNumericValue() {
			continue
		}
		dow := int(a.CreatedAt.UTC().Weekday())
		sums[dow] += float64(a.Value)
		counts[dow]++
	}

	best, worst := -1, -1
	var bestAvg, worstAvg float64
	for dow := 0; dow < 7; dow++ {
		if counts[dow] == 0 {
			continue
		}
		avg := sums[dow] / counts[dow]
		if best == -1 || avg > bestAvg {
			best, bestAvg = dow, avg
		}
		if worst == -1 || avg < worstAvg {
			worst, worstAvg = dow, avg
		}
	}
	if best == -1 {
		return nil
	}

	bestName := time.Weekday(best).String()
	worstName := time.Weekday(worst).String()
	return &model.CorrelationInsight{
		Type:           "day_of_week",
		Strength:       1.0,
		Description:    fmt.Sprintf("Your best day is %s, your toughest is %s", bestName, worstName),
		Recommendation: fmt.Sprintf("Schedule demanding work on %ss. Keep %ss lighter and leave room for recovery.", bestName, worstName),
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
