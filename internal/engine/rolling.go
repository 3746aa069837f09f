package engine

import (
	"math"
	"time"

	"teampulse/internal/model"
)

// DecayDays is the ~1/e point of the rolling score's exponential decay:
// a 21-day-old answer carries about 37% of a fresh one's weight.
const DecayDays = 21.0

// ComputeRollingScore folds the window's answers into one decay-weighted
// wellbeing scalar on a 0-100 scale. Raw 1-10 values map onto 0-3, with
// stress and workload inverted so that high always means good. The score
// is an explicit zero when the window is empty; it is always displayable.
func ComputeRollingScore(answers []model.Answer, now time.Time, windowDays int) model.RollingScore {
	var weighted, weights float64

	for _, a := range answers {
		if !a.HasNumericValue() {
			continue
		}
		ageDays := now.Sub(a.CreatedAt).Hours() / 24
		if ageDays < 0 || ageDays > float64(windowDays) {
			continue
		}

		value := float64(a.Value)
		if a.Dimension.LowerIsBetter() {
			value = 11 - value
		}
		normalized := (value - 1) / 9 * 3

		weight := math.Exp(-ageDays / DecayDays)
		weighted += normalized * weight
		weights += weight
	}

	score := model.RollingScore{WindowDays: windowDays}
	if weights > 0 {
		score.Total = weighted / weights / 3 * 100
	}
	return score
}
