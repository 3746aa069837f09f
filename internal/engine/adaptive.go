package engine

import (
	"sort"

	"teampulse/internal/model"
)

// PatternDays is the lookback for the adaptive question pattern.
const PatternDays = 3

// Hand-tuned trigger thresholds on the 3-day averages. Pinned as named
// constants so tests catch accidental drift.
const (
	HighStressThreshold   = 7.0
	LowSleepThreshold     = 5.0
	LowEnergyThreshold    = 4.0
	LowMoodThreshold      = 4.0
	HighWorkloadThreshold = 8.0
	LowFocusThreshold     = 4.0
)

// Priority scores per trigger, highest asked first.
const (
	priorityStress   = 100.0
	prioritySleep    = 95.0
	priorityEnergy   = 90.0
	priorityMood     = 85.0
	priorityWorkload = 80.0
	priorityFocus    = 75.0
	priorityNeutral  = 50.0

	priorityFloor = 70.0
	maxPriorities = 3
)

// AveragePattern reduces recent answers to one average per numeric
// dimension. Dimensions without answers are simply missing from the map.
func AveragePattern(answers []model.Answer) map[model.Dimension]float64 {
	sums := make(map[model.Dimension]float64)
	counts := make(map[model.Dimension]float64)
	for _, a := range answers {
		if !a.HasNumericValue() {
			continue
		}
		sums[a.Dimension] += float64(a.Value)
		counts[a.Dimension]++
	}

	pattern := make(map[model.Dimension]float64, len(sums))
	for dim, sum := range sums {
		pattern[dim] = sum / counts[dim]
	}
	return pattern
}

// PrioritizeQuestions ranks the dimensions worth probing next based on
// the recent pattern. Only genuinely elevated dimensions make the cut;
// a calm pattern returns an empty list and the caller falls back to its
// day-of-week rotation.
func PrioritizeQuestions(pattern map[model.Dimension]float64) []model.Dimension {
	type scored struct {
		dim   model.Dimension
		score float64
	}

	var scores []scored
	for dim, avg := range pattern {
		var score float64
		switch {
		case dim == model.DimStress && avg >= HighStressThreshold:
			score = priorityStress
		case dim == model.DimSleep && avg <= LowSleepThreshold:
			score = prioritySleep
		case dim == model.DimEnergy && avg <= LowEnergyThreshold:
			score = priorityEnergy
		case dim == model.DimMood && avg <= LowMoodThreshold:
			score = priorityMood
		case dim == model.DimWorkload && avg >= HighWorkloadThreshold:
			score = priorityWorkload
		case dim == model.DimFocus && avg <= LowFocusThreshold:
			score = priorityFocus
		default:
			score = priorityNeutral
		}
		scores = append(scores, scored{dim: dim, score: score})
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].score != scores[j].score {
			return scores[i].score > scores[j].score
		}
		return scores[i].dim < scores[j].dim
	})

	var priorities []model.Dimension
	for _, s := range scores {
		if len(priorities) >= maxPriorities {
			break
		}
		if s.score > priorityFloor {
			priorities = append(priorities, s.dim)
		}
	}
	return priorities
}

// NeedsSupport is the coarser OR-combined gate: any single red flag in
// the recent pattern warrants the supportive framing, independent of the
// ranked list.
func NeedsSupport(pattern map[model.Dimension]float64) bool {
	if v, ok := pattern[model.DimStress]; ok && v >= HighStressThreshold {
		return true
	}
	if v, ok := pattern[model.DimMood]; ok && v <= LowMoodThreshold {
		return true
	}
	if v, ok := pattern[model.DimEnergy]; ok && v <= LowEnergyThreshold {
		return true
	}
	if v, ok := pattern[model.DimWorkload]; ok && v >= HighWorkloadThreshold {
		return true
	}
	return false
}
