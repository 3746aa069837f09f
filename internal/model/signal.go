package model

// SignalLevel grades an early signal.
type SignalLevel string

const (
	SignalWatch    SignalLevel = "watch"
	SignalAlert    SignalLevel = "alert"
	SignalCritical SignalLevel = "critical"
)

// SignalDeltas holds recent-minus-baseline averages per dimension.
// A nil entry means the delta is undefined (too few data points on one
// side of the comparison).
type SignalDeltas struct {
	Stress       *float64 `json:"stress,omitempty"`
	Mood         *float64 `json:"mood,omitempty"`
	Energy       *float64 `json:"energy,omitempty"`
	Sleep        *float64 `json:"sleep,omitempty"`
	Workload     *float64 `json:"workload,omitempty"`
	BurnoutSlope *float64 `json:"burnoutSlope,omitempty"`
}

// EarlySignal is a threshold-gated deterioration alert. Ephemeral:
// recomputed per request, never stored, and the verdict for the same
// user may change as more answers arrive.
type EarlySignal struct {
	Level      SignalLevel  `json:"level"`
	Score      float64      `json:"score"`
	Confidence float64      `json:"confidence"` // 0.35-1.0
	Indicators []string     `json:"indicators"`
	Deltas     SignalDeltas `json:"deltas"`
}

// CorrelationInsight surfaces a strong pairwise relation between two
// signal dimensions, or the day-of-week pattern.
type CorrelationInsight struct {
	Type           string  `json:"type"`
	Strength       float64 `json:"strength"` // Pearson r, -1 to 1
	Description    string  `json:"description"`
	Recommendation string  `json:"recommendation"`
}
