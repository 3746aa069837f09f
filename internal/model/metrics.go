package model

// MetricsSnapshot holds the derived wellbeing indices for a period.
// Computed fresh on every query; never cached across periods.
type MetricsSnapshot struct {
	WHO5            float64 `json:"who5"`            // wellbeing index, 0-100
	PHQ9            float64 `json:"phq9"`            // depression proxy, 0-27
	GAD7            float64 `json:"gad7"`            // anxiety proxy, 0-21
	Burnout         float64 `json:"burnout"`         // MBI-style burnout proxy, 0-100
	SleepHours      float64 `json:"sleepHours"`      // average sleep answer
	WorkLifeBalance float64 `json:"workLifeBalance"` // 0-10
	StressLevel     float64 `json:"stressLevel"`     // PSS-style, 0-40
}

// RiskLevel classifies a MetricsSnapshot into an advisory tier.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// RollingScore is the decay-weighted wellbeing scalar over a trailing
// window. Always defined; zero when the window holds no answers.
type RollingScore struct {
	WindowDays int     `json:"windowDays"`
	Total      float64 `json:"total"` // 0-100
}

// MetricsReport pairs a snapshot with its advisory risk tier.
type MetricsReport struct {
	Metrics MetricsSnapshot `json:"metrics"`
	Risk    RiskLevel       `json:"risk"`
}

// BenchmarkDeltas is the week-over-week movement of each index.
type BenchmarkDeltas struct {
	WHO5            float64 `json:"who5"`
	PHQ9            float64 `json:"phq9"`
	GAD7            float64 `json:"gad7"`
	Burnout         float64 `json:"burnout"`
	SleepHours      float64 `json:"sleepHours"`
	WorkLifeBalance float64 `json:"workLifeBalance"`
	StressLevel     float64 `json:"stressLevel"`
}

// SelfBenchmark compares the current 7-day window against the previous one.
type SelfBenchmark struct {
	Current  MetricsSnapshot  `json:"current"`
	Previous *MetricsSnapshot `json:"previous,omitempty"`
	Deltas   *BenchmarkDeltas `json:"deltas,omitempty"`
}
