package model

import "time"

// CheckinFrequency is how often a user is asked to check in.
type CheckinFrequency string

const (
	FrequencyDaily      CheckinFrequency = "daily"
	FrequencyEvery3Days CheckinFrequency = "every_3_days"
	FrequencyWeekly     CheckinFrequency = "weekly"
)

// CadenceDays returns the number of days between due check-ins.
func (f CheckinFrequency) CadenceDays() int {
	switch f {
	case FrequencyEvery3Days:
		return 3
	case FrequencyWeekly:
		return 7
	default:
		return 1
	}
}

// ParseFrequency maps a wire string onto a known frequency, defaulting
// to daily.
func ParseFrequency(s string) CheckinFrequency {
	switch CheckinFrequency(s) {
	case FrequencyEvery3Days, FrequencyWeekly:
		return CheckinFrequency(s)
	default:
		return FrequencyDaily
	}
}

// Question is a single check-in prompt.
type Question struct {
	ID        int       `json:"id"`
	Dimension Dimension `json:"dimension"`
	Text      string    `json:"text"`
	Emoji     string    `json:"emoji"`
	Scale     string    `json:"scale"` // "1-10", or "text" for reflective prompts
}

// CheckIn is one generated check-in round for a user.
type CheckIn struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	Date          time.Time  `json:"date"`
	DayOfWeek     int        `json:"dayOfWeek"` // 0=Monday..6=Sunday
	Questions     []Question `json:"questions"`
	IntroMessage  string     `json:"introMessage"`
	EstimatedTime string     `json:"estimatedTime"`
}

// CheckinSchedule tells a client whether a check-in is due.
type CheckinSchedule struct {
	Due         bool       `json:"due"`
	NextDueDate time.Time  `json:"nextDueDate"`
	DaysUntil   int        `json:"daysUntil"`
	LastDate    *time.Time `json:"lastDate,omitempty"`
}
