package model

import "time"

// GoalSettings are per-user wellbeing targets used by the daily plan.
type GoalSettings struct {
	SleepTarget int `json:"sleepTarget" bson:"sleepTarget"` // hours
	MoveTarget  int `json:"moveTarget" bson:"moveTarget"`   // minutes of movement
	BreakTarget int `json:"breakTarget" bson:"breakTarget"` // micro-breaks per day
}

// DefaultGoals are applied when a user has not configured targets.
func DefaultGoals() GoalSettings {
	return GoalSettings{SleepTarget: 8, MoveTarget: 20, BreakTarget: 3}
}

// User is a check-in participant.
type User struct {
	ID        string           `json:"id" bson:"_id,omitempty"`
	Name      string           `json:"name" bson:"name"`
	Team      string           `json:"team,omitempty" bson:"team,omitempty"`
	Frequency CheckinFrequency `json:"frequency" bson:"frequency"`
	Goals     GoalSettings     `json:"goals" bson:"goals"`
	CreatedAt time.Time        `json:"createdAt" bson:"createdAt"`
}

// UserOverview is the admin list row: a user plus their current
// advisory state.
type UserOverview struct {
	User         User         `json:"user"`
	RollingScore RollingScore `json:"rollingScore"`
	RiskLevel    RiskLevel    `json:"riskLevel,omitempty"`
	HasSignal    bool         `json:"hasSignal"`
}
