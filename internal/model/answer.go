package model

import "time"

// Dimension is the signal dimension a check-in question probes.
type Dimension string

const (
	DimMood       Dimension = "mood"
	DimEnergy     Dimension = "energy"
	DimStress     Dimension = "stress"
	DimSleep      Dimension = "sleep"
	DimWorkload   Dimension = "workload"
	DimMotivation Dimension = "motivation"
	DimFocus      Dimension = "focus"
	DimWellbeing  Dimension = "wellbeing"
	DimReflection Dimension = "reflection"
	DimSupport    Dimension = "support"
)

// NumericDimensions are the dimensions answered on the 1-10 scale.
// Reflection and support answers carry free text instead.
var NumericDimensions = []Dimension{
	DimMood, DimEnergy, DimStress, DimSleep,
	DimWorkload, DimMotivation, DimFocus, DimWellbeing,
}

// IsNumeric reports whether answers for this dimension carry a 1-10 value.
func (d Dimension) IsNumeric() bool {
	return d != DimReflection && d != DimSupport && d != ""
}

// LowerIsBetter reports whether a low raw value is the healthy end of
// the scale for this dimension.
func (d Dimension) LowerIsBetter() bool {
	return d == DimStress || d == DimWorkload
}

// ParseDimension maps a wire string onto a known dimension.
func ParseDimension(s string) (Dimension, bool) {
	switch Dimension(s) {
	case DimMood, DimEnergy, DimStress, DimSleep, DimWorkload,
		DimMotivation, DimFocus, DimWellbeing, DimReflection, DimSupport:
		return Dimension(s), true
	}
	return "", false
}

// Answer is a single check-in answer. Immutable once written; the
// engine only ever reads these.
type Answer struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	UserID     string    `json:"userId" bson:"userId"`
	QuestionID int       `json:"questionId" bson:"questionId"`
	Dimension  Dimension `json:"dimension" bson:"dimension"`
	Value      int       `json:"value,omitempty" bson:"value,omitempty"` // 1-10, unset for free-text dimensions
	Text       string    `json:"text,omitempty" bson:"text,omitempty"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}

// HasNumericValue reports whether this answer contributes to numeric
// aggregation.
func (a *Answer) HasNumericValue() bool {
	return a.Dimension.IsNumeric() && a.Value >= 1 && a.Value <= 10
}
