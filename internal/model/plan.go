package model

// PlanItem is one recommended action in a daily wellness plan.
type PlanItem struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
}
