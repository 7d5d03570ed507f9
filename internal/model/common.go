package model

// Priority ranks an improvement suggestion.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type Strength struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Suggestion struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority" validate:"oneof=high medium low"`
}

// ScoredFeedback is one scored section of a resume or one category of a
// profile evaluation.
type ScoredFeedback struct {
	Score    int    `json:"score" validate:"min=0,max=100"`
	Feedback string `json:"feedback"`
}
