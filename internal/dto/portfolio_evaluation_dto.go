package dto

import (
	"time"

	"github.com/fadilmartias/careerlens/internal/model"
	"github.com/google/uuid"
)

type Recommendation struct {
	Action string `json:"action"`
	Impact string `json:"impact"`
	Effort string `json:"effort" validate:"oneof=quick moderate significant"`
}

// PortfolioEvaluationResult is the structured object returned by the
// completion service for a profile URL.
type PortfolioEvaluationResult struct {
	Score           int                       `json:"score" validate:"min=0,max=100"`
	Summary         string                    `json:"summary"`
	Strengths       []model.Strength          `json:"strengths" validate:"required,dive"`
	Improvements    []model.Suggestion        `json:"improvements" validate:"required,dive"`
	Categories      model.PortfolioCategories `json:"categories"`
	Highlights      []string                  `json:"highlights" validate:"required"`
	RedFlags        []string                  `json:"redFlags" validate:"required"`
	Recommendations []Recommendation          `json:"recommendations" validate:"required,dive"`
}

type EvaluatePortfolioRequest struct {
	URL            string `json:"url" validate:"required,url"`
	EvaluationType string `json:"evaluationType"`
}

type PortfolioEvaluationResponse struct {
	ID         uuid.UUID                  `json:"id"`
	Evaluation *PortfolioEvaluationResult `json:"evaluation"`
}

type PortfolioEvaluationDTO struct {
	ID             uuid.UUID                     `json:"id"`
	URL            string                        `json:"url"`
	EvaluationType string                        `json:"evaluation_type"`
	Score          int                           `json:"score"`
	EvaluationData model.PortfolioEvaluationData `json:"evaluation_data"`
	Suggestions    []model.Suggestion            `json:"suggestions"`
	CreatedAt      time.Time                     `json:"created_at"`
}

func NewPortfolioEvaluationDTO(p *model.PortfolioEvaluation) PortfolioEvaluationDTO {
	return PortfolioEvaluationDTO{
		ID:             p.ID,
		URL:            p.URL,
		EvaluationType: p.EvaluationType,
		Score:          p.Score,
		EvaluationData: p.EvaluationData.Data(),
		Suggestions:    []model.Suggestion(p.Suggestions),
		CreatedAt:      p.CreatedAt,
	}
}
