package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	EvaluationTypeLinkedIn  = "linkedin"
	EvaluationTypeGitHub    = "github"
	EvaluationTypePortfolio = "portfolio"
	EvaluationTypeOther     = "other"
)

type PortfolioCategories struct {
	Completeness    ScoredFeedback `json:"completeness"`
	Professionalism ScoredFeedback `json:"professionalism"`
	Content         ScoredFeedback `json:"content"`
	Visibility      ScoredFeedback `json:"visibility"`
}

// PortfolioEvaluationData is the persisted subset of a profile evaluation.
type PortfolioEvaluationData struct {
	Summary    string              `json:"summary"`
	Strengths  []Strength          `json:"strengths"`
	Categories PortfolioCategories `json:"categories"`
	Highlights []string            `json:"highlights"`
	RedFlags   []string            `json:"redFlags"`
}

type PortfolioEvaluation struct {
	ID             uuid.UUID                                   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID                                   `gorm:"type:uuid;not null;index:idx_portfolio_evaluations_user_created,priority:1" json:"user_id"`
	URL            string                                      `gorm:"type:text;not null" json:"url"`
	EvaluationType string                                      `gorm:"type:varchar(50);not null" json:"evaluation_type"`
	Score          int                                         `gorm:"not null;check:score BETWEEN 0 AND 100" json:"score"`
	EvaluationData datatypes.JSONType[PortfolioEvaluationData] `gorm:"type:jsonb" json:"evaluation_data"`
	Suggestions    datatypes.JSONSlice[Suggestion]             `gorm:"type:jsonb" json:"suggestions"`
	CreatedAt      time.Time                                   `gorm:"autoCreateTime;index:idx_portfolio_evaluations_user_created,priority:2,sort:desc" json:"created_at"`
}

func (p *PortfolioEvaluation) TableName() string {
	return "portfolio_evaluations"
}

func (p *PortfolioEvaluation) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
