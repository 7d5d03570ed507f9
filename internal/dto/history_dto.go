package dto

import (
	"time"

	"github.com/google/uuid"
)

const (
	HistoryTypeResume    = "resume"
	HistoryTypePortfolio = "portfolio"
)

// HistoryItem is one row of the merged analysis history.
type HistoryItem struct {
	ID             uuid.UUID `json:"id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	EvaluationType string    `json:"evaluation_type,omitempty"`
	Score          int       `json:"score"`
	ATSScore       *int      `json:"ats_score,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type HistoryMeta struct {
	ResumeCount    int64 `json:"resume_count"`
	PortfolioCount int64 `json:"portfolio_count"`
}

type DashboardDTO struct {
	ResumeCount        int64         `json:"resume_count"`
	PortfolioCount     int64         `json:"portfolio_count"`
	AverageResumeScore int           `json:"average_resume_score"`
	RecentResumes      []HistoryItem `json:"recent_resumes"`
	RecentPortfolios   []HistoryItem `json:"recent_portfolios"`
}
