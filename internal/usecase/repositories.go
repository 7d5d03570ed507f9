package usecase

import (
	"context"

	"github.com/fadilmartias/careerlens/internal/model"
	"github.com/google/uuid"
)

type ResumeAnalysisRepository interface {
	Create(ctx context.Context, analysis *model.ResumeAnalysis) error
	FindByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (*model.ResumeAnalysis, error)
	ListSummariesByOwner(ctx context.Context, userID uuid.UUID, limit int) ([]model.ResumeAnalysis, error)
	CountByOwner(ctx context.Context, userID uuid.UUID) (int64, error)
}

type PortfolioEvaluationRepository interface {
	Create(ctx context.Context, evaluation *model.PortfolioEvaluation) error
	FindByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (*model.PortfolioEvaluation, error)
	ListSummariesByOwner(ctx context.Context, userID uuid.UUID, limit int) ([]model.PortfolioEvaluation, error)
	CountByOwner(ctx context.Context, userID uuid.UUID) (int64, error)
}
