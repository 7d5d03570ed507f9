package repository

import (
	"context"
	"errors"

	"github.com/fadilmartias/careerlens/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PortfolioEvaluationRepository struct {
	db *gorm.DB
}

func NewPortfolioEvaluationRepository(db *gorm.DB) *PortfolioEvaluationRepository {
	return &PortfolioEvaluationRepository{db}
}

func (r *PortfolioEvaluationRepository) Create(ctx context.Context, evaluation *model.PortfolioEvaluation) error {
	return r.db.WithContext(ctx).Create(evaluation).Error
}

func (r *PortfolioEvaluationRepository) FindByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (*model.PortfolioEvaluation, error) {
	var evaluation model.PortfolioEvaluation
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&evaluation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &evaluation, nil
}

// portfolioSummaryColumns are the columns a history row needs. The raw text and
// jsonb payloads are left out.
var portfolioSummaryColumns = []string{"id", "user_id", "url", "evaluation_type", "score", "created_at"}

func portfolioSummaries(db *gorm.DB, userID uuid.UUID, limit int) *gorm.DB {
	q := db.Select(portfolioSummaryColumns).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q
}

// ListSummariesByOwner returns the owner's rows newest first with only the
// summary columns loaded. A non-positive limit returns all of them.
func (r *PortfolioEvaluationRepository) ListSummariesByOwner(ctx context.Context, userID uuid.UUID, limit int) ([]model.PortfolioEvaluation, error) {
	var evaluations []model.PortfolioEvaluation
	err := portfolioSummaries(r.db.WithContext(ctx), userID, limit).Find(&evaluations).Error
	return evaluations, err
}

func (r *PortfolioEvaluationRepository) CountByOwner(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.PortfolioEvaluation{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
