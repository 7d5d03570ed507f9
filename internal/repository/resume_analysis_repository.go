package repository

import (
	"context"
	"errors"

	"github.com/fadilmartias/careerlens/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrRecordNotFound is returned when no row matches both id and owner.
var ErrRecordNotFound = errors.New("record not found")

type ResumeAnalysisRepository struct {
	db *gorm.DB
}

func NewResumeAnalysisRepository(db *gorm.DB) *ResumeAnalysisRepository {
	return &ResumeAnalysisRepository{db}
}

func (r *ResumeAnalysisRepository) Create(ctx context.Context, analysis *model.ResumeAnalysis) error {
	return r.db.WithContext(ctx).Create(analysis).Error
}

func (r *ResumeAnalysisRepository) FindByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (*model.ResumeAnalysis, error) {
	var analysis model.ResumeAnalysis
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&analysis).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

// resumeSummaryColumns are the columns a history row needs. The raw text and
// jsonb payloads are left out.
var resumeSummaryColumns = []string{"id", "user_id", "file_name", "ats_score", "overall_score", "created_at"}

func resumeSummaries(db *gorm.DB, userID uuid.UUID, limit int) *gorm.DB {
	q := db.Select(resumeSummaryColumns).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q
}

// ListSummariesByOwner returns the owner's rows newest first with only the
// summary columns loaded. A non-positive limit returns all of them.
func (r *ResumeAnalysisRepository) ListSummariesByOwner(ctx context.Context, userID uuid.UUID, limit int) ([]model.ResumeAnalysis, error) {
	var analyses []model.ResumeAnalysis
	err := resumeSummaries(r.db.WithContext(ctx), userID, limit).Find(&analyses).Error
	return analyses, err
}

func (r *ResumeAnalysisRepository) CountByOwner(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ResumeAnalysis{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
