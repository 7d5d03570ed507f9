package usecase

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/fadilmartias/careerlens/internal/dto"
	"github.com/fadilmartias/careerlens/internal/model"
	"github.com/fadilmartias/careerlens/internal/response"
	"github.com/google/uuid"
)

const (
	DefaultHistoryPageSize = 20
	MaxHistoryPageSize     = 100
	dashboardRecentLimit   = 3
)

type HistoryUsecase struct {
	resumes    ResumeAnalysisRepository
	portfolios PortfolioEvaluationRepository
}

func NewHistoryUsecase(resumes ResumeAnalysisRepository, portfolios PortfolioEvaluationRepository) *HistoryUsecase {
	return &HistoryUsecase{resumes: resumes, portfolios: portfolios}
}

func resumeHistoryItem(r model.ResumeAnalysis) dto.HistoryItem {
	ats := r.ATSScore
	return dto.HistoryItem{
		ID:        r.ID,
		Type:      dto.HistoryTypeResume,
		Title:     r.FileName,
		Score:     r.OverallScore,
		ATSScore:  &ats,
		CreatedAt: r.CreatedAt,
	}
}

func portfolioHistoryItem(p model.PortfolioEvaluation) dto.HistoryItem {
	return dto.HistoryItem{
		ID:             p.ID,
		Type:           dto.HistoryTypePortfolio,
		Title:          p.URL,
		EvaluationType: p.EvaluationType,
		Score:          p.Score,
		CreatedAt:      p.CreatedAt,
	}
}

// mergeByRecency interleaves both record kinds newest first.
func mergeByRecency(resumes []model.ResumeAnalysis, portfolios []model.PortfolioEvaluation) []dto.HistoryItem {
	items := make([]dto.HistoryItem, 0, len(resumes)+len(portfolios))
	for _, r := range resumes {
		items = append(items, resumeHistoryItem(r))
	}
	for _, p := range portfolios {
		items = append(items, portfolioHistoryItem(p))
	}
	slices.SortStableFunc(items, func(a, b dto.HistoryItem) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return items
}

// List returns one page of the owner's merged history.
func (uc *HistoryUsecase) List(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]dto.HistoryItem, *response.Pagination, *dto.HistoryMeta, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultHistoryPageSize
	}
	if pageSize > MaxHistoryPageSize {
		pageSize = MaxHistoryPageSize
	}

	resumes, err := uc.resumes.ListSummariesByOwner(ctx, userID, 0)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: list resume analyses: %v", ErrStorage, err)
	}
	portfolios, err := uc.portfolios.ListSummariesByOwner(ctx, userID, 0)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: list portfolio evaluations: %v", ErrStorage, err)
	}

	all := mergeByRecency(resumes, portfolios)
	pagination := response.NewPagination(page, pageSize, len(all))
	from, to := pagination.Bounds()

	meta := &dto.HistoryMeta{
		ResumeCount:    int64(len(resumes)),
		PortfolioCount: int64(len(portfolios)),
	}
	return all[from:to], pagination, meta, nil
}

func (uc *HistoryUsecase) Dashboard(ctx context.Context, userID uuid.UUID) (*dto.DashboardDTO, error) {
	resumeCount, err := uc.resumes.CountByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: count resume analyses: %v", ErrStorage, err)
	}
	portfolioCount, err := uc.portfolios.CountByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: count portfolio evaluations: %v", ErrStorage, err)
	}
	resumes, err := uc.resumes.ListSummariesByOwner(ctx, userID, dashboardRecentLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: list resume analyses: %v", ErrStorage, err)
	}
	portfolios, err := uc.portfolios.ListSummariesByOwner(ctx, userID, dashboardRecentLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: list portfolio evaluations: %v", ErrStorage, err)
	}

	out := &dto.DashboardDTO{
		ResumeCount:      resumeCount,
		PortfolioCount:   portfolioCount,
		RecentResumes:    make([]dto.HistoryItem, 0, len(resumes)),
		RecentPortfolios: make([]dto.HistoryItem, 0, len(portfolios)),
	}
	sum := 0
	for _, r := range resumes {
		sum += r.OverallScore
		out.RecentResumes = append(out.RecentResumes, resumeHistoryItem(r))
	}
	if len(resumes) > 0 {
		out.AverageResumeScore = int(math.Round(float64(sum) / float64(len(resumes))))
	}
	for _, p := range portfolios {
		out.RecentPortfolios = append(out.RecentPortfolios, portfolioHistoryItem(p))
	}
	return out, nil
}
