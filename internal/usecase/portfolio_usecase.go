package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/fadilmartias/careerlens/internal/dto"
	"github.com/fadilmartias/careerlens/internal/model"
	"github.com/fadilmartias/careerlens/internal/repository"
	"github.com/fadilmartias/careerlens/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PortfolioUsecase struct {
	repo       PortfolioEvaluationRepository
	completion service.CompletionServiceInterface
	model      string
	validate   *validator.Validate
}

func NewPortfolioUsecase(repo PortfolioEvaluationRepository, completion service.CompletionServiceInterface, model string) *PortfolioUsecase {
	return &PortfolioUsecase{
		repo:       repo,
		completion: completion,
		model:      model,
		validate:   validator.New(),
	}
}

func (uc *PortfolioUsecase) normalize(req dto.EvaluatePortfolioRequest) (dto.EvaluatePortfolioRequest, error) {
	req.URL = strings.TrimSpace(req.URL)
	if req.URL == "" {
		return req, badInput(MsgURLRequired)
	}
	if err := uc.validate.Struct(req); err != nil {
		return req, badInput(MsgInvalidURL)
	}
	u, err := url.Parse(req.URL)
	if err != nil || !u.IsAbs() || (u.Host == "" && u.Opaque == "") {
		return req, badInput(MsgInvalidURL)
	}
	return req, nil
}

// Evaluate runs one completion for the profile URL and stores the result.
// The evaluation type is stored as submitted, empty included, even when the
// prompt falls back to the generic description.
func (uc *PortfolioUsecase) Evaluate(ctx context.Context, userID uuid.UUID, req dto.EvaluatePortfolioRequest) (uuid.UUID, *dto.PortfolioEvaluationResult, error) {
	in, err := uc.normalize(req)
	if err != nil {
		return uuid.Nil, nil, err
	}

	system, user := BuildPortfolioPrompts(in.URL, in.EvaluationType)

	var result dto.PortfolioEvaluationResult
	err = uc.completion.Complete(ctx, service.CompletionRequest{
		Model:        uc.model,
		SystemPrompt: system,
		UserPrompt:   user,
		SchemaName:   "portfolio_evaluation",
		Schema:       portfolioEvaluationSchema,
	}, &result)
	if err != nil {
		slog.ErrorContext(ctx, "portfolio evaluation completion failed", "user_id", userID, "url", in.URL, "error", err)
		return uuid.Nil, nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	record := model.PortfolioEvaluation{
		UserID:         userID,
		URL:            in.URL,
		EvaluationType: in.EvaluationType,
		Score:          result.Score,
		EvaluationData: datatypes.NewJSONType(model.PortfolioEvaluationData{
			Summary:    result.Summary,
			Strengths:  result.Strengths,
			Categories: result.Categories,
			Highlights: result.Highlights,
			RedFlags:   result.RedFlags,
		}),
		Suggestions: datatypes.NewJSONSlice(result.Improvements),
	}
	if err := uc.repo.Create(ctx, &record); err != nil {
		slog.ErrorContext(ctx, "failed to save portfolio evaluation", "user_id", userID, "error", err)
		return uuid.Nil, nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return record.ID, &result, nil
}

func (uc *PortfolioUsecase) Get(ctx context.Context, userID, id uuid.UUID) (*model.PortfolioEvaluation, error) {
	record, err := uc.repo.FindByIDAndOwner(ctx, id, userID)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return record, nil
}
