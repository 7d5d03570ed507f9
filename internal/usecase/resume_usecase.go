package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fadilmartias/careerlens/internal/dto"
	"github.com/fadilmartias/careerlens/internal/model"
	"github.com/fadilmartias/careerlens/internal/repository"
	"github.com/fadilmartias/careerlens/internal/service"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ResumeSubmission is the raw form content of a resume request. When
// HasFile is set the file wins over Text.
type ResumeSubmission struct {
	HasFile        bool
	FileName       string
	FileContent    []byte
	Text           string
	JobDescription string
}

type ResumeUsecase struct {
	repo       ResumeAnalysisRepository
	completion service.CompletionServiceInterface
	model      string
}

func NewResumeUsecase(repo ResumeAnalysisRepository, completion service.CompletionServiceInterface, model string) *ResumeUsecase {
	return &ResumeUsecase{repo: repo, completion: completion, model: model}
}

type normalizedResume struct {
	fileName       string
	text           string
	jobDescription string
}

func normalizeResume(sub ResumeSubmission) (normalizedResume, error) {
	var n normalizedResume
	switch {
	case sub.HasFile:
		n.fileName = sub.FileName
		n.text = string(sub.FileContent)
	case sub.Text != "":
		n.fileName = model.PastedResumeFileName
		n.text = sub.Text
	default:
		return n, badInput(MsgNoResumeContent)
	}
	if strings.TrimSpace(n.text) == "" {
		return n, badInput(MsgEmptyResume)
	}
	n.jobDescription = strings.TrimSpace(sub.JobDescription)
	return n, nil
}

// Analyze runs one completion for the submission and stores the result.
// Nothing is written unless the completion returned a schema-valid object.
func (uc *ResumeUsecase) Analyze(ctx context.Context, userID uuid.UUID, sub ResumeSubmission) (uuid.UUID, *dto.ResumeAnalysisResult, error) {
	in, err := normalizeResume(sub)
	if err != nil {
		return uuid.Nil, nil, err
	}

	system, user := BuildResumePrompts(in.text, in.jobDescription)

	var result dto.ResumeAnalysisResult
	err = uc.completion.Complete(ctx, service.CompletionRequest{
		Model:        uc.model,
		SystemPrompt: system,
		UserPrompt:   user,
		SchemaName:   "resume_analysis",
		Schema:       resumeAnalysisSchema,
	}, &result)
	if err != nil {
		slog.ErrorContext(ctx, "resume analysis completion failed", "user_id", userID, "error", err)
		return uuid.Nil, nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	record := model.ResumeAnalysis{
		UserID:       userID,
		FileName:     in.fileName,
		RawText:      model.TruncateRawText(in.text),
		ATSScore:     result.ATSScore,
		OverallScore: result.OverallScore,
		AnalysisData: datatypes.NewJSONType(model.ResumeAnalysisData{
			Summary:   result.Summary,
			Strengths: result.Strengths,
			Sections:  result.Sections,
			Keywords:  result.Keywords,
			WordCount: result.WordCount,
		}),
		Suggestions:     datatypes.NewJSONSlice(result.Improvements),
		SkillsExtracted: datatypes.NewJSONType(result.Skills),
	}
	if err := uc.repo.Create(ctx, &record); err != nil {
		slog.ErrorContext(ctx, "failed to save resume analysis", "user_id", userID, "error", err)
		return uuid.Nil, nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return record.ID, &result, nil
}

func (uc *ResumeUsecase) Get(ctx context.Context, userID, id uuid.UUID) (*model.ResumeAnalysis, error) {
	record, err := uc.repo.FindByIDAndOwner(ctx, id, userID)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return record, nil
}
