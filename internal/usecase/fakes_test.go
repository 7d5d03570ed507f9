package usecase

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/fadilmartias/careerlens/internal/model"
	"github.com/fadilmartias/careerlens/internal/repository"
	"github.com/fadilmartias/careerlens/internal/service"
	"github.com/google/uuid"
)

var errDBDown = errors.New("connection refused")

type fakeCompletion struct {
	raw      string
	err      error
	requests []service.CompletionRequest
}

func (f *fakeCompletion) Complete(ctx context.Context, req service.CompletionRequest, out any) error {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return f.err
	}
	return service.DecodeStructured(f.raw, req.Schema, out)
}

type fakeResumeRepo struct {
	rows      []model.ResumeAnalysis
	createErr error
	clock     time.Time
}

func (f *fakeResumeRepo) Create(ctx context.Context, a *model.ResumeAnalysis) error {
	if f.createErr != nil {
		return f.createErr
	}
	if err := a.BeforeCreate(nil); err != nil {
		return err
	}
	if a.CreatedAt.IsZero() {
		f.clock = f.clock.Add(time.Minute)
		a.CreatedAt = f.clock
	}
	f.rows = append(f.rows, *a)
	return nil
}

func (f *fakeResumeRepo) FindByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (*model.ResumeAnalysis, error) {
	for i := range f.rows {
		if f.rows[i].ID == id && f.rows[i].UserID == userID {
			return &f.rows[i], nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (f *fakeResumeRepo) ListSummariesByOwner(ctx context.Context, userID uuid.UUID, limit int) ([]model.ResumeAnalysis, error) {
	var out []model.ResumeAnalysis
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	slices.SortFunc(out, func(a, b model.ResumeAnalysis) int { return b.CreatedAt.Compare(a.CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeResumeRepo) CountByOwner(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, r := range f.rows {
		if r.UserID == userID {
			n++
		}
	}
	return n, nil
}

type fakePortfolioRepo struct {
	rows      []model.PortfolioEvaluation
	createErr error
	clock     time.Time
}

func (f *fakePortfolioRepo) Create(ctx context.Context, p *model.PortfolioEvaluation) error {
	if f.createErr != nil {
		return f.createErr
	}
	if err := p.BeforeCreate(nil); err != nil {
		return err
	}
	if p.CreatedAt.IsZero() {
		f.clock = f.clock.Add(time.Minute)
		p.CreatedAt = f.clock
	}
	f.rows = append(f.rows, *p)
	return nil
}

func (f *fakePortfolioRepo) FindByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (*model.PortfolioEvaluation, error) {
	for i := range f.rows {
		if f.rows[i].ID == id && f.rows[i].UserID == userID {
			return &f.rows[i], nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (f *fakePortfolioRepo) ListSummariesByOwner(ctx context.Context, userID uuid.UUID, limit int) ([]model.PortfolioEvaluation, error) {
	var out []model.PortfolioEvaluation
	for _, p := range f.rows {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b model.PortfolioEvaluation) int { return b.CreatedAt.Compare(a.CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakePortfolioRepo) CountByOwner(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range f.rows {
		if p.UserID == userID {
			n++
		}
	}
	return n, nil
}

const validResumeJSON = `{
  "atsScore": 72,
  "overallScore": 68,
  "summary": "Solid backend profile with room to quantify impact.",
  "strengths": [{"title": "Relevant stack", "description": "Go and PostgreSQL experience"}],
  "improvements": [{"title": "Quantify results", "description": "Add metrics to bullets", "priority": "high"}],
  "skills": {"technical": ["Go", "PostgreSQL"], "soft": ["Communication"], "missing": ["Kubernetes"]},
  "sections": {
    "contact": {"score": 90, "feedback": "Complete"},
    "experience": {"score": 65, "feedback": "Needs metrics"},
    "education": {"score": 70, "feedback": "Fine"},
    "skills": {"score": 75, "feedback": "Clear"},
    "format": {"score": 60, "feedback": "Dense"}
  },
  "keywords": ["Go", "REST"],
  "wordCount": 412,
  "jobMatch": null
}`

const validPortfolioJSON = `{
  "score": 81,
  "summary": "Active GitHub presence with clear project READMEs.",
  "strengths": [{"title": "Consistent activity", "description": "Regular commits"}],
  "improvements": [{"title": "Pin repositories", "description": "Pin your best work", "priority": "medium"}],
  "categories": {
    "completeness": {"score": 80, "feedback": "Bio present"},
    "professionalism": {"score": 85, "feedback": "Clean"},
    "content": {"score": 78, "feedback": "Good READMEs"},
    "visibility": {"score": 70, "feedback": "Few stars"}
  },
  "highlights": ["Open source contributions"],
  "redFlags": [],
  "recommendations": [{"action": "Add a profile README", "impact": "Better first impression", "effort": "quick"}]
}`
