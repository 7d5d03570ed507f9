package dto

import (
	"time"

	"github.com/fadilmartias/careerlens/internal/model"
	"github.com/google/uuid"
)

// JobMatch compares the resume with a target job description. It is null
// when no job description was supplied.
type JobMatch struct {
	Score            *int     `json:"score" validate:"omitempty,min=0,max=100"`
	MissingKeywords  []string `json:"missingKeywords" validate:"required"`
	MatchingKeywords []string `json:"matchingKeywords" validate:"required"`
	Feedback         string   `json:"feedback"`
}

// ResumeAnalysisResult is the structured object returned by the completion
// service for a resume.
type ResumeAnalysisResult struct {
	ATSScore     int                  `json:"atsScore" validate:"min=0,max=100"`
	OverallScore int                  `json:"overallScore" validate:"min=0,max=100"`
	Summary      string               `json:"summary"`
	Strengths    []model.Strength     `json:"strengths" validate:"required,dive"`
	Improvements []model.Suggestion   `json:"improvements" validate:"required,dive"`
	Skills       model.ResumeSkills   `json:"skills"`
	Sections     model.ResumeSections `json:"sections"`
	Keywords     []string             `json:"keywords" validate:"required"`
	WordCount    int                  `json:"wordCount" validate:"min=0"`
	JobMatch     *JobMatch            `json:"jobMatch"`
}

type ResumeAnalysisResponse struct {
	ID       uuid.UUID             `json:"id"`
	Analysis *ResumeAnalysisResult `json:"analysis"`
}

type ResumeAnalysisDTO struct {
	ID              uuid.UUID                `json:"id"`
	FileName        string                   `json:"file_name"`
	RawText         string                   `json:"raw_text"`
	ATSScore        int                      `json:"ats_score"`
	OverallScore    int                      `json:"overall_score"`
	AnalysisData    model.ResumeAnalysisData `json:"analysis_data"`
	Suggestions     []model.Suggestion       `json:"suggestions"`
	SkillsExtracted model.ResumeSkills       `json:"skills_extracted"`
	CreatedAt       time.Time                `json:"created_at"`
}

func NewResumeAnalysisDTO(r *model.ResumeAnalysis) ResumeAnalysisDTO {
	return ResumeAnalysisDTO{
		ID:              r.ID,
		FileName:        r.FileName,
		RawText:         r.RawText,
		ATSScore:        r.ATSScore,
		OverallScore:    r.OverallScore,
		AnalysisData:    r.AnalysisData.Data(),
		Suggestions:     []model.Suggestion(r.Suggestions),
		SkillsExtracted: r.SkillsExtracted.Data(),
		CreatedAt:       r.CreatedAt,
	}
}
