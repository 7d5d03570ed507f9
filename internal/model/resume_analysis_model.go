package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PastedResumeFileName is stored when the resume arrived as pasted text.
const PastedResumeFileName = "Pasted Resume"

// MaxRawTextLength caps the stored copy of the submitted resume text.
const MaxRawTextLength = 10000

type ResumeSections struct {
	Contact    ScoredFeedback `json:"contact"`
	Experience ScoredFeedback `json:"experience"`
	Education  ScoredFeedback `json:"education"`
	Skills     ScoredFeedback `json:"skills"`
	Format     ScoredFeedback `json:"format"`
}

type ResumeSkills struct {
	Technical []string `json:"technical" validate:"required"`
	Soft      []string `json:"soft" validate:"required"`
	Missing   []string `json:"missing" validate:"required"`
}

// ResumeAnalysisData is the persisted subset of a resume analysis.
type ResumeAnalysisData struct {
	Summary   string         `json:"summary"`
	Strengths []Strength     `json:"strengths"`
	Sections  ResumeSections `json:"sections"`
	Keywords  []string       `json:"keywords"`
	WordCount int            `json:"wordCount"`
}

type ResumeAnalysis struct {
	ID              uuid.UUID                              `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID                              `gorm:"type:uuid;not null;index:idx_resume_analyses_user_created,priority:1" json:"user_id"`
	FileName        string                                 `gorm:"type:text;not null" json:"file_name"`
	RawText         string                                 `gorm:"type:text" json:"raw_text"`
	ATSScore        int                                    `gorm:"not null;check:ats_score BETWEEN 0 AND 100" json:"ats_score"`
	OverallScore    int                                    `gorm:"not null;check:overall_score BETWEEN 0 AND 100" json:"overall_score"`
	AnalysisData    datatypes.JSONType[ResumeAnalysisData] `gorm:"type:jsonb" json:"analysis_data"`
	Suggestions     datatypes.JSONSlice[Suggestion]        `gorm:"type:jsonb" json:"suggestions"`
	SkillsExtracted datatypes.JSONType[ResumeSkills]       `gorm:"type:jsonb" json:"skills_extracted"`
	CreatedAt       time.Time                              `gorm:"autoCreateTime;index:idx_resume_analyses_user_created,priority:2,sort:desc" json:"created_at"`
}

func (r *ResumeAnalysis) TableName() string {
	return "resume_analyses"
}

func (r *ResumeAnalysis) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TruncateRawText shortens text to MaxRawTextLength characters without
// splitting a multi-byte rune.
func TruncateRawText(text string) string {
	runes := []rune(text)
	if len(runes) <= MaxRawTextLength {
		return text
	}
	return string(runes[:MaxRawTextLength])
}
