package usecase

import (
	"fmt"

	"github.com/fadilmartias/careerlens/internal/model"
)

const resumeSystemPrompt = `You are an expert career counselor and resume analyst with years of experience in recruiting, applicant tracking systems (ATS) and hiring across industries.

Analyze the provided resume and give detailed, actionable feedback. Consider:
- ATS compatibility: standard section headings, parseable layout, keyword coverage
- Impact: quantified achievements, strong action verbs, relevance of experience
- Structure and formatting: clarity, consistency, length
- Skills: technical and soft skills shown, and skills that are commonly expected but missing
- Each section (contact, experience, education, skills, format) scored from 0-100 with specific feedback

All scores are integers from 0 to 100. Every improvement has a priority of high, medium or low.
Be specific and constructive. Base the analysis only on the text provided.`

const portfolioSystemPromptFormat = `You are an expert career coach and professional branding specialist with deep knowledge of online presence optimization, personal branding, and what makes professional profiles stand out to recruiters and hiring managers.

Evaluate the provided %s URL and provide detailed, actionable feedback. Consider:
- Completeness of information
- Professional presentation
- Content quality and relevance
- Visibility and discoverability
- Industry best practices

Be specific and constructive in your analysis. Focus on actionable improvements that will have the most impact.

Note: You are evaluating based on the URL provided. Analyze what a typical %s profile at this URL would contain and provide relevant feedback.`

var evaluationTypeDescriptions = map[string]string{
	model.EvaluationTypeLinkedIn:  "LinkedIn professional profile",
	model.EvaluationTypeGitHub:    "GitHub developer profile and repositories",
	model.EvaluationTypePortfolio: "personal portfolio website",
	model.EvaluationTypeOther:     "professional online profile or project",
}

// DescribeEvaluationType falls back to the "other" description for unknown
// tags.
func DescribeEvaluationType(evaluationType string) string {
	if desc, ok := evaluationTypeDescriptions[evaluationType]; ok {
		return desc
	}
	return evaluationTypeDescriptions[model.EvaluationTypeOther]
}

// BuildResumePrompts returns the system and user prompt for a resume.
// jobDescription is empty when the caller supplied none.
func BuildResumePrompts(resumeText, jobDescription string) (string, string) {
	user := fmt.Sprintf("Please analyze this resume:\n\n%s", resumeText)
	if jobDescription != "" {
		user += fmt.Sprintf("\n\nTarget Job Description:\n%s", jobDescription)
	} else {
		user += "\n\nNo target job description was provided. Set jobMatch to null."
	}
	return resumeSystemPrompt, user
}

func BuildPortfolioPrompts(url, evaluationType string) (string, string) {
	desc := DescribeEvaluationType(evaluationType)
	if evaluationType == "" {
		evaluationType = model.EvaluationTypeOther
	}
	system := fmt.Sprintf(portfolioSystemPromptFormat, desc, evaluationType)
	user := fmt.Sprintf(`Please evaluate this %s:

URL: %s

Provide a comprehensive evaluation of this professional profile, including scores, strengths, areas for improvement, and specific recommendations.`, desc, url)
	return system, user
}
