package usecase

import (
	"github.com/fadilmartias/careerlens/internal/service"
)

func strengthSchema() *service.Schema {
	return service.Object(
		service.Prop("title", service.String()),
		service.Prop("description", service.String()),
	)
}

func improvementSchema() *service.Schema {
	return service.Object(
		service.Prop("title", service.String()),
		service.Prop("description", service.String()),
		service.Prop("priority", service.Enum("high", "medium", "low")),
	)
}

func scoredFeedbackSchema(desc string) *service.Schema {
	s := service.Object(
		service.Prop("score", service.Score()),
		service.Prop("feedback", service.String()),
	)
	if desc != "" {
		s.Describe(desc)
	}
	return s
}

func stringList() *service.Schema {
	return service.ArrayOf(service.String())
}

// resumeAnalysisSchema mirrors dto.ResumeAnalysisResult.
var resumeAnalysisSchema = service.Object(
	service.Prop("atsScore", service.Score().Describe("ATS compatibility score from 0-100")),
	service.Prop("overallScore", service.Score().Describe("Overall resume quality score from 0-100")),
	service.Prop("summary", service.String().Describe("Brief 2-3 sentence summary of the resume quality")),
	service.Prop("strengths", service.ArrayOf(strengthSchema()).Describe("List of 3-5 key strengths")),
	service.Prop("improvements", service.ArrayOf(improvementSchema()).Describe("List of suggested improvements with priority")),
	service.Prop("skills", service.Object(
		service.Prop("technical", stringList()),
		service.Prop("soft", stringList()),
		service.Prop("missing", stringList()),
	)),
	service.Prop("sections", service.Object(
		service.Prop("contact", scoredFeedbackSchema("Contact information")),
		service.Prop("experience", scoredFeedbackSchema("Work experience")),
		service.Prop("education", scoredFeedbackSchema("Education")),
		service.Prop("skills", scoredFeedbackSchema("Skills section")),
		service.Prop("format", scoredFeedbackSchema("Formatting and structure")),
	)),
	service.Prop("keywords", stringList().Describe("Important keywords found in the resume")),
	service.Prop("wordCount", service.Integer()),
	service.Prop("jobMatch", service.Object(
		service.Prop("score", service.Score().OrNull()),
		service.Prop("missingKeywords", stringList()),
		service.Prop("matchingKeywords", stringList()),
		service.Prop("feedback", service.String()),
	).OrNull().Describe("Comparison against the target job description, null when none was given")),
)

// portfolioEvaluationSchema mirrors dto.PortfolioEvaluationResult.
var portfolioEvaluationSchema = service.Object(
	service.Prop("score", service.Score().Describe("Overall profile quality score from 0-100")),
	service.Prop("summary", service.String().Describe("Brief 2-3 sentence summary of the profile quality")),
	service.Prop("strengths", service.ArrayOf(strengthSchema()).Describe("List of 3-5 key strengths")),
	service.Prop("improvements", service.ArrayOf(improvementSchema()).Describe("List of 4-6 suggested improvements with priority")),
	service.Prop("categories", service.Object(
		service.Prop("completeness", scoredFeedbackSchema("How complete is the profile")),
		service.Prop("professionalism", scoredFeedbackSchema("Professional presentation")),
		service.Prop("content", scoredFeedbackSchema("Quality of content and descriptions")),
		service.Prop("visibility", scoredFeedbackSchema("How discoverable and prominent")),
	)),
	service.Prop("highlights", stringList().Describe("Key highlights or notable elements")),
	service.Prop("redFlags", stringList().Describe("Potential issues or red flags to address")),
	service.Prop("recommendations", service.ArrayOf(service.Object(
		service.Prop("action", service.String()),
		service.Prop("impact", service.String()),
		service.Prop("effort", service.Enum("quick", "moderate", "significant")),
	)).Describe("Specific actionable recommendations")),
)
