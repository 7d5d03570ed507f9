package handler

import (
	"errors"
	"io"
	"log/slog"

	"github.com/fadilmartias/careerlens/internal/dto"
	"github.com/fadilmartias/careerlens/internal/middleware"
	"github.com/fadilmartias/careerlens/internal/usecase"
	"github.com/fadilmartias/careerlens/internal/util"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

const maxResumeFileSize = 5 * 1024 * 1024

// MaxRequestBodySize leaves room for a maximum-size resume plus the other
// form fields.
const MaxRequestBodySize = maxResumeFileSize + 1024*1024

type ResumeHandler struct {
	uc *usecase.ResumeUsecase
}

func NewResumeHandler(uc *usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Post("/analyze-resume", auth, h.Analyze)
	router.Get("/resume-analyses/:id", auth, h.Get)
}

func (h *ResumeHandler) Analyze(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	sub, formErr := h.readSubmission(c)
	if formErr != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, formErr.Message, nil)
	}

	id, analysis, err := h.uc.Analyze(c.UserContext(), identity.UserID, sub)
	if err != nil {
		return writeUsecaseError(c, err, "Analysis failed", "Failed to save analysis")
	}

	return c.JSON(dto.ResumeAnalysisResponse{ID: id, Analysis: analysis})
}

func (h *ResumeHandler) readSubmission(c *fiber.Ctx) (usecase.ResumeSubmission, *util.FormError) {
	var sub usecase.ResumeSubmission

	form, err := c.MultipartForm()
	if errors.Is(err, fasthttp.ErrNoMultipartForm) {
		return sub, nil
	}
	if err != nil {
		return sub, util.NewFormError("Invalid form data", nil)
	}

	if files := form.File["file"]; len(files) > 0 {
		file := files[0]
		if file.Size > maxResumeFileSize {
			return sub, util.NewFormError("File size is too large (max 5MB)", map[string]string{"file": "max 5MB"})
		}
		f, err := file.Open()
		if err != nil {
			return sub, util.NewFormError("Cannot read file", nil)
		}
		defer f.Close()
		content, err := io.ReadAll(f)
		if err != nil {
			return sub, util.NewFormError("Cannot read file", nil)
		}

		// Uploads are read as text whatever their type; binary formats
		// such as PDF or DOCX are not parsed.
		if detected := mimetype.Detect(content); !isText(detected) {
			slog.Warn("non-text resume upload read as text",
				"file_name", file.Filename,
				"declared_type", file.Header.Get(fiber.HeaderContentType),
				"detected_type", detected.String(),
			)
		}

		sub.HasFile = true
		sub.FileName = file.Filename
		sub.FileContent = content
	}

	if v := form.Value["text"]; len(v) > 0 {
		sub.Text = v[0]
	}
	if v := form.Value["jobDescription"]; len(v) > 0 {
		sub.JobDescription = v[0]
	}
	return sub, nil
}

func isText(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

func (h *ResumeHandler) Get(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id", nil)
	}

	record, err := h.uc.Get(c.UserContext(), identity.UserID, id)
	if err != nil {
		return writeUsecaseError(c, err, "Failed to load analysis", "Failed to load analysis")
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get resume analysis",
		Data:    dto.NewResumeAnalysisDTO(record),
	})
}
