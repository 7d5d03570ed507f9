package handler

import (
	"github.com/fadilmartias/careerlens/internal/dto"
	"github.com/fadilmartias/careerlens/internal/middleware"
	"github.com/fadilmartias/careerlens/internal/usecase"
	"github.com/fadilmartias/careerlens/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PortfolioHandler struct {
	uc *usecase.PortfolioUsecase
}

func NewPortfolioHandler(uc *usecase.PortfolioUsecase) *PortfolioHandler {
	return &PortfolioHandler{uc: uc}
}

func (h *PortfolioHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Post("/evaluate-portfolio", auth, h.Evaluate)
	router.Get("/portfolio-evaluations/:id", auth, h.Get)
}

func (h *PortfolioHandler) Evaluate(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.EvaluatePortfolioRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}

	id, evaluation, err := h.uc.Evaluate(c.UserContext(), identity.UserID, req)
	if err != nil {
		return writeUsecaseError(c, err, "Evaluation failed", "Failed to save evaluation")
	}

	return c.JSON(dto.PortfolioEvaluationResponse{ID: id, Evaluation: evaluation})
}

func (h *PortfolioHandler) Get(c *fiber.Ctx) error {
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
		return writeUsecaseError(c, err, "Failed to load evaluation", "Failed to load evaluation")
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get portfolio evaluation",
		Data:    dto.NewPortfolioEvaluationDTO(record),
	})
}
