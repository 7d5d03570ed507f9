package handler

import (
	"github.com/fadilmartias/careerlens/internal/middleware"
	"github.com/fadilmartias/careerlens/internal/usecase"
	"github.com/fadilmartias/careerlens/internal/util"
	"github.com/gofiber/fiber/v2"
)

type HistoryHandler struct {
	uc *usecase.HistoryUsecase
}

func NewHistoryHandler(uc *usecase.HistoryUsecase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

func (h *HistoryHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Get("/history", auth, h.History)
	router.Get("/dashboard", auth, h.Dashboard)
}

func (h *HistoryHandler) History(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", usecase.DefaultHistoryPageSize)

	items, pagination, meta, err := h.uc.List(c.UserContext(), identity.UserID, page, pageSize)
	if err != nil {
		return writeUsecaseError(c, err, "Failed to load history", "Failed to load history")
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success get history",
		Data:       items,
		Pagination: pagination,
		Meta:       meta,
	})
}

func (h *HistoryHandler) Dashboard(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	summary, err := h.uc.Dashboard(c.UserContext(), identity.UserID)
	if err != nil {
		return writeUsecaseError(c, err, "Failed to load dashboard", "Failed to load dashboard")
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get dashboard",
		Data:    summary,
	})
}
