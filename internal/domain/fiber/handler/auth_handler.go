package handler

import (
	"github.com/fadilmartias/careerlens/internal/middleware"
	"github.com/fadilmartias/careerlens/internal/session"
	"github.com/fadilmartias/careerlens/internal/util"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	sessions session.Provider
}

func NewAuthHandler(sessions session.Provider) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

func (h *AuthHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Get("/auth/me", auth, h.Me)
	router.Post("/auth/sign-out", h.SignOut)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get current user",
		Data:    identity,
	})
}

func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	if err := h.sessions.SignOut(c); err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Sign out failed", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Signed out",
	})
}
