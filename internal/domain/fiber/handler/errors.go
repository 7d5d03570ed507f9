package handler

import (
	"errors"

	"github.com/fadilmartias/careerlens/internal/usecase"
	"github.com/fadilmartias/careerlens/internal/util"
	"github.com/gofiber/fiber/v2"
)

// writeUsecaseError maps usecase failures to status codes. Upstream and
// storage details stay in the server log.
func writeUsecaseError(c *fiber.Ctx, err error, upstreamMsg, storageMsg string) error {
	var inputErr *usecase.InputError
	switch {
	case errors.As(err, &inputErr):
		return util.ErrorResponse(c, fiber.StatusBadRequest, inputErr.Message, nil)
	case errors.Is(err, usecase.ErrNotFound):
		return util.ErrorResponse(c, fiber.StatusNotFound, "Not found", nil)
	case errors.Is(err, usecase.ErrStorage):
		return util.ErrorResponse(c, fiber.StatusInternalServerError, storageMsg, err)
	default:
		return util.ErrorResponse(c, fiber.StatusInternalServerError, upstreamMsg, err)
	}
}

func unauthorized(c *fiber.Ctx) error {
	return util.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
}
