package util

import (
	"fmt"
	"log/slog"

	"github.com/fadilmartias/careerlens/internal/response"
	"github.com/gofiber/fiber/v2"
)

type SuccessResponseFormat struct {
	Code       int
	Message    string
	Data       any
	Pagination *response.Pagination
	Meta       any
}

type OrderedSuccessResponse struct {
	Success    bool                 `json:"success"`
	Message    string               `json:"message"`
	Meta       any                  `json:"meta,omitempty"`
	Pagination *response.Pagination `json:"pagination,omitempty"`
	Data       any                  `json:"data,omitempty"`
}

// ErrorBody is the only error shape clients ever see.
type ErrorBody struct {
	Error string `json:"error"`
}

// SuccessResponse mengirim response JSON standar untuk sukses
func SuccessResponse(c *fiber.Ctx, params SuccessResponseFormat) error {
	code := params.Code
	if code == 0 {
		code = fiber.StatusOK
	}
	return c.Status(code).JSON(OrderedSuccessResponse{
		Success:    true,
		Message:    params.Message,
		Data:       params.Data,
		Pagination: params.Pagination,
		Meta:       params.Meta,
	})
}

// ErrorResponse writes {"error": message}. The cause, if any, is logged and
// never sent to the client.
func ErrorResponse(c *fiber.Ctx, code int, message string, cause error) error {
	if code == 0 {
		code = fiber.StatusInternalServerError
	}
	if message == "" {
		message = "Internal Server Error"
	}
	if cause != nil {
		slog.Error(message,
			"status", code,
			"method", c.Method(),
			"path", c.Path(),
			"request_id", RequestID(c),
			"error", cause,
		)
	}
	return c.Status(code).JSON(ErrorBody{Error: message})
}

// RequestID returns the id assigned by the requestid middleware.
func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}

// FormError rejects a malformed request form. Errors maps field names to
// per-field messages when there are any.
type FormError struct {
	Errors  map[string]string
	Message string
}

func (e *FormError) Error() string {
	return fmt.Sprintf("form error: %s", e.Message)
}

func NewFormError(message string, errors map[string]string) *FormError {
	return &FormError{
		Message: message,
		Errors:  errors,
	}
}
