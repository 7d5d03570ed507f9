package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"
)

var (
	// ErrInvalidOutput marks a completion whose content does not satisfy the
	// requested schema.
	ErrInvalidOutput = errors.New("completion output does not match schema")
	// ErrEmptyCompletion marks a completion that returned no content.
	ErrEmptyCompletion = errors.New("empty completion")
)

type CompletionRequest struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
	SchemaName   string
	Schema       *Schema
}

// CompletionServiceInterface returns one structured object per call. On
// success out holds the decoded and validated result; on failure out must
// not be used.
type CompletionServiceInterface interface {
	Complete(ctx context.Context, req CompletionRequest, out any) error
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateRequest(req CompletionRequest) error {
	if req.Model == "" {
		return fmt.Errorf("model name cannot be empty")
	}
	if strings.TrimSpace(req.UserPrompt) == "" {
		return fmt.Errorf("prompt cannot be empty")
	}
	if req.Schema == nil {
		return fmt.Errorf("output schema cannot be nil")
	}
	return nil
}

// DecodeStructured checks raw model output against schema, then decodes it
// into out and runs struct validation on the result.
func DecodeStructured(raw string, schema *Schema, out any) error {
	text := CleanJSON(raw)
	if text == "" {
		return ErrEmptyCompletion
	}
	if !gjson.Valid(text) {
		return fmt.Errorf("%w: not valid JSON", ErrInvalidOutput)
	}
	if err := schema.Validate(text); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	return nil
}

// CleanJSON strips markdown code fences some models wrap around JSON.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
	return strings.TrimSpace(clean)
}
