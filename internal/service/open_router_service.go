package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fadilmartias/careerlens/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// OpenRouterService talks to an OpenAI-compatible chat completions endpoint
// and asks for a json_schema constrained response.
type OpenRouterService struct {
	client         *resty.Client
	RequestTimeout time.Duration
}

func NewOpenRouterService() *OpenRouterService {
	cfg := config.LoadOpenRouterConfig()
	return NewOpenRouterServiceWithClient(
		resty.New().
			SetBaseURL(cfg.BaseURL).
			SetAuthToken(cfg.APIKey),
		config.LoadCompletionConfig().Timeout,
	)
}

func NewOpenRouterServiceWithClient(client *resty.Client, timeout time.Duration) *OpenRouterService {
	client.SetHeader("Content-Type", "application/json")
	return &OpenRouterService{
		client:         client,
		RequestTimeout: timeout,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (s *OpenRouterService) Complete(ctx context.Context, req CompletionRequest, out any) error {
	if err := validateRequest(req); err != nil {
		return err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	name := req.SchemaName
	if name == "" {
		name = "result"
	}
	payload := map[string]any{
		"model": req.Model,
		"messages": []chatMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.UserPrompt},
		},
		"temperature": 0.2,
		"response_format": map[string]any{
			"type": "json_schema",
			"json_schema": map[string]any{
				"name":   name,
				"strict": true,
				"schema": req.Schema.JSONSchema(),
			},
		},
	}

	resp, err := s.client.R().
		SetContext(timeoutCtx).
		SetBody(payload).
		Post("/chat/completions")
	if err != nil {
		return fmt.Errorf("openrouter request: %w", err)
	}

	body := resp.String()
	if resp.IsError() {
		if msg := gjson.Get(body, "error.message").String(); msg != "" {
			return fmt.Errorf("openrouter api error: %s: %s", resp.Status(), msg)
		}
		return fmt.Errorf("openrouter api error: %s", resp.Status())
	}

	message := gjson.Get(body, "choices.0.message")
	if refusal := message.Get("refusal").String(); refusal != "" {
		return fmt.Errorf("%w: model refused: %s", ErrInvalidOutput, refusal)
	}
	content := message.Get("content").String()

	slog.Debug("openrouter completion",
		"model", req.Model,
		"schema", name,
		"prompt_tokens", gjson.Get(body, "usage.prompt_tokens").Int(),
		"completion_tokens", gjson.Get(body, "usage.completion_tokens").Int(),
	)

	return DecodeStructured(content, req.Schema, out)
}
