package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fadilmartias/careerlens/internal/config"
	"google.golang.org/genai"
)

type GeminiService struct {
	Client         *genai.Client
	RequestTimeout time.Duration
}

func NewGeminiService(ctx context.Context) (*GeminiService, error) {
	geminiConfig := config.LoadGeminiConfig()

	clientConfig := &genai.ClientConfig{
		APIKey:  geminiConfig.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if geminiConfig.UseVertex() {
		clientConfig = &genai.ClientConfig{
			Project:  geminiConfig.Project,
			Location: geminiConfig.Location,
			Backend:  genai.BackendVertexAI,
		}
	} else if geminiConfig.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiService{
		Client:         client,
		RequestTimeout: config.LoadCompletionConfig().Timeout,
	}, nil
}

func (s *GeminiService) Complete(ctx context.Context, req CompletionRequest, out any) error {
	if err := validateRequest(req); err != nil {
		return err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	genConfig := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0.2)),
		ResponseMIMEType: "application/json",
		ResponseSchema:   req.Schema.Genai(),
	}
	if req.SystemPrompt != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}

	result, err := s.Client.Models.GenerateContent(
		timeoutCtx,
		req.Model,
		genai.Text(req.UserPrompt),
		genConfig,
	)
	if err != nil {
		return fmt.Errorf("generate content failed: %w", err)
	}
	if err := s.validateGenerateResponse(result); err != nil {
		return fmt.Errorf("invalid response: %w", err)
	}

	return DecodeStructured(result.Text(), req.Schema, out)
}

func (s *GeminiService) validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}

	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}

	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}

	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}

	return nil
}
