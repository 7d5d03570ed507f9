package config

import (
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"

	defaultCompletionTimeout = 90 * time.Second
)

// CompletionConfig selects the model backend used for every analysis call.
type CompletionConfig struct {
	Provider string
	Model    string
	Timeout  time.Duration
}

var (
	completionConfig *CompletionConfig
	completionOnce   sync.Once
)

func LoadCompletionConfig() *CompletionConfig {
	completionOnce.Do(func() {
		provider := strings.ToLower(strings.TrimSpace(os.Getenv("COMPLETION_PROVIDER")))
		if provider == "" {
			provider = ProviderOpenRouter
		}

		model := strings.TrimSpace(os.Getenv("COMPLETION_MODEL"))
		if model == "" {
			model = defaultModel(provider)
		}

		timeout := defaultCompletionTimeout
		if raw := os.Getenv("COMPLETION_TIMEOUT"); raw != "" {
			d, err := time.ParseDuration(raw)
			if err != nil || d <= 0 {
				log.Printf("Warning: invalid COMPLETION_TIMEOUT %q, using %s", raw, defaultCompletionTimeout)
			} else {
				timeout = d
			}
		}

		completionConfig = &CompletionConfig{
			Provider: provider,
			Model:    model,
			Timeout:  timeout,
		}
	})
	return completionConfig
}

func defaultModel(provider string) string {
	if provider == ProviderGemini {
		return "gemini-2.5-flash"
	}
	return "openai/gpt-4o-mini"
}
