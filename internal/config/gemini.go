package config

import (
	"os"
	"sync"
)

type GeminiConfig struct {
	APIKey   string
	Project  string
	Location string
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once
)

func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		geminiConfig = &GeminiConfig{
			APIKey:   os.Getenv("GEMINI_API_KEY"),
			Project:  os.Getenv("GOOGLE_CLOUD_PROJECT"),
			Location: os.Getenv("GOOGLE_CLOUD_LOCATION"),
		}
	})
	return geminiConfig
}

// UseVertex reports whether the Vertex AI backend should be used instead of
// the Gemini developer API.
func (c *GeminiConfig) UseVertex() bool {
	return c.APIKey == "" && c.Project != ""
}
