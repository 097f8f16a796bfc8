package llm

import (
	"context"
	"time"
)

// systemPrompt is prepended for every provider that supports a system role.
const systemPrompt = "You are a helpful email assistant. Always respond with valid JSON when requested."

// Client defines the uniform call contract over text-generation providers.
// Temperature controls sampling entropy in [0.0, 2.0]: low values favor
// deterministic output, high values favor variety.
type Client interface {
	Generate(ctx context.Context, prompt string, temperature float64) (string, error)
}

// Config holds configuration for the LLM layer.
type Config struct {
	Provider   string
	APIKey     string
	Model      string
	BaseURL    string
	MaxTokens  int
	MaxRetries int
	RetryDelay time.Duration
	CacheTTL   time.Duration
}
