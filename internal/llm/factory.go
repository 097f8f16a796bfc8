package llm

import (
	"fmt"
	"strings"
)

// NewClient creates an LLM client based on the provided configuration.
// Provider selection happens here, once; no string comparison on provider
// names exists anywhere else.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "ollama":
		return newOllamaClient(cfg)
	case "openai":
		return newOpenAIClient(cfg)
	case "anthropic":
		return newAnthropicClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
