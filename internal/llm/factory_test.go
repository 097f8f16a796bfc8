package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "ollama requires no credential",
			cfg:  Config{Provider: "ollama", BaseURL: "http://127.0.0.1:1"},
		},
		{
			name: "provider matching is case insensitive",
			cfg:  Config{Provider: "OpenAI", APIKey: "sk-test"},
		},
		{
			name:    "openai without key",
			cfg:     Config{Provider: "openai"},
			wantErr: "API key is required",
		},
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: "API key is required",
		},
		{
			name: "anthropic with key",
			cfg:  Config{Provider: "anthropic", APIKey: "sk-ant-test"},
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "palm"},
			wantErr: "unsupported LLM provider",
		},
		{
			name:    "empty provider",
			cfg:     Config{},
			wantErr: "unsupported LLM provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}
