package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// ollamaClient implements the Client interface against a local Ollama server.
type ollamaClient struct {
	httpClient *http.Client
	baseURL    string
	model      string
}

// newOllamaClient creates a client for a local Ollama server. Construction
// probes the server's model list as a connectivity check, but probe
// failures only log a warning and never block construction.
func newOllamaClient(cfg Config) (Client, error) {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}

	model := cfg.Model
	if model == "" {
		model = "llama3.2"
	}

	c := &ollamaClient{
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}

	c.probeModels()

	return c, nil
}

// probeModels lists the server's available models and warns when the
// configured one is missing. Best-effort only.
func (c *ollamaClient) probeModels() {
	resp, err := c.httpClient.Get(c.baseURL + "/api/tags")
	if err != nil {
		slog.Warn("could not verify Ollama connection; make sure the server is running",
			"url", c.baseURL, "error", err)
		return
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("Ollama model listing failed", "status", resp.StatusCode)
		return
	}

	var tags struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		slog.Warn("could not parse Ollama model listing", "error", err)
		return
	}

	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		if m.Name == c.model {
			return
		}
		names = append(names, m.Name)
	}
	slog.Warn("configured model not found on Ollama server; it will be pulled on first use",
		"model", c.model, "available", names)
}

// Generate sends a chat request to the Ollama server.
func (c *ollamaClient) Generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	requestBody := map[string]any{
		"model":  c.model,
		"stream": false,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": prompt},
		},
		"options": map[string]any{
			"temperature": temperature,
		},
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return "", &BackendError{Provider: "ollama", Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", strings.NewReader(string(jsonBody)))
	if err != nil {
		return "", &BackendError{Provider: "ollama", Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &BackendError{Provider: "ollama", Err: fmt.Errorf("request failed: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &BackendError{Provider: "ollama", Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &BackendError{Provider: "ollama", Err: fmt.Errorf("server error (status %d): %s", resp.StatusCode, string(body))}
	}

	var response struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", &BackendError{Provider: "ollama", Err: fmt.Errorf("failed to parse response: %w", err)}
	}

	return response.Message.Content, nil
}
