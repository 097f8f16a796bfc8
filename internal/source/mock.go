// Package source provides inbox backends: a mock inbox backed by a JSON
// file (with built-in samples) for demos and tests, and a live IMAP inbox.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Mai-GitHubb/smart-email-agent/internal/model"
)

// MaxFetch caps how many messages a single fetch returns regardless of the
// requested limit.
const MaxFetch = 100

// MockSource loads messages from a JSON file. A missing or corrupt file
// falls back to the built-in sample inbox so demos always have data.
type MockSource struct {
	Path   string
	logger *slog.Logger
}

// NewMockSource creates a mock inbox over the given JSON file. An empty
// path skips the file and serves the built-in samples directly.
func NewMockSource(path string, logger *slog.Logger) *MockSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &MockSource{Path: path, logger: logger}
}

// mockEntry mirrors one JSON inbox record. Unknown timestamp formats fall
// back to a synthetic recent time.
type mockEntry struct {
	ID             string             `json:"id"`
	Sender         string             `json:"sender"`
	SenderName     string             `json:"sender_name"`
	Subject        string             `json:"subject"`
	Body           string             `json:"body"`
	Timestamp      string             `json:"timestamp"`
	ThreadID       string             `json:"thread_id"`
	Labels         []string           `json:"labels"`
	Attachments    []model.Attachment `json:"attachments"`
	HasAttachments bool               `json:"has_attachments"`
	IsRead         bool               `json:"is_read"`
}

// Fetch returns up to limit messages, newest first as stored. A non-empty
// query keeps only messages whose sender, subject, or body contains it
// (case-insensitive).
func (s *MockSource) Fetch(_ context.Context, limit int, query string) ([]model.Message, error) {
	messages := s.load()

	if query != "" {
		needle := strings.ToLower(query)
		filtered := messages[:0]
		for _, msg := range messages {
			haystack := strings.ToLower(msg.Sender + " " + msg.Subject + " " + msg.Body)
			if strings.Contains(haystack, needle) {
				filtered = append(filtered, msg)
			}
		}
		messages = filtered
	}

	if limit <= 0 || limit > MaxFetch {
		limit = MaxFetch
	}
	if len(messages) > limit {
		messages = messages[:limit]
	}
	return messages, nil
}

// Close is a no-op for the mock inbox.
func (s *MockSource) Close() error {
	return nil
}

func (s *MockSource) load() []model.Message {
	if s.Path == "" {
		return sampleMessages()
	}

	data, err := os.ReadFile(s.Path) // #nosec G304
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read mock inbox, using samples", "path", s.Path, "error", err)
		}
		return sampleMessages()
	}

	var entries []mockEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("failed to parse mock inbox, using samples", "path", s.Path, "error", err)
		return sampleMessages()
	}

	messages := make([]model.Message, 0, len(entries))
	for i, entry := range entries {
		msg := model.Message{
			ID:             entry.ID,
			Sender:         entry.Sender,
			SenderName:     entry.SenderName,
			Subject:        entry.Subject,
			Body:           entry.Body,
			ThreadID:       entry.ThreadID,
			Labels:         entry.Labels,
			Attachments:    entry.Attachments,
			HasAttachments: entry.HasAttachments,
			IsRead:         entry.IsRead,
		}
		if msg.ID == "" {
			msg.ID = fmt.Sprintf("mock_%d", i+1)
		}
		if msg.Sender == "" {
			msg.Sender = "unknown@example.com"
		}
		if msg.SenderName == "" {
			msg.SenderName = "Unknown Sender"
		}
		if msg.Subject == "" {
			msg.Subject = "No Subject"
		}
		if ts, err := time.Parse(time.RFC3339, entry.Timestamp); err == nil {
			msg.Timestamp = ts
		} else {
			msg.Timestamp = time.Now().Add(-time.Duration(i) * 24 * time.Hour)
		}
		messages = append(messages, msg)
	}
	return messages
}
