// Package service defines the interfaces for the application's collaborators.
package service

import (
	"context"
	"time"

	"github.com/Mai-GitHubb/smart-email-agent/internal/model"
)

// Source fetches messages from a mailbox-like origin. Implementations must
// never return more messages than their own cap regardless of limit;
// most-recent-first ordering is conventional but not guaranteed.
type Source interface {
	Fetch(ctx context.Context, limit int, query string) ([]model.Message, error)
	Close() error
}

// EventPusher publishes confirmed events (or tasks as all-day events) to an
// external calendar. An empty id with a nil error signals a non-fatal
// failure such as unavailable auth; implementations never panic into the
// pipeline.
type EventPusher interface {
	PushEvent(ctx context.Context, event model.Event) (string, error)
	PushTask(ctx context.Context, task model.Task) (string, error)
}

// PromptPersistence stores the full prompt template mapping.
type PromptPersistence interface {
	Load() (map[string]string, error)
	Save(templates map[string]string) error
}

// RetryOptions configures retry behavior for fallible operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
