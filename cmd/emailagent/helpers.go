package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/viper"

	"github.com/Mai-GitHubb/smart-email-agent/internal/calendar"
	"github.com/Mai-GitHubb/smart-email-agent/internal/config"
	"github.com/Mai-GitHubb/smart-email-agent/internal/llm"
	"github.com/Mai-GitHubb/smart-email-agent/internal/model"
	"github.com/Mai-GitHubb/smart-email-agent/internal/prompts"
	"github.com/Mai-GitHubb/smart-email-agent/internal/service"
	"github.com/Mai-GitHubb/smart-email-agent/internal/source"
	"github.com/Mai-GitHubb/smart-email-agent/internal/store"
)

// session wires the source, store, prompt templates, and LLM pipeline for
// one command invocation. State lives only for the life of the command.
type session struct {
	source    service.Source
	store     *store.Store
	prompts   *prompts.Store
	processor *llm.Processor
}

func newSession() (*session, error) {
	src, err := newSource()
	if err != nil {
		return nil, err
	}

	promptStore := newPromptStore()

	client, err := llm.NewClient(llmConfig())
	if err != nil {
		_ = src.Close()
		return nil, err
	}

	return &session{
		source:    src,
		store:     store.New(),
		prompts:   promptStore,
		processor: llm.NewProcessor(client, promptStore, llmConfig(), slog.Default()),
	}, nil
}

func (s *session) Close() {
	s.processor.Close()
	if err := s.source.Close(); err != nil {
		slog.Warn("failed to close source", "error", err)
	}
}

// fetchAndProcess pulls messages from the source and runs the full
// pipeline over each, recording messages, tasks, and events in the store.
func (s *session) fetchAndProcess(ctx context.Context, limit int, query string, showProgress bool) error {
	return s.fetch(ctx, limit, query, showProgress, true)
}

// fetchAndCategorize runs categorization only, skipping task and event
// extraction.
func (s *session) fetchAndCategorize(ctx context.Context, limit int, query string, showProgress bool) error {
	return s.fetch(ctx, limit, query, showProgress, false)
}

func (s *session) fetch(ctx context.Context, limit int, query string, showProgress, extract bool) error {
	messages, err := s.source.Fetch(ctx, limit, query)
	if err != nil {
		return fmt.Errorf("failed to fetch messages: %w", err)
	}

	var bar *progressbar.ProgressBar
	if showProgress && len(messages) > 0 {
		bar = progressbar.NewOptions(len(messages),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("[cyan]Processing inbox...[reset]"),
		)
	}

	for i := range messages {
		if err := ctx.Err(); err != nil {
			return err
		}

		msg := messages[i]
		if extract {
			result := s.processor.ProcessMessage(ctx, &msg)
			s.store.AddMessage(msg)
			for _, task := range result.Tasks {
				s.store.AddTask(task)
			}
			for _, event := range result.Events {
				s.store.AddEvent(event)
			}
		} else {
			category := s.processor.Categorize(ctx, msg)
			msg.Category = category.Category
			msg.Priority = category.Priority
			s.store.AddMessage(msg)
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		fmt.Fprintln(os.Stderr)
	}

	return nil
}

// findMessage fetches without processing and returns the message with the
// given id.
func (s *session) findMessage(ctx context.Context, id string) (model.Message, error) {
	messages, err := s.source.Fetch(ctx, 0, "")
	if err != nil {
		return model.Message{}, fmt.Errorf("failed to fetch messages: %w", err)
	}
	for _, msg := range messages {
		if msg.ID == id {
			return msg, nil
		}
	}
	return model.Message{}, fmt.Errorf("message %s not found", id)
}

func newSource() (service.Source, error) {
	switch strings.ToLower(viper.GetString("source.type")) {
	case "imap":
		return source.NewIMAPSource(source.IMAPConfig{
			Server:   viper.GetString("source.imap.server"),
			Username: viper.GetString("source.imap.username"),
			Password: viper.GetString("source.imap.password"),
			Mailbox:  viper.GetString("source.imap.mailbox"),
		}, slog.Default())
	case "mock", "":
		path := viper.GetString("source.mock_file")
		if path != "" {
			path = config.ExpandPath(path)
		}
		return source.NewMockSource(path, slog.Default()), nil
	default:
		return nil, fmt.Errorf("unknown source type: %s", viper.GetString("source.type"))
	}
}

func newPromptStore() *prompts.Store {
	path := viper.GetString("prompts.path")
	if path == "" {
		path = config.DataPath("prompts.json")
	} else {
		path = config.ExpandPath(path)
	}
	return prompts.NewStore(&prompts.FileStore{Path: path}, slog.Default())
}

func llmConfig() llm.Config {
	provider := viper.GetString("llm.provider")
	if provider == "" {
		provider = "ollama"
	}
	return llm.Config{
		Provider:   provider,
		APIKey:     viper.GetString("llm.api_key"),
		Model:      viper.GetString("llm.model"),
		BaseURL:    viper.GetString("llm.base_url"),
		MaxRetries: viper.GetInt("llm.max_retries"),
	}
}

func calendarConfig() calendar.Config {
	tokenFile := viper.GetString("calendar.token_file")
	if tokenFile == "" {
		tokenFile = config.DataPath("calendar_token.json")
	} else {
		tokenFile = config.ExpandPath(tokenFile)
	}
	return calendar.Config{
		ClientID:     viper.GetString("calendar.client_id"),
		ClientSecret: viper.GetString("calendar.client_secret"),
		TokenFile:    tokenFile,
		CalendarID:   viper.GetString("calendar.id"),
	}
}
