package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Mai-GitHubb/smart-email-agent/internal/common"
	"github.com/Mai-GitHubb/smart-email-agent/internal/dates"
	"github.com/Mai-GitHubb/smart-email-agent/internal/model"
	"github.com/Mai-GitHubb/smart-email-agent/internal/prompts"
	"github.com/Mai-GitHubb/smart-email-agent/internal/service"
)

// Prompt size bounds. Bodies are cut uniformly before every prompt; there
// is no summarization fallback for long messages.
const (
	maxBodyChars    = 2000
	maxReviewChars  = 1000
	maxRecentChars  = 200
	maxRecentEmails = 5
)

// Fixed sampling temperatures per operation.
const (
	tempExtraction = 0.3 // categorization, task/event extraction, tone check
	tempExplain    = 0.5 // explanation, sender context
	tempQuery      = 0.6 // inbox query
	tempReply      = 0.7 // reply and new-draft generation
)

// Processor runs the extraction pipeline: render template, call the
// backend, parse the response, construct the typed result. It holds no
// domain state across calls; every operation converts any failure into its
// documented fallback and never returns an error.
type Processor struct {
	client    Client
	templates *prompts.Store
	cache     *resultCache
	logger    *slog.Logger
	retryOpts service.RetryOptions
}

// NewProcessor creates a pipeline processor over the given client and
// template store.
func NewProcessor(client Client, templates *prompts.Store, cfg Config, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}

	retryOpts := service.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
	if retryOpts.MaxAttempts == 0 {
		retryOpts.MaxAttempts = 3
	}
	if retryOpts.InitialDelay == 0 {
		retryOpts.InitialDelay = time.Second
	}

	return &Processor{
		client:    client,
		templates: templates,
		cache:     newResultCache(cfg.CacheTTL),
		logger:    logger,
		retryOpts: retryOpts,
	}
}

// Close releases the processor's cache resources.
func (p *Processor) Close() {
	p.cache.Close()
}

// Categorize assigns a category and priority to a message. On any failure
// (backend error, unparseable response) it returns the neutral fallback
// with the error retained in the reasoning field; it never fails.
func (p *Processor) Categorize(ctx context.Context, msg model.Message) model.CategoryResult {
	if cached, ok := p.cache.get(msg.ID); ok {
		p.logger.Debug("categorization cache hit", "message_id", msg.ID)
		return cached
	}

	prompt := p.render(prompts.Categorization, map[string]string{
		"sender":  msg.Sender,
		"subject": msg.Subject,
		"body":    truncate(msg.Body, maxBodyChars),
	})

	result, err := p.categorize(ctx, prompt)
	if err != nil {
		p.logger.Debug("categorization failed, using fallback",
			"message_id", msg.ID, "error", err)
		return model.CategoryResult{
			Category:   "Other",
			Priority:   model.PriorityMedium,
			Confidence: 0.0,
			Reasoning:  fmt.Sprintf("Error during categorization: %v", err),
		}
	}

	p.cache.set(msg.ID, result)
	return result
}

func (p *Processor) categorize(ctx context.Context, prompt string) (model.CategoryResult, error) {
	response, err := p.generate(ctx, prompt, tempExtraction)
	if err != nil {
		return model.CategoryResult{}, err
	}

	value, err := ExtractJSON(response)
	if err != nil {
		return model.CategoryResult{}, err
	}

	// Absent fields keep these presets.
	result := model.CategoryResult{
		Category:   "Other",
		Priority:   model.PriorityMedium,
		Confidence: 0.5,
	}
	if err := json.Unmarshal(value, &result); err != nil {
		return model.CategoryResult{}, &ParseError{Raw: response, Err: err}
	}
	if result.Category == "" {
		result.Category = "Other"
	}
	if result.Priority == "" {
		result.Priority = model.PriorityMedium
	}
	return result, nil
}

// taskPayload is the loosely typed wire shape of one extracted task.
type taskPayload struct {
	TaskID   string `json:"task_id"`
	Title    string `json:"title"`
	DueDate  string `json:"due_date"`
	Status   string `json:"status"`
	Notes    string `json:"notes"`
	Priority string `json:"priority"`
}

// ExtractTasks pulls actionable tasks out of a message. Any failure yields
// an empty list; it never fails. Tasks missing an id get one namespaced by
// the source message id plus an ordinal, and due dates are normalized to
// YYYY-MM-DD (unparseable dates are dropped rather than stored free-form).
func (p *Processor) ExtractTasks(ctx context.Context, msg model.Message) []model.Task {
	prompt := p.render(prompts.TaskExtraction, map[string]string{
		"sender":     msg.Sender,
		"subject":    msg.Subject,
		"body":       truncate(msg.Body, maxBodyChars),
		"message_id": msg.ID,
	})

	items, err := p.generateList(ctx, prompt, tempExtraction)
	if err != nil {
		p.logger.Debug("task extraction failed, returning no tasks",
			"message_id", msg.ID, "error", err)
		return []model.Task{}
	}

	tasks := make([]model.Task, 0, len(items))
	for i, item := range items {
		var payload taskPayload
		if err := json.Unmarshal(item, &payload); err != nil {
			p.logger.Debug("skipping malformed task entry", "message_id", msg.ID, "error", err)
			continue
		}

		task := model.Task{
			ID:              payload.TaskID,
			Title:           payload.Title,
			SourceMessageID: msg.ID,
			Status:          model.TaskStatus(payload.Status),
			Notes:           payload.Notes,
			Priority:        payload.Priority,
		}
		if task.ID == "" {
			task.ID = fmt.Sprintf("task_%s_%d", msg.ID, i)
		}
		if !model.ValidTaskStatus(task.Status) {
			task.Status = model.TaskTodo
		}
		if norm, ok := dates.Normalize(payload.DueDate); ok {
			task.DueDate = norm
		}

		tasks = append(tasks, task)
	}
	return tasks
}

// eventPayload is the loosely typed wire shape of one extracted event.
type eventPayload struct {
	EventID      string   `json:"event_id"`
	Type         string   `json:"type"`
	Title        string   `json:"title"`
	Date         string   `json:"date"`
	StartTime    string   `json:"start_time"`
	EndTime      string   `json:"end_time"`
	Location     string   `json:"location"`
	Participants []string `json:"participants"`
	Confidence   float64  `json:"confidence"`
	AllDay       bool     `json:"all_day"`
}

// ExtractEvents pulls meetings and deadlines out of a message. Any failure
// yields an empty list; it never fails. Every event starts in the
// suggested state.
func (p *Processor) ExtractEvents(ctx context.Context, msg model.Message) []model.Event {
	prompt := p.render(prompts.EventExtraction, map[string]string{
		"sender":     msg.Sender,
		"subject":    msg.Subject,
		"body":       truncate(msg.Body, maxBodyChars),
		"message_id": msg.ID,
	})

	items, err := p.generateList(ctx, prompt, tempExtraction)
	if err != nil {
		p.logger.Debug("event extraction failed, returning no events",
			"message_id", msg.ID, "error", err)
		return []model.Event{}
	}

	events := make([]model.Event, 0, len(items))
	for i, item := range items {
		payload := eventPayload{Confidence: 0.5}
		if err := json.Unmarshal(item, &payload); err != nil {
			p.logger.Debug("skipping malformed event entry", "message_id", msg.ID, "error", err)
			continue
		}

		event := model.Event{
			ID:              payload.EventID,
			Type:            model.EventType(payload.Type),
			Title:           payload.Title,
			StartTime:       payload.StartTime,
			EndTime:         payload.EndTime,
			Location:        payload.Location,
			Participants:    payload.Participants,
			SourceMessageID: msg.ID,
			Confidence:      payload.Confidence,
			AllDay:          payload.AllDay,
			Status:          model.EventSuggested,
		}
		if event.ID == "" {
			event.ID = fmt.Sprintf("event_%s_%d", msg.ID, i)
		}
		if event.Type != model.EventDeadline {
			event.Type = model.EventMeeting
		}
		if norm, ok := dates.Normalize(payload.Date); ok {
			event.Date = norm
		}

		events = append(events, event)
	}
	return events
}

// GenerateReply drafts a reply to a message in the requested tone. On
// failure it returns a human-readable error string instead of failing.
func (p *Processor) GenerateReply(ctx context.Context, msg model.Message, instructions, tone string) string {
	if instructions == "" {
		instructions = "No specific instructions"
	}

	prompt := p.render(prompts.ReplyGeneration, map[string]string{
		"sender":            msg.Sender,
		"subject":           msg.Subject,
		"body":              truncate(msg.Body, maxBodyChars),
		"user_instructions": instructions,
		"tone":              tone,
	})

	response, err := p.generate(ctx, prompt, tempReply)
	if err != nil {
		return fmt.Sprintf("Error generating reply: %v", err)
	}
	return strings.TrimSpace(response)
}

// ComposeDraft generates a brand-new email draft from user requirements.
func (p *Processor) ComposeDraft(ctx context.Context, requirements, recipient, tone, subject string) string {
	prompt := p.render(prompts.NewDraft, map[string]string{
		"user_requirements": requirements,
		"recipient":         recipient,
		"tone":              tone,
		"subject":           subject,
	})

	response, err := p.generate(ctx, prompt, tempReply)
	if err != nil {
		return fmt.Sprintf("Error generating draft: %v", err)
	}
	return strings.TrimSpace(response)
}

// ExplainDecision produces a plain-language explanation of why a message
// was categorized and processed the way it was.
func (p *Processor) ExplainDecision(ctx context.Context, msg model.Message, category, priority string, tasks []model.Task, events []model.Event) string {
	taskTitles := make([]string, 0, len(tasks))
	for _, t := range tasks {
		taskTitles = append(taskTitles, t.Title)
	}
	eventTitles := make([]string, 0, len(events))
	for _, e := range events {
		eventTitles = append(eventTitles, e.Title)
	}

	prompt := p.render(prompts.Explanation, map[string]string{
		"sender":   msg.Sender,
		"subject":  msg.Subject,
		"body":     truncate(msg.Body, maxReviewChars),
		"category": category,
		"priority": priority,
		"tasks":    joinOrNone(taskTitles),
		"events":   joinOrNone(eventTitles),
	})

	response, err := p.generate(ctx, prompt, tempExplain)
	if err != nil {
		return fmt.Sprintf("Error generating explanation: %v", err)
	}
	return strings.TrimSpace(response)
}

// CheckReplyTone reviews a draft reply for tone and completeness. On
// failure it returns the conservative verdict with the error in feedback.
func (p *Processor) CheckReplyTone(ctx context.Context, msg model.Message, draftReply, requestedTone string) model.ToneCheck {
	prompt := p.render(prompts.ToneCheck, map[string]string{
		"sender":         msg.Sender,
		"subject":        msg.Subject,
		"original_body":  truncate(msg.Body, maxReviewChars),
		"draft_reply":    draftReply,
		"requested_tone": requestedTone,
	})

	check, err := p.checkTone(ctx, prompt)
	if err != nil {
		return model.ToneCheck{
			ToneAppropriate:      false,
			IsPolite:             true,
			AllQuestionsAnswered: false,
			Feedback:             fmt.Sprintf("Error checking reply: %v", err),
			Suggestions:          []string{},
		}
	}
	return check
}

func (p *Processor) checkTone(ctx context.Context, prompt string) (model.ToneCheck, error) {
	response, err := p.generate(ctx, prompt, tempExtraction)
	if err != nil {
		return model.ToneCheck{}, err
	}

	value, err := ExtractJSON(response)
	if err != nil {
		return model.ToneCheck{}, err
	}

	var check model.ToneCheck
	if err := json.Unmarshal(value, &check); err != nil {
		return model.ToneCheck{}, &ParseError{Raw: response, Err: err}
	}
	if check.Suggestions == nil {
		check.Suggestions = []string{}
	}
	return check, nil
}

// SenderContext summarizes the relationship with a sender from recent
// messages. At most five recent messages contribute, each body cut short.
func (p *Processor) SenderContext(ctx context.Context, senderName, senderEmail string, recent []model.Message) string {
	if len(recent) > maxRecentEmails {
		recent = recent[:maxRecentEmails]
	}

	snippets := make([]string, 0, len(recent))
	for _, m := range recent {
		snippets = append(snippets, fmt.Sprintf("Subject: %s\nBody: %s", m.Subject, truncate(m.Body, maxRecentChars)))
	}

	prompt := p.render(prompts.SenderContext, map[string]string{
		"sender_name":   senderName,
		"sender_email":  senderEmail,
		"recent_emails": strings.Join(snippets, "\n\n"),
	})

	response, err := p.generate(ctx, prompt, tempExplain)
	if err != nil {
		return fmt.Sprintf("Error generating context: %v", err)
	}
	return strings.TrimSpace(response)
}

// InboxContext summarizes the session's inbox for natural-language queries.
type InboxContext struct {
	Categories    string
	TasksSummary  string
	EventsSummary string
	TotalMessages int
	UnreadCount   int
}

// InboxQuery answers a natural-language question about the inbox.
func (p *Processor) InboxQuery(ctx context.Context, query string, info InboxContext) string {
	prompt := p.render(prompts.InboxQuery, map[string]string{
		"query":          query,
		"total_messages": fmt.Sprintf("%d", info.TotalMessages),
		"unread_count":   fmt.Sprintf("%d", info.UnreadCount),
		"categories":     info.Categories,
		"tasks_summary":  info.TasksSummary,
		"events_summary": info.EventsSummary,
	})

	response, err := p.generate(ctx, prompt, tempQuery)
	if err != nil {
		return fmt.Sprintf("Error processing query: %v", err)
	}
	return strings.TrimSpace(response)
}

// ProcessResult bundles the outcome of processing one message.
type ProcessResult struct {
	Category model.CategoryResult
	Tasks    []model.Task
	Events   []model.Event
}

// ProcessMessage runs categorization and extraction for one message,
// folding the category and priority into the message in place. Each
// operation is independently fallback-safe, so a failure in one never
// prevents the others from running.
func (p *Processor) ProcessMessage(ctx context.Context, msg *model.Message) ProcessResult {
	result := ProcessResult{
		Category: p.Categorize(ctx, *msg),
	}
	msg.Category = result.Category.Category
	msg.Priority = result.Category.Priority

	result.Tasks = p.ExtractTasks(ctx, *msg)
	result.Events = p.ExtractEvents(ctx, *msg)
	return result
}

// render looks up a template by name and substitutes the given fields.
func (p *Processor) render(name string, fields map[string]string) string {
	template, ok := p.templates.Get(name)
	if !ok {
		p.logger.Warn("unknown prompt template", "name", name)
		return ""
	}
	return prompts.Render(template, fields)
}

// generate calls the backend with retry.
func (p *Processor) generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	var response string
	err := common.WithRetry(ctx, func() error {
		var callErr error
		response, callErr = p.client.Generate(ctx, prompt, temperature)
		return callErr
	}, p.retryOpts)
	return response, err
}

// generateList calls the backend and normalizes the parsed JSON into a
// list: a bare object becomes a one-element list, null or any other
// non-list value becomes an empty one.
func (p *Processor) generateList(ctx context.Context, prompt string, temperature float64) ([]json.RawMessage, error) {
	response, err := p.generate(ctx, prompt, temperature)
	if err != nil {
		return nil, err
	}

	value, err := ExtractJSON(response)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 {
		return nil, nil
	}
	switch trimmed[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, &ParseError{Raw: response, Err: err}
		}
		return items, nil
	case '{':
		return []json.RawMessage{json.RawMessage(trimmed)}, nil
	default:
		return nil, nil
	}
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}
