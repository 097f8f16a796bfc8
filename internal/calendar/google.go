// Package calendar pushes confirmed events and dated tasks to Google
// Calendar over the Calendar v3 API with OAuth2 credentials.
package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/Mai-GitHubb/smart-email-agent/internal/common"
	"github.com/Mai-GitHubb/smart-email-agent/internal/model"
)

// Config holds the OAuth2 settings for the calendar connection.
type Config struct {
	ClientID     string
	ClientSecret string
	TokenFile    string // persisted oauth2.Token JSON
	CalendarID   string // defaults to "primary"
}

// GoogleCalendar publishes events to a Google calendar.
type GoogleCalendar struct {
	service    *gcal.Service
	calendarID string
	logger     *slog.Logger
}

// New creates a calendar client from a previously saved OAuth token. The
// token must already exist; acquiring one interactively is the auth
// command's job.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*GoogleCalendar, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("calendar client id and secret are required: %w", common.ErrMissingConfig)
	}
	if cfg.CalendarID == "" {
		cfg.CalendarID = "primary"
	}

	token, err := LoadToken(cfg.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar token (run auth first): %w", err)
	}

	oauthConfig := oauthConfig(cfg)
	httpClient := oauthConfig.Client(ctx, token)

	service, err := gcal.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return &GoogleCalendar{
		service:    service,
		calendarID: cfg.CalendarID,
		logger:     logger,
	}, nil
}

// PushEvent inserts an event into the calendar and returns the created
// calendar event id. Timed events without an end time default to one hour.
func (g *GoogleCalendar) PushEvent(ctx context.Context, event model.Event) (string, error) {
	if event.Date == "" {
		return "", fmt.Errorf("event %s has no date", event.ID)
	}

	body := &gcal.Event{
		Summary:     event.Title,
		Description: fmt.Sprintf("Type: %s\n\nSource: Smart Email Agent (Message ID: %s)", event.Type, event.SourceMessageID),
		Location:    event.Location,
	}

	if event.StartTime != "" && !event.AllDay {
		start := fmt.Sprintf("%sT%s:00", event.Date, event.StartTime)
		end := fmt.Sprintf("%sT%s:00", event.Date, event.EndTime)
		if event.EndTime == "" {
			end = plusOneHour(event.Date, event.StartTime)
		}
		body.Start = &gcal.EventDateTime{DateTime: start}
		body.End = &gcal.EventDateTime{DateTime: end}
	} else {
		body.Start = &gcal.EventDateTime{Date: event.Date}
		body.End = &gcal.EventDateTime{Date: event.Date}
	}

	for _, participant := range event.Participants {
		body.Attendees = append(body.Attendees, &gcal.EventAttendee{Email: participant})
	}

	created, err := g.service.Events.Insert(g.calendarID, body).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to insert event: %w", err)
	}

	g.logger.Info("pushed event to calendar", "event_id", event.ID, "calendar_event_id", created.Id)
	return created.Id, nil
}

// PushTask inserts a task as an all-day event on its due date.
func (g *GoogleCalendar) PushTask(ctx context.Context, task model.Task) (string, error) {
	if task.DueDate == "" {
		return "", fmt.Errorf("task %s has no due date", task.ID)
	}

	body := &gcal.Event{
		Summary:     task.Title,
		Description: fmt.Sprintf("%s\n\nSource: Smart Email Agent (Task ID: %s)", task.Notes, task.ID),
		Start:       &gcal.EventDateTime{Date: task.DueDate},
		End:         &gcal.EventDateTime{Date: task.DueDate},
	}

	created, err := g.service.Events.Insert(g.calendarID, body).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to insert task event: %w", err)
	}

	g.logger.Info("pushed task to calendar", "task_id", task.ID, "calendar_event_id", created.Id)
	return created.Id, nil
}

// plusOneHour computes an end timestamp one hour after the start, capped at
// the end of the day.
func plusOneHour(date, startTime string) string {
	start, err := time.Parse("2006-01-02T15:04", date+"T"+startTime)
	if err != nil {
		return fmt.Sprintf("%sT%s:00", date, startTime)
	}
	end := start.Add(time.Hour)
	if end.Day() != start.Day() {
		end = time.Date(start.Year(), start.Month(), start.Day(), 23, 59, 0, 0, start.Location())
	}
	return end.Format("2006-01-02T15:04:05")
}

func oauthConfig(cfg Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  "http://localhost:8080/callback",
		Scopes:       []string{gcal.CalendarEventsScope},
	}
}

// LoadToken reads a saved OAuth token from file.
func LoadToken(tokenFile string) (*oauth2.Token, error) {
	f, err := os.Open(tokenFile) // #nosec G304
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	token := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(token)
	return token, err
}

// SaveToken writes an OAuth token to file, creating the directory if
// needed.
func SaveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600) // #nosec G304
	if err != nil {
		return fmt.Errorf("failed to create token file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := json.NewEncoder(f).Encode(token); err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	return nil
}
