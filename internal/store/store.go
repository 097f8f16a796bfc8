// Package store keeps the session's processed domain state in memory:
// messages, extracted tasks and events, reminders, and saved drafts. State
// lives for one run of the agent; nothing here touches disk.
package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/Mai-GitHubb/smart-email-agent/internal/common"
	"github.com/Mai-GitHubb/smart-email-agent/internal/dates"
	"github.com/Mai-GitHubb/smart-email-agent/internal/model"
)

// Store is the in-memory session state. It is not safe for concurrent use;
// the agent processes messages sequentially within a single run.
type Store struct {
	now       func() time.Time
	messages  []*model.Message
	tasks     []*model.Task
	events    []*model.Event
	reminders []*model.Reminder
	drafts    []*model.Draft
}

// New creates an empty session store.
func New() *Store {
	return &Store{now: time.Now}
}

func (s *Store) today() string {
	return s.now().Format(dates.ISO)
}

// AddMessage records a message. Re-adding an id is a no-op and returns
// false; the first stored version wins.
func (s *Store) AddMessage(msg model.Message) bool {
	for _, existing := range s.messages {
		if existing.ID == msg.ID {
			return false
		}
	}
	s.messages = append(s.messages, &msg)
	return true
}

// AddTask records an extracted task, ignoring duplicates by id.
func (s *Store) AddTask(task model.Task) bool {
	for _, existing := range s.tasks {
		if existing.ID == task.ID {
			return false
		}
	}
	s.tasks = append(s.tasks, &task)
	return true
}

// AddEvent records an extracted event, ignoring duplicates by id. New
// events always enter in the suggested state regardless of what the
// extraction produced.
func (s *Store) AddEvent(event model.Event) bool {
	for _, existing := range s.events {
		if existing.ID == event.ID {
			return false
		}
	}
	event.Status = model.EventSuggested
	s.events = append(s.events, &event)
	return true
}

// AddReminder records a reminder, ignoring duplicates by id.
func (s *Store) AddReminder(reminder model.Reminder) bool {
	for _, existing := range s.reminders {
		if existing.ID == reminder.ID {
			return false
		}
	}
	s.reminders = append(s.reminders, &reminder)
	return true
}

// AddDraft records a saved draft, ignoring duplicates by id.
func (s *Store) AddDraft(draft model.Draft) bool {
	for _, existing := range s.drafts {
		if existing.ID == draft.ID {
			return false
		}
	}
	s.drafts = append(s.drafts, &draft)
	return true
}

// Messages returns all stored messages in insertion order.
func (s *Store) Messages() []*model.Message {
	return s.messages
}

// Message looks a message up by id.
func (s *Store) Message(id string) (*model.Message, error) {
	for _, msg := range s.messages {
		if msg.ID == id {
			return msg, nil
		}
	}
	return nil, fmt.Errorf("message %s: %w", id, common.ErrNotFound)
}

// MessagesByCategory returns messages whose category matches exactly.
func (s *Store) MessagesByCategory(category string) []*model.Message {
	var out []*model.Message
	for _, msg := range s.messages {
		if msg.Category == category {
			out = append(out, msg)
		}
	}
	return out
}

// MessagesBySender returns messages from the given sender address.
func (s *Store) MessagesBySender(sender string) []*model.Message {
	var out []*model.Message
	for _, msg := range s.messages {
		if msg.Sender == sender {
			out = append(out, msg)
		}
	}
	return out
}

// HighPriorityUnread returns unread messages marked high priority.
func (s *Store) HighPriorityUnread() []*model.Message {
	var out []*model.Message
	for _, msg := range s.messages {
		if !msg.IsRead && msg.Priority == model.PriorityHigh {
			out = append(out, msg)
		}
	}
	return out
}

// UnreadCount returns the number of unread messages.
func (s *Store) UnreadCount() int {
	count := 0
	for _, msg := range s.messages {
		if !msg.IsRead {
			count++
		}
	}
	return count
}

// MarkRead flags a message as read.
func (s *Store) MarkRead(id string) error {
	msg, err := s.Message(id)
	if err != nil {
		return err
	}
	msg.IsRead = true
	return nil
}

// Tasks returns all stored tasks in insertion order.
func (s *Store) Tasks() []*model.Task {
	return s.tasks
}

// TasksByStatus returns tasks in the given status.
func (s *Store) TasksByStatus(status model.TaskStatus) []*model.Task {
	var out []*model.Task
	for _, task := range s.tasks {
		if task.Status == status {
			out = append(out, task)
		}
	}
	return out
}

// TasksByDate returns open tasks due exactly on date (YYYY-MM-DD). Done
// tasks never appear.
func (s *Store) TasksByDate(date string) []*model.Task {
	var out []*model.Task
	for _, task := range s.tasks {
		if task.Status != model.TaskDone && task.DueDate == date {
			out = append(out, task)
		}
	}
	return out
}

// TasksDueSoon returns open tasks due within the next days days, today
// inclusive, sorted by due date ascending. Tasks without a due date never
// appear. Date comparisons are lexicographic over the YYYY-MM-DD form.
func (s *Store) TasksDueSoon(days int) []*model.Task {
	today := s.today()
	end := s.now().AddDate(0, 0, days).Format(dates.ISO)

	var out []*model.Task
	for _, task := range s.tasks {
		if task.Status == model.TaskDone || task.DueDate == "" {
			continue
		}
		if task.DueDate >= today && task.DueDate <= end {
			out = append(out, task)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate < out[j].DueDate
	})
	return out
}

// UpdateTaskStatus moves a task to the given status.
func (s *Store) UpdateTaskStatus(id string, status model.TaskStatus) error {
	if !model.ValidTaskStatus(status) {
		return fmt.Errorf("invalid task status %q: %w", status, common.ErrInvalidConfig)
	}
	for _, task := range s.tasks {
		if task.ID == id {
			task.Status = status
			return nil
		}
	}
	return fmt.Errorf("task %s: %w", id, common.ErrNotFound)
}

// Events returns all stored events in insertion order.
func (s *Store) Events() []*model.Event {
	return s.events
}

// EventsByStatus returns events in the given status.
func (s *Store) EventsByStatus(status model.EventStatus) []*model.Event {
	var out []*model.Event
	for _, event := range s.events {
		if event.Status == status {
			out = append(out, event)
		}
	}
	return out
}

// EventsByDate returns confirmed events on the given date (YYYY-MM-DD).
// Suggested and ignored events never appear in date views.
func (s *Store) EventsByDate(date string) []*model.Event {
	var out []*model.Event
	for _, event := range s.events {
		if event.Status == model.EventConfirmed && event.Date == date {
			out = append(out, event)
		}
	}
	return out
}

// UpcomingEvents returns confirmed events within the next days days, today
// inclusive, sorted by date ascending.
func (s *Store) UpcomingEvents(days int) []*model.Event {
	today := s.today()
	end := s.now().AddDate(0, 0, days).Format(dates.ISO)

	var out []*model.Event
	for _, event := range s.events {
		if event.Status != model.EventConfirmed || event.Date == "" {
			continue
		}
		if event.Date >= today && event.Date <= end {
			out = append(out, event)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

// ConfirmEvent marks an event confirmed. Confirmation is terminal against
// the suggested state but can still flip to ignored later.
func (s *Store) ConfirmEvent(id string) error {
	return s.setEventStatus(id, model.EventConfirmed)
}

// IgnoreEvent marks an event ignored.
func (s *Store) IgnoreEvent(id string) error {
	return s.setEventStatus(id, model.EventIgnored)
}

func (s *Store) setEventStatus(id string, status model.EventStatus) error {
	for _, event := range s.events {
		if event.ID == id {
			event.Status = status
			return nil
		}
	}
	return fmt.Errorf("event %s: %w", id, common.ErrNotFound)
}

// Reminders returns all stored reminders in insertion order.
func (s *Store) Reminders() []*model.Reminder {
	return s.reminders
}

// DueReminders returns pending reminders whose remind-at time has passed.
func (s *Store) DueReminders() []*model.Reminder {
	now := s.now()
	var out []*model.Reminder
	for _, reminder := range s.reminders {
		if reminder.Status == "pending" && !reminder.RemindAt.After(now) {
			out = append(out, reminder)
		}
	}
	return out
}

// CompleteReminder marks a reminder done.
func (s *Store) CompleteReminder(id string) error {
	for _, reminder := range s.reminders {
		if reminder.ID == id {
			reminder.Status = "done"
			return nil
		}
	}
	return fmt.Errorf("reminder %s: %w", id, common.ErrNotFound)
}

// Drafts returns all saved drafts in insertion order.
func (s *Store) Drafts() []*model.Draft {
	return s.drafts
}

// CategoryCounts returns the number of messages per category.
func (s *Store) CategoryCounts() map[string]int {
	counts := make(map[string]int)
	for _, msg := range s.messages {
		if msg.Category != "" {
			counts[msg.Category]++
		}
	}
	return counts
}
