package store

import (
	"testing"
	"time"

	"github.com/Mai-GitHubb/smart-email-agent/internal/common"
	"github.com/Mai-GitHubb/smart-email-agent/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore pins the clock to Sunday 2024-03-10 so due-soon windows are
// deterministic.
func newTestStore() *Store {
	s := New()
	s.now = func() time.Time {
		return time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	}
	return s
}

func TestAddMessageDeduplicates(t *testing.T) {
	s := newTestStore()

	assert.True(t, s.AddMessage(model.Message{ID: "m1", Subject: "first"}))
	assert.False(t, s.AddMessage(model.Message{ID: "m1", Subject: "second"}))

	require.Len(t, s.Messages(), 1)
	assert.Equal(t, "first", s.Messages()[0].Subject, "first stored version wins")
}

func TestAddTaskDeduplicates(t *testing.T) {
	s := newTestStore()

	assert.True(t, s.AddTask(model.Task{ID: "t1", Title: "original"}))
	assert.False(t, s.AddTask(model.Task{ID: "t1", Title: "replacement"}))

	require.Len(t, s.Tasks(), 1)
	assert.Equal(t, "original", s.Tasks()[0].Title)
}

func TestAddEventForcesSuggestedStatus(t *testing.T) {
	s := newTestStore()

	s.AddEvent(model.Event{ID: "e1", Status: model.EventConfirmed})

	require.Len(t, s.Events(), 1)
	assert.Equal(t, model.EventSuggested, s.Events()[0].Status)
}

func TestEventLifecycle(t *testing.T) {
	s := newTestStore()
	s.AddEvent(model.Event{ID: "e1", Title: "Team sync", Date: "2024-03-12"})

	require.NoError(t, s.ConfirmEvent("e1"))
	assert.Equal(t, model.EventConfirmed, s.Events()[0].Status)

	// Ignoring after confirming still lands on ignored.
	require.NoError(t, s.IgnoreEvent("e1"))
	assert.Equal(t, model.EventIgnored, s.Events()[0].Status)

	// Confirming again is allowed; there is just no path back to suggested.
	require.NoError(t, s.ConfirmEvent("e1"))
	assert.Equal(t, model.EventConfirmed, s.Events()[0].Status)
}

func TestConfirmEventNotFound(t *testing.T) {
	s := newTestStore()
	err := s.ConfirmEvent("missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdateTaskStatus(t *testing.T) {
	s := newTestStore()
	s.AddTask(model.Task{ID: "t1", Status: model.TaskTodo})

	require.NoError(t, s.UpdateTaskStatus("t1", model.TaskInProgress))
	assert.Equal(t, model.TaskInProgress, s.Tasks()[0].Status)

	assert.Error(t, s.UpdateTaskStatus("t1", model.TaskStatus("archived")))
	assert.Equal(t, model.TaskInProgress, s.Tasks()[0].Status)

	assert.ErrorIs(t, s.UpdateTaskStatus("missing", model.TaskDone), common.ErrNotFound)
}

func TestTasksByDateExcludesDone(t *testing.T) {
	s := newTestStore()
	s.AddTask(model.Task{ID: "t1", DueDate: "2024-03-12", Status: model.TaskTodo})
	s.AddTask(model.Task{ID: "t2", DueDate: "2024-03-12", Status: model.TaskDone})
	s.AddTask(model.Task{ID: "t3", DueDate: "2024-03-13", Status: model.TaskTodo})

	due := s.TasksByDate("2024-03-12")
	require.Len(t, due, 1)
	assert.Equal(t, "t1", due[0].ID)
}

func TestTasksDueSoon(t *testing.T) {
	s := newTestStore()
	s.AddTask(model.Task{ID: "later", DueDate: "2024-03-13", Status: model.TaskTodo})
	s.AddTask(model.Task{ID: "today", DueDate: "2024-03-10", Status: model.TaskTodo})
	s.AddTask(model.Task{ID: "past", DueDate: "2024-03-09", Status: model.TaskTodo})
	s.AddTask(model.Task{ID: "far", DueDate: "2024-03-20", Status: model.TaskTodo})
	s.AddTask(model.Task{ID: "done", DueDate: "2024-03-11", Status: model.TaskDone})
	s.AddTask(model.Task{ID: "undated", Status: model.TaskTodo})

	due := s.TasksDueSoon(7)

	require.Len(t, due, 2)
	assert.Equal(t, "today", due[0].ID, "sorted by due date ascending")
	assert.Equal(t, "later", due[1].ID)
}

func TestEventsByDateConfirmedOnly(t *testing.T) {
	s := newTestStore()
	s.AddEvent(model.Event{ID: "suggested", Date: "2024-03-12"})
	s.AddEvent(model.Event{ID: "confirmed", Date: "2024-03-12"})
	s.AddEvent(model.Event{ID: "ignored", Date: "2024-03-12"})
	require.NoError(t, s.ConfirmEvent("confirmed"))
	require.NoError(t, s.IgnoreEvent("ignored"))

	events := s.EventsByDate("2024-03-12")
	require.Len(t, events, 1)
	assert.Equal(t, "confirmed", events[0].ID)
}

func TestUpcomingEventsSortedWithinWindow(t *testing.T) {
	s := newTestStore()
	s.AddEvent(model.Event{ID: "e2", Date: "2024-03-15"})
	s.AddEvent(model.Event{ID: "e1", Date: "2024-03-11"})
	s.AddEvent(model.Event{ID: "far", Date: "2024-04-01"})
	for _, id := range []string{"e1", "e2", "far"} {
		require.NoError(t, s.ConfirmEvent(id))
	}

	upcoming := s.UpcomingEvents(7)

	require.Len(t, upcoming, 2)
	assert.Equal(t, "e1", upcoming[0].ID)
	assert.Equal(t, "e2", upcoming[1].ID)
}

func TestMessageQueries(t *testing.T) {
	s := newTestStore()
	s.AddMessage(model.Message{ID: "m1", Sender: "a@x.com", Category: "Work", Priority: model.PriorityHigh})
	s.AddMessage(model.Message{ID: "m2", Sender: "b@x.com", Category: "Work", IsRead: true})
	s.AddMessage(model.Message{ID: "m3", Sender: "a@x.com", Category: "Spam", Priority: model.PriorityHigh, IsRead: true})

	assert.Len(t, s.MessagesByCategory("Work"), 2)
	assert.Len(t, s.MessagesBySender("a@x.com"), 2)
	assert.Equal(t, 1, s.UnreadCount())

	high := s.HighPriorityUnread()
	require.Len(t, high, 1)
	assert.Equal(t, "m1", high[0].ID)

	require.NoError(t, s.MarkRead("m1"))
	assert.Zero(t, s.UnreadCount())
	assert.ErrorIs(t, s.MarkRead("missing"), common.ErrNotFound)

	counts := s.CategoryCounts()
	assert.Equal(t, 2, counts["Work"])
	assert.Equal(t, 1, counts["Spam"])
}

func TestReminders(t *testing.T) {
	s := newTestStore()
	s.AddReminder(model.Reminder{
		ID:       "r1",
		RemindAt: time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC),
		Status:   "pending",
	})
	s.AddReminder(model.Reminder{
		ID:       "r2",
		RemindAt: time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC),
		Status:   "pending",
	})

	due := s.DueReminders()
	require.Len(t, due, 1)
	assert.Equal(t, "r1", due[0].ID)

	require.NoError(t, s.CompleteReminder("r1"))
	assert.Empty(t, s.DueReminders())
	assert.ErrorIs(t, s.CompleteReminder("missing"), common.ErrNotFound)
}

func TestDrafts(t *testing.T) {
	s := newTestStore()
	assert.True(t, s.AddDraft(model.Draft{ID: "d1", Subject: "hello"}))
	assert.False(t, s.AddDraft(model.Draft{ID: "d1", Subject: "other"}))
	require.Len(t, s.Drafts(), 1)
}
