package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Mai-GitHubb/smart-email-agent/internal/model"
	"github.com/Mai-GitHubb/smart-email-agent/internal/prompts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient is a test implementation of the Client interface.
type stubClient struct {
	err       error
	responses []string
	prompts   []string
	temps     []float64
	calls     int
}

func (s *stubClient) Generate(_ context.Context, prompt string, temperature float64) (string, error) {
	s.prompts = append(s.prompts, prompt)
	s.temps = append(s.temps, temperature)
	idx := s.calls
	s.calls++

	if s.err != nil {
		return "", s.err
	}
	if idx < len(s.responses) {
		return s.responses[idx], nil
	}
	return "", errors.New("no more stub responses")
}

func newTestProcessor(t *testing.T, client Client) *Processor {
	t.Helper()
	p := NewProcessor(client, prompts.NewStore(nil, nil), Config{MaxRetries: 1}, nil)
	t.Cleanup(p.Close)
	return p
}

func testMessage() model.Message {
	return model.Message{
		ID:      "mock_1",
		Sender:  "professor.smith@university.edu",
		Subject: "Assignment deadline",
		Body:    "Assignment due March 13, 2024 at 11:59 PM",
	}
}

func TestCategorize(t *testing.T) {
	client := &stubClient{responses: []string{
		"```json\n{\"category\": \"Deadline\", \"priority\": \"High\", \"confidence\": 0.92, \"reasoning\": \"due date present\"}\n```",
	}}
	p := newTestProcessor(t, client)

	result := p.Categorize(context.Background(), testMessage())

	assert.Equal(t, "Deadline", result.Category)
	assert.Equal(t, "High", result.Priority)
	assert.InDelta(t, 0.92, result.Confidence, 1e-9)
	assert.Equal(t, "due date present", result.Reasoning)
	require.Len(t, client.temps, 1)
	assert.InDelta(t, 0.3, client.temps[0], 1e-9)
}

func TestCategorizeBackendFailureFallsBack(t *testing.T) {
	client := &stubClient{err: &BackendError{Provider: "ollama", Err: errors.New("connection refused")}}
	p := newTestProcessor(t, client)

	result := p.Categorize(context.Background(), testMessage())

	assert.Equal(t, "Other", result.Category)
	assert.Equal(t, "Medium", result.Priority)
	assert.Zero(t, result.Confidence)
	assert.Contains(t, result.Reasoning, "connection refused")
}

func TestCategorizeUnparseableResponseFallsBack(t *testing.T) {
	client := &stubClient{responses: []string{"I could not decide on a category."}}
	p := newTestProcessor(t, client)

	result := p.Categorize(context.Background(), testMessage())

	assert.Equal(t, "Other", result.Category)
	assert.Equal(t, "Medium", result.Priority)
	assert.Zero(t, result.Confidence)
}

func TestCategorizeDefaultsForAbsentFields(t *testing.T) {
	client := &stubClient{responses: []string{`{"category": "Work"}`}}
	p := newTestProcessor(t, client)

	result := p.Categorize(context.Background(), testMessage())

	assert.Equal(t, "Work", result.Category)
	assert.Equal(t, "Medium", result.Priority)
	assert.InDelta(t, 0.5, result.Confidence, 1e-9)
}

func TestCategorizeCachesByMessageID(t *testing.T) {
	client := &stubClient{responses: []string{`{"category": "Work", "priority": "Low"}`}}
	p := newTestProcessor(t, client)

	first := p.Categorize(context.Background(), testMessage())
	second := p.Categorize(context.Background(), testMessage())

	assert.Equal(t, first, second)
	assert.Equal(t, 1, client.calls)
}

func TestExtractTasks(t *testing.T) {
	client := &stubClient{responses: []string{
		`[{"title": "Submit assignment", "due_date": "2024-03-13"}]`,
	}}
	p := newTestProcessor(t, client)

	tasks := p.ExtractTasks(context.Background(), testMessage())

	require.Len(t, tasks, 1)
	assert.Equal(t, "Submit assignment", tasks[0].Title)
	assert.Equal(t, "2024-03-13", tasks[0].DueDate)
	assert.Equal(t, "mock_1", tasks[0].SourceMessageID)
	assert.Equal(t, model.TaskTodo, tasks[0].Status)
	assert.True(t, strings.HasPrefix(tasks[0].ID, "task_mock_1_"),
		"generated id must be namespaced by the source message id, got %q", tasks[0].ID)
}

func TestExtractTasksEmptyArray(t *testing.T) {
	client := &stubClient{responses: []string{"[]"}}
	p := newTestProcessor(t, client)

	tasks := p.ExtractTasks(context.Background(), testMessage())
	assert.Empty(t, tasks)
}

func TestExtractTasksBareObjectWrapped(t *testing.T) {
	client := &stubClient{responses: []string{`{"title":"x"}`}}
	p := newTestProcessor(t, client)

	tasks := p.ExtractTasks(context.Background(), testMessage())

	require.Len(t, tasks, 1)
	assert.Equal(t, "x", tasks[0].Title)
}

func TestExtractTasksNullYieldsEmpty(t *testing.T) {
	client := &stubClient{responses: []string{"null"}}
	p := newTestProcessor(t, client)

	assert.Empty(t, p.ExtractTasks(context.Background(), testMessage()))
}

func TestExtractTasksBackendFailure(t *testing.T) {
	client := &stubClient{err: errors.New("boom")}
	p := newTestProcessor(t, client)

	assert.Empty(t, p.ExtractTasks(context.Background(), testMessage()))
}

func TestExtractTasksOrdinalIDs(t *testing.T) {
	client := &stubClient{responses: []string{
		`[{"title": "first"}, {"title": "second"}, {"task_id": "model_chosen", "title": "third"}]`,
	}}
	p := newTestProcessor(t, client)

	tasks := p.ExtractTasks(context.Background(), testMessage())

	require.Len(t, tasks, 3)
	assert.Equal(t, "task_mock_1_0", tasks[0].ID)
	assert.Equal(t, "task_mock_1_1", tasks[1].ID)
	assert.Equal(t, "model_chosen", tasks[2].ID)
}

func TestExtractTasksNormalizesLooseDueDates(t *testing.T) {
	client := &stubClient{responses: []string{
		`[{"title": "a", "due_date": "Nov 28, 2025"}, {"title": "b", "due_date": "whenever"}]`,
	}}
	p := newTestProcessor(t, client)

	tasks := p.ExtractTasks(context.Background(), testMessage())

	require.Len(t, tasks, 2)
	assert.Equal(t, "2025-11-28", tasks[0].DueDate)
	assert.Empty(t, tasks[1].DueDate, "unparseable dates must not be stored free-form")
}

func TestExtractEvents(t *testing.T) {
	client := &stubClient{responses: []string{`[
		{"type": "meeting", "title": "Team sync", "date": "2024-03-10",
		 "start_time": "14:00", "end_time": "15:00", "location": "Conference Room B",
		 "participants": ["john", "lisa"], "confidence": 0.8}
	]`}}
	p := newTestProcessor(t, client)

	events := p.ExtractEvents(context.Background(), testMessage())

	require.Len(t, events, 1)
	ev := events[0]
	assert.Equal(t, model.EventMeeting, ev.Type)
	assert.Equal(t, "Team sync", ev.Title)
	assert.Equal(t, "2024-03-10", ev.Date)
	assert.Equal(t, "14:00", ev.StartTime)
	assert.Equal(t, []string{"john", "lisa"}, ev.Participants)
	assert.Equal(t, model.EventSuggested, ev.Status, "extracted events always start suggested")
	assert.Equal(t, "event_mock_1_0", ev.ID)
	assert.Equal(t, "mock_1", ev.SourceMessageID)
}

func TestExtractEventsUnknownTypeDefaultsToMeeting(t *testing.T) {
	client := &stubClient{responses: []string{`[{"type": "party", "title": "x", "date": "2024-03-10"}]`}}
	p := newTestProcessor(t, client)

	events := p.ExtractEvents(context.Background(), testMessage())
	require.Len(t, events, 1)
	assert.Equal(t, model.EventMeeting, events[0].Type)
}

func TestExtractEventsBackendFailure(t *testing.T) {
	client := &stubClient{err: errors.New("boom")}
	p := newTestProcessor(t, client)

	assert.Empty(t, p.ExtractEvents(context.Background(), testMessage()))
}

func TestGenerateReply(t *testing.T) {
	client := &stubClient{responses: []string{"  Dear Professor,\n\nThank you.\n  "}}
	p := newTestProcessor(t, client)

	reply := p.GenerateReply(context.Background(), testMessage(), "", "Formal")

	assert.Equal(t, "Dear Professor,\n\nThank you.", reply)
	require.Len(t, client.temps, 1)
	assert.InDelta(t, 0.7, client.temps[0], 1e-9)
	assert.Contains(t, client.prompts[0], "No specific instructions")
}

func TestGenerateReplyFailure(t *testing.T) {
	client := &stubClient{err: errors.New("provider down")}
	p := newTestProcessor(t, client)

	reply := p.GenerateReply(context.Background(), testMessage(), "say thanks", "Friendly")
	assert.Contains(t, reply, "Error generating reply")
	assert.Contains(t, reply, "provider down")
}

func TestCheckReplyToneFallback(t *testing.T) {
	client := &stubClient{err: errors.New("provider down")}
	p := newTestProcessor(t, client)

	check := p.CheckReplyTone(context.Background(), testMessage(), "draft text", "Formal")

	assert.False(t, check.ToneAppropriate)
	assert.True(t, check.IsPolite)
	assert.False(t, check.AllQuestionsAnswered)
	assert.Contains(t, check.Feedback, "provider down")
	assert.Empty(t, check.Suggestions)
}

func TestCheckReplyTone(t *testing.T) {
	client := &stubClient{responses: []string{
		`{"tone_appropriate": true, "is_polite": true, "all_questions_answered": false,
		  "feedback": "one question unanswered", "suggestions": ["answer the scheduling question"]}`,
	}}
	p := newTestProcessor(t, client)

	check := p.CheckReplyTone(context.Background(), testMessage(), "draft", "Formal")

	assert.True(t, check.ToneAppropriate)
	assert.False(t, check.AllQuestionsAnswered)
	assert.Equal(t, []string{"answer the scheduling question"}, check.Suggestions)
}

func TestSenderContextLimitsRecentMessages(t *testing.T) {
	client := &stubClient{responses: []string{"Work colleague, frequent project updates."}}
	p := newTestProcessor(t, client)

	recent := make([]model.Message, 8)
	for i := range recent {
		recent[i] = model.Message{Subject: "s", Body: strings.Repeat("b", 500)}
	}

	out := p.SenderContext(context.Background(), "John", "john@company.com", recent)

	assert.Equal(t, "Work colleague, frequent project updates.", out)
	// 5 snippets max, each body cut to 200 characters.
	assert.Equal(t, 5, strings.Count(client.prompts[0], "Subject:"))
	assert.NotContains(t, client.prompts[0], strings.Repeat("b", 201))
	assert.InDelta(t, 0.5, client.temps[0], 1e-9)
}

func TestInboxQueryTemperature(t *testing.T) {
	client := &stubClient{responses: []string{"You have 3 unread messages."}}
	p := newTestProcessor(t, client)

	out := p.InboxQuery(context.Background(), "what's unread?", InboxContext{TotalMessages: 10, UnreadCount: 3})

	assert.Equal(t, "You have 3 unread messages.", out)
	assert.InDelta(t, 0.6, client.temps[0], 1e-9)
	assert.Contains(t, client.prompts[0], "what's unread?")
}

func TestBodyTruncation(t *testing.T) {
	client := &stubClient{responses: []string{`{"category": "Work"}`}}
	p := newTestProcessor(t, client)

	msg := testMessage()
	msg.Body = strings.Repeat("x", 5000)
	p.Categorize(context.Background(), msg)

	assert.NotContains(t, client.prompts[0], strings.Repeat("x", 2001))
	assert.Contains(t, client.prompts[0], strings.Repeat("x", 2000))
}

func TestProcessMessageFoldsCategoryIntoMessage(t *testing.T) {
	client := &stubClient{responses: []string{
		`{"category": "Deadline", "priority": "High", "confidence": 0.9}`,
		`[{"title": "Submit assignment", "due_date": "2024-03-13"}]`,
		`[]`,
	}}
	p := newTestProcessor(t, client)

	msg := testMessage()
	result := p.ProcessMessage(context.Background(), &msg)

	assert.Equal(t, "Deadline", msg.Category)
	assert.Equal(t, "High", msg.Priority)
	require.Len(t, result.Tasks, 1)
	assert.Equal(t, "2024-03-13", result.Tasks[0].DueDate)
	assert.True(t, strings.HasPrefix(result.Tasks[0].ID, "task_mock_1_"))
	assert.Empty(t, result.Events)
}
