package model

// EventType distinguishes meetings from deadlines.
type EventType string

// Event type constants.
const (
	EventMeeting  EventType = "meeting"
	EventDeadline EventType = "deadline"
)

// EventStatus tracks an extracted event's review lifecycle. Every event
// starts as suggested; only explicit user action moves it to confirmed or
// ignored, and nothing ever moves it back to suggested.
type EventStatus string

// Event status constants.
const (
	EventSuggested EventStatus = "suggested"
	EventConfirmed EventStatus = "confirmed"
	EventIgnored   EventStatus = "ignored"
)

// Event represents a meeting or deadline extracted from a message.
// Date is canonical YYYY-MM-DD; StartTime/EndTime are HH:MM (24-hour).
type Event struct {
	ID              string      `json:"event_id"`
	Type            EventType   `json:"type"`
	Title           string      `json:"title"`
	Date            string      `json:"date"`
	StartTime       string      `json:"start_time,omitempty"`
	EndTime         string      `json:"end_time,omitempty"`
	Location        string      `json:"location,omitempty"`
	SourceMessageID string      `json:"source_message_id"`
	Status          EventStatus `json:"status"`
	Participants    []string    `json:"participants,omitempty"`
	Confidence      float64     `json:"confidence"`
	AllDay          bool        `json:"all_day"`
}
