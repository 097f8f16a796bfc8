package model

import "time"

// DraftStatus tracks a draft through its lifecycle.
type DraftStatus string

// Draft status constants. Nothing in this system ever sends mail; "sent"
// exists only so an external delivery collaborator can record the fact.
const (
	DraftNew   DraftStatus = "draft"
	DraftSaved DraftStatus = "saved"
	DraftSent  DraftStatus = "sent"
)

// Draft represents a generated reply or new email draft.
type Draft struct {
	CreatedAt          time.Time   `json:"created_at"`
	ID                 string      `json:"id"`
	Subject            string      `json:"subject"`
	Body               string      `json:"body"`
	Recipient          string      `json:"recipient,omitempty"`
	ReplyToMessageID   string      `json:"reply_to_message_id,omitempty"`
	Tone               string      `json:"tone"`
	Status             DraftStatus `json:"status"`
	SuggestedFollowups []string    `json:"suggested_followups,omitempty"`
}

// Reminder links a follow-up note to a message.
type Reminder struct {
	RemindAt  time.Time `json:"reminder_time"`
	ID        string    `json:"id"`
	MessageID string    `json:"message_id"`
	Note      string    `json:"note"`
	Status    string    `json:"status"` // "pending" or "done"
}
