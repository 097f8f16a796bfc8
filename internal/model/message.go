// Package model defines the core domain models used throughout the application.
package model

import "time"

// Attachment holds metadata for a message attachment. Content is never
// fetched or stored, only these three fields are ever read.
type Attachment struct {
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}

// Message represents an inbound email-like item from a source adapter.
// Category and Priority stay empty until the pipeline has categorized it.
type Message struct {
	Timestamp      time.Time    `json:"timestamp"`
	ID             string       `json:"id"`
	Sender         string       `json:"sender"`
	SenderName     string       `json:"sender_name"`
	Subject        string       `json:"subject"`
	Body           string       `json:"body"`
	Category       string       `json:"category,omitempty"`
	Priority       string       `json:"priority,omitempty"`
	ThreadID       string       `json:"thread_id,omitempty"`
	Labels         []string     `json:"labels,omitempty"`
	Attachments    []Attachment `json:"attachments,omitempty"`
	HasAttachments bool         `json:"has_attachments"`
	IsRead         bool         `json:"is_read"`
}

// Priority levels assigned during categorization.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)
