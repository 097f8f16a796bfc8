package model

// CategoryResult is the outcome of categorizing one message. It is
// ephemeral: produced per call and immediately folded into the message's
// Category/Priority fields, never stored on its own.
type CategoryResult struct {
	Category   string  `json:"category"`
	Priority   string  `json:"priority"`
	Reasoning  string  `json:"reasoning,omitempty"`
	Confidence float64 `json:"confidence"`
}

// ToneCheck is the structured verdict on a draft reply.
type ToneCheck struct {
	Feedback             string   `json:"feedback"`
	Suggestions          []string `json:"suggestions"`
	ToneAppropriate      bool     `json:"tone_appropriate"`
	IsPolite             bool     `json:"is_polite"`
	AllQuestionsAnswered bool     `json:"all_questions_answered"`
}
