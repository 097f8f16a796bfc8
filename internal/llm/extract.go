package llm

import (
	"encoding/json"
	"strings"
)

// ExtractJSON pulls a JSON value out of raw model output. Leading and
// trailing whitespace is stripped, and a wrapping fenced code block
// (triple-backtick, optionally tagged "json") is removed before parsing.
// On failure it returns a *ParseError carrying the original text.
func ExtractJSON(raw string) (json.RawMessage, error) {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimPrefix(text, "json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	var value json.RawMessage
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return nil, &ParseError{Raw: raw, Err: err}
	}
	return value, nil
}
