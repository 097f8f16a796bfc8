package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "iso date", input: "2025-11-28", want: "2025-11-28", ok: true},
		{name: "iso with surrounding space", input: "  2025-11-28  ", want: "2025-11-28", ok: true},
		{name: "weekday day month year", input: "Fri, 28 Nov, 2025", want: "2025-11-28", ok: true},
		{name: "weekday without second comma", input: "Fri, 28 Nov 2025", want: "2025-11-28", ok: true},
		{name: "day month year", input: "28 Nov 2025", want: "2025-11-28", ok: true},
		{name: "month day year", input: "Nov 28, 2025", want: "2025-11-28", ok: true},
		{name: "full month name", input: "28 November 2025", want: "2025-11-28", ok: true},
		{name: "case insensitive month", input: "28 NOV 2025", want: "2025-11-28", ok: true},
		{name: "natural language", input: "March 13, 2024", want: "2024-03-13", ok: true},
		{name: "empty", input: "", ok: false},
		{name: "whitespace only", input: "   ", ok: false},
		{name: "gibberish", input: "not a date at all?!", ok: false},
		{name: "unknown month", input: "28 Foo 2025", ok: false},
		{name: "impossible day", input: "42 Nov 2025", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got.Format(ISO))
			}
		})
	}
}

func TestParseNeverPanics(t *testing.T) {
	inputs := []string{"", " ", "\n", "99999999999999", "-", "Feb 30, 2024", "???", "13:45"}
	for _, in := range inputs {
		assert.NotPanics(t, func() { Parse(in) }, "input %q", in)
	}
}

func TestNormalizeRoundTrip(t *testing.T) {
	inputs := []string{"2024-03-13", "Fri, 28 Nov 2025", "Nov 28, 2025", "5 Jan 2026"}
	for _, in := range inputs {
		parsed, ok := Parse(in)
		require.True(t, ok, "input %q", in)

		norm, ok := Normalize(in)
		require.True(t, ok, "input %q", in)
		assert.Equal(t, parsed.Format(ISO), norm)

		// Canonical output parses back to the same date.
		again, ok := Parse(norm)
		require.True(t, ok)
		assert.True(t, parsed.Truncate(24*time.Hour).Equal(again))
	}
}

func TestNormalizeFailure(t *testing.T) {
	got, ok := Normalize("next time we meet")
	assert.False(t, ok)
	assert.Empty(t, got)
}
