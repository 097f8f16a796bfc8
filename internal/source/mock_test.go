package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockSourceBuiltInSamples(t *testing.T) {
	s := NewMockSource("", nil)

	messages, err := s.Fetch(context.Background(), 0, "")
	require.NoError(t, err)
	require.Len(t, messages, 15)

	assert.Equal(t, "mock_1", messages[0].ID)
	assert.Equal(t, "professor.smith@university.edu", messages[0].Sender)
	assert.True(t, messages[0].HasAttachments)
	require.NoError(t, s.Close())
}

func TestMockSourceMissingFileFallsBack(t *testing.T) {
	s := NewMockSource(filepath.Join(t.TempDir(), "nope.json"), nil)

	messages, err := s.Fetch(context.Background(), 0, "")
	require.NoError(t, err)
	assert.Len(t, messages, 15)
}

func TestMockSourceCorruptFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inbox.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	messages, err := NewMockSource(path, nil).Fetch(context.Background(), 0, "")
	require.NoError(t, err)
	assert.Len(t, messages, 15)
}

func TestMockSourceLoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inbox.json")
	payload := `[
		{"id": "custom_1", "sender": "a@x.com", "sender_name": "A", "subject": "hello",
		 "body": "body text", "timestamp": "2024-03-10T09:00:00Z", "is_read": true,
		 "labels": ["Work"]},
		{"subject": "defaults applied"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	messages, err := NewMockSource(path, nil).Fetch(context.Background(), 0, "")
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, "custom_1", messages[0].ID)
	assert.True(t, messages[0].IsRead)
	assert.Equal(t, 2024, messages[0].Timestamp.Year())

	assert.Equal(t, "mock_2", messages[1].ID)
	assert.Equal(t, "unknown@example.com", messages[1].Sender)
	assert.Equal(t, "Unknown Sender", messages[1].SenderName)
}

func TestMockSourceLimit(t *testing.T) {
	s := NewMockSource("", nil)

	messages, err := s.Fetch(context.Background(), 3, "")
	require.NoError(t, err)
	assert.Len(t, messages, 3)
}

func TestMockSourceQueryFilter(t *testing.T) {
	s := NewMockSource("", nil)

	messages, err := s.Fetch(context.Background(), 0, "LASAGNA")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "mock_4", messages[0].ID)

	none, err := s.Fetch(context.Background(), 0, "zzz-no-match")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestHTMLToText(t *testing.T) {
	html := `<html><head><style>p{color:red}</style></head><body>
		<h1>Hello</h1>
		<p>First   paragraph.</p>
		<script>alert(1)</script>
		<div>Sec` + "​" + `ond line</div>
	</body></html>`

	text, err := htmlToText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Hello")
	assert.Contains(t, text, "First paragraph.")
	assert.Contains(t, text, "Second line", "invisible characters are stripped")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color:red")
}

func TestHTMLToTextEmpty(t *testing.T) {
	text, err := htmlToText("")
	require.NoError(t, err)
	assert.Empty(t, text)
}
