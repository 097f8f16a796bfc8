package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "data"), ExpandPath("~/data"))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, "/absolute/path", ExpandPath("/absolute/path"))
	assert.Empty(t, ExpandPath(""))

	t.Setenv("EMAILAGENT_TEST_DIR", "/tmp/agent")
	assert.Equal(t, "/tmp/agent/prompts.json", ExpandPath("$EMAILAGENT_TEST_DIR/prompts.json"))
}

func TestDataPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".local/share/emailagent", "prompts.json"), DataPath("prompts.json"))
}
