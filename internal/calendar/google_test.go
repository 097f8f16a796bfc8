package calendar

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestTokenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token.json")
	token := &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(time.Hour).Round(time.Second),
	}

	require.NoError(t, SaveToken(path, token))

	loaded, err := LoadToken(path)
	require.NoError(t, err)
	assert.Equal(t, token.AccessToken, loaded.AccessToken)
	assert.Equal(t, token.RefreshToken, loaded.RefreshToken)
}

func TestLoadTokenMissing(t *testing.T) {
	_, err := LoadToken(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestNewRequiresCredentials(t *testing.T) {
	_, err := New(context.Background(), Config{}, nil)
	assert.Error(t, err)
}

func TestPlusOneHour(t *testing.T) {
	assert.Equal(t, "2024-03-10T15:00:00", plusOneHour("2024-03-10", "14:00"))
	// Late starts cap at end of day instead of rolling over.
	assert.Equal(t, "2024-03-10T23:59:00", plusOneHour("2024-03-10", "23:30"))
}
