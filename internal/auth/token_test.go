package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	tok, err := SignSessionID("6543ab", secret, time.Now())
	require.NoError(t, err)

	sid, err := ParseSessionID(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "6543ab", sid)
}

func TestParseSessionIDWrongSecret(t *testing.T) {
	tok, err := SignSessionID("6543ab", []byte("right"), time.Now())
	require.NoError(t, err)

	_, err = ParseSessionID(tok, []byte("wrong"))
	assert.Error(t, err)
}

func TestParseSessionIDExpired(t *testing.T) {
	secret := []byte("test-secret")
	tok, err := SignSessionID("6543ab", secret, time.Now().Add(-SessionTTL-time.Hour))
	require.NoError(t, err)

	_, err = ParseSessionID(tok, secret)
	assert.Error(t, err)
}

func TestParseSessionIDGarbage(t *testing.T) {
	_, err := ParseSessionID("not-a-token", []byte("secret"))
	assert.Error(t, err)
}
