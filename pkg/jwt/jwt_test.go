package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewManager("secret", time.Hour)

	token, err := m.GenerateToken(42)
	require.NoError(t, err)

	id, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestParseTokenRejectsOtherSecret(t *testing.T) {
	token, err := NewManager("secret", time.Hour).GenerateToken(1)
	require.NoError(t, err)

	_, err = NewManager("other", time.Hour).ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	m := NewManager("secret", time.Minute)
	issued := time.Now().Add(-time.Hour)
	m.now = func() time.Time { return issued }

	token, err := m.GenerateToken(1)
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := NewManager("secret", time.Hour).ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
