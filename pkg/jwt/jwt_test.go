package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Manager_AccessTokenRoundTrip(t *testing.T) {
	m := NewManager("test-secret", 15*time.Minute, 72*time.Hour)

	token, err := m.GenerateAccessToken(42, "reader@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "reader@example.com", claims.Email)
	assert.Equal(t, "access", claims.Type)
}

func Test_Manager_RefreshTokenRoundTrip(t *testing.T) {
	m := NewManager("test-secret", 15*time.Minute, 72*time.Hour)

	token, err := m.GenerateRefreshToken(7)
	require.NoError(t, err)

	claims, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "refresh", claims.Type)
}

func Test_Manager_RejectsWrongTokenType(t *testing.T) {
	m := NewManager("test-secret", 15*time.Minute, 72*time.Hour)

	refresh, err := m.GenerateRefreshToken(7)
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func Test_Manager_RejectsWrongSecret(t *testing.T) {
	m := NewManager("test-secret", 15*time.Minute, 72*time.Hour)
	other := NewManager("other-secret", 15*time.Minute, 72*time.Hour)

	token, err := m.GenerateAccessToken(1, "reader@example.com")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func Test_Manager_RejectsExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -1*time.Minute, 72*time.Hour)

	token, err := m.GenerateAccessToken(1, "reader@example.com")
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.Error(t, err)
}
