package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager("secret", time.Minute, time.Hour)

	token, err := manager.GenerateToken("user-1", "alice", "alice@example.com")
	require.NoError(t, err)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "access", claims.TokenType)
}

func TestExpiredToken(t *testing.T) {
	manager := NewJWTManager("secret", -time.Minute, time.Hour)

	token, err := manager.GenerateToken("user-1", "alice", "alice@example.com")
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestWrongSecret(t *testing.T) {
	manager := NewJWTManager("secret", time.Minute, time.Hour)
	other := NewJWTManager("different", time.Minute, time.Hour)

	token, err := manager.GenerateToken("user-1", "alice", "alice@example.com")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMalformedToken(t *testing.T) {
	manager := NewJWTManager("secret", time.Minute, time.Hour)

	_, err := manager.ValidateToken("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRefreshTokenRejectsAccessType(t *testing.T) {
	manager := NewJWTManager("secret", time.Minute, time.Hour)

	accessToken, err := manager.GenerateToken("user-1", "alice", "alice@example.com")
	require.NoError(t, err)

	_, err = manager.ValidateRefreshToken(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	refreshToken, err := manager.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	claims, err := manager.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "refresh", claims.TokenType)
}
