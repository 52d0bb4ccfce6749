package service

import (
	"context"
	"testing"
	"time"

	"coinkeeper/internal/dto"
	"coinkeeper/pkg/auth"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService() (*AuthService, *fakeUserStore) {
	users := newFakeUserStore()
	manager := auth.NewJWTManager("test-secret", 15*time.Minute, 24*time.Hour)
	return NewAuthService(users, manager, zap.NewNop()), users
}

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	}
}

func TestRegister(t *testing.T) {
	svc, users := newAuthService()

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64((15 * time.Minute).Seconds()), resp.ExpiresIn)
	assert.Equal(t, "alice", resp.User.Username)

	// The password is stored hashed, never verbatim.
	require.Len(t, users.users, 1)
	for _, user := range users.users {
		assert.NotEqual(t, "s3cret-pass", user.Password)
		assert.True(t, user.DayExpenseLimit.Equal(decimal.NewFromInt(500)))
	}
}

func TestRegisterDuplicate(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	// Same email, different username.
	_, err = svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "other",
	})
	assert.ErrorIs(t, err, ErrUserExists)

	// Same username, different email.
	_, err = svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice",
		Email:    "alice2@example.com",
		Password: "other",
	})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshToken(t *testing.T) {
	svc, _ := newAuthService()

	registered, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	rotated, err := svc.RefreshToken(context.Background(), registered.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotEmpty(t, rotated.RefreshToken)
	assert.Equal(t, registered.User.ID, rotated.User.ID)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	svc, _ := newAuthService()

	registered, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), registered.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshTokenGarbage(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.RefreshToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
