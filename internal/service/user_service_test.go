package service

import (
	"context"
	"testing"

	"coinkeeper/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserProfile(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users, zap.NewNop())

	userID := uuid.New()
	require.NoError(t, users.Create(context.Background(), &models.User{
		ID:              userID,
		Username:        "bob",
		Email:           "bob@example.com",
		DayExpenseLimit: decimal.NewFromInt(500),
	}))

	resp, err := svc.Profile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "bob", resp.Username)
	assert.True(t, resp.DayExpenseLimit.Equal(decimal.NewFromInt(500)))

	_, err = svc.Profile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserUpdateExpenseLimit(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users, zap.NewNop())

	userID := uuid.New()
	require.NoError(t, users.Create(context.Background(), &models.User{
		ID:              userID,
		Username:        "bob",
		DayExpenseLimit: decimal.NewFromInt(500),
	}))

	resp, err := svc.UpdateExpenseLimit(context.Background(), userID, decimal.RequireFromString("750.50"))
	require.NoError(t, err)
	assert.True(t, resp.DayExpenseLimit.Equal(decimal.RequireFromString("750.50")))

	_, err = svc.UpdateExpenseLimit(context.Background(), userID, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ErrValueOutOfRange)

	_, err = svc.UpdateExpenseLimit(context.Background(), uuid.New(), decimal.NewFromInt(100))
	assert.ErrorIs(t, err, ErrUserNotFound)
}
