package service

import (
	"context"
	"errors"

	"coinkeeper/internal/dto"
	"coinkeeper/internal/models"
	"coinkeeper/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type UserService struct {
	users  UserStore
	logger *zap.Logger
}

func NewUserService(users UserStore, logger *zap.Logger) *UserService {
	return &UserService{
		users:  users,
		logger: logger,
	}
}

func (s *UserService) Profile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	resp := userResponse(user)
	return &resp, nil
}

// UpdateExpenseLimit stores a new advisory daily spending limit. The limit is
// reported back to clients but nothing gates expense creation on it.
func (s *UserService) UpdateExpenseLimit(ctx context.Context, userID uuid.UUID, limit decimal.Decimal) (*dto.UserResponse, error) {
	if limit.IsNegative() {
		return nil, ErrValueOutOfRange
	}

	if err := s.users.UpdateExpenseLimit(ctx, userID, limit); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return s.Profile(ctx, userID)
}

func userResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:              user.ID.String(),
		Username:        user.Username,
		Email:           user.Email,
		DayExpenseLimit: user.DayExpenseLimit,
	}
}
