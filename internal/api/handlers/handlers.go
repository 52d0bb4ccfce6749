package handlers

import (
	"errors"
	"time"

	"coinkeeper/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := c.Locals("userID").(string)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}

// errorStatus maps service sentinels onto HTTP statuses. Anything outside
// the taxonomy is an internal error.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrExpenseNotFound),
		errors.Is(err, service.ErrIncomeNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrCategoryPermissionDenied),
		errors.Is(err, service.ErrExpensePermissionDenied),
		errors.Is(err, service.ErrIncomePermissionDenied):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrCategoryTypeMismatch),
		errors.Is(err, service.ErrInvalidCategoryType),
		errors.Is(err, service.ErrInvalidPeriod),
		errors.Is(err, service.ErrInvalidPagination),
		errors.Is(err, service.ErrValueOutOfRange),
		errors.Is(err, service.ErrCommentTooLong):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrUserExists):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrTokenExpired):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes the error as JSON. Internal errors are logged with the
// underlying cause and masked behind a generic message.
func respondError(c *fiber.Ctx, logger *zap.Logger, err error, internalMsg string) error {
	status := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		logger.Error(internalMsg, zap.Error(err))
		return c.Status(status).JSON(fiber.Map{
			"error": internalMsg,
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// queryTime parses an optional RFC3339 query parameter; a zero time means
// the parameter was absent.
func queryTime(c *fiber.Ctx, key string) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, raw)
}
