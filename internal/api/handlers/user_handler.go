package handlers

import (
	"coinkeeper/internal/dto"
	"coinkeeper/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService *service.UserService
	logger      *zap.Logger
}

func NewUserHandler(userService *service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// Profile godoc
// @Summary Get current user profile
// @Tags users
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/users/me [get]
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.userService.Profile(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to load profile")
	}

	return c.JSON(resp)
}

// UpdateExpenseLimit godoc
// @Summary Update the daily expense limit
// @Description Store a new advisory daily spending limit for the current user
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.UpdateExpenseLimitRequest true "New limit"
// @Security Bearer
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/users/me/limit [put]
func (h *UserHandler) UpdateExpenseLimit(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.UpdateExpenseLimitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.userService.UpdateExpenseLimit(c.Context(), userID, req.DayExpenseLimit)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update expense limit")
	}

	return c.JSON(resp)
}
