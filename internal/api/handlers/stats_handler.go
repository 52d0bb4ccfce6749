package handlers

import (
	"coinkeeper/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type StatsHandler struct {
	statsService *service.StatsService
	logger       *zap.Logger
}

func NewStatsHandler(statsService *service.StatsService, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		logger:       logger,
	}
}

// CategoryExpenses godoc
// @Summary Expense totals by category
// @Description Top expense categories for the period, largest first, at most 10 entries with the tail collapsed into "Other"
// @Tags stats
// @Produce json
// @Param period query string true "Period: today, week, month or year"
// @Security Bearer
// @Success 200 {object} dto.CategoryExpenseStat
// @Failure 400 {object} map[string]string
// @Router /api/v1/stats/expenses [get]
func (h *StatsHandler) CategoryExpenses(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	period, err := service.ParsePeriod(c.Query("period"))
	if err != nil {
		return respondError(c, h.logger, err, "Invalid period")
	}

	resp, err := h.statsService.CategoryExpenseStats(c.Context(), userID, period)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to compute category stats")
	}

	return c.JSON(resp)
}

// Dynamics godoc
// @Summary Expense dynamics over time
// @Description Zero-filled series with one entry per hour of day, day of week, day of month or day of year depending on the period
// @Tags stats
// @Produce json
// @Param period query string true "Period: today, week, month or year"
// @Security Bearer
// @Success 200 {array} dto.ExpenseDynamic
// @Failure 400 {object} map[string]string
// @Router /api/v1/stats/dynamic [get]
func (h *StatsHandler) Dynamics(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	period, err := service.ParsePeriod(c.Query("period"))
	if err != nil {
		return respondError(c, h.logger, err, "Invalid period")
	}

	resp, err := h.statsService.ExpenseDynamics(c.Context(), userID, period)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to compute expense dynamics")
	}

	return c.JSON(resp)
}
