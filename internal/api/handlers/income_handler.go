package handlers

import (
	"coinkeeper/internal/dto"
	"coinkeeper/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type IncomeHandler struct {
	incomeService *service.IncomeService
	logger        *zap.Logger
}

func NewIncomeHandler(incomeService *service.IncomeService, logger *zap.Logger) *IncomeHandler {
	return &IncomeHandler{
		incomeService: incomeService,
		logger:        logger,
	}
}

// Create godoc
// @Summary Create an income
// @Description Create an income against an income-type category
// @Tags incomes
// @Accept json
// @Produce json
// @Param request body dto.CreateIncomeRequest true "Income"
// @Security Bearer
// @Success 201 {object} dto.IncomeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/incomes [post]
func (h *IncomeHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.CreateIncomeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.incomeService.Create(c.Context(), userID, &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create income")
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary List incomes for a period
// @Description One page of incomes in [from_date, to_date] plus the total over the whole range. Defaults to the last 24 hours.
// @Tags incomes
// @Produce json
// @Param from_date query string false "RFC3339 range start"
// @Param to_date query string false "RFC3339 range end"
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size, max 100" default(10)
// @Security Bearer
// @Success 200 {object} dto.IncomesResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/incomes [get]
func (h *IncomeHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	from, err := queryTime(c, "from_date")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid from_date",
		})
	}
	to, err := queryTime(c, "to_date")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid to_date",
		})
	}

	resp, err := h.incomeService.List(c.Context(), userID, from, to, c.QueryInt("skip", 0), c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to list incomes")
	}

	return c.JSON(resp)
}

// Get godoc
// @Summary Get an income by id
// @Tags incomes
// @Produce json
// @Param id path string true "Income ID"
// @Security Bearer
// @Success 200 {object} dto.IncomeResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/incomes/{id} [get]
func (h *IncomeHandler) Get(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	incomeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid income id",
		})
	}

	resp, err := h.incomeService.Get(c.Context(), incomeID, userID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to get income")
	}

	return c.JSON(resp)
}

// Update godoc
// @Summary Update an income by id
// @Tags incomes
// @Accept json
// @Produce json
// @Param id path string true "Income ID"
// @Param request body dto.UpdateIncomeRequest true "Income"
// @Security Bearer
// @Success 200 {object} dto.IncomeResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/incomes/{id} [put]
func (h *IncomeHandler) Update(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	incomeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid income id",
		})
	}

	var req dto.UpdateIncomeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.incomeService.Update(c.Context(), incomeID, userID, &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update income")
	}

	return c.JSON(resp)
}

// Delete godoc
// @Summary Delete an income by id
// @Tags incomes
// @Produce json
// @Param id path string true "Income ID"
// @Security Bearer
// @Success 200 {object} dto.IncomeResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/incomes/{id} [delete]
func (h *IncomeHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	incomeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid income id",
		})
	}

	resp, err := h.incomeService.Delete(c.Context(), incomeID, userID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to delete income")
	}

	return c.JSON(resp)
}
