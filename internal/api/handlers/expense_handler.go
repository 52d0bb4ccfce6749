package handlers

import (
	"coinkeeper/internal/dto"
	"coinkeeper/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ExpenseHandler struct {
	expenseService *service.ExpenseService
	logger         *zap.Logger
}

func NewExpenseHandler(expenseService *service.ExpenseService, logger *zap.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		logger:         logger,
	}
}

// Create godoc
// @Summary Create an expense
// @Description Create an expense against an expense-type category
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body dto.CreateExpenseRequest true "Expense"
// @Security Bearer
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.expenseService.Create(c.Context(), userID, &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create expense")
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary List expenses for a period
// @Description One page of expenses in [from_date, to_date] plus the total over the whole range. Defaults to the last 24 hours.
// @Tags expenses
// @Produce json
// @Param from_date query string false "RFC3339 range start"
// @Param to_date query string false "RFC3339 range end"
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size, max 100" default(10)
// @Security Bearer
// @Success 200 {object} dto.ExpensesResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
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

	resp, err := h.expenseService.List(c.Context(), userID, from, to, c.QueryInt("skip", 0), c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to list expenses")
	}

	return c.JSON(resp)
}

// Get godoc
// @Summary Get an expense by id
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Security Bearer
// @Success 200 {object} dto.ExpenseResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/expenses/{id} [get]
func (h *ExpenseHandler) Get(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	expenseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid expense id",
		})
	}

	resp, err := h.expenseService.Get(c.Context(), expenseID, userID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to get expense")
	}

	return c.JSON(resp)
}

// Update godoc
// @Summary Update an expense by id
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param request body dto.UpdateExpenseRequest true "Expense"
// @Security Bearer
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	expenseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid expense id",
		})
	}

	var req dto.UpdateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.expenseService.Update(c.Context(), expenseID, userID, &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update expense")
	}

	return c.JSON(resp)
}

// Delete godoc
// @Summary Delete an expense by id
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Security Bearer
// @Success 200 {object} dto.ExpenseResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	expenseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid expense id",
		})
	}

	resp, err := h.expenseService.Delete(c.Context(), expenseID, userID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to delete expense")
	}

	return c.JSON(resp)
}
