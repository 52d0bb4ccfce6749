package handlers

import (
	"coinkeeper/internal/dto"
	"coinkeeper/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
	logger          *zap.Logger
}

func NewCategoryHandler(categoryService *service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// Create godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category"
// @Security Bearer
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.categoryService.Create(c.Context(), userID, &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create category")
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary List the user's categories
// @Tags categories
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size, max 100" default(10)
// @Security Bearer
// @Success 200 {object} dto.CategoriesResponse
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.categoryService.List(c.Context(), userID, c.QueryInt("skip", 0), c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to list categories")
	}

	return c.JSON(resp)
}

// Get godoc
// @Summary Get a category by id
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Security Bearer
// @Success 200 {object} dto.CategoryResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/categories/{id} [get]
func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	categoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid category id",
		})
	}

	resp, err := h.categoryService.Get(c.Context(), categoryID, userID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to get category")
	}

	return c.JSON(resp)
}

// Update godoc
// @Summary Update a category by id
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body dto.UpdateCategoryRequest true "Category"
// @Security Bearer
// @Success 200 {object} dto.CategoryResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	categoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid category id",
		})
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.categoryService.Update(c.Context(), categoryID, userID, &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update category")
	}

	return c.JSON(resp)
}

// Delete godoc
// @Summary Delete a category by id
// @Description Deletes the category and every income and expense filed under it
// @Tags categories
// @Param id path string true "Category ID"
// @Security Bearer
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	categoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid category id",
		})
	}

	if err := h.categoryService.Delete(c.Context(), categoryID, userID); err != nil {
		return respondError(c, h.logger, err, "Failed to delete category")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
