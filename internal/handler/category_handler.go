package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "github.com/Zayed4321/FoodHouse-Backend/internal/errors"
	"github.com/Zayed4321/FoodHouse-Backend/internal/service"
)

// CategoryHandler handles catalog category endpoints.
type CategoryHandler struct {
	categoryService service.CategoryService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest represents a category create or update request.
type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// Create godoc
// @Summary Create a category (admin)
// @Tags category
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryRequest true "Category name"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.Response
// @Failure 409 {object} errors.Response
// @Router /category/create-category [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, apperrors.NewValidationError("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, apperrors.NewValidationError(err.Error()))
	}

	category, err := h.categoryService.Create(c.Request().Context(), req.Name)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success":  true,
		"message":  "new category created successfully",
		"category": category,
	})
}

// Update godoc
// @Summary Rename a category (admin)
// @Tags category
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body CategoryRequest true "Category name"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /category/update-category/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return fail(c, apperrors.NewValidationError("invalid category id"))
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, apperrors.NewValidationError("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, apperrors.NewValidationError(err.Error()))
	}

	category, err := h.categoryService.Update(c.Request().Context(), id, req.Name)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":  true,
		"message":  "category updated successfully",
		"category": category,
	})
}

// Delete godoc
// @Summary Delete a category (admin)
// @Tags category
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.Response
// @Router /category/delete-category/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return fail(c, apperrors.NewValidationError("invalid category id"))
	}

	if err := h.categoryService.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "category deleted successfully",
	})
}

// List godoc
// @Summary List all categories
// @Tags category
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /category/all-category [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryService.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":    true,
		"categories": categories,
	})
}

// GetBySlug godoc
// @Summary Get a single category by slug
// @Tags category
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.Response
// @Router /category/single-category/{slug} [get]
func (h *CategoryHandler) GetBySlug(c echo.Context) error {
	category, err := h.categoryService.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":  true,
		"category": category,
	})
}
