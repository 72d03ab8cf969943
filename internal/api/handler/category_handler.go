package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/murahjaya/inventory-system/internal/core/domain"
	"github.com/murahjaya/inventory-system/internal/core/ports"
)

// CategoryHandler owns the category routes. Reads are open to any
// authenticated user; mutations are admin-only (enforced by the router's
// guards).
type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

type categoryRequest struct {
	Code          string `json:"code" form:"code" validate:"required"`
	Name          string `json:"name" form:"name" validate:"required"`
	Description   string `json:"description" form:"description" validate:"required"`
	ShelfLocation string `json:"shelf_location" form:"shelf_location" validate:"required"`
}

// List returns all categories ordered by id.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}  domain.Category
// @Router       /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// Get returns one category.
//
// @Summary      Get category
// @Tags         categories
// @Produce      json
// @Param        id  path  int  true  "Category id"
// @Success      200  {object}  domain.Category
// @Failure      404  {object}  map[string]string
// @Router       /categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	category, err := h.categoryService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// Create adds a category.
//
// @Summary      Create category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body      categoryRequest  true  "Category details"
// @Success      201   {object}  domain.Category
// @Router       /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.categoryService.Create(c.Request().Context(), session.Username, &domain.Category{
		Code:          req.Code,
		Name:          req.Name,
		Description:   req.Description,
		ShelfLocation: req.ShelfLocation,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

// Update rewrites a category.
//
// @Summary      Update category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "Category id"
// @Param        body  body      categoryRequest  true  "Category details"
// @Success      204
// @Failure      404   {object}  map[string]string
// @Router       /categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = h.categoryService.Update(c.Request().Context(), session.Username, &domain.Category{
		ID:            id,
		Code:          req.Code,
		Name:          req.Name,
		Description:   req.Description,
		ShelfLocation: req.ShelfLocation,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes a category; its products go with it via the schema's cascade.
//
// @Summary      Delete category
// @Tags         categories
// @Produce      json
// @Param        id  path  int  true  "Category id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.categoryService.Delete(c.Request().Context(), session.Username, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
