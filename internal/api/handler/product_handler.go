package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/murahjaya/inventory-system/internal/core/domain"
	"github.com/murahjaya/inventory-system/internal/core/ports"
)

// ProductHandler owns the product routes.
type ProductHandler struct {
	productService ports.ProductService
}

func NewProductHandler(productService ports.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

type productRequest struct {
	Code       string `json:"code" form:"code" validate:"required"`
	Name       string `json:"name" form:"name" validate:"required"`
	Price      int64  `json:"price" form:"price" validate:"gte=0"`
	Stock      int64  `json:"stock" form:"stock" validate:"gte=0"`
	CategoryID int64  `json:"category_id" form:"category_id" validate:"required,gt=0"`
}

// List returns all products with their category name joined in. An optional
// ?category= filter narrows the list to one category.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        category  query  int  false  "Filter by category id"
// @Success      200  {array}  domain.Product
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if raw := c.QueryParam("category"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || categoryID <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid category filter")
		}
		products, err := h.productService.ListByCategory(ctx, categoryID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, products)
	}

	products, err := h.productService.List(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get returns one product.
//
// @Summary      Get product
// @Tags         products
// @Produce      json
// @Param        id  path  int  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	product, err := h.productService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create adds a product. The category must already exist.
//
// @Summary      Create product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      404   {object}  map[string]string
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.productService.Create(c.Request().Context(), session.Username, &domain.Product{
		Code:       req.Code,
		Name:       req.Name,
		Price:      req.Price,
		Stock:      req.Stock,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// Update rewrites a product.
//
// @Summary      Update product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Product id"
// @Param        body  body      productRequest  true  "Product details"
// @Success      204
// @Failure      404   {object}  map[string]string
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = h.productService.Update(c.Request().Context(), session.Username, &domain.Product{
		ID:         id,
		Code:       req.Code,
		Name:       req.Name,
		Price:      req.Price,
		Stock:      req.Stock,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes a product.
//
// @Summary      Delete product
// @Tags         products
// @Produce      json
// @Param        id  path  int  true  "Product id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.productService.Delete(c.Request().Context(), session.Username, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
