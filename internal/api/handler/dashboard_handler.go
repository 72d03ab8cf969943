package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/murahjaya/inventory-system/internal/core/domain"
	"github.com/murahjaya/inventory-system/internal/core/ports"
)

const latestProductCount = 5

// DashboardHandler serves the landing-page summary.
type DashboardHandler struct {
	productService  ports.ProductService
	categoryService ports.CategoryService
	userService     ports.UserService
}

func NewDashboardHandler(products ports.ProductService, categories ports.CategoryService, users ports.UserService) *DashboardHandler {
	return &DashboardHandler{
		productService:  products,
		categoryService: categories,
		userService:     users,
	}
}

type dashboardResponse struct {
	TotalProducts   int              `json:"total_products"`
	TotalCategories int              `json:"total_categories"`
	TotalStock      int64            `json:"total_stock"`
	LatestProducts  []domain.Product `json:"latest_products"`
	TotalUsers      *int             `json:"total_users,omitempty"`
}

// Summary returns inventory totals plus the most recently added products.
// The user count is included only for admins.
//
// @Summary      Dashboard summary
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	products, err := h.productService.List(ctx)
	if err != nil {
		return err
	}
	categories, err := h.categoryService.List(ctx)
	if err != nil {
		return err
	}
	latest, err := h.productService.Latest(ctx, latestProductCount)
	if err != nil {
		return err
	}

	var totalStock int64
	for _, p := range products {
		totalStock += p.Stock
	}

	resp := dashboardResponse{
		TotalProducts:   len(products),
		TotalCategories: len(categories),
		TotalStock:      totalStock,
		LatestProducts:  latest,
	}

	if session.Role == domain.RoleAdmin {
		users, err := h.userService.List(ctx)
		if err != nil {
			return err
		}
		count := len(users)
		resp.TotalUsers = &count
	}

	return c.JSON(http.StatusOK, resp)
}
