package ports

import (
	"context"

	"github.com/murahjaya/inventory-system/internal/core/domain"
)

// UserService exposes admin-facing user management.
type UserService interface {
	Create(ctx context.Context, actor, username, password, role string) (*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, actor string, id int64, username, role, password string) error
	Delete(ctx context.Context, actor string, targetID, actingUserID int64) error
}

// CategoryService exposes category CRUD.
type CategoryService interface {
	Create(ctx context.Context, actor string, category *domain.Category) (*domain.Category, error)
	Get(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, actor string, category *domain.Category) error
	Delete(ctx context.Context, actor string, id int64) error
}

// ProductService exposes product CRUD plus the dashboard projections.
type ProductService interface {
	Create(ctx context.Context, actor string, product *domain.Product) (*domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Latest(ctx context.Context, limit int) ([]domain.Product, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error)
	Update(ctx context.Context, actor string, product *domain.Product) error
	Delete(ctx context.Context, actor string, id int64) error
}
