package ports

import (
	"context"

	"github.com/murahjaya/inventory-system/internal/core/domain"
)

// ProductRepository defines the interface for product persistence. Read
// operations return rows joined with the owning category.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindLatest(ctx context.Context, limit int) ([]domain.Product, error)
	FindByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id int64) error
}
