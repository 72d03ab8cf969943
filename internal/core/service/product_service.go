package service

import (
	"context"
	"time"

	"github.com/murahjaya/inventory-system/internal/core/domain"
	"github.com/murahjaya/inventory-system/internal/core/ports"
)

const defaultLatestLimit = 5

// ProductService implements product CRUD and the dashboard projections.
type ProductService struct {
	repo  ports.ProductRepository
	audit ports.AuditSink
}

func NewProductService(repo ports.ProductRepository, audit ports.AuditSink) *ProductService {
	return &ProductService{repo: repo, audit: audit}
}

func (s *ProductService) Create(ctx context.Context, actor string, product *domain.Product) (*domain.Product, error) {
	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	s.record(actor, domain.AuditCreate, created.ID)
	return created, nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx)
}

// Latest returns the most recently added products, newest first.
func (s *ProductService) Latest(ctx context.Context, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = defaultLatestLimit
	}
	return s.repo.FindLatest(ctx, limit)
}

func (s *ProductService) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	return s.repo.FindByCategory(ctx, categoryID)
}

func (s *ProductService) Update(ctx context.Context, actor string, product *domain.Product) error {
	if err := s.repo.Update(ctx, product); err != nil {
		return err
	}
	s.record(actor, domain.AuditUpdate, product.ID)
	return nil
}

func (s *ProductService) Delete(ctx context.Context, actor string, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.record(actor, domain.AuditDelete, id)
	return nil
}

func (s *ProductService) record(actor, action string, id int64) {
	s.audit.Record(domain.AuditEvent{
		Actor:    actor,
		Action:   action,
		Entity:   domain.EntityProduct,
		EntityID: id,
		At:       time.Now().UTC(),
	})
}
