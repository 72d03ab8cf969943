package service

import (
	"context"
	"time"

	"github.com/murahjaya/inventory-system/internal/core/domain"
	"github.com/murahjaya/inventory-system/internal/core/ports"
)

// CategoryService implements category CRUD.
type CategoryService struct {
	repo  ports.CategoryRepository
	audit ports.AuditSink
}

func NewCategoryService(repo ports.CategoryRepository, audit ports.AuditSink) *CategoryService {
	return &CategoryService{repo: repo, audit: audit}
}

func (s *CategoryService) Create(ctx context.Context, actor string, category *domain.Category) (*domain.Category, error) {
	created, err := s.repo.Create(ctx, category)
	if err != nil {
		return nil, err
	}
	s.record(actor, domain.AuditCreate, created.ID)
	return created, nil
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *CategoryService) Update(ctx context.Context, actor string, category *domain.Category) error {
	if err := s.repo.Update(ctx, category); err != nil {
		return err
	}
	s.record(actor, domain.AuditUpdate, category.ID)
	return nil
}

// Delete removes the category; the backing schema cascades the removal to its
// products.
func (s *CategoryService) Delete(ctx context.Context, actor string, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.record(actor, domain.AuditDelete, id)
	return nil
}

func (s *CategoryService) record(actor, action string, id int64) {
	s.audit.Record(domain.AuditEvent{
		Actor:    actor,
		Action:   action,
		Entity:   domain.EntityCategory,
		EntityID: id,
		At:       time.Now().UTC(),
	})
}
