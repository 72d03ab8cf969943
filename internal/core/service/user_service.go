package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/murahjaya/inventory-system/internal/core/domain"
	"github.com/murahjaya/inventory-system/internal/core/ports"
)

// UserService implements admin-facing user management.
type UserService struct {
	repo  ports.UserRepository
	audit ports.AuditSink
}

func NewUserService(repo ports.UserRepository, audit ports.AuditSink) *UserService {
	return &UserService{repo: repo, audit: audit}
}

func (s *UserService) Create(ctx context.Context, actor, username, password, role string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if role == "" {
		role = domain.RoleCashier
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(domain.AuditEvent{
		Actor:    actor,
		Action:   domain.AuditCreate,
		Entity:   domain.EntityUser,
		EntityID: created.ID,
		At:       time.Now().UTC(),
	})
	return created, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

// Update rewrites username and role. A non-empty password is re-hashed; an
// empty one keeps the stored hash.
func (s *UserService) Update(ctx context.Context, actor string, id int64, username, role, password string) error {
	if username == "" {
		return domain.ErrInvalidCredentials
	}
	if role == "" {
		role = domain.RoleCashier
	}
	if !domain.ValidRole(role) {
		return domain.ErrInvalidCredentials
	}

	user := &domain.User{ID: id, Username: username, Role: role}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	s.audit.Record(domain.AuditEvent{
		Actor:    actor,
		Action:   domain.AuditUpdate,
		Entity:   domain.EntityUser,
		EntityID: id,
		At:       time.Now().UTC(),
	})
	return nil
}

// Delete removes a user. Deleting the acting user's own account is a business
// rule violation detected before any store call.
func (s *UserService) Delete(ctx context.Context, actor string, targetID, actingUserID int64) error {
	if targetID == actingUserID {
		return domain.ErrSelfDeletion
	}

	if err := s.repo.Delete(ctx, targetID); err != nil {
		return err
	}

	s.audit.Record(domain.AuditEvent{
		Actor:    actor,
		Action:   domain.AuditDelete,
		Entity:   domain.EntityUser,
		EntityID: targetID,
		At:       time.Now().UTC(),
	})
	return nil
}
