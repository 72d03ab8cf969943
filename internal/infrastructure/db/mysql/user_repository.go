package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/murahjaya/inventory-system/internal/core/domain"
)

// UserRepository persists credential records in the users table.
type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// Create inserts a credential record and fetches it back to learn the assigned
// id. A username collision surfaces as domain.ErrUserExists.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	const query = `INSERT INTO users (username, password, role) VALUES (?, ?, ?)`
	if _, err := r.store.Exec(ctx, query, user.Username, user.PasswordHash, user.Role); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return r.FindByUsername(ctx, user.Username)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = `SELECT id_user, username, password, role FROM users WHERE username = ?`
	return r.findOne(ctx, query, username)
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `SELECT id_user, username, password, role FROM users WHERE id_user = ?`
	return r.findOne(ctx, query, id)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.store.QueryRow(ctx, query, []any{arg}, func(s Scanner) error {
		return s.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role)
	})
	if err != nil {
		if errors.Is(err, ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	const query = `SELECT id_user, username, role FROM users ORDER BY id_user`
	var users []domain.User
	err := r.store.Query(ctx, query, nil, func(rows Rows) error {
		for rows.Next() {
			var u domain.User
			if err := rows.Scan(&u.ID, &u.Username, &u.Role); err != nil {
				return err
			}
			users = append(users, u)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Update rewrites username and role, and the password hash only when the record
// carries one. An empty hash means "keep the current password".
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	var (
		query string
		args  []any
	)
	if user.PasswordHash != "" {
		query = `UPDATE users SET username = ?, password = ?, role = ? WHERE id_user = ?`
		args = []any{user.Username, user.PasswordHash, user.Role, user.ID}
	} else {
		query = `UPDATE users SET username = ?, role = ? WHERE id_user = ?`
		args = []any{user.Username, user.Role, user.ID}
	}

	n, err := r.store.Exec(ctx, query, args...)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id_user = ?`
	n, err := r.store.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
