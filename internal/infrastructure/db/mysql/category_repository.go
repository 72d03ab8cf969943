package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/murahjaya/inventory-system/internal/core/domain"
)

// CategoryRepository persists categories in the kategori table.
type CategoryRepository struct {
	store *Store
}

func NewCategoryRepository(store *Store) *CategoryRepository {
	return &CategoryRepository{store: store}
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	const query = `INSERT INTO kategori (kode_kategori, nama_kategori, deskripsi, lokasi_rak)
		VALUES (?, ?, ?, ?)`
	_, err := r.store.Exec(ctx, query,
		category.Code, category.Name, category.Description, category.ShelfLocation)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	// fetch back to learn the assigned id
	return r.findOne(ctx,
		`SELECT id_kategori, kode_kategori, nama_kategori, deskripsi, lokasi_rak
		 FROM kategori WHERE kode_kategori = ?`, category.Code)
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	const query = `SELECT id_kategori, kode_kategori, nama_kategori, deskripsi, lokasi_rak
		FROM kategori WHERE id_kategori = ?`
	return r.findOne(ctx, query, id)
}

func (r *CategoryRepository) findOne(ctx context.Context, query string, arg any) (*domain.Category, error) {
	var c domain.Category
	err := r.store.QueryRow(ctx, query, []any{arg}, func(s Scanner) error {
		return s.Scan(&c.ID, &c.Code, &c.Name, &c.Description, &c.ShelfLocation)
	})
	if err != nil {
		if errors.Is(err, ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	const query = `SELECT id_kategori, kode_kategori, nama_kategori, deskripsi, lokasi_rak
		FROM kategori ORDER BY id_kategori`
	var categories []domain.Category
	err := r.store.Query(ctx, query, nil, func(rows Rows) error {
		for rows.Next() {
			var c domain.Category
			if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Description, &c.ShelfLocation); err != nil {
				return err
			}
			categories = append(categories, c)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	const query = `UPDATE kategori
		SET kode_kategori = ?, nama_kategori = ?, deskripsi = ?, lokasi_rak = ?
		WHERE id_kategori = ?`
	n, err := r.store.Exec(ctx, query,
		category.Code, category.Name, category.Description, category.ShelfLocation, category.ID)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if n == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// Delete removes the category. Products referencing it are removed by the
// schema's ON DELETE CASCADE rule, not by application logic.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM kategori WHERE id_kategori = ?`
	n, err := r.store.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if n == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}
