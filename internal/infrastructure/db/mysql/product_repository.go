package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/murahjaya/inventory-system/internal/core/domain"
)

const productColumns = `p.id_produk, p.kode_produk, p.nama, p.harga, p.stok, p.kategori_id,
	k.nama_kategori, k.lokasi_rak`

const productJoin = `FROM produk p LEFT JOIN kategori k ON p.kategori_id = k.id_kategori`

// ProductRepository persists products in the produk table. Reads join the
// owning category so callers get the category name and shelf location in one
// round trip.
type ProductRepository struct {
	store *Store
}

func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	const query = `INSERT INTO produk (kode_produk, nama, harga, stok, kategori_id)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.store.Exec(ctx, query,
		product.Code, product.Name, product.Price, product.Stock, product.CategoryID)
	if err != nil {
		if errors.Is(err, domain.ErrForeignKey) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("insert product: %w", err)
	}
	// fetch back to learn the assigned id
	return r.findOne(ctx,
		`SELECT `+productColumns+` `+productJoin+` WHERE p.kode_produk = ?`, product.Code)
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	return r.findOne(ctx,
		`SELECT `+productColumns+` `+productJoin+` WHERE p.id_produk = ?`, id)
}

func (r *ProductRepository) findOne(ctx context.Context, query string, arg any) (*domain.Product, error) {
	var p domain.Product
	err := r.store.QueryRow(ctx, query, []any{arg}, func(s Scanner) error {
		return scanProduct(s, &p)
	})
	if err != nil {
		if errors.Is(err, ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` ` + productJoin + ` ORDER BY p.id_produk`
	return r.findMany(ctx, query, nil)
}

// FindLatest returns the most recently added products, newest first.
func (r *ProductRepository) FindLatest(ctx context.Context, limit int) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` ` + productJoin + ` ORDER BY p.id_produk DESC LIMIT ?`
	return r.findMany(ctx, query, []any{limit})
}

func (r *ProductRepository) FindByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` ` + productJoin + ` WHERE p.kategori_id = ? ORDER BY p.nama`
	return r.findMany(ctx, query, []any{categoryID})
}

func (r *ProductRepository) findMany(ctx context.Context, query string, args []any) ([]domain.Product, error) {
	var products []domain.Product
	err := r.store.Query(ctx, query, args, func(rows Rows) error {
		for rows.Next() {
			var p domain.Product
			if err := scanProduct(rows, &p); err != nil {
				return err
			}
			products = append(products, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	const query = `UPDATE produk
		SET kode_produk = ?, nama = ?, harga = ?, stok = ?, kategori_id = ?
		WHERE id_produk = ?`
	n, err := r.store.Exec(ctx, query,
		product.Code, product.Name, product.Price, product.Stock, product.CategoryID, product.ID)
	if err != nil {
		if errors.Is(err, domain.ErrForeignKey) {
			return domain.ErrCategoryNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}
	if n == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM produk WHERE id_produk = ?`
	n, err := r.store.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if n == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// scanProduct reads one joined row. The category columns are nullable because
// of the LEFT JOIN.
func scanProduct(s Scanner, p *domain.Product) error {
	var (
		categoryName  sql.NullString
		shelfLocation sql.NullString
	)
	if err := s.Scan(&p.ID, &p.Code, &p.Name, &p.Price, &p.Stock, &p.CategoryID,
		&categoryName, &shelfLocation); err != nil {
		return err
	}
	p.CategoryName = categoryName.String
	p.ShelfLocation = shelfLocation.String
	return nil
}
