package pgrepo

import (
	"context"
	"errors"
	"fmt"

	"velora-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type productRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) domain.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	sql := fmt.Sprintf("SELECT %s FROM products WHERE id = $1", productColumns)

	var p domain.Product
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Brand, &p.Category,
		&p.Price, &p.Rating, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	sql := `INSERT INTO products (id, name, description, brand, category, price, rating, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, sql,
		product.ID, product.Name, product.Description, product.Brand,
		product.Category, product.Price, product.Rating, product.IsActive,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	sql := `UPDATE products
		SET name = $2, description = $3, brand = $4, category = $5, price = $6, rating = $7, updated_at = $8
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, sql,
		product.ID, product.Name, product.Description, product.Brand,
		product.Category, product.Price, product.Rating, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *productRepository) UpdateProductStatus(ctx context.Context, id string, isActive bool) error {
	tag, err := r.db.Exec(ctx, "UPDATE products SET is_active = $2, updated_at = NOW() WHERE id = $1", id, isActive)
	if err != nil {
		return fmt.Errorf("update product status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
