package pgrepo

import (
	"context"
	"fmt"
	"strings"

	"velora-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = "id, name, description, brand, category, price, rating, is_active, created_at, updated_at"

type searchRepository struct {
	db *pgxpool.Pool
}

func NewSearchRepository(db *pgxpool.Pool) domain.SearchRepository {
	return &searchRepository{db: db}
}

func (r *searchRepository) SearchProducts(ctx context.Context, filter domain.Filter, order domain.Ordering, limit, offset int) ([]domain.Product, error) {
	where, args := buildWhere(filter)
	orderBy, args := buildOrderBy(order, filter.Text, args)

	args = append(args, limit, offset)
	sql := fmt.Sprintf(
		"SELECT %s FROM products WHERE %s %s LIMIT $%d OFFSET $%d",
		productColumns, where, orderBy, len(args)-1, len(args),
	)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Brand, &p.Category,
			&p.Price, &p.Rating, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}

	return products, nil
}

func (r *searchRepository) CountProducts(ctx context.Context, filter domain.Filter) (int64, error) {
	where, args := buildWhere(filter)
	sql := fmt.Sprintf("SELECT COUNT(*) FROM products WHERE %s", where)

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

func (r *searchRepository) SuggestProducts(ctx context.Context, text string, limit int) ([]domain.ProductHint, error) {
	sql := `SELECT name, brand, category FROM products
		WHERE is_active = TRUE AND (name ILIKE $1 OR brand ILIKE $1)
		LIMIT $2`

	rows, err := r.db.Query(ctx, sql, likePattern(text), limit)
	if err != nil {
		return nil, fmt.Errorf("query suggestions: %w", err)
	}
	defer rows.Close()

	hints := []domain.ProductHint{}
	for rows.Next() {
		var h domain.ProductHint
		if err := rows.Scan(&h.Name, &h.Brand, &h.Category); err != nil {
			return nil, fmt.Errorf("scan suggestion: %w", err)
		}
		hints = append(hints, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read suggestions: %w", err)
	}

	return hints, nil
}

// buildWhere translates the store-agnostic filter into a conjunctive SQL
// predicate. Active-only is always the first clause; text matching is
// substring-based across name, description, brand and category.
func buildWhere(filter domain.Filter) (string, []any) {
	clauses := []string{"is_active = TRUE"}
	args := []any{}

	if filter.Text != "" {
		args = append(args, likePattern(filter.Text))
		n := len(args)
		clauses = append(clauses, fmt.Sprintf(
			"(name ILIKE $%d OR description ILIKE $%d OR brand ILIKE $%d OR category ILIKE $%d)",
			n, n, n, n,
		))
	}
	if filter.Category != nil {
		args = append(args, string(*filter.Category))
		clauses = append(clauses, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		clauses = append(clauses, fmt.Sprintf("price >= $%d", len(args)))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		clauses = append(clauses, fmt.Sprintf("price <= $%d", len(args)))
	}

	return strings.Join(clauses, " AND "), args
}

// buildOrderBy translates the resolved ordering into an ORDER BY clause.
// Text relevance uses ts_rank over the searchable fields; the rank value
// stays inside the store and is never surfaced to the engine.
func buildOrderBy(order domain.Ordering, text string, args []any) (string, []any) {
	if order.ByTextScore {
		args = append(args, text)
		clause := fmt.Sprintf(
			"ORDER BY ts_rank(to_tsvector('simple', name || ' ' || description || ' ' || brand || ' ' || category), plainto_tsquery('simple', $%d)) DESC",
			len(args),
		)
		return clause, args
	}

	dir := "ASC"
	if order.Desc {
		dir = "DESC"
	}
	// order.Field is a closed enum, safe to interpolate.
	return fmt.Sprintf("ORDER BY %s %s", order.Field, dir), args
}

// likePattern wraps text for substring matching, escaping LIKE wildcards
// so user input is always matched literally.
func likePattern(text string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(text)
	return "%" + escaped + "%"
}
