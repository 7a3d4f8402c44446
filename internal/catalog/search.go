package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mraditya/warungo/internal/models"
)

const productWithCategoryColumns = `
	p.id, p.name, p.description, p.price, p.stock_quantity, p.category_id, p.image_url, p.created_at,
	c.id, c.name, c.description, c.created_at`

// SearchFilter composes the optional product search predicates. Zero-value
// fields are omitted from the query.
type SearchFilter struct {
	Query      string
	CategoryID *int64
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
}

// ListProductsWithCategory returns every product joined with its category.
// Products whose category reference does not resolve are dropped by the
// inner join.
func (s *Store) ListProductsWithCategory(ctx context.Context) ([]models.ProductWithCategory, error) {
	return s.queryProductsWithCategory(ctx, "", nil)
}

// ListProductsByCategory returns the products of one category, joined with
// it. An unknown category yields an empty slice.
func (s *Store) ListProductsByCategory(ctx context.Context, categoryID int64) ([]models.ProductWithCategory, error) {
	return s.queryProductsWithCategory(ctx, "p.category_id = ?", []any{categoryID})
}

// SearchProducts filters products by name substring, category and price
// bounds, joined with their categories.
func (s *Store) SearchProducts(ctx context.Context, filter SearchFilter) ([]models.ProductWithCategory, error) {
	conditions := []string{}
	args := []any{}

	if filter.Query != "" {
		conditions = append(conditions, "p.name LIKE ?")
		args = append(args, "%"+filter.Query+"%")
	}
	if filter.CategoryID != nil {
		conditions = append(conditions, "p.category_id = ?")
		args = append(args, *filter.CategoryID)
	}
	if filter.MinPrice != nil {
		conditions = append(conditions, "p.price >= ?")
		args = append(args, *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		conditions = append(conditions, "p.price <= ?")
		args = append(args, *filter.MaxPrice)
	}

	return s.queryProductsWithCategory(ctx, strings.Join(conditions, " AND "), args)
}

func (s *Store) queryProductsWithCategory(ctx context.Context, where string, args []any) ([]models.ProductWithCategory, error) {
	query := `
		SELECT ` + productWithCategoryColumns + `
		FROM products p
		INNER JOIN categories c ON p.category_id = c.id`
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY p.id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products with category: %w", err)
	}
	defer rows.Close()

	results := []models.ProductWithCategory{}
	for rows.Next() {
		var pc models.ProductWithCategory
		if err := scanProductWithCategory(rows, &pc); err != nil {
			return nil, err
		}
		results = append(results, pc)
	}

	return results, rows.Err()
}

func scanProductWithCategory(rows *sql.Rows, pc *models.ProductWithCategory) error {
	err := rows.Scan(
		&pc.ID, &pc.Name, &pc.Description, &pc.Price, &pc.StockQuantity,
		&pc.CategoryID, &pc.ImageURL, &pc.CreatedAt,
		&pc.Category.ID, &pc.Category.Name, &pc.Category.Description, &pc.Category.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to scan product with category: %w", err)
	}
	return nil
}
