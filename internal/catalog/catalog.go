// Package catalog persists categories and products and serves the
// storefront's read paths over them.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mraditya/warungo/internal/apperr"
	"github.com/mraditya/warungo/internal/database"
	"github.com/mraditya/warungo/internal/models"
)

type Store struct {
	db *database.DB
}

func NewStore(db *database.DB) *Store {
	return &Store{db: db}
}

// ListCategories returns every category; an empty catalog yields an empty
// slice, not an error.
func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, created_at
		FROM categories
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (s *Store) CreateCategory(ctx context.Context, name string, description *string) (*models.Category, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO categories (name, description) VALUES (?, ?)",
		name, description)
	if err != nil {
		return nil, fmt.Errorf("failed to insert category: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get category id: %w", err)
	}

	return s.getCategory(ctx, id)
}

func (s *Store) getCategory(ctx context.Context, id int64) (*models.Category, error) {
	var c models.Category
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, created_at
		FROM categories
		WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &apperr.NotFoundError{Entity: "category", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &c, nil
}

// ListProducts returns every product without its category.
func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, price, stock_quantity, category_id, image_url, created_at
		FROM products
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (s *Store) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, price, stock_quantity, category_id, image_url, created_at
		FROM products
		WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.StockQuantity,
			&p.CategoryID, &p.ImageURL, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &apperr.NotFoundError{Entity: "product", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &p, nil
}

type CreateProductInput struct {
	Name          string
	Description   *string
	Price         decimal.Decimal
	StockQuantity int
	CategoryID    int64
	ImageURL      *string
}

func (s *Store) CreateProduct(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO products (name, description, price, stock_quantity, category_id, image_url)
		VALUES (?, ?, ?, ?, ?, ?)`,
		input.Name, input.Description, input.Price, input.StockQuantity,
		input.CategoryID, input.ImageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get product id: %w", err)
	}

	return s.GetProduct(ctx, id)
}

// UpdateProductInput carries the mutable product fields; nil fields are left
// unchanged.
type UpdateProductInput struct {
	Name          *string
	Description   *string
	Price         *decimal.Decimal
	StockQuantity *int
	CategoryID    *int64
	ImageURL      *string
}

// UpdateProduct applies any subset of mutable fields and returns the updated
// row. An input with no fields set returns the current row untouched.
func (s *Store) UpdateProduct(ctx context.Context, id int64, input UpdateProductInput) (*models.Product, error) {
	sets := []string{}
	args := []any{}

	if input.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *input.Name)
	}
	if input.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *input.Description)
	}
	if input.Price != nil {
		sets = append(sets, "price = ?")
		args = append(args, *input.Price)
	}
	if input.StockQuantity != nil {
		sets = append(sets, "stock_quantity = ?")
		args = append(args, *input.StockQuantity)
	}
	if input.CategoryID != nil {
		sets = append(sets, "category_id = ?")
		args = append(args, *input.CategoryID)
	}
	if input.ImageURL != nil {
		sets = append(sets, "image_url = ?")
		args = append(args, *input.ImageURL)
	}

	if len(sets) == 0 {
		return s.GetProduct(ctx, id)
	}

	args = append(args, id)
	res, err := s.db.ExecContext(ctx,
		"UPDATE products SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check updated rows: %w", err)
	}
	if affected == 0 {
		// Either the row is absent or the update was a no-op; GetProduct
		// distinguishes the two.
		if _, err := s.GetProduct(ctx, id); err != nil {
			return nil, err
		}
	}

	return s.GetProduct(ctx, id)
}

func scanProduct(rows *sql.Rows, p *models.Product) error {
	if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.StockQuantity,
		&p.CategoryID, &p.ImageURL, &p.CreatedAt); err != nil {
		return fmt.Errorf("failed to scan product: %w", err)
	}
	return nil
}
