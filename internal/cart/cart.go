// Package cart persists cart lines. A line's price is a snapshot of the
// product's price, re-stamped on every add or update; stock is never checked
// here, only at checkout.
package cart

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

// Add puts quantity units of a product into the cart. If a line for the
// product already exists its quantity is increased and its price re-stamped
// to the product's current price; otherwise a new line is inserted at the
// current price.
func (s *Store) Add(ctx context.Context, productID int64, quantity int) (*models.CartItem, error) {
	var currentPrice decimal.Decimal
	err := s.db.QueryRowContext(ctx,
		"SELECT price FROM products WHERE id = ?", productID).
		Scan(&currentPrice)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &apperr.NotFoundError{Entity: "product", ID: productID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product price: %w", err)
	}

	var existingID int64
	var existingQuantity int
	err = s.db.QueryRowContext(ctx,
		"SELECT id, quantity FROM cart_items WHERE product_id = ?", productID).
		Scan(&existingID, &existingQuantity)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		res, err := s.db.ExecContext(ctx,
			"INSERT INTO cart_items (product_id, quantity, price) VALUES (?, ?, ?)",
			productID, quantity, currentPrice)
		if err != nil {
			return nil, fmt.Errorf("failed to insert cart item: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to get cart item id: %w", err)
		}
		return s.get(ctx, id)

	case err != nil:
		return nil, fmt.Errorf("failed to look up cart item: %w", err)

	default:
		_, err := s.db.ExecContext(ctx,
			"UPDATE cart_items SET quantity = ?, price = ? WHERE id = ?",
			existingQuantity+quantity, currentPrice, existingID)
		if err != nil {
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
		return s.get(ctx, existingID)
	}
}

// Update sets a line's quantity and re-stamps its price to the referenced
// product's current price.
func (s *Store) Update(ctx context.Context, id int64, quantity int) (*models.CartItem, error) {
	var productID int64
	err := s.db.QueryRowContext(ctx,
		"SELECT product_id FROM cart_items WHERE id = ?", id).
		Scan(&productID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &apperr.NotFoundError{Entity: "cart item", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}

	var currentPrice decimal.Decimal
	err = s.db.QueryRowContext(ctx,
		"SELECT price FROM products WHERE id = ?", productID).
		Scan(&currentPrice)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &apperr.NotFoundError{Entity: "product", ID: productID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product price: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		"UPDATE cart_items SET quantity = ?, price = ? WHERE id = ?",
		quantity, currentPrice, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	return s.get(ctx, id)
}

// Remove deletes a line and returns it.
func (s *Store) Remove(ctx context.Context, id int64) (*models.CartItem, error) {
	item, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM cart_items WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("failed to delete cart item: %w", err)
	}

	return item, nil
}

// List returns every cart line joined with its product.
func (s *Store) List(ctx context.Context) ([]models.CartItemWithProduct, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			ci.id, ci.product_id, ci.quantity, ci.price, ci.created_at,
			p.id, p.name, p.description, p.price, p.stock_quantity, p.category_id, p.image_url, p.created_at
		FROM cart_items ci
		INNER JOIN products p ON ci.product_id = p.id
		ORDER BY ci.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	defer rows.Close()

	items := []models.CartItemWithProduct{}
	for rows.Next() {
		var it models.CartItemWithProduct
		err := rows.Scan(
			&it.ID, &it.ProductID, &it.Quantity, &it.Price, &it.CreatedAt,
			&it.Product.ID, &it.Product.Name, &it.Product.Description, &it.Product.Price,
			&it.Product.StockQuantity, &it.Product.CategoryID, &it.Product.ImageURL,
			&it.Product.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

func (s *Store) get(ctx context.Context, id int64) (*models.CartItem, error) {
	var it models.CartItem
	err := s.db.QueryRowContext(ctx, `
		SELECT id, product_id, quantity, price, created_at
		FROM cart_items
		WHERE id = ?`, id).
		Scan(&it.ID, &it.ProductID, &it.Quantity, &it.Price, &it.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &apperr.NotFoundError{Entity: "cart item", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}
	return &it, nil
}
