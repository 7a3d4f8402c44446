// Package checkout converts a set of cart lines into a persisted order.
// The whole conversion — resolving lines, checking stock, computing the
// total, writing the order, decrementing inventory and consuming the cart
// lines — runs inside one database transaction and either fully commits or
// fully rolls back.
package checkout

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mraditya/warungo/internal/apperr"
	"github.com/mraditya/warungo/internal/database"
	"github.com/mraditya/warungo/internal/logging"
	"github.com/mraditya/warungo/internal/models"
)

type Transactor struct {
	db *database.DB
}

func NewTransactor(db *database.DB) *Transactor {
	return &Transactor{db: db}
}

// line is a cart line resolved against its live product state.
type line struct {
	CartItemID  int64
	ProductID   int64
	Quantity    int
	ProductName string
	// UnitPrice is the product's live price at resolve time, not the cart
	// line's captured snapshot. It becomes the order line's
	// price_at_purchase and feeds the total.
	UnitPrice decimal.Decimal
	Stock     int
}

// CreateOrder converts the given cart lines into one order. It fails with
// apperr.ErrNotFound if any id does not resolve, with
// apperr.InsufficientStockError on the first line whose quantity exceeds the
// product's live stock, and leaves no partial state behind in either case.
func (t *Transactor) CreateOrder(ctx context.Context, cartItemIDs []int64) (*models.Order, error) {
	if len(cartItemIDs) == 0 {
		return nil, &apperr.ValidationError{Message: "cart_item_ids must not be empty"}
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin checkout transaction: %w", err)
	}
	defer tx.Rollback()

	// Resolve every cart line with its live product in a single read.
	lines, err := resolveLines(ctx, tx, cartItemIDs)
	if err != nil {
		return nil, err
	}
	if len(lines) != len(cartItemIDs) {
		return nil, fmt.Errorf("some cart items do not exist: %w", apperr.ErrNotFound)
	}

	// Every line must be satisfiable before anything is written.
	if err := checkStock(lines); err != nil {
		return nil, err
	}

	total := orderTotal(lines)

	orderNumber := uuid.NewString()
	res, err := tx.ExecContext(ctx, `
		INSERT INTO orders (order_number, user_id, total_amount, status)
		VALUES (?, NULL, ?, ?)`,
		orderNumber, total, models.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}
	orderID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get order id: %w", err)
	}

	for _, l := range lines {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price_at_purchase)
			VALUES (?, ?, ?, ?)`,
			orderID, l.ProductID, l.Quantity, l.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("failed to insert order item: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			"UPDATE products SET stock_quantity = stock_quantity - ? WHERE id = ?",
			l.Quantity, l.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to decrement stock: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx,
		"DELETE FROM cart_items WHERE id IN ("+placeholders(len(cartItemIDs))+")",
		int64Args(cartItemIDs)...)
	if err != nil {
		return nil, fmt.Errorf("failed to delete cart items: %w", err)
	}

	var order models.Order
	err = tx.QueryRowContext(ctx, `
		SELECT id, order_number, user_id, total_amount, status, created_at
		FROM orders
		WHERE id = ?`, orderID).
		Scan(&order.ID, &order.OrderNumber, &order.UserID, &order.TotalAmount,
			&order.Status, &order.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to read back order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit checkout transaction: %w", err)
	}

	logging.Log(logging.Fields{
		Service:     "warungo",
		Op:          "create_order",
		OrderNumber: order.OrderNumber,
		Status:      "completed",
		Message:     fmt.Sprintf("order %d created from %d cart items", order.ID, len(lines)),
	})

	return &order, nil
}

func resolveLines(ctx context.Context, tx *sql.Tx, cartItemIDs []int64) ([]line, error) {
	query := `
		SELECT ci.id, ci.product_id, ci.quantity, p.name, p.price, p.stock_quantity
		FROM cart_items ci
		INNER JOIN products p ON ci.product_id = p.id
		WHERE ci.id IN (` + placeholders(len(cartItemIDs)) + `)`

	rows, err := tx.QueryContext(ctx, query, int64Args(cartItemIDs)...)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cart items: %w", err)
	}
	defer rows.Close()

	lines := []line{}
	for rows.Next() {
		var l line
		err := rows.Scan(&l.CartItemID, &l.ProductID, &l.Quantity,
			&l.ProductName, &l.UnitPrice, &l.Stock)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		lines = append(lines, l)
	}

	return lines, rows.Err()
}

// checkStock requires every line's quantity to fit within its product's live
// stock, failing on the first violation.
func checkStock(lines []line) error {
	for _, l := range lines {
		if l.Quantity > l.Stock {
			return &apperr.InsufficientStockError{
				ProductName: l.ProductName,
				Available:   l.Stock,
				Requested:   l.Quantity,
			}
		}
	}
	return nil
}

// orderTotal sums quantity × live unit price over the lines in exact decimal
// arithmetic.
func orderTotal(lines []line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func int64Args(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
