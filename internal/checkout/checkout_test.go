package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mraditya/warungo/internal/apperr"
	"github.com/mraditya/warungo/internal/database"
	"github.com/mraditya/warungo/internal/models"
	"github.com/mraditya/warungo/internal/testutil"
)

func TestOrderTotal(t *testing.T) {
	lines := []line{
		{Quantity: 2, UnitPrice: decimal.RequireFromString("19.99")},
		{Quantity: 1, UnitPrice: decimal.RequireFromString("10.00")},
	}

	total := orderTotal(lines)
	assert.True(t, total.Equal(decimal.RequireFromString("49.98")),
		"expected 49.98, got %s", total)
}

func TestOrderTotalUsesExactDecimalArithmetic(t *testing.T) {
	// 0.1 * 3 must be exactly 0.3, not a binary float approximation.
	lines := []line{
		{Quantity: 3, UnitPrice: decimal.RequireFromString("0.10")},
	}

	total := orderTotal(lines)
	assert.Equal(t, "0.30", total.StringFixed(2))
}

func TestCheckStock(t *testing.T) {
	ok := []line{
		{ProductName: "Beras Premium 5kg", Quantity: 2, Stock: 2},
		{ProductName: "Garam Halus 500g", Quantity: 1, Stock: 100},
	}
	require.NoError(t, checkStock(ok))

	short := []line{
		{ProductName: "Beras Premium 5kg", Quantity: 2, Stock: 10},
		{ProductName: "Sambal Botol 340ml", Quantity: 5, Stock: 3},
	}
	err := checkStock(short)
	require.Error(t, err)

	var stockErr *apperr.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Sambal Botol 340ml", stockErr.ProductName)
	assert.Equal(t, 3, stockErr.Available)
	assert.Equal(t, 5, stockErr.Requested)
}

func TestCreateOrderRejectsEmptyInput(t *testing.T) {
	transactor := NewTransactor(nil)

	_, err := transactor.CreateOrder(context.Background(), nil)
	var validationErr *apperr.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "?", placeholders(1))
	assert.Equal(t, "?, ?, ?", placeholders(3))
}

func seedCategory(t *testing.T, db *database.DB) int64 {
	t.Helper()
	res, err := db.Exec("INSERT INTO categories (name, description) VALUES (?, ?)",
		"Test Category", "A category for testing")
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func seedProduct(t *testing.T, db *database.DB, categoryID int64, name, price string, stock int) int64 {
	t.Helper()
	res, err := db.Exec(`
		INSERT INTO products (name, description, price, stock_quantity, category_id)
		VALUES (?, NULL, ?, ?, ?)`,
		name, price, stock, categoryID)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func seedCartItem(t *testing.T, db *database.DB, productID int64, quantity int, price string) int64 {
	t.Helper()
	res, err := db.Exec("INSERT INTO cart_items (product_id, quantity, price) VALUES (?, ?, ?)",
		productID, quantity, price)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func countRows(t *testing.T, db *database.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func productStock(t *testing.T, db *database.DB, productID int64) int {
	t.Helper()
	var stock int
	require.NoError(t, db.QueryRow(
		"SELECT stock_quantity FROM products WHERE id = ?", productID).Scan(&stock))
	return stock
}

func TestCreateOrder(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()

	categoryID := seedCategory(t, db)
	productID := seedProduct(t, db, categoryID, "Test Product", "19.99", 10)
	cartItemID := seedCartItem(t, db, productID, 2, "19.99")

	order, err := NewTransactor(db).CreateOrder(ctx, []int64{cartItemID})
	require.NoError(t, err)

	assert.NotZero(t, order.ID)
	assert.Nil(t, order.UserID)
	assert.Equal(t, models.StatusCompleted, order.Status)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("39.98")),
		"expected total 39.98, got %s", order.TotalAmount)
	_, err = uuid.Parse(order.OrderNumber)
	assert.NoError(t, err, "order number should be a UUID")

	// One order line recording the price at purchase.
	var gotProductID int64
	var gotQuantity int
	var priceAtPurchase decimal.Decimal
	require.NoError(t, db.QueryRow(`
		SELECT product_id, quantity, price_at_purchase
		FROM order_items WHERE order_id = ?`, order.ID).
		Scan(&gotProductID, &gotQuantity, &priceAtPurchase))
	assert.Equal(t, productID, gotProductID)
	assert.Equal(t, 2, gotQuantity)
	assert.True(t, priceAtPurchase.Equal(decimal.RequireFromString("19.99")))

	// Stock decremented by exactly the purchased quantity.
	assert.Equal(t, 8, productStock(t, db, productID))

	// The consumed cart line no longer exists.
	assert.Equal(t, 0, countRows(t, db, "cart_items"))
}

func TestCreateOrderMultipleItems(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()

	categoryID := seedCategory(t, db)
	product1 := seedProduct(t, db, categoryID, "Product 1", "10.00", 5)
	product2 := seedProduct(t, db, categoryID, "Product 2", "7.25", 4)
	item1 := seedCartItem(t, db, product1, 3, "10.00")
	item2 := seedCartItem(t, db, product2, 2, "7.25")

	order, err := NewTransactor(db).CreateOrder(ctx, []int64{item1, item2})
	require.NoError(t, err)

	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("44.50")),
		"expected total 44.50, got %s", order.TotalAmount)

	assert.Equal(t, 2, productStock(t, db, product1))
	assert.Equal(t, 2, productStock(t, db, product2))
	assert.Equal(t, 0, countRows(t, db, "cart_items"))

	var orderItems int
	require.NoError(t, db.QueryRow(
		"SELECT COUNT(*) FROM order_items WHERE order_id = ?", order.ID).Scan(&orderItems))
	assert.Equal(t, 2, orderItems)
}

func TestCreateOrderChargesLivePrice(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()

	categoryID := seedCategory(t, db)
	productID := seedProduct(t, db, categoryID, "Repriced Product", "15.00", 10)
	// Captured at 15.00, then the catalog price changes before checkout.
	cartItemID := seedCartItem(t, db, productID, 2, "15.00")
	_, err := db.Exec("UPDATE products SET price = ? WHERE id = ?", "19.99", productID)
	require.NoError(t, err)

	order, err := NewTransactor(db).CreateOrder(ctx, []int64{cartItemID})
	require.NoError(t, err)

	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("39.98")),
		"total must come from the live product price, got %s", order.TotalAmount)

	var priceAtPurchase decimal.Decimal
	require.NoError(t, db.QueryRow(
		"SELECT price_at_purchase FROM order_items WHERE order_id = ?", order.ID).
		Scan(&priceAtPurchase))
	assert.True(t, priceAtPurchase.Equal(decimal.RequireFromString("19.99")))
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()

	categoryID := seedCategory(t, db)
	productID := seedProduct(t, db, categoryID, "Scarce Product", "5.00", 3)
	cartItemID := seedCartItem(t, db, productID, 5, "5.00")

	_, err := NewTransactor(db).CreateOrder(ctx, []int64{cartItemID})
	require.Error(t, err)

	var stockErr *apperr.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Scarce Product", stockErr.ProductName)
	assert.Equal(t, 3, stockErr.Available)
	assert.Equal(t, 5, stockErr.Requested)

	// Nothing was created or mutated.
	assert.Equal(t, 0, countRows(t, db, "orders"))
	assert.Equal(t, 0, countRows(t, db, "order_items"))
	assert.Equal(t, 3, productStock(t, db, productID))
	assert.Equal(t, 1, countRows(t, db, "cart_items"))
}

func TestCreateOrderAtomicAcrossBatch(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()

	categoryID := seedCategory(t, db)
	okProduct := seedProduct(t, db, categoryID, "Plenty", "10.00", 100)
	shortProduct := seedProduct(t, db, categoryID, "Short", "10.00", 1)
	okItem := seedCartItem(t, db, okProduct, 2, "10.00")
	shortItem := seedCartItem(t, db, shortProduct, 2, "10.00")

	_, err := NewTransactor(db).CreateOrder(ctx, []int64{okItem, shortItem})
	var stockErr *apperr.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)

	// The satisfiable line must not have produced a partial order.
	assert.Equal(t, 0, countRows(t, db, "orders"))
	assert.Equal(t, 100, productStock(t, db, okProduct))
	assert.Equal(t, 2, countRows(t, db, "cart_items"))
}

func TestCreateOrderMissingCartItem(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()

	categoryID := seedCategory(t, db)
	productID := seedProduct(t, db, categoryID, "Test Product", "10.00", 10)
	cartItemID := seedCartItem(t, db, productID, 1, "10.00")

	_, err := NewTransactor(db).CreateOrder(ctx, []int64{cartItemID, 999999})
	require.ErrorIs(t, err, apperr.ErrNotFound)

	assert.Equal(t, 0, countRows(t, db, "orders"))
	assert.Equal(t, 1, countRows(t, db, "cart_items"))
	assert.Equal(t, 10, productStock(t, db, productID))
}

func TestCreateOrderAllItemsMissing(t *testing.T) {
	db := testutil.DB(t)

	_, err := NewTransactor(db).CreateOrder(context.Background(), []int64{1, 2, 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}
