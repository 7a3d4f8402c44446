package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Monetary fields cross the API boundary as plain JSON numbers
	// with two-decimal precision, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type Category struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type Product struct {
	ID            int64           `json:"id" db:"id"`
	Name          string          `json:"name" db:"name"`
	Description   *string         `json:"description" db:"description"`
	Price         decimal.Decimal `json:"price" db:"price"`
	StockQuantity int             `json:"stock_quantity" db:"stock_quantity"`
	CategoryID    int64           `json:"category_id" db:"category_id"`
	ImageURL      *string         `json:"image_url" db:"image_url"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// CartItem is one product-and-quantity entry awaiting checkout. Price is the
// snapshot captured at the last add/update, distinct from the product's live
// price and from the order line's price-at-purchase.
type CartItem struct {
	ID        int64           `json:"id" db:"id"`
	ProductID int64           `json:"product_id" db:"product_id"`
	Quantity  int             `json:"quantity" db:"quantity"`
	Price     decimal.Decimal `json:"price" db:"price"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

type Order struct {
	ID          int64           `json:"id" db:"id"`
	OrderNumber string          `json:"order_number" db:"order_number"`
	UserID      *int64          `json:"user_id" db:"user_id"`
	TotalAmount decimal.Decimal `json:"total_amount" db:"total_amount"`
	Status      string          `json:"status" db:"status"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

// OrderItem is the immutable record of one purchased product within an order.
// PriceAtPurchase is fixed forever once the order is created.
type OrderItem struct {
	ID              int64           `json:"id" db:"id"`
	OrderID         int64           `json:"order_id" db:"order_id"`
	ProductID       int64           `json:"product_id" db:"product_id"`
	Quantity        int             `json:"quantity" db:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase" db:"price_at_purchase"`
}

// ProductWithCategory is the joined read model for catalog listings.
type ProductWithCategory struct {
	Product
	Category Category `json:"category"`
}

// CartItemWithProduct is the joined read model for the cart view.
type CartItemWithProduct struct {
	CartItem
	Product Product `json:"product"`
}

const StatusCompleted = "completed"
