package database

// Storefront schema. Category references on products and product references
// on cart/order lines are resolved by join at read time, not by foreign-key
// constraints.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS categories (
    id BIGINT PRIMARY KEY AUTO_INCREMENT,
    name VARCHAR(100) NOT NULL,
    description TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    INDEX idx_name (name)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

CREATE TABLE IF NOT EXISTS products (
    id BIGINT PRIMARY KEY AUTO_INCREMENT,
    name VARCHAR(200) NOT NULL,
    description TEXT,
    price DECIMAL(10,2) NOT NULL,
    stock_quantity INT NOT NULL DEFAULT 0,
    category_id BIGINT NOT NULL,
    image_url TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    INDEX idx_category_id (category_id),
    INDEX idx_price (price)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

CREATE TABLE IF NOT EXISTS cart_items (
    id BIGINT PRIMARY KEY AUTO_INCREMENT,
    product_id BIGINT NOT NULL,
    quantity INT NOT NULL,
    price DECIMAL(10,2) NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    INDEX idx_product_id (product_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

CREATE TABLE IF NOT EXISTS orders (
    id BIGINT PRIMARY KEY AUTO_INCREMENT,
    order_number CHAR(36) NOT NULL,
    user_id BIGINT NULL,
    total_amount DECIMAL(10,2) NOT NULL,
    status VARCHAR(32) NOT NULL DEFAULT 'completed',
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE KEY uk_order_number (order_number),
    INDEX idx_created_at (created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

CREATE TABLE IF NOT EXISTS order_items (
    id BIGINT PRIMARY KEY AUTO_INCREMENT,
    order_id BIGINT NOT NULL,
    product_id BIGINT NOT NULL,
    quantity INT NOT NULL,
    price_at_purchase DECIMAL(10,2) NOT NULL,
    INDEX idx_order_id (order_id),
    INDEX idx_product_id (product_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
`

// SetupSchema creates the storefront tables
func (db *DB) SetupSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
		    id BIGINT PRIMARY KEY AUTO_INCREMENT,
		    name VARCHAR(100) NOT NULL,
		    description TEXT,
		    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		    INDEX idx_name (name)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS products (
		    id BIGINT PRIMARY KEY AUTO_INCREMENT,
		    name VARCHAR(200) NOT NULL,
		    description TEXT,
		    price DECIMAL(10,2) NOT NULL,
		    stock_quantity INT NOT NULL DEFAULT 0,
		    category_id BIGINT NOT NULL,
		    image_url TEXT,
		    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		    INDEX idx_category_id (category_id),
		    INDEX idx_price (price)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS cart_items (
		    id BIGINT PRIMARY KEY AUTO_INCREMENT,
		    product_id BIGINT NOT NULL,
		    quantity INT NOT NULL,
		    price DECIMAL(10,2) NOT NULL,
		    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		    INDEX idx_product_id (product_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS orders (
		    id BIGINT PRIMARY KEY AUTO_INCREMENT,
		    order_number CHAR(36) NOT NULL,
		    user_id BIGINT NULL,
		    total_amount DECIMAL(10,2) NOT NULL,
		    status VARCHAR(32) NOT NULL DEFAULT 'completed',
		    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		    UNIQUE KEY uk_order_number (order_number),
		    INDEX idx_created_at (created_at)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS order_items (
		    id BIGINT PRIMARY KEY AUTO_INCREMENT,
		    order_id BIGINT NOT NULL,
		    product_id BIGINT NOT NULL,
		    quantity INT NOT NULL,
		    price_at_purchase DECIMAL(10,2) NOT NULL,
		    INDEX idx_order_id (order_id),
		    INDEX idx_product_id (product_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// CleanupData removes all rows (but keeps schema)
func (db *DB) CleanupData() error {
	queries := []string{
		"DELETE FROM order_items",
		"DELETE FROM orders",
		"DELETE FROM cart_items",
		"DELETE FROM products",
		"DELETE FROM categories",
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}

// DropSchema removes all storefront tables
func (db *DB) DropSchema() error {
	queries := []string{
		"DROP TABLE IF EXISTS order_items",
		"DROP TABLE IF EXISTS orders",
		"DROP TABLE IF EXISTS cart_items",
		"DROP TABLE IF EXISTS products",
		"DROP TABLE IF EXISTS categories",
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}
