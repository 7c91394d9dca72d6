//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package sink

// Schema SQL for the retail dataset tables.
const createSchemaSQL = `
CREATE TABLE IF NOT EXISTS stores (
    store_id   INTEGER PRIMARY KEY,
    name       TEXT NOT NULL,
    region     TEXT NOT NULL,
    city       TEXT NOT NULL,
    format     TEXT NOT NULL,
    latitude   DOUBLE PRECISION NOT NULL,
    longitude  DOUBLE PRECISION NOT NULL,
    open_date  DATE NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
    product_id INTEGER PRIMARY KEY,
    sku        CHAR(8) NOT NULL,
    name       TEXT NOT NULL,
    category   TEXT NOT NULL,
    brand      TEXT NOT NULL,
    unit_cost  NUMERIC(8,2) NOT NULL,
    list_price NUMERIC(8,2) NOT NULL,
    CHECK (unit_cost > 0),
    CHECK (list_price >= unit_cost)
);

CREATE TABLE IF NOT EXISTS customers (
    customer_id INTEGER PRIMARY KEY,
    segment     TEXT NOT NULL,
    region      TEXT NOT NULL,
    city        TEXT NOT NULL,
    signup_date DATE NOT NULL
);

CREATE TABLE IF NOT EXISTS promotions (
    promotion_id INTEGER PRIMARY KEY,
    product_id   INTEGER NOT NULL REFERENCES products (product_id),
    promo_type   TEXT NOT NULL,
    discount_pct NUMERIC(4,2) NOT NULL,
    start_date   DATE NOT NULL,
    end_date     DATE NOT NULL,
    CHECK (start_date < end_date),
    CHECK (discount_pct > 0 AND discount_pct < 1)
);

CREATE TABLE IF NOT EXISTS orders (
    order_id     BIGINT PRIMARY KEY,
    customer_id  INTEGER NOT NULL REFERENCES customers (customer_id),
    store_id     INTEGER NOT NULL REFERENCES stores (store_id),
    order_ts     TIMESTAMP NOT NULL,
    payment_type TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS order_items (
    order_item_id  BIGINT PRIMARY KEY,
    order_id       BIGINT NOT NULL REFERENCES orders (order_id),
    line_number    INTEGER NOT NULL,
    product_id     INTEGER NOT NULL REFERENCES products (product_id),
    quantity       INTEGER NOT NULL CHECK (quantity >= 1),
    unit_price     NUMERIC(8,2) NOT NULL,
    extended_price NUMERIC(10,2) NOT NULL,
    promotion_id   INTEGER REFERENCES promotions (promotion_id)
);

CREATE TABLE IF NOT EXISTS inventory_snapshots (
    store_id         INTEGER NOT NULL REFERENCES stores (store_id),
    product_id       INTEGER NOT NULL REFERENCES products (product_id),
    snapshot_date    DATE NOT NULL,
    quantity_on_hand INTEGER NOT NULL CHECK (quantity_on_hand >= 0),
    on_order         INTEGER NOT NULL,
    safety_stock     INTEGER NOT NULL,
    reorder_qty      INTEGER NOT NULL,
    PRIMARY KEY (store_id, product_id, snapshot_date)
);

CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders (customer_id);
CREATE INDEX IF NOT EXISTS idx_orders_store ON orders (store_id);
CREATE INDEX IF NOT EXISTS idx_orders_ts ON orders (order_ts);
CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items (order_id);
CREATE INDEX IF NOT EXISTS idx_order_items_product ON order_items (product_id);
CREATE INDEX IF NOT EXISTS idx_promotions_product ON promotions (product_id);
`

// Tables in FK-safe deletion order (children first).
var truncateOrder = []string{
	"order_items",
	"orders",
	"inventory_snapshots",
	"promotions",
	"customers",
	"products",
	"stores",
}
