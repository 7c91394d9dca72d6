//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package sink

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
	"github.com/pgEdge/pgedge-retailgen/internal/logging"
	"github.com/pgEdge/pgedge-retailgen/internal/retail"
)

// insertBatchSize is the number of rows per multi-row INSERT.
const insertBatchSize = 1000

// PostgresWriter writes the dataset into PostgreSQL tables.
type PostgresWriter struct {
	connString string
	overwrite  bool
}

// NewPostgresWriter creates a PostgreSQL writer. With overwrite set,
// existing rows are truncated before writing; otherwise new rows are
// appended (which fails on primary key collisions with earlier runs).
func NewPostgresWriter(connString string, overwrite bool) *PostgresWriter {
	return &PostgresWriter{connString: connString, overwrite: overwrite}
}

// Write creates the schema if needed and inserts all seven tables in
// dependency order.
func (w *PostgresWriter) Write(ctx context.Context, d *retail.Dataset) error {
	pool, err := connect(ctx, w.connString)
	if err != nil {
		return err
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, createSchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if w.overwrite {
		logging.Info().Msg("Truncating existing tables")
		for _, table := range truncateOrder {
			if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}
	}

	if err := w.insertStores(ctx, pool, d.Stores); err != nil {
		return err
	}
	if err := w.insertProducts(ctx, pool, d.Products); err != nil {
		return err
	}
	if err := w.insertCustomers(ctx, pool, d.Customers); err != nil {
		return err
	}
	if err := w.insertPromotions(ctx, pool, d.Promotions); err != nil {
		return err
	}
	if err := w.insertOrders(ctx, pool, d.Orders); err != nil {
		return err
	}
	if err := w.insertOrderItems(ctx, pool, d.OrderItems); err != nil {
		return err
	}
	if err := w.insertInventory(ctx, pool, d.InventorySnapshots); err != nil {
		return err
	}

	return saveMetadata(ctx, pool, d.Profile)
}

func connect(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	config.MaxConns = 10
	config.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logging.Info().
		Str("host", config.ConnConfig.Host).
		Str("database", config.ConnConfig.Database).
		Msg("Connected to database")

	return pool, nil
}

func (w *PostgresWriter) insertStores(ctx context.Context, pool *pgxpool.Pool, rows []retail.Store) error {
	batch := make([]string, 0, insertBatchSize)
	progress := datagen.NewProgressReporter("stores", int64(len(rows)), insertBatchSize)

	for _, r := range rows {
		batch = append(batch, fmt.Sprintf("(%d, '%s', '%s', '%s', '%s', %.6f, %.6f, '%s')",
			r.ID,
			escapeSingleQuote(r.Name),
			r.Region,
			escapeSingleQuote(r.City),
			r.Format,
			r.Latitude,
			r.Longitude,
			r.OpenDate.Format(dateFormat),
		))
		if len(batch) >= insertBatchSize {
			if err := executeBatchInsert(ctx, pool, "stores",
				"(store_id, name, region, city, format, latitude, longitude, open_date)", batch); err != nil {
				return err
			}
			progress.Update(int64(len(batch)))
			batch = batch[:0]
		}
	}
	if err := flushBatch(ctx, pool, "stores",
		"(store_id, name, region, city, format, latitude, longitude, open_date)", batch, progress); err != nil {
		return err
	}
	progress.Done()
	return nil
}

func (w *PostgresWriter) insertProducts(ctx context.Context, pool *pgxpool.Pool, rows []retail.Product) error {
	batch := make([]string, 0, insertBatchSize)
	progress := datagen.NewProgressReporter("products", int64(len(rows)), insertBatchSize)

	for _, r := range rows {
		batch = append(batch, fmt.Sprintf("(%d, '%s', '%s', '%s', '%s', %.2f, %.2f)",
			r.ID,
			r.SKU,
			escapeSingleQuote(r.Name),
			escapeSingleQuote(r.Category),
			escapeSingleQuote(r.Brand),
			r.UnitCost,
			r.ListPrice,
		))
		if len(batch) >= insertBatchSize {
			if err := executeBatchInsert(ctx, pool, "products",
				"(product_id, sku, name, category, brand, unit_cost, list_price)", batch); err != nil {
				return err
			}
			progress.Update(int64(len(batch)))
			batch = batch[:0]
		}
	}
	if err := flushBatch(ctx, pool, "products",
		"(product_id, sku, name, category, brand, unit_cost, list_price)", batch, progress); err != nil {
		return err
	}
	progress.Done()
	return nil
}

func (w *PostgresWriter) insertCustomers(ctx context.Context, pool *pgxpool.Pool, rows []retail.Customer) error {
	batch := make([]string, 0, insertBatchSize)
	progress := datagen.NewProgressReporter("customers", int64(len(rows)), 10000)

	for _, r := range rows {
		batch = append(batch, fmt.Sprintf("(%d, '%s', '%s', '%s', '%s')",
			r.ID,
			r.Segment,
			r.Region,
			escapeSingleQuote(r.City),
			r.SignupDate.Format(dateFormat),
		))
		if len(batch) >= insertBatchSize {
			if err := executeBatchInsert(ctx, pool, "customers",
				"(customer_id, segment, region, city, signup_date)", batch); err != nil {
				return err
			}
			progress.Update(int64(len(batch)))
			batch = batch[:0]
		}
	}
	if err := flushBatch(ctx, pool, "customers",
		"(customer_id, segment, region, city, signup_date)", batch, progress); err != nil {
		return err
	}
	progress.Done()
	return nil
}

func (w *PostgresWriter) insertPromotions(ctx context.Context, pool *pgxpool.Pool, rows []retail.Promotion) error {
	batch := make([]string, 0, insertBatchSize)
	progress := datagen.NewProgressReporter("promotions", int64(len(rows)), insertBatchSize)

	for _, r := range rows {
		batch = append(batch, fmt.Sprintf("(%d, %d, '%s', %.2f, '%s', '%s')",
			r.ID,
			r.ProductID,
			r.Type,
			r.DiscountPct,
			r.StartDate.Format(dateFormat),
			r.EndDate.Format(dateFormat),
		))
		if len(batch) >= insertBatchSize {
			if err := executeBatchInsert(ctx, pool, "promotions",
				"(promotion_id, product_id, promo_type, discount_pct, start_date, end_date)", batch); err != nil {
				return err
			}
			progress.Update(int64(len(batch)))
			batch = batch[:0]
		}
	}
	if err := flushBatch(ctx, pool, "promotions",
		"(promotion_id, product_id, promo_type, discount_pct, start_date, end_date)", batch, progress); err != nil {
		return err
	}
	progress.Done()
	return nil
}

func (w *PostgresWriter) insertOrders(ctx context.Context, pool *pgxpool.Pool, rows []retail.Order) error {
	batch := make([]string, 0, insertBatchSize)
	progress := datagen.NewProgressReporter("orders", int64(len(rows)), 10000)

	for _, r := range rows {
		batch = append(batch, fmt.Sprintf("(%d, %d, %d, '%s', '%s')",
			r.ID,
			r.CustomerID,
			r.StoreID,
			r.OrderTS.UTC().Format(tsFormat),
			r.PaymentType,
		))
		if len(batch) >= insertBatchSize {
			if err := executeBatchInsert(ctx, pool, "orders",
				"(order_id, customer_id, store_id, order_ts, payment_type)", batch); err != nil {
				return err
			}
			progress.Update(int64(len(batch)))
			batch = batch[:0]
		}
	}
	if err := flushBatch(ctx, pool, "orders",
		"(order_id, customer_id, store_id, order_ts, payment_type)", batch, progress); err != nil {
		return err
	}
	progress.Done()
	return nil
}

func (w *PostgresWriter) insertOrderItems(ctx context.Context, pool *pgxpool.Pool, rows []retail.OrderItem) error {
	batch := make([]string, 0, insertBatchSize)
	progress := datagen.NewProgressReporter("order_items", int64(len(rows)), 10000)

	for _, r := range rows {
		promo := "NULL"
		if r.PromotionID != 0 {
			promo = fmt.Sprintf("%d", r.PromotionID)
		}
		batch = append(batch, fmt.Sprintf("(%d, %d, %d, %d, %d, %.2f, %.2f, %s)",
			r.ID,
			r.OrderID,
			r.LineNumber,
			r.ProductID,
			r.Quantity,
			r.UnitPrice,
			r.ExtendedPrice,
			promo,
		))
		if len(batch) >= insertBatchSize {
			if err := executeBatchInsert(ctx, pool, "order_items",
				"(order_item_id, order_id, line_number, product_id, quantity, unit_price, extended_price, promotion_id)", batch); err != nil {
				return err
			}
			progress.Update(int64(len(batch)))
			batch = batch[:0]
		}
	}
	if err := flushBatch(ctx, pool, "order_items",
		"(order_item_id, order_id, line_number, product_id, quantity, unit_price, extended_price, promotion_id)", batch, progress); err != nil {
		return err
	}
	progress.Done()
	return nil
}

func (w *PostgresWriter) insertInventory(ctx context.Context, pool *pgxpool.Pool, rows []retail.InventorySnapshot) error {
	batch := make([]string, 0, insertBatchSize)
	progress := datagen.NewProgressReporter("inventory_snapshots", int64(len(rows)), 50000)

	for _, r := range rows {
		batch = append(batch, fmt.Sprintf("(%d, %d, '%s', %d, %d, %d, %d)",
			r.StoreID,
			r.ProductID,
			r.SnapshotDate.Format(dateFormat),
			r.QuantityOnHand,
			r.OnOrder,
			r.SafetyStock,
			r.ReorderQty,
		))
		if len(batch) >= insertBatchSize {
			if err := executeBatchInsert(ctx, pool, "inventory_snapshots",
				"(store_id, product_id, snapshot_date, quantity_on_hand, on_order, safety_stock, reorder_qty)", batch); err != nil {
				return err
			}
			progress.Update(int64(len(batch)))
			batch = batch[:0]
		}
	}
	if err := flushBatch(ctx, pool, "inventory_snapshots",
		"(store_id, product_id, snapshot_date, quantity_on_hand, on_order, safety_stock, reorder_qty)", batch, progress); err != nil {
		return err
	}
	progress.Done()
	return nil
}

func executeBatchInsert(ctx context.Context, pool *pgxpool.Pool, table, columns string, values []string) error {
	if len(values) == 0 {
		return nil
	}
	sql := fmt.Sprintf("INSERT INTO %s %s VALUES %s", table, columns, strings.Join(values, ", "))
	if _, err := pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return nil
}

func flushBatch(ctx context.Context, pool *pgxpool.Pool, table, columns string, batch []string, progress *datagen.ProgressReporter) error {
	if len(batch) == 0 {
		return nil
	}
	if err := executeBatchInsert(ctx, pool, table, columns, batch); err != nil {
		return err
	}
	progress.Update(int64(len(batch)))
	return nil
}

func escapeSingleQuote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
