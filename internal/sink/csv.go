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
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pgEdge/pgedge-retailgen/internal/logging"
	"github.com/pgEdge/pgedge-retailgen/internal/retail"
)

const (
	dateFormat = "2006-01-02"
	tsFormat   = "2006-01-02T15:04:05"
)

// CSVWriter writes one CSV file per table into a directory.
type CSVWriter struct {
	dir       string
	overwrite bool
}

// NewCSVWriter creates a CSV writer. Unless overwrite is set, Write
// refuses to touch a directory that already contains any target file.
func NewCSVWriter(dir string, overwrite bool) *CSVWriter {
	return &CSVWriter{dir: dir, overwrite: overwrite}
}

// Write persists the dataset as seven CSV files.
func (w *CSVWriter) Write(ctx context.Context, d *retail.Dataset) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if !w.overwrite {
		for _, name := range retail.TableNames {
			path := w.path(name)
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("refusing to overwrite existing file %s (use --overwrite)", path)
			}
		}
	}

	writers := []struct {
		table string
		write func(*csv.Writer) error
	}{
		{retail.TableStores, func(cw *csv.Writer) error { return writeStores(cw, d.Stores) }},
		{retail.TableProducts, func(cw *csv.Writer) error { return writeProducts(cw, d.Products) }},
		{retail.TableCustomers, func(cw *csv.Writer) error { return writeCustomers(cw, d.Customers) }},
		{retail.TablePromotions, func(cw *csv.Writer) error { return writePromotions(cw, d.Promotions) }},
		{retail.TableOrders, func(cw *csv.Writer) error { return writeOrders(cw, d.Orders) }},
		{retail.TableOrderItems, func(cw *csv.Writer) error { return writeOrderItems(cw, d.OrderItems) }},
		{retail.TableInventorySnapshots, func(cw *csv.Writer) error { return writeInventory(cw, d.InventorySnapshots) }},
	}

	for _, t := range writers {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.writeFile(t.table, t.write); err != nil {
			return fmt.Errorf("failed to write %s: %w", t.table, err)
		}
		logging.Info().
			Str("table", t.table).
			Str("path", w.path(t.table)).
			Msg("Wrote CSV file")
	}
	return nil
}

func (w *CSVWriter) path(table string) string {
	return filepath.Join(w.dir, table+".csv")
}

func (w *CSVWriter) writeFile(table string, write func(*csv.Writer) error) error {
	f, err := os.Create(w.path(table))
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := write(cw); err != nil {
		return err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return f.Close()
}

func writeStores(cw *csv.Writer, rows []retail.Store) error {
	if err := cw.Write([]string{"store_id", "name", "region", "city", "format", "latitude", "longitude", "open_date"}); err != nil {
		return err
	}
	for _, r := range rows {
		err := cw.Write([]string{
			strconv.FormatInt(r.ID, 10),
			r.Name,
			r.Region,
			r.City,
			r.Format,
			strconv.FormatFloat(r.Latitude, 'f', 6, 64),
			strconv.FormatFloat(r.Longitude, 'f', 6, 64),
			r.OpenDate.Format(dateFormat),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeProducts(cw *csv.Writer, rows []retail.Product) error {
	if err := cw.Write([]string{"product_id", "sku", "name", "category", "brand", "unit_cost", "list_price"}); err != nil {
		return err
	}
	for _, r := range rows {
		err := cw.Write([]string{
			strconv.FormatInt(r.ID, 10),
			r.SKU,
			r.Name,
			r.Category,
			r.Brand,
			money(r.UnitCost),
			money(r.ListPrice),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeCustomers(cw *csv.Writer, rows []retail.Customer) error {
	if err := cw.Write([]string{"customer_id", "segment", "region", "city", "signup_date"}); err != nil {
		return err
	}
	for _, r := range rows {
		err := cw.Write([]string{
			strconv.FormatInt(r.ID, 10),
			r.Segment,
			r.Region,
			r.City,
			r.SignupDate.Format(dateFormat),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writePromotions(cw *csv.Writer, rows []retail.Promotion) error {
	if err := cw.Write([]string{"promotion_id", "product_id", "promo_type", "discount_pct", "start_date", "end_date"}); err != nil {
		return err
	}
	for _, r := range rows {
		err := cw.Write([]string{
			strconv.FormatInt(r.ID, 10),
			strconv.FormatInt(r.ProductID, 10),
			r.Type,
			money(r.DiscountPct),
			r.StartDate.Format(dateFormat),
			r.EndDate.Format(dateFormat),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeOrders(cw *csv.Writer, rows []retail.Order) error {
	if err := cw.Write([]string{"order_id", "customer_id", "store_id", "order_ts", "payment_type"}); err != nil {
		return err
	}
	for _, r := range rows {
		err := cw.Write([]string{
			strconv.FormatInt(r.ID, 10),
			strconv.FormatInt(r.CustomerID, 10),
			strconv.FormatInt(r.StoreID, 10),
			r.OrderTS.UTC().Format(tsFormat),
			r.PaymentType,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeOrderItems(cw *csv.Writer, rows []retail.OrderItem) error {
	if err := cw.Write([]string{"order_item_id", "order_id", "line_number", "product_id", "quantity", "unit_price", "extended_price", "promotion_id"}); err != nil {
		return err
	}
	for _, r := range rows {
		promo := ""
		if r.PromotionID != 0 {
			promo = strconv.FormatInt(r.PromotionID, 10)
		}
		err := cw.Write([]string{
			strconv.FormatInt(r.ID, 10),
			strconv.FormatInt(r.OrderID, 10),
			strconv.Itoa(r.LineNumber),
			strconv.FormatInt(r.ProductID, 10),
			strconv.Itoa(r.Quantity),
			money(r.UnitPrice),
			money(r.ExtendedPrice),
			promo,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeInventory(cw *csv.Writer, rows []retail.InventorySnapshot) error {
	if err := cw.Write([]string{"store_id", "product_id", "snapshot_date", "quantity_on_hand", "on_order", "safety_stock", "reorder_qty"}); err != nil {
		return err
	}
	for _, r := range rows {
		err := cw.Write([]string{
			strconv.FormatInt(r.StoreID, 10),
			strconv.FormatInt(r.ProductID, 10),
			r.SnapshotDate.Format(dateFormat),
			strconv.Itoa(r.QuantityOnHand),
			strconv.Itoa(r.OnOrder),
			strconv.Itoa(r.SafetyStock),
			strconv.Itoa(r.ReorderQty),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
