//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package retail

import "time"

// Table names in generation (dependency) order.
const (
	TableStores             = "stores"
	TableProducts           = "products"
	TableCustomers          = "customers"
	TablePromotions         = "promotions"
	TableOrders             = "orders"
	TableOrderItems         = "order_items"
	TableInventorySnapshots = "inventory_snapshots"
)

// TableNames lists the seven tables in generation order.
var TableNames = []string{
	TableStores,
	TableProducts,
	TableCustomers,
	TablePromotions,
	TableOrders,
	TableOrderItems,
	TableInventorySnapshots,
}

// Store is a retail location. IDs are dense, starting at 1.
type Store struct {
	ID        int64
	Name      string
	Region    string
	City      string
	Format    string
	Latitude  float64
	Longitude float64
	OpenDate  time.Time
}

// Product is a sellable item. ListPrice >= UnitCost > 0.
type Product struct {
	ID        int64
	SKU       string
	Name      string
	Category  string
	Brand     string
	UnitCost  float64
	ListPrice float64
}

// Customer is a shopper. SignupDate precedes the order window.
type Customer struct {
	ID         int64
	Segment    string
	Region     string
	City       string
	SignupDate time.Time
}

// Promotion is a discount window attached to exactly one product.
type Promotion struct {
	ID          int64
	ProductID   int64
	Type        string
	DiscountPct float64
	StartDate   time.Time
	EndDate     time.Time
}

// Order is a purchase event at a store by a customer.
type Order struct {
	ID          int64
	CustomerID  int64
	StoreID     int64
	OrderTS     time.Time
	PaymentType string
}

// OrderItem is one line of an order. PromotionID is 0 when no promotion
// applied (real promotion IDs start at 1).
type OrderItem struct {
	ID            int64
	OrderID       int64
	LineNumber    int
	ProductID     int64
	Quantity      int
	UnitPrice     float64
	ExtendedPrice float64
	PromotionID   int64
}

// InventorySnapshot is the on-hand position of one product at one store
// on one day. Keyed by (StoreID, ProductID, SnapshotDate).
type InventorySnapshot struct {
	StoreID        int64
	ProductID      int64
	SnapshotDate   time.Time
	QuantityOnHand int
	OnOrder        int
	SafetyStock    int
	ReorderQty     int
}

// Dataset holds all seven tables of one generation run. It is immutable
// once assembled: either every table is present and validated, or the
// run failed and no Dataset exists.
type Dataset struct {
	Profile Profile

	Stores             []Store
	Products           []Product
	Customers          []Customer
	Promotions         []Promotion
	Orders             []Order
	OrderItems         []OrderItem
	InventorySnapshots []InventorySnapshot
}

// RowCounts reports the number of rows produced per table.
func (d *Dataset) RowCounts() map[string]int {
	return map[string]int{
		TableStores:             len(d.Stores),
		TableProducts:           len(d.Products),
		TableCustomers:          len(d.Customers),
		TablePromotions:         len(d.Promotions),
		TableOrders:             len(d.Orders),
		TableOrderItems:         len(d.OrderItems),
		TableInventorySnapshots: len(d.InventorySnapshots),
	}
}
