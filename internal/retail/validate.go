//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package retail

import (
	"math"
)

// priceTolerance absorbs float rounding when re-deriving discounted
// prices.
const priceTolerance = 0.005

// Validate checks every foreign key and per-row invariant of the
// dataset against its profile. Any violation is a ConsistencyError:
// the dataset as a whole is invalid.
func (d *Dataset) Validate() error {
	if err := d.validateStores(); err != nil {
		return err
	}
	if err := d.validateProducts(); err != nil {
		return err
	}
	if err := d.validateCustomers(); err != nil {
		return err
	}
	if err := d.validatePromotions(); err != nil {
		return err
	}
	if err := d.validateOrders(); err != nil {
		return err
	}
	if err := d.validateOrderItems(); err != nil {
		return err
	}
	return d.validateInventory()
}

func (d *Dataset) validateStores() error {
	if len(d.Stores) != d.Profile.Stores {
		return consistencyErrorf(stageStores, "expected %d rows, got %d", d.Profile.Stores, len(d.Stores))
	}
	for i, s := range d.Stores {
		if s.ID != int64(i+1) {
			return consistencyErrorf(stageStores, "row %d has id %d, ids must be dense from 1", i, s.ID)
		}
		if s.OpenDate.After(d.Profile.WindowStart) {
			return consistencyErrorf(stageStores, "store %d opened %s, after window start", s.ID, s.OpenDate.Format("2006-01-02"))
		}
	}
	return nil
}

func (d *Dataset) validateProducts() error {
	if len(d.Products) != d.Profile.Products {
		return consistencyErrorf(stageProducts, "expected %d rows, got %d", d.Profile.Products, len(d.Products))
	}
	for i, p := range d.Products {
		if p.ID != int64(i+1) {
			return consistencyErrorf(stageProducts, "row %d has id %d, ids must be dense from 1", i, p.ID)
		}
		if p.UnitCost <= 0 {
			return consistencyErrorf(stageProducts, "product %d unit_cost %.2f must be positive", p.ID, p.UnitCost)
		}
		if p.ListPrice < p.UnitCost {
			return consistencyErrorf(stageProducts, "product %d list_price %.2f below unit_cost %.2f", p.ID, p.ListPrice, p.UnitCost)
		}
	}
	return nil
}

func (d *Dataset) validateCustomers() error {
	if len(d.Customers) != d.Profile.Customers {
		return consistencyErrorf(stageCustomers, "expected %d rows, got %d", d.Profile.Customers, len(d.Customers))
	}
	for i, c := range d.Customers {
		if c.ID != int64(i+1) {
			return consistencyErrorf(stageCustomers, "row %d has id %d, ids must be dense from 1", i, c.ID)
		}
		if c.SignupDate.After(d.Profile.WindowStart) {
			return consistencyErrorf(stageCustomers, "customer %d signed up %s, after window start", c.ID, c.SignupDate.Format("2006-01-02"))
		}
	}
	return nil
}

func (d *Dataset) validatePromotions() error {
	for i, pr := range d.Promotions {
		if pr.ID != int64(i+1) {
			return consistencyErrorf(stagePromotions, "row %d has id %d, ids must be dense from 1", i, pr.ID)
		}
		if pr.ProductID < 1 || pr.ProductID > int64(len(d.Products)) {
			return consistencyErrorf(stagePromotions, "promotion %d references missing product %d", pr.ID, pr.ProductID)
		}
		if !pr.StartDate.Before(pr.EndDate) {
			return consistencyErrorf(stagePromotions, "promotion %d start %s not before end %s",
				pr.ID, pr.StartDate.Format("2006-01-02"), pr.EndDate.Format("2006-01-02"))
		}
		if pr.DiscountPct <= 0 || pr.DiscountPct >= 1 {
			return consistencyErrorf(stagePromotions, "promotion %d discount %.2f outside (0, 1)", pr.ID, pr.DiscountPct)
		}
	}
	return nil
}

func (d *Dataset) validateOrders() error {
	if len(d.Orders) != d.Profile.Orders {
		return consistencyErrorf(stageOrders, "expected %d rows, got %d", d.Profile.Orders, len(d.Orders))
	}
	for i, o := range d.Orders {
		if o.ID != int64(i+1) {
			return consistencyErrorf(stageOrders, "row %d has id %d, ids must be dense from 1", i, o.ID)
		}
		if o.CustomerID < 1 || o.CustomerID > int64(len(d.Customers)) {
			return consistencyErrorf(stageOrders, "order %d references missing customer %d", o.ID, o.CustomerID)
		}
		if o.StoreID < 1 || o.StoreID > int64(len(d.Stores)) {
			return consistencyErrorf(stageOrders, "order %d references missing store %d", o.ID, o.StoreID)
		}
		if o.OrderTS.Before(d.Profile.WindowStart) || o.OrderTS.After(d.Profile.WindowEnd) {
			return consistencyErrorf(stageOrders, "order %d timestamp %s outside window", o.ID, o.OrderTS.Format("2006-01-02T15:04:05"))
		}
	}
	return nil
}

func (d *Dataset) validateOrderItems() error {
	for i, it := range d.OrderItems {
		if it.ID != int64(i+1) {
			return consistencyErrorf(stageOrderItems, "row %d has id %d, ids must be dense from 1", i, it.ID)
		}
		if it.OrderID < 1 || it.OrderID > int64(len(d.Orders)) {
			return consistencyErrorf(stageOrderItems, "item %d references missing order %d", it.ID, it.OrderID)
		}
		if it.ProductID < 1 || it.ProductID > int64(len(d.Products)) {
			return consistencyErrorf(stageOrderItems, "item %d references missing product %d", it.ID, it.ProductID)
		}
		if it.Quantity < 1 {
			return consistencyErrorf(stageOrderItems, "item %d quantity %d below 1", it.ID, it.Quantity)
		}

		product := d.Products[it.ProductID-1]
		order := d.Orders[it.OrderID-1]

		want := product.ListPrice
		if it.PromotionID != 0 {
			if it.PromotionID < 1 || it.PromotionID > int64(len(d.Promotions)) {
				return consistencyErrorf(stageOrderItems, "item %d references missing promotion %d", it.ID, it.PromotionID)
			}
			promo := d.Promotions[it.PromotionID-1]
			if promo.ProductID != it.ProductID {
				return consistencyErrorf(stageOrderItems, "item %d promotion %d is for product %d, not %d",
					it.ID, promo.ID, promo.ProductID, it.ProductID)
			}
			day := dateOf(order.OrderTS)
			if day.Before(promo.StartDate) || day.After(promo.EndDate) {
				return consistencyErrorf(stageOrderItems, "item %d promotion %d inactive at order time %s",
					it.ID, promo.ID, order.OrderTS.Format("2006-01-02"))
			}
			want = round2(product.ListPrice * (1 - promo.DiscountPct))
		}
		if math.Abs(it.UnitPrice-want) > priceTolerance {
			return consistencyErrorf(stageOrderItems, "item %d unit_price %.2f, expected %.2f", it.ID, it.UnitPrice, want)
		}
		if math.Abs(it.ExtendedPrice-round2(it.UnitPrice*float64(it.Quantity))) > priceTolerance {
			return consistencyErrorf(stageOrderItems, "item %d extended_price %.2f does not match qty*unit_price", it.ID, it.ExtendedPrice)
		}
	}
	return nil
}

func (d *Dataset) validateInventory() error {
	type key struct {
		store   int64
		product int64
		day     int64
	}
	seen := make(map[key]bool, len(d.InventorySnapshots))

	for _, snap := range d.InventorySnapshots {
		if snap.StoreID < 1 || snap.StoreID > int64(len(d.Stores)) {
			return consistencyErrorf(stageInventory, "snapshot references missing store %d", snap.StoreID)
		}
		if snap.ProductID < 1 || snap.ProductID > int64(len(d.Products)) {
			return consistencyErrorf(stageInventory, "snapshot references missing product %d", snap.ProductID)
		}
		if snap.QuantityOnHand < 0 {
			return consistencyErrorf(stageInventory, "snapshot (%d, %d, %s) has negative on-hand %d",
				snap.StoreID, snap.ProductID, snap.SnapshotDate.Format("2006-01-02"), snap.QuantityOnHand)
		}
		k := key{snap.StoreID, snap.ProductID, snap.SnapshotDate.Unix()}
		if seen[k] {
			return consistencyErrorf(stageInventory, "duplicate snapshot for store %d product %d on %s",
				snap.StoreID, snap.ProductID, snap.SnapshotDate.Format("2006-01-02"))
		}
		seen[k] = true
	}
	return nil
}
