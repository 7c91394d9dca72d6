//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package retail implements the retail dataset generator core: seven
// related tables (stores, products, customers, promotions, orders,
// order items, inventory snapshots) produced deterministically from a
// seed at a named scale tier.
package retail

import (
	"time"
)

// Scale tier names.
const (
	ScaleSmall  = "small"
	ScaleMedium = "medium"
	ScaleLarge  = "large"
)

// Days bounds for the order-history window.
const (
	MinDays = 1
	MaxDays = 365
)

type tier struct {
	stores    int
	products  int
	customers int
	orders    int
}

// Tier row counts. Orders is an exact target: the generator produces
// exactly this many orders.
var tiers = map[string]tier{
	ScaleSmall:  {stores: 10, products: 200, customers: 2000, orders: 4000},
	ScaleMedium: {stores: 50, products: 1000, customers: 25000, orders: 75000},
	ScaleLarge:  {stores: 200, products: 5000, customers: 120000, orders: 500000},
}

// ScaleNames returns the valid tier names in size order.
func ScaleNames() []string {
	return []string{ScaleSmall, ScaleMedium, ScaleLarge}
}

// Profile is the fully resolved generation configuration. It is
// immutable once resolved and threaded explicitly through every
// generator; no generator reads ambient state.
type Profile struct {
	Scale     string
	Stores    int
	Products  int
	Customers int
	Orders    int

	Days int
	Seed uint64

	// WindowStart is 00:00:00 UTC on the first day of order history,
	// WindowEnd 23:59:00 UTC on the last. Dimension dates (store
	// openings, customer signups) fall strictly before WindowStart.
	WindowStart time.Time
	WindowEnd   time.Time
}

// ResolveProfile resolves a tier name into concrete counts and computes
// the order window ending on the anchor date. The anchor is supplied by
// the caller so the core never consults the clock: a fixed (scale,
// days, seed, anchor) tuple reproduces the dataset byte for byte.
func ResolveProfile(scale string, days int, seed uint64, anchor time.Time) (Profile, error) {
	t, ok := tiers[scale]
	if !ok {
		return Profile{}, configErrorf("unknown scale %q (valid: small, medium, large)", scale)
	}
	if days < MinDays || days > MaxDays {
		return Profile{}, configErrorf("days %d out of range [%d, %d]", days, MinDays, MaxDays)
	}

	end := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -(days - 1))

	return Profile{
		Scale:       scale,
		Stores:      t.stores,
		Products:    t.products,
		Customers:   t.customers,
		Orders:      t.orders,
		Days:        days,
		Seed:        seed,
		WindowStart: start,
		WindowEnd:   end.Add(23*time.Hour + 59*time.Minute),
	}, nil
}
