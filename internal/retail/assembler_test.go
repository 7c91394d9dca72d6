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
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
	"github.com/pgEdge/pgedge-retailgen/internal/temporal"
)

func TestGenerateCancelled(t *testing.T) {
	p, err := ResolveProfile(ScaleSmall, 14, 42, testAnchor)
	if err != nil {
		t.Fatalf("ResolveProfile failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d, err := Generate(ctx, p)
	if err == nil {
		t.Fatal("cancelled context should abort generation")
	}
	if d != nil {
		t.Error("no dataset should be returned on cancellation")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error should wrap context.Canceled, got: %v", err)
	}
}

func TestSetPattern(t *testing.T) {
	p, err := ResolveProfile(ScaleSmall, 7, 42, testAnchor)
	if err != nil {
		t.Fatalf("ResolveProfile failed: %v", err)
	}

	a := NewAssembler(p)
	a.SetPattern(temporal.Flat{})
	d, err := a.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate with flat pattern failed: %v", err)
	}
	if len(d.Orders) != p.Orders {
		t.Errorf("orders = %d, want %d", len(d.Orders), p.Orders)
	}
}

func TestVerifyStageOrder(t *testing.T) {
	ok := []stage{
		{name: "a"},
		{name: "b", deps: []string{"a"}},
		{name: "c", deps: []string{"a", "b"}},
	}
	if err := verifyStageOrder(ok); err != nil {
		t.Errorf("valid stage order rejected: %v", err)
	}

	bad := []stage{
		{name: "a", deps: []string{"b"}},
		{name: "b"},
	}
	err := verifyStageOrder(bad)
	if err == nil {
		t.Fatal("forward dependency should be rejected")
	}
	var consErr *ConsistencyError
	if !errors.As(err, &consErr) {
		t.Errorf("expected ConsistencyError, got %T", err)
	}
}

func TestValidateCorruptedDataset(t *testing.T) {
	d := smallDataset(t, 42)

	corruptions := []struct {
		name   string
		mutate func(d *Dataset)
	}{
		{
			name:   "dangling store fk",
			mutate: func(d *Dataset) { d.Orders[0].StoreID = 9999 },
		},
		{
			name:   "negative inventory",
			mutate: func(d *Dataset) { d.InventorySnapshots[0].QuantityOnHand = -1 },
		},
		{
			name:   "zero quantity line",
			mutate: func(d *Dataset) { d.OrderItems[0].Quantity = 0 },
		},
		{
			name:   "inverted price",
			mutate: func(d *Dataset) { d.Products[0].ListPrice = d.Products[0].UnitCost - 1 },
		},
		{
			name:   "sparse ids",
			mutate: func(d *Dataset) { d.Customers[5].ID = 9999 },
		},
	}

	for _, tt := range corruptions {
		t.Run(tt.name, func(t *testing.T) {
			fresh := smallDataset(t, 42)
			tt.mutate(fresh)

			err := fresh.Validate()
			if err == nil {
				t.Fatal("corrupted dataset passed validation")
			}
			var consErr *ConsistencyError
			if !errors.As(err, &consErr) {
				t.Errorf("expected ConsistencyError, got %T: %v", err, err)
			}
		})
	}

	// The pristine copy still validates
	if err := d.Validate(); err != nil {
		t.Errorf("clean dataset failed validation: %v", err)
	}
}

func TestRowCounts(t *testing.T) {
	d := smallDataset(t, 42)
	counts := d.RowCounts()

	for _, name := range TableNames {
		if _, ok := counts[name]; !ok {
			t.Errorf("RowCounts missing table %s", name)
		}
	}
	if counts[TableStores] != len(d.Stores) {
		t.Errorf("stores count mismatch")
	}
	if counts[TableOrderItems] != len(d.OrderItems) {
		t.Errorf("order items count mismatch")
	}
}

func TestSampleTimestampRejection(t *testing.T) {
	// A pattern whose level never reaches the sampling bound forces the
	// draw cap to trip.
	p, err := ResolveProfile(ScaleSmall, 7, 42, testAnchor)
	if err != nil {
		t.Fatalf("ResolveProfile failed: %v", err)
	}

	s := datagen.NewStream(1)
	_, err = sampleTimestamp(s, p, unreachablePattern{})
	if err == nil {
		t.Fatal("unsatisfiable pattern should exhaust the draw budget")
	}
	var consErr *ConsistencyError
	if !errors.As(err, &consErr) {
		t.Errorf("expected ConsistencyError, got %T", err)
	}
}

type unreachablePattern struct{}

func (unreachablePattern) Name() string                      { return "unreachable" }
func (unreachablePattern) ActivityLevel(_ time.Time) float64 { return 0 }
func (unreachablePattern) MaxLevel() float64                 { return 1 }
