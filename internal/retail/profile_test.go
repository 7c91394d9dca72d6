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
	"errors"
	"testing"
	"time"
)

var testAnchor = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

func TestResolveProfileTiers(t *testing.T) {
	tests := []struct {
		scale     string
		stores    int
		products  int
		customers int
		orders    int
	}{
		{ScaleSmall, 10, 200, 2000, 4000},
		{ScaleMedium, 50, 1000, 25000, 75000},
		{ScaleLarge, 200, 5000, 120000, 500000},
	}

	for _, tt := range tests {
		p, err := ResolveProfile(tt.scale, 14, 42, testAnchor)
		if err != nil {
			t.Fatalf("ResolveProfile(%s) failed: %v", tt.scale, err)
		}
		if p.Stores != tt.stores {
			t.Errorf("%s stores = %d, want %d", tt.scale, p.Stores, tt.stores)
		}
		if p.Products != tt.products {
			t.Errorf("%s products = %d, want %d", tt.scale, p.Products, tt.products)
		}
		if p.Customers != tt.customers {
			t.Errorf("%s customers = %d, want %d", tt.scale, p.Customers, tt.customers)
		}
		if p.Orders != tt.orders {
			t.Errorf("%s orders = %d, want %d", tt.scale, p.Orders, tt.orders)
		}
	}
}

func TestResolveProfileMonotonic(t *testing.T) {
	small, _ := ResolveProfile(ScaleSmall, 14, 42, testAnchor)
	medium, _ := ResolveProfile(ScaleMedium, 14, 42, testAnchor)
	large, _ := ResolveProfile(ScaleLarge, 14, 42, testAnchor)

	if !(small.Stores < medium.Stores && medium.Stores < large.Stores) {
		t.Error("store counts not strictly increasing across tiers")
	}
	if !(small.Orders < medium.Orders && medium.Orders < large.Orders) {
		t.Error("order counts not strictly increasing across tiers")
	}
}

func TestResolveProfileUnknownScale(t *testing.T) {
	_, err := ResolveProfile("huge", 14, 42, testAnchor)
	if err == nil {
		t.Fatal("unknown scale should error")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("expected ConfigError, got %T: %v", err, err)
	}
}

func TestResolveProfileDaysBounds(t *testing.T) {
	for _, days := range []int{0, -1, 366} {
		_, err := ResolveProfile(ScaleSmall, days, 42, testAnchor)
		if err == nil {
			t.Errorf("days=%d should error", days)
		}
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("days=%d expected ConfigError, got %T", days, err)
		}
	}

	for _, days := range []int{1, 365} {
		if _, err := ResolveProfile(ScaleSmall, days, 42, testAnchor); err != nil {
			t.Errorf("days=%d should be valid: %v", days, err)
		}
	}
}

func TestResolveProfileWindow(t *testing.T) {
	p, err := ResolveProfile(ScaleSmall, 14, 42, testAnchor)
	if err != nil {
		t.Fatalf("ResolveProfile failed: %v", err)
	}

	wantStart := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)
	if !p.WindowStart.Equal(wantStart) {
		t.Errorf("WindowStart = %v, want %v", p.WindowStart, wantStart)
	}
	wantEnd := time.Date(2025, 6, 30, 23, 59, 0, 0, time.UTC)
	if !p.WindowEnd.Equal(wantEnd) {
		t.Errorf("WindowEnd = %v, want %v", p.WindowEnd, wantEnd)
	}
}

func TestResolveProfileSingleDay(t *testing.T) {
	p, err := ResolveProfile(ScaleSmall, 1, 42, testAnchor)
	if err != nil {
		t.Fatalf("ResolveProfile failed: %v", err)
	}
	if !p.WindowStart.Equal(time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("single-day WindowStart = %v", p.WindowStart)
	}
	if !p.WindowEnd.After(p.WindowStart) {
		t.Error("WindowEnd must follow WindowStart even for one day")
	}
}

func TestScaleNames(t *testing.T) {
	names := ScaleNames()
	want := []string{"small", "medium", "large"}
	if len(names) != len(want) {
		t.Fatalf("ScaleNames length = %d", len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("ScaleNames[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}
