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
	"sort"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
)

// Each store tracks inventory for at most this many products. Below the
// cap every product is tracked; above it a per-store sample is drawn
// without replacement. The policy is fixed so snapshot volume stays
// bounded at the large tier.
const maxTrackedPerStore = 400

// generateInventory produces one snapshot row per tracked
// (store, product) pair per day in the window. On-hand quantity evolves
// by a bounded random walk clamped at zero.
func generateInventory(s *datagen.Stream, p Profile, stores []Store, products []Product) ([]InventorySnapshot, error) {
	snaps := make([]InventorySnapshot, 0, len(stores)*min(len(products), maxTrackedPerStore)*p.Days)

	for _, st := range stores {
		tracked := trackedProducts(s, products)
		for _, prod := range tracked {
			level, err := initialStock(s)
			if err != nil {
				return nil, err
			}

			for d := 0; d < p.Days; d++ {
				if d > 0 {
					delta, err := s.Jitter(0, 8)
					if err != nil {
						return nil, err
					}
					level += int(delta)
					if level < 0 {
						level = 0
					}
				}

				safetyFrac, err := s.Float64Range(0.15, 0.35)
				if err != nil {
					return nil, err
				}
				safety := max(5, int(float64(level)*safetyFrac))

				var onOrder, reorder int
				if level < safety {
					if onOrder, err = s.UniformInt(10, 60); err != nil {
						return nil, err
					}
					if reorder, err = s.UniformInt(10, 40); err != nil {
						return nil, err
					}
				}

				snaps = append(snaps, InventorySnapshot{
					StoreID:        st.ID,
					ProductID:      prod.ID,
					SnapshotDate:   p.WindowStart.AddDate(0, 0, d),
					QuantityOnHand: level,
					OnOrder:        onOrder,
					SafetyStock:    safety,
					ReorderQty:     reorder,
				})
			}
		}
	}

	return snaps, nil
}

// trackedProducts returns the products this store tracks, in product id
// order.
func trackedProducts(s *datagen.Stream, products []Product) []Product {
	if len(products) <= maxTrackedPerStore {
		return products
	}
	perm := s.Perm(len(products))
	picked := append([]int(nil), perm[:maxTrackedPerStore]...)
	sort.Ints(picked)

	tracked := make([]Product, 0, maxTrackedPerStore)
	for _, i := range picked {
		tracked = append(tracked, products[i])
	}
	return tracked
}

func initialStock(s *datagen.Stream) (int, error) {
	v, err := s.Jitter(40, 15)
	if err != nil {
		return 0, err
	}
	return max(0, int(v)), nil
}
