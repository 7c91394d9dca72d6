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
	"sort"
	"time"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
	"github.com/pgEdge/pgedge-retailgen/internal/temporal"
)

// Order timestamp sampling gives up after this many rejected draws per
// order; a well-formed pattern accepts far sooner.
const maxTimestampDraws = 1000

// generateOrders produces exactly p.Orders orders. Timestamps are drawn
// by rejection sampling against the activity pattern, sorted ascending,
// and ids assigned in time order. Store choice is weighted by a
// per-store popularity bias drawn once per run; customer choice is
// uniform. Both policies are fixed.
func generateOrders(s *datagen.Stream, p Profile, stores []Store, customers []Customer, pattern temporal.Pattern) ([]Order, error) {
	biases := make([]float64, len(stores))
	for i := range stores {
		b, err := s.Float64Range(0.7, 1.3)
		if err != nil {
			return nil, err
		}
		biases[i] = b
	}

	timestamps := make([]time.Time, 0, p.Orders)
	for len(timestamps) < p.Orders {
		ts, err := sampleTimestamp(s, p, pattern)
		if err != nil {
			return nil, err
		}
		timestamps = append(timestamps, ts)
	}
	sort.Slice(timestamps, func(i, j int) bool {
		return timestamps[i].Before(timestamps[j])
	})

	orders := make([]Order, 0, p.Orders)
	for i, ts := range timestamps {
		store, err := datagen.WeightedChoice(s, stores, biases)
		if err != nil {
			return nil, err
		}
		custIdx, err := s.UniformInt(0, len(customers)-1)
		if err != nil {
			return nil, err
		}
		payment, err := datagen.WeightedChoice(s, paymentTypes, paymentWeights)
		if err != nil {
			return nil, err
		}

		orders = append(orders, Order{
			ID:          int64(i + 1),
			CustomerID:  customers[custIdx].ID,
			StoreID:     store.ID,
			OrderTS:     ts,
			PaymentType: payment,
		})
	}

	return orders, nil
}

func sampleTimestamp(s *datagen.Stream, p Profile, pattern temporal.Pattern) (time.Time, error) {
	for i := 0; i < maxTimestampDraws; i++ {
		ts, err := s.DateInRange(p.WindowStart, p.WindowEnd)
		if err != nil {
			return time.Time{}, err
		}
		ts = ts.Truncate(time.Second)

		u, err := s.Float64Range(0, pattern.MaxLevel())
		if err != nil {
			return time.Time{}, err
		}
		if u <= pattern.ActivityLevel(ts) {
			return ts, nil
		}
	}
	return time.Time{}, consistencyErrorf(stageOrders,
		"activity pattern %s rejected %d consecutive timestamp draws", pattern.Name(), maxTimestampDraws)
}

// Line items per order follow a small-skewed 1..6 distribution.
const maxBasketSize = 6

// zipfSkew shapes product popularity; ~1.0-1.3 controls the skew.
const zipfSkew = 1.15

// generateOrderItems produces 1-6 line items per order. Products are
// picked with a zipf-like popularity skew over a stable shuffled
// ranking, so the same products stay "top sellers" for a given seed.
// The unit price reflects the promotion active at the order timestamp,
// if any.
func generateOrderItems(s *datagen.Stream, orders []Order, products []Product, promos []Promotion) ([]OrderItem, error) {
	ranking := s.Perm(len(products))
	idx := buildPromoIndex(promos)

	items := make([]OrderItem, 0, len(orders)*2)
	for _, o := range orders {
		size, err := basketSize(s)
		if err != nil {
			return nil, err
		}
		day := dateOf(o.OrderTS).Unix()

		for line := 1; line <= size; line++ {
			prod, err := pickProduct(s, products, ranking)
			if err != nil {
				return nil, err
			}
			qty, err := pickQuantity(s)
			if err != nil {
				return nil, err
			}

			unit := prod.ListPrice
			var promoID int64
			if pr, ok := idx.activePromo(prod.ID, day); ok {
				unit = round2(prod.ListPrice * (1 - pr.DiscountPct))
				promoID = pr.ID
			}

			items = append(items, OrderItem{
				ID:            int64(len(items) + 1),
				OrderID:       o.ID,
				LineNumber:    line,
				ProductID:     prod.ID,
				Quantity:      qty,
				UnitPrice:     unit,
				ExtendedPrice: round2(unit * float64(qty)),
				PromotionID:   promoID,
			})
		}
	}

	return items, nil
}

func basketSize(s *datagen.Stream) (int, error) {
	g, err := s.Jitter(1.0, 1.0)
	if err != nil {
		return 0, err
	}
	size := 1 + int(math.Abs(g)*2)
	return min(max(1, size), maxBasketSize), nil
}

func pickProduct(s *datagen.Stream, products []Product, ranking []int) (Product, error) {
	r, err := s.Float64Range(0, 1)
	if err != nil {
		return Product{}, err
	}
	i := int(math.Pow(r, 1.0/(1.0+zipfSkew)) * float64(len(products)))
	if i >= len(products) {
		i = len(products) - 1
	}
	return products[ranking[i]], nil
}

func pickQuantity(s *datagen.Stream) (int, error) {
	r, err := s.Float64Range(0, 1)
	if err != nil {
		return 0, err
	}
	if r < 0.75 {
		return 1, nil
	}
	return s.UniformInt(2, 5)
}

// dateOf truncates a timestamp to its UTC day.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
