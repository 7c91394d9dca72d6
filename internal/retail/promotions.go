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

// promoFraction is the share of products that get a promotion window.
const promoFraction = 0.25

// generatePromotions attaches a discount window to a fixed fraction of
// products, sampled without replacement. Each product carries at most
// one promotion.
func generatePromotions(s *datagen.Stream, p Profile, products []Product) ([]Promotion, error) {
	count := int(float64(len(products)) * promoFraction)
	if count == 0 {
		return []Promotion{}, nil
	}

	perm := s.Perm(len(products))
	picked := append([]int(nil), perm[:count]...)
	sort.Ints(picked)

	promos := make([]Promotion, 0, count)
	for i, idx := range picked {
		duration, err := s.UniformInt(5, 14)
		if err != nil {
			return nil, err
		}
		maxOffset := max(0, p.Days-1-duration)
		offset, err := s.UniformInt(0, maxOffset)
		if err != nil {
			return nil, err
		}
		promoType, err := datagen.Choose(s, promoTypes)
		if err != nil {
			return nil, err
		}
		disc, err := s.Float64Range(0.05, 0.30)
		if err != nil {
			return nil, err
		}

		start := p.WindowStart.AddDate(0, 0, offset)
		promos = append(promos, Promotion{
			ID:          int64(i + 1),
			ProductID:   products[idx].ID,
			Type:        promoType,
			DiscountPct: round2(disc),
			StartDate:   start,
			EndDate:     start.AddDate(0, 0, duration),
		})
	}

	return promos, nil
}

// promoIndex maps product id to its promotions for order-item pricing.
type promoIndex map[int64][]Promotion

func buildPromoIndex(promos []Promotion) promoIndex {
	idx := make(promoIndex, len(promos))
	for _, pr := range promos {
		idx[pr.ProductID] = append(idx[pr.ProductID], pr)
	}
	return idx
}

// activePromo returns the first promotion for the product whose window
// contains the given day, or false if none applies.
func (idx promoIndex) activePromo(productID int64, day int64) (Promotion, bool) {
	for _, pr := range idx[productID] {
		if pr.StartDate.Unix() <= day && day <= pr.EndDate.Unix() {
			return pr, true
		}
	}
	return Promotion{}, false
}
