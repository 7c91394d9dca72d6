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
	"fmt"
	"math"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// generateProducts produces exactly p.Products products spread roughly
// evenly across the category taxonomy. List price is unit cost times a
// bounded per-category markup factor, so list_price >= unit_cost holds
// by construction.
func generateProducts(s *datagen.Stream, p Profile) ([]Product, error) {
	products := make([]Product, 0, p.Products)
	perCategory := max(1, p.Products/len(categories))

	for _, cat := range categories {
		for n := 0; n < perCategory && len(products) < p.Products; n++ {
			prod, err := makeProduct(s, int64(len(products)+1), cat)
			if err != nil {
				return nil, err
			}
			products = append(products, prod)
		}
	}

	// Rounding can leave a gap; top off cycling through categories.
	for i := 0; len(products) < p.Products; i++ {
		cat := categories[i%len(categories)]
		prod, err := makeProduct(s, int64(len(products)+1), cat)
		if err != nil {
			return nil, err
		}
		products = append(products, prod)
	}

	return products, nil
}

func makeProduct(s *datagen.Stream, id int64, cat category) (Product, error) {
	brand, err := datagen.Choose(s, cat.brands)
	if err != nil {
		return Product{}, err
	}

	cost, err := s.Float64Range(cat.costLo, cat.costHi)
	if err != nil {
		return Product{}, err
	}
	cost = round2(cost)

	markup, err := s.Float64Range(cat.markup, cat.markupX)
	if err != nil {
		return Product{}, err
	}
	list := round2(cost * markup)
	if list < cost {
		list = cost
	}

	nameNum, err := s.UniformInt(10, 999)
	if err != nil {
		return Product{}, err
	}

	return Product{
		ID:        id,
		SKU:       s.AlphaNum(8),
		Name:      fmt.Sprintf("%s %s %d", brand, cat.name, nameNum),
		Category:  cat.name,
		Brand:     brand,
		UnitCost:  cost,
		ListPrice: list,
	}, nil
}
