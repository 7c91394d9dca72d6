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
	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
)

// generateCustomers produces exactly p.Customers customers. Signup
// dates land 30-1460 days before the order window, so every customer
// predates every order they place.
func generateCustomers(s *datagen.Stream, p Profile) ([]Customer, error) {
	customers := make([]Customer, 0, p.Customers)

	for i := 1; i <= p.Customers; i++ {
		segment, err := datagen.WeightedChoice(s, segments, segmentWeights)
		if err != nil {
			return nil, err
		}
		region, err := datagen.Choose(s, regions)
		if err != nil {
			return nil, err
		}
		city, err := datagen.Choose(s, citiesByRegion[region])
		if err != nil {
			return nil, err
		}
		signupOffset, err := s.UniformInt(30, 1460)
		if err != nil {
			return nil, err
		}

		customers = append(customers, Customer{
			ID:         int64(i),
			Segment:    segment,
			Region:     region,
			City:       city,
			SignupDate: p.WindowStart.AddDate(0, 0, -signupOffset),
		})
	}

	return customers, nil
}
