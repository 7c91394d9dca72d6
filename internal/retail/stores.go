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

// generateStores produces exactly p.Stores stores spread across the
// fixed region/city taxonomy. Open dates land 60-1825 days before the
// order window, so every store predates every order placed at it.
func generateStores(s *datagen.Stream, p Profile) ([]Store, error) {
	stores := make([]Store, 0, p.Stores)

	for i := 1; i <= p.Stores; i++ {
		region, err := datagen.Choose(s, regions)
		if err != nil {
			return nil, err
		}
		city, err := datagen.Choose(s, citiesByRegion[region])
		if err != nil {
			return nil, err
		}
		format, err := datagen.WeightedChoice(s, storeFormats, storeFormatWeights)
		if err != nil {
			return nil, err
		}

		box := regionBoxes[region]
		lat, err := s.Float64Range(box[0], box[1])
		if err != nil {
			return nil, err
		}
		lon, err := s.Float64Range(box[2], box[3])
		if err != nil {
			return nil, err
		}

		openOffset, err := s.UniformInt(60, 1825)
		if err != nil {
			return nil, err
		}

		stores = append(stores, Store{
			ID:        int64(i),
			Name:      fmt.Sprintf("Store %03d", i),
			Region:    region,
			City:      city,
			Format:    format,
			Latitude:  math.Round(lat*1e6) / 1e6,
			Longitude: math.Round(lon*1e6) / 1e6,
			OpenDate:  p.WindowStart.AddDate(0, 0, -openOffset),
		})
	}

	return stores, nil
}
