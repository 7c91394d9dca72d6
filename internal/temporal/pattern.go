//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package temporal models time-of-day and day-of-week activity patterns
// used to shape order timestamps.
package temporal

import (
	"math"
	"time"
)

// Pattern reports relative activity for a point in time. Values are
// multipliers around 1.0; higher means more orders.
type Pattern interface {
	// Name returns the pattern name.
	Name() string

	// ActivityLevel returns the relative activity at t.
	ActivityLevel(t time.Time) float64

	// MaxLevel returns an upper bound on ActivityLevel over any t.
	// Used for rejection sampling.
	MaxLevel() float64
}

// RetailDay combines smooth midday and evening peaks with a weekend
// uplift. Activity ranges roughly 0.6 to 1.6.
type RetailDay struct{}

// NewRetailDay creates the standard retail shopping pattern.
func NewRetailDay() *RetailDay {
	return &RetailDay{}
}

// Name returns the pattern name.
func (p *RetailDay) Name() string {
	return "retail-day"
}

// ActivityLevel combines two sinusoids peaking near 12:00 and 18:00
// with a Saturday/Sunday uplift.
func (p *RetailDay) ActivityLevel(t time.Time) float64 {
	hour := float64(t.Hour()) + float64(t.Minute())/60.0

	peak1 := 0.5 * (1 + math.Sin((hour-6)/24*2*math.Pi))
	peak2 := 0.5 * (1 + math.Sin((hour-12)/24*2*math.Pi))
	level := 0.6 + 0.8*(0.6*peak1+0.4*peak2)

	if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
		level *= 1.15
	}
	return level
}

// MaxLevel bounds ActivityLevel: 0.6 + 0.8 with full weekend uplift.
func (p *RetailDay) MaxLevel() float64 {
	return 1.4 * 1.15
}

// Flat is a uniform pattern, useful in tests.
type Flat struct{}

// Name returns the pattern name.
func (Flat) Name() string { return "flat" }

// ActivityLevel is constant.
func (Flat) ActivityLevel(time.Time) float64 { return 1.0 }

// MaxLevel is constant.
func (Flat) MaxLevel() float64 { return 1.0 }
