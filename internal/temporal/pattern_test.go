//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package temporal

import (
	"testing"
	"time"
)

func TestRetailDayBounded(t *testing.T) {
	p := NewRetailDay()
	base := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC) // a Monday

	for d := 0; d < 7; d++ {
		for h := 0; h < 24; h++ {
			ts := base.AddDate(0, 0, d).Add(time.Duration(h) * time.Hour)
			level := p.ActivityLevel(ts)
			if level <= 0 {
				t.Errorf("ActivityLevel at %v = %f, must be positive", ts, level)
			}
			if level > p.MaxLevel() {
				t.Errorf("ActivityLevel at %v = %f exceeds MaxLevel %f", ts, level, p.MaxLevel())
			}
		}
	}
}

func TestRetailDayMiddayAboveNight(t *testing.T) {
	p := NewRetailDay()
	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	noon := p.ActivityLevel(day.Add(12 * time.Hour))
	threeAM := p.ActivityLevel(day.Add(3 * time.Hour))
	if noon <= threeAM {
		t.Errorf("noon activity %f should exceed 3am activity %f", noon, threeAM)
	}
}

func TestRetailDayWeekendUplift(t *testing.T) {
	p := NewRetailDay()
	monday := time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)
	saturday := time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)

	wk := p.ActivityLevel(monday)
	we := p.ActivityLevel(saturday)
	if we <= wk {
		t.Errorf("saturday activity %f should exceed monday %f at the same hour", we, wk)
	}
}

func TestFlat(t *testing.T) {
	var p Flat
	if p.ActivityLevel(time.Now()) != 1.0 {
		t.Error("Flat activity should be 1.0")
	}
	if p.MaxLevel() != 1.0 {
		t.Error("Flat max should be 1.0")
	}
	if p.Name() != "flat" {
		t.Errorf("Flat name = %q", p.Name())
	}
}
