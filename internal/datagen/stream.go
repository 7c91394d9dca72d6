//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package datagen provides seeded, reproducible sampling primitives.
package datagen

import (
	"fmt"
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

const alphaNumCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Stream is a seeded pseudo-random source. All sampling goes through a
// single gofakeit instance so that a fixed seed yields a fixed draw
// sequence. A Stream never consults the wall clock.
type Stream struct {
	seed  uint64
	faker *gofakeit.Faker
}

// NewStream creates a stream seeded with the given value.
func NewStream(seed uint64) *Stream {
	return &Stream{
		seed:  seed,
		faker: gofakeit.New(seed),
	}
}

// Seed returns the seed this stream was created with.
func (s *Stream) Seed() uint64 {
	return s.seed
}

// Stage derives an independent sub-stream for a pipeline stage. The
// sub-seed depends only on the master seed and the stage index, so the
// number of draws taken in one stage cannot perturb another.
func (s *Stream) Stage(index uint64) *Stream {
	x := s.seed + (index+1)*0x9E3779B97F4A7C15
	x ^= x >> 30
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 27
	x *= 0x94D049BB133111EB
	x ^= x >> 31
	return NewStream(x)
}

// UniformInt returns an integer uniformly drawn from [lo, hi].
func (s *Stream) UniformInt(lo, hi int) (int, error) {
	if lo > hi {
		return 0, fmt.Errorf("uniform int: lo %d > hi %d", lo, hi)
	}
	if lo == hi {
		return lo, nil
	}
	return s.faker.IntRange(lo, hi), nil
}

// Float64Range returns a float64 uniformly drawn from [lo, hi).
func (s *Stream) Float64Range(lo, hi float64) (float64, error) {
	if lo > hi {
		return 0, fmt.Errorf("uniform float: lo %g > hi %g", lo, hi)
	}
	if lo == hi {
		return lo, nil
	}
	return s.faker.Float64Range(lo, hi), nil
}

// DateInRange returns a time uniformly drawn from [start, end].
func (s *Stream) DateInRange(start, end time.Time) (time.Time, error) {
	if end.Before(start) {
		return time.Time{}, fmt.Errorf("date range: end %s before start %s",
			end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	if start.Equal(end) {
		return start, nil
	}
	return s.faker.DateRange(start, end), nil
}

// Jitter returns base plus normally distributed noise with the given
// spread (standard deviation), computed via the Box-Muller transform
// from two uniform draws.
func (s *Stream) Jitter(base, spread float64) (float64, error) {
	if spread < 0 {
		return 0, fmt.Errorf("jitter: negative spread %g", spread)
	}
	if spread == 0 {
		return base, nil
	}
	u1 := s.faker.Float64Range(0, 1)
	u2 := s.faker.Float64Range(0, 1)
	if u1 < 1e-12 {
		u1 = 1e-12
	}
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return base + spread*z, nil
}

// Perm returns a random permutation of [0, n) via Fisher-Yates.
func (s *Stream) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := s.faker.IntRange(0, i)
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// AlphaNum returns a string of n uppercase letters and digits.
func (s *Stream) AlphaNum(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphaNumCharset[s.faker.IntRange(0, len(alphaNumCharset)-1)]
	}
	return string(b)
}

// Name returns a random full name.
func (s *Stream) Name() string {
	return s.faker.Name()
}

// Choose returns an element drawn uniformly from items.
func Choose[T any](s *Stream, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, fmt.Errorf("choose: empty item set")
	}
	return items[s.faker.IntRange(0, len(items)-1)], nil
}

// WeightedChoice returns an element drawn from items with probability
// proportional to its weight.
func WeightedChoice[T any](s *Stream, items []T, weights []float64) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, fmt.Errorf("weighted choice: empty item set")
	}
	if len(items) != len(weights) {
		return zero, fmt.Errorf("weighted choice: %d items but %d weights",
			len(items), len(weights))
	}
	total := 0.0
	for _, w := range weights {
		if w < 0 {
			return zero, fmt.Errorf("weighted choice: negative weight %g", w)
		}
		total += w
	}
	if total <= 0 {
		return zero, fmt.Errorf("weighted choice: weights sum to zero")
	}

	r := s.faker.Float64Range(0, total)
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if r <= cumulative {
			return items[i], nil
		}
	}
	return items[len(items)-1], nil
}
