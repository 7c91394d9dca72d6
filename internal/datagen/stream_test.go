//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package datagen

import (
	"testing"
	"time"
)

func TestNewStream(t *testing.T) {
	s := NewStream(42)
	if s == nil {
		t.Fatal("NewStream returned nil")
	}
	if s.Seed() != 42 {
		t.Errorf("Seed() = %d, want 42", s.Seed())
	}
}

func TestStreamSameSeedSameSequence(t *testing.T) {
	s1 := NewStream(12345)
	s2 := NewStream(12345)

	for i := 0; i < 100; i++ {
		v1, err1 := s1.UniformInt(0, 1000000)
		v2, err2 := s2.UniformInt(0, 1000000)
		if err1 != nil || err2 != nil {
			t.Fatalf("UniformInt failed: %v %v", err1, err2)
		}
		if v1 != v2 {
			t.Fatalf("Same seed produced different values at draw %d: %d != %d", i, v1, v2)
		}
	}
}

func TestStreamDifferentSeedsDiverge(t *testing.T) {
	s1 := NewStream(1)
	s2 := NewStream(2)

	same := 0
	for i := 0; i < 100; i++ {
		v1, _ := s1.UniformInt(0, 1000000)
		v2, _ := s2.UniformInt(0, 1000000)
		if v1 == v2 {
			same++
		}
	}
	if same == 100 {
		t.Error("Different seeds produced identical sequences")
	}
}

func TestStageIndependence(t *testing.T) {
	// Draws in one stage must not shift draws in another: a stage
	// sub-stream depends only on the master seed and the stage index.
	m1 := NewStream(99)
	m2 := NewStream(99)

	a1 := m1.Stage(0)
	for i := 0; i < 50; i++ {
		a1.UniformInt(0, 100)
	}
	b1, _ := m1.Stage(1).UniformInt(0, 1000000)

	m2.Stage(0) // zero draws taken
	b2, _ := m2.Stage(1).UniformInt(0, 1000000)

	if b1 != b2 {
		t.Errorf("Stage 1 stream perturbed by stage 0 draws: %d != %d", b1, b2)
	}
}

func TestStageDistinct(t *testing.T) {
	m := NewStream(7)
	v0, _ := m.Stage(0).UniformInt(0, 1000000)
	v1, _ := m.Stage(1).UniformInt(0, 1000000)
	v2, _ := m.Stage(2).UniformInt(0, 1000000)

	if v0 == v1 && v1 == v2 {
		t.Error("Stage sub-streams produced identical first draws")
	}
}

func TestUniformIntRange(t *testing.T) {
	s := NewStream(1)
	for i := 0; i < 100; i++ {
		v, err := s.UniformInt(5, 10)
		if err != nil {
			t.Fatalf("UniformInt failed: %v", err)
		}
		if v < 5 || v > 10 {
			t.Errorf("UniformInt %d not in range [5, 10]", v)
		}
	}
}

func TestUniformIntDegenerate(t *testing.T) {
	s := NewStream(1)

	v, err := s.UniformInt(3, 3)
	if err != nil {
		t.Fatalf("UniformInt(3, 3) failed: %v", err)
	}
	if v != 3 {
		t.Errorf("UniformInt(3, 3) = %d, want 3", v)
	}

	if _, err := s.UniformInt(10, 5); err == nil {
		t.Error("UniformInt(10, 5) should error")
	}
}

func TestFloat64Range(t *testing.T) {
	s := NewStream(1)
	for i := 0; i < 100; i++ {
		v, err := s.Float64Range(1.5, 3.5)
		if err != nil {
			t.Fatalf("Float64Range failed: %v", err)
		}
		if v < 1.5 || v > 3.5 {
			t.Errorf("Float64Range %f not in range [1.5, 3.5]", v)
		}
	}

	if _, err := s.Float64Range(2.0, 1.0); err == nil {
		t.Error("Float64Range(2, 1) should error")
	}
}

func TestDateInRange(t *testing.T) {
	s := NewStream(1)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		d, err := s.DateInRange(start, end)
		if err != nil {
			t.Fatalf("DateInRange failed: %v", err)
		}
		if d.Before(start) || d.After(end) {
			t.Errorf("DateInRange %v not in range [%v, %v]", d, start, end)
		}
	}

	if _, err := s.DateInRange(end, start); err == nil {
		t.Error("DateInRange with end before start should error")
	}
}

func TestJitter(t *testing.T) {
	s := NewStream(1)

	v, err := s.Jitter(40, 0)
	if err != nil {
		t.Fatalf("Jitter failed: %v", err)
	}
	if v != 40 {
		t.Errorf("Jitter with zero spread = %f, want 40", v)
	}

	if _, err := s.Jitter(0, -1); err == nil {
		t.Error("Jitter with negative spread should error")
	}

	// Mean should land near the base over many draws
	sum := 0.0
	for i := 0; i < 2000; i++ {
		v, err := s.Jitter(40, 15)
		if err != nil {
			t.Fatalf("Jitter failed: %v", err)
		}
		sum += v
	}
	mean := sum / 2000
	if mean < 37 || mean > 43 {
		t.Errorf("Jitter mean %f too far from base 40", mean)
	}
}

func TestPerm(t *testing.T) {
	s := NewStream(1)
	p := s.Perm(50)
	if len(p) != 50 {
		t.Fatalf("Perm(50) length = %d", len(p))
	}
	seen := make(map[int]bool, 50)
	for _, v := range p {
		if v < 0 || v >= 50 {
			t.Errorf("Perm value %d out of range", v)
		}
		if seen[v] {
			t.Errorf("Perm value %d repeated", v)
		}
		seen[v] = true
	}
}

func TestPermDeterministic(t *testing.T) {
	p1 := NewStream(9).Perm(20)
	p2 := NewStream(9).Perm(20)
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Fatalf("Perm differs at index %d for same seed", i)
		}
	}
}

func TestAlphaNum(t *testing.T) {
	s := NewStream(1)
	v := s.AlphaNum(8)
	if len(v) != 8 {
		t.Fatalf("AlphaNum(8) length = %d", len(v))
	}
	for _, c := range v {
		if !((c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			t.Errorf("AlphaNum produced %c outside charset", c)
		}
	}
}

func TestChoose(t *testing.T) {
	s := NewStream(1)
	items := []string{"a", "b", "c"}

	for i := 0; i < 100; i++ {
		v, err := Choose(s, items)
		if err != nil {
			t.Fatalf("Choose failed: %v", err)
		}
		if v != "a" && v != "b" && v != "c" {
			t.Errorf("Choose returned item not in slice: %s", v)
		}
	}

	if _, err := Choose(s, []string{}); err == nil {
		t.Error("Choose on empty slice should error")
	}
}

func TestWeightedChoice(t *testing.T) {
	s := NewStream(1)
	items := []string{"a", "b", "c"}
	weights := []float64{0.1, 0.2, 0.7}

	counts := make(map[string]int)
	for i := 0; i < 2000; i++ {
		v, err := WeightedChoice(s, items, weights)
		if err != nil {
			t.Fatalf("WeightedChoice failed: %v", err)
		}
		counts[v]++
	}

	if counts["c"] < counts["a"] || counts["c"] < counts["b"] {
		t.Errorf("Weighted choice distribution unexpected: %v", counts)
	}
}

func TestWeightedChoiceErrors(t *testing.T) {
	s := NewStream(1)

	if _, err := WeightedChoice(s, []string{}, []float64{}); err == nil {
		t.Error("empty item set should error")
	}
	if _, err := WeightedChoice(s, []string{"a", "b"}, []float64{1}); err == nil {
		t.Error("mismatched lengths should error")
	}
	if _, err := WeightedChoice(s, []string{"a"}, []float64{-1}); err == nil {
		t.Error("negative weight should error")
	}
	if _, err := WeightedChoice(s, []string{"a", "b"}, []float64{0, 0}); err == nil {
		t.Error("all-zero weights should error")
	}
}

// Benchmarks
func BenchmarkUniformInt(b *testing.B) {
	s := NewStream(1)
	for i := 0; i < b.N; i++ {
		s.UniformInt(0, 1000)
	}
}

func BenchmarkWeightedChoice(b *testing.B) {
	s := NewStream(1)
	items := []string{"a", "b", "c", "d", "e"}
	weights := []float64{1, 2, 3, 4, 5}
	for i := 0; i < b.N; i++ {
		WeightedChoice(s, items, weights)
	}
}

func BenchmarkJitter(b *testing.B) {
	s := NewStream(1)
	for i := 0; i < b.N; i++ {
		s.Jitter(40, 15)
	}
}
