//go:build !integration

package recommend

import (
	"testing"
	"time"
)

func TestFitScaler(t *testing.T) {
	s := FitScaler([][2]float64{
		{10000000, 40},
		{30000000, 95},
		{20000000, 60},
	})

	if s.PriceMin != 10000000 || s.PriceMax != 30000000 {
		t.Errorf("price bounds = (%v, %v), want (10000000, 30000000)", s.PriceMin, s.PriceMax)
	}
	if s.PerfMin != 40 || s.PerfMax != 95 {
		t.Errorf("perf bounds = (%v, %v), want (40, 95)", s.PerfMin, s.PerfMax)
	}
}

func TestFitScalerDegenerateAxis(t *testing.T) {
	// All prices equal: the axis keeps a unit span so Transform stays total.
	s := FitScaler([][2]float64{{500, 10}, {500, 20}})
	if s.PriceMax <= s.PriceMin {
		t.Errorf("degenerate price axis not widened: (%v, %v)", s.PriceMin, s.PriceMax)
	}

	p, _ := s.Transform(500, 15)
	if p < 0 || p > 1 {
		t.Errorf("Transform on degenerate axis = %v, out of [0,1]", p)
	}
}

func TestTransformClamps(t *testing.T) {
	s := Scaler{PriceMin: 100, PriceMax: 200, PerfMin: 0, PerfMax: 100}

	p, f := s.Transform(150, 50)
	if p != 0.5 || f != 0.5 {
		t.Errorf("midpoint = (%v, %v), want (0.5, 0.5)", p, f)
	}

	p, f = s.Transform(99999, -5)
	if p != 1 || f != 0 {
		t.Errorf("out of range = (%v, %v), want (1, 0)", p, f)
	}
}

func TestFeatureIndexPositions(t *testing.T) {
	items := []IndexedItem{
		{VariationID: 11, ProductID: 1, Price: 100, PerformanceScore: 40},
		{VariationID: 22, ProductID: 2, Price: 200, PerformanceScore: 80},
	}
	ix := NewFeatureIndex(items, FitScaler([][2]float64{{100, 40}, {200, 80}}), time.Now())

	if ix.Len() != 2 {
		t.Fatalf("Len = %d, want 2", ix.Len())
	}

	pos, ok := ix.Position(22)
	if !ok || pos != 1 {
		t.Errorf("Position(22) = (%d, %v), want (1, true)", pos, ok)
	}
	if ix.Contains(99) {
		t.Error("Contains(99) = true for unknown variation")
	}

	// Coords are the scaled plane: the min item maps to the origin.
	if ix.Coords[0] != [2]float64{0, 0} {
		t.Errorf("Coords[0] = %v, want origin", ix.Coords[0])
	}
	if ix.Coords[1] != [2]float64{1, 1} {
		t.Errorf("Coords[1] = %v, want (1, 1)", ix.Coords[1])
	}
}
