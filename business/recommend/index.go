package recommend

import (
	"time"
)

// Scaler is a per-axis min-max transform fitted once at index build time and
// reused unchanged at query time. Out-of-range inputs clamp to [0, 1].
type Scaler struct {
	PriceMin float64 `json:"price_min"`
	PriceMax float64 `json:"price_max"`
	PerfMin  float64 `json:"perf_min"`
	PerfMax  float64 `json:"perf_max"`
}

// FitScaler fits the min-max bounds over the given (price, performance)
// pairs. Degenerate axes (all values equal, or no points) keep a unit span
// so Transform stays total.
func FitScaler(points [][2]float64) Scaler {
	s := Scaler{PriceMax: 1, PerfMax: 1}
	if len(points) == 0 {
		return s
	}

	s.PriceMin, s.PriceMax = points[0][0], points[0][0]
	s.PerfMin, s.PerfMax = points[0][1], points[0][1]
	for _, p := range points[1:] {
		if p[0] < s.PriceMin {
			s.PriceMin = p[0]
		}
		if p[0] > s.PriceMax {
			s.PriceMax = p[0]
		}
		if p[1] < s.PerfMin {
			s.PerfMin = p[1]
		}
		if p[1] > s.PerfMax {
			s.PerfMax = p[1]
		}
	}

	if s.PriceMax <= s.PriceMin {
		s.PriceMax = s.PriceMin + 1
	}
	if s.PerfMax <= s.PerfMin {
		s.PerfMax = s.PerfMin + 1
	}

	return s
}

// Transform maps raw (price, performance) onto the scaled plane.
func (s Scaler) Transform(price, perf float64) (float64, float64) {
	return clamp01((price - s.PriceMin) / (s.PriceMax - s.PriceMin)),
		clamp01((perf - s.PerfMin) / (s.PerfMax - s.PerfMin))
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// IndexedItem is one catalog variation known at index build time, with its
// derived performance score and score provenance.
type IndexedItem struct {
	VariationID      uint64  `json:"variation_id"`
	ProductID        uint64  `json:"product_id"`
	ProductName      string  `json:"product_name"`
	Price            float64 `json:"price"`
	PerformanceScore float64 `json:"performance_score"`
	CPUSource        string  `json:"cpu_source"`
	GPUSource        string  `json:"gpu_source"`
}

// FeatureIndex is an immutable snapshot of the (price, performance) plane
// for every item known at build time, plus the fitted scaler. Requests only
// ever see a whole snapshot; rebuilds swap the pointer atomically.
type FeatureIndex struct {
	Items   []IndexedItem
	Coords  [][2]float64 // scaled, parallel to Items
	Scaler  Scaler
	BuiltAt time.Time

	byVariation map[uint64]int
}

func NewFeatureIndex(items []IndexedItem, scaler Scaler, builtAt time.Time) *FeatureIndex {
	ix := &FeatureIndex{
		Items:       items,
		Coords:      make([][2]float64, len(items)),
		Scaler:      scaler,
		BuiltAt:     builtAt,
		byVariation: make(map[uint64]int, len(items)),
	}

	for i, it := range items {
		p, f := scaler.Transform(it.Price, it.PerformanceScore)
		ix.Coords[i] = [2]float64{p, f}
		ix.byVariation[it.VariationID] = i
	}

	return ix
}

// Position returns the row of a variation, if indexed.
func (ix *FeatureIndex) Position(variationID uint64) (int, bool) {
	i, ok := ix.byVariation[variationID]
	return i, ok
}

func (ix *FeatureIndex) Contains(variationID uint64) bool {
	_, ok := ix.byVariation[variationID]
	return ok
}

func (ix *FeatureIndex) Len() int {
	return len(ix.Items)
}
