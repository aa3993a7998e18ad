package recommend

import (
	"time"

	"laptopMart/business/performance"
	"laptopMart/domain"
)

// Builder turns a catalog snapshot into a FeatureIndex: it batch-scores
// every variation and fits the scaler once. The resulting index is immutable;
// callers install it with an atomic swap.
type Builder struct {
	scorer *performance.Scorer
}

func NewBuilder(scorer *performance.Scorer) *Builder {
	return &Builder{scorer: scorer}
}

func (b *Builder) Build(items []domain.CatalogItem, now time.Time) *FeatureIndex {
	indexed := make([]IndexedItem, 0, len(items))
	points := make([][2]float64, 0, len(items))

	for _, item := range items {
		if item.Price <= 0 {
			continue
		}

		res := b.scorer.Score(item)
		indexed = append(indexed, IndexedItem{
			VariationID:      item.VariationID,
			ProductID:        item.ProductID,
			ProductName:      item.ProductName,
			Price:            item.Price,
			PerformanceScore: res.Score,
			CPUSource:        res.CPUSource,
			GPUSource:        res.GPUSource,
		})
		points = append(points, [2]float64{item.Price, res.Score})
	}

	return NewFeatureIndex(indexed, FitScaler(points), now)
}
