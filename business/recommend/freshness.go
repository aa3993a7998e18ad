package recommend

import (
	"math"
	"time"

	"laptopMart/business/performance"
	"laptopMart/domain"
)

// Blender scores items that are not yet in the feature index and boosts
// them by recency so they can compete with indexed candidates.
type Blender struct {
	scorer *performance.Scorer
}

func NewBlender(scorer *performance.Scorer) *Blender {
	return &Blender{scorer: scorer}
}

// Blend scores each fresh item on the fly, projects it with the existing
// fitted scaler (never refit), computes the same penalized similarity as the
// index search, then applies the exponential recency boost. Items without a
// timestamp pass through unboosted.
func (b *Blender) Blend(queryScaled [2]float64, queryPrice float64, fresh []domain.CatalogItem, scaler Scaler, p Params, now time.Time) []Candidate {
	if len(fresh) == 0 {
		return nil
	}

	halfLife := math.Max(p.RecencyHalfLife, 1e-6)

	out := make([]Candidate, 0, len(fresh))
	for _, item := range fresh {
		res := b.scorer.Score(item)

		sp, sf := scaler.Transform(item.Price, res.Score)
		d := weightedDistance(p.AlphaPrice, p.BetaPerf, queryScaled, [2]float64{sp, sf})
		pen := priceJumpPenalty(p.PriceJumpLambda, item.Price, queryPrice)
		sim := similarity(d, pen)

		if p.RecencyGamma > 0 && !item.LastModified.IsZero() {
			ageDays := now.Sub(item.LastModified).Hours() / 24
			if ageDays < 0 {
				ageDays = 0
			}
			if ageDays > maxAgeDays {
				ageDays = maxAgeDays
			}
			sim *= 1.0 + p.RecencyGamma*math.Exp(-ageDays/halfLife)
		}

		out = append(out, Candidate{
			Source:           domain.SourceFresh,
			VariationID:      item.VariationID,
			ProductID:        item.ProductID,
			ProductName:      item.ProductName,
			Price:            item.Price,
			PerformanceScore: res.Score,
			CPUSource:        res.CPUSource,
			GPUSource:        res.GPUSource,
			Similarity:       sim,
		})
	}

	return out
}
