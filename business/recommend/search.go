package recommend

import (
	"math"
	"sort"

	"laptopMart/domain"
)

// similarityEpsilon keeps the inverse-distance similarity finite when a
// candidate sits exactly on the query point.
const similarityEpsilon = 1e-6

// Candidate is an ephemeral scored item, valid for one request.
type Candidate struct {
	Source           string
	VariationID      uint64
	ProductID        uint64
	ProductName      string
	Price            float64
	PerformanceScore float64
	CPUSource        string
	GPUSource        string
	Similarity       float64
}

// weightedDistance is the weighted Euclidean distance over the scaled
// (price, performance) plane.
func weightedDistance(alpha, beta float64, q, x [2]float64) float64 {
	dp := q[0] - x[0]
	df := q[1] - x[1]
	return math.Sqrt(alpha*dp*dp + beta*df*df)
}

// priceJumpPenalty discourages candidates pricier than the query item.
// Cheaper candidates carry no penalty; the asymmetry is intentional.
func priceJumpPenalty(lambda, candidatePrice, queryPrice float64) float64 {
	if candidatePrice > queryPrice && queryPrice > 0 {
		return lambda * (candidatePrice - queryPrice) / queryPrice
	}
	return 0
}

func similarity(d, penalty float64) float64 {
	return 1.0 / (similarityEpsilon + d*(1.0+penalty))
}

// SearchIndex scores the query point against the whole index, keeps the
// k+margin nearest by weighted distance, and converts them to similarity
// candidates. The query item itself is excluded when present. Ties in
// distance and similarity preserve index row order, so results are
// deterministic for fixed inputs.
func SearchIndex(ix *FeatureIndex, queryScaled [2]float64, queryPrice float64, excludeVariationID uint64, p Params) []Candidate {
	if ix == nil || ix.Len() == 0 {
		return nil
	}

	limit := p.TopK + p.CandidateMargin
	if limit > ix.Len() {
		limit = ix.Len()
	}

	rows := make([]int, 0, ix.Len())
	dists := make([]float64, ix.Len())
	for i := range ix.Coords {
		dists[i] = weightedDistance(p.AlphaPrice, p.BetaPerf, queryScaled, ix.Coords[i])
		rows = append(rows, i)
	}
	sort.SliceStable(rows, func(a, b int) bool {
		return dists[rows[a]] < dists[rows[b]]
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}

	out := make([]Candidate, 0, len(rows))
	for _, i := range rows {
		it := ix.Items[i]
		if it.VariationID == excludeVariationID {
			continue
		}

		pen := priceJumpPenalty(p.PriceJumpLambda, it.Price, queryPrice)
		out = append(out, Candidate{
			Source:           domain.SourceIndexed,
			VariationID:      it.VariationID,
			ProductID:        it.ProductID,
			ProductName:      it.ProductName,
			Price:            it.Price,
			PerformanceScore: it.PerformanceScore,
			CPUSource:        it.CPUSource,
			GPUSource:        it.GPUSource,
			Similarity:       similarity(dists[i], pen),
		})
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Similarity > out[b].Similarity
	})

	return out
}
