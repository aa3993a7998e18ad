package recommend

import "sort"

// Rank merges the indexed and fresh pools, sorts by similarity descending
// (stable, so ties keep pool-then-input order) and drops duplicate
// underlying products. The seen-set starts with the query item's product id:
// a sibling configuration of the same product is never recommended as a
// different product. Fewer than k results is valid.
func Rank(indexed, fresh []Candidate, queryProductID uint64, k int) []Candidate {
	if k <= 0 {
		return nil
	}

	pool := make([]Candidate, 0, len(indexed)+len(fresh))
	pool = append(pool, indexed...)
	pool = append(pool, fresh...)

	sort.SliceStable(pool, func(a, b int) bool {
		return pool[a].Similarity > pool[b].Similarity
	})

	seen := map[uint64]struct{}{queryProductID: {}}

	out := make([]Candidate, 0, k)
	for _, c := range pool {
		if _, dup := seen[c.ProductID]; dup {
			continue
		}
		seen[c.ProductID] = struct{}{}

		out = append(out, c)
		if len(out) == k {
			break
		}
	}

	return out
}
