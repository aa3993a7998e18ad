//go:build !integration

package recommend

import "testing"

func TestRankDropsSiblingsOfQueryProduct(t *testing.T) {
	indexed := []Candidate{
		{VariationID: 2, ProductID: 10, Similarity: 9}, // sibling config of the query's product
		{VariationID: 3, ProductID: 20, Similarity: 8},
	}

	out := Rank(indexed, nil, 10, 5)
	if len(out) != 1 || out[0].VariationID != 3 {
		t.Fatalf("got %+v, want only variation 3", out)
	}
}

func TestRankDedupsByProduct(t *testing.T) {
	indexed := []Candidate{
		{VariationID: 2, ProductID: 20, Similarity: 9},
		{VariationID: 3, ProductID: 20, Similarity: 7}, // same product, lower similarity
		{VariationID: 4, ProductID: 30, Similarity: 5},
	}

	out := Rank(indexed, nil, 1, 5)
	if len(out) != 2 {
		t.Fatalf("got %d results, want 2", len(out))
	}
	if out[0].VariationID != 2 {
		t.Errorf("kept variation %d for product 20, want the higher-similarity 2", out[0].VariationID)
	}
}

func TestRankMergesPoolsBySimilarity(t *testing.T) {
	indexed := []Candidate{
		{VariationID: 2, ProductID: 20, Similarity: 5},
	}
	fresh := []Candidate{
		{VariationID: 3, ProductID: 30, Similarity: 8},
	}

	out := Rank(indexed, fresh, 1, 5)
	if len(out) != 2 || out[0].VariationID != 3 || out[1].VariationID != 2 {
		t.Fatalf("merge order wrong: %+v", out)
	}
}

func TestRankTruncatesToK(t *testing.T) {
	var indexed []Candidate
	for i := uint64(2); i < 30; i++ {
		indexed = append(indexed, Candidate{VariationID: i, ProductID: i * 100, Similarity: float64(100 - i)})
	}

	out := Rank(indexed, nil, 1, 10)
	if len(out) != 10 {
		t.Errorf("got %d results, want 10", len(out))
	}
}

func TestRankShortListIsValid(t *testing.T) {
	out := Rank([]Candidate{{VariationID: 2, ProductID: 20, Similarity: 1}}, nil, 1, 10)
	if len(out) != 1 {
		t.Errorf("got %d results, want 1 (fewer than k is fine)", len(out))
	}

	if out := Rank(nil, nil, 1, 10); len(out) != 0 {
		t.Errorf("empty pools: got %d results, want 0", len(out))
	}
}

func TestRankTiesKeepPoolOrder(t *testing.T) {
	indexed := []Candidate{{VariationID: 2, ProductID: 20, Similarity: 5}}
	fresh := []Candidate{{VariationID: 3, ProductID: 30, Similarity: 5}}

	for i := 0; i < 10; i++ {
		out := Rank(indexed, fresh, 1, 5)
		if len(out) != 2 || out[0].VariationID != 2 || out[1].VariationID != 3 {
			t.Fatalf("iteration %d: tie order changed: %+v", i, out)
		}
	}
}
