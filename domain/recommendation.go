package domain

import "errors"

// ErrVariationNotFound means the query variation exists neither in the
// feature index nor in the catalog store. It is the only hard failure the
// recommendation pipeline surfaces.
var ErrVariationNotFound = errors.New("variation not found")

// Candidate pool provenance.
const (
	SourceIndexed = "indexed"
	SourceFresh   = "fresh"
)

// CPU/GPU score provenance.
const (
	ScoreSourceBenchmark = "benchmark"
	ScoreSourceRule      = "rule"
)

type Recommendation struct {
	VariationID      uint64  `json:"variation_id"`
	ProductID        uint64  `json:"product_id"`
	ProductName      string  `json:"product_name"`
	Price            float64 `json:"price"`
	PerformanceScore float64 `json:"performance_score"`
	CPUSource        string  `json:"cpu_source"`
	GPUSource        string  `json:"gpu_source"`
	ScoreSource      string  `json:"score_source"`
	Source           string  `json:"source"`
}

type RecommendHealth struct {
	Items        int    `json:"items"`
	IndexRows    int    `json:"index_rows"`
	IndexCols    int    `json:"index_cols"`
	UseBenchmark bool   `json:"use_bench"`
	CPUEntries   int    `json:"cpu_bench_entries"`
	GPUEntries   int    `json:"gpu_bench_entries"`
	BuiltAt      string `json:"built_at,omitempty"`
}
