package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the Recommend HTTP handler
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_latency_seconds",
		Help:    "Latency of the recommendations handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation requests served, by outcome
	RecommendRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recommend_requests_total",
		Help: "Total number of recommend requests by status",
	}, []string{"status"})

	// Cache hits on the Redis recommendation response cache
	RecommendCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_cache_hits_total",
		Help: "Recommendation responses served from the Redis cache",
	})

	// Fresh-pool fetches that failed and degraded to indexed-only results
	FreshFetchDegraded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_fresh_fetch_degraded_total",
		Help: "Requests that proceeded without a fresh candidate pool",
	})

	// Benchmark lookups by match kind (exact, normalized, contains, fuzzy, none)
	BenchmarkLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "benchmark_lookups_total",
		Help: "Benchmark table lookups by device kind and match kind",
	}, []string{"device", "match"})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
		RecommendCacheHits,
		FreshFetchDegraded,
		BenchmarkLookups,
	)
}
