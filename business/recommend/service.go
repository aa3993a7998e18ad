package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"laptopMart/business/benchmark"
	"laptopMart/business/performance"
	"laptopMart/domain"
	"laptopMart/pkg/logger"
	"laptopMart/pkg/metrics"
)

// ErrIndexNotReady means no feature index has been installed yet.
var ErrIndexNotReady = errors.New("feature index not ready")

// ---- Repository interfaces ----

type CatalogRepository interface {
	// FindVariation returns a single available variation joined with its
	// product, or domain.ErrVariationNotFound.
	FindVariation(ctx context.Context, variationID uint64) (domain.CatalogItem, error)
	// FindFresh returns available variations modified within the window,
	// most recent first, capped at limit, excluding the given ids.
	FindFresh(ctx context.Context, windowDays, limit int, exclude []uint64) ([]domain.CatalogItem, error)
	// FindAllAvailable returns every available variation, for index builds.
	FindAllAvailable(ctx context.Context) ([]domain.CatalogItem, error)
}

// RecommendationCache is an optional short-TTL response cache. Any error is
// treated as a miss.
type RecommendationCache interface {
	Get(ctx context.Context, variationID uint64) ([]domain.Recommendation, error)
	Set(ctx context.Context, variationID uint64, recs []domain.Recommendation) error
}

// ---- Usecase / Service ----

type Service struct {
	catalogRepo CatalogRepository
	cache       RecommendationCache
	scorer      *performance.Scorer
	matcher     *benchmark.Matcher
	blender     *Blender
	builder     *Builder
	params      Params

	index atomic.Pointer[FeatureIndex]
}

func NewService(
	catalogRepo CatalogRepository,
	cache RecommendationCache,
	scorer *performance.Scorer,
	matcher *benchmark.Matcher,
	params Params,
) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		cache:       cache,
		scorer:      scorer,
		matcher:     matcher,
		blender:     NewBlender(scorer),
		builder:     NewBuilder(scorer),
		params:      params.Normalize(),
	}
}

// SetIndex installs a snapshot. In-flight requests keep whichever snapshot
// they already loaded.
func (s *Service) SetIndex(ix *FeatureIndex) {
	s.index.Store(ix)
}

// Rebuild builds a new index from the catalog store and swaps it in.
func (s *Service) Rebuild(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	items, err := s.catalogRepo.FindAllAvailable(ctx)
	if err != nil {
		return 0, fmt.Errorf("load catalog for index build: %w", err)
	}

	ix := s.builder.Build(items, time.Now())
	s.SetIndex(ix)

	logger.Info("feature index rebuilt", "items", ix.Len())

	return ix.Len(), nil
}

// Recommend returns the top-K variations most similar to the query
// variation. The only hard failure is an unresolvable query item; a failed
// fresh fetch degrades to indexed-only results.
func (s *Service) Recommend(ctx context.Context, variationID uint64) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	ix := s.index.Load()
	if ix == nil {
		return nil, ErrIndexNotReady
	}

	if s.cache != nil {
		if recs, err := s.cache.Get(ctx, variationID); err == nil && recs != nil {
			metrics.RecommendCacheHits.Inc()
			return recs, nil
		}
	}

	// 1) resolve the query point: indexed read or cold-start fetch+score
	queryPrice, queryPerf, queryProductID, err := s.resolveQuery(ctx, ix, variationID)
	if err != nil {
		return nil, err
	}

	qp, qf := ix.Scaler.Transform(queryPrice, queryPerf)
	queryScaled := [2]float64{qp, qf}

	// 2) indexed candidates
	indexed := SearchIndex(ix, queryScaled, queryPrice, variationID, s.params)

	// 3) fresh candidates, degraded to none on fetch failure
	fresh := s.loadFresh(ctx, ix, variationID)
	freshCands := s.blender.Blend(queryScaled, queryPrice, fresh, ix.Scaler, s.params, time.Now())

	// 4) merge, dedup by product, top-K
	ranked := Rank(indexed, freshCands, queryProductID, s.params.TopK)

	tid := TraceIDFromContext(ctx)
	logger.Debug("recommend",
		"trace_id", tid,
		"variation_id", variationID,
		"indexed_candidates", len(indexed),
		"fresh_candidates", len(freshCands),
		"results", len(ranked),
	)

	recs := make([]domain.Recommendation, 0, len(ranked))
	for _, c := range ranked {
		recs = append(recs, domain.Recommendation{
			VariationID:      c.VariationID,
			ProductID:        c.ProductID,
			ProductName:      c.ProductName,
			Price:            c.Price,
			PerformanceScore: c.PerformanceScore,
			CPUSource:        c.CPUSource,
			GPUSource:        c.GPUSource,
			ScoreSource:      scoreSourceLabel(c),
			Source:           c.Source,
		})
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, variationID, recs); err != nil {
			logger.Warn("failed to cache recommendations", "variation_id", variationID, "error", err)
		}
	}

	return recs, nil
}

// resolveQuery reads the query point from the index, or falls back to a
// live fetch scored on the fly. A fetch failure of any kind maps to
// not-found: without the query item there is nothing to rank against.
func (s *Service) resolveQuery(ctx context.Context, ix *FeatureIndex, variationID uint64) (price, perf float64, productID uint64, err error) {
	if pos, ok := ix.Position(variationID); ok {
		it := ix.Items[pos]
		return it.Price, it.PerformanceScore, it.ProductID, nil
	}

	item, err := s.catalogRepo.FindVariation(ctx, variationID)
	if err != nil {
		if !errors.Is(err, domain.ErrVariationNotFound) {
			logger.Warn("cold-start fetch failed", "variation_id", variationID, "error", err)
		}
		return 0, 0, 0, domain.ErrVariationNotFound
	}

	res := s.scorer.Score(item)

	return item.Price, res.Score, item.ProductID, nil
}

// loadFresh fetches the recency window and drops anything the index already
// covers, so the recency boost cannot double-count an indexed item.
func (s *Service) loadFresh(ctx context.Context, ix *FeatureIndex, queryVariationID uint64) []domain.CatalogItem {
	rows, err := s.catalogRepo.FindFresh(ctx, s.params.FreshWindowDays, s.params.FreshLimit, []uint64{queryVariationID})
	if err != nil {
		metrics.FreshFetchDegraded.Inc()
		logger.Warn("fresh fetch failed, serving indexed-only", "error", err)
		return nil
	}

	out := rows[:0]
	for _, r := range rows {
		if ix.Contains(r.VariationID) {
			continue
		}
		out = append(out, r)
	}

	return out
}

func scoreSourceLabel(c Candidate) string {
	if c.Source == domain.SourceFresh {
		if c.CPUSource == domain.ScoreSourceBenchmark || c.GPUSource == domain.ScoreSourceBenchmark {
			return "fresh:benchmark"
		}
		return "fresh:rule"
	}
	return fmt.Sprintf("cpu:%s,gpu:%s", c.CPUSource, c.GPUSource)
}

// Health reports liveness diagnostics for the loaded snapshot.
func (s *Service) Health() domain.RecommendHealth {
	h := domain.RecommendHealth{
		UseBenchmark: s.matcher != nil && s.matcher.Enabled(),
	}
	if s.matcher != nil {
		h.CPUEntries = s.matcher.TableLen(benchmark.DeviceCPU)
		h.GPUEntries = s.matcher.TableLen(benchmark.DeviceGPU)
	}

	if ix := s.index.Load(); ix != nil {
		h.Items = ix.Len()
		h.IndexRows = ix.Len()
		h.IndexCols = 2
		if !ix.BuiltAt.IsZero() {
			h.BuiltAt = ix.BuiltAt.UTC().Format(time.RFC3339)
		}
	}

	return h
}
