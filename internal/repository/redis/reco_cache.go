package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"laptopMart/domain"

	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("recommendation cache miss")

// RecommendationCache keeps final recommendation lists for a short TTL.
// Purely an optimization: a miss, an expired entry, or a Redis outage all
// fall through to the full pipeline.
type RecommendationCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRecommendationCache(client *redis.Client, ttl time.Duration) *RecommendationCache {
	return &RecommendationCache{
		client: client,
		ttl:    ttl,
	}
}

func cacheKey(variationID uint64) string {
	return fmt.Sprintf("recs:variation:%d", variationID)
}

func (r *RecommendationCache) Get(ctx context.Context, variationID uint64) ([]domain.Recommendation, error) {
	val, err := r.client.Get(ctx, cacheKey(variationID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get recommendations from Redis: %w", err)
	}

	var recs []domain.Recommendation
	if err := json.Unmarshal([]byte(val), &recs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached recommendations: %w", err)
	}

	return recs, nil
}

func (r *RecommendationCache) Set(ctx context.Context, variationID uint64, recs []domain.Recommendation) error {
	jsonData, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	if err := r.client.Set(ctx, cacheKey(variationID), jsonData, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store recommendations in Redis: %w", err)
	}

	return nil
}
