package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/chefboard/backend/internal/dashboard"
	"github.com/chefboard/backend/internal/types"
)

const (
	chefCandidatesCacheKey = "chefboard:dashboard:chef_candidates"
	recipeFeedCacheKey     = "chefboard:dashboard:recipe_feed"
)

// DashboardCacheTTL bounds how stale the shared sections may get.
const DashboardCacheTTL = time.Minute

// CachedDashboardStore wraps a dashboard.Store and serves the two
// cross-user queries (chef candidates and the recipe feed) from Redis
// with a short TTL. Per-user queries pass through untouched. Cache
// failures fall back to the inner store and are never surfaced.
type CachedDashboardStore struct {
	inner dashboard.Store
	redis *redis.Client
	ttl   time.Duration
}

// Ensure CachedDashboardStore implements dashboard.Store
var _ dashboard.Store = (*CachedDashboardStore)(nil)

// NewCachedDashboardStore creates a new CachedDashboardStore instance
func NewCachedDashboardStore(inner dashboard.Store, redisClient *redis.Client, ttl time.Duration) *CachedDashboardStore {
	return &CachedDashboardStore{
		inner: inner,
		redis: redisClient,
		ttl:   ttl,
	}
}

func (c *CachedDashboardStore) GetProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error) {
	return c.inner.GetProfile(ctx, userID)
}

func (c *CachedDashboardStore) GetUserStats(ctx context.Context, userID uuid.UUID) (types.UserStats, error) {
	return c.inner.GetUserStats(ctx, userID)
}

func (c *CachedDashboardStore) GetOwnRecipes(ctx context.Context, userID uuid.UUID) ([]types.RawRecipeRecord, error) {
	return c.inner.GetOwnRecipes(ctx, userID)
}

func (c *CachedDashboardStore) GetSavedRecipes(ctx context.Context, userID uuid.UUID) ([]types.RawRecipeRecord, error) {
	return c.inner.GetSavedRecipes(ctx, userID)
}

func (c *CachedDashboardStore) GetChefCandidates(ctx context.Context) ([]types.ChefCandidate, error) {
	var cached []types.ChefCandidate
	if c.readCache(ctx, chefCandidatesCacheKey, &cached) {
		return cached, nil
	}

	candidates, err := c.inner.GetChefCandidates(ctx)
	if err != nil {
		return nil, err
	}
	c.writeCache(ctx, chefCandidatesCacheKey, candidates)
	return candidates, nil
}

func (c *CachedDashboardStore) GetAllRecipes(ctx context.Context) ([]types.RawRecipeRecord, error) {
	var cached []types.RawRecipeRecord
	if c.readCache(ctx, recipeFeedCacheKey, &cached) {
		return cached, nil
	}

	feed, err := c.inner.GetAllRecipes(ctx)
	if err != nil {
		return nil, err
	}
	c.writeCache(ctx, recipeFeedCacheKey, feed)
	return feed, nil
}

func (c *CachedDashboardStore) readCache(ctx context.Context, key string, out interface{}) bool {
	if c.redis == nil {
		return false
	}
	payload, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[DashboardCache] read %s failed: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(payload, out); err != nil {
		log.Printf("[DashboardCache] decode %s failed: %v", key, err)
		return false
	}
	return true
}

func (c *CachedDashboardStore) writeCache(ctx context.Context, key string, value interface{}) {
	if c.redis == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		log.Printf("[DashboardCache] encode %s failed: %v", key, err)
		return
	}
	if err := c.redis.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		log.Printf("[DashboardCache] write %s failed: %v", key, err)
	}
}
