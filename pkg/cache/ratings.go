package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/catalog-api/pkg/logger"
)

// DefaultRatingTTL bounds how long a rating may live in the cache. Entries are
// also invalidated explicitly after every recomputation, so the TTL only
// matters when an invalidation is lost.
const DefaultRatingTTL = 5 * time.Minute

// RatingEntry is the cached representation of a product rating
type RatingEntry struct {
	SKU           string  `json:"sku"`
	AverageRating string  `json:"average_rating"`
	RatingsCount  int     `json:"ratings_count"`
	CachedAt      float64 `json:"cached_at"`
}

// RatingCache is a read-through Redis cache for product ratings.
// All methods are safe to call with a nil client; they degrade to misses.
type RatingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRatingCache creates a rating cache backed by the given Redis client
func NewRatingCache(client *redis.Client) *RatingCache {
	return &RatingCache{client: client, ttl: DefaultRatingTTL}
}

func ratingKey(sku string) string {
	return fmt.Sprintf("rating:%s", sku)
}

// Get returns the cached rating for a sku, or nil on miss
func (c *RatingCache) Get(ctx context.Context, sku string) *RatingEntry {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := c.client.Get(ctx, ratingKey(sku)).Bytes()
	if err != nil {
		return nil
	}

	var entry RatingEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		logger.Logger.Warn().Err(err).Str("sku", sku).Msg("Dropping corrupt rating cache entry")
		c.client.Del(ctx, ratingKey(sku))
		return nil
	}

	return &entry
}

// Set stores a rating entry for a sku
func (c *RatingCache) Set(ctx context.Context, sku string, entry RatingEntry) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, ratingKey(sku), data, c.ttl).Err(); err != nil {
		logger.Logger.Warn().Err(err).Str("sku", sku).Msg("Failed to cache rating")
	}
}

// Invalidate drops the cached rating for a sku. Best effort: a failure here
// only means a stale read until the TTL expires.
func (c *RatingCache) Invalidate(ctx context.Context, sku string) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Del(ctx, ratingKey(sku)).Err(); err != nil {
		logger.Logger.Warn().Err(err).Str("sku", sku).Msg("Failed to invalidate rating cache")
	}
}
