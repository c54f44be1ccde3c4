package data

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/OneOfOne/xxhash"
	"github.com/redis/go-redis/v9"

	"github.com/veriscan/veriscan/src/evidence"
)

const evidencePrefix = "evidence:"

// ContentHash returns a short stable hash of s, used for cache keys and for
// deduplicating scan rows.
func ContentHash(s string) string {
	return fmt.Sprintf("%016x", xxhash.ChecksumString64S(s, 0))
}

// Retriever is the evidence lookup the cache wraps.
type Retriever interface {
	Retrieve(ctx context.Context, query string) []evidence.Item
}

// CachedRetriever wraps an evidence retriever with a short-lived Redis
// cache. Cache failures degrade to a live fetch; they never fail a request.
type CachedRetriever struct {
	rdb   *redis.Client
	inner Retriever
	ttl   time.Duration
}

func NewCachedRetriever(rdb *redis.Client, inner Retriever, ttl time.Duration) *CachedRetriever {
	return &CachedRetriever{rdb: rdb, inner: inner, ttl: ttl}
}

func (c *CachedRetriever) Retrieve(ctx context.Context, query string) []evidence.Item {
	if c.rdb == nil || c.ttl <= 0 {
		return c.inner.Retrieve(ctx, query)
	}

	key := evidencePrefix + ContentHash(query)
	if raw, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var items []evidence.Item
		if json.Unmarshal(raw, &items) == nil {
			return items
		}
	}

	items := c.inner.Retrieve(ctx, query)
	if len(items) > 0 {
		if raw, err := json.Marshal(items); err == nil {
			_ = c.rdb.Set(ctx, key, raw, c.ttl).Err()
		}
	}
	return items
}
