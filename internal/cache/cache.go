// Package cache provides an optional Redis-backed read-through cache for
// conversational replies. Shopping responses are never cached; they are
// computed locally from the in-memory catalog and cost nothing to recompute.
package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/avabot/assistant/internal/version"
)

const replyCachePrefix = "chatcache"

// ResponseCache stores completion-service replies keyed by a versioned hash
// of the user query. All Redis errors degrade to cache misses; the cache is
// an optimization, never a dependency of correctness.
type ResponseCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to Redis and verifies the connection with a ping.
func New(addr string, ttl time.Duration) (*ResponseCache, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("could not connect to Redis: %w", err)
	}
	return &ResponseCache{rdb: rdb, ttl: ttl}, nil
}

// Check looks for a cached reply for the query.
func (c *ResponseCache) Check(ctx context.Context, query string) (string, bool) {
	key := version.GenerateVersionedCacheKey(replyCachePrefix, query)
	val, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	} else if err != nil {
		log.Printf("Redis GET error for reply cache: %v", err)
		return "", false
	}
	return val, true
}

// Set stores a reply for the query. Failures are logged and ignored.
func (c *ResponseCache) Set(ctx context.Context, query, reply string) {
	key := version.GenerateVersionedCacheKey(replyCachePrefix, query)
	if err := c.rdb.Set(ctx, key, reply, c.ttl).Err(); err != nil {
		log.Printf("Redis SET error for reply cache: %v", err)
	}
}
