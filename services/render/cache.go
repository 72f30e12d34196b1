package render

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const cacheKeyPrefix = "render:"

// Cache stores published render output in Redis, keyed by scope (page ID or
// blocks-only parent ID) and language. Draft/preview output is never cached.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

func cacheKey(scope, language string) string {
	return fmt.Sprintf("%s%s:%s", cacheKeyPrefix, scope, language)
}

// Get returns the cached blocks for a scope and language, or ok=false.
func (c *Cache) Get(ctx context.Context, scope, language string) ([]RenderedBlock, bool) {
	raw, err := c.rdb.Get(ctx, cacheKey(scope, language)).Bytes()
	if err != nil {
		return nil, false
	}
	var blocks []RenderedBlock
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return nil, false
	}
	return blocks, true
}

// Set stores render output for a scope and language.
func (c *Cache) Set(ctx context.Context, scope, language string, blocks []RenderedBlock) error {
	raw, err := json.Marshal(blocks)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, cacheKey(scope, language), raw, c.ttl).Err()
}

// Invalidate drops every cached language variant of a scope.
func (c *Cache) Invalidate(ctx context.Context, scope string) error {
	pattern := cacheKeyPrefix + scope + ":*"
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
