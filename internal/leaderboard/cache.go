package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/GlebRadaev/codequiz/internal/domain"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "codequiz:rankings:"

// Cache stores ranking snapshots by key.
type Cache interface {
	Get(ctx context.Context, key string) ([]domain.RankingEntry, bool, error)
	Set(ctx context.Context, key string, entries []domain.RankingEntry, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// RedisCache keeps snapshots as JSON strings with an expiry.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]domain.RankingEntry, bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var entries []domain.RankingEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false, err
	}
	return entries, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, entries []domain.RankingEntry, ttl time.Duration) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, keyPrefix+key, raw, ttl).Err()
}

func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = keyPrefix + k
	}
	return c.client.Del(ctx, full...).Err()
}

type memoryItem struct {
	entries []domain.RankingEntry
	expires time.Time
}

// MemoryCache is the single-instance fallback used when no Redis is configured.
type MemoryCache struct {
	mu    sync.RWMutex
	items map[string]memoryItem
	now   func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		items: make(map[string]memoryItem),
		now:   time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]domain.RankingEntry, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[key]
	if !ok || (!item.expires.IsZero() && !c.now().Before(item.expires)) {
		return nil, false, nil
	}
	return item.entries, true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, entries []domain.RankingEntry, ttl time.Duration) error {
	item := memoryItem{entries: entries}
	if ttl > 0 {
		item.expires = c.now().Add(ttl)
	}
	c.mu.Lock()
	c.items[key] = item
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	for _, k := range keys {
		delete(c.items, k)
	}
	c.mu.Unlock()
	return nil
}
