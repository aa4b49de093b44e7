package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// Cache stores encoded values under a key for a fixed TTL.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte) error
	Delete(ctx context.Context, key string) error
}

// GetJSON decodes a cached value into out. A miss or an undecodable entry
// reports false.
func GetJSON(ctx context.Context, c Cache, key string, out any) (bool, error) {
	raw, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return false, nil
	}
	return true, nil
}

func SetJSON(ctx context.Context, c Cache, key string, val any) error {
	raw, err := json.Marshal(val)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, raw)
}

// Memory is the in-process implementation, used when no redis is configured.
type Memory struct {
	mu  sync.RWMutex
	ttl time.Duration
	m   map[string]entry
	now func() time.Time
}

type entry struct {
	val []byte
	exp time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}

	return &Memory{
		ttl: ttl,
		m:   make(map[string]entry),
		now: time.Now,
	}
}

func (c *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	now := c.now()
	c.mu.RLock()
	e, ok := c.m[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	if now.After(e.exp) {
		c.evictExpired(key, now)
		return nil, false, nil
	}

	return e.val, true, nil
}

// evictExpired re-checks under the write lock, since a Set may have refreshed
// the key after the caller dropped its read lock.
func (c *Memory) evictExpired(key string, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cur, ok := c.m[key]; ok && now.After(cur.exp) {
		delete(c.m, key)
	}
}

func (c *Memory) Set(_ context.Context, key string, val []byte) error {
	c.mu.Lock()
	c.m[key] = entry{val: val, exp: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return nil
}

func (c *Memory) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.m, key)
	c.mu.Unlock()
	return nil
}
