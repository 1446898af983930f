package cache

import (
	"context"
	"encoding/json"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// memoryCleanupInterval is how often expired entries are purged.
const memoryCleanupInterval = 5 * time.Minute

// Memory is an in-process Cache used when no Redis address is configured.
// Values are stored JSON-encoded so callers get copies, as with Redis.
type Memory struct {
	items *gocache.Cache
}

// NewMemory creates an empty in-process cache.
func NewMemory() *Memory {
	return &Memory{items: gocache.New(gocache.NoExpiration, memoryCleanupInterval)}
}

func (m *Memory) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	v, ok := m.items.Get(key)
	if !ok {
		return false, nil
	}
	b, ok := v.([]byte)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores value for ttl. A non-positive ttl keeps the entry until it
// is deleted.
func (m *Memory) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	m.items.Set(key, b, ttl)
	return nil
}

func (m *Memory) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		m.items.Delete(k)
	}
	return nil
}

func (m *Memory) Close() error {
	m.items.Flush()
	return nil
}
