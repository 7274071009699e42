package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory is an in-process cache backed by go-cache.
type Memory struct {
	c *gocache.Cache
}

// NewMemory creates a cache whose entries default to ttl and are swept every cleanup.
func NewMemory(ttl, cleanup time.Duration) *Memory {
	return &Memory{c: gocache.New(ttl, cleanup)}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, ok := m.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, ok := v.([]byte)
	return b, ok, nil
}

func (m *Memory) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.c.Set(key, value, ttl)
	return nil
}

func (m *Memory) Ping(ctx context.Context) error { return nil }

// Len returns the number of entries, including expired ones not yet swept.
func (m *Memory) Len() int { return m.c.ItemCount() }
