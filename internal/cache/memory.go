package cache

import (
	"sync"

	"techfest/internal/domain"
)

// memoryCache is a process-local string key-value store. It fronts the object
// storage tier so catalog reads don't hit the network on every request.
type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemory returns an empty in-memory cache.
func NewMemory() domain.Cache {
	return &memoryCache{entries: make(map[string]string)}
}

func (c *memoryCache) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *memoryCache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

func (c *memoryCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}
