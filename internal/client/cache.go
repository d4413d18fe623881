package client

import (
	"sync"

	"github.com/odolbodol/adboard/internal/domain"
)

// resourceCache caches collections by resource name. Entries hand out
// copies so callers cannot mutate cached data.
type resourceCache struct {
	mu      sync.Mutex
	entries map[string][]domain.Ad
}

func newResourceCache() *resourceCache {
	return &resourceCache{
		entries: make(map[string][]domain.Ad),
	}
}

func (c *resourceCache) get(key string) ([]domain.Ad, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ads, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	return c.copyOf(ads), true
}

func (c *resourceCache) put(key string, ads []domain.Ad) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = c.copyOf(ads)
}

func (c *resourceCache) invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

func (c *resourceCache) copyOf(ads []domain.Ad) []domain.Ad {
	copied := make([]domain.Ad, len(ads))
	copy(copied, ads)

	return copied
}
