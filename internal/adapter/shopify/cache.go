package shopify

import (
	"sync"
	"time"
)

type cacheItem struct {
	data       []byte
	tags       []string
	expiration time.Time
}

// A tagCache keeps raw response data for a fixed TTL.
// Every entry carries tags; revalidating a tag drops all entries carrying it.
type tagCache struct {
	mu        sync.RWMutex
	items     map[string]cacheItem
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
}

func newTagCache(ttl time.Duration) *tagCache {
	return &tagCache{
		items: make(map[string]cacheItem),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (c *tagCache) get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[key]
	if !ok || c.now().After(item.expiration) {
		return nil, false
	}
	return item.data, true
}

func (c *tagCache) set(key string, data []byte, tags []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if now.Sub(c.lastSweep) > c.ttl {
		c.sweepLocked(now)
	}

	c.items[key] = cacheItem{
		data:       data,
		tags:       tags,
		expiration: now.Add(c.ttl),
	}
}

// revalidate drops every entry tagged with tag and reports how many.
func (c *tagCache) revalidate(tag string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int
	for key, item := range c.items {
		for _, t := range item.tags {
			if t == tag {
				delete(c.items, key)
				n++
				break
			}
		}
	}
	return n
}

func (c *tagCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *tagCache) sweepLocked(now time.Time) {
	for key, item := range c.items {
		if now.After(item.expiration) {
			delete(c.items, key)
		}
	}
	c.lastSweep = now
}
