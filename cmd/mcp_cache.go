package cmd

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/ianfixes/Illuminator/internal/model"
)

// parseCacheEntry holds a parsed tree with its timestamp.
type parseCacheEntry struct {
	root      *model.ElementNode
	timestamp time.Time
}

// parseCache is a TTL-based cache of parsed element trees keyed by dump text
// hash, so repeated MCP tool calls on the same dump skip re-parsing.
type parseCache struct {
	mu      sync.Mutex
	entries map[string]parseCacheEntry
	ttl     time.Duration
}

// newParseCache creates a new cache. A ttl of 0 disables caching.
func newParseCache(ttl time.Duration) *parseCache {
	return &parseCache{
		entries: make(map[string]parseCacheEntry),
		ttl:     ttl,
	}
}

// parse returns a cached tree if within TTL, otherwise parses fresh.
// Trees are read-only after construction, so sharing one across calls is safe.
func (c *parseCache) parse(text string) (*model.ElementNode, error) {
	if c.ttl == 0 {
		return model.ParseDescription(text)
	}

	key := fmt.Sprintf("%x", sha256.Sum256([]byte(text)))

	c.mu.Lock()
	if entry, ok := c.entries[key]; ok && time.Since(entry.timestamp) < c.ttl {
		root := entry.root
		c.mu.Unlock()
		return root, nil
	}
	c.mu.Unlock()

	root, err := model.ParseDescription(text)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.pruneExpired()
	c.entries[key] = parseCacheEntry{root: root, timestamp: time.Now()}
	c.mu.Unlock()

	return root, nil
}

// pruneExpired drops entries past their TTL. Caller must hold the lock.
func (c *parseCache) pruneExpired() {
	for k, entry := range c.entries {
		if time.Since(entry.timestamp) >= c.ttl {
			delete(c.entries, k)
		}
	}
}

// invalidateAll clears the entire cache.
func (c *parseCache) invalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]parseCacheEntry)
}
