// Package resultcache is a bounded in-memory cache for finished translation
// results. Entries expire after a TTL and, at capacity, the oldest-inserted
// entry is evicted regardless of access recency.
package resultcache

import (
	"fmt"
	"sync"
	"time"

	"github.com/lingobridge/translator-backend/internal/domain"
)

const keyTextPrefixLen = 100

type entry struct {
	result    domain.TranslationResult
	expiresAt time.Time
}

// Cache stores translation results keyed by language pair and input text.
// Safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	maxSize int
	entries map[string]entry
	// order is the insertion queue driving eviction. A re-Set of an
	// existing key keeps its original queue position.
	order []string

	now func() time.Time
}

func New(ttl time.Duration, maxSize int) *Cache {
	return &Cache{
		ttl:     ttl,
		maxSize: maxSize,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Key builds the cache key for a request. Only the first 100 characters of
// the text participate, with the full length appended to keep long texts
// that share a prefix apart. Truncation is by rune so a multi-byte
// character is never split.
func Key(source, target, text string) string {
	prefix := text
	count := 0
	for i := range text {
		if count == keyTextPrefixLen {
			prefix = text[:i]
			break
		}
		count++
	}
	return fmt.Sprintf("%s:%s:%s:%d", source, target, prefix, len(text))
}

// Get returns the cached result for the key. An expired entry counts as a
// miss and is dropped.
func (c *Cache) Get(key string) (domain.TranslationResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return domain.TranslationResult{}, false
	}
	if c.now().After(e.expiresAt) {
		c.remove(key)
		return domain.TranslationResult{}, false
	}
	return e.result, true
}

// Set stores a result, evicting the oldest-inserted entry when the cache is
// full.
func (c *Cache) Set(key string, result domain.TranslationResult) {
	if c.maxSize <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		if len(c.entries) >= c.maxSize {
			c.evictOldest()
		}
		c.order = append(c.order, key)
	}
	c.entries[key] = entry{result: result, expiresAt: c.now().Add(c.ttl)}
}

// Len reports the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
	c.order = c.order[:0]
}

func (c *Cache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}

func (c *Cache) remove(key string) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
