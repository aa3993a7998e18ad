package benchmark

import "sync"

type lookupResult struct {
	raw  float64
	kind MatchKind
}

// lookupCache memoizes name lookups, including misses. It is the only
// mutable structure shared across requests; losing entries only costs a
// re-walk of the table, never a different result. When full it drops the
// whole generation rather than tracking per-entry age.
type lookupCache struct {
	mu      sync.RWMutex
	maxSize int
	entries map[string]lookupResult
}

func newLookupCache(maxSize int) *lookupCache {
	return &lookupCache{
		maxSize: maxSize,
		entries: make(map[string]lookupResult),
	}
}

func (c *lookupCache) get(key string) (lookupResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	res, ok := c.entries[key]
	return res, ok
}

func (c *lookupCache) put(key string, res lookupResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxSize {
		c.entries = make(map[string]lookupResult)
	}
	c.entries[key] = res
}

func (c *lookupCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
