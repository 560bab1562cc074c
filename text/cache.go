package text

import (
	"cmp"
	"slices"
	"sync"
)

// runCacheLimit is the soft limit of shaped runs kept per font source.
// A chart draws a few dozen distinct strings.
const runCacheLimit = 256

// runKey identifies a flattened string in the run cache.
type runKey struct {
	text string
	size float64
}

// runCache is a thread-safe LRU of flattened runs with a soft limit.
// When it grows past the limit the least recently used quarter is evicted.
type runCache struct {
	mu        sync.Mutex
	entries   map[runKey]*runEntry
	softLimit int
	tick      int64 // monotonic access counter
}

type runEntry struct {
	run   inkRun
	atime int64
}

func newRunCache(softLimit int) *runCache {
	return &runCache{
		entries:   make(map[runKey]*runEntry),
		softLimit: softLimit,
	}
}

// getOrCreate returns the cached run for key or builds it with create.
// create runs under the lock, so a run is never built twice.
func (c *runCache) getOrCreate(key runKey, create func() inkRun) inkRun {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if e, ok := c.entries[key]; ok {
		e.atime = c.tick
		return e.run
	}

	r := create()
	c.entries[key] = &runEntry{run: r, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
	return r
}

func (c *runCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evictOldest trims the cache to three quarters of the soft limit.
// Caller must hold c.mu.
func (c *runCache) evictOldest() {
	target := max(c.softLimit*3/4, 1)
	n := len(c.entries) - target
	if n <= 0 {
		return
	}

	type aged struct {
		key   runKey
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{k, e.atime})
	}
	slices.SortFunc(all, func(a, b aged) int {
		return cmp.Compare(a.atime, b.atime)
	})
	for _, a := range all[:n] {
		delete(c.entries, a.key)
	}
}
