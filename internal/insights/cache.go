package insights

import (
	"sync"
	"time"

	"github.com/Shaolin23/adence-ai/internal/types"
)

// cachedInsight is a single cache entry keyed by feature fingerprint.
type cachedInsight struct {
	key       string
	data      types.AIInsights
	createdAt time.Time
}

// insightCache is a bounded, TTL-evicting in-process map. When full, the
// oldest-inserted entry is evicted first. Entries past TTL are treated as
// misses and lazily purged. Staleness is bounded by TTL, so last-write-wins
// on concurrent inserts only costs a redundant external call.
type insightCache struct {
	mu         sync.Mutex
	entries    map[string]*cachedInsight
	order      []string
	maxEntries int
	ttl        time.Duration
	now        func() time.Time
}

func newInsightCache(maxEntries int, ttl time.Duration) *insightCache {
	return &insightCache{
		entries:    make(map[string]*cachedInsight, maxEntries),
		order:      make([]string, 0, maxEntries),
		maxEntries: maxEntries,
		ttl:        ttl,
		now:        time.Now,
	}
}

// Get returns the cached insights for key. Expired entries are purged and
// reported as misses; an entry older than TTL is never returned as a hit.
func (c *insightCache) Get(key string) (types.AIInsights, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return types.AIInsights{}, false
	}
	if c.now().Sub(entry.createdAt) > c.ttl {
		c.remove(key)
		return types.AIInsights{}, false
	}
	return entry.data, true
}

// Put inserts or refreshes an entry, evicting exactly one oldest-inserted
// entry when the cache is at capacity.
func (c *insightCache) Put(key string, data types.AIInsights) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.remove(key)
	}

	if len(c.order) >= c.maxEntries && len(c.order) > 0 {
		c.remove(c.order[0])
	}

	c.entries[key] = &cachedInsight{key: key, data: data, createdAt: c.now()}
	c.order = append(c.order, key)
}

// Len returns the current entry count.
func (c *insightCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// remove deletes an entry; callers must hold the lock.
func (c *insightCache) remove(key string) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
