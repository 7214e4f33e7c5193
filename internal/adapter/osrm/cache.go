package osrm

import (
	"context"
	"fmt"
	"sync"

	"github.com/couchcryptid/flood-risk-service/internal/domain"
	"github.com/couchcryptid/flood-risk-service/internal/observability"
)

// CachedPlanner wraps a RoutePlanner with an in-memory LRU cache. Landmark
// pairs repeat constantly, so repeated queries skip the public router.
type CachedPlanner struct {
	inner   domain.RoutePlanner
	cache   *lruCache
	metrics *observability.Metrics
}

// NewCachedPlanner creates a cache decorator around a route planner.
func NewCachedPlanner(inner domain.RoutePlanner, maxEntries int, metrics *observability.Metrics) *CachedPlanner {
	return &CachedPlanner{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		metrics: metrics,
	}
}

func (c *CachedPlanner) Plan(ctx context.Context, start, end domain.Geo) (domain.RoutePlan, error) {
	key := fmt.Sprintf("%.6f,%.6f|%.6f,%.6f", start.Lat, start.Lng, end.Lat, end.Lng)
	if plan, ok := c.cache.get(key); ok {
		c.countLookup("hit")
		return plan, nil
	}
	c.countLookup("miss")

	plan, err := c.inner.Plan(ctx, start, end)
	if err != nil {
		return plan, err
	}
	// Only cache usable routes so transient failures can be retried.
	if len(plan.Points) > 0 {
		c.cache.put(key, plan)
	}
	return plan, nil
}

func (c *CachedPlanner) countLookup(result string) {
	if c.metrics != nil {
		c.metrics.RouteCacheLookups.WithLabelValues(result).Inc()
	}
}

// lruCache is a simple thread-safe LRU cache for route plans.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value domain.RoutePlan
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (domain.RoutePlan, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return domain.RoutePlan{}, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value domain.RoutePlan) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
