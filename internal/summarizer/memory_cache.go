package summarizer

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// MemoryCache is a bounded LRU of summaries with per-entry expiry.
type MemoryCache struct {
	mu         sync.Mutex
	entries    map[string]*list.Element
	order      *list.List
	maxEntries int
}

type memoryCacheEntry struct {
	key       string
	summary   string
	expiresAt time.Time
}

// NewMemoryCache returns nil when maxEntries is not positive; a nil
// *MemoryCache misses every lookup.
func NewMemoryCache(maxEntries int) *MemoryCache {
	if maxEntries <= 0 {
		return nil
	}

	return &MemoryCache{
		entries:    make(map[string]*list.Element, maxEntries),
		order:      list.New(),
		maxEntries: maxEntries,
	}
}

func (c *MemoryCache) GetSummary(_ context.Context, key string, now time.Time) (string, bool, error) {
	if c == nil || key == "" {
		return "", false, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return "", false, nil
	}

	entry, ok := elem.Value.(*memoryCacheEntry)
	if !ok {
		return "", false, nil
	}

	if !now.Before(entry.expiresAt) {
		c.removeElement(elem)

		return "", false, nil
	}

	c.order.MoveToFront(elem)

	return entry.summary, true, nil
}

func (c *MemoryCache) PutSummary(
	_ context.Context,
	key string,
	summary string,
	expiresAt time.Time,
	now time.Time,
) error {
	if c == nil || key == "" || summary == "" || expiresAt.IsZero() {
		return nil
	}

	if !expiresAt.After(now) {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		entry, castOk := elem.Value.(*memoryCacheEntry)
		if !castOk {
			return nil
		}

		entry.summary = summary
		entry.expiresAt = expiresAt
		c.order.MoveToFront(elem)

		return nil
	}

	elem := c.order.PushFront(&memoryCacheEntry{
		key:       key,
		summary:   summary,
		expiresAt: expiresAt,
	})
	c.entries[key] = elem

	c.evictExpiredLocked(now)
	c.enforceSizeLimitLocked()

	return nil
}

func (c *MemoryCache) Len() int {
	if c == nil {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

func (c *MemoryCache) evictExpiredLocked(now time.Time) {
	for elem := c.order.Back(); elem != nil; {
		prev := elem.Prev()

		entry, ok := elem.Value.(*memoryCacheEntry)
		if ok && !now.Before(entry.expiresAt) {
			c.removeElement(elem)
		}
		elem = prev
	}
}

func (c *MemoryCache) enforceSizeLimitLocked() {
	for len(c.entries) > c.maxEntries {
		elem := c.order.Back()
		if elem == nil {
			return
		}
		c.removeElement(elem)
	}
}

func (c *MemoryCache) removeElement(elem *list.Element) {
	entry, ok := elem.Value.(*memoryCacheEntry)
	if !ok {
		return
	}

	delete(c.entries, entry.key)
	c.order.Remove(elem)
}
