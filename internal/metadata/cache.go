// Package metadata provides the in-process movie details cache and the
// service that ties it to the TMDB client.
package metadata

import (
	"container/list"
	"context"
	"slices"
	"sync"

	"github.com/moviethruster/thruster-server/internal/domain"
)

// Fetcher fetches details for a batch of movie ids. Implemented by
// tmdb.Client.
type Fetcher interface {
	FetchBatch(ctx context.Context, ids []int) (map[int]domain.MovieDetails, error)
}

// Cache memoizes fetched movie details for the process lifetime.
//
// Entries never expire and are never refreshed: a given id is fetched at
// most once per cache lifetime, fallback details included. With a
// capacity of 0 the cache is unbounded; a positive capacity evicts the
// least recently used entry on overflow.
//
// Consistency is deliberately weak across overlapping calls: two
// GetOrFetch calls racing on the same missing id may both fetch it. The
// second write simply replaces the first.
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  map[int]*list.Element
	order    *list.List // front = most recently used
}

type cacheEntry struct {
	id      int
	details domain.MovieDetails
}

// NewCache creates a cache. capacity 0 means unbounded.
func NewCache(capacity int) *Cache {
	if capacity < 0 {
		capacity = 0
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[int]*list.Element),
		order:    list.New(),
	}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Get returns the cached details for an id, if present.
func (c *Cache) Get(id int) (domain.MovieDetails, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[id]
	if !ok {
		return domain.MovieDetails{}, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).details, true
}

// GetOrFetch returns details for all ids, fetching the distinct missing
// ones through fetcher in a single batch call and caching the result.
// Duplicate ids within one call coalesce to a single map entry and a
// single fetch.
func (c *Cache) GetOrFetch(ctx context.Context, ids []int, fetcher Fetcher) (map[int]domain.MovieDetails, error) {
	results := make(map[int]domain.MovieDetails, len(ids))
	var missing []int

	c.mu.Lock()
	for _, id := range ids {
		if _, done := results[id]; done {
			continue
		}
		if elem, ok := c.entries[id]; ok {
			c.order.MoveToFront(elem)
			results[id] = elem.Value.(*cacheEntry).details
			continue
		}
		if !slices.Contains(missing, id) {
			missing = append(missing, id)
		}
	}
	c.mu.Unlock()

	if len(missing) == 0 {
		return results, nil
	}

	// Fetch outside the lock so slow upstream calls don't serialize
	// cache reads. This is the window where overlapping calls may
	// double-fetch an id.
	fetched, err := fetcher.FetchBatch(ctx, missing)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	for _, id := range missing {
		details, ok := fetched[id]
		if !ok {
			continue
		}
		c.put(id, details)
		results[id] = details
	}
	c.mu.Unlock()

	return results, nil
}

// put stores an entry, evicting the LRU entry if over capacity.
// Caller must hold c.mu.
func (c *Cache) put(id int, details domain.MovieDetails) {
	if elem, ok := c.entries[id]; ok {
		elem.Value.(*cacheEntry).details = details
		c.order.MoveToFront(elem)
		return
	}

	elem := c.order.PushFront(&cacheEntry{id: id, details: details})
	c.entries[id] = elem

	if c.capacity > 0 && len(c.entries) > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).id)
		}
	}
}
