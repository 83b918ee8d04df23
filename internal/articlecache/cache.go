// Package articlecache keeps a time-boxed in-memory copy of the article feed
// so repeated listings inside the staleness window cost no network call.
// Mutation helpers exist for optimistic view updates after a create or delete
// succeeds; nothing is reconciled with the server afterwards.
package articlecache

import (
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/mdd-app/mdd-go/internal/domain"
)

// DefaultTTL is the staleness window: after this long the cached feed is no
// longer trusted without a refetch.
const DefaultTTL = 5 * time.Minute

// SortOrder orders the feed by creation date.
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// Lister is the slice of the API client the cache needs.
type Lister interface {
	ListArticles(ctx context.Context) ([]domain.Article, error)
}

// Cache is safe for concurrent use. Items are stored in arrival order and
// sorted lazily on read; concurrent loads are collapsed into one fetch.
type Cache struct {
	mu        sync.Mutex
	lister    Lister
	ttl       time.Duration
	items     []domain.Article
	lastFetch time.Time
	order     SortOrder
	group     singleflight.Group
	now       func() time.Time
}

// New builds a cache over lister. A non-positive ttl means DefaultTTL. The
// initial sort order is newest first, matching the feed view.
func New(lister Lister, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		lister: lister,
		ttl:    ttl,
		order:  SortDescending,
		now:    time.Now,
	}
}

// Load returns the sorted feed. When force is false and the cache holds items
// inside the staleness window, the cached copy is returned with no network
// call; otherwise the full list is refetched and replaces the cache.
func (c *Cache) Load(ctx context.Context, force bool) ([]domain.Article, error) {
	c.mu.Lock()
	if !force && len(c.items) > 0 && !c.staleLocked() {
		out := c.sortedLocked()
		c.mu.Unlock()
		return out, nil
	}
	c.mu.Unlock()

	// Collapse concurrent refreshes into a single backend call.
	_, err, _ := c.group.Do("articles", func() (any, error) {
		items, ferr := c.lister.ListArticles(ctx)
		if ferr != nil {
			return nil, ferr
		}
		c.mu.Lock()
		c.items = items
		c.lastFetch = c.now()
		c.mu.Unlock()
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sortedLocked(), nil
}

// Stale reports whether the cache needs a refetch: never fetched, or the
// staleness window has elapsed.
func (c *Cache) Stale() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.staleLocked()
}

// Len returns the number of cached articles.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// SortOrder returns the current order.
func (c *Cache) SortOrder() SortOrder {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order
}

// SetSortOrder sets the order applied on the next read.
func (c *Cache) SetSortOrder(order SortOrder) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if order == SortAscending || order == SortDescending {
		c.order = order
	}
}

// ToggleSortOrder flips between ascending and descending.
func (c *Cache) ToggleSortOrder() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.order == SortDescending {
		c.order = SortAscending
	} else {
		c.order = SortDescending
	}
}

// Add appends an article locally after a successful create.
func (c *Cache) Add(article domain.Article) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, article)
}

// Update replaces the cached article with the same id, if present.
func (c *Cache) Update(article domain.Article) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == article.ID {
			c.items[i] = article
			return
		}
	}
}

// Remove drops the cached article with the given id, if present.
func (c *Cache) Remove(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Get returns the cached article with the given id.
func (c *Cache) Get(id int64) (domain.Article, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, a := range c.items {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Article{}, false
}

// Clear drops the cached feed and its fetch timestamp.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.lastFetch = time.Time{}
}

func (c *Cache) staleLocked() bool {
	if c.lastFetch.IsZero() {
		return true
	}
	return c.now().Sub(c.lastFetch) > c.ttl
}

// sortedLocked returns a sorted copy. The sort is stable: articles sharing a
// creation timestamp keep their arrival order through any number of toggles.
func (c *Cache) sortedLocked() []domain.Article {
	out := make([]domain.Article, len(c.items))
	copy(out, c.items)
	asc := c.order == SortAscending
	sort.SliceStable(out, func(i, j int) bool {
		if asc {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
