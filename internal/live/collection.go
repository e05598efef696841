package live

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Item is anything a collection can hold. Ordering inside a window is
// ascending (created_at, id); the id comparison breaks timestamp ties so two
// clients always agree on the order.
type Item interface {
	ItemID() uuid.UUID
	ItemCreatedAt() time.Time
}

func itemLess(a, b Item) bool {
	at, bt := a.ItemCreatedAt(), b.ItemCreatedAt()
	if !at.Equal(bt) {
		return at.Before(bt)
	}
	return a.ItemID().String() < b.ItemID().String()
}

// PageFetcher returns up to limit rows of the keyed resource strictly older
// than before (zero before = newest page), newest first. This matches the
// shape of a "order by created_at desc limit N" repository query.
type PageFetcher[T Item] func(ctx context.Context, key uuid.UUID, before time.Time, limit int) ([]T, error)

// Collection is a locally materialized, time-ordered window over a remote
// relation for one resource key. All methods are safe for concurrent use;
// mutations are serialized by one mutex, the Go rendition of the source's
// single-threaded event loop.
type Collection[T Item] struct {
	mu       sync.Mutex
	key      uuid.UUID
	fetch    PageFetcher[T]
	pageSize int

	items   []T
	hasMore bool
	loading bool
	loadErr error
}

func NewCollection[T Item](key uuid.UUID, fetch PageFetcher[T], pageSize int) *Collection[T] {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &Collection[T]{key: key, fetch: fetch, pageSize: pageSize, hasMore: true}
}

func (c *Collection[T]) Key() uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.key
}

// Load replaces the window with the most recent page. A failed fetch leaves
// the previous window intact and records a retryable error.
func (c *Collection[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return nil
	}
	c.loading = true
	key := c.key
	c.mu.Unlock()

	page, err := c.fetch(ctx, key, time.Time{}, c.pageSize)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if key != c.key {
		// key switched while the fetch was in flight; neither the result
		// nor its error belongs to the new key
		return nil
	}
	if err != nil {
		c.loadErr = err
		return err
	}
	c.loadErr = nil
	c.items = ascending(page)
	c.hasMore = len(page) == c.pageSize
	return nil
}

// LoadOlder prepends the next page strictly older than the current oldest
// item. No-op while another load is in flight, when the window is empty, or
// when there is nothing older.
func (c *Collection[T]) LoadOlder(ctx context.Context) error {
	c.mu.Lock()
	if c.loading || !c.hasMore || len(c.items) == 0 {
		c.mu.Unlock()
		return nil
	}
	c.loading = true
	key := c.key
	before := c.items[0].ItemCreatedAt()
	c.mu.Unlock()

	page, err := c.fetch(ctx, key, before, c.pageSize)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if key != c.key {
		return nil
	}
	if err != nil {
		c.loadErr = err
		return err
	}
	c.loadErr = nil
	c.items = append(ascending(page), c.items...)
	c.hasMore = len(page) == c.pageSize
	return nil
}

// Append inserts the item in order. An item whose id is already present
// replaces the existing one in place: this is the explicit merge rule that
// makes an author's optimistic send and the feed's own-write echo converge
// on exactly one visible row.
func (c *Collection[T]) Append(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.items {
		if existing.ItemID() == item.ItemID() {
			c.items[i] = item
			return
		}
	}

	i := len(c.items)
	for i > 0 && itemLess(item, c.items[i-1]) {
		i--
	}
	c.items = append(c.items, item)
	copy(c.items[i+1:], c.items[i:])
	c.items[i] = item
}

// Patch updates the matching item in place. apply returns the updated item
// and whether it stays visible; returning false removes it from the window
// (soft delete). Reports whether an item with that id was found.
func (c *Collection[T]) Patch(id uuid.UUID, apply func(T) (T, bool)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.items {
		if existing.ItemID() != id {
			continue
		}
		updated, visible := apply(existing)
		if visible {
			c.items[i] = updated
		} else {
			c.items = append(c.items[:i], c.items[i+1:]...)
		}
		return true
	}
	return false
}

// Rebind switches the collection to a new resource key, dropping the old
// window entirely. Windows are never merged across keys.
func (c *Collection[T]) Rebind(key uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.key = key
	c.items = nil
	c.hasMore = true
	c.loadErr = nil
}

// Snapshot returns a copy of the current window, oldest first.
func (c *Collection[T]) Snapshot() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *Collection[T]) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasMore
}

func (c *Collection[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err reports the last failed load, cleared by the next successful one.
func (c *Collection[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadErr
}

// ascending reverses a newest-first page into window order.
func ascending[T Item](page []T) []T {
	out := make([]T, len(page))
	for i, item := range page {
		out[len(page)-1-i] = item
	}
	return out
}
