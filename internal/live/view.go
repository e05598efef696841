package live

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Azotik83/Eclipse.github.io/internal/realtime"
	"github.com/Azotik83/Eclipse.github.io/pkg/logger"
)

// RowFetcher re-fetches a single row with its projections (author, reactions)
// for the fetch-one-and-splice strategy.
type RowFetcher[T Item] func(ctx context.Context, id uuid.UUID) (T, error)

// Merger applies an event payload to the current row for the PatchRow
// strategy. Returning false removes the row from the window.
type Merger[T Item] func(cur T, ev realtime.Event) (T, bool)

// Config wires one view: where its pages come from, which feed bindings
// scope it, and the reconciliation policy.
type Config[T Item] struct {
	Topic    string
	Key      uuid.UUID
	PageSize int

	Feed     realtime.Feed
	Fetch    PageFetcher[T]
	FetchOne RowFetcher[T] // required when Policy uses FetchOne
	Merge    Merger[T]     // required when Policy uses PatchRow
	Bindings func(key uuid.UUID) []realtime.Binding
	Policy   Policy

	// OnApplied runs after an event was reconciled, for view-specific
	// side effects such as the forum's reply-count bump.
	OnApplied func(ev realtime.Event, s Strategy)

	Logger logger.Logger
}

// View keeps one Collection in sync with the change feed for one resource
// key: initial bounded fetch on Open, then per-event reconciliation per the
// policy table. Closing or rebinding discards late deliveries for the old
// key by checking the current key at delivery time.
type View[T Item] struct {
	cfg Config[T]
	col *Collection[T]

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	sub    *realtime.Subscription
	key    uuid.UUID
	open   bool
}

func NewView[T Item](cfg Config[T]) *View[T] {
	return &View[T]{
		cfg: cfg,
		col: NewCollection(cfg.Key, cfg.Fetch, cfg.PageSize),
		key: cfg.Key,
	}
}

// Open performs the initial load and subscribes to the feed.
func (v *View[T]) Open(ctx context.Context) error {
	v.mu.Lock()
	if v.open {
		v.mu.Unlock()
		return nil
	}
	v.ctx, v.cancel = context.WithCancel(ctx)
	v.open = true
	if err := v.subscribeLocked(); err != nil {
		v.open = false
		v.cancel()
		v.mu.Unlock()
		return err
	}
	loadCtx := v.ctx
	v.mu.Unlock()

	return v.col.Load(loadCtx)
}

func (v *View[T]) subscribeLocked() error {
	key := v.key
	topic := v.cfg.Topic + ":" + key.String()
	sub, err := v.cfg.Feed.Subscribe(topic, v.cfg.Bindings(key), func(ev realtime.Event) {
		v.handle(key, ev)
	})
	if err != nil {
		return err
	}
	v.sub = sub
	return nil
}

func (v *View[T]) handle(subKey uuid.UUID, ev realtime.Event) {
	v.mu.Lock()
	if !v.open || subKey != v.key {
		// stale delivery from before a Close or Rebind
		v.mu.Unlock()
		return
	}
	ctx := v.ctx
	v.mu.Unlock()

	if ev.Op == realtime.OpResync {
		if err := v.col.Load(ctx); err != nil {
			v.cfg.Logger.Warn("resync reload failed", "topic", v.cfg.Topic, "err", err)
		}
		return
	}

	s := v.cfg.Policy.For(ev)
	switch s {
	case Ignore:
		return
	case FetchOne:
		row, err := v.cfg.FetchOne(ctx, ev.RowID)
		if err != nil {
			// row may be gone already; the next reload converges
			v.cfg.Logger.Warn("fetch-one failed", "topic", v.cfg.Topic, "row", ev.RowID, "err", err)
			return
		}
		v.col.Append(row)
	case PatchRow:
		v.col.Patch(ev.RowID, func(cur T) (T, bool) {
			return v.cfg.Merge(cur, ev)
		})
	case FullReload:
		if err := v.col.Load(ctx); err != nil {
			v.cfg.Logger.Warn("reload failed", "topic", v.cfg.Topic, "err", err)
			return
		}
	}

	if v.cfg.OnApplied != nil {
		v.cfg.OnApplied(ev, s)
	}
}

// Rebind switches the view to a new resource key: the old subscription is
// closed, the window cleared and reloaded, and a fresh subscription opened
// with the new key's filters.
func (v *View[T]) Rebind(ctx context.Context, key uuid.UUID) error {
	v.mu.Lock()
	if !v.open {
		v.mu.Unlock()
		return nil
	}
	if v.sub != nil {
		v.sub.Close()
	}
	v.key = key
	v.col.Rebind(key)
	if err := v.subscribeLocked(); err != nil {
		v.mu.Unlock()
		return err
	}
	loadCtx := v.ctx
	v.mu.Unlock()

	return v.col.Load(loadCtx)
}

// Close is idempotent and releases the feed subscription.
func (v *View[T]) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.open {
		return
	}
	v.open = false
	if v.sub != nil {
		v.sub.Close()
		v.sub = nil
	}
	v.cancel()
}

func (v *View[T]) Items() []T { return v.col.Snapshot() }
func (v *View[T]) HasMore() bool { return v.col.HasMore() }
func (v *View[T]) Loading() bool { return v.col.Loading() }
func (v *View[T]) Err() error { return v.col.Err() }

func (v *View[T]) LoadMore(ctx context.Context) error { return v.col.LoadOlder(ctx) }
func (v *View[T]) Refresh(ctx context.Context) error  { return v.col.Load(ctx) }

// Collection exposes the underlying window for view-specific appends.
func (v *View[T]) Collection() *Collection[T] { return v.col }
