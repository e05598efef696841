package live

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Body      string
	Deleted   bool
}

func (r row) ItemID() uuid.UUID        { return r.ID }
func (r row) ItemCreatedAt() time.Time { return r.CreatedAt }

// fakeStore mimics a remote relation: rows per key, descending page query
// that skips soft-deleted rows.
type fakeStore struct {
	mu   sync.Mutex
	rows map[uuid.UUID][]row
	err  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: make(map[uuid.UUID][]row)}
}

func (s *fakeStore) add(key uuid.UUID, r row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[key] = append(s.rows[key], r)
}

func (s *fakeStore) update(key uuid.UUID, r row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.rows[key] {
		if cur.ID == r.ID {
			s.rows[key][i] = r
			return
		}
	}
}

func (s *fakeStore) fetchPage(_ context.Context, key uuid.UUID, before time.Time, limit int) ([]row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	var visible []row
	for _, r := range s.rows[key] {
		if r.Deleted {
			continue
		}
		if !before.IsZero() && !r.CreatedAt.Before(before) {
			continue
		}
		visible = append(visible, r)
	}
	// newest first, id desc on ties
	for i := 0; i < len(visible); i++ {
		for j := i + 1; j < len(visible); j++ {
			if itemLess(visible[i], visible[j]) {
				visible[i], visible[j] = visible[j], visible[i]
			}
		}
	}
	if len(visible) > limit {
		visible = visible[:limit]
	}
	return visible, nil
}

func seedRows(s *fakeStore, key uuid.UUID, n int, base time.Time) []row {
	out := make([]row, n)
	for i := 0; i < n; i++ {
		r := row{ID: uuid.New(), CreatedAt: base.Add(time.Duration(i) * time.Second), Body: "msg"}
		s.add(key, r)
		out[i] = r
	}
	return out
}

func ids(items []row) []uuid.UUID {
	out := make([]uuid.UUID, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestCollection_PaginationContinuity(t *testing.T) {
	store := newFakeStore()
	key := uuid.New()
	all := seedRows(store, key, 50, time.Now().Add(-time.Hour))

	c := NewCollection(key, store.fetchPage, 20)
	require.NoError(t, c.Load(context.Background()))
	assert.Equal(t, 20, c.Len())
	assert.True(t, c.HasMore())

	require.NoError(t, c.LoadOlder(context.Background()))
	assert.Equal(t, 40, c.Len())
	assert.True(t, c.HasMore())

	require.NoError(t, c.LoadOlder(context.Background()))
	assert.Equal(t, 50, c.Len())
	assert.False(t, c.HasMore())

	// Concatenated pages equal one full ascending fetch: older, non-overlapping, gap-free.
	assert.Equal(t, ids(all), ids(c.Snapshot()))

	// Nothing older left: further calls are no-ops.
	require.NoError(t, c.LoadOlder(context.Background()))
	assert.Equal(t, 50, c.Len())
}

func TestCollection_TimestampTieBrokenByID(t *testing.T) {
	store := newFakeStore()
	key := uuid.New()
	at := time.Now()
	a := row{ID: uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000000"), CreatedAt: at}
	b := row{ID: uuid.MustParse("bbbbbbbb-0000-0000-0000-000000000000"), CreatedAt: at}
	store.add(key, b)
	store.add(key, a)

	c := NewCollection(key, store.fetchPage, 20)
	require.NoError(t, c.Load(context.Background()))

	got := c.Snapshot()
	require.Len(t, got, 2)
	assert.Equal(t, a.ID, got[0].ID)
	assert.Equal(t, b.ID, got[1].ID)
}

func TestCollection_AppendDeduplicatesByID(t *testing.T) {
	store := newFakeStore()
	key := uuid.New()
	c := NewCollection(key, store.fetchPage, 20)
	require.NoError(t, c.Load(context.Background()))

	msg := row{ID: uuid.New(), CreatedAt: time.Now(), Body: "optimistic"}
	c.Append(msg)

	echo := msg
	echo.Body = "echo"
	c.Append(echo)

	got := c.Snapshot()
	require.Len(t, got, 1, "own-write echo must not duplicate the optimistic append")
	assert.Equal(t, "echo", got[0].Body)
}

func TestCollection_AppendKeepsOrder(t *testing.T) {
	store := newFakeStore()
	key := uuid.New()
	c := NewCollection(key, store.fetchPage, 20)
	require.NoError(t, c.Load(context.Background()))

	base := time.Now()
	second := row{ID: uuid.New(), CreatedAt: base.Add(2 * time.Second)}
	first := row{ID: uuid.New(), CreatedAt: base.Add(1 * time.Second)}
	c.Append(second)
	c.Append(first) // arrives late

	got := c.Snapshot()
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
}

func TestCollection_PatchRemovesDeleted(t *testing.T) {
	store := newFakeStore()
	key := uuid.New()
	rows := seedRows(store, key, 3, time.Now().Add(-time.Minute))

	c := NewCollection(key, store.fetchPage, 20)
	require.NoError(t, c.Load(context.Background()))

	found := c.Patch(rows[1].ID, func(r row) (row, bool) {
		r.Deleted = true
		return r, false
	})
	assert.True(t, found)
	assert.Equal(t, 2, c.Len())

	// Mark deleted in the store too: a full reload keeps it invisible, no error.
	del := rows[1]
	del.Deleted = true
	store.update(key, del)
	require.NoError(t, c.Load(context.Background()))
	for _, r := range c.Snapshot() {
		assert.NotEqual(t, rows[1].ID, r.ID)
	}
}

func TestCollection_FailedLoadKeepsWindow(t *testing.T) {
	store := newFakeStore()
	key := uuid.New()
	seedRows(store, key, 5, time.Now().Add(-time.Minute))

	c := NewCollection(key, store.fetchPage, 20)
	require.NoError(t, c.Load(context.Background()))
	require.Equal(t, 5, c.Len())

	store.mu.Lock()
	store.err = errors.New("backend unavailable")
	store.mu.Unlock()

	err := c.Load(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 5, c.Len(), "failed fetch must not clear existing data")
	assert.Error(t, c.Err())

	store.mu.Lock()
	store.err = nil
	store.mu.Unlock()

	require.NoError(t, c.Load(context.Background()))
	assert.NoError(t, c.Err())
}

func TestCollection_StaleFetchErrorIgnoredAfterRebind(t *testing.T) {
	keyA, keyB := uuid.New(), uuid.New()
	started := make(chan struct{})
	release := make(chan struct{})

	fetch := func(_ context.Context, key uuid.UUID, _ time.Time, _ int) ([]row, error) {
		if key == keyA {
			close(started)
			<-release
			return nil, errors.New("backend unavailable")
		}
		return []row{{ID: uuid.New(), CreatedAt: time.Now()}}, nil
	}

	c := NewCollection(keyA, fetch, 20)

	done := make(chan error, 1)
	go func() { done <- c.Load(context.Background()) }()

	<-started
	c.Rebind(keyB)
	close(release)

	// the old key's failure is discarded, not pinned on the new key
	require.NoError(t, <-done)
	assert.NoError(t, c.Err())

	require.NoError(t, c.Load(context.Background()))
	assert.NoError(t, c.Err())
	assert.Equal(t, 1, c.Len())
}

func TestCollection_LoadOlderNoopWhenEmpty(t *testing.T) {
	store := newFakeStore()
	c := NewCollection(uuid.New(), store.fetchPage, 20)
	require.NoError(t, c.LoadOlder(context.Background()))
	assert.Equal(t, 0, c.Len())
}

func TestCollection_RebindClearsWindow(t *testing.T) {
	store := newFakeStore()
	keyA, keyB := uuid.New(), uuid.New()
	seedRows(store, keyA, 5, time.Now().Add(-time.Minute))
	bRows := seedRows(store, keyB, 2, time.Now().Add(-time.Minute))

	c := NewCollection(keyA, store.fetchPage, 20)
	require.NoError(t, c.Load(context.Background()))
	require.Equal(t, 5, c.Len())

	c.Rebind(keyB)
	assert.Equal(t, 0, c.Len(), "no merge across keys")

	require.NoError(t, c.Load(context.Background()))
	assert.Equal(t, ids(bRows), ids(c.Snapshot()))
}
