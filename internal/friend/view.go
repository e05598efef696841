package friend

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Azotik83/Eclipse.github.io/internal/realtime"
	"github.com/Azotik83/Eclipse.github.io/pkg/logger"
)

// FriendsView keeps the three derived sets (friends, requests received,
// requests sent) of one user current. All three are recomputed from the
// friendships table on any event for the user: a single accept moves a row
// between two of the sets, so point patching would mean cross-set
// bookkeeping for no gain at this cardinality.
type FriendsView struct {
	repo   FriendRepository
	feed   realtime.Feed
	userID uuid.UUID
	logger logger.Logger

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	sub    *realtime.Subscription
	lists  FriendLists
	err    error
	open   bool
}

func NewFriendsView(repo FriendRepository, feed realtime.Feed, userID uuid.UUID, log logger.Logger) *FriendsView {
	return &FriendsView{
		repo:   repo,
		feed:   feed,
		userID: userID,
		logger: log,
	}
}

// Open performs the initial load and subscribes to the feed.
func (v *FriendsView) Open(ctx context.Context) error {
	v.mu.Lock()
	if v.open {
		v.mu.Unlock()
		return nil
	}
	v.ctx, v.cancel = context.WithCancel(ctx)
	v.open = true

	bindings := []realtime.Binding{
		{Table: TableFriendships, Filter: realtime.Filter{Column: "requester_id", ID: v.userID}},
		{Table: TableFriendships, Filter: realtime.Filter{Column: "addressee_id", ID: v.userID}},
	}
	topic := TableFriendships + ":" + v.userID.String()
	sub, err := v.feed.Subscribe(topic, bindings, func(ev realtime.Event) {
		v.handle(ev)
	})
	if err != nil {
		v.open = false
		v.cancel()
		v.mu.Unlock()
		return err
	}
	v.sub = sub
	loadCtx := v.ctx
	v.mu.Unlock()

	return v.Refresh(loadCtx)
}

func (v *FriendsView) handle(ev realtime.Event) {
	v.mu.Lock()
	if !v.open {
		v.mu.Unlock()
		return
	}
	ctx := v.ctx
	v.mu.Unlock()

	if err := v.Refresh(ctx); err != nil {
		v.logger.Warn("friend lists refresh failed", "user", v.userID, "err", err)
	}
}

// Refresh reloads all three sets; on error the previous lists are kept.
func (v *FriendsView) Refresh(ctx context.Context) error {
	accepted, err := v.repo.ListAccepted(ctx, v.userID)
	if err != nil {
		return v.fail(err)
	}
	received, err := v.repo.ListPendingReceived(ctx, v.userID)
	if err != nil {
		return v.fail(err)
	}
	sent, err := v.repo.ListPendingSent(ctx, v.userID)
	if err != nil {
		return v.fail(err)
	}

	lists := FriendLists{
		Friends:         make([]FriendshipDTO, 0, len(accepted)),
		PendingReceived: make([]FriendshipDTO, 0, len(received)),
		PendingSent:     make([]FriendshipDTO, 0, len(sent)),
	}
	for _, f := range accepted {
		lists.Friends = append(lists.Friends, FriendshipToDTO(f, v.userID))
	}
	for _, f := range received {
		lists.PendingReceived = append(lists.PendingReceived, FriendshipToDTO(f, v.userID))
	}
	for _, f := range sent {
		lists.PendingSent = append(lists.PendingSent, FriendshipToDTO(f, v.userID))
	}

	v.mu.Lock()
	v.lists = lists
	v.err = nil
	v.mu.Unlock()
	return nil
}

func (v *FriendsView) fail(err error) error {
	v.mu.Lock()
	v.err = err
	v.mu.Unlock()
	return err
}

// Lists returns a snapshot of the three sets.
func (v *FriendsView) Lists() FriendLists {
	v.mu.Lock()
	defer v.mu.Unlock()
	return FriendLists{
		Friends:         append([]FriendshipDTO(nil), v.lists.Friends...),
		PendingReceived: append([]FriendshipDTO(nil), v.lists.PendingReceived...),
		PendingSent:     append([]FriendshipDTO(nil), v.lists.PendingSent...),
	}
}

func (v *FriendsView) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// Close is idempotent and releases the feed subscription.
func (v *FriendsView) Close() {
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
