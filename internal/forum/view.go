package forum

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Azotik83/Eclipse.github.io/internal/live"
	"github.com/Azotik83/Eclipse.github.io/internal/realtime"
	"github.com/Azotik83/Eclipse.github.io/pkg/logger"
)

// PostView is one open post plus its live reply thread. Reply inserts are
// fetched with the author projection and appended; each appended reply also
// bumps the local post's ReplyCount, so the header stays consistent with
// the thread without refetching the post row (the stored counter catches up
// through the same transaction that wrote the reply).
type PostView struct {
	Replies *live.View[ReplyDTO]

	mu   sync.Mutex
	post PostDTO
}

func NewPostView(repo ForumRepository, feed realtime.Feed, post PostDTO, pageSize int, log logger.Logger) *PostView {
	pv := &PostView{post: post}

	pv.Replies = live.NewView(live.Config[ReplyDTO]{
		Topic:    TableReplies,
		Key:      post.ID,
		PageSize: pageSize,
		Feed:     feed,
		Fetch: func(ctx context.Context, key uuid.UUID, before time.Time, limit int) ([]ReplyDTO, error) {
			replies, err := repo.GetReplyPage(ctx, key, before, limit)
			if err != nil {
				return nil, err
			}
			out := make([]ReplyDTO, 0, len(replies))
			for _, r := range replies {
				out = append(out, ReplyToDTO(r))
			}
			return out, nil
		},
		FetchOne: func(ctx context.Context, id uuid.UUID) (ReplyDTO, error) {
			reply, err := repo.GetReply(ctx, id)
			if err != nil {
				return ReplyDTO{}, err
			}
			return ReplyToDTO(reply), nil
		},
		Bindings: func(key uuid.UUID) []realtime.Binding {
			return []realtime.Binding{
				{Table: TableReplies, Filter: realtime.Filter{Column: "post_id", ID: key}},
			}
		},
		Policy: live.Policy{}.
			On(TableReplies, live.FetchOne, realtime.OpInsert),
		OnApplied: func(ev realtime.Event, s live.Strategy) {
			if ev.Table == TableReplies && s == live.FetchOne {
				pv.bumpReplyCount()
			}
		},
		Logger: log,
	})

	return pv
}

func (pv *PostView) bumpReplyCount() {
	pv.mu.Lock()
	pv.post.ReplyCount++
	pv.mu.Unlock()
}

// Post returns the header snapshot with the locally maintained ReplyCount.
func (pv *PostView) Post() PostDTO {
	pv.mu.Lock()
	defer pv.mu.Unlock()
	return pv.post
}

func (pv *PostView) Open(ctx context.Context) error { return pv.Replies.Open(ctx) }
func (pv *PostView) Close()                         { pv.Replies.Close() }
