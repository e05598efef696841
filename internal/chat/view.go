package chat

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Azotik83/Eclipse.github.io/internal/live"
	"github.com/Azotik83/Eclipse.github.io/internal/realtime"
	"github.com/Azotik83/Eclipse.github.io/pkg/errors"
	"github.com/Azotik83/Eclipse.github.io/pkg/logger"
)

// NewMessagesView materializes one channel's message window and keeps it in
// sync with the feed. Reconciliation policy: new messages are fetched
// individually with their author projection and appended; edits and soft
// deletes are patched straight from the event payload; any reaction change
// reloads the window, since reactions are aggregated client-side per
// message and a point patch would have to re-derive the aggregate anyway.
func NewMessagesView(repo ChatRepository, feed realtime.Feed, channelID uuid.UUID, pageSize int, log logger.Logger) *live.View[MessageDTO] {
	return live.NewView(live.Config[MessageDTO]{
		Topic:    TableMessages,
		Key:      channelID,
		PageSize: pageSize,
		Feed:     feed,
		Fetch: func(ctx context.Context, key uuid.UUID, before time.Time, limit int) ([]MessageDTO, error) {
			msgs, err := repo.GetMessagePage(ctx, key, before, limit)
			if err != nil {
				return nil, err
			}
			return messagesToDTOs(msgs), nil
		},
		FetchOne: func(ctx context.Context, id uuid.UUID) (MessageDTO, error) {
			msg, err := repo.GetMessage(ctx, id)
			if err != nil {
				return MessageDTO{}, err
			}
			if msg.IsDeleted {
				return MessageDTO{}, errors.ErrMessageNotFound
			}
			return MessageToDTO(msg), nil
		},
		Merge: func(cur MessageDTO, ev realtime.Event) (MessageDTO, bool) {
			patch, ok := ev.Payload.(MessageDTO)
			if !ok {
				return cur, !cur.IsDeleted
			}
			// the payload is the canonical row minus reactions, which only
			// reaction events touch
			patch.Reactions = cur.Reactions
			return patch, !patch.IsDeleted
		},
		Bindings: func(key uuid.UUID) []realtime.Binding {
			return []realtime.Binding{
				{Table: TableMessages, Filter: realtime.Filter{Column: "channel_id", ID: key}},
				{Table: TableReactions},
			}
		},
		Policy: live.Policy{}.
			On(TableMessages, live.FetchOne, realtime.OpInsert).
			On(TableMessages, live.PatchRow, realtime.OpUpdate).
			On(TableReactions, live.FullReload),
		Logger: log,
	})
}
