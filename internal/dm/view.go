package dm

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Azotik83/Eclipse.github.io/internal/live"
	"github.com/Azotik83/Eclipse.github.io/internal/realtime"
	"github.com/Azotik83/Eclipse.github.io/pkg/logger"
)

// NewConversationsView keeps one user's inbox current. Every conversation
// event for the user reloads the window: the sort key is derived from
// last_message_at, so a point patch would reorder rows anyway.
func NewConversationsView(repo DMRepository, feed realtime.Feed, userID uuid.UUID, pageSize int, log logger.Logger) *live.View[ConversationDTO] {
	return live.NewView(live.Config[ConversationDTO]{
		Topic:    TableConversations,
		Key:      userID,
		PageSize: pageSize,
		Feed:     feed,
		Fetch: func(ctx context.Context, key uuid.UUID, before time.Time, limit int) ([]ConversationDTO, error) {
			convs, err := repo.ListConversationPage(ctx, key, before, limit)
			if err != nil {
				return nil, err
			}
			out := make([]ConversationDTO, 0, len(convs))
			for _, c := range convs {
				out = append(out, ConversationToDTO(c, key))
			}
			return out, nil
		},
		Bindings: func(key uuid.UUID) []realtime.Binding {
			// a user can sit on either side of the normalized pair
			return []realtime.Binding{
				{Table: TableConversations, Filter: realtime.Filter{Column: "user_low", ID: key}},
				{Table: TableConversations, Filter: realtime.Filter{Column: "user_high", ID: key}},
			}
		},
		Policy: live.Policy{}.
			On(TableConversations, live.FullReload),
		Logger: log,
	})
}

// NewMessagesView mirrors the public chat message view for one
// conversation: inserts are fetched individually with the sender loaded.
func NewMessagesView(repo DMRepository, feed realtime.Feed, conversationID uuid.UUID, pageSize int, log logger.Logger) *live.View[DirectMessageDTO] {
	return live.NewView(live.Config[DirectMessageDTO]{
		Topic:    TableDirectMessages,
		Key:      conversationID,
		PageSize: pageSize,
		Feed:     feed,
		Fetch: func(ctx context.Context, key uuid.UUID, before time.Time, limit int) ([]DirectMessageDTO, error) {
			msgs, err := repo.GetMessagePage(ctx, key, before, limit)
			if err != nil {
				return nil, err
			}
			out := make([]DirectMessageDTO, 0, len(msgs))
			for _, m := range msgs {
				out = append(out, MessageToDTO(m))
			}
			return out, nil
		},
		FetchOne: func(ctx context.Context, id uuid.UUID) (DirectMessageDTO, error) {
			msg, err := repo.GetMessage(ctx, id)
			if err != nil {
				return DirectMessageDTO{}, err
			}
			return MessageToDTO(msg), nil
		},
		Bindings: func(key uuid.UUID) []realtime.Binding {
			return []realtime.Binding{
				{Table: TableDirectMessages, Filter: realtime.Filter{Column: "conversation_id", ID: key}},
			}
		},
		Policy: live.Policy{}.
			On(TableDirectMessages, live.FetchOne, realtime.OpInsert),
		Logger: log,
	})
}
