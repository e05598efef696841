package event

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Azotik83/Eclipse.github.io/internal/live"
	"github.com/Azotik83/Eclipse.github.io/internal/realtime"
	"github.com/Azotik83/Eclipse.github.io/pkg/errors"
	"github.com/Azotik83/Eclipse.github.io/pkg/logger"
)

// scheduleKey keys the single global events window. Every client shares one
// topic since the schedule is not partitioned.
var scheduleKey = uuid.Nil

// NewEventsView keeps the schedule current. Rosters are embedded in each
// row, so participant churn reloads the window like any event edit.
func NewEventsView(repo EventRepository, feed realtime.Feed, pageSize int, log logger.Logger) *live.View[EventDTO] {
	return live.NewView(live.Config[EventDTO]{
		Topic:    TableEvents,
		Key:      scheduleKey,
		PageSize: pageSize,
		Feed:     feed,
		Fetch: func(ctx context.Context, _ uuid.UUID, before time.Time, limit int) ([]EventDTO, error) {
			events, err := repo.ListActiveEventPage(ctx, before, limit)
			if err != nil {
				return nil, err
			}
			out := make([]EventDTO, 0, len(events))
			for _, ev := range events {
				out = append(out, EventToDTO(ev))
			}
			return out, nil
		},
		Bindings: func(uuid.UUID) []realtime.Binding {
			return []realtime.Binding{
				{Table: TableEvents},
				{Table: TableEventParticipants},
			}
		},
		Policy: live.Policy{}.
			On(TableEvents, live.FullReload).
			On(TableEventParticipants, live.FullReload),
		Logger: log,
	})
}

// OpenEventChat opens the participant chat for one event. History is
// readable by participants only, so the roster is checked before the
// view subscribes and loads.
func OpenEventChat(ctx context.Context, repo EventRepository, feed realtime.Feed, eventID, userID uuid.UUID, pageSize int, log logger.Logger) (*live.View[EventMessageDTO], error) {
	joined, err := repo.IsParticipant(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	if !joined {
		return nil, errors.ErrNotParticipant
	}

	view := newEventMessagesView(repo, feed, eventID, pageSize, log)
	if err := view.Open(ctx); err != nil {
		return nil, err
	}
	return view, nil
}

// newEventMessagesView wires the chat window. Messages are append-only,
// so only inserts are handled and each is fetched with its author loaded.
func newEventMessagesView(repo EventRepository, feed realtime.Feed, eventID uuid.UUID, pageSize int, log logger.Logger) *live.View[EventMessageDTO] {
	return live.NewView(live.Config[EventMessageDTO]{
		Topic:    TableEventMessages,
		Key:      eventID,
		PageSize: pageSize,
		Feed:     feed,
		Fetch: func(ctx context.Context, key uuid.UUID, before time.Time, limit int) ([]EventMessageDTO, error) {
			msgs, err := repo.GetMessagePage(ctx, key, before, limit)
			if err != nil {
				return nil, err
			}
			out := make([]EventMessageDTO, 0, len(msgs))
			for _, m := range msgs {
				out = append(out, MessageToDTO(m))
			}
			return out, nil
		},
		FetchOne: func(ctx context.Context, id uuid.UUID) (EventMessageDTO, error) {
			msg, err := repo.GetMessage(ctx, id)
			if err != nil {
				return EventMessageDTO{}, err
			}
			return MessageToDTO(msg), nil
		},
		Bindings: func(key uuid.UUID) []realtime.Binding {
			return []realtime.Binding{
				{Table: TableEventMessages, Filter: realtime.Filter{Column: "event_id", ID: key}},
			}
		},
		Policy: live.Policy{}.
			On(TableEventMessages, live.FetchOne, realtime.OpInsert),
		Logger: log,
	})
}
