package voice

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Azotik83/Eclipse.github.io/internal/live"
	"github.com/Azotik83/Eclipse.github.io/internal/realtime"
	"github.com/Azotik83/Eclipse.github.io/pkg/logger"
)

// NewRoomsView keeps a channel's room list current. Rooms embed their full
// participant roster, so any participant movement rewrites nested state;
// the window is small and a full reload is the cheapest correct answer.
func NewRoomsView(repo VoiceRepository, feed realtime.Feed, channelID uuid.UUID, pageSize int, log logger.Logger) *live.View[RoomDTO] {
	return live.NewView(live.Config[RoomDTO]{
		Topic:    TableVoiceRooms,
		Key:      channelID,
		PageSize: pageSize,
		Feed:     feed,
		Fetch: func(ctx context.Context, key uuid.UUID, before time.Time, limit int) ([]RoomDTO, error) {
			rooms, err := repo.ListActiveRoomPage(ctx, key, before, limit)
			if err != nil {
				return nil, err
			}
			out := make([]RoomDTO, 0, len(rooms))
			for _, r := range rooms {
				out = append(out, RoomToDTO(r))
			}
			return out, nil
		},
		Bindings: func(key uuid.UUID) []realtime.Binding {
			return []realtime.Binding{
				{Table: TableVoiceRooms, Filter: realtime.Filter{Column: "channel_id", ID: key}},
				{Table: TableVoiceParticipants, Filter: realtime.Filter{Column: "channel_id", ID: key}},
			}
		},
		Policy: live.Policy{}.
			On(TableVoiceRooms, live.FullReload).
			On(TableVoiceParticipants, live.FullReload),
		Logger: log,
	})
}
