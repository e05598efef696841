package voice

import (
	"context"

	"github.com/google/uuid"
)

// VoiceUsecase drives room occupancy. A user holds at most one seat
// system-wide: Join and CreateRoom both start by vacating everything.
type VoiceUsecase interface {
	CreateRoom(ctx context.Context, cmd CreateRoomCommand) (*RoomDTO, error)
	Join(ctx context.Context, roomID, userID uuid.UUID) error
	Leave(ctx context.Context, roomID, userID uuid.UUID) error
	ToggleMute(ctx context.Context, roomID, userID uuid.UUID) (bool, error)
	// CurrentRoom returns nil when the user is not in any room.
	CurrentRoom(ctx context.Context, userID uuid.UUID) (*RoomDTO, error)
}
