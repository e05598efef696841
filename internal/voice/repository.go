package voice

import (
	"context"
	"time"

	"github.com/google/uuid"

	models "github.com/Azotik83/Eclipse.github.io/internal/voice/model"
)

// Tables published to the change feed.
const (
	TableVoiceRooms        = "voice_rooms"
	TableVoiceParticipants = "voice_participants"
)

type VoiceRepository interface {
	// ListActiveRoomPage returns up to limit active rooms of a channel
	// created strictly before the cursor, newest first, with participants
	// and their profiles loaded.
	ListActiveRoomPage(ctx context.Context, channelID uuid.UUID, before time.Time, limit int) ([]*models.VoiceRoom, error)
	// GetRoom loads a single room with participants and profiles.
	GetRoom(ctx context.Context, id uuid.UUID) (*models.VoiceRoom, error)
	CreateRoom(ctx context.Context, room *models.VoiceRoom) error
	DeactivateRoom(ctx context.Context, id uuid.UUID) error

	// InsertParticipant reports whether a row was actually inserted;
	// joining a room the user is already in is not an error.
	InsertParticipant(ctx context.Context, p *models.VoiceParticipant) (bool, error)
	// DeleteParticipant reports whether the user was in the room.
	DeleteParticipant(ctx context.Context, roomID, userID uuid.UUID) (bool, error)
	// DeleteAllForUser removes the user from every room and returns the
	// rooms that were left, so callers can close the ones that emptied.
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) ([]*models.VoiceRoom, error)
	CountParticipants(ctx context.Context, roomID uuid.UUID) (int, error)
	// ToggleMute flips the participant's mute flag and returns the new value.
	ToggleMute(ctx context.Context, roomID, userID uuid.UUID) (bool, error)
	// CurrentRoomForUser returns the active room the user occupies.
	// No row is not an error: it returns (nil, nil).
	CurrentRoomForUser(ctx context.Context, userID uuid.UUID) (*models.VoiceRoom, error)
}
