package voice

import (
	"time"

	"github.com/google/uuid"

	"github.com/Azotik83/Eclipse.github.io/internal/profile"
	models "github.com/Azotik83/Eclipse.github.io/internal/voice/model"
)

type CreateRoomCommand struct {
	ChannelID uuid.UUID `json:"channel_id"`
	CreatorID uuid.UUID `json:"creator_id"`
	Name      string    `json:"name"`
}

type ParticipantDTO struct {
	UserID   uuid.UUID         `json:"user_id"`
	Profile  profile.AuthorDTO `json:"profile"`
	IsMuted  bool              `json:"is_muted"`
	JoinedAt time.Time         `json:"joined_at"`
}

type RoomDTO struct {
	ID           uuid.UUID        `json:"id"`
	ChannelID    uuid.UUID        `json:"channel_id"`
	Name         string           `json:"name"`
	CreatorID    uuid.UUID        `json:"creator_id"`
	IsActive     bool             `json:"is_active"`
	Participants []ParticipantDTO `json:"participants"`
	CreatedAt    time.Time        `json:"created_at"`
}

func (r RoomDTO) ItemID() uuid.UUID        { return r.ID }
func (r RoomDTO) ItemCreatedAt() time.Time { return r.CreatedAt }

func RoomToDTO(room *models.VoiceRoom) RoomDTO {
	dto := RoomDTO{
		ID:           room.ID,
		ChannelID:    room.ChannelID,
		Name:         room.Name,
		CreatorID:    room.CreatorID,
		IsActive:     room.IsActive,
		Participants: make([]ParticipantDTO, 0, len(room.Participants)),
		CreatedAt:    room.CreatedAt,
	}
	for _, p := range room.Participants {
		dto.Participants = append(dto.Participants, ParticipantDTO{
			UserID:   p.UserID,
			Profile:  profile.AuthorFrom(p.Profile),
			IsMuted:  p.IsMuted,
			JoinedAt: p.JoinedAt,
		})
	}
	return dto
}
