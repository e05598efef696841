package event

import (
	"time"

	"github.com/google/uuid"

	models "github.com/Azotik83/Eclipse.github.io/internal/event/model"
	"github.com/Azotik83/Eclipse.github.io/internal/profile"
)

type CreateEventCommand struct {
	CreatorID       uuid.UUID `json:"creator_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
	MaxParticipants *int      `json:"max_participants,omitempty"`
}

type UpdateEventCommand struct {
	ActorID         uuid.UUID `json:"actor_id"`
	EventID         uuid.UUID `json:"event_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
	MaxParticipants *int      `json:"max_participants,omitempty"`
}

type EventDTO struct {
	ID              uuid.UUID           `json:"id"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	Category        string              `json:"category"`
	StartsAt        time.Time           `json:"starts_at"`
	EndsAt          time.Time           `json:"ends_at"`
	MaxParticipants *int                `json:"max_participants,omitempty"`
	Creator         profile.AuthorDTO   `json:"creator"`
	IsActive        bool                `json:"is_active"`
	Participants    []profile.AuthorDTO `json:"participants"`
	CreatedAt       time.Time           `json:"created_at"`
}

func (e EventDTO) ItemID() uuid.UUID { return e.ID }

// ItemCreatedAt keys the event list by start time, so the live window is
// chronological schedule order rather than creation order.
func (e EventDTO) ItemCreatedAt() time.Time { return e.StartsAt }

// IsFull reports whether the event reached its participant limit.
func (e EventDTO) IsFull() bool {
	return e.MaxParticipants != nil && len(e.Participants) >= *e.MaxParticipants
}

type EventMessageDTO struct {
	ID        uuid.UUID         `json:"id"`
	EventID   uuid.UUID         `json:"event_id"`
	Author    profile.AuthorDTO `json:"author"`
	Content   string            `json:"content"`
	CreatedAt time.Time         `json:"created_at"`
}

func (m EventMessageDTO) ItemID() uuid.UUID        { return m.ID }
func (m EventMessageDTO) ItemCreatedAt() time.Time { return m.CreatedAt }

func EventToDTO(ev *models.Event) EventDTO {
	dto := EventDTO{
		ID:              ev.ID,
		Title:           ev.Title,
		Description:     ev.Description,
		Category:        ev.Category,
		StartsAt:        ev.StartsAt,
		EndsAt:          ev.EndsAt,
		MaxParticipants: ev.MaxParticipants,
		Creator:         profile.AuthorFrom(ev.Creator),
		IsActive:        ev.IsActive,
		Participants:    make([]profile.AuthorDTO, 0, len(ev.Participants)),
		CreatedAt:       ev.CreatedAt,
	}
	for _, p := range ev.Participants {
		dto.Participants = append(dto.Participants, profile.AuthorFrom(p.Profile))
	}
	return dto
}

func MessageToDTO(m *models.EventMessage) EventMessageDTO {
	return EventMessageDTO{
		ID:        m.ID,
		EventID:   m.EventID,
		Author:    profile.AuthorFrom(m.Author),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}
