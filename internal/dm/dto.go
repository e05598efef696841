package dm

import (
	"time"

	"github.com/google/uuid"

	models "github.com/Azotik83/Eclipse.github.io/internal/dm/model"
	"github.com/Azotik83/Eclipse.github.io/internal/profile"
)

type SendDirectMessageCommand struct {
	ConversationID uuid.UUID
	SenderID       uuid.UUID
	Content        string
}

// ConversationDTO is one row of a user's inbox: the other participant plus
// activity timestamps.
type ConversationDTO struct {
	ID            uuid.UUID
	Partner       profile.AuthorDTO
	LastMessageAt *time.Time
	CreatedAt     time.Time
}

func (c ConversationDTO) ItemID() uuid.UUID { return c.ID }

// ItemCreatedAt orders the inbox by activity, falling back to creation for
// conversations without a message yet.
func (c ConversationDTO) ItemCreatedAt() time.Time {
	if c.LastMessageAt != nil {
		return *c.LastMessageAt
	}
	return c.CreatedAt
}

type DirectMessageDTO struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	Sender         profile.AuthorDTO
	Content        string
	CreatedAt      time.Time
}

func (m DirectMessageDTO) ItemID() uuid.UUID        { return m.ID }
func (m DirectMessageDTO) ItemCreatedAt() time.Time { return m.CreatedAt }

// ConversationToDTO projects the conversation from one participant's side.
func ConversationToDTO(c *models.Conversation, viewer uuid.UUID) ConversationDTO {
	return ConversationDTO{
		ID:            c.ID,
		Partner:       profile.AuthorFrom(c.Partner(viewer)),
		LastMessageAt: c.LastMessageAt,
		CreatedAt:     c.CreatedAt,
	}
}

func MessageToDTO(m *models.DirectMessage) DirectMessageDTO {
	return DirectMessageDTO{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		Sender:         profile.AuthorFrom(m.Sender),
		Content:        m.Content,
		CreatedAt:      m.CreatedAt,
	}
}
