package chat

import (
	"time"

	"github.com/google/uuid"

	models "github.com/Azotik83/Eclipse.github.io/internal/chat/model"
	"github.com/Azotik83/Eclipse.github.io/internal/profile"
)

// Input commands
type SendMessageCommand struct {
	ChannelID uuid.UUID
	AuthorID  uuid.UUID
	Content   string
}

// Output DTOs

type ChannelDTO struct {
	ID        uuid.UUID
	Name      string
	Topic     string
	Kind      models.ChannelKind
	CreatedAt time.Time
}

// ReactionGroup is the client-side aggregate per emoji: count plus who
// reacted, so the UI can mark the viewer's own reactions.
type ReactionGroup struct {
	Emoji   string
	Count   int
	UserIDs []uuid.UUID
}

type MessageDTO struct {
	ID        uuid.UUID
	ChannelID uuid.UUID
	Author    profile.AuthorDTO
	Content   string
	IsEdited  bool
	EditedAt  *time.Time
	IsDeleted bool
	CreatedAt time.Time
	Reactions []ReactionGroup
}

func (m MessageDTO) ItemID() uuid.UUID        { return m.ID }
func (m MessageDTO) ItemCreatedAt() time.Time { return m.CreatedAt }

// MessageToDTO builds the projected shape, grouping raw reaction rows by
// emoji in first-seen order.
func MessageToDTO(m *models.Message) MessageDTO {
	dto := MessageDTO{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		Author:    profile.AuthorFrom(m.Author),
		Content:   m.Content,
		IsEdited:  m.IsEdited,
		EditedAt:  m.EditedAt,
		IsDeleted: m.IsDeleted,
		CreatedAt: m.CreatedAt,
	}

	byEmoji := make(map[string]int)
	for _, r := range m.Reactions {
		idx, ok := byEmoji[r.Emoji]
		if !ok {
			idx = len(dto.Reactions)
			byEmoji[r.Emoji] = idx
			dto.Reactions = append(dto.Reactions, ReactionGroup{Emoji: r.Emoji})
		}
		dto.Reactions[idx].Count++
		dto.Reactions[idx].UserIDs = append(dto.Reactions[idx].UserIDs, r.UserID)
	}
	return dto
}

func messagesToDTOs(msgs []*models.Message) []MessageDTO {
	out := make([]MessageDTO, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, MessageToDTO(m))
	}
	return out
}
