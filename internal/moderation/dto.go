package moderation

import (
	"time"

	"github.com/google/uuid"

	models "github.com/Azotik83/Eclipse.github.io/internal/moderation/model"
	"github.com/Azotik83/Eclipse.github.io/internal/profile"
)

type LogEntryDTO struct {
	ID        uuid.UUID         `json:"id"`
	Moderator profile.AuthorDTO `json:"moderator"`
	Target    profile.AuthorDTO `json:"target"`
	Action    string            `json:"action"`
	Reason    string            `json:"reason,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

func LogEntryToDTO(e *models.ModerationLogEntry) LogEntryDTO {
	return LogEntryDTO{
		ID:        e.ID,
		Moderator: profile.AuthorFrom(e.Moderator),
		Target:    profile.AuthorFrom(e.Target),
		Action:    e.Action,
		Reason:    e.Reason,
		Details:   e.Details,
		CreatedAt: e.CreatedAt,
	}
}
