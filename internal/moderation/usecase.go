package moderation

import (
	"context"

	"github.com/google/uuid"
)

// ModerationUsecase is the staff surface. Every action appends a log entry;
// a log write failure is reported to the caller but never undoes the action
// itself.
type ModerationUsecase interface {
	// Ban blocks the target for the given number of hours; zero means
	// permanent.
	Ban(ctx context.Context, actorID, targetID uuid.UUID, hours int, reason string) error
	Unban(ctx context.Context, actorID, targetID uuid.UUID) error

	Mute(ctx context.Context, actorID, targetID uuid.UUID, minutes int, reason string) error
	Unmute(ctx context.Context, actorID, targetID uuid.UUID) error

	ChangeRole(ctx context.Context, actorID, targetID uuid.UUID, newRole string) error

	// DeleteMessage soft-deletes any channel message regardless of author.
	DeleteMessage(ctx context.Context, actorID, messageID uuid.UUID, reason string) error

	Log(ctx context.Context, actorID uuid.UUID, limit, offset int) ([]LogEntryDTO, error)
}
