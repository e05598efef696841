package chat

import (
	"context"

	"github.com/google/uuid"
)

// ChatUsecase is the mutation gateway for channel chat. Successful writes
// are observed back through the change feed; the gateway never mutates a
// collection directly (the view's append/patch is idempotent by id).
type ChatUsecase interface {
	Channels(ctx context.Context) ([]*ChannelDTO, error)

	// Send validates (non-empty trimmed body, max length, sender not
	// banned/muted), writes once, publishes the insert event, and returns
	// the canonical row.
	Send(ctx context.Context, cmd SendMessageCommand) (*MessageDTO, error)

	// Edit is restricted to the author's own messages.
	Edit(ctx context.Context, actorID, messageID uuid.UUID, newContent string) (*MessageDTO, error)

	// Delete soft-deletes the author's own message. Moderator deletion goes
	// through the moderation usecase, which also writes the log entry.
	Delete(ctx context.Context, actorID, messageID uuid.UUID) error

	// React/Unreact have toggle semantics: adding an existing reaction or
	// removing an absent one is a benign no-op.
	React(ctx context.Context, messageID uuid.UUID, emoji string, userID uuid.UUID) error
	Unreact(ctx context.Context, messageID uuid.UUID, emoji string, userID uuid.UUID) error
}
