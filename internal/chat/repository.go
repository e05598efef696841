package chat

import (
	"context"
	"time"

	"github.com/google/uuid"

	models "github.com/Azotik83/Eclipse.github.io/internal/chat/model"
)

// Tables observed by the change feed.
const (
	TableMessages  = "messages"
	TableReactions = "reactions"
)

type ChatRepository interface {
	ListChannels(ctx context.Context) ([]*models.Channel, error)

	// GetMessagePage returns up to limit non-deleted messages of the channel
	// strictly older than before (zero before = newest), newest first, with
	// author and reaction projections.
	GetMessagePage(ctx context.Context, channelID uuid.UUID, before time.Time, limit int) ([]*models.Message, error)
	GetMessage(ctx context.Context, id uuid.UUID) (*models.Message, error)

	InsertMessage(ctx context.Context, m *models.Message) error
	UpdateMessageBody(ctx context.Context, id uuid.UUID, content string, editedAt time.Time) error
	SoftDeleteMessage(ctx context.Context, id uuid.UUID) error

	// AddReaction inserts the triple, reporting false without error when it
	// already exists (duplicate-key treated as idempotent).
	AddReaction(ctx context.Context, reaction *models.Reaction) (bool, error)
	// RemoveReaction deletes exactly the triple, reporting whether a row
	// existed.
	RemoveReaction(ctx context.Context, messageID uuid.UUID, emoji string, userID uuid.UUID) (bool, error)
}
