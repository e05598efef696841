package dm

import (
	"context"
	"time"

	"github.com/google/uuid"

	models "github.com/Azotik83/Eclipse.github.io/internal/dm/model"
)

// Tables observed by the change feed.
const (
	TableConversations  = "conversations"
	TableDirectMessages = "direct_messages"
)

type DMRepository interface {
	// GetOrCreateConversation resolves the conversation for the pair,
	// creating it on first contact. Safe under concurrent first-senders:
	// the pair is normalized and the insert yields to an existing row.
	GetOrCreateConversation(ctx context.Context, a, b uuid.UUID) (*models.Conversation, error)
	GetConversation(ctx context.Context, id uuid.UUID) (*models.Conversation, error)

	// ListConversationPage returns the user's conversations with both
	// profiles loaded, most recent activity first, strictly older than
	// before (zero before = newest).
	ListConversationPage(ctx context.Context, userID uuid.UUID, before time.Time, limit int) ([]*models.Conversation, error)

	GetMessagePage(ctx context.Context, conversationID uuid.UUID, before time.Time, limit int) ([]*models.DirectMessage, error)
	GetMessage(ctx context.Context, id uuid.UUID) (*models.DirectMessage, error)
	InsertMessage(ctx context.Context, m *models.DirectMessage) error

	// TouchConversation bumps last_message_at.
	TouchConversation(ctx context.Context, id uuid.UUID, at time.Time) error
}
