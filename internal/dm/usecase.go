package dm

import (
	"context"

	"github.com/google/uuid"
)

// DMUsecase is the mutation gateway for direct messaging. Like the public
// chat gateway it never touches a view's window directly: writes go to the
// database and come back through the change feed.
type DMUsecase interface {
	// StartConversation returns the existing conversation with the partner
	// or creates it. Starting a conversation with yourself is rejected.
	StartConversation(ctx context.Context, userID, partnerID uuid.UUID) (*ConversationDTO, error)

	Send(ctx context.Context, cmd SendDirectMessageCommand) (*DirectMessageDTO, error)
}
