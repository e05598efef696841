package friend

import (
	"context"

	"github.com/google/uuid"
)

// FriendUsecase owns friendship lifecycle and blocking. IsFriend doubles as
// the visibility check other domains (private profiles) consult.
type FriendUsecase interface {
	// SendRequest creates a pending friendship. A row already covering the
	// pair, whichever direction or status, surfaces as an already-exists
	// conflict rather than a second row.
	SendRequest(ctx context.Context, userID, targetID uuid.UUID) (*FriendshipDTO, error)

	// Accept flips a pending request addressed to the user.
	Accept(ctx context.Context, userID, friendshipID uuid.UUID) error
	// Reject drops a pending request addressed to the user.
	Reject(ctx context.Context, userID, friendshipID uuid.UUID) error
	// Unfriend removes an accepted friendship from either side.
	Unfriend(ctx context.Context, userID, friendID uuid.UUID) error

	// IsFriend reports an accepted friendship, symmetric in its arguments.
	IsFriend(ctx context.Context, a, b uuid.UUID) (bool, error)

	Block(ctx context.Context, userID, targetID uuid.UUID) error
	Unblock(ctx context.Context, userID, targetID uuid.UUID) error
	// IsBlocked reports whether either side blocked the other.
	IsBlocked(ctx context.Context, a, b uuid.UUID) (bool, error)
	Blocks(ctx context.Context, userID uuid.UUID) ([]BlockDTO, error)
}
