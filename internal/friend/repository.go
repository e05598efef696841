package friend

import (
	"context"

	"github.com/google/uuid"

	models "github.com/Azotik83/Eclipse.github.io/internal/friend/model"
)

// Tables observed by the change feed.
const (
	TableFriendships = "friendships"
	TableBlocks      = "blocks"
)

type FriendRepository interface {
	InsertRequest(ctx context.Context, f *models.Friendship) error
	GetFriendship(ctx context.Context, id uuid.UUID) (*models.Friendship, error)

	// GetFriendshipBetween finds the row for the pair in either direction,
	// whatever its status. No row is not an error: it returns (nil, nil).
	GetFriendshipBetween(ctx context.Context, a, b uuid.UUID) (*models.Friendship, error)

	Accept(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error

	ListAccepted(ctx context.Context, userID uuid.UUID) ([]*models.Friendship, error)
	ListPendingReceived(ctx context.Context, userID uuid.UUID) ([]*models.Friendship, error)
	ListPendingSent(ctx context.Context, userID uuid.UUID) ([]*models.Friendship, error)

	// InsertBlock reports false without error when the pair is already
	// blocked in this direction.
	InsertBlock(ctx context.Context, b *models.Block) (bool, error)
	DeleteBlock(ctx context.Context, blockerID, blockedID uuid.UUID) (bool, error)
	ListBlocks(ctx context.Context, blockerID uuid.UUID) ([]*models.Block, error)
	// BlockExists checks one direction only; call twice for either-way.
	BlockExists(ctx context.Context, blockerID, blockedID uuid.UUID) (bool, error)
}
