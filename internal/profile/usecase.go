package profile

import (
	"context"

	"github.com/google/uuid"
)

// FriendChecker answers whether two users are friends; the friend usecase
// satisfies it. Needed to gate access to private profiles.
type FriendChecker interface {
	IsFriend(ctx context.Context, a, b uuid.UUID) (bool, error)
}

type ProfileUsecase interface {
	// GetProfile applies visibility: a private profile viewed by a stranger
	// comes back as ErrProfilePrivate with only the public subset available
	// through GetPublicProfile.
	GetProfile(ctx context.Context, viewerID, targetID uuid.UUID) (*ProfileDTO, error)
	GetProfileByUsername(ctx context.Context, viewerID uuid.UUID, username string) (*ProfileDTO, error)
	GetPublicProfile(ctx context.Context, targetID uuid.UUID) (*PublicProfileDTO, error)

	// UpdateProfile edits the caller's own profile only. This is an
	// immediately-consistent single-user mutation: the canonical row is
	// returned so the caller can update local state without a feed echo.
	UpdateProfile(ctx context.Context, actorID uuid.UUID, cmd UpdateProfileCommand) (*ProfileDTO, error)

	CompleteOnboarding(ctx context.Context, userID uuid.UUID) error
	AwardPoints(ctx context.Context, userID uuid.UUID, delta int64) error

	Leaderboard(ctx context.Context, limit int) ([]*ProfileDTO, error)
	SearchUsers(ctx context.Context, query string, limit int) ([]*ProfileDTO, error)
}
