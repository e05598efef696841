package profile

import (
	"context"

	"github.com/google/uuid"

	models "github.com/Azotik83/Eclipse.github.io/internal/profile/model"
)

// TableProfiles is published to the change feed when moderation state or
// public profile fields change.
const TableProfiles = "profiles"

type ProfileRepository interface {
	Create(ctx context.Context, p *models.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	GetByUsername(ctx context.Context, username string) (*models.Profile, error)

	// Update writes only the named columns of p.
	Update(ctx context.Context, p *models.Profile, columns ...string) error

	ListAll(ctx context.Context) ([]*models.Profile, error)
	Search(ctx context.Context, query string, limit int) ([]*models.Profile, error)

	// Leaderboard returns the top profiles by points, descending.
	Leaderboard(ctx context.Context, limit int) ([]*models.Profile, error)
	AddPoints(ctx context.Context, id uuid.UUID, delta int64) error
}
