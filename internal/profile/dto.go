package profile

import (
	"time"

	"github.com/google/uuid"

	models "github.com/Azotik83/Eclipse.github.io/internal/profile/model"
)

// NOTE: commands travel from caller to usecase, DTOs travel back

// UpdateProfileCommand carries a partial profile edit; nil fields are left
// untouched.
type UpdateProfileCommand struct {
	DisplayName *string
	Bio         *string
	AvatarURL   *string
	BannerURL   *string
	Interests   *[]string
	IsPublic    *bool
}

type ProfileDTO struct {
	ID           uuid.UUID
	Username     string
	DisplayName  string
	AvatarURL    string
	BannerURL    string
	Bio          string
	Interests    []string
	Role         models.Role
	IsSuperAdmin bool
	Points       int64
	Level        int
	IsPublic     bool
	CreatedAt    time.Time
}

// PublicProfileDTO is what a stranger sees of a private profile.
type PublicProfileDTO struct {
	ID          uuid.UUID
	Username    string
	DisplayName string
	AvatarURL   string
	IsPublic    bool
}

func toDTO(p *models.Profile) *ProfileDTO {
	return &ProfileDTO{
		ID:           p.ID,
		Username:     p.Username,
		DisplayName:  p.DisplayName,
		AvatarURL:    p.AvatarURL,
		BannerURL:    p.BannerURL,
		Bio:          p.Bio,
		Interests:    p.Interests,
		Role:         p.Role,
		IsSuperAdmin: p.IsSuperAdmin,
		Points:       p.Points,
		Level:        p.Level,
		IsPublic:     p.IsPublic,
		CreatedAt:    p.CreatedAt,
	}
}

// ToDTO is the exported conversion used by other domains' projections.
func ToDTO(p *models.Profile) *ProfileDTO { return toDTO(p) }

// AuthorDTO is the author projection attached to messages, replies and
// rosters: just enough profile to render a byline.
type AuthorDTO struct {
	ID           uuid.UUID
	Username     string
	DisplayName  string
	AvatarURL    string
	Role         models.Role
	IsSuperAdmin bool
}

func AuthorFrom(p *models.Profile) AuthorDTO {
	if p == nil {
		return AuthorDTO{}
	}
	return AuthorDTO{
		ID:           p.ID,
		Username:     p.Username,
		DisplayName:  p.DisplayName,
		AvatarURL:    p.AvatarURL,
		Role:         p.Role,
		IsSuperAdmin: p.IsSuperAdmin,
	}
}
