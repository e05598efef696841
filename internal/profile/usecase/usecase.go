package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/Azotik83/Eclipse.github.io/internal/profile"
	models "github.com/Azotik83/Eclipse.github.io/internal/profile/model"
	"github.com/Azotik83/Eclipse.github.io/pkg/errors"
	"github.com/Azotik83/Eclipse.github.io/pkg/logger"
)

const maxInterests = 10

type ProfileUsecase struct {
	repo    profile.ProfileRepository
	friends profile.FriendChecker
	logger  logger.Logger
}

func NewProfileUsecase(repo profile.ProfileRepository, friends profile.FriendChecker, logger logger.Logger) *ProfileUsecase {
	return &ProfileUsecase{repo: repo, friends: friends, logger: logger}
}

var usernameRegex = regexp.MustCompile(`^[a-z0-9_]{3,32}$`)

func ValidateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return errors.ErrInvalidUsername
	}
	return nil
}

func (uc *ProfileUsecase) GetProfile(ctx context.Context, viewerID, targetID uuid.UUID) (*profile.ProfileDTO, error) {
	p, err := uc.repo.GetByID(ctx, targetID)
	if err != nil {
		return nil, errors.ErrProfileNotFound
	}

	if err := uc.checkVisibility(ctx, viewerID, p); err != nil {
		return nil, err
	}
	return profile.ToDTO(p), nil
}

func (uc *ProfileUsecase) GetProfileByUsername(ctx context.Context, viewerID uuid.UUID, username string) (*profile.ProfileDTO, error) {
	p, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, errors.ErrProfileNotFound
	}

	if err := uc.checkVisibility(ctx, viewerID, p); err != nil {
		return nil, err
	}
	return profile.ToDTO(p), nil
}

// checkVisibility gates private profiles: owner and friends see everything,
// strangers get ErrProfilePrivate. The remote store may enforce its own
// policy on top.
func (uc *ProfileUsecase) checkVisibility(ctx context.Context, viewerID uuid.UUID, p *models.Profile) error {
	if p.IsPublic || viewerID == p.ID {
		return nil
	}
	if uc.friends != nil {
		ok, err := uc.friends.IsFriend(ctx, viewerID, p.ID)
		if err != nil {
			uc.logger.Error("friend check failed", "viewer", viewerID, "target", p.ID, "err", err)
			return errors.Internal("friend check failed")
		}
		if ok {
			return nil
		}
	}
	return errors.ErrProfilePrivate
}

func (uc *ProfileUsecase) GetPublicProfile(ctx context.Context, targetID uuid.UUID) (*profile.PublicProfileDTO, error) {
	p, err := uc.repo.GetByID(ctx, targetID)
	if err != nil {
		return nil, errors.ErrProfileNotFound
	}
	return &profile.PublicProfileDTO{
		ID:          p.ID,
		Username:    p.Username,
		DisplayName: p.DisplayName,
		AvatarURL:   p.AvatarURL,
		IsPublic:    p.IsPublic,
	}, nil
}

func (uc *ProfileUsecase) UpdateProfile(ctx context.Context, actorID uuid.UUID, cmd profile.UpdateProfileCommand) (*profile.ProfileDTO, error) {
	p, err := uc.repo.GetByID(ctx, actorID)
	if err != nil {
		return nil, errors.ErrProfileNotFound
	}

	var columns []string
	if cmd.DisplayName != nil {
		name := strings.TrimSpace(*cmd.DisplayName)
		if name == "" {
			return nil, errors.ErrInvalidDisplayName
		}
		p.DisplayName = name
		columns = append(columns, "display_name")
	}
	if cmd.Bio != nil {
		p.Bio = *cmd.Bio
		columns = append(columns, "bio")
	}
	if cmd.AvatarURL != nil {
		p.AvatarURL = *cmd.AvatarURL
		columns = append(columns, "avatar_url")
	}
	if cmd.BannerURL != nil {
		p.BannerURL = *cmd.BannerURL
		columns = append(columns, "banner_url")
	}
	if cmd.Interests != nil {
		if len(*cmd.Interests) > maxInterests {
			return nil, errors.ErrTooManyInterests
		}
		p.Interests = *cmd.Interests
		columns = append(columns, "interests")
	}
	if cmd.IsPublic != nil {
		p.IsPublic = *cmd.IsPublic
		columns = append(columns, "is_public")
	}

	if len(columns) == 0 {
		return profile.ToDTO(p), nil
	}

	if err := uc.repo.Update(ctx, p, columns...); err != nil {
		uc.logger.Errorf("error while updating profile: %v", err)
		return nil, errors.Internal("error while updating profile")
	}
	return profile.ToDTO(p), nil
}

func (uc *ProfileUsecase) CompleteOnboarding(ctx context.Context, userID uuid.UUID) error {
	p, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return errors.ErrProfileNotFound
	}
	if p.OnboardingDone {
		return nil
	}
	p.OnboardingDone = true
	if err := uc.repo.Update(ctx, p, "onboarding_done"); err != nil {
		return errors.Internal("error while completing onboarding")
	}
	return nil
}

func (uc *ProfileUsecase) AwardPoints(ctx context.Context, userID uuid.UUID, delta int64) error {
	if delta == 0 {
		return nil
	}
	if err := uc.repo.AddPoints(ctx, userID, delta); err != nil {
		uc.logger.Error("failed to award points", "user_id", userID, "err", err)
		return errors.Internal("error while awarding points")
	}
	return nil
}

func (uc *ProfileUsecase) Leaderboard(ctx context.Context, limit int) ([]*profile.ProfileDTO, error) {
	if limit <= 0 {
		limit = 50
	}
	profiles, err := uc.repo.Leaderboard(ctx, limit)
	if err != nil {
		return nil, errors.Internal("error while loading leaderboard")
	}
	out := make([]*profile.ProfileDTO, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, profile.ToDTO(p))
	}
	return out, nil
}

func (uc *ProfileUsecase) SearchUsers(ctx context.Context, query string, limit int) ([]*profile.ProfileDTO, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.InvalidArg("search query cannot be empty")
	}
	if limit <= 0 {
		limit = 20
	}
	profiles, err := uc.repo.Search(ctx, query, limit)
	if err != nil {
		return nil, errors.Internal("error while searching users")
	}
	out := make([]*profile.ProfileDTO, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, profile.ToDTO(p))
	}
	return out, nil
}
