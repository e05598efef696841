package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/Azotik83/Eclipse.github.io/internal/friend"
	models "github.com/Azotik83/Eclipse.github.io/internal/friend/model"
	"github.com/Azotik83/Eclipse.github.io/internal/profile"
	"github.com/Azotik83/Eclipse.github.io/internal/realtime"
	"github.com/Azotik83/Eclipse.github.io/pkg/errors"
	"github.com/Azotik83/Eclipse.github.io/pkg/logger"
)

type FriendUsecase struct {
	repo     friend.FriendRepository
	profiles profile.ProfileRepository
	feed     realtime.Publisher
	logger   logger.Logger
}

func NewFriendUsecase(repo friend.FriendRepository, profiles profile.ProfileRepository, feed realtime.Publisher, logger logger.Logger) *FriendUsecase {
	return &FriendUsecase{repo: repo, profiles: profiles, feed: feed, logger: logger}
}

func (uc *FriendUsecase) publish(op realtime.Op, f *models.Friendship) {
	uc.feed.Publish(realtime.Event{
		Op:    op,
		Table: friend.TableFriendships,
		RowID: f.ID,
		Scope: map[string]uuid.UUID{
			"requester_id": f.RequesterID,
			"addressee_id": f.AddresseeID,
		},
	})
}

func (uc *FriendUsecase) SendRequest(ctx context.Context, userID, targetID uuid.UUID) (*friend.FriendshipDTO, error) {
	if userID == targetID {
		return nil, errors.ErrSelfFriendship
	}
	target, err := uc.profiles.GetByID(ctx, targetID)
	if err != nil {
		return nil, errors.ErrProfileNotFound
	}

	blocked, err := uc.IsBlocked(ctx, userID, targetID)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, errors.Forbidden("cannot send a friend request to this user")
	}

	// one row per unordered pair: a pending request in the opposite
	// direction also counts as existing
	existing, err := uc.repo.GetFriendshipBetween(ctx, userID, targetID)
	if err != nil {
		uc.logger.Errorf("error while checking for existing friendship: %v", err)
		return nil, errors.Internal("error while sending friend request")
	}
	if existing != nil {
		return nil, errors.ErrFriendshipExists
	}

	f := &models.Friendship{
		RequesterID: userID,
		AddresseeID: targetID,
		Status:      models.StatusPending,
	}
	if err := uc.repo.InsertRequest(ctx, f); err != nil {
		uc.logger.Errorf("error while inserting friend request: %v", err)
		return nil, errors.Internal("error while sending friend request")
	}

	uc.publish(realtime.OpInsert, f)

	f.Addressee = target
	dto := friend.FriendshipToDTO(f, userID)
	return &dto, nil
}

func (uc *FriendUsecase) Accept(ctx context.Context, userID, friendshipID uuid.UUID) error {
	f, err := uc.repo.GetFriendship(ctx, friendshipID)
	if err != nil {
		return errors.ErrFriendshipNotFound
	}
	// only the addressee of a pending request can accept it
	if f.AddresseeID != userID || f.Status != models.StatusPending {
		return errors.ErrFriendshipNotFound
	}

	if err := uc.repo.Accept(ctx, friendshipID); err != nil {
		uc.logger.Errorf("error while accepting friend request: %v", err)
		return errors.Internal("error while accepting friend request")
	}

	f.Status = models.StatusAccepted
	uc.publish(realtime.OpUpdate, f)
	return nil
}

func (uc *FriendUsecase) Reject(ctx context.Context, userID, friendshipID uuid.UUID) error {
	f, err := uc.repo.GetFriendship(ctx, friendshipID)
	if err != nil {
		return errors.ErrFriendshipNotFound
	}
	if f.AddresseeID != userID || f.Status != models.StatusPending {
		return errors.ErrFriendshipNotFound
	}

	if err := uc.repo.Delete(ctx, friendshipID); err != nil {
		uc.logger.Errorf("error while rejecting friend request: %v", err)
		return errors.Internal("error while rejecting friend request")
	}

	uc.publish(realtime.OpDelete, f)
	return nil
}

func (uc *FriendUsecase) Unfriend(ctx context.Context, userID, friendID uuid.UUID) error {
	f, err := uc.repo.GetFriendshipBetween(ctx, userID, friendID)
	if err != nil {
		uc.logger.Errorf("error while looking up friendship: %v", err)
		return errors.Internal("error while removing friend")
	}
	if f == nil || f.Status != models.StatusAccepted {
		return errors.ErrFriendshipNotFound
	}

	if err := uc.repo.Delete(ctx, f.ID); err != nil {
		uc.logger.Errorf("error while unfriending: %v", err)
		return errors.Internal("error while removing friend")
	}

	uc.publish(realtime.OpDelete, f)
	return nil
}

func (uc *FriendUsecase) IsFriend(ctx context.Context, a, b uuid.UUID) (bool, error) {
	f, err := uc.repo.GetFriendshipBetween(ctx, a, b)
	if err != nil {
		return false, errors.Internal("error while checking friendship")
	}
	return f != nil && f.Status == models.StatusAccepted, nil
}

func (uc *FriendUsecase) Block(ctx context.Context, userID, targetID uuid.UUID) error {
	if userID == targetID {
		return errors.InvalidArg("cannot block yourself")
	}

	inserted, err := uc.repo.InsertBlock(ctx, &models.Block{BlockerID: userID, BlockedID: targetID})
	if err != nil {
		uc.logger.Errorf("error while inserting block: %v", err)
		return errors.Internal("error while blocking user")
	}
	if !inserted {
		return nil
	}

	// blocking severs any existing friendship in the same stroke
	if f, err := uc.repo.GetFriendshipBetween(ctx, userID, targetID); err == nil && f != nil {
		if err := uc.repo.Delete(ctx, f.ID); err == nil {
			uc.publish(realtime.OpDelete, f)
		}
	}

	uc.feed.Publish(realtime.Event{
		Op:    realtime.OpInsert,
		Table: friend.TableBlocks,
		Scope: map[string]uuid.UUID{"blocker_id": userID},
	})
	return nil
}

func (uc *FriendUsecase) Unblock(ctx context.Context, userID, targetID uuid.UUID) error {
	removed, err := uc.repo.DeleteBlock(ctx, userID, targetID)
	if err != nil {
		uc.logger.Errorf("error while removing block: %v", err)
		return errors.Internal("error while unblocking user")
	}
	if !removed {
		return nil
	}

	uc.feed.Publish(realtime.Event{
		Op:    realtime.OpDelete,
		Table: friend.TableBlocks,
		Scope: map[string]uuid.UUID{"blocker_id": userID},
	})
	return nil
}

func (uc *FriendUsecase) IsBlocked(ctx context.Context, a, b uuid.UUID) (bool, error) {
	forward, err := uc.repo.BlockExists(ctx, a, b)
	if err != nil {
		return false, errors.Internal("error while checking blocks")
	}
	if forward {
		return true, nil
	}
	backward, err := uc.repo.BlockExists(ctx, b, a)
	if err != nil {
		return false, errors.Internal("error while checking blocks")
	}
	return backward, nil
}

func (uc *FriendUsecase) Blocks(ctx context.Context, userID uuid.UUID) ([]friend.BlockDTO, error) {
	blocks, err := uc.repo.ListBlocks(ctx, userID)
	if err != nil {
		uc.logger.Errorf("error while listing blocks: %v", err)
		return nil, errors.Internal("error while loading blocked users")
	}
	out := make([]friend.BlockDTO, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, friend.BlockToDTO(b))
	}
	return out, nil
}
