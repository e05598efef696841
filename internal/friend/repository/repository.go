package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "github.com/Azotik83/Eclipse.github.io/internal/friend/model"
	"github.com/Azotik83/Eclipse.github.io/pkg/logger"
)

type FriendRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var ErrFriendshipNotFound = errors.New("friendship not found")

func NewFriendRepository(db *bun.DB, logger logger.Logger) *FriendRepository {
	return &FriendRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *FriendRepository) InsertRequest(ctx context.Context, f *models.Friendship) error {
	_, err := r.db.NewInsert().Model(f).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "friendRepo.InsertRequest.Exec: ")
	}
	return nil
}

func (r *FriendRepository) GetFriendship(ctx context.Context, id uuid.UUID) (*models.Friendship, error) {
	f := new(models.Friendship)
	err := r.db.NewSelect().
		Model(f).
		Relation("Requester").
		Relation("Addressee").
		Where("friendship.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFriendshipNotFound
		}
		return nil, errors.Wrap(err, "friendRepo.GetFriendship.Scan: ")
	}
	return f, nil
}

func (r *FriendRepository) GetFriendshipBetween(ctx context.Context, a, b uuid.UUID) (*models.Friendship, error) {
	f := new(models.Friendship)
	err := r.db.NewSelect().
		Model(f).
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)", a, b, b, a).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "friendRepo.GetFriendshipBetween.Scan: ")
	}
	return f, nil
}

func (r *FriendRepository) Accept(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.NewUpdate().
		Model((*models.Friendship)(nil)).
		Set("status = ?", models.StatusAccepted).
		Set("updated_at = current_timestamp").
		Where("id = ? AND status = ?", id, models.StatusPending).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "friendRepo.Accept.Exec: ")
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrFriendshipNotFound
	}
	return nil
}

func (r *FriendRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.NewDelete().
		Model((*models.Friendship)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "friendRepo.Delete.Exec: ")
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrFriendshipNotFound
	}
	return nil
}

func (r *FriendRepository) ListAccepted(ctx context.Context, userID uuid.UUID) ([]*models.Friendship, error) {
	return r.list(ctx, "friendRepo.ListAccepted", func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("friendship.status = ?", models.StatusAccepted).
			Where("friendship.requester_id = ? OR friendship.addressee_id = ?", userID, userID)
	})
}

func (r *FriendRepository) ListPendingReceived(ctx context.Context, userID uuid.UUID) ([]*models.Friendship, error) {
	return r.list(ctx, "friendRepo.ListPendingReceived", func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("friendship.status = ?", models.StatusPending).
			Where("friendship.addressee_id = ?", userID)
	})
}

func (r *FriendRepository) ListPendingSent(ctx context.Context, userID uuid.UUID) ([]*models.Friendship, error) {
	return r.list(ctx, "friendRepo.ListPendingSent", func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("friendship.status = ?", models.StatusPending).
			Where("friendship.requester_id = ?", userID)
	})
}

func (r *FriendRepository) list(ctx context.Context, op string, where func(*bun.SelectQuery) *bun.SelectQuery) ([]*models.Friendship, error) {
	var rows []*models.Friendship
	q := r.db.NewSelect().
		Model(&rows).
		Relation("Requester").
		Relation("Addressee").
		Order("friendship.created_at ASC")
	if err := where(q).Scan(ctx); err != nil {
		return nil, errors.Wrap(err, op+".Scan: ")
	}
	return rows, nil
}

func (r *FriendRepository) InsertBlock(ctx context.Context, b *models.Block) (bool, error) {
	res, err := r.db.NewInsert().
		Model(b).
		On("CONFLICT (blocker_id, blocked_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, errors.Wrap(err, "friendRepo.InsertBlock.Exec: ")
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}

func (r *FriendRepository) DeleteBlock(ctx context.Context, blockerID, blockedID uuid.UUID) (bool, error) {
	res, err := r.db.NewDelete().
		Model((*models.Block)(nil)).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Exec(ctx)
	if err != nil {
		return false, errors.Wrap(err, "friendRepo.DeleteBlock.Exec: ")
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}

func (r *FriendRepository) ListBlocks(ctx context.Context, blockerID uuid.UUID) ([]*models.Block, error) {
	var blocks []*models.Block
	err := r.db.NewSelect().
		Model(&blocks).
		Relation("Blocked").
		Where("block.blocker_id = ?", blockerID).
		Order("block.created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "friendRepo.ListBlocks.Scan: ")
	}
	return blocks, nil
}

func (r *FriendRepository) BlockExists(ctx context.Context, blockerID, blockedID uuid.UUID) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*models.Block)(nil)).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "friendRepo.BlockExists.Exists: ")
	}
	return exists, nil
}
