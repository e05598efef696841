package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "github.com/Azotik83/Eclipse.github.io/internal/forum/model"
	"github.com/Azotik83/Eclipse.github.io/pkg/logger"
)

type ForumRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrPostNotFound  = errors.New("forum post not found")
	ErrReplyNotFound = errors.New("forum reply not found")
)

func NewForumRepository(db *bun.DB, logger logger.Logger) *ForumRepository {
	return &ForumRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *ForumRepository) ListPosts(ctx context.Context, channelID uuid.UUID, limit, offset int) ([]*models.ForumPost, error) {
	var posts []*models.ForumPost
	err := r.db.NewSelect().
		Model(&posts).
		Relation("Author").
		Where("forum_post.channel_id = ?", channelID).
		Order("forum_post.is_pinned DESC").
		Order("forum_post.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "forumRepo.ListPosts.Scan: ")
	}
	return posts, nil
}

func (r *ForumRepository) GetPost(ctx context.Context, id uuid.UUID) (*models.ForumPost, error) {
	post := new(models.ForumPost)
	err := r.db.NewSelect().
		Model(post).
		Relation("Author").
		Where("forum_post.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, errors.Wrap(err, "forumRepo.GetPost.Scan: ")
	}
	return post, nil
}

func (r *ForumRepository) InsertPost(ctx context.Context, p *models.ForumPost) error {
	_, err := r.db.NewInsert().Model(p).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "forumRepo.InsertPost.Exec: ")
	}
	return nil
}

func (r *ForumRepository) SetPinned(ctx context.Context, id uuid.UUID, pinned bool) error {
	res, err := r.db.NewUpdate().
		Model((*models.ForumPost)(nil)).
		Set("is_pinned = ?", pinned).
		Set("updated_at = current_timestamp").
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "forumRepo.SetPinned.Exec: ")
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (r *ForumRepository) InsertReply(ctx context.Context, reply *models.ForumReply) error {
	err := r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(reply).Returning("*").Exec(ctx); err != nil {
			return err
		}
		res, err := tx.NewUpdate().
			Model((*models.ForumPost)(nil)).
			Set("reply_count = reply_count + 1").
			Set("updated_at = current_timestamp").
			Where("id = ?", reply.PostID).
			Exec(ctx)
		if err != nil {
			return err
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return ErrPostNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return ErrPostNotFound
		}
		return errors.Wrap(err, "forumRepo.InsertReply.Tx: ")
	}
	return nil
}

func (r *ForumRepository) GetReplyPage(ctx context.Context, postID uuid.UUID, before time.Time, limit int) ([]*models.ForumReply, error) {
	var replies []*models.ForumReply
	q := r.db.NewSelect().
		Model(&replies).
		Relation("Author").
		Where("forum_reply.post_id = ?", postID).
		Order("forum_reply.created_at DESC").
		Order("forum_reply.id DESC").
		Limit(limit)
	if !before.IsZero() {
		q = q.Where("forum_reply.created_at < ?", before)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, errors.Wrap(err, "forumRepo.GetReplyPage.Scan: ")
	}
	return replies, nil
}

func (r *ForumRepository) GetReply(ctx context.Context, id uuid.UUID) (*models.ForumReply, error) {
	reply := new(models.ForumReply)
	err := r.db.NewSelect().
		Model(reply).
		Relation("Author").
		Where("forum_reply.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReplyNotFound
		}
		return nil, errors.Wrap(err, "forumRepo.GetReply.Scan: ")
	}
	return reply, nil
}
