package forum

import (
	"context"
	"time"

	"github.com/google/uuid"

	models "github.com/Azotik83/Eclipse.github.io/internal/forum/model"
)

// Tables observed by the change feed.
const (
	TablePosts   = "forum_posts"
	TableReplies = "forum_replies"
)

type ForumRepository interface {
	// ListPosts returns the channel's pinned posts first, then the rest
	// newest first, with author projections.
	ListPosts(ctx context.Context, channelID uuid.UUID, limit, offset int) ([]*models.ForumPost, error)
	GetPost(ctx context.Context, id uuid.UUID) (*models.ForumPost, error)
	InsertPost(ctx context.Context, p *models.ForumPost) error
	SetPinned(ctx context.Context, id uuid.UUID, pinned bool) error

	// InsertReply writes the reply and bumps the parent's reply_count in
	// one transaction.
	InsertReply(ctx context.Context, r *models.ForumReply) error
	GetReplyPage(ctx context.Context, postID uuid.UUID, before time.Time, limit int) ([]*models.ForumReply, error)
	GetReply(ctx context.Context, id uuid.UUID) (*models.ForumReply, error)
}
