package forum

import (
	"context"

	"github.com/google/uuid"
)

type ForumUsecase interface {
	ListPosts(ctx context.Context, channelID uuid.UUID, limit, offset int) ([]PostDTO, error)
	GetPost(ctx context.Context, id uuid.UUID) (*PostDTO, error)

	CreatePost(ctx context.Context, cmd CreatePostCommand) (*PostDTO, error)
	AddReply(ctx context.Context, cmd AddReplyCommand) (*ReplyDTO, error)

	// SetPinned is restricted to moderators.
	SetPinned(ctx context.Context, actorID, postID uuid.UUID, pinned bool) error
}
