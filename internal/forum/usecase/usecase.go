package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Azotik83/Eclipse.github.io/internal/forum"
	models "github.com/Azotik83/Eclipse.github.io/internal/forum/model"
	"github.com/Azotik83/Eclipse.github.io/internal/profile"
	profileModels "github.com/Azotik83/Eclipse.github.io/internal/profile/model"
	"github.com/Azotik83/Eclipse.github.io/internal/realtime"
	"github.com/Azotik83/Eclipse.github.io/pkg/errors"
	"github.com/Azotik83/Eclipse.github.io/pkg/logger"
)

const maxTags = 5

type ForumUsecase struct {
	repo     forum.ForumRepository
	profiles profile.ProfileRepository
	feed     realtime.Publisher
	logger   logger.Logger
}

func NewForumUsecase(repo forum.ForumRepository, profiles profile.ProfileRepository, feed realtime.Publisher, logger logger.Logger) *ForumUsecase {
	return &ForumUsecase{repo: repo, profiles: profiles, feed: feed, logger: logger}
}

func (uc *ForumUsecase) ListPosts(ctx context.Context, channelID uuid.UUID, limit, offset int) ([]forum.PostDTO, error) {
	if limit <= 0 {
		limit = 20
	}
	posts, err := uc.repo.ListPosts(ctx, channelID, limit, offset)
	if err != nil {
		uc.logger.Errorf("error while listing forum posts: %v", err)
		return nil, errors.Internal("error while loading posts")
	}
	out := make([]forum.PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, forum.PostToDTO(p))
	}
	return out, nil
}

func (uc *ForumUsecase) GetPost(ctx context.Context, id uuid.UUID) (*forum.PostDTO, error) {
	post, err := uc.repo.GetPost(ctx, id)
	if err != nil {
		return nil, errors.ErrPostNotFound
	}
	dto := forum.PostToDTO(post)
	return &dto, nil
}

func (uc *ForumUsecase) CreatePost(ctx context.Context, cmd forum.CreatePostCommand) (*forum.PostDTO, error) {
	title := strings.TrimSpace(cmd.Title)
	content := strings.TrimSpace(cmd.Content)
	if title == "" || content == "" {
		return nil, errors.ErrEmptyPostBody
	}
	if len(cmd.Tags) > maxTags {
		return nil, errors.ErrTooManyTags
	}

	author, err := uc.checkSender(ctx, cmd.AuthorID)
	if err != nil {
		return nil, err
	}

	post := &models.ForumPost{
		ChannelID: cmd.ChannelID,
		AuthorID:  cmd.AuthorID,
		Title:     title,
		Content:   content,
		Tags:      cmd.Tags,
	}
	if err := uc.repo.InsertPost(ctx, post); err != nil {
		uc.logger.Errorf("error while saving forum post: %v", err)
		return nil, errors.Internal("error while creating post")
	}

	uc.feed.Publish(realtime.Event{
		Op:    realtime.OpInsert,
		Table: forum.TablePosts,
		RowID: post.ID,
		Scope: map[string]uuid.UUID{"channel_id": post.ChannelID},
	})

	post.Author = author
	dto := forum.PostToDTO(post)
	return &dto, nil
}

func (uc *ForumUsecase) AddReply(ctx context.Context, cmd forum.AddReplyCommand) (*forum.ReplyDTO, error) {
	content := strings.TrimSpace(cmd.Content)
	if content == "" {
		return nil, errors.ErrEmptyReply
	}

	author, err := uc.checkSender(ctx, cmd.AuthorID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.repo.GetPost(ctx, cmd.PostID); err != nil {
		return nil, errors.ErrPostNotFound
	}

	reply := &models.ForumReply{
		PostID:   cmd.PostID,
		AuthorID: cmd.AuthorID,
		Content:  content,
	}
	if err := uc.repo.InsertReply(ctx, reply); err != nil {
		uc.logger.Errorf("error while saving forum reply: %v", err)
		return nil, errors.Internal("error while adding reply")
	}

	uc.feed.Publish(realtime.Event{
		Op:    realtime.OpInsert,
		Table: forum.TableReplies,
		RowID: reply.ID,
		Scope: map[string]uuid.UUID{"post_id": reply.PostID},
	})

	reply.Author = author
	dto := forum.ReplyToDTO(reply)
	return &dto, nil
}

func (uc *ForumUsecase) SetPinned(ctx context.Context, actorID, postID uuid.UUID, pinned bool) error {
	actor, err := uc.profiles.GetByID(ctx, actorID)
	if err != nil {
		return errors.ErrProfileNotFound
	}
	if actor.Role.Level() < profileModels.RoleModo.Level() && !actor.IsSuperAdmin {
		return errors.ErrInsufficientRole
	}

	if err := uc.repo.SetPinned(ctx, postID, pinned); err != nil {
		uc.logger.Errorf("error while pinning forum post: %v", err)
		return errors.ErrPostNotFound
	}

	uc.feed.Publish(realtime.Event{
		Op:    realtime.OpUpdate,
		Table: forum.TablePosts,
		RowID: postID,
	})
	return nil
}

func (uc *ForumUsecase) checkSender(ctx context.Context, authorID uuid.UUID) (*profileModels.Profile, error) {
	author, err := uc.profiles.GetByID(ctx, authorID)
	if err != nil {
		return nil, errors.ErrProfileNotFound
	}
	now := time.Now()
	if author.IsCurrentlyBanned(now) {
		return nil, errors.ErrSenderBanned
	}
	if author.IsCurrentlyMuted(now) {
		return nil, errors.ErrSenderMuted
	}
	return author, nil
}
