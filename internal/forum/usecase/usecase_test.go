package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azotik83/Eclipse.github.io/internal/forum"
	forumMocks "github.com/Azotik83/Eclipse.github.io/internal/forum/mocks"
	models "github.com/Azotik83/Eclipse.github.io/internal/forum/model"
	forumRepo "github.com/Azotik83/Eclipse.github.io/internal/forum/repository"
	profileMocks "github.com/Azotik83/Eclipse.github.io/internal/profile/mocks"
	profileModels "github.com/Azotik83/Eclipse.github.io/internal/profile/model"
	"github.com/Azotik83/Eclipse.github.io/internal/realtime"
	appErrors "github.com/Azotik83/Eclipse.github.io/pkg/errors"
	"github.com/Azotik83/Eclipse.github.io/pkg/logger"
)

type feedRecorder struct {
	mu     sync.Mutex
	events []realtime.Event
}

func (f *feedRecorder) Publish(ev realtime.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
}

func (f *feedRecorder) all() []realtime.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]realtime.Event(nil), f.events...)
}

func TestForumUsecase_CreatePost(t *testing.T) {
	authorID := uuid.New()
	channelID := uuid.New()
	author := &profileModels.Profile{ID: authorID, Username: "poster"}

	cmd := forum.CreatePostCommand{
		ChannelID: channelID,
		AuthorID:  authorID,
		Title:     "Introductions",
		Content:   "say hi here",
		Tags:      []string{"meta", "welcome"},
	}

	t.Run("happy path - post created and published", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := forumMocks.NewMockForumRepository(ctrl)
		mockProfiles := profileMocks.NewMockProfileRepository(ctrl)
		feed := &feedRecorder{}

		uc := NewForumUsecase(mockRepo, mockProfiles, feed, logger.Logger{})

		mockProfiles.EXPECT().GetByID(gomock.Any(), authorID).Return(author, nil)
		mockRepo.EXPECT().
			InsertPost(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *models.ForumPost) error {
				p.ID = uuid.New()
				p.CreatedAt = time.Now()
				return nil
			})

		dto, err := uc.CreatePost(context.Background(), cmd)
		require.NoError(t, err)
		assert.Equal(t, "Introductions", dto.Title)
		assert.Equal(t, channelID, dto.ChannelID)
		assert.Equal(t, 0, dto.ReplyCount)

		events := feed.all()
		require.Len(t, events, 1)
		assert.Equal(t, forum.TablePosts, events[0].Table)
		assert.Equal(t, realtime.OpInsert, events[0].Op)
		assert.Equal(t, channelID, events[0].Scope["channel_id"])
	})

	t.Run("sad path - too many tags", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := forumMocks.NewMockForumRepository(ctrl)
		mockProfiles := profileMocks.NewMockProfileRepository(ctrl)

		uc := NewForumUsecase(mockRepo, mockProfiles, &feedRecorder{}, logger.Logger{})

		taggyCmd := cmd
		taggyCmd.Tags = []string{"a", "b", "c", "d", "e", "f"}
		_, err := uc.CreatePost(context.Background(), taggyCmd)
		assert.Equal(t, appErrors.ErrTooManyTags, err)
	})

	t.Run("sad path - missing title or body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := forumMocks.NewMockForumRepository(ctrl)
		mockProfiles := profileMocks.NewMockProfileRepository(ctrl)

		uc := NewForumUsecase(mockRepo, mockProfiles, &feedRecorder{}, logger.Logger{})

		badCmd := cmd
		badCmd.Title = "   "
		_, err := uc.CreatePost(context.Background(), badCmd)
		assert.Equal(t, appErrors.ErrEmptyPostBody, err)

		badCmd = cmd
		badCmd.Content = ""
		_, err = uc.CreatePost(context.Background(), badCmd)
		assert.Equal(t, appErrors.ErrEmptyPostBody, err)
	})

	t.Run("sad path - banned author", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := forumMocks.NewMockForumRepository(ctrl)
		mockProfiles := profileMocks.NewMockProfileRepository(ctrl)

		uc := NewForumUsecase(mockRepo, mockProfiles, &feedRecorder{}, logger.Logger{})

		mockProfiles.EXPECT().GetByID(gomock.Any(), authorID).
			Return(&profileModels.Profile{ID: authorID, IsBanned: true}, nil)

		_, err := uc.CreatePost(context.Background(), cmd)
		assert.Equal(t, appErrors.ErrSenderBanned, err)
	})
}

func TestForumUsecase_AddReply(t *testing.T) {
	authorID := uuid.New()
	postID := uuid.New()
	author := &profileModels.Profile{ID: authorID, Username: "replier"}

	cmd := forum.AddReplyCommand{
		PostID:   postID,
		AuthorID: authorID,
		Content:  "welcome!",
	}

	t.Run("happy path - reply published with post scope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := forumMocks.NewMockForumRepository(ctrl)
		mockProfiles := profileMocks.NewMockProfileRepository(ctrl)
		feed := &feedRecorder{}

		uc := NewForumUsecase(mockRepo, mockProfiles, feed, logger.Logger{})

		mockProfiles.EXPECT().GetByID(gomock.Any(), authorID).Return(author, nil)
		mockRepo.EXPECT().GetPost(gomock.Any(), postID).
			Return(&models.ForumPost{ID: postID}, nil)
		mockRepo.EXPECT().
			InsertReply(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *models.ForumReply) error {
				r.ID = uuid.New()
				r.CreatedAt = time.Now()
				return nil
			})

		dto, err := uc.AddReply(context.Background(), cmd)
		require.NoError(t, err)
		assert.Equal(t, postID, dto.PostID)

		events := feed.all()
		require.Len(t, events, 1)
		assert.Equal(t, forum.TableReplies, events[0].Table)
		assert.Equal(t, postID, events[0].Scope["post_id"])
	})

	t.Run("sad path - parent post gone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := forumMocks.NewMockForumRepository(ctrl)
		mockProfiles := profileMocks.NewMockProfileRepository(ctrl)

		uc := NewForumUsecase(mockRepo, mockProfiles, &feedRecorder{}, logger.Logger{})

		mockProfiles.EXPECT().GetByID(gomock.Any(), authorID).Return(author, nil)
		mockRepo.EXPECT().GetPost(gomock.Any(), postID).Return(nil, forumRepo.ErrPostNotFound)

		_, err := uc.AddReply(context.Background(), cmd)
		assert.Equal(t, appErrors.ErrPostNotFound, err)
	})

	t.Run("sad path - empty reply", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := forumMocks.NewMockForumRepository(ctrl)
		mockProfiles := profileMocks.NewMockProfileRepository(ctrl)

		uc := NewForumUsecase(mockRepo, mockProfiles, &feedRecorder{}, logger.Logger{})

		emptyCmd := cmd
		emptyCmd.Content = " \n "
		_, err := uc.AddReply(context.Background(), emptyCmd)
		assert.Equal(t, appErrors.ErrEmptyReply, err)
	})
}

func TestForumUsecase_SetPinned(t *testing.T) {
	postID := uuid.New()
	modoID := uuid.New()
	userID := uuid.New()

	t.Run("happy path - moderator pins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := forumMocks.NewMockForumRepository(ctrl)
		mockProfiles := profileMocks.NewMockProfileRepository(ctrl)
		feed := &feedRecorder{}

		uc := NewForumUsecase(mockRepo, mockProfiles, feed, logger.Logger{})

		mockProfiles.EXPECT().GetByID(gomock.Any(), modoID).
			Return(&profileModels.Profile{ID: modoID, Role: profileModels.RoleModo}, nil)
		mockRepo.EXPECT().SetPinned(gomock.Any(), postID, true).Return(nil)

		require.NoError(t, uc.SetPinned(context.Background(), modoID, postID, true))

		events := feed.all()
		require.Len(t, events, 1)
		assert.Equal(t, realtime.OpUpdate, events[0].Op)
	})

	t.Run("sad path - plain user cannot pin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := forumMocks.NewMockForumRepository(ctrl)
		mockProfiles := profileMocks.NewMockProfileRepository(ctrl)

		uc := NewForumUsecase(mockRepo, mockProfiles, &feedRecorder{}, logger.Logger{})

		mockProfiles.EXPECT().GetByID(gomock.Any(), userID).
			Return(&profileModels.Profile{ID: userID, Role: profileModels.RoleUser}, nil)

		err := uc.SetPinned(context.Background(), userID, postID, true)
		assert.Equal(t, appErrors.ErrInsufficientRole, err)
	})
}
