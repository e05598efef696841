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

	"github.com/Azotik83/Eclipse.github.io/internal/dm"
	dmMocks "github.com/Azotik83/Eclipse.github.io/internal/dm/mocks"
	models "github.com/Azotik83/Eclipse.github.io/internal/dm/model"
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

func pairConversation(a, b uuid.UUID) *models.Conversation {
	low, high := models.NormalizePair(a, b)
	return &models.Conversation{
		ID:          uuid.New(),
		UserLow:     low,
		UserHigh:    high,
		LowProfile:  &profileModels.Profile{ID: low, Username: "low"},
		HighProfile: &profileModels.Profile{ID: high, Username: "high"},
		CreatedAt:   time.Now(),
	}
}

func TestDMUsecase_StartConversation(t *testing.T) {
	userID := uuid.New()
	partnerID := uuid.New()

	t.Run("happy path - conversation resolved and event published", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := dmMocks.NewMockDMRepository(ctrl)
		mockProfiles := profileMocks.NewMockProfileRepository(ctrl)
		feed := &feedRecorder{}

		uc := NewDMUsecase(mockRepo, mockProfiles, feed, logger.Logger{})

		conv := pairConversation(userID, partnerID)
		mockProfiles.EXPECT().GetByID(gomock.Any(), partnerID).
			Return(&profileModels.Profile{ID: partnerID}, nil)
		mockRepo.EXPECT().GetOrCreateConversation(gomock.Any(), userID, partnerID).Return(conv, nil)

		dto, err := uc.StartConversation(context.Background(), userID, partnerID)
		require.NoError(t, err)
		assert.Equal(t, conv.ID, dto.ID)
		// the partner projection is the other side of the pair
		assert.NotEqual(t, userID, dto.Partner.ID)

		events := feed.all()
		require.Len(t, events, 1)
		assert.Equal(t, dm.TableConversations, events[0].Table)
		assert.Equal(t, conv.UserLow, events[0].Scope["user_low"])
		assert.Equal(t, conv.UserHigh, events[0].Scope["user_high"])
	})

	t.Run("happy path - both initiators land on the same conversation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := dmMocks.NewMockDMRepository(ctrl)
		mockProfiles := profileMocks.NewMockProfileRepository(ctrl)

		uc := NewDMUsecase(mockRepo, mockProfiles, &feedRecorder{}, logger.Logger{})

		conv := pairConversation(userID, partnerID)
		mockProfiles.EXPECT().GetByID(gomock.Any(), gomock.Any()).
			Return(&profileModels.Profile{}, nil).Times(2)
		mockRepo.EXPECT().GetOrCreateConversation(gomock.Any(), userID, partnerID).Return(conv, nil)
		mockRepo.EXPECT().GetOrCreateConversation(gomock.Any(), partnerID, userID).Return(conv, nil)

		first, err := uc.StartConversation(context.Background(), userID, partnerID)
		require.NoError(t, err)
		second, err := uc.StartConversation(context.Background(), partnerID, userID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("sad path - talking to yourself", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := dmMocks.NewMockDMRepository(ctrl)
		mockProfiles := profileMocks.NewMockProfileRepository(ctrl)

		uc := NewDMUsecase(mockRepo, mockProfiles, &feedRecorder{}, logger.Logger{})

		_, err := uc.StartConversation(context.Background(), userID, userID)
		assert.Equal(t, appErrors.ErrSelfConversation, err)
	})

	t.Run("sad path - unknown partner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := dmMocks.NewMockDMRepository(ctrl)
		mockProfiles := profileMocks.NewMockProfileRepository(ctrl)

		uc := NewDMUsecase(mockRepo, mockProfiles, &feedRecorder{}, logger.Logger{})

		mockProfiles.EXPECT().GetByID(gomock.Any(), partnerID).
			Return(nil, appErrors.ErrProfileNotFound)

		_, err := uc.StartConversation(context.Background(), userID, partnerID)
		assert.Equal(t, appErrors.ErrProfileNotFound, err)
	})
}

func TestDMUsecase_Send(t *testing.T) {
	userID := uuid.New()
	partnerID := uuid.New()
	conv := pairConversation(userID, partnerID)

	cmd := dm.SendDirectMessageCommand{
		ConversationID: conv.ID,
		SenderID:       userID,
		Content:        "hey",
	}

	t.Run("happy path - message insert plus conversation bump", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := dmMocks.NewMockDMRepository(ctrl)
		mockProfiles := profileMocks.NewMockProfileRepository(ctrl)
		feed := &feedRecorder{}

		uc := NewDMUsecase(mockRepo, mockProfiles, feed, logger.Logger{})

		msgID := uuid.New()
		mockRepo.EXPECT().GetConversation(gomock.Any(), conv.ID).Return(conv, nil)
		mockProfiles.EXPECT().GetByID(gomock.Any(), userID).
			Return(&profileModels.Profile{ID: userID, Username: "low"}, nil)
		mockRepo.EXPECT().
			InsertMessage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m *models.DirectMessage) error {
				m.ID = msgID
				m.CreatedAt = time.Now()
				return nil
			})
		mockRepo.EXPECT().TouchConversation(gomock.Any(), conv.ID, gomock.Any()).Return(nil)

		dto, err := uc.Send(context.Background(), cmd)
		require.NoError(t, err)
		assert.Equal(t, msgID, dto.ID)

		events := feed.all()
		require.Len(t, events, 2)
		assert.Equal(t, dm.TableDirectMessages, events[0].Table)
		assert.Equal(t, realtime.OpInsert, events[0].Op)
		assert.Equal(t, conv.ID, events[0].Scope["conversation_id"])
		assert.Equal(t, dm.TableConversations, events[1].Table)
		assert.Equal(t, realtime.OpUpdate, events[1].Op)
	})

	t.Run("sad path - sender is not a participant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := dmMocks.NewMockDMRepository(ctrl)
		mockProfiles := profileMocks.NewMockProfileRepository(ctrl)
		feed := &feedRecorder{}

		uc := NewDMUsecase(mockRepo, mockProfiles, feed, logger.Logger{})

		mockRepo.EXPECT().GetConversation(gomock.Any(), conv.ID).Return(conv, nil)

		outsiderCmd := cmd
		outsiderCmd.SenderID = uuid.New()
		_, err := uc.Send(context.Background(), outsiderCmd)
		assert.Equal(t, appErrors.Forbidden("sender is not part of this conversation"), err)
		assert.Empty(t, feed.all())
	})

	t.Run("sad path - empty content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := dmMocks.NewMockDMRepository(ctrl)
		mockProfiles := profileMocks.NewMockProfileRepository(ctrl)

		uc := NewDMUsecase(mockRepo, mockProfiles, &feedRecorder{}, logger.Logger{})

		emptyCmd := cmd
		emptyCmd.Content = "  "
		_, err := uc.Send(context.Background(), emptyCmd)
		assert.Equal(t, appErrors.ErrEmptyMessage, err)
	})

	t.Run("sad path - banned sender", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := dmMocks.NewMockDMRepository(ctrl)
		mockProfiles := profileMocks.NewMockProfileRepository(ctrl)

		uc := NewDMUsecase(mockRepo, mockProfiles, &feedRecorder{}, logger.Logger{})

		mockRepo.EXPECT().GetConversation(gomock.Any(), conv.ID).Return(conv, nil)
		mockProfiles.EXPECT().GetByID(gomock.Any(), userID).
			Return(&profileModels.Profile{ID: userID, IsBanned: true}, nil)

		_, err := uc.Send(context.Background(), cmd)
		assert.Equal(t, appErrors.ErrSenderBanned, err)
	})
}
