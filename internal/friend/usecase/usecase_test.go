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

	"github.com/Azotik83/Eclipse.github.io/internal/friend"
	friendMocks "github.com/Azotik83/Eclipse.github.io/internal/friend/mocks"
	models "github.com/Azotik83/Eclipse.github.io/internal/friend/model"
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

func newUsecase(t *testing.T) (*FriendUsecase, *friendMocks.MockFriendRepository, *profileMocks.MockProfileRepository, *feedRecorder) {
	ctrl := gomock.NewController(t)
	mockRepo := friendMocks.NewMockFriendRepository(ctrl)
	mockProfiles := profileMocks.NewMockProfileRepository(ctrl)
	feed := &feedRecorder{}
	return NewFriendUsecase(mockRepo, mockProfiles, feed, logger.Logger{}), mockRepo, mockProfiles, feed
}

func TestFriendUsecase_SendRequest(t *testing.T) {
	userID := uuid.New()
	targetID := uuid.New()

	t.Run("happy path - pending request created and published", func(t *testing.T) {
		uc, mockRepo, mockProfiles, feed := newUsecase(t)

		mockProfiles.EXPECT().GetByID(gomock.Any(), targetID).
			Return(&profileModels.Profile{ID: targetID, Username: "target"}, nil)
		mockRepo.EXPECT().BlockExists(gomock.Any(), userID, targetID).Return(false, nil)
		mockRepo.EXPECT().BlockExists(gomock.Any(), targetID, userID).Return(false, nil)
		mockRepo.EXPECT().GetFriendshipBetween(gomock.Any(), userID, targetID).Return(nil, nil)
		mockRepo.EXPECT().
			InsertRequest(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f *models.Friendship) error {
				f.ID = uuid.New()
				f.CreatedAt = time.Now()
				return nil
			})

		dto, err := uc.SendRequest(context.Background(), userID, targetID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, dto.Status)
		assert.True(t, dto.Outgoing)
		assert.Equal(t, "target", dto.Other.Username)

		events := feed.all()
		require.Len(t, events, 1)
		assert.Equal(t, realtime.OpInsert, events[0].Op)
		assert.Equal(t, friend.TableFriendships, events[0].Table)
		assert.Equal(t, userID, events[0].Scope["requester_id"])
		assert.Equal(t, targetID, events[0].Scope["addressee_id"])
	})

	t.Run("sad path - friending yourself", func(t *testing.T) {
		uc, _, _, _ := newUsecase(t)

		_, err := uc.SendRequest(context.Background(), userID, userID)
		assert.Equal(t, appErrors.ErrSelfFriendship, err)
	})

	t.Run("sad path - opposite-direction pending counts as existing", func(t *testing.T) {
		uc, mockRepo, mockProfiles, feed := newUsecase(t)

		mockProfiles.EXPECT().GetByID(gomock.Any(), targetID).
			Return(&profileModels.Profile{ID: targetID}, nil)
		mockRepo.EXPECT().BlockExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
		mockRepo.EXPECT().GetFriendshipBetween(gomock.Any(), userID, targetID).
			Return(&models.Friendship{
				ID:          uuid.New(),
				RequesterID: targetID,
				AddresseeID: userID,
				Status:      models.StatusPending,
			}, nil)

		_, err := uc.SendRequest(context.Background(), userID, targetID)
		assert.Equal(t, appErrors.ErrFriendshipExists, err)
		assert.Empty(t, feed.all())
	})

	t.Run("sad path - blocked pair cannot friend", func(t *testing.T) {
		uc, mockRepo, mockProfiles, _ := newUsecase(t)

		mockProfiles.EXPECT().GetByID(gomock.Any(), targetID).
			Return(&profileModels.Profile{ID: targetID}, nil)
		mockRepo.EXPECT().BlockExists(gomock.Any(), userID, targetID).Return(false, nil)
		mockRepo.EXPECT().BlockExists(gomock.Any(), targetID, userID).Return(true, nil)

		_, err := uc.SendRequest(context.Background(), userID, targetID)
		assert.Equal(t, appErrors.Forbidden("cannot send a friend request to this user"), err)
	})
}

func TestFriendUsecase_AcceptReject(t *testing.T) {
	requesterID := uuid.New()
	addresseeID := uuid.New()
	friendshipID := uuid.New()

	pending := func() *models.Friendship {
		return &models.Friendship{
			ID:          friendshipID,
			RequesterID: requesterID,
			AddresseeID: addresseeID,
			Status:      models.StatusPending,
		}
	}

	t.Run("happy path - addressee accepts", func(t *testing.T) {
		uc, mockRepo, _, feed := newUsecase(t)

		mockRepo.EXPECT().GetFriendship(gomock.Any(), friendshipID).Return(pending(), nil)
		mockRepo.EXPECT().Accept(gomock.Any(), friendshipID).Return(nil)

		require.NoError(t, uc.Accept(context.Background(), addresseeID, friendshipID))

		events := feed.all()
		require.Len(t, events, 1)
		assert.Equal(t, realtime.OpUpdate, events[0].Op)
	})

	t.Run("sad path - requester cannot accept their own request", func(t *testing.T) {
		uc, mockRepo, _, feed := newUsecase(t)

		mockRepo.EXPECT().GetFriendship(gomock.Any(), friendshipID).Return(pending(), nil)

		err := uc.Accept(context.Background(), requesterID, friendshipID)
		assert.Equal(t, appErrors.ErrFriendshipNotFound, err)
		assert.Empty(t, feed.all())
	})

	t.Run("happy path - reject deletes the row", func(t *testing.T) {
		uc, mockRepo, _, feed := newUsecase(t)

		mockRepo.EXPECT().GetFriendship(gomock.Any(), friendshipID).Return(pending(), nil)
		mockRepo.EXPECT().Delete(gomock.Any(), friendshipID).Return(nil)

		require.NoError(t, uc.Reject(context.Background(), addresseeID, friendshipID))

		events := feed.all()
		require.Len(t, events, 1)
		assert.Equal(t, realtime.OpDelete, events[0].Op)
	})
}

func TestFriendUsecase_Unfriend(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	accepted := &models.Friendship{
		ID:          uuid.New(),
		RequesterID: a,
		AddresseeID: b,
		Status:      models.StatusAccepted,
	}

	t.Run("happy path - either side can remove", func(t *testing.T) {
		uc, mockRepo, _, feed := newUsecase(t)

		// the addressee, not the original requester, removes the friendship
		mockRepo.EXPECT().GetFriendshipBetween(gomock.Any(), b, a).Return(accepted, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), accepted.ID).Return(nil)

		require.NoError(t, uc.Unfriend(context.Background(), b, a))
		require.Len(t, feed.all(), 1)
	})

	t.Run("sad path - no accepted friendship", func(t *testing.T) {
		uc, mockRepo, _, _ := newUsecase(t)

		mockRepo.EXPECT().GetFriendshipBetween(gomock.Any(), a, b).Return(nil, nil)

		err := uc.Unfriend(context.Background(), a, b)
		assert.Equal(t, appErrors.ErrFriendshipNotFound, err)
	})
}

func TestFriendUsecase_IsFriend(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	t.Run("symmetric for accepted rows", func(t *testing.T) {
		uc, mockRepo, _, _ := newUsecase(t)

		row := &models.Friendship{RequesterID: a, AddresseeID: b, Status: models.StatusAccepted}
		mockRepo.EXPECT().GetFriendshipBetween(gomock.Any(), a, b).Return(row, nil)
		mockRepo.EXPECT().GetFriendshipBetween(gomock.Any(), b, a).Return(row, nil)

		ab, err := uc.IsFriend(context.Background(), a, b)
		require.NoError(t, err)
		ba, err := uc.IsFriend(context.Background(), b, a)
		require.NoError(t, err)
		assert.True(t, ab)
		assert.Equal(t, ab, ba)
	})

	t.Run("pending is not friendship", func(t *testing.T) {
		uc, mockRepo, _, _ := newUsecase(t)

		mockRepo.EXPECT().GetFriendshipBetween(gomock.Any(), a, b).
			Return(&models.Friendship{RequesterID: a, AddresseeID: b, Status: models.StatusPending}, nil)

		ok, err := uc.IsFriend(context.Background(), a, b)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestFriendUsecase_Block(t *testing.T) {
	userID := uuid.New()
	targetID := uuid.New()

	t.Run("happy path - block severs an existing friendship", func(t *testing.T) {
		uc, mockRepo, _, feed := newUsecase(t)

		existing := &models.Friendship{
			ID:          uuid.New(),
			RequesterID: targetID,
			AddresseeID: userID,
			Status:      models.StatusAccepted,
		}
		mockRepo.EXPECT().InsertBlock(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().GetFriendshipBetween(gomock.Any(), userID, targetID).Return(existing, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), existing.ID).Return(nil)

		require.NoError(t, uc.Block(context.Background(), userID, targetID))

		events := feed.all()
		require.Len(t, events, 2)
		assert.Equal(t, friend.TableFriendships, events[0].Table)
		assert.Equal(t, realtime.OpDelete, events[0].Op)
		assert.Equal(t, friend.TableBlocks, events[1].Table)
	})

	t.Run("happy path - repeat block is idempotent", func(t *testing.T) {
		uc, mockRepo, _, feed := newUsecase(t)

		mockRepo.EXPECT().InsertBlock(gomock.Any(), gomock.Any()).Return(false, nil)

		require.NoError(t, uc.Block(context.Background(), userID, targetID))
		assert.Empty(t, feed.all())
	})

	t.Run("IsBlocked sees both directions", func(t *testing.T) {
		uc, mockRepo, _, _ := newUsecase(t)

		mockRepo.EXPECT().BlockExists(gomock.Any(), userID, targetID).Return(false, nil)
		mockRepo.EXPECT().BlockExists(gomock.Any(), targetID, userID).Return(true, nil)

		blocked, err := uc.IsBlocked(context.Background(), userID, targetID)
		require.NoError(t, err)
		assert.True(t, blocked)
	})
}
