package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	profileMocks "github.com/Azotik83/Eclipse.github.io/internal/profile/mocks"
	profileModels "github.com/Azotik83/Eclipse.github.io/internal/profile/model"
	"github.com/Azotik83/Eclipse.github.io/internal/realtime"
	"github.com/Azotik83/Eclipse.github.io/internal/voice"
	voiceMocks "github.com/Azotik83/Eclipse.github.io/internal/voice/mocks"
	models "github.com/Azotik83/Eclipse.github.io/internal/voice/model"
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

func newUsecase(t *testing.T) (*VoiceUsecase, *voiceMocks.MockVoiceRepository, *profileMocks.MockProfileRepository, *feedRecorder) {
	ctrl := gomock.NewController(t)
	mockRepo := voiceMocks.NewMockVoiceRepository(ctrl)
	mockProfiles := profileMocks.NewMockProfileRepository(ctrl)
	feed := &feedRecorder{}
	return NewVoiceUsecase(mockRepo, mockProfiles, feed, logger.Logger{}), mockRepo, mockProfiles, feed
}

func activeRoom(channelID uuid.UUID, occupants ...uuid.UUID) *models.VoiceRoom {
	room := &models.VoiceRoom{
		ID:        uuid.New(),
		ChannelID: channelID,
		Name:      "lobby",
		IsActive:  true,
	}
	for _, u := range occupants {
		room.Participants = append(room.Participants, &models.VoiceParticipant{
			RoomID:  room.ID,
			UserID:  u,
			Profile: &profileModels.Profile{ID: u},
		})
	}
	return room
}

func TestVoiceUsecase_CreateRoom(t *testing.T) {
	channelID := uuid.New()
	creatorID := uuid.New()

	t.Run("happy path - creator vacates old seats and lands in the new room", func(t *testing.T) {
		uc, mockRepo, mockProfiles, feed := newUsecase(t)

		oldRoom := activeRoom(uuid.New())

		mockProfiles.EXPECT().GetByID(gomock.Any(), creatorID).
			Return(&profileModels.Profile{ID: creatorID}, nil)
		mockRepo.EXPECT().DeleteAllForUser(gomock.Any(), creatorID).
			Return([]*models.VoiceRoom{oldRoom}, nil)
		mockRepo.EXPECT().CountParticipants(gomock.Any(), oldRoom.ID).Return(0, nil)
		mockRepo.EXPECT().DeactivateRoom(gomock.Any(), oldRoom.ID).Return(nil)
		mockRepo.EXPECT().CreateRoom(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, room *models.VoiceRoom) error {
				room.ID = uuid.New()
				return nil
			})
		mockRepo.EXPECT().InsertParticipant(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().GetRoom(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (*models.VoiceRoom, error) {
				room := activeRoom(channelID, creatorID)
				room.ID = id
				return room, nil
			})

		dto, err := uc.CreateRoom(context.Background(), voice.CreateRoomCommand{
			ChannelID: channelID,
			CreatorID: creatorID,
			Name:      "  lobby  ",
		})
		require.NoError(t, err)
		require.Len(t, dto.Participants, 1)
		assert.Equal(t, creatorID, dto.Participants[0].UserID)

		// old room emptied and closed, new room announced
		events := feed.all()
		require.Len(t, events, 3)
		assert.Equal(t, voice.TableVoiceParticipants, events[0].Table)
		assert.Equal(t, realtime.OpDelete, events[0].Op)
		assert.Equal(t, voice.TableVoiceRooms, events[1].Table)
		assert.Equal(t, realtime.OpDelete, events[1].Op)
		assert.Equal(t, oldRoom.ChannelID, events[1].Scope["channel_id"])
		assert.Equal(t, voice.TableVoiceRooms, events[2].Table)
		assert.Equal(t, realtime.OpInsert, events[2].Op)
		assert.Equal(t, channelID, events[2].Scope["channel_id"])
	})

	t.Run("sad path - empty name", func(t *testing.T) {
		uc, _, _, _ := newUsecase(t)

		_, err := uc.CreateRoom(context.Background(), voice.CreateRoomCommand{
			ChannelID: channelID,
			CreatorID: creatorID,
			Name:      "   ",
		})
		assert.Equal(t, appErrors.CodeInvalidArgument, appErrors.CodeOf(err))
	})
}

func TestVoiceUsecase_Join(t *testing.T) {
	channelID := uuid.New()
	userID := uuid.New()

	t.Run("happy path - join vacates every previous seat first", func(t *testing.T) {
		uc, mockRepo, _, feed := newUsecase(t)

		target := activeRoom(channelID, uuid.New())
		previous := activeRoom(uuid.New())

		mockRepo.EXPECT().GetRoom(gomock.Any(), target.ID).Return(target, nil)
		mockRepo.EXPECT().DeleteAllForUser(gomock.Any(), userID).
			Return([]*models.VoiceRoom{previous}, nil)
		// previous room still has someone, so it stays open
		mockRepo.EXPECT().CountParticipants(gomock.Any(), previous.ID).Return(1, nil)
		mockRepo.EXPECT().InsertParticipant(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *models.VoiceParticipant) (bool, error) {
				assert.Equal(t, target.ID, p.RoomID)
				assert.Equal(t, userID, p.UserID)
				return true, nil
			})

		require.NoError(t, uc.Join(context.Background(), target.ID, userID))

		events := feed.all()
		require.Len(t, events, 2)
		assert.Equal(t, previous.ChannelID, events[0].Scope["channel_id"])
		assert.Equal(t, channelID, events[1].Scope["channel_id"])
		assert.Equal(t, realtime.OpInsert, events[1].Op)
	})

	t.Run("happy path - joining the current room is a silent no-op", func(t *testing.T) {
		uc, mockRepo, _, feed := newUsecase(t)

		room := activeRoom(channelID, userID)
		mockRepo.EXPECT().GetRoom(gomock.Any(), room.ID).Return(room, nil)

		require.NoError(t, uc.Join(context.Background(), room.ID, userID))
		assert.Empty(t, feed.all())
	})

	t.Run("sad path - inactive room", func(t *testing.T) {
		uc, mockRepo, _, _ := newUsecase(t)

		room := activeRoom(channelID)
		room.IsActive = false
		mockRepo.EXPECT().GetRoom(gomock.Any(), room.ID).Return(room, nil)

		err := uc.Join(context.Background(), room.ID, userID)
		assert.Equal(t, appErrors.ErrRoomInactive, err)
	})

	t.Run("sad path - unknown room", func(t *testing.T) {
		uc, mockRepo, _, _ := newUsecase(t)

		roomID := uuid.New()
		mockRepo.EXPECT().GetRoom(gomock.Any(), roomID).Return(nil, assert.AnError)

		err := uc.Join(context.Background(), roomID, userID)
		assert.Equal(t, appErrors.ErrRoomNotFound, err)
	})
}

func TestVoiceUsecase_Leave(t *testing.T) {
	channelID := uuid.New()
	userID := uuid.New()

	t.Run("happy path - last participant out closes the room", func(t *testing.T) {
		uc, mockRepo, _, feed := newUsecase(t)

		room := activeRoom(channelID, userID)
		mockRepo.EXPECT().GetRoom(gomock.Any(), room.ID).Return(room, nil)
		mockRepo.EXPECT().DeleteParticipant(gomock.Any(), room.ID, userID).Return(true, nil)
		mockRepo.EXPECT().CountParticipants(gomock.Any(), room.ID).Return(0, nil)
		mockRepo.EXPECT().DeactivateRoom(gomock.Any(), room.ID).Return(nil)

		require.NoError(t, uc.Leave(context.Background(), room.ID, userID))

		events := feed.all()
		require.Len(t, events, 2)
		assert.Equal(t, voice.TableVoiceParticipants, events[0].Table)
		assert.Equal(t, voice.TableVoiceRooms, events[1].Table)
		assert.Equal(t, realtime.OpDelete, events[1].Op)
	})

	t.Run("happy path - others remain, room stays open", func(t *testing.T) {
		uc, mockRepo, _, feed := newUsecase(t)

		room := activeRoom(channelID, userID, uuid.New())
		mockRepo.EXPECT().GetRoom(gomock.Any(), room.ID).Return(room, nil)
		mockRepo.EXPECT().DeleteParticipant(gomock.Any(), room.ID, userID).Return(true, nil)
		mockRepo.EXPECT().CountParticipants(gomock.Any(), room.ID).Return(1, nil)

		require.NoError(t, uc.Leave(context.Background(), room.ID, userID))
		require.Len(t, feed.all(), 1)
	})

	t.Run("happy path - leaving a room you are not in does nothing", func(t *testing.T) {
		uc, mockRepo, _, feed := newUsecase(t)

		room := activeRoom(channelID, uuid.New())
		mockRepo.EXPECT().GetRoom(gomock.Any(), room.ID).Return(room, nil)
		mockRepo.EXPECT().DeleteParticipant(gomock.Any(), room.ID, userID).Return(false, nil)

		require.NoError(t, uc.Leave(context.Background(), room.ID, userID))
		assert.Empty(t, feed.all())
	})
}

func TestVoiceUsecase_ToggleMute(t *testing.T) {
	channelID := uuid.New()
	userID := uuid.New()

	t.Run("happy path - flips and reports the new state", func(t *testing.T) {
		uc, mockRepo, _, feed := newUsecase(t)

		room := activeRoom(channelID, userID)
		mockRepo.EXPECT().GetRoom(gomock.Any(), room.ID).Return(room, nil)
		mockRepo.EXPECT().ToggleMute(gomock.Any(), room.ID, userID).Return(true, nil)

		muted, err := uc.ToggleMute(context.Background(), room.ID, userID)
		require.NoError(t, err)
		assert.True(t, muted)

		events := feed.all()
		require.Len(t, events, 1)
		assert.Equal(t, realtime.OpUpdate, events[0].Op)
		assert.Equal(t, channelID, events[0].Scope["channel_id"])
	})
}

func TestVoiceUsecase_CurrentRoom(t *testing.T) {
	userID := uuid.New()

	t.Run("happy path - nowhere means nil, not an error", func(t *testing.T) {
		uc, mockRepo, _, _ := newUsecase(t)

		mockRepo.EXPECT().CurrentRoomForUser(gomock.Any(), userID).Return(nil, nil)

		dto, err := uc.CurrentRoom(context.Background(), userID)
		require.NoError(t, err)
		assert.Nil(t, dto)
	})
}
