package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Azotik83/Eclipse.github.io/internal/profile"
	"github.com/Azotik83/Eclipse.github.io/internal/realtime"
	"github.com/Azotik83/Eclipse.github.io/internal/voice"
	models "github.com/Azotik83/Eclipse.github.io/internal/voice/model"
	"github.com/Azotik83/Eclipse.github.io/pkg/errors"
	"github.com/Azotik83/Eclipse.github.io/pkg/logger"
)

type VoiceUsecase struct {
	repo     voice.VoiceRepository
	profiles profile.ProfileRepository
	feed     realtime.Publisher
	logger   logger.Logger
}

func NewVoiceUsecase(repo voice.VoiceRepository, profiles profile.ProfileRepository, feed realtime.Publisher, logger logger.Logger) *VoiceUsecase {
	return &VoiceUsecase{repo: repo, profiles: profiles, feed: feed, logger: logger}
}

func (uc *VoiceUsecase) CreateRoom(ctx context.Context, cmd voice.CreateRoomCommand) (*voice.RoomDTO, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, errors.InvalidArg("room name cannot be empty")
	}

	creator, err := uc.profiles.GetByID(ctx, cmd.CreatorID)
	if err != nil {
		return nil, errors.ErrProfileNotFound
	}
	if creator.IsCurrentlyBanned(time.Now()) {
		return nil, errors.ErrSenderBanned
	}

	if err := uc.vacate(ctx, cmd.CreatorID); err != nil {
		return nil, err
	}

	room := &models.VoiceRoom{
		ChannelID: cmd.ChannelID,
		Name:      name,
		CreatorID: cmd.CreatorID,
		IsActive:  true,
	}
	if err := uc.repo.CreateRoom(ctx, room); err != nil {
		uc.logger.Errorf("error while creating voice room: %v", err)
		return nil, errors.Internal("error while creating voice room")
	}

	if _, err := uc.repo.InsertParticipant(ctx, &models.VoiceParticipant{
		RoomID: room.ID,
		UserID: cmd.CreatorID,
	}); err != nil {
		uc.logger.Errorf("error while seating room creator: %v", err)
		return nil, errors.Internal("error while joining voice room")
	}

	uc.feed.Publish(realtime.Event{
		Op:    realtime.OpInsert,
		Table: voice.TableVoiceRooms,
		RowID: room.ID,
		Scope: map[string]uuid.UUID{"channel_id": room.ChannelID},
	})

	full, err := uc.repo.GetRoom(ctx, room.ID)
	if err != nil {
		uc.logger.Errorf("error while reloading created room: %v", err)
		return nil, errors.Internal("error while creating voice room")
	}
	dto := voice.RoomToDTO(full)
	return &dto, nil
}

func (uc *VoiceUsecase) Join(ctx context.Context, roomID, userID uuid.UUID) error {
	room, err := uc.repo.GetRoom(ctx, roomID)
	if err != nil {
		return errors.ErrRoomNotFound
	}
	if !room.IsActive {
		return errors.ErrRoomInactive
	}

	// Joining the room you are already in is a no-op, and must not go
	// through vacate or the user would kick themselves out.
	for _, p := range room.Participants {
		if p.UserID == userID {
			return nil
		}
	}

	if err := uc.vacate(ctx, userID); err != nil {
		return err
	}

	inserted, err := uc.repo.InsertParticipant(ctx, &models.VoiceParticipant{
		RoomID: roomID,
		UserID: userID,
	})
	if err != nil {
		uc.logger.Errorf("error while joining voice room: %v", err)
		return errors.Internal("error while joining voice room")
	}
	if inserted {
		uc.feed.Publish(realtime.Event{
			Op:    realtime.OpInsert,
			Table: voice.TableVoiceParticipants,
			RowID: roomID,
			Scope: map[string]uuid.UUID{"channel_id": room.ChannelID},
		})
	}
	return nil
}

func (uc *VoiceUsecase) Leave(ctx context.Context, roomID, userID uuid.UUID) error {
	room, err := uc.repo.GetRoom(ctx, roomID)
	if err != nil {
		return errors.ErrRoomNotFound
	}

	removed, err := uc.repo.DeleteParticipant(ctx, roomID, userID)
	if err != nil {
		uc.logger.Errorf("error while leaving voice room: %v", err)
		return errors.Internal("error while leaving voice room")
	}
	if !removed {
		return nil
	}

	uc.feed.Publish(realtime.Event{
		Op:    realtime.OpDelete,
		Table: voice.TableVoiceParticipants,
		RowID: roomID,
		Scope: map[string]uuid.UUID{"channel_id": room.ChannelID},
	})

	return uc.closeIfEmpty(ctx, room)
}

func (uc *VoiceUsecase) ToggleMute(ctx context.Context, roomID, userID uuid.UUID) (bool, error) {
	room, err := uc.repo.GetRoom(ctx, roomID)
	if err != nil {
		return false, errors.ErrRoomNotFound
	}

	muted, err := uc.repo.ToggleMute(ctx, roomID, userID)
	if err != nil {
		uc.logger.Errorf("error while toggling mute: %v", err)
		return false, errors.Internal("error while toggling mute")
	}

	uc.feed.Publish(realtime.Event{
		Op:    realtime.OpUpdate,
		Table: voice.TableVoiceParticipants,
		RowID: roomID,
		Scope: map[string]uuid.UUID{"channel_id": room.ChannelID},
	})
	return muted, nil
}

func (uc *VoiceUsecase) CurrentRoom(ctx context.Context, userID uuid.UUID) (*voice.RoomDTO, error) {
	room, err := uc.repo.CurrentRoomForUser(ctx, userID)
	if err != nil {
		uc.logger.Errorf("error while looking up current room: %v", err)
		return nil, errors.Internal("error while looking up current room")
	}
	if room == nil {
		return nil, nil
	}
	dto := voice.RoomToDTO(room)
	return &dto, nil
}

// vacate removes the user from every room they occupy, closing any room
// that emptied as a result. It publishes one participant event per room
// left so each affected channel reloads.
func (uc *VoiceUsecase) vacate(ctx context.Context, userID uuid.UUID) error {
	left, err := uc.repo.DeleteAllForUser(ctx, userID)
	if err != nil {
		uc.logger.Errorf("error while vacating voice rooms: %v", err)
		return errors.Internal("error while leaving voice room")
	}
	for _, room := range left {
		uc.feed.Publish(realtime.Event{
			Op:    realtime.OpDelete,
			Table: voice.TableVoiceParticipants,
			RowID: room.ID,
			Scope: map[string]uuid.UUID{"channel_id": room.ChannelID},
		})
		if err := uc.closeIfEmpty(ctx, room); err != nil {
			return err
		}
	}
	return nil
}

func (uc *VoiceUsecase) closeIfEmpty(ctx context.Context, room *models.VoiceRoom) error {
	count, err := uc.repo.CountParticipants(ctx, room.ID)
	if err != nil {
		uc.logger.Errorf("error while counting participants: %v", err)
		return errors.Internal("error while leaving voice room")
	}
	if count > 0 {
		return nil
	}
	if err := uc.repo.DeactivateRoom(ctx, room.ID); err != nil {
		uc.logger.Errorf("error while closing empty room: %v", err)
		return errors.Internal("error while leaving voice room")
	}
	uc.feed.Publish(realtime.Event{
		Op:    realtime.OpDelete,
		Table: voice.TableVoiceRooms,
		RowID: room.ID,
		Scope: map[string]uuid.UUID{"channel_id": room.ChannelID},
	})
	return nil
}
