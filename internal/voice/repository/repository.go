package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "github.com/Azotik83/Eclipse.github.io/internal/voice/model"
	"github.com/Azotik83/Eclipse.github.io/pkg/logger"
)

type VoiceRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var ErrRoomNotFound = errors.New("voice room not found")

func NewVoiceRepository(db *bun.DB, logger logger.Logger) *VoiceRepository {
	return &VoiceRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *VoiceRepository) ListActiveRoomPage(ctx context.Context, channelID uuid.UUID, before time.Time, limit int) ([]*models.VoiceRoom, error) {
	var rooms []*models.VoiceRoom
	q := r.db.NewSelect().
		Model(&rooms).
		Relation("Participants", func(sq *bun.SelectQuery) *bun.SelectQuery {
			return sq.Order("joined_at ASC")
		}).
		Relation("Participants.Profile").
		Where("voice_room.channel_id = ?", channelID).
		Where("voice_room.is_active = ?", true).
		Order("voice_room.created_at DESC").
		Order("voice_room.id DESC").
		Limit(limit)
	if !before.IsZero() {
		q = q.Where("voice_room.created_at < ?", before)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, errors.Wrap(err, "voiceRepo.ListActiveRoomPage.Scan: ")
	}
	return rooms, nil
}

func (r *VoiceRepository) GetRoom(ctx context.Context, id uuid.UUID) (*models.VoiceRoom, error) {
	room := new(models.VoiceRoom)
	err := r.db.NewSelect().
		Model(room).
		Relation("Participants", func(sq *bun.SelectQuery) *bun.SelectQuery {
			return sq.Order("joined_at ASC")
		}).
		Relation("Participants.Profile").
		Where("voice_room.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, errors.Wrap(err, "voiceRepo.GetRoom.Scan: ")
	}
	return room, nil
}

func (r *VoiceRepository) CreateRoom(ctx context.Context, room *models.VoiceRoom) error {
	_, err := r.db.NewInsert().
		Model(room).
		Returning("id, created_at").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "voiceRepo.CreateRoom.Exec: ")
	}
	return nil
}

func (r *VoiceRepository) DeactivateRoom(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.NewUpdate().
		Model((*models.VoiceRoom)(nil)).
		Set("is_active = ?", false).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "voiceRepo.DeactivateRoom.Exec: ")
	}
	return nil
}

func (r *VoiceRepository) InsertParticipant(ctx context.Context, p *models.VoiceParticipant) (bool, error) {
	res, err := r.db.NewInsert().
		Model(p).
		On("CONFLICT (room_id, user_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, errors.Wrap(err, "voiceRepo.InsertParticipant.Exec: ")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "voiceRepo.InsertParticipant.RowsAffected: ")
	}
	return n > 0, nil
}

func (r *VoiceRepository) DeleteParticipant(ctx context.Context, roomID, userID uuid.UUID) (bool, error) {
	res, err := r.db.NewDelete().
		Model((*models.VoiceParticipant)(nil)).
		Where("room_id = ?", roomID).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return false, errors.Wrap(err, "voiceRepo.DeleteParticipant.Exec: ")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "voiceRepo.DeleteParticipant.RowsAffected: ")
	}
	return n > 0, nil
}

func (r *VoiceRepository) DeleteAllForUser(ctx context.Context, userID uuid.UUID) ([]*models.VoiceRoom, error) {
	var rooms []*models.VoiceRoom
	err := r.db.NewSelect().
		Model(&rooms).
		Join("JOIN voice_participants AS vp ON vp.room_id = voice_room.id").
		Where("vp.user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "voiceRepo.DeleteAllForUser.Scan: ")
	}
	if len(rooms) == 0 {
		return nil, nil
	}

	_, err = r.db.NewDelete().
		Model((*models.VoiceParticipant)(nil)).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "voiceRepo.DeleteAllForUser.Exec: ")
	}
	return rooms, nil
}

func (r *VoiceRepository) CountParticipants(ctx context.Context, roomID uuid.UUID) (int, error) {
	count, err := r.db.NewSelect().
		Model((*models.VoiceParticipant)(nil)).
		Where("room_id = ?", roomID).
		Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "voiceRepo.CountParticipants.Count: ")
	}
	return count, nil
}

func (r *VoiceRepository) ToggleMute(ctx context.Context, roomID, userID uuid.UUID) (bool, error) {
	var muted bool
	err := r.db.NewUpdate().
		Model((*models.VoiceParticipant)(nil)).
		Set("is_muted = NOT is_muted").
		Where("room_id = ?", roomID).
		Where("user_id = ?", userID).
		Returning("is_muted").
		Scan(ctx, &muted)
	if err != nil {
		return false, errors.Wrap(err, "voiceRepo.ToggleMute.Scan: ")
	}
	return muted, nil
}

func (r *VoiceRepository) CurrentRoomForUser(ctx context.Context, userID uuid.UUID) (*models.VoiceRoom, error) {
	room := new(models.VoiceRoom)
	err := r.db.NewSelect().
		Model(room).
		Relation("Participants", func(sq *bun.SelectQuery) *bun.SelectQuery {
			return sq.Order("joined_at ASC")
		}).
		Relation("Participants.Profile").
		Join("JOIN voice_participants AS vp ON vp.room_id = voice_room.id").
		Where("vp.user_id = ?", userID).
		Where("voice_room.is_active = ?", true).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "voiceRepo.CurrentRoomForUser.Scan: ")
	}
	return room, nil
}
