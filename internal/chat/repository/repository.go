package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "github.com/Azotik83/Eclipse.github.io/internal/chat/model"
	"github.com/Azotik83/Eclipse.github.io/pkg/logger"
)

type ChatRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var ErrMessageNotFound = errors.New("message not found")

func NewChatRepository(db *bun.DB, logger logger.Logger) *ChatRepository {
	return &ChatRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *ChatRepository) ListChannels(ctx context.Context) ([]*models.Channel, error) {
	var channels []*models.Channel
	err := r.db.NewSelect().Model(&channels).Order("created_at ASC").Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.ListChannels.Scan: ")
	}
	return channels, nil
}

func (r *ChatRepository) GetMessagePage(ctx context.Context, channelID uuid.UUID, before time.Time, limit int) ([]*models.Message, error) {
	var msgs []*models.Message
	q := r.db.NewSelect().
		Model(&msgs).
		Relation("Author").
		Relation("Reactions").
		Where("message.channel_id = ?", channelID).
		Where("message.is_deleted = ?", false).
		Order("message.created_at DESC").
		Order("message.id DESC").
		Limit(limit)
	if !before.IsZero() {
		q = q.Where("message.created_at < ?", before)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, errors.Wrap(err, "chatRepo.GetMessagePage.Scan: ")
	}
	return msgs, nil
}

func (r *ChatRepository) GetMessage(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	msg := new(models.Message)
	err := r.db.NewSelect().
		Model(msg).
		Relation("Author").
		Relation("Reactions").
		Where("message.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMessageNotFound
		}
		return nil, errors.Wrap(err, "chatRepo.GetMessage.Scan: ")
	}
	return msg, nil
}

func (r *ChatRepository) InsertMessage(ctx context.Context, m *models.Message) error {
	_, err := r.db.NewInsert().Model(m).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.InsertMessage.Exec: ")
	}
	return nil
}

func (r *ChatRepository) UpdateMessageBody(ctx context.Context, id uuid.UUID, content string, editedAt time.Time) error {
	res, err := r.db.NewUpdate().
		Model((*models.Message)(nil)).
		Set("content = ?", content).
		Set("is_edited = ?", true).
		Set("edited_at = ?", editedAt).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.UpdateMessageBody.Exec: ")
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (r *ChatRepository) SoftDeleteMessage(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.NewUpdate().
		Model((*models.Message)(nil)).
		Set("is_deleted = ?", true).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.SoftDeleteMessage.Exec: ")
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (r *ChatRepository) AddReaction(ctx context.Context, reaction *models.Reaction) (bool, error) {
	res, err := r.db.NewInsert().
		Model(reaction).
		On("CONFLICT (message_id, emoji, user_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, errors.Wrap(err, "chatRepo.AddReaction.Exec: ")
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}

func (r *ChatRepository) RemoveReaction(ctx context.Context, messageID uuid.UUID, emoji string, userID uuid.UUID) (bool, error) {
	res, err := r.db.NewDelete().
		Model((*models.Reaction)(nil)).
		Where("message_id = ? AND emoji = ? AND user_id = ?", messageID, emoji, userID).
		Exec(ctx)
	if err != nil {
		return false, errors.Wrap(err, "chatRepo.RemoveReaction.Exec: ")
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}
