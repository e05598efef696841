package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "github.com/Azotik83/Eclipse.github.io/internal/dm/model"
	"github.com/Azotik83/Eclipse.github.io/pkg/logger"
)

type DMRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrMessageNotFound      = errors.New("direct message not found")
)

func NewDMRepository(db *bun.DB, logger logger.Logger) *DMRepository {
	return &DMRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *DMRepository) GetOrCreateConversation(ctx context.Context, a, b uuid.UUID) (*models.Conversation, error) {
	low, high := models.NormalizePair(a, b)

	conv := &models.Conversation{UserLow: low, UserHigh: high}
	_, err := r.db.NewInsert().
		Model(conv).
		On("CONFLICT (user_low, user_high) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "dmRepo.GetOrCreateConversation.Exec: ")
	}

	// re-select regardless: on conflict the insert returns no row, and the
	// caller needs the profiles loaded either way
	found := new(models.Conversation)
	err = r.db.NewSelect().
		Model(found).
		Relation("LowProfile").
		Relation("HighProfile").
		Where("conversation.user_low = ? AND conversation.user_high = ?", low, high).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "dmRepo.GetOrCreateConversation.Scan: ")
	}
	return found, nil
}

func (r *DMRepository) GetConversation(ctx context.Context, id uuid.UUID) (*models.Conversation, error) {
	conv := new(models.Conversation)
	err := r.db.NewSelect().
		Model(conv).
		Relation("LowProfile").
		Relation("HighProfile").
		Where("conversation.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConversationNotFound
		}
		return nil, errors.Wrap(err, "dmRepo.GetConversation.Scan: ")
	}
	return conv, nil
}

func (r *DMRepository) ListConversationPage(ctx context.Context, userID uuid.UUID, before time.Time, limit int) ([]*models.Conversation, error) {
	var convs []*models.Conversation
	q := r.db.NewSelect().
		Model(&convs).
		Relation("LowProfile").
		Relation("HighProfile").
		Where("conversation.user_low = ? OR conversation.user_high = ?", userID, userID).
		OrderExpr("COALESCE(conversation.last_message_at, conversation.created_at) DESC").
		Order("conversation.id DESC").
		Limit(limit)
	if !before.IsZero() {
		q = q.Where("COALESCE(conversation.last_message_at, conversation.created_at) < ?", before)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, errors.Wrap(err, "dmRepo.ListConversationPage.Scan: ")
	}
	return convs, nil
}

func (r *DMRepository) GetMessagePage(ctx context.Context, conversationID uuid.UUID, before time.Time, limit int) ([]*models.DirectMessage, error) {
	var msgs []*models.DirectMessage
	q := r.db.NewSelect().
		Model(&msgs).
		Relation("Sender").
		Where("direct_message.conversation_id = ?", conversationID).
		Order("direct_message.created_at DESC").
		Order("direct_message.id DESC").
		Limit(limit)
	if !before.IsZero() {
		q = q.Where("direct_message.created_at < ?", before)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, errors.Wrap(err, "dmRepo.GetMessagePage.Scan: ")
	}
	return msgs, nil
}

func (r *DMRepository) GetMessage(ctx context.Context, id uuid.UUID) (*models.DirectMessage, error) {
	msg := new(models.DirectMessage)
	err := r.db.NewSelect().
		Model(msg).
		Relation("Sender").
		Where("direct_message.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMessageNotFound
		}
		return nil, errors.Wrap(err, "dmRepo.GetMessage.Scan: ")
	}
	return msg, nil
}

func (r *DMRepository) InsertMessage(ctx context.Context, m *models.DirectMessage) error {
	_, err := r.db.NewInsert().Model(m).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "dmRepo.InsertMessage.Exec: ")
	}
	return nil
}

func (r *DMRepository) TouchConversation(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.NewUpdate().
		Model((*models.Conversation)(nil)).
		Set("last_message_at = ?", at).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "dmRepo.TouchConversation.Exec: ")
	}
	return nil
}
