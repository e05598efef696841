package repository

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "github.com/Azotik83/Eclipse.github.io/internal/moderation/model"
	"github.com/Azotik83/Eclipse.github.io/pkg/logger"
)

type ModerationRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewModerationRepository(db *bun.DB, logger logger.Logger) *ModerationRepository {
	return &ModerationRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *ModerationRepository) InsertLog(ctx context.Context, entry *models.ModerationLogEntry) error {
	_, err := r.db.NewInsert().
		Model(entry).
		Returning("id, created_at").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "moderationRepo.InsertLog.Exec: ")
	}
	return nil
}

func (r *ModerationRepository) ListLog(ctx context.Context, limit, offset int) ([]*models.ModerationLogEntry, error) {
	var entries []*models.ModerationLogEntry
	err := r.db.NewSelect().
		Model(&entries).
		Relation("Moderator").
		Relation("Target").
		Order("moderation_log_entry.created_at DESC").
		Order("moderation_log_entry.id DESC").
		Limit(limit).
		Offset(offset).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "moderationRepo.ListLog.Scan: ")
	}
	return entries, nil
}
