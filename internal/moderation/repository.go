package moderation

import (
	"context"

	models "github.com/Azotik83/Eclipse.github.io/internal/moderation/model"
)

// TableModerationLog is published to the change feed so open dashboards
// catch new entries.
const TableModerationLog = "moderation_log_entries"

type ModerationRepository interface {
	InsertLog(ctx context.Context, entry *models.ModerationLogEntry) error
	// ListLog returns entries newest first with moderator and target
	// projections loaded.
	ListLog(ctx context.Context, limit, offset int) ([]*models.ModerationLogEntry, error)
}
