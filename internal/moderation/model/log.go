package model

import (
	"time"

	"github.com/google/uuid"

	profile "github.com/Azotik83/Eclipse.github.io/internal/profile/model"
)

// Moderation actions recorded in the log.
const (
	ActionBan           = "ban"
	ActionUnban         = "unban"
	ActionMute          = "mute"
	ActionUnmute        = "unmute"
	ActionPromote       = "promote"
	ActionDemote        = "demote"
	ActionDeleteMessage = "delete_message"
)

// ModerationLogEntry is append-only. Entries are never updated or removed,
// even when the action they record is later reversed.
type ModerationLogEntry struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	ModeratorID uuid.UUID        `bun:",notnull,type:uuid"`
	Moderator   *profile.Profile `bun:"rel:belongs-to,join:moderator_id=id"`

	TargetID uuid.UUID        `bun:",notnull,type:uuid"`
	Target   *profile.Profile `bun:"rel:belongs-to,join:target_id=id"`

	Action string `bun:",notnull"`
	Reason string `bun:",nullzero"`

	// Details carries action-specific context: durations, role transitions,
	// message previews.
	Details map[string]string `bun:",type:jsonb"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
