package model

import (
	"time"

	"github.com/google/uuid"

	profile "github.com/Azotik83/Eclipse.github.io/internal/profile/model"
)

type Message struct {
	ID        uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`
	ChannelID uuid.UUID `bun:",notnull,type:uuid"`
	Channel   *Channel  `bun:"rel:belongs-to,join:channel_id=id"`

	AuthorID uuid.UUID        `bun:",notnull,type:uuid"`
	Author   *profile.Profile `bun:"rel:belongs-to,join:author_id=id"`

	Content  string     `bun:",notnull"`
	IsEdited bool       `bun:",default:false"`
	EditedAt *time.Time `bun:",nullzero"`

	// Soft delete: the row stays, views filter it out. Never physically
	// removed by normal users.
	IsDeleted bool `bun:",default:false"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	Reactions []*Reaction `bun:"rel:has-many,join:id=message_id"`
}

// Reaction is a weak join record, unique per (message, emoji, user).
// Inserting an existing triple is a no-op so toggling is idempotent.
type Reaction struct {
	ID        uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`
	MessageID uuid.UUID `bun:",notnull,type:uuid,unique:reaction_triple"`
	Emoji     string    `bun:",notnull,unique:reaction_triple"`
	UserID    uuid.UUID `bun:",notnull,type:uuid,unique:reaction_triple"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
