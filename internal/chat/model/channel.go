package model

import (
	"time"

	"github.com/google/uuid"

	profile "github.com/Azotik83/Eclipse.github.io/internal/profile/model"
)

type ChannelKind string

const (
	ChannelChat  ChannelKind = "chat"
	ChannelForum ChannelKind = "forum"
	ChannelVoice ChannelKind = "voice"
)

// Channel is long-lived configuration created out of band; this core only
// reads them.
type Channel struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	Name  string      `bun:",notnull"`
	Topic string      `bun:",nullzero"`
	Kind  ChannelKind `bun:",notnull,default:'chat'"`

	CreatorID uuid.UUID        `bun:",notnull,type:uuid"`
	Creator   *profile.Profile `bun:"rel:belongs-to,join:creator_id=id"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
