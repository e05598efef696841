package model

import (
	"time"

	"github.com/google/uuid"

	profile "github.com/Azotik83/Eclipse.github.io/internal/profile/model"
)

type ForumPost struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Each forum channel carries its own board of posts.
	ChannelID uuid.UUID `bun:",notnull,type:uuid"`

	AuthorID uuid.UUID        `bun:",notnull,type:uuid"`
	Author   *profile.Profile `bun:"rel:belongs-to,join:author_id=id"`

	Title   string   `bun:",notnull"`
	Content string   `bun:",notnull"`
	Tags    []string `bun:",array"`

	IsPinned bool `bun:",default:false"`

	// Denormalized counter, bumped in the same transaction as the reply
	// insert so list views don't need a join.
	ReplyCount int `bun:",notnull,default:0"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

type ForumReply struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	PostID uuid.UUID  `bun:",notnull,type:uuid"`
	Post   *ForumPost `bun:"rel:belongs-to,join:post_id=id"`

	AuthorID uuid.UUID        `bun:",notnull,type:uuid"`
	Author   *profile.Profile `bun:"rel:belongs-to,join:author_id=id"`

	Content string `bun:",notnull"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
