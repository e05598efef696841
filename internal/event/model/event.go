package model

import (
	"time"

	"github.com/google/uuid"

	profile "github.com/Azotik83/Eclipse.github.io/internal/profile/model"
)

// Event is a scheduled community happening. Events are deactivated rather
// than deleted so their chat history survives.
type Event struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	Title       string `bun:",notnull"`
	Description string
	Category    string `bun:",notnull"`

	StartsAt time.Time `bun:",notnull"`
	EndsAt   time.Time `bun:",notnull"`

	// MaxParticipants nil means unlimited.
	MaxParticipants *int

	CreatorID uuid.UUID        `bun:",notnull,type:uuid"`
	Creator   *profile.Profile `bun:"rel:belongs-to,join:creator_id=id"`

	IsActive bool `bun:",notnull,default:true"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	Participants []*EventParticipant `bun:"rel:has-many,join:id=event_id"`
}

type EventParticipant struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	EventID uuid.UUID `bun:",notnull,type:uuid,unique:event_user"`
	UserID  uuid.UUID `bun:",notnull,type:uuid,unique:event_user"`

	Profile *profile.Profile `bun:"rel:belongs-to,join:user_id=id"`

	JoinedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// EventMessage is the event's private chat line, visible to participants only.
type EventMessage struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	EventID uuid.UUID `bun:",notnull,type:uuid"`
	Event   *Event    `bun:"rel:belongs-to,join:event_id=id"`

	AuthorID uuid.UUID        `bun:",notnull,type:uuid"`
	Author   *profile.Profile `bun:"rel:belongs-to,join:author_id=id"`

	Content string `bun:",notnull"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
