package model

import (
	"time"

	"github.com/google/uuid"

	profile "github.com/Azotik83/Eclipse.github.io/internal/profile/model"
)

// Conversation is the private channel between exactly two users. The pair
// is stored normalized (UserLow < UserHigh lexicographically) so the unique
// index makes lookup-or-create race-free regardless of who initiated.
type Conversation struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	UserLow  uuid.UUID `bun:",notnull,type:uuid,unique:conversation_pair"`
	UserHigh uuid.UUID `bun:",notnull,type:uuid,unique:conversation_pair"`

	LowProfile  *profile.Profile `bun:"rel:belongs-to,join:user_low=id"`
	HighProfile *profile.Profile `bun:"rel:belongs-to,join:user_high=id"`

	// Bumped on every message so conversation lists sort by activity.
	LastMessageAt *time.Time `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// Partner returns the other participant's profile relative to viewer.
func (c *Conversation) Partner(viewer uuid.UUID) *profile.Profile {
	if c.UserLow == viewer {
		return c.HighProfile
	}
	return c.LowProfile
}

// Involves reports whether the user is one of the two participants.
func (c *Conversation) Involves(userID uuid.UUID) bool {
	return c.UserLow == userID || c.UserHigh == userID
}

type DirectMessage struct {
	ID             uuid.UUID     `bun:",pk,type:uuid,default:gen_random_uuid()"`
	ConversationID uuid.UUID     `bun:",notnull,type:uuid"`
	Conversation   *Conversation `bun:"rel:belongs-to,join:conversation_id=id"`

	SenderID uuid.UUID        `bun:",notnull,type:uuid"`
	Sender   *profile.Profile `bun:"rel:belongs-to,join:sender_id=id"`

	Content string `bun:",notnull"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// NormalizePair orders two user ids into the (low, high) storage form.
func NormalizePair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if a.String() < b.String() {
		return a, b
	}
	return b, a
}
