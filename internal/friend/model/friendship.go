package model

import (
	"time"

	"github.com/google/uuid"

	profile "github.com/Azotik83/Eclipse.github.io/internal/profile/model"
)

type FriendshipStatus string

const (
	StatusPending  FriendshipStatus = "pending"
	StatusAccepted FriendshipStatus = "accepted"
)

// Friendship is directional while pending (requester asked addressee) and
// symmetric once accepted. At most one row exists per unordered pair.
type Friendship struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	RequesterID uuid.UUID        `bun:",notnull,type:uuid"`
	Requester   *profile.Profile `bun:"rel:belongs-to,join:requester_id=id"`

	AddresseeID uuid.UUID        `bun:",notnull,type:uuid"`
	Addressee   *profile.Profile `bun:"rel:belongs-to,join:addressee_id=id"`

	Status FriendshipStatus `bun:",notnull,default:'pending'"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	// Unique index in migration:
	// CREATE UNIQUE INDEX idx_friendship_pair ON friendships(least(requester_id,addressee_id), greatest(requester_id,addressee_id));
}

// Other returns the counterpart's profile relative to viewer.
func (f *Friendship) Other(viewer uuid.UUID) *profile.Profile {
	if f.RequesterID == viewer {
		return f.Addressee
	}
	return f.Requester
}

// Involves reports whether the user sits on either side of the row.
func (f *Friendship) Involves(userID uuid.UUID) bool {
	return f.RequesterID == userID || f.AddresseeID == userID
}

// Block is directional: the blocker hides themselves from the blocked user
// and stops seeing their content. Blocking back creates a second row.
type Block struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	BlockerID uuid.UUID `bun:",notnull,type:uuid,unique:block_pair"`
	BlockedID uuid.UUID `bun:",notnull,type:uuid,unique:block_pair"`

	Blocked *profile.Profile `bun:"rel:belongs-to,join:blocked_id=id"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
