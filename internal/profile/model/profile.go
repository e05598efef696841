package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleModo  Role = "modo"
	RoleAdmin Role = "admin"
)

// roleLevels orders the moderation hierarchy. The super-admin flag is
// independent of it.
var roleLevels = map[Role]int{
	RoleUser:  0,
	RoleModo:  1,
	RoleAdmin: 2,
}

func (r Role) Level() int { return roleLevels[r] }

type Profile struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Username = unique @handle (used for login and identity)
	Username string `bun:",unique,notnull"`

	// DisplayName is shown in chats and can be changed freely
	DisplayName string `bun:",notnull"`

	AvatarURL string `bun:",nullzero"`
	BannerURL string `bun:",nullzero"`
	Bio       string `bun:",nullzero"`

	// At most 10 entries, enforced in the usecase
	Interests []string `bun:",array"`

	Role         Role `bun:",notnull,default:'user'"`
	IsSuperAdmin bool `bun:",default:false"`

	Points int64 `bun:",default:0"`
	Level  int   `bun:",default:1"`

	// Moderation state; the profile row is the authority for it
	IsBanned    bool       `bun:",default:false"`
	BannedUntil *time.Time `bun:",nullzero"` // nil while banned = permanent
	MutedUntil  *time.Time `bun:",nullzero"`

	IsPublic       bool `bun:",default:true"`
	OnboardingDone bool `bun:",default:false"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// IsCurrentlyBanned reports whether the ban is in force at now. A banned
// profile without banned_until is banned permanently; an expired timestamp
// counts as not banned.
func (p *Profile) IsCurrentlyBanned(now time.Time) bool {
	if p == nil || !p.IsBanned {
		return false
	}
	if p.BannedUntil == nil {
		return true
	}
	return p.BannedUntil.After(now)
}

// IsCurrentlyMuted reports whether a mute is in force at now.
func (p *Profile) IsCurrentlyMuted(now time.Time) bool {
	if p == nil || p.MutedUntil == nil {
		return false
	}
	return p.MutedUntil.After(now)
}
