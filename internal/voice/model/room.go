package model

import (
	"time"

	"github.com/google/uuid"

	profile "github.com/Azotik83/Eclipse.github.io/internal/profile/model"
)

// VoiceRoom is a lobby inside a voice channel. Rooms are born active and
// get deactivated, never deleted, once the last participant leaves.
type VoiceRoom struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	ChannelID uuid.UUID `bun:",notnull,type:uuid"`
	Name      string    `bun:",notnull"`

	CreatorID uuid.UUID `bun:",notnull,type:uuid"`

	IsActive bool `bun:",notnull,default:true"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	Participants []*VoiceParticipant `bun:"rel:has-many,join:id=room_id"`
}

// VoiceParticipant is one user's presence in one room. The (room, user)
// unique pair makes re-joining the same room idempotent at the store level.
type VoiceParticipant struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	RoomID uuid.UUID `bun:",notnull,type:uuid,unique:room_user"`
	UserID uuid.UUID `bun:",notnull,type:uuid,unique:room_user"`

	Profile *profile.Profile `bun:"rel:belongs-to,join:user_id=id"`

	IsMuted bool `bun:",notnull,default:false"`

	JoinedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
