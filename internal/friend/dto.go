package friend

import (
	"time"

	"github.com/google/uuid"

	models "github.com/Azotik83/Eclipse.github.io/internal/friend/model"
	"github.com/Azotik83/Eclipse.github.io/internal/profile"
)

type FriendshipDTO struct {
	ID        uuid.UUID
	Other     profile.AuthorDTO
	Status    models.FriendshipStatus
	Outgoing  bool // viewer sent the request
	CreatedAt time.Time
}

func (f FriendshipDTO) ItemID() uuid.UUID        { return f.ID }
func (f FriendshipDTO) ItemCreatedAt() time.Time { return f.CreatedAt }

func FriendshipToDTO(f *models.Friendship, viewer uuid.UUID) FriendshipDTO {
	return FriendshipDTO{
		ID:        f.ID,
		Other:     profile.AuthorFrom(f.Other(viewer)),
		Status:    f.Status,
		Outgoing:  f.RequesterID == viewer,
		CreatedAt: f.CreatedAt,
	}
}

type BlockDTO struct {
	ID        uuid.UUID
	Blocked   profile.AuthorDTO
	CreatedAt time.Time
}

func BlockToDTO(b *models.Block) BlockDTO {
	return BlockDTO{
		ID:        b.ID,
		Blocked:   profile.AuthorFrom(b.Blocked),
		CreatedAt: b.CreatedAt,
	}
}

// FriendLists is the three derived sets recomputed together from the
// friendships table.
type FriendLists struct {
	Friends         []FriendshipDTO
	PendingReceived []FriendshipDTO
	PendingSent     []FriendshipDTO
}
