package forum

import (
	"time"

	"github.com/google/uuid"

	models "github.com/Azotik83/Eclipse.github.io/internal/forum/model"
	"github.com/Azotik83/Eclipse.github.io/internal/profile"
)

type CreatePostCommand struct {
	ChannelID uuid.UUID
	AuthorID  uuid.UUID
	Title     string
	Content   string
	Tags      []string
}

type AddReplyCommand struct {
	PostID   uuid.UUID
	AuthorID uuid.UUID
	Content  string
}

type PostDTO struct {
	ID         uuid.UUID
	ChannelID  uuid.UUID
	Author     profile.AuthorDTO
	Title      string
	Content    string
	Tags       []string
	IsPinned   bool
	ReplyCount int
	CreatedAt  time.Time
}

type ReplyDTO struct {
	ID        uuid.UUID
	PostID    uuid.UUID
	Author    profile.AuthorDTO
	Content   string
	CreatedAt time.Time
}

func (r ReplyDTO) ItemID() uuid.UUID        { return r.ID }
func (r ReplyDTO) ItemCreatedAt() time.Time { return r.CreatedAt }

func PostToDTO(p *models.ForumPost) PostDTO {
	return PostDTO{
		ID:         p.ID,
		ChannelID:  p.ChannelID,
		Author:     profile.AuthorFrom(p.Author),
		Title:      p.Title,
		Content:    p.Content,
		Tags:       p.Tags,
		IsPinned:   p.IsPinned,
		ReplyCount: p.ReplyCount,
		CreatedAt:  p.CreatedAt,
	}
}

func ReplyToDTO(r *models.ForumReply) ReplyDTO {
	return ReplyDTO{
		ID:        r.ID,
		PostID:    r.PostID,
		Author:    profile.AuthorFrom(r.Author),
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
	}
}
