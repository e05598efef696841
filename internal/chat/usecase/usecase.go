package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Azotik83/Eclipse.github.io/internal/chat"
	models "github.com/Azotik83/Eclipse.github.io/internal/chat/model"
	"github.com/Azotik83/Eclipse.github.io/internal/profile"
	"github.com/Azotik83/Eclipse.github.io/internal/realtime"
	"github.com/Azotik83/Eclipse.github.io/pkg/errors"
	"github.com/Azotik83/Eclipse.github.io/pkg/logger"
)

const maxMessageLen = 500

type ChatUsecase struct {
	repo     chat.ChatRepository
	profiles profile.ProfileRepository
	feed     realtime.Publisher
	logger   logger.Logger
}

func NewChatUsecase(repo chat.ChatRepository, profiles profile.ProfileRepository, feed realtime.Publisher, logger logger.Logger) *ChatUsecase {
	return &ChatUsecase{repo: repo, profiles: profiles, feed: feed, logger: logger}
}

// ValidateContent applies the cheap local checks shared by every chat-like
// body: non-empty after trimming, at most 500 characters.
func ValidateContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", errors.ErrEmptyMessage
	}
	if utf8.RuneCountInString(content) > maxMessageLen {
		return "", errors.ErrMessageTooLong
	}
	return content, nil
}

func (uc *ChatUsecase) Channels(ctx context.Context) ([]*chat.ChannelDTO, error) {
	channels, err := uc.repo.ListChannels(ctx)
	if err != nil {
		uc.logger.Error("failed to list channels", "err", err)
		return nil, errors.Internal("error while loading channels")
	}
	out := make([]*chat.ChannelDTO, 0, len(channels))
	for _, c := range channels {
		out = append(out, &chat.ChannelDTO{
			ID:        c.ID,
			Name:      c.Name,
			Topic:     c.Topic,
			Kind:      c.Kind,
			CreatedAt: c.CreatedAt,
		})
	}
	return out, nil
}

func (uc *ChatUsecase) Send(ctx context.Context, cmd chat.SendMessageCommand) (*chat.MessageDTO, error) {
	content, err := ValidateContent(cmd.Content)
	if err != nil {
		return nil, err
	}

	author, err := uc.profiles.GetByID(ctx, cmd.AuthorID)
	if err != nil {
		return nil, errors.ErrProfileNotFound
	}
	now := time.Now()
	if author.IsCurrentlyBanned(now) {
		return nil, errors.ErrSenderBanned
	}
	if author.IsCurrentlyMuted(now) {
		return nil, errors.ErrSenderMuted
	}

	msg := &models.Message{
		ChannelID: cmd.ChannelID,
		AuthorID:  cmd.AuthorID,
		Content:   content,
	}
	if err := uc.repo.InsertMessage(ctx, msg); err != nil {
		uc.logger.Errorf("error while saving message in db: %v", err)
		return nil, errors.Internal("error while sending message")
	}

	msg.Author = author
	dto := chat.MessageToDTO(msg)

	uc.feed.Publish(realtime.Event{
		Op:    realtime.OpInsert,
		Table: chat.TableMessages,
		RowID: msg.ID,
		Scope: map[string]uuid.UUID{"channel_id": msg.ChannelID},
	})

	return &dto, nil
}

func (uc *ChatUsecase) Edit(ctx context.Context, actorID, messageID uuid.UUID, newContent string) (*chat.MessageDTO, error) {
	content, err := ValidateContent(newContent)
	if err != nil {
		return nil, err
	}

	msg, err := uc.repo.GetMessage(ctx, messageID)
	if err != nil {
		return nil, errors.ErrMessageNotFound
	}
	if msg.IsDeleted {
		return nil, errors.ErrMessageNotFound
	}
	if msg.AuthorID != actorID {
		return nil, errors.ErrNotMessageOwner
	}

	editedAt := time.Now()
	if err := uc.repo.UpdateMessageBody(ctx, messageID, content, editedAt); err != nil {
		uc.logger.Errorf("error while editing message: %v", err)
		return nil, errors.Internal("error while editing message")
	}

	msg.Content = content
	msg.IsEdited = true
	msg.EditedAt = &editedAt
	dto := chat.MessageToDTO(msg)

	uc.feed.Publish(realtime.Event{
		Op:      realtime.OpUpdate,
		Table:   chat.TableMessages,
		RowID:   msg.ID,
		Scope:   map[string]uuid.UUID{"channel_id": msg.ChannelID},
		Payload: dto,
	})

	return &dto, nil
}

func (uc *ChatUsecase) Delete(ctx context.Context, actorID, messageID uuid.UUID) error {
	msg, err := uc.repo.GetMessage(ctx, messageID)
	if err != nil {
		return errors.ErrMessageNotFound
	}
	if msg.AuthorID != actorID {
		return errors.ErrNotMessageOwner
	}
	if msg.IsDeleted {
		return nil
	}

	if err := uc.repo.SoftDeleteMessage(ctx, messageID); err != nil {
		uc.logger.Errorf("error while deleting message: %v", err)
		return errors.Internal("error while deleting message")
	}

	msg.IsDeleted = true
	dto := chat.MessageToDTO(msg)
	uc.feed.Publish(realtime.Event{
		Op:      realtime.OpUpdate,
		Table:   chat.TableMessages,
		RowID:   msg.ID,
		Scope:   map[string]uuid.UUID{"channel_id": msg.ChannelID},
		Payload: dto,
	})
	return nil
}

func (uc *ChatUsecase) React(ctx context.Context, messageID uuid.UUID, emoji string, userID uuid.UUID) error {
	if emoji == "" {
		return errors.InvalidArg("emoji is required")
	}

	reaction := &models.Reaction{
		MessageID: messageID,
		Emoji:     emoji,
		UserID:    userID,
	}
	inserted, err := uc.repo.AddReaction(ctx, reaction)
	if err != nil {
		uc.logger.Errorf("error while adding reaction: %v", err)
		return errors.Internal("error while adding reaction")
	}
	if !inserted {
		// triple already present: idempotent toggle, nothing changed
		return nil
	}

	uc.feed.Publish(realtime.Event{
		Op:    realtime.OpInsert,
		Table: chat.TableReactions,
		RowID: reaction.ID,
		Scope: map[string]uuid.UUID{"message_id": messageID},
	})
	return nil
}

func (uc *ChatUsecase) Unreact(ctx context.Context, messageID uuid.UUID, emoji string, userID uuid.UUID) error {
	removed, err := uc.repo.RemoveReaction(ctx, messageID, emoji, userID)
	if err != nil {
		uc.logger.Errorf("error while removing reaction: %v", err)
		return errors.Internal("error while removing reaction")
	}
	if !removed {
		return nil
	}

	uc.feed.Publish(realtime.Event{
		Op:    realtime.OpDelete,
		Table: chat.TableReactions,
		Scope: map[string]uuid.UUID{"message_id": messageID},
	})
	return nil
}
