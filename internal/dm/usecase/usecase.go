package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	chat "github.com/Azotik83/Eclipse.github.io/internal/chat/usecase"
	"github.com/Azotik83/Eclipse.github.io/internal/dm"
	models "github.com/Azotik83/Eclipse.github.io/internal/dm/model"
	"github.com/Azotik83/Eclipse.github.io/internal/profile"
	"github.com/Azotik83/Eclipse.github.io/internal/realtime"
	"github.com/Azotik83/Eclipse.github.io/pkg/errors"
	"github.com/Azotik83/Eclipse.github.io/pkg/logger"
)

type DMUsecase struct {
	repo     dm.DMRepository
	profiles profile.ProfileRepository
	feed     realtime.Publisher
	logger   logger.Logger
}

func NewDMUsecase(repo dm.DMRepository, profiles profile.ProfileRepository, feed realtime.Publisher, logger logger.Logger) *DMUsecase {
	return &DMUsecase{repo: repo, profiles: profiles, feed: feed, logger: logger}
}

func (uc *DMUsecase) StartConversation(ctx context.Context, userID, partnerID uuid.UUID) (*dm.ConversationDTO, error) {
	if userID == partnerID {
		return nil, errors.ErrSelfConversation
	}
	if _, err := uc.profiles.GetByID(ctx, partnerID); err != nil {
		return nil, errors.ErrProfileNotFound
	}

	conv, err := uc.repo.GetOrCreateConversation(ctx, userID, partnerID)
	if err != nil {
		uc.logger.Errorf("error while resolving conversation: %v", err)
		return nil, errors.Internal("error while starting conversation")
	}

	uc.feed.Publish(realtime.Event{
		Op:    realtime.OpInsert,
		Table: dm.TableConversations,
		RowID: conv.ID,
		Scope: map[string]uuid.UUID{
			"user_low":  conv.UserLow,
			"user_high": conv.UserHigh,
		},
	})

	dto := dm.ConversationToDTO(conv, userID)
	return &dto, nil
}

func (uc *DMUsecase) Send(ctx context.Context, cmd dm.SendDirectMessageCommand) (*dm.DirectMessageDTO, error) {
	content, err := chat.ValidateContent(cmd.Content)
	if err != nil {
		return nil, err
	}

	conv, err := uc.repo.GetConversation(ctx, cmd.ConversationID)
	if err != nil {
		return nil, errors.ErrConversationNotFound
	}
	if !conv.Involves(cmd.SenderID) {
		return nil, errors.Forbidden("sender is not part of this conversation")
	}

	sender, err := uc.profiles.GetByID(ctx, cmd.SenderID)
	if err != nil {
		return nil, errors.ErrProfileNotFound
	}
	now := time.Now()
	if sender.IsCurrentlyBanned(now) {
		return nil, errors.ErrSenderBanned
	}
	if sender.IsCurrentlyMuted(now) {
		return nil, errors.ErrSenderMuted
	}

	msg := &models.DirectMessage{
		ConversationID: cmd.ConversationID,
		SenderID:       cmd.SenderID,
		Content:        content,
	}
	if err := uc.repo.InsertMessage(ctx, msg); err != nil {
		uc.logger.Errorf("error while saving direct message: %v", err)
		return nil, errors.Internal("error while sending direct message")
	}

	// activity bump is best effort: the message is already committed and a
	// stale sort order fixes itself on the next message
	if err := uc.repo.TouchConversation(ctx, conv.ID, msg.CreatedAt); err != nil {
		uc.logger.Warn("failed to bump conversation activity", "conversation", conv.ID, "err", err)
	}

	msg.Sender = sender
	dto := dm.MessageToDTO(msg)

	uc.feed.Publish(realtime.Event{
		Op:    realtime.OpInsert,
		Table: dm.TableDirectMessages,
		RowID: msg.ID,
		Scope: map[string]uuid.UUID{"conversation_id": msg.ConversationID},
	})
	uc.feed.Publish(realtime.Event{
		Op:    realtime.OpUpdate,
		Table: dm.TableConversations,
		RowID: conv.ID,
		Scope: map[string]uuid.UUID{
			"user_low":  conv.UserLow,
			"user_high": conv.UserHigh,
		},
	})

	return &dto, nil
}
