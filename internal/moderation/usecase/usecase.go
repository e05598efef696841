package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Azotik83/Eclipse.github.io/internal/chat"
	"github.com/Azotik83/Eclipse.github.io/internal/moderation"
	models "github.com/Azotik83/Eclipse.github.io/internal/moderation/model"
	"github.com/Azotik83/Eclipse.github.io/internal/profile"
	profileModels "github.com/Azotik83/Eclipse.github.io/internal/profile/model"
	"github.com/Azotik83/Eclipse.github.io/internal/realtime"
	"github.com/Azotik83/Eclipse.github.io/pkg/errors"
	"github.com/Azotik83/Eclipse.github.io/pkg/logger"
)

// messagePreviewLen bounds the deleted-message excerpt kept in the log.
const messagePreviewLen = 100

type ModerationUsecase struct {
	repo     moderation.ModerationRepository
	profiles profile.ProfileRepository
	messages chat.ChatRepository
	feed     realtime.Publisher
	logger   logger.Logger
}

func NewModerationUsecase(repo moderation.ModerationRepository, profiles profile.ProfileRepository, messages chat.ChatRepository, feed realtime.Publisher, logger logger.Logger) *ModerationUsecase {
	return &ModerationUsecase{repo: repo, profiles: profiles, messages: messages, feed: feed, logger: logger}
}

func (uc *ModerationUsecase) Ban(ctx context.Context, actorID, targetID uuid.UUID, hours int, reason string) error {
	actor, target, err := uc.loadPair(ctx, actorID, targetID)
	if err != nil {
		return err
	}
	if !moderation.CanBan(actor, target) {
		return errors.ErrTargetProtected
	}

	target.IsBanned = true
	details := map[string]string{"duration": "permanent"}
	if hours > 0 {
		until := time.Now().Add(time.Duration(hours) * time.Hour)
		target.BannedUntil = &until
		details["duration"] = strconv.Itoa(hours) + "h"
	} else {
		target.BannedUntil = nil
	}

	if err := uc.profiles.Update(ctx, target, "is_banned", "banned_until"); err != nil {
		uc.logger.Errorf("error while banning profile: %v", err)
		return errors.Internal("error while banning user")
	}
	uc.publishProfile(targetID)

	return uc.appendLog(ctx, &models.ModerationLogEntry{
		ModeratorID: actorID,
		TargetID:    targetID,
		Action:      models.ActionBan,
		Reason:      reason,
		Details:     details,
	})
}

func (uc *ModerationUsecase) Unban(ctx context.Context, actorID, targetID uuid.UUID) error {
	actor, target, err := uc.loadPair(ctx, actorID, targetID)
	if err != nil {
		return err
	}
	if !moderation.CanBan(actor, target) {
		return errors.ErrTargetProtected
	}

	target.IsBanned = false
	target.BannedUntil = nil
	if err := uc.profiles.Update(ctx, target, "is_banned", "banned_until"); err != nil {
		uc.logger.Errorf("error while unbanning profile: %v", err)
		return errors.Internal("error while unbanning user")
	}
	uc.publishProfile(targetID)

	return uc.appendLog(ctx, &models.ModerationLogEntry{
		ModeratorID: actorID,
		TargetID:    targetID,
		Action:      models.ActionUnban,
	})
}

func (uc *ModerationUsecase) Mute(ctx context.Context, actorID, targetID uuid.UUID, minutes int, reason string) error {
	if minutes <= 0 {
		return errors.InvalidArg("mute duration must be positive")
	}
	actor, target, err := uc.loadPair(ctx, actorID, targetID)
	if err != nil {
		return err
	}
	if !moderation.CanBan(actor, target) {
		return errors.ErrTargetProtected
	}

	until := time.Now().Add(time.Duration(minutes) * time.Minute)
	target.MutedUntil = &until
	if err := uc.profiles.Update(ctx, target, "muted_until"); err != nil {
		uc.logger.Errorf("error while muting profile: %v", err)
		return errors.Internal("error while muting user")
	}
	uc.publishProfile(targetID)

	return uc.appendLog(ctx, &models.ModerationLogEntry{
		ModeratorID: actorID,
		TargetID:    targetID,
		Action:      models.ActionMute,
		Reason:      reason,
		Details:     map[string]string{"duration": strconv.Itoa(minutes) + "m"},
	})
}

func (uc *ModerationUsecase) Unmute(ctx context.Context, actorID, targetID uuid.UUID) error {
	actor, target, err := uc.loadPair(ctx, actorID, targetID)
	if err != nil {
		return err
	}
	if !moderation.CanBan(actor, target) {
		return errors.ErrTargetProtected
	}

	target.MutedUntil = nil
	if err := uc.profiles.Update(ctx, target, "muted_until"); err != nil {
		uc.logger.Errorf("error while unmuting profile: %v", err)
		return errors.Internal("error while unmuting user")
	}
	uc.publishProfile(targetID)

	return uc.appendLog(ctx, &models.ModerationLogEntry{
		ModeratorID: actorID,
		TargetID:    targetID,
		Action:      models.ActionUnmute,
	})
}

func (uc *ModerationUsecase) ChangeRole(ctx context.Context, actorID, targetID uuid.UUID, newRole string) error {
	role := profileModels.Role(newRole)
	if _, ok := map[profileModels.Role]struct{}{
		profileModels.RoleUser:  {},
		profileModels.RoleModo:  {},
		profileModels.RoleAdmin: {},
	}[role]; !ok {
		return errors.InvalidArg("unknown role")
	}

	actor, target, err := uc.loadPair(ctx, actorID, targetID)
	if err != nil {
		return err
	}
	if !moderation.CanModifyRole(actor, target) {
		return errors.ErrTargetProtected
	}
	if target.Role == role {
		return nil
	}

	action := models.ActionPromote
	if role.Level() < target.Role.Level() {
		action = models.ActionDemote
	}
	details := map[string]string{
		"from": string(target.Role),
		"to":   string(role),
	}

	target.Role = role
	if err := uc.profiles.Update(ctx, target, "role"); err != nil {
		uc.logger.Errorf("error while changing role: %v", err)
		return errors.Internal("error while changing role")
	}
	uc.publishProfile(targetID)

	return uc.appendLog(ctx, &models.ModerationLogEntry{
		ModeratorID: actorID,
		TargetID:    targetID,
		Action:      action,
		Details:     details,
	})
}

func (uc *ModerationUsecase) DeleteMessage(ctx context.Context, actorID, messageID uuid.UUID, reason string) error {
	actor, err := uc.profiles.GetByID(ctx, actorID)
	if err != nil {
		return errors.ErrProfileNotFound
	}
	if !moderation.IsModerator(actor) {
		return errors.ErrInsufficientRole
	}

	msg, err := uc.messages.GetMessage(ctx, messageID)
	if err != nil {
		return errors.ErrMessageNotFound
	}
	if msg.IsDeleted {
		return nil
	}

	if err := uc.messages.SoftDeleteMessage(ctx, messageID); err != nil {
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

	// truncate by runes so a multibyte character is never cut in half
	preview := msg.Content
	if runes := []rune(preview); len(runes) > messagePreviewLen {
		preview = string(runes[:messagePreviewLen])
	}
	return uc.appendLog(ctx, &models.ModerationLogEntry{
		ModeratorID: actorID,
		TargetID:    msg.AuthorID,
		Action:      models.ActionDeleteMessage,
		Reason:      reason,
		Details: map[string]string{
			"channel_id": msg.ChannelID.String(),
			"preview":    preview,
		},
	})
}

func (uc *ModerationUsecase) Log(ctx context.Context, actorID uuid.UUID, limit, offset int) ([]moderation.LogEntryDTO, error) {
	actor, err := uc.profiles.GetByID(ctx, actorID)
	if err != nil {
		return nil, errors.ErrProfileNotFound
	}
	if !moderation.IsModerator(actor) {
		return nil, errors.ErrInsufficientRole
	}

	entries, err := uc.repo.ListLog(ctx, limit, offset)
	if err != nil {
		uc.logger.Errorf("error while listing moderation log: %v", err)
		return nil, errors.Internal("error while loading moderation log")
	}
	out := make([]moderation.LogEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, moderation.LogEntryToDTO(e))
	}
	return out, nil
}

func (uc *ModerationUsecase) loadPair(ctx context.Context, actorID, targetID uuid.UUID) (*profileModels.Profile, *profileModels.Profile, error) {
	actor, err := uc.profiles.GetByID(ctx, actorID)
	if err != nil {
		return nil, nil, errors.ErrProfileNotFound
	}
	target, err := uc.profiles.GetByID(ctx, targetID)
	if err != nil {
		return nil, nil, errors.ErrProfileNotFound
	}
	return actor, target, nil
}

// appendLog records the action after it already took effect. The action is
// never rolled back for a log failure, but the failure is surfaced so staff
// tooling can retry.
func (uc *ModerationUsecase) appendLog(ctx context.Context, entry *models.ModerationLogEntry) error {
	if err := uc.repo.InsertLog(ctx, entry); err != nil {
		uc.logger.Errorf("error while appending moderation log: %v", err)
		return errors.ErrModLogFailed(err)
	}
	uc.feed.Publish(realtime.Event{
		Op:    realtime.OpInsert,
		Table: moderation.TableModerationLog,
		RowID: entry.ID,
	})
	return nil
}

// publishProfile nudges views that project the target's profile state.
func (uc *ModerationUsecase) publishProfile(targetID uuid.UUID) {
	uc.feed.Publish(realtime.Event{
		Op:    realtime.OpUpdate,
		Table: profile.TableProfiles,
		RowID: targetID,
	})
}
