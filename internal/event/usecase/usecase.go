package usecase

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/google/uuid"

	chat "github.com/Azotik83/Eclipse.github.io/internal/chat/usecase"
	"github.com/Azotik83/Eclipse.github.io/internal/event"
	models "github.com/Azotik83/Eclipse.github.io/internal/event/model"
	"github.com/Azotik83/Eclipse.github.io/internal/profile"
	profileModels "github.com/Azotik83/Eclipse.github.io/internal/profile/model"
	"github.com/Azotik83/Eclipse.github.io/internal/realtime"
	"github.com/Azotik83/Eclipse.github.io/pkg/errors"
	"github.com/Azotik83/Eclipse.github.io/pkg/logger"
)

type EventUsecase struct {
	repo     event.EventRepository
	profiles profile.ProfileRepository
	feed     realtime.Publisher
	logger   logger.Logger
}

func NewEventUsecase(repo event.EventRepository, profiles profile.ProfileRepository, feed realtime.Publisher, logger logger.Logger) *EventUsecase {
	return &EventUsecase{repo: repo, profiles: profiles, feed: feed, logger: logger}
}

func (uc *EventUsecase) Events(ctx context.Context) ([]event.EventDTO, error) {
	events, err := uc.repo.ListActiveEventPage(ctx, time.Time{}, 100)
	if err != nil {
		uc.logger.Errorf("error while listing events: %v", err)
		return nil, errors.Internal("error while loading events")
	}
	out := make([]event.EventDTO, 0, len(events))
	for _, ev := range events {
		out = append(out, event.EventToDTO(ev))
	}
	return out, nil
}

func (uc *EventUsecase) Create(ctx context.Context, cmd event.CreateEventCommand) (*event.EventDTO, error) {
	if err := validateSchedule(cmd.Title, cmd.Category, cmd.StartsAt, cmd.EndsAt); err != nil {
		return nil, err
	}
	if _, err := uc.requireAdmin(ctx, cmd.CreatorID); err != nil {
		return nil, err
	}

	ev := &models.Event{
		Title:           strings.TrimSpace(cmd.Title),
		Description:     strings.TrimSpace(cmd.Description),
		Category:        strings.TrimSpace(cmd.Category),
		StartsAt:        cmd.StartsAt,
		EndsAt:          cmd.EndsAt,
		MaxParticipants: cmd.MaxParticipants,
		CreatorID:       cmd.CreatorID,
		IsActive:        true,
	}
	if err := uc.repo.InsertEvent(ctx, ev); err != nil {
		uc.logger.Errorf("error while creating event: %v", err)
		return nil, errors.Internal("error while creating event")
	}

	uc.feed.Publish(realtime.Event{
		Op:    realtime.OpInsert,
		Table: event.TableEvents,
		RowID: ev.ID,
	})

	full, err := uc.repo.GetEvent(ctx, ev.ID)
	if err != nil {
		uc.logger.Errorf("error while reloading created event: %v", err)
		return nil, errors.Internal("error while creating event")
	}
	dto := event.EventToDTO(full)
	return &dto, nil
}

func (uc *EventUsecase) Update(ctx context.Context, cmd event.UpdateEventCommand) (*event.EventDTO, error) {
	if err := validateSchedule(cmd.Title, cmd.Category, cmd.StartsAt, cmd.EndsAt); err != nil {
		return nil, err
	}
	if _, err := uc.requireAdmin(ctx, cmd.ActorID); err != nil {
		return nil, err
	}

	ev, err := uc.repo.GetEvent(ctx, cmd.EventID)
	if err != nil {
		return nil, errors.ErrEventNotFound
	}

	ev.Title = strings.TrimSpace(cmd.Title)
	ev.Description = strings.TrimSpace(cmd.Description)
	ev.Category = strings.TrimSpace(cmd.Category)
	ev.StartsAt = cmd.StartsAt
	ev.EndsAt = cmd.EndsAt
	ev.MaxParticipants = cmd.MaxParticipants

	if err := uc.repo.UpdateEvent(ctx, ev); err != nil {
		uc.logger.Errorf("error while updating event: %v", err)
		return nil, errors.Internal("error while updating event")
	}

	uc.feed.Publish(realtime.Event{
		Op:    realtime.OpUpdate,
		Table: event.TableEvents,
		RowID: ev.ID,
	})

	dto := event.EventToDTO(ev)
	return &dto, nil
}

func (uc *EventUsecase) Deactivate(ctx context.Context, actorID, eventID uuid.UUID) error {
	if _, err := uc.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	if _, err := uc.repo.GetEvent(ctx, eventID); err != nil {
		return errors.ErrEventNotFound
	}
	if err := uc.repo.DeactivateEvent(ctx, eventID); err != nil {
		uc.logger.Errorf("error while deactivating event: %v", err)
		return errors.Internal("error while deactivating event")
	}

	uc.feed.Publish(realtime.Event{
		Op:    realtime.OpDelete,
		Table: event.TableEvents,
		RowID: eventID,
	})
	return nil
}

func (uc *EventUsecase) Join(ctx context.Context, eventID, userID uuid.UUID) error {
	ev, err := uc.repo.GetEvent(ctx, eventID)
	if err != nil {
		return errors.ErrEventNotFound
	}
	if !ev.IsActive {
		return errors.ErrEventNotFound
	}
	// cheap local check first; the store re-checks under a row lock
	if ev.MaxParticipants != nil && len(ev.Participants) >= *ev.MaxParticipants {
		return errors.ErrEventFull
	}

	inserted, err := uc.repo.InsertParticipant(ctx, eventID, userID)
	if err != nil {
		if stderrors.Is(err, errors.ErrEventFull) {
			return errors.ErrEventFull
		}
		uc.logger.Errorf("error while joining event: %v", err)
		return errors.Internal("error while joining event")
	}
	if inserted {
		uc.feed.Publish(realtime.Event{
			Op:    realtime.OpInsert,
			Table: event.TableEventParticipants,
			RowID: eventID,
			Scope: map[string]uuid.UUID{"event_id": eventID},
		})
	}
	return nil
}

func (uc *EventUsecase) Leave(ctx context.Context, eventID, userID uuid.UUID) error {
	removed, err := uc.repo.DeleteParticipant(ctx, eventID, userID)
	if err != nil {
		uc.logger.Errorf("error while leaving event: %v", err)
		return errors.Internal("error while leaving event")
	}
	if removed {
		uc.feed.Publish(realtime.Event{
			Op:    realtime.OpDelete,
			Table: event.TableEventParticipants,
			RowID: eventID,
			Scope: map[string]uuid.UUID{"event_id": eventID},
		})
	}
	return nil
}

func (uc *EventUsecase) SendMessage(ctx context.Context, eventID, authorID uuid.UUID, content string) (*event.EventMessageDTO, error) {
	content, err := chat.ValidateContent(content)
	if err != nil {
		return nil, err
	}

	author, err := uc.profiles.GetByID(ctx, authorID)
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

	joined, err := uc.repo.IsParticipant(ctx, eventID, authorID)
	if err != nil {
		uc.logger.Errorf("error while checking participation: %v", err)
		return nil, errors.Internal("error while sending event message")
	}
	if !joined {
		return nil, errors.ErrNotParticipant
	}

	msg := &models.EventMessage{
		EventID:  eventID,
		AuthorID: authorID,
		Content:  content,
	}
	if err := uc.repo.InsertMessage(ctx, msg); err != nil {
		uc.logger.Errorf("error while saving event message: %v", err)
		return nil, errors.Internal("error while sending event message")
	}

	msg.Author = author
	dto := event.MessageToDTO(msg)

	uc.feed.Publish(realtime.Event{
		Op:    realtime.OpInsert,
		Table: event.TableEventMessages,
		RowID: msg.ID,
		Scope: map[string]uuid.UUID{"event_id": eventID},
	})

	return &dto, nil
}

func (uc *EventUsecase) requireAdmin(ctx context.Context, actorID uuid.UUID) (*profileModels.Profile, error) {
	actor, err := uc.profiles.GetByID(ctx, actorID)
	if err != nil {
		return nil, errors.ErrProfileNotFound
	}
	if actor.Role.Level() < profileModels.RoleAdmin.Level() && !actor.IsSuperAdmin {
		return nil, errors.ErrInsufficientRole
	}
	return actor, nil
}

func validateSchedule(title, category string, startsAt, endsAt time.Time) error {
	if strings.TrimSpace(title) == "" {
		return errors.InvalidArg("event title cannot be empty")
	}
	if strings.TrimSpace(category) == "" {
		return errors.InvalidArg("event category cannot be empty")
	}
	if !endsAt.After(startsAt) {
		return errors.ErrInvalidEventEnd
	}
	return nil
}
