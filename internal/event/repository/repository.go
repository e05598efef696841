package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "github.com/Azotik83/Eclipse.github.io/internal/event/model"
	appErrors "github.com/Azotik83/Eclipse.github.io/pkg/errors"
	"github.com/Azotik83/Eclipse.github.io/pkg/logger"
)

type EventRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrMessageNotFound = errors.New("event message not found")
)

func NewEventRepository(db *bun.DB, logger logger.Logger) *EventRepository {
	return &EventRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *EventRepository) ListActiveEventPage(ctx context.Context, before time.Time, limit int) ([]*models.Event, error) {
	var events []*models.Event
	q := r.db.NewSelect().
		Model(&events).
		Relation("Creator").
		Relation("Participants", func(sq *bun.SelectQuery) *bun.SelectQuery {
			return sq.Order("joined_at ASC")
		}).
		Relation("Participants.Profile").
		Where("event.is_active = ?", true).
		Order("event.starts_at DESC").
		Order("event.id DESC").
		Limit(limit)
	if !before.IsZero() {
		q = q.Where("event.starts_at < ?", before)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, errors.Wrap(err, "eventRepo.ListActiveEventPage.Scan: ")
	}
	return events, nil
}

func (r *EventRepository) GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	ev := new(models.Event)
	err := r.db.NewSelect().
		Model(ev).
		Relation("Creator").
		Relation("Participants", func(sq *bun.SelectQuery) *bun.SelectQuery {
			return sq.Order("joined_at ASC")
		}).
		Relation("Participants.Profile").
		Where("event.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, errors.Wrap(err, "eventRepo.GetEvent.Scan: ")
	}
	return ev, nil
}

func (r *EventRepository) InsertEvent(ctx context.Context, ev *models.Event) error {
	_, err := r.db.NewInsert().
		Model(ev).
		Returning("id, created_at").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "eventRepo.InsertEvent.Exec: ")
	}
	return nil
}

func (r *EventRepository) UpdateEvent(ctx context.Context, ev *models.Event) error {
	res, err := r.db.NewUpdate().
		Model(ev).
		Column("title", "description", "category", "starts_at", "ends_at", "max_participants").
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "eventRepo.UpdateEvent.Exec: ")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "eventRepo.UpdateEvent.RowsAffected: ")
	}
	if n == 0 {
		return ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) DeactivateEvent(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.NewUpdate().
		Model((*models.Event)(nil)).
		Set("is_active = ?", false).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "eventRepo.DeactivateEvent.Exec: ")
	}
	return nil
}

// InsertParticipant locks the event row so concurrent joins cannot race the
// capacity check past max_participants.
func (r *EventRepository) InsertParticipant(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	var inserted bool
	err := r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		ev := new(models.Event)
		err := tx.NewSelect().
			Model(ev).
			Column("max_participants").
			Where("id = ?", eventID).
			For("UPDATE").
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrEventNotFound
			}
			return errors.Wrap(err, "eventRepo.InsertParticipant.Lock: ")
		}

		if ev.MaxParticipants != nil {
			count, err := tx.NewSelect().
				Model((*models.EventParticipant)(nil)).
				Where("event_id = ?", eventID).
				Count(ctx)
			if err != nil {
				return errors.Wrap(err, "eventRepo.InsertParticipant.Count: ")
			}
			if count >= *ev.MaxParticipants {
				return appErrors.ErrEventFull
			}
		}

		res, err := tx.NewInsert().
			Model(&models.EventParticipant{EventID: eventID, UserID: userID}).
			On("CONFLICT (event_id, user_id) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "eventRepo.InsertParticipant.Exec: ")
		}
		n, err := res.RowsAffected()
		if err != nil {
			return errors.Wrap(err, "eventRepo.InsertParticipant.RowsAffected: ")
		}
		inserted = n > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return inserted, nil
}

func (r *EventRepository) DeleteParticipant(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	res, err := r.db.NewDelete().
		Model((*models.EventParticipant)(nil)).
		Where("event_id = ?", eventID).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return false, errors.Wrap(err, "eventRepo.DeleteParticipant.Exec: ")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "eventRepo.DeleteParticipant.RowsAffected: ")
	}
	return n > 0, nil
}

func (r *EventRepository) IsParticipant(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*models.EventParticipant)(nil)).
		Where("event_id = ?", eventID).
		Where("user_id = ?", userID).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "eventRepo.IsParticipant.Exists: ")
	}
	return exists, nil
}

func (r *EventRepository) GetMessagePage(ctx context.Context, eventID uuid.UUID, before time.Time, limit int) ([]*models.EventMessage, error) {
	var msgs []*models.EventMessage
	q := r.db.NewSelect().
		Model(&msgs).
		Relation("Author").
		Where("event_message.event_id = ?", eventID).
		Order("event_message.created_at DESC").
		Order("event_message.id DESC").
		Limit(limit)
	if !before.IsZero() {
		q = q.Where("event_message.created_at < ?", before)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, errors.Wrap(err, "eventRepo.GetMessagePage.Scan: ")
	}
	return msgs, nil
}

func (r *EventRepository) GetMessage(ctx context.Context, id uuid.UUID) (*models.EventMessage, error) {
	msg := new(models.EventMessage)
	err := r.db.NewSelect().
		Model(msg).
		Relation("Author").
		Where("event_message.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMessageNotFound
		}
		return nil, errors.Wrap(err, "eventRepo.GetMessage.Scan: ")
	}
	return msg, nil
}

func (r *EventRepository) InsertMessage(ctx context.Context, msg *models.EventMessage) error {
	_, err := r.db.NewInsert().
		Model(msg).
		Returning("id, created_at").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "eventRepo.InsertMessage.Exec: ")
	}
	return nil
}
