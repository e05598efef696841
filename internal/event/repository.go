package event

import (
	"context"
	"time"

	"github.com/google/uuid"

	models "github.com/Azotik83/Eclipse.github.io/internal/event/model"
)

// Tables published to the change feed.
const (
	TableEvents            = "events"
	TableEventParticipants = "event_participants"
	TableEventMessages     = "event_messages"
)

type EventRepository interface {
	// ListActiveEventPage returns upcoming active events ordered by start
	// time, with the creator and participant rosters loaded.
	ListActiveEventPage(ctx context.Context, before time.Time, limit int) ([]*models.Event, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error)
	InsertEvent(ctx context.Context, ev *models.Event) error
	UpdateEvent(ctx context.Context, ev *models.Event) error
	DeactivateEvent(ctx context.Context, id uuid.UUID) error

	// InsertParticipant enforces the capacity limit inside the insert and
	// reports whether a row was added; joining twice is not an error.
	InsertParticipant(ctx context.Context, eventID, userID uuid.UUID) (bool, error)
	// DeleteParticipant reports whether the user had joined.
	DeleteParticipant(ctx context.Context, eventID, userID uuid.UUID) (bool, error)
	IsParticipant(ctx context.Context, eventID, userID uuid.UUID) (bool, error)

	GetMessagePage(ctx context.Context, eventID uuid.UUID, before time.Time, limit int) ([]*models.EventMessage, error)
	GetMessage(ctx context.Context, id uuid.UUID) (*models.EventMessage, error)
	InsertMessage(ctx context.Context, msg *models.EventMessage) error
}
