package event

import (
	"context"

	"github.com/google/uuid"
)

// EventUsecase manages the schedule and the participant-only event chat.
// Creating and editing events is an admin action; joining is open to anyone
// within capacity.
type EventUsecase interface {
	Events(ctx context.Context) ([]EventDTO, error)
	Create(ctx context.Context, cmd CreateEventCommand) (*EventDTO, error)
	Update(ctx context.Context, cmd UpdateEventCommand) (*EventDTO, error)
	Deactivate(ctx context.Context, actorID, eventID uuid.UUID) error

	Join(ctx context.Context, eventID, userID uuid.UUID) error
	Leave(ctx context.Context, eventID, userID uuid.UUID) error

	SendMessage(ctx context.Context, eventID, authorID uuid.UUID, content string) (*EventMessageDTO, error)
}
