package realtime

import (
	"github.com/google/uuid"
)

type Op string

const (
	OpInsert Op = "insert"
	OpUpdate Op = "update"
	OpDelete Op = "delete"

	// OpResync is synthesized by the broker when a subscriber fell behind and
	// events were dropped. Consumers treat it as "reload everything".
	OpResync Op = "resync"
)

// Event is one change notification: what happened, to which table, and to
// which row. Scope carries the values of the row's scoping columns
// (e.g. channel_id) so filtered subscriptions can match without a payload.
// Payload optionally carries the written row so consumers can patch in place.
type Event struct {
	Op      Op
	Table   string
	RowID   uuid.UUID
	Scope   map[string]uuid.UUID
	Payload any
}

// Filter restricts a binding to rows whose scoping column equals ID.
// The zero Filter matches every row of the bound table.
type Filter struct {
	Column string
	ID     uuid.UUID
}

func (f Filter) Matches(ev Event) bool {
	if f.Column == "" {
		return true
	}
	id, ok := ev.Scope[f.Column]
	return ok && id == f.ID
}

// Binding subscribes to one table, optionally narrowed to specific
// operations and a row filter. Empty Ops means all operations.
type Binding struct {
	Table  string
	Ops    []Op
	Filter Filter
}

func (b Binding) matches(ev Event) bool {
	if b.Table != ev.Table {
		return false
	}
	if len(b.Ops) > 0 {
		found := false
		for _, op := range b.Ops {
			if op == ev.Op {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return b.Filter.Matches(ev)
}

type Handler func(Event)

// Feed delivers change notifications for the tables a subscriber binds to.
// The broker below is the in-process implementation; a networked transport
// would satisfy the same interface.
type Feed interface {
	Subscribe(topic string, bindings []Binding, h Handler) (*Subscription, error)
}

// Publisher is the write side of the feed. Mutation gateways publish exactly
// one event per successful remote write; the writer's own subscriptions
// receive the echo like everyone else.
type Publisher interface {
	Publish(ev Event)
}
