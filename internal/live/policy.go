package live

import (
	"github.com/Azotik83/Eclipse.github.io/internal/realtime"
)

// Strategy is what a view does with one change notification.
type Strategy int

const (
	// Ignore drops the event.
	Ignore Strategy = iota
	// FetchOne re-fetches only the changed row with its projections and
	// splices it into the window.
	FetchOne
	// PatchRow applies the event payload to the matching row in place.
	PatchRow
	// FullReload refetches the whole window. Chosen where the view is a
	// derived aggregate (reactions, voice occupancy, friendships) and a
	// point patch would have to re-derive the aggregate anyway.
	FullReload
)

type PolicyKey struct {
	Table string
	Op    realtime.Op
}

// Policy is the per-view dispatch table mapping (table, operation) to a
// strategy. Keeping it as data rather than handler branches makes each
// view's reconciliation rules reviewable in one place.
type Policy map[PolicyKey]Strategy

// On registers a strategy for the given operations, or for insert, update
// and delete when none are named.
func (p Policy) On(table string, s Strategy, ops ...realtime.Op) Policy {
	if len(ops) == 0 {
		ops = []realtime.Op{realtime.OpInsert, realtime.OpUpdate, realtime.OpDelete}
	}
	for _, op := range ops {
		p[PolicyKey{Table: table, Op: op}] = s
	}
	return p
}

// For returns the strategy for an event; unregistered events are ignored.
func (p Policy) For(ev realtime.Event) Strategy {
	if s, ok := p[PolicyKey{Table: ev.Table, Op: ev.Op}]; ok {
		return s
	}
	return Ignore
}
