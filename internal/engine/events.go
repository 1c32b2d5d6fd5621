package engine

import (
	"time"

	"github.com/google/uuid"
)

// EventKind labels a state change for external subscribers.
type EventKind string

const (
	EventEntryPosted  EventKind = "entry-posted"
	EventAccountAdded EventKind = "account-added"
	EventPeriodClosed EventKind = "period-closed"
	EventReset        EventKind = "reset"
)

// Event is one notification produced by a state transition. The engine
// never dispatches events itself; callers drain the returned slice and
// notify subscribers however the host prefers, preserving submission
// order.
type Event struct {
	ID        uuid.UUID
	Kind      EventKind
	At        time.Time
	JournalID string
	Summary   string
}

func newEvent(kind EventKind, at time.Time, journalID, summary string) Event {
	return Event{
		ID:        uuid.New(),
		Kind:      kind,
		At:        at,
		JournalID: journalID,
		Summary:   summary,
	}
}
