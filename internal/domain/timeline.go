package domain

import (
	"time"

	"github.com/google/uuid"
)

// Timeline is the single ordered sequence of events of a process.
// NumberEvents always equals the number of live events.
type Timeline struct {
	ID           uuid.UUID
	ProcessID    uuid.UUID
	NumberEvents int
}

// Event is a dated entry of a timeline. Order is 1-based and dense
// within its timeline.
type Event struct {
	ID          uuid.UUID
	Name        string
	Description string
	Date        time.Time
	Order       int
	TimelineID  uuid.UUID
}

// EventUpdateParams holds a partial event update. nil = don't change.
// Date is always refreshed.
type EventUpdateParams struct {
	Name        *string
	Description *string
	Date        time.Time
}
