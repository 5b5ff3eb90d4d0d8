package domain

import (
	"time"

	"github.com/google/uuid"
)

// Process is a legal case record owned by exactly one account.
// AccountID is set on creation and never changes.
type Process struct {
	ID         uuid.UUID
	Title      string
	Type       string
	Offense    string
	LastUpdate time.Time
	Denounced  string
	Denouncer  string
	Province   string
	Carton     string
	AccountID  uuid.UUID
}

// IsOwnedBy reports whether accountID is the owner of the process.
func (p *Process) IsOwnedBy(accountID uuid.UUID) bool {
	return p.AccountID == accountID
}

// ProcessUpdateParams holds a partial process update. nil fields keep
// their stored value. LastUpdate is always set by the service.
type ProcessUpdateParams struct {
	Title      *string
	Type       *string
	Offense    *string
	LastUpdate time.Time
	Denounced  *string
	Denouncer  *string
	Province   *string
	Carton     *string
}

// ProcessAggregate is a process together with everything it owns.
// Timeline is nil only if the timeline was explicitly deleted.
// Events and Observations are never nil.
type ProcessAggregate struct {
	Process
	Timeline     *Timeline
	Events       []Event
	Observations []Observation
}
