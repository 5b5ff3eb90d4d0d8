package domain

import "github.com/google/uuid"

// Observation is a free-text annotation attached to a process.
type Observation struct {
	ID        uuid.UUID
	Title     string
	Content   string
	ProcessID uuid.UUID
}

// ObservationWithOwner is an observation joined with the account that owns
// its process. Used to authorize mutations with a single lookup.
type ObservationWithOwner struct {
	Observation
	ProcessOwner uuid.UUID
}
