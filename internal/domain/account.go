package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a registered user of the system.
// PasswordHash is never serialized outward by the transport layer.
type Account struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Email        string
	Phone        *string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AccountUpdateParams holds the profile fields an account may change.
// nil = don't change.
type AccountUpdateParams struct {
	Email        *string
	Phone        *string
	PasswordHash *string
}
