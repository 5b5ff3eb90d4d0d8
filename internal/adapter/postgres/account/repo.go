// Package account implements the Account repository using PostgreSQL.
package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/MATEOCAIZA/ProyectoFInal/internal/adapter/postgres"
	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new account repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const accountColumns = `id, username, password_hash, email, phone, role, created_at, updated_at`

const createSQL = `
INSERT INTO account (id, username, password_hash, email, phone, role, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now(), now())
RETURNING ` + accountColumns

const getByIDSQL = `SELECT ` + accountColumns + ` FROM account WHERE id = $1`

const getByUsernameSQL = `SELECT ` + accountColumns + ` FROM account WHERE username = $1`

const updateSQL = `
UPDATE account SET
    email         = COALESCE($2, email),
    phone         = COALESCE($3, phone),
    password_hash = COALESCE($4, password_hash),
    updated_at    = now()
WHERE id = $1
RETURNING ` + accountColumns

const updateRoleSQL = `
UPDATE account SET role = $2, updated_at = now()
WHERE username = $1
RETURNING ` + accountColumns

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create inserts a new account. A taken username or email yields
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, acc *domain.Account) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	id := acc.ID
	if id == uuid.Nil {
		id = uuid.Must(uuid.NewV7())
	}

	row := q.QueryRow(ctx, createSQL, id, acc.Username, acc.PasswordHash, acc.Email, acc.Phone, string(acc.Role))
	created, err := scanAccount(row)
	if err != nil {
		return nil, postgres.MapError(err, "account", acc.Username)
	}
	return created, nil
}

// GetByID returns an account by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	acc, err := scanAccount(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "account", id)
	}
	return acc, nil
}

// GetByUsername returns an account by its unique username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	acc, err := scanAccount(q.QueryRow(ctx, getByUsernameSQL, username))
	if err != nil {
		return nil, postgres.MapError(err, "account", username)
	}
	return acc, nil
}

// Update applies the non-nil fields of params and bumps updated_at.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.AccountUpdateParams) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	acc, err := scanAccount(q.QueryRow(ctx, updateSQL, id, params.Email, params.Phone, params.PasswordHash))
	if err != nil {
		return nil, postgres.MapError(err, "account", id)
	}
	return acc, nil
}

// UpdateRole sets the role of the account identified by username.
func (r *Repo) UpdateRole(ctx context.Context, username string, role domain.Role) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	acc, err := scanAccount(q.QueryRow(ctx, updateRoleSQL, username, string(role)))
	if err != nil {
		return nil, postgres.MapError(err, "account", username)
	}
	return acc, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		acc  domain.Account
		role string
	)
	if err := row.Scan(
		&acc.ID, &acc.Username, &acc.PasswordHash, &acc.Email, &acc.Phone,
		&role, &acc.CreatedAt, &acc.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan account: %w", err)
	}
	acc.Role = domain.Role(role)
	return &acc, nil
}
