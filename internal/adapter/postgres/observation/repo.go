// Package observation implements the Observation repository using PostgreSQL.
package observation

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/MATEOCAIZA/ProyectoFInal/internal/adapter/postgres"
	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

// Repo provides observation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new observation repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const observationColumns = `id, title, content, process_id`

const createSQL = `
INSERT INTO observation (id, title, content, process_id)
VALUES ($1, $2, $3, $4)
RETURNING ` + observationColumns

const getWithOwnerSQL = `
SELECT o.id, o.title, o.content, o.process_id, p.account_id
FROM observation o
JOIN process p ON p.id = o.process_id
WHERE o.id = $1`

const listByProcessSQL = `SELECT ` + observationColumns + ` FROM observation
WHERE process_id = $1
ORDER BY created_at ASC, id ASC`

const deleteSQL = `DELETE FROM observation WHERE id = $1`

const deleteByProcessSQL = `DELETE FROM observation WHERE process_id = $1`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create inserts an observation on an existing process.
func (r *Repo) Create(ctx context.Context, o *domain.Observation) (*domain.Observation, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	id := o.ID
	if id == uuid.Nil {
		id = uuid.Must(uuid.NewV7())
	}

	created, err := scanObservation(q.QueryRow(ctx, createSQL, id, o.Title, o.Content, o.ProcessID))
	if err != nil {
		return nil, postgres.MapError(err, "observation", id)
	}
	return created, nil
}

// GetWithOwner returns an observation joined with the account that owns its
// process.
func (r *Repo) GetWithOwner(ctx context.Context, id uuid.UUID) (*domain.ObservationWithOwner, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var o domain.ObservationWithOwner
	err := q.QueryRow(ctx, getWithOwnerSQL, id).
		Scan(&o.ID, &o.Title, &o.Content, &o.ProcessID, &o.ProcessOwner)
	if err != nil {
		return nil, postgres.MapError(err, "observation", id)
	}
	return &o, nil
}

// Update overwrites title and/or content. A nil argument keeps the stored
// value. With both nil the row is returned unchanged.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, title, content *string) (*domain.Observation, error) {
	if title == nil && content == nil {
		current, err := r.GetWithOwner(ctx, id)
		if err != nil {
			return nil, err
		}
		return &current.Observation, nil
	}

	upd := postgres.Builder().
		Update("observation").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + observationColumns)
	if title != nil {
		upd = upd.Set("title", *title)
	}
	if content != nil {
		upd = upd.Set("content", *content)
	}

	sql, args, err := upd.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build observation update: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	o, err := scanObservation(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "observation", id)
	}
	return o, nil
}

// Delete removes one observation.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "observation", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("observation %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteByProcess removes every observation of a process and returns how
// many rows were deleted.
func (r *Repo) DeleteByProcess(ctx context.Context, processID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteByProcessSQL, processID)
	if err != nil {
		return 0, postgres.MapError(err, "observations of process", processID)
	}
	return tag.RowsAffected(), nil
}

// ListByProcess returns the observations of a process, oldest first.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByProcess(ctx context.Context, processID uuid.UUID) ([]domain.Observation, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listByProcessSQL, processID)
	if err != nil {
		return nil, fmt.Errorf("list observations by process: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Observation, 0)
	for rows.Next() {
		o, err := scanObservation(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate observations: %w", err)
	}
	return result, nil
}

func scanObservation(row pgx.Row) (*domain.Observation, error) {
	var o domain.Observation
	if err := row.Scan(&o.ID, &o.Title, &o.Content, &o.ProcessID); err != nil {
		return nil, fmt.Errorf("scan observation: %w", err)
	}
	return &o, nil
}
