// Package timeline implements the Timeline repository using PostgreSQL.
// It owns the number_events counter; callers that append or remove events
// must adjust it in the same transaction.
package timeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/MATEOCAIZA/ProyectoFInal/internal/adapter/postgres"
	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

// Repo provides timeline persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new timeline repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO timeline (id, process_id, number_events)
VALUES ($1, $2, 0)
RETURNING id, process_id, number_events`

const getByIDSQL = `SELECT id, process_id, number_events FROM timeline WHERE id = $1`

const getByProcessIDSQL = `SELECT id, process_id, number_events FROM timeline WHERE process_id = $1`

const lockByIDSQL = `SELECT id, process_id, number_events FROM timeline WHERE id = $1 FOR UPDATE`

const incrementSQL = `
UPDATE timeline SET number_events = number_events + 1
WHERE id = $1
RETURNING number_events`

const decrementSQL = `
UPDATE timeline SET number_events = number_events - 1
WHERE id = $1
RETURNING number_events`

const deleteSQL = `DELETE FROM timeline WHERE id = $1`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create inserts an empty timeline for processID. A second timeline for the
// same process yields domain.ErrAlreadyExists; an unknown process yields
// domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, processID uuid.UUID) (*domain.Timeline, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tl, err := scanTimeline(q.QueryRow(ctx, createSQL, uuid.Must(uuid.NewV7()), processID))
	if err != nil {
		return nil, postgres.MapError(err, "timeline for process", processID)
	}
	return tl, nil
}

// GetByID returns a timeline by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Timeline, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tl, err := scanTimeline(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "timeline", id)
	}
	return tl, nil
}

// GetByProcessID returns the timeline of a process.
func (r *Repo) GetByProcessID(ctx context.Context, processID uuid.UUID) (*domain.Timeline, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tl, err := scanTimeline(q.QueryRow(ctx, getByProcessIDSQL, processID))
	if err != nil {
		return nil, postgres.MapError(err, "timeline for process", processID)
	}
	return tl, nil
}

// LockByID reads a timeline and holds its row lock until the surrounding
// transaction ends. Must be called inside RunInTx.
func (r *Repo) LockByID(ctx context.Context, id uuid.UUID) (*domain.Timeline, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tl, err := scanTimeline(q.QueryRow(ctx, lockByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "timeline", id)
	}
	return tl, nil
}

// IncrementEventCount bumps number_events and returns the new value, which is
// the order of the event being appended. The update takes the row lock.
func (r *Repo) IncrementEventCount(ctx context.Context, id uuid.UUID) (int, error) {
	return r.adjustCount(ctx, incrementSQL, id)
}

// DecrementEventCount lowers number_events and returns the new value.
func (r *Repo) DecrementEventCount(ctx context.Context, id uuid.UUID) (int, error) {
	return r.adjustCount(ctx, decrementSQL, id)
}

func (r *Repo) adjustCount(ctx context.Context, sql string, id uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var n int
	if err := q.QueryRow(ctx, sql, id).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "timeline", id)
	}
	return n, nil
}

// Delete removes a timeline row. Its events must be removed first.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "timeline", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("timeline %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanTimeline(row pgx.Row) (*domain.Timeline, error) {
	var tl domain.Timeline
	if err := row.Scan(&tl.ID, &tl.ProcessID, &tl.NumberEvents); err != nil {
		return nil, fmt.Errorf("scan timeline: %w", err)
	}
	return &tl, nil
}
