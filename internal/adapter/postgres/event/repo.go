// Package event implements the Event repository using PostgreSQL.
// Events of a timeline are kept densely ordered 1..N; Renumber restores that
// after a removal.
package event

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/MATEOCAIZA/ProyectoFInal/internal/adapter/postgres"
	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

// Repo provides event persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new event repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const eventColumns = `id, name, description, date, "order", timeline_id`

const createSQL = `
INSERT INTO event (id, name, description, date, "order", timeline_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + eventColumns

const getByIDSQL = `SELECT ` + eventColumns + ` FROM event WHERE id = $1`

const listByTimelineSQL = `SELECT ` + eventColumns + ` FROM event
WHERE timeline_id = $1
ORDER BY "order" ASC, id ASC`

const updateSQL = `
UPDATE event SET
    name        = COALESCE($2, name),
    description = COALESCE($3, description),
    date        = $4
WHERE id = $1
RETURNING ` + eventColumns

const deleteSQL = `DELETE FROM event WHERE id = $1`

const deleteByTimelineSQL = `DELETE FROM event WHERE timeline_id = $1`

// renumberSQL rewrites "order" to 1..N following the current (order, id)
// sequence. Rows already in place are not touched.
const renumberSQL = `
UPDATE event e SET "order" = r.rn
FROM (
    SELECT id, row_number() OVER (ORDER BY "order" ASC, id ASC) AS rn
    FROM event
    WHERE timeline_id = $1
) r
WHERE e.id = r.id AND e."order" <> r.rn`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create inserts an event. The caller supplies Order (from the timeline
// counter); a zero Date means now.
func (r *Repo) Create(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	id := e.ID
	if id == uuid.Nil {
		id = uuid.Must(uuid.NewV7())
	}
	date := e.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	created, err := scanEvent(q.QueryRow(ctx, createSQL, id, e.Name, e.Description, date, e.Order, e.TimelineID))
	if err != nil {
		return nil, postgres.MapError(err, "event", id)
	}
	return created, nil
}

// GetByID returns an event by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	e, err := scanEvent(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "event", id)
	}
	return e, nil
}

// ListByTimeline returns the events of a timeline by ascending order.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByTimeline(ctx context.Context, timelineID uuid.UUID) ([]domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listByTimelineSQL, timelineID)
	if err != nil {
		return nil, fmt.Errorf("list events by timeline: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return result, nil
}

// Update applies the non-nil name/description and always writes the date.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.EventUpdateParams) (*domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	date := params.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	e, err := scanEvent(q.QueryRow(ctx, updateSQL, id, params.Name, params.Description, date))
	if err != nil {
		return nil, postgres.MapError(err, "event", id)
	}
	return e, nil
}

// Delete removes a single event. Order gaps are left for Renumber.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "event", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteByTimeline removes every event of a timeline and returns how many
// rows were deleted.
func (r *Repo) DeleteByTimeline(ctx context.Context, timelineID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteByTimelineSQL, timelineID)
	if err != nil {
		return 0, postgres.MapError(err, "events of timeline", timelineID)
	}
	return tag.RowsAffected(), nil
}

// Renumber compacts the order of a timeline's events to 1..N.
// Must run in the same transaction as the delete that opened the gap.
func (r *Repo) Renumber(ctx context.Context, timelineID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, renumberSQL, timelineID); err != nil {
		return postgres.MapError(err, "events of timeline", timelineID)
	}
	return nil
}

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var e domain.Event
	if err := row.Scan(&e.ID, &e.Name, &e.Description, &e.Date, &e.Order, &e.TimelineID); err != nil {
		return nil, fmt.Errorf("scan event: %w", err)
	}
	return &e, nil
}
