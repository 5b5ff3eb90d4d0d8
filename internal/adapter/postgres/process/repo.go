// Package process implements the Process repository using PostgreSQL.
// Listing queries with optional filters are built with squirrel; fixed
// statements are plain SQL constants.
package process

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/MATEOCAIZA/ProyectoFInal/internal/adapter/postgres"
	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

// Repo provides process persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new process repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

var processColumns = []string{
	"id", "title", "type", "offense", "last_update",
	"denounced", "denouncer", "province", "carton", "account_id",
}

var processColumnList = strings.Join(processColumns, ", ")

var (
	createSQL = `
INSERT INTO process (` + processColumnList + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + processColumnList

	getByIDSQL = `SELECT ` + processColumnList + ` FROM process WHERE id = $1`

	listByAccountSQL = `SELECT ` + processColumnList + ` FROM process
WHERE account_id = $1
ORDER BY last_update DESC, id DESC`
)

const deleteSQL = `DELETE FROM process WHERE id = $1`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create inserts a process. A zero ID is replaced by a fresh UUIDv7 and a
// zero LastUpdate by the current time.
func (r *Repo) Create(ctx context.Context, p *domain.Process) (*domain.Process, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	id := p.ID
	if id == uuid.Nil {
		id = uuid.Must(uuid.NewV7())
	}
	lastUpdate := p.LastUpdate
	if lastUpdate.IsZero() {
		lastUpdate = time.Now().UTC()
	}

	row := q.QueryRow(ctx, createSQL,
		id, p.Title, p.Type, p.Offense, lastUpdate,
		p.Denounced, p.Denouncer, p.Province, p.Carton, p.AccountID,
	)
	created, err := scanProcess(row)
	if err != nil {
		return nil, postgres.MapError(err, "process", id)
	}
	return created, nil
}

// GetByID returns a process by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Process, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	p, err := scanProcess(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "process", id)
	}
	return p, nil
}

// Update applies the non-nil fields of params. last_update is always written;
// a zero params.LastUpdate means now.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.ProcessUpdateParams) (*domain.Process, error) {
	lastUpdate := params.LastUpdate
	if lastUpdate.IsZero() {
		lastUpdate = time.Now().UTC()
	}

	upd := postgres.Builder().
		Update("process").
		Set("last_update", lastUpdate).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + processColumnList)

	for _, f := range []struct {
		column string
		value  *string
	}{
		{"title", params.Title},
		{"type", params.Type},
		{"offense", params.Offense},
		{"denounced", params.Denounced},
		{"denouncer", params.Denouncer},
		{"province", params.Province},
		{"carton", params.Carton},
	} {
		if f.value != nil {
			upd = upd.Set(f.column, *f.value)
		}
	}

	sql, args, err := upd.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build process update: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	p, err := scanProcess(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "process", id)
	}
	return p, nil
}

// Delete removes a process row. Dependent timeline, event and observation rows
// must be removed first; the foreign keys are ON DELETE RESTRICT.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "process", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("process %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListByAccount returns all processes owned by accountID, most recently
// updated first. Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.Process, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listByAccountSQL, accountID)
	if err != nil {
		return nil, fmt.Errorf("list processes by account: %w", err)
	}
	defer rows.Close()

	return scanProcesses(rows)
}

// ListAll returns processes of every account matching filter, most recently
// updated first. A non-positive Limit means no limit.
func (r *Repo) ListAll(ctx context.Context, filter domain.ProcessFilter) ([]domain.Process, error) {
	sql, args, err := buildListAllQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build process list: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}
	defer rows.Close()

	return scanProcesses(rows)
}

func buildListAllQuery(filter domain.ProcessFilter) squirrel.SelectBuilder {
	sel := postgres.Builder().
		Select(processColumns...).
		From("process").
		OrderBy("last_update DESC", "id DESC")

	if filter.Status != nil && strings.TrimSpace(*filter.Status) != "" {
		sel = sel.Where("lower(type) = lower(?)", strings.TrimSpace(*filter.Status))
	}
	if filter.Name != nil && strings.TrimSpace(*filter.Name) != "" {
		pattern := postgres.ContainsPattern(strings.TrimSpace(*filter.Name))
		sel = sel.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"denounced": pattern},
			squirrel.ILike{"denouncer": pattern},
		})
	}
	if filter.From != nil {
		sel = sel.Where(squirrel.GtOrEq{"last_update": *filter.From})
	}
	if filter.To != nil {
		sel = sel.Where(squirrel.Lt{"last_update": *filter.To})
	}
	if filter.Limit > 0 {
		sel = sel.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		sel = sel.Offset(uint64(filter.Offset))
	}
	return sel
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanProcess(row pgx.Row) (*domain.Process, error) {
	var p domain.Process
	if err := row.Scan(
		&p.ID, &p.Title, &p.Type, &p.Offense, &p.LastUpdate,
		&p.Denounced, &p.Denouncer, &p.Province, &p.Carton, &p.AccountID,
	); err != nil {
		return nil, fmt.Errorf("scan process: %w", err)
	}
	return &p, nil
}

func scanProcesses(rows pgx.Rows) ([]domain.Process, error) {
	result := make([]domain.Process, 0)
	for rows.Next() {
		p, err := scanProcess(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate processes: %w", err)
	}
	return result, nil
}
