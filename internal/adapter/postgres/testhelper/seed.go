package testhelper

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

// uniqueLetters returns a short unique string of ASCII letters, usable where
// the schema or validation rejects digits (usernames).
func uniqueLetters() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")[:10]
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune('g' + (r - '0'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedAccount creates an account with role abogada.
func SeedAccount(t *testing.T, pool *pgxpool.Pool) domain.Account {
	t.Helper()

	suffix := uniqueLetters()
	ts := now()
	acc := domain.Account{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     "lawyer" + suffix,
		PasswordHash: "$2a$04$seededhashnotusableforlogin",
		Email:        "lawyer-" + suffix + "@gmail.com",
		Role:         domain.RoleAbogada,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO account (id, username, password_hash, email, phone, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		acc.ID, acc.Username, acc.PasswordHash, acc.Email, acc.Phone, string(acc.Role), acc.CreatedAt, acc.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount: %v", err)
	}

	return acc
}

// SeedProcess creates a process owned by accountID. No timeline is created.
func SeedProcess(t *testing.T, pool *pgxpool.Pool, accountID uuid.UUID) domain.Process {
	t.Helper()

	p := domain.Process{
		ID:         uuid.Must(uuid.NewV7()),
		Title:      "Proceso " + uniqueLetters(),
		Type:       "penal",
		Offense:    "robo",
		LastUpdate: now(),
		Denounced:  "Juan Pérez",
		Denouncer:  "María López",
		Province:   "Pichincha",
		Carton:     "17282-2024-00123",
		AccountID:  accountID,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO process (id, title, type, offense, last_update, denounced, denouncer, province, carton, account_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.Title, p.Type, p.Offense, p.LastUpdate, p.Denounced, p.Denouncer, p.Province, p.Carton, p.AccountID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProcess: %v", err)
	}

	return p
}

// SeedTimeline creates an empty timeline for processID.
func SeedTimeline(t *testing.T, pool *pgxpool.Pool, processID uuid.UUID) domain.Timeline {
	t.Helper()

	tl := domain.Timeline{ID: uuid.Must(uuid.NewV7()), ProcessID: processID}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO timeline (id, process_id, number_events) VALUES ($1, $2, 0)`,
		tl.ID, tl.ProcessID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTimeline: %v", err)
	}

	return tl
}

// SeedEvents appends n events to the timeline and bumps its counter,
// keeping order dense 1..n.
func SeedEvents(t *testing.T, pool *pgxpool.Pool, timelineID uuid.UUID, n int) []domain.Event {
	t.Helper()
	ctx := context.Background()

	events := make([]domain.Event, 0, n)
	for i := 1; i <= n; i++ {
		var order int
		err := pool.QueryRow(ctx,
			`UPDATE timeline SET number_events = number_events + 1 WHERE id = $1 RETURNING number_events`,
			timelineID,
		).Scan(&order)
		if err != nil {
			t.Fatalf("testhelper: SeedEvents bump counter: %v", err)
		}

		e := domain.Event{
			ID:          uuid.Must(uuid.NewV7()),
			Name:        "Audiencia " + uniqueLetters(),
			Description: "seeded",
			Date:        now(),
			Order:       order,
			TimelineID:  timelineID,
		}
		_, err = pool.Exec(ctx,
			`INSERT INTO event (id, name, description, date, "order", timeline_id) VALUES ($1, $2, $3, $4, $5, $6)`,
			e.ID, e.Name, e.Description, e.Date, e.Order, e.TimelineID,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedEvents insert: %v", err)
		}
		events = append(events, e)
	}

	return events
}

// SeedObservation creates an observation on processID.
func SeedObservation(t *testing.T, pool *pgxpool.Pool, processID uuid.UUID) domain.Observation {
	t.Helper()

	o := domain.Observation{
		ID:        uuid.Must(uuid.NewV7()),
		Title:     "Nota " + uniqueLetters(),
		Content:   "contenido inicial",
		ProcessID: processID,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO observation (id, title, content, process_id) VALUES ($1, $2, $3, $4)`,
		o.ID, o.Title, o.Content, o.ProcessID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedObservation: %v", err)
	}

	return o
}
