// Package timeline implements the ordered event sequence of a process:
// timeline lifecycle, event append/modify/remove, and the ownership chain
// Event → Timeline → Process → account.
//
// Event order is dense 1..N within a timeline and number_events always
// equals the live event count. Every mutation that touches both runs in one
// transaction.
package timeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

type processRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Process, error)
}

type timelineRepo interface {
	Create(ctx context.Context, processID uuid.UUID) (*domain.Timeline, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Timeline, error)
	GetByProcessID(ctx context.Context, processID uuid.UUID) (*domain.Timeline, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Timeline, error)
	IncrementEventCount(ctx context.Context, id uuid.UUID) (int, error)
	DecrementEventCount(ctx context.Context, id uuid.UUID) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventRepo interface {
	Create(ctx context.Context, e *domain.Event) (*domain.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	ListByTimeline(ctx context.Context, timelineID uuid.UUID) ([]domain.Event, error)
	Update(ctx context.Context, id uuid.UUID, params domain.EventUpdateParams) (*domain.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByTimeline(ctx context.Context, timelineID uuid.UUID) (int64, error)
	Renumber(ctx context.Context, timelineID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides timeline and event operations.
type Service struct {
	processes processRepo
	timelines timelineRepo
	events    eventRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Timeline service.
func NewService(
	log *slog.Logger,
	processes processRepo,
	timelines timelineRepo,
	events eventRepo,
	tx txManager,
) *Service {
	return &Service{
		processes: processes,
		timelines: timelines,
		events:    events,
		tx:        tx,
		log:       log.With("service", "timeline"),
	}
}
