// Package process implements the legal-process lifecycle: creation together
// with its timeline, owner-scoped reads and mutations, the aggregate fetch,
// and the public filtered listing.
package process

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/config"
	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

type processRepo interface {
	Create(ctx context.Context, p *domain.Process) (*domain.Process, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Process, error)
	Update(ctx context.Context, id uuid.UUID, params domain.ProcessUpdateParams) (*domain.Process, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.Process, error)
	ListAll(ctx context.Context, filter domain.ProcessFilter) ([]domain.Process, error)
}

type timelineRepo interface {
	Create(ctx context.Context, processID uuid.UUID) (*domain.Timeline, error)
	GetByProcessID(ctx context.Context, processID uuid.UUID) (*domain.Timeline, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventRepo interface {
	ListByTimeline(ctx context.Context, timelineID uuid.UUID) ([]domain.Event, error)
	DeleteByTimeline(ctx context.Context, timelineID uuid.UUID) (int64, error)
}

type observationRepo interface {
	ListByProcess(ctx context.Context, processID uuid.UUID) ([]domain.Observation, error)
	DeleteByProcess(ctx context.Context, processID uuid.UUID) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides process management operations.
type Service struct {
	processes    processRepo
	timelines    timelineRepo
	events       eventRepo
	observations observationRepo
	tx           txManager
	cfg          config.ProcessConfig
	log          *slog.Logger
}

// NewService creates a new Process service.
func NewService(
	log *slog.Logger,
	processes processRepo,
	timelines timelineRepo,
	events eventRepo,
	observations observationRepo,
	tx txManager,
	cfg config.ProcessConfig,
) *Service {
	return &Service{
		processes:    processes,
		timelines:    timelines,
		events:       events,
		observations: observations,
		tx:           tx,
		cfg:          cfg,
		log:          log.With("service", "process"),
	}
}
