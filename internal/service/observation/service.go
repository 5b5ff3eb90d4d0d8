// Package observation implements free-text annotations on a process.
// Mutations are restricted to the process owner; listing is public.
package observation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
	"github.com/MATEOCAIZA/ProyectoFInal/pkg/ctxutil"
)

type processRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Process, error)
}

type observationRepo interface {
	Create(ctx context.Context, o *domain.Observation) (*domain.Observation, error)
	GetWithOwner(ctx context.Context, id uuid.UUID) (*domain.ObservationWithOwner, error)
	Update(ctx context.Context, id uuid.UUID, title, content *string) (*domain.Observation, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByProcess(ctx context.Context, processID uuid.UUID) ([]domain.Observation, error)
}

// Service provides observation operations.
type Service struct {
	processes    processRepo
	observations observationRepo
	log          *slog.Logger
}

// NewService creates a new Observation service.
func NewService(log *slog.Logger, processes processRepo, observations observationRepo) *Service {
	return &Service{
		processes:    processes,
		observations: observations,
		log:          log.With("service", "observation"),
	}
}

func callerID(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthenticated
	}
	return id, nil
}

// ownedObservation loads an observation with its process owner in one query
// and checks that accountID is that owner.
func (s *Service) ownedObservation(ctx context.Context, accountID, observationID uuid.UUID) (*domain.ObservationWithOwner, error) {
	o, err := s.observations.GetWithOwner(ctx, observationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("observation %s: %w", observationID, domain.ErrObservationNotFound)
		}
		return nil, fmt.Errorf("get observation: %w", err)
	}
	if o.ProcessOwner != accountID {
		return nil, fmt.Errorf("observation %s: %w", observationID, domain.ErrUnauthorized)
	}
	return o, nil
}
