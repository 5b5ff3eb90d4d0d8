package process

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

// GetProcess returns the caller's process with its timeline, ordered events
// and observations. Timeline is nil if it was deleted explicitly; the slices
// are never nil.
func (s *Service) GetProcess(ctx context.Context, processID uuid.UUID) (*domain.ProcessAggregate, error) {
	accountID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	p, err := s.ownedProcess(ctx, accountID, processID)
	if err != nil {
		return nil, err
	}

	agg := &domain.ProcessAggregate{
		Process:      *p,
		Events:       []domain.Event{},
		Observations: []domain.Observation{},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		tl, err := s.timelines.GetByProcessID(gctx, processID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get timeline: %w", err)
		}
		events, err := s.events.ListByTimeline(gctx, tl.ID)
		if err != nil {
			return fmt.Errorf("list events: %w", err)
		}
		agg.Timeline = tl
		if events != nil {
			agg.Events = events
		}
		return nil
	})

	g.Go(func() error {
		obs, err := s.observations.ListByProcess(gctx, processID)
		if err != nil {
			return fmt.Errorf("list observations: %w", err)
		}
		if obs != nil {
			agg.Observations = obs
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return agg, nil
}
