package timeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
	"github.com/MATEOCAIZA/ProyectoFInal/pkg/ctxutil"
)

func callerID(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthenticated
	}
	return id, nil
}

// authorizeProcess checks that accountID owns processID.
func (s *Service) authorizeProcess(ctx context.Context, accountID, processID uuid.UUID) error {
	p, err := s.processes.GetByID(ctx, processID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("process %s: %w", processID, domain.ErrProcessNotFound)
		}
		return fmt.Errorf("get process: %w", err)
	}
	if !p.IsOwnedBy(accountID) {
		return fmt.Errorf("process %s: %w", processID, domain.ErrUnauthorized)
	}
	return nil
}

// authorizeTimeline resolves Timeline → Process and checks ownership.
func (s *Service) authorizeTimeline(ctx context.Context, accountID, timelineID uuid.UUID) (*domain.Timeline, error) {
	tl, err := s.timelines.GetByID(ctx, timelineID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("timeline %s: %w", timelineID, domain.ErrTimelineNotFound)
		}
		return nil, fmt.Errorf("get timeline: %w", err)
	}
	if err := s.authorizeProcess(ctx, accountID, tl.ProcessID); err != nil {
		return nil, err
	}
	return tl, nil
}

// authorizeEvent resolves Event → Timeline → Process and checks ownership.
func (s *Service) authorizeEvent(ctx context.Context, accountID, eventID uuid.UUID) (*domain.Event, error) {
	e, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("event %s: %w", eventID, domain.ErrEventNotFound)
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if _, err := s.authorizeTimeline(ctx, accountID, e.TimelineID); err != nil {
		return nil, err
	}
	return e, nil
}
