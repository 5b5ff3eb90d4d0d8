package timeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

// GetByProcessID returns the timeline of a process. No authentication or
// ownership check is performed.
func (s *Service) GetByProcessID(ctx context.Context, processID uuid.UUID) (*domain.Timeline, error) {
	tl, err := s.timelines.GetByProcessID(ctx, processID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("process %s: %w", processID, domain.ErrTimelineNotFound)
		}
		return nil, fmt.Errorf("get timeline: %w", err)
	}
	return tl, nil
}

// ListEvents returns the events of a timeline by ascending order. No
// authentication or ownership check is performed.
func (s *Service) ListEvents(ctx context.Context, timelineID uuid.UUID) ([]domain.Event, error) {
	if _, err := s.timelines.GetByID(ctx, timelineID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("timeline %s: %w", timelineID, domain.ErrTimelineNotFound)
		}
		return nil, fmt.Errorf("get timeline: %w", err)
	}

	events, err := s.events.ListByTimeline(ctx, timelineID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []domain.Event{}
	}
	return events, nil
}
