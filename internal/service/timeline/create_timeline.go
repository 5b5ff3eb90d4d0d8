package timeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

// CreateTimeline creates the timeline of a process owned by the caller.
// Processes get a timeline on creation, so this only succeeds after the
// previous one was deleted. A second timeline yields ErrDuplicateTimeline.
func (s *Service) CreateTimeline(ctx context.Context, processID uuid.UUID) (*domain.Timeline, error) {
	accountID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeProcess(ctx, accountID, processID); err != nil {
		return nil, err
	}

	_, err = s.timelines.GetByProcessID(ctx, processID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("process %s: %w", processID, domain.ErrDuplicateTimeline)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("get timeline: %w", err)
	}

	tl, err := s.timelines.Create(ctx, processID)
	if err != nil {
		// Lost a race with a concurrent create; the unique constraint decided.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("process %s: %w", processID, domain.ErrDuplicateTimeline)
		}
		return nil, fmt.Errorf("create timeline: %w", err)
	}

	s.log.InfoContext(ctx, "timeline created",
		slog.String("account_id", accountID.String()),
		slog.String("process_id", processID.String()),
		slog.String("timeline_id", tl.ID.String()),
	)

	return tl, nil
}
