package timeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

// RemoveEvent deletes an event owned by the caller, decrements the timeline
// counter and renumbers the remaining events to 1..N by (order, id).
func (s *Service) RemoveEvent(ctx context.Context, eventID uuid.UUID) error {
	accountID, err := callerID(ctx)
	if err != nil {
		return err
	}

	e, err := s.authorizeEvent(ctx, accountID, eventID)
	if err != nil {
		return err
	}

	var remaining int
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.timelines.LockByID(txCtx, e.TimelineID); err != nil {
			return fmt.Errorf("lock timeline: %w", mapTimelineNotFound(err))
		}

		if err := s.events.Delete(txCtx, eventID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("event %s: %w", eventID, domain.ErrEventNotFound)
			}
			return fmt.Errorf("delete event: %w", err)
		}

		n, err := s.timelines.DecrementEventCount(txCtx, e.TimelineID)
		if err != nil {
			return fmt.Errorf("decrement event count: %w", err)
		}
		remaining = n

		if err := s.events.Renumber(txCtx, e.TimelineID); err != nil {
			return fmt.Errorf("renumber events: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "event removed",
		slog.String("account_id", accountID.String()),
		slog.String("timeline_id", e.TimelineID.String()),
		slog.String("event_id", eventID.String()),
		slog.Int("remaining", remaining),
	)

	return nil
}

func mapTimelineNotFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrTimelineNotFound) {
		return domain.ErrTimelineNotFound
	}
	return err
}
