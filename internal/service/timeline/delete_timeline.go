package timeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// DeleteTimeline removes a timeline owned by the caller together with all of
// its events.
func (s *Service) DeleteTimeline(ctx context.Context, timelineID uuid.UUID) error {
	accountID, err := callerID(ctx)
	if err != nil {
		return err
	}

	tl, err := s.authorizeTimeline(ctx, accountID, timelineID)
	if err != nil {
		return err
	}

	var removed int64
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.timelines.LockByID(txCtx, timelineID); err != nil {
			return fmt.Errorf("lock timeline: %w", mapTimelineNotFound(err))
		}

		n, err := s.events.DeleteByTimeline(txCtx, timelineID)
		if err != nil {
			return fmt.Errorf("delete events: %w", err)
		}
		removed = n

		if err := s.timelines.Delete(txCtx, timelineID); err != nil {
			return fmt.Errorf("delete timeline: %w", mapTimelineNotFound(err))
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "timeline deleted",
		slog.String("account_id", accountID.String()),
		slog.String("process_id", tl.ProcessID.String()),
		slog.String("timeline_id", timelineID.String()),
		slog.Int64("events_removed", removed),
	)

	return nil
}
