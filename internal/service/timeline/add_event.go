package timeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

// AddEvent appends an event to a timeline owned by the caller. The event gets
// order = number_events + 1 and date = now; counter bump and insert share one
// transaction.
func (s *Service) AddEvent(ctx context.Context, input AddEventInput) (*domain.Event, error) {
	accountID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.authorizeTimeline(ctx, accountID, input.TimelineID); err != nil {
		return nil, err
	}

	var created *domain.Event
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// The counter update holds the timeline row lock until commit, so
		// concurrent appends are serialized and get distinct orders.
		order, err := s.timelines.IncrementEventCount(txCtx, input.TimelineID)
		if err != nil {
			return fmt.Errorf("increment event count: %w", mapTimelineNotFound(err))
		}

		created, err = s.events.Create(txCtx, &domain.Event{
			Name:        strings.TrimSpace(input.Title),
			Description: strings.TrimSpace(input.Description),
			Date:        time.Now().UTC(),
			Order:       order,
			TimelineID:  input.TimelineID,
		})
		if err != nil {
			return fmt.Errorf("create event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "event added",
		slog.String("account_id", accountID.String()),
		slog.String("timeline_id", input.TimelineID.String()),
		slog.String("event_id", created.ID.String()),
		slog.Int("order", created.Order),
	)

	return created, nil
}
