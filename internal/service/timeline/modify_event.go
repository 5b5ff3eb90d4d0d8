package timeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

// ModifyEvent updates the title and/or description of an event owned by the
// caller. Nil or blank fields are left unchanged; the date is always
// refreshed to now.
func (s *Service) ModifyEvent(ctx context.Context, input ModifyEventInput) (*domain.Event, error) {
	accountID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.authorizeEvent(ctx, accountID, input.EventID); err != nil {
		return nil, err
	}

	updated, err := s.events.Update(ctx, input.EventID, domain.EventUpdateParams{
		Name:        trimOrNil(input.Title),
		Description: trimOrNil(input.Description),
		Date:        time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("event %s: %w", input.EventID, domain.ErrEventNotFound)
		}
		return nil, fmt.Errorf("update event: %w", err)
	}

	s.log.InfoContext(ctx, "event modified",
		slog.String("account_id", accountID.String()),
		slog.String("event_id", updated.ID.String()),
	)

	return updated, nil
}
