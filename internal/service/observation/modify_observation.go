package observation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

// ModifyObservation updates an observation on a process owned by the caller.
// Omitted and empty fields both keep the stored value.
func (s *Service) ModifyObservation(ctx context.Context, input ModifyObservationInput) (*domain.Observation, error) {
	accountID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.ownedObservation(ctx, accountID, input.ObservationID)
	if err != nil {
		return nil, err
	}

	title, content := nonEmpty(input.Title), nonEmpty(input.Content)
	if title == nil && content == nil {
		return &current.Observation, nil
	}

	updated, err := s.observations.Update(ctx, input.ObservationID, title, content)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("observation %s: %w", input.ObservationID, domain.ErrObservationNotFound)
		}
		return nil, fmt.Errorf("update observation: %w", err)
	}

	s.log.InfoContext(ctx, "observation modified",
		slog.String("account_id", accountID.String()),
		slog.String("observation_id", updated.ID.String()),
	)

	return updated, nil
}
