package observation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

// DeleteObservation removes an observation on a process owned by the caller.
func (s *Service) DeleteObservation(ctx context.Context, observationID uuid.UUID) error {
	accountID, err := callerID(ctx)
	if err != nil {
		return err
	}

	if _, err := s.ownedObservation(ctx, accountID, observationID); err != nil {
		return err
	}

	if err := s.observations.Delete(ctx, observationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("observation %s: %w", observationID, domain.ErrObservationNotFound)
		}
		return fmt.Errorf("delete observation: %w", err)
	}

	s.log.InfoContext(ctx, "observation deleted",
		slog.String("account_id", accountID.String()),
		slog.String("observation_id", observationID.String()),
	)

	return nil
}
