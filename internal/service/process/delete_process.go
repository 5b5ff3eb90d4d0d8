package process

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

// DeleteProcess removes a process owned by the caller together with its
// observations, events and timeline, in one transaction.
func (s *Service) DeleteProcess(ctx context.Context, processID uuid.UUID) error {
	accountID, err := callerID(ctx)
	if err != nil {
		return err
	}

	if _, err := s.ownedProcess(ctx, accountID, processID); err != nil {
		return err
	}

	var removedObservations, removedEvents int64
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		removedObservations, err = s.observations.DeleteByProcess(txCtx, processID)
		if err != nil {
			return fmt.Errorf("delete observations: %w", err)
		}

		tl, err := s.timelines.GetByProcessID(txCtx, processID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			// timeline already removed
		case err != nil:
			return fmt.Errorf("get timeline: %w", err)
		default:
			removedEvents, err = s.events.DeleteByTimeline(txCtx, tl.ID)
			if err != nil {
				return fmt.Errorf("delete events: %w", err)
			}
			if err := s.timelines.Delete(txCtx, tl.ID); err != nil {
				return fmt.Errorf("delete timeline: %w", err)
			}
		}

		if err := s.processes.Delete(txCtx, processID); err != nil {
			return fmt.Errorf("delete process: %w", mapNotFound(err))
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "process deleted",
		slog.String("account_id", accountID.String()),
		slog.String("process_id", processID.String()),
		slog.Int64("events_removed", removedEvents),
		slog.Int64("observations_removed", removedObservations),
	)

	return nil
}

// mapNotFound narrows a generic not-found from the repository to the
// process-specific sentinel. Other errors are returned unchanged.
func mapNotFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrProcessNotFound) {
		return domain.ErrProcessNotFound
	}
	return err
}
