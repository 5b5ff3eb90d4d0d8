package process

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

// UpdateProcess applies a partial update to a process owned by the caller.
// last_update is set to input.LastUpdate, or now when absent.
func (s *Service) UpdateProcess(ctx context.Context, input UpdateProcessInput) (*domain.Process, error) {
	accountID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	input = input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ownedProcess(ctx, accountID, input.ProcessID); err != nil {
		return nil, err
	}

	updated, err := s.processes.Update(ctx, input.ProcessID, input.params())
	if err != nil {
		return nil, fmt.Errorf("update process: %w", mapNotFound(err))
	}

	s.log.InfoContext(ctx, "process updated",
		slog.String("account_id", accountID.String()),
		slog.String("process_id", updated.ID.String()),
	)

	return updated, nil
}
