package observation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

// CreateObservation attaches an observation to a process owned by the caller.
func (s *Service) CreateObservation(ctx context.Context, input CreateObservationInput) (*domain.Observation, error) {
	accountID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.processes.GetByID(ctx, input.ProcessID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("process %s: %w", input.ProcessID, domain.ErrProcessNotFound)
		}
		return nil, fmt.Errorf("get process: %w", err)
	}
	if !p.IsOwnedBy(accountID) {
		return nil, fmt.Errorf("process %s: %w", input.ProcessID, domain.ErrUnauthorized)
	}

	created, err := s.observations.Create(ctx, &domain.Observation{
		Title:     strings.TrimSpace(input.Title),
		Content:   input.Content,
		ProcessID: input.ProcessID,
	})
	if err != nil {
		return nil, fmt.Errorf("create observation: %w", err)
	}

	s.log.InfoContext(ctx, "observation created",
		slog.String("account_id", accountID.String()),
		slog.String("process_id", input.ProcessID.String()),
		slog.String("observation_id", created.ID.String()),
	)

	return created, nil
}
