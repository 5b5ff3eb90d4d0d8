package observation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

// ListByProcess returns the observations of a process, oldest first.
// No authentication is required; an unknown process yields an empty list.
func (s *Service) ListByProcess(ctx context.Context, processID uuid.UUID) ([]domain.Observation, error) {
	list, err := s.observations.ListByProcess(ctx, processID)
	if err != nil {
		return nil, fmt.Errorf("list observations: %w", err)
	}
	if list == nil {
		list = []domain.Observation{}
	}
	return list, nil
}
