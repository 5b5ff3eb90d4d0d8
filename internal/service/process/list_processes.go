package process

import (
	"context"
	"fmt"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

// ListMyProcesses returns the caller's processes, most recently updated first.
func (s *Service) ListMyProcesses(ctx context.Context) ([]domain.Process, error) {
	accountID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.processes.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list processes by account: %w", err)
	}
	if list == nil {
		list = []domain.Process{}
	}
	return list, nil
}

// ListProcesses returns processes of every account matching the filters.
// No authentication is required.
func (s *Service) ListProcesses(ctx context.Context, input ListInput) ([]domain.Process, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.DefaultPageSize
	}
	if s.cfg.MaxPageSize > 0 && limit > s.cfg.MaxPageSize {
		limit = s.cfg.MaxPageSize
	}

	list, err := s.processes.ListAll(ctx, domain.ProcessFilter{
		Status: input.Status,
		Name:   input.Name,
		From:   input.From,
		To:     input.To,
		Limit:  limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}
	if list == nil {
		list = []domain.Process{}
	}
	return list, nil
}
