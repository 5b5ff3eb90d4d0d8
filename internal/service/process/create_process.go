package process

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

// CreateProcess creates a process owned by the caller together with its
// empty timeline, in one transaction.
func (s *Service) CreateProcess(ctx context.Context, input CreateProcessInput) (*domain.ProcessAggregate, error) {
	accountID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	input = input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var result *domain.ProcessAggregate
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.processes.Create(txCtx, &domain.Process{
			Title:      input.Title,
			Type:       input.Type,
			Offense:    input.Offense,
			LastUpdate: time.Now().UTC(),
			Denounced:  input.Denounced,
			Denouncer:  input.Denouncer,
			Province:   input.Province,
			Carton:     input.Carton,
			AccountID:  accountID,
		})
		if err != nil {
			return fmt.Errorf("create process: %w", err)
		}

		tl, err := s.timelines.Create(txCtx, p.ID)
		if err != nil {
			return fmt.Errorf("create timeline: %w", err)
		}

		result = &domain.ProcessAggregate{
			Process:      *p,
			Timeline:     tl,
			Events:       []domain.Event{},
			Observations: []domain.Observation{},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "process created",
		slog.String("account_id", accountID.String()),
		slog.String("process_id", result.ID.String()),
		slog.String("timeline_id", result.Timeline.ID.String()),
	)

	return result, nil
}
