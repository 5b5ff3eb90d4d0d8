package process

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
	"github.com/MATEOCAIZA/ProyectoFInal/pkg/ctxutil"
)

// callerID returns the authenticated account or ErrUnauthenticated.
func callerID(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthenticated
	}
	return id, nil
}

// ownedProcess loads a process and checks that accountID owns it.
func (s *Service) ownedProcess(ctx context.Context, accountID, processID uuid.UUID) (*domain.Process, error) {
	p, err := s.processes.GetByID(ctx, processID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("process %s: %w", processID, domain.ErrProcessNotFound)
		}
		return nil, fmt.Errorf("get process: %w", err)
	}
	if !p.IsOwnedBy(accountID) {
		return nil, fmt.Errorf("process %s: %w", processID, domain.ErrUnauthorized)
	}
	return p, nil
}
