package process

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

var _ observationRepo = &observationRepoMock{}

type observationRepoMock struct {
	DeleteByProcessFunc func(ctx context.Context, processID uuid.UUID) (int64, error)
	ListByProcessFunc   func(ctx context.Context, processID uuid.UUID) ([]domain.Observation, error)

	calls struct {
		DeleteByProcess []struct {
			Ctx       context.Context
			ProcessID uuid.UUID
		}
		ListByProcess []struct {
			Ctx       context.Context
			ProcessID uuid.UUID
		}
	}
	lockDeleteByProcess sync.RWMutex
	lockListByProcess   sync.RWMutex
}

func (mock *observationRepoMock) DeleteByProcess(ctx context.Context, processID uuid.UUID) (int64, error) {
	if mock.DeleteByProcessFunc == nil {
		panic("observationRepoMock.DeleteByProcessFunc: method is nil but observationRepo.DeleteByProcess was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProcessID uuid.UUID
	}{
		Ctx:       ctx,
		ProcessID: processID,
	}
	mock.lockDeleteByProcess.Lock()
	mock.calls.DeleteByProcess = append(mock.calls.DeleteByProcess, callInfo)
	mock.lockDeleteByProcess.Unlock()
	return mock.DeleteByProcessFunc(ctx, processID)
}

func (mock *observationRepoMock) DeleteByProcessCalls() []struct {
	Ctx       context.Context
	ProcessID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		ProcessID uuid.UUID
	}
	mock.lockDeleteByProcess.RLock()
	calls = mock.calls.DeleteByProcess
	mock.lockDeleteByProcess.RUnlock()
	return calls
}

func (mock *observationRepoMock) ListByProcess(ctx context.Context, processID uuid.UUID) ([]domain.Observation, error) {
	if mock.ListByProcessFunc == nil {
		panic("observationRepoMock.ListByProcessFunc: method is nil but observationRepo.ListByProcess was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProcessID uuid.UUID
	}{
		Ctx:       ctx,
		ProcessID: processID,
	}
	mock.lockListByProcess.Lock()
	mock.calls.ListByProcess = append(mock.calls.ListByProcess, callInfo)
	mock.lockListByProcess.Unlock()
	return mock.ListByProcessFunc(ctx, processID)
}

func (mock *observationRepoMock) ListByProcessCalls() []struct {
	Ctx       context.Context
	ProcessID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		ProcessID uuid.UUID
	}
	mock.lockListByProcess.RLock()
	calls = mock.calls.ListByProcess
	mock.lockListByProcess.RUnlock()
	return calls
}
