package process

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

var _ timelineRepo = &timelineRepoMock{}

type timelineRepoMock struct {
	CreateFunc         func(ctx context.Context, processID uuid.UUID) (*domain.Timeline, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
	GetByProcessIDFunc func(ctx context.Context, processID uuid.UUID) (*domain.Timeline, error)

	calls struct {
		Create []struct {
			Ctx       context.Context
			ProcessID uuid.UUID
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByProcessID []struct {
			Ctx       context.Context
			ProcessID uuid.UUID
		}
	}
	lockCreate         sync.RWMutex
	lockDelete         sync.RWMutex
	lockGetByProcessID sync.RWMutex
}

func (mock *timelineRepoMock) Create(ctx context.Context, processID uuid.UUID) (*domain.Timeline, error) {
	if mock.CreateFunc == nil {
		panic("timelineRepoMock.CreateFunc: method is nil but timelineRepo.Create was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProcessID uuid.UUID
	}{
		Ctx:       ctx,
		ProcessID: processID,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, processID)
}

func (mock *timelineRepoMock) CreateCalls() []struct {
	Ctx       context.Context
	ProcessID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		ProcessID uuid.UUID
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *timelineRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("timelineRepoMock.DeleteFunc: method is nil but timelineRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *timelineRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *timelineRepoMock) GetByProcessID(ctx context.Context, processID uuid.UUID) (*domain.Timeline, error) {
	if mock.GetByProcessIDFunc == nil {
		panic("timelineRepoMock.GetByProcessIDFunc: method is nil but timelineRepo.GetByProcessID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProcessID uuid.UUID
	}{
		Ctx:       ctx,
		ProcessID: processID,
	}
	mock.lockGetByProcessID.Lock()
	mock.calls.GetByProcessID = append(mock.calls.GetByProcessID, callInfo)
	mock.lockGetByProcessID.Unlock()
	return mock.GetByProcessIDFunc(ctx, processID)
}

func (mock *timelineRepoMock) GetByProcessIDCalls() []struct {
	Ctx       context.Context
	ProcessID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		ProcessID uuid.UUID
	}
	mock.lockGetByProcessID.RLock()
	calls = mock.calls.GetByProcessID
	mock.lockGetByProcessID.RUnlock()
	return calls
}
