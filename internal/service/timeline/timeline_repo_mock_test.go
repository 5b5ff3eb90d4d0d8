package timeline

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

var _ timelineRepo = &timelineRepoMock{}

type timelineRepoMock struct {
	CreateFunc              func(ctx context.Context, processID uuid.UUID) (*domain.Timeline, error)
	DecrementEventCountFunc func(ctx context.Context, id uuid.UUID) (int, error)
	DeleteFunc              func(ctx context.Context, id uuid.UUID) error
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Timeline, error)
	GetByProcessIDFunc      func(ctx context.Context, processID uuid.UUID) (*domain.Timeline, error)
	IncrementEventCountFunc func(ctx context.Context, id uuid.UUID) (int, error)
	LockByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.Timeline, error)

	calls struct {
		Create []struct {
			Ctx       context.Context
			ProcessID uuid.UUID
		}
		DecrementEventCount []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByProcessID []struct {
			Ctx       context.Context
			ProcessID uuid.UUID
		}
		IncrementEventCount []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		LockByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate              sync.RWMutex
	lockDecrementEventCount sync.RWMutex
	lockDelete              sync.RWMutex
	lockGetByID             sync.RWMutex
	lockGetByProcessID      sync.RWMutex
	lockIncrementEventCount sync.RWMutex
	lockLockByID            sync.RWMutex
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

func (mock *timelineRepoMock) DecrementEventCount(ctx context.Context, id uuid.UUID) (int, error) {
	if mock.DecrementEventCountFunc == nil {
		panic("timelineRepoMock.DecrementEventCountFunc: method is nil but timelineRepo.DecrementEventCount was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDecrementEventCount.Lock()
	mock.calls.DecrementEventCount = append(mock.calls.DecrementEventCount, callInfo)
	mock.lockDecrementEventCount.Unlock()
	return mock.DecrementEventCountFunc(ctx, id)
}

func (mock *timelineRepoMock) DecrementEventCountCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockDecrementEventCount.RLock()
	calls = mock.calls.DecrementEventCount
	mock.lockDecrementEventCount.RUnlock()
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

func (mock *timelineRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Timeline, error) {
	if mock.GetByIDFunc == nil {
		panic("timelineRepoMock.GetByIDFunc: method is nil but timelineRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *timelineRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
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

func (mock *timelineRepoMock) IncrementEventCount(ctx context.Context, id uuid.UUID) (int, error) {
	if mock.IncrementEventCountFunc == nil {
		panic("timelineRepoMock.IncrementEventCountFunc: method is nil but timelineRepo.IncrementEventCount was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockIncrementEventCount.Lock()
	mock.calls.IncrementEventCount = append(mock.calls.IncrementEventCount, callInfo)
	mock.lockIncrementEventCount.Unlock()
	return mock.IncrementEventCountFunc(ctx, id)
}

func (mock *timelineRepoMock) IncrementEventCountCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockIncrementEventCount.RLock()
	calls = mock.calls.IncrementEventCount
	mock.lockIncrementEventCount.RUnlock()
	return calls
}

func (mock *timelineRepoMock) LockByID(ctx context.Context, id uuid.UUID) (*domain.Timeline, error) {
	if mock.LockByIDFunc == nil {
		panic("timelineRepoMock.LockByIDFunc: method is nil but timelineRepo.LockByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockLockByID.Lock()
	mock.calls.LockByID = append(mock.calls.LockByID, callInfo)
	mock.lockLockByID.Unlock()
	return mock.LockByIDFunc(ctx, id)
}

func (mock *timelineRepoMock) LockByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockLockByID.RLock()
	calls = mock.calls.LockByID
	mock.lockLockByID.RUnlock()
	return calls
}
