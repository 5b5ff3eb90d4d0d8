package timeline

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	CreateFunc           func(ctx context.Context, e *domain.Event) (*domain.Event, error)
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	DeleteByTimelineFunc func(ctx context.Context, timelineID uuid.UUID) (int64, error)
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	ListByTimelineFunc   func(ctx context.Context, timelineID uuid.UUID) ([]domain.Event, error)
	RenumberFunc         func(ctx context.Context, timelineID uuid.UUID) error
	UpdateFunc           func(ctx context.Context, id uuid.UUID, params domain.EventUpdateParams) (*domain.Event, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.Event
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		DeleteByTimeline []struct {
			Ctx        context.Context
			TimelineID uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByTimeline []struct {
			Ctx        context.Context
			TimelineID uuid.UUID
		}
		Renumber []struct {
			Ctx        context.Context
			TimelineID uuid.UUID
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.EventUpdateParams
		}
	}
	lockCreate           sync.RWMutex
	lockDelete           sync.RWMutex
	lockDeleteByTimeline sync.RWMutex
	lockGetByID          sync.RWMutex
	lockListByTimeline   sync.RWMutex
	lockRenumber         sync.RWMutex
	lockUpdate           sync.RWMutex
}

func (mock *eventRepoMock) Create(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	if mock.CreateFunc == nil {
		panic("eventRepoMock.CreateFunc: method is nil but eventRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.Event
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *eventRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.Event
} {
	var calls []struct {
		Ctx context.Context
		E   *domain.Event
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *eventRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("eventRepoMock.DeleteFunc: method is nil but eventRepo.Delete was just called")
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

func (mock *eventRepoMock) DeleteCalls() []struct {
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

func (mock *eventRepoMock) DeleteByTimeline(ctx context.Context, timelineID uuid.UUID) (int64, error) {
	if mock.DeleteByTimelineFunc == nil {
		panic("eventRepoMock.DeleteByTimelineFunc: method is nil but eventRepo.DeleteByTimeline was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		TimelineID uuid.UUID
	}{
		Ctx:        ctx,
		TimelineID: timelineID,
	}
	mock.lockDeleteByTimeline.Lock()
	mock.calls.DeleteByTimeline = append(mock.calls.DeleteByTimeline, callInfo)
	mock.lockDeleteByTimeline.Unlock()
	return mock.DeleteByTimelineFunc(ctx, timelineID)
}

func (mock *eventRepoMock) DeleteByTimelineCalls() []struct {
	Ctx        context.Context
	TimelineID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		TimelineID uuid.UUID
	}
	mock.lockDeleteByTimeline.RLock()
	calls = mock.calls.DeleteByTimeline
	mock.lockDeleteByTimeline.RUnlock()
	return calls
}

func (mock *eventRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	if mock.GetByIDFunc == nil {
		panic("eventRepoMock.GetByIDFunc: method is nil but eventRepo.GetByID was just called")
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

func (mock *eventRepoMock) GetByIDCalls() []struct {
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

func (mock *eventRepoMock) ListByTimeline(ctx context.Context, timelineID uuid.UUID) ([]domain.Event, error) {
	if mock.ListByTimelineFunc == nil {
		panic("eventRepoMock.ListByTimelineFunc: method is nil but eventRepo.ListByTimeline was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		TimelineID uuid.UUID
	}{
		Ctx:        ctx,
		TimelineID: timelineID,
	}
	mock.lockListByTimeline.Lock()
	mock.calls.ListByTimeline = append(mock.calls.ListByTimeline, callInfo)
	mock.lockListByTimeline.Unlock()
	return mock.ListByTimelineFunc(ctx, timelineID)
}

func (mock *eventRepoMock) ListByTimelineCalls() []struct {
	Ctx        context.Context
	TimelineID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		TimelineID uuid.UUID
	}
	mock.lockListByTimeline.RLock()
	calls = mock.calls.ListByTimeline
	mock.lockListByTimeline.RUnlock()
	return calls
}

func (mock *eventRepoMock) Renumber(ctx context.Context, timelineID uuid.UUID) error {
	if mock.RenumberFunc == nil {
		panic("eventRepoMock.RenumberFunc: method is nil but eventRepo.Renumber was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		TimelineID uuid.UUID
	}{
		Ctx:        ctx,
		TimelineID: timelineID,
	}
	mock.lockRenumber.Lock()
	mock.calls.Renumber = append(mock.calls.Renumber, callInfo)
	mock.lockRenumber.Unlock()
	return mock.RenumberFunc(ctx, timelineID)
}

func (mock *eventRepoMock) RenumberCalls() []struct {
	Ctx        context.Context
	TimelineID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		TimelineID uuid.UUID
	}
	mock.lockRenumber.RLock()
	calls = mock.calls.Renumber
	mock.lockRenumber.RUnlock()
	return calls
}

func (mock *eventRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.EventUpdateParams) (*domain.Event, error) {
	if mock.UpdateFunc == nil {
		panic("eventRepoMock.UpdateFunc: method is nil but eventRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.EventUpdateParams
	}{
		Ctx:    ctx,
		ID:     id,
		Params: params,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *eventRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.EventUpdateParams
} {
	var calls []struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.EventUpdateParams
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
