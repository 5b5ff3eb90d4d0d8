package process

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	DeleteByTimelineFunc func(ctx context.Context, timelineID uuid.UUID) (int64, error)
	ListByTimelineFunc   func(ctx context.Context, timelineID uuid.UUID) ([]domain.Event, error)

	calls struct {
		DeleteByTimeline []struct {
			Ctx        context.Context
			TimelineID uuid.UUID
		}
		ListByTimeline []struct {
			Ctx        context.Context
			TimelineID uuid.UUID
		}
	}
	lockDeleteByTimeline sync.RWMutex
	lockListByTimeline   sync.RWMutex
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
