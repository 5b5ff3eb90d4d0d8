package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
	"github.com/MATEOCAIZA/ProyectoFInal/internal/service/observation"
)

var _ observationService = &observationServiceMock{}

type observationServiceMock struct {
	CreateObservationFunc func(ctx context.Context, input observation.CreateObservationInput) (*domain.Observation, error)
	DeleteObservationFunc func(ctx context.Context, observationID uuid.UUID) error
	ListByProcessFunc     func(ctx context.Context, processID uuid.UUID) ([]domain.Observation, error)
	ModifyObservationFunc func(ctx context.Context, input observation.ModifyObservationInput) (*domain.Observation, error)

	calls struct {
		CreateObservation []struct {
			Ctx   context.Context
			Input observation.CreateObservationInput
		}
		DeleteObservation []struct {
			Ctx           context.Context
			ObservationID uuid.UUID
		}
		ListByProcess []struct {
			Ctx       context.Context
			ProcessID uuid.UUID
		}
		ModifyObservation []struct {
			Ctx   context.Context
			Input observation.ModifyObservationInput
		}
	}
	lockCreateObservation sync.RWMutex
	lockDeleteObservation sync.RWMutex
	lockListByProcess     sync.RWMutex
	lockModifyObservation sync.RWMutex
}

func (mock *observationServiceMock) CreateObservation(ctx context.Context, input observation.CreateObservationInput) (*domain.Observation, error) {
	if mock.CreateObservationFunc == nil {
		panic("observationServiceMock.CreateObservationFunc: method is nil but observationService.CreateObservation was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input observation.CreateObservationInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateObservation.Lock()
	mock.calls.CreateObservation = append(mock.calls.CreateObservation, callInfo)
	mock.lockCreateObservation.Unlock()
	return mock.CreateObservationFunc(ctx, input)
}

func (mock *observationServiceMock) CreateObservationCalls() []struct {
	Ctx   context.Context
	Input observation.CreateObservationInput
} {
	var calls []struct {
		Ctx   context.Context
		Input observation.CreateObservationInput
	}
	mock.lockCreateObservation.RLock()
	calls = mock.calls.CreateObservation
	mock.lockCreateObservation.RUnlock()
	return calls
}

func (mock *observationServiceMock) DeleteObservation(ctx context.Context, observationID uuid.UUID) error {
	if mock.DeleteObservationFunc == nil {
		panic("observationServiceMock.DeleteObservationFunc: method is nil but observationService.DeleteObservation was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ObservationID uuid.UUID
	}{
		Ctx:           ctx,
		ObservationID: observationID,
	}
	mock.lockDeleteObservation.Lock()
	mock.calls.DeleteObservation = append(mock.calls.DeleteObservation, callInfo)
	mock.lockDeleteObservation.Unlock()
	return mock.DeleteObservationFunc(ctx, observationID)
}

func (mock *observationServiceMock) DeleteObservationCalls() []struct {
	Ctx           context.Context
	ObservationID uuid.UUID
} {
	var calls []struct {
		Ctx           context.Context
		ObservationID uuid.UUID
	}
	mock.lockDeleteObservation.RLock()
	calls = mock.calls.DeleteObservation
	mock.lockDeleteObservation.RUnlock()
	return calls
}

func (mock *observationServiceMock) ListByProcess(ctx context.Context, processID uuid.UUID) ([]domain.Observation, error) {
	if mock.ListByProcessFunc == nil {
		panic("observationServiceMock.ListByProcessFunc: method is nil but observationService.ListByProcess was just called")
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

func (mock *observationServiceMock) ListByProcessCalls() []struct {
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

func (mock *observationServiceMock) ModifyObservation(ctx context.Context, input observation.ModifyObservationInput) (*domain.Observation, error) {
	if mock.ModifyObservationFunc == nil {
		panic("observationServiceMock.ModifyObservationFunc: method is nil but observationService.ModifyObservation was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input observation.ModifyObservationInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockModifyObservation.Lock()
	mock.calls.ModifyObservation = append(mock.calls.ModifyObservation, callInfo)
	mock.lockModifyObservation.Unlock()
	return mock.ModifyObservationFunc(ctx, input)
}

func (mock *observationServiceMock) ModifyObservationCalls() []struct {
	Ctx   context.Context
	Input observation.ModifyObservationInput
} {
	var calls []struct {
		Ctx   context.Context
		Input observation.ModifyObservationInput
	}
	mock.lockModifyObservation.RLock()
	calls = mock.calls.ModifyObservation
	mock.lockModifyObservation.RUnlock()
	return calls
}
