package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
	"github.com/MATEOCAIZA/ProyectoFInal/internal/service/process"
)

var _ processService = &processServiceMock{}

type processServiceMock struct {
	CreateProcessFunc   func(ctx context.Context, input process.CreateProcessInput) (*domain.ProcessAggregate, error)
	DeleteProcessFunc   func(ctx context.Context, processID uuid.UUID) error
	GetProcessFunc      func(ctx context.Context, processID uuid.UUID) (*domain.ProcessAggregate, error)
	ListMyProcessesFunc func(ctx context.Context) ([]domain.Process, error)
	ListProcessesFunc   func(ctx context.Context, input process.ListInput) ([]domain.Process, error)
	UpdateProcessFunc   func(ctx context.Context, input process.UpdateProcessInput) (*domain.Process, error)

	calls struct {
		CreateProcess []struct {
			Ctx   context.Context
			Input process.CreateProcessInput
		}
		DeleteProcess []struct {
			Ctx       context.Context
			ProcessID uuid.UUID
		}
		GetProcess []struct {
			Ctx       context.Context
			ProcessID uuid.UUID
		}
		ListMyProcesses []struct {
			Ctx context.Context
		}
		ListProcesses []struct {
			Ctx   context.Context
			Input process.ListInput
		}
		UpdateProcess []struct {
			Ctx   context.Context
			Input process.UpdateProcessInput
		}
	}
	lockCreateProcess   sync.RWMutex
	lockDeleteProcess   sync.RWMutex
	lockGetProcess      sync.RWMutex
	lockListMyProcesses sync.RWMutex
	lockListProcesses   sync.RWMutex
	lockUpdateProcess   sync.RWMutex
}

func (mock *processServiceMock) CreateProcess(ctx context.Context, input process.CreateProcessInput) (*domain.ProcessAggregate, error) {
	if mock.CreateProcessFunc == nil {
		panic("processServiceMock.CreateProcessFunc: method is nil but processService.CreateProcess was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input process.CreateProcessInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateProcess.Lock()
	mock.calls.CreateProcess = append(mock.calls.CreateProcess, callInfo)
	mock.lockCreateProcess.Unlock()
	return mock.CreateProcessFunc(ctx, input)
}

func (mock *processServiceMock) CreateProcessCalls() []struct {
	Ctx   context.Context
	Input process.CreateProcessInput
} {
	var calls []struct {
		Ctx   context.Context
		Input process.CreateProcessInput
	}
	mock.lockCreateProcess.RLock()
	calls = mock.calls.CreateProcess
	mock.lockCreateProcess.RUnlock()
	return calls
}

func (mock *processServiceMock) DeleteProcess(ctx context.Context, processID uuid.UUID) error {
	if mock.DeleteProcessFunc == nil {
		panic("processServiceMock.DeleteProcessFunc: method is nil but processService.DeleteProcess was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProcessID uuid.UUID
	}{
		Ctx:       ctx,
		ProcessID: processID,
	}
	mock.lockDeleteProcess.Lock()
	mock.calls.DeleteProcess = append(mock.calls.DeleteProcess, callInfo)
	mock.lockDeleteProcess.Unlock()
	return mock.DeleteProcessFunc(ctx, processID)
}

func (mock *processServiceMock) DeleteProcessCalls() []struct {
	Ctx       context.Context
	ProcessID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		ProcessID uuid.UUID
	}
	mock.lockDeleteProcess.RLock()
	calls = mock.calls.DeleteProcess
	mock.lockDeleteProcess.RUnlock()
	return calls
}

func (mock *processServiceMock) GetProcess(ctx context.Context, processID uuid.UUID) (*domain.ProcessAggregate, error) {
	if mock.GetProcessFunc == nil {
		panic("processServiceMock.GetProcessFunc: method is nil but processService.GetProcess was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProcessID uuid.UUID
	}{
		Ctx:       ctx,
		ProcessID: processID,
	}
	mock.lockGetProcess.Lock()
	mock.calls.GetProcess = append(mock.calls.GetProcess, callInfo)
	mock.lockGetProcess.Unlock()
	return mock.GetProcessFunc(ctx, processID)
}

func (mock *processServiceMock) GetProcessCalls() []struct {
	Ctx       context.Context
	ProcessID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		ProcessID uuid.UUID
	}
	mock.lockGetProcess.RLock()
	calls = mock.calls.GetProcess
	mock.lockGetProcess.RUnlock()
	return calls
}

func (mock *processServiceMock) ListMyProcesses(ctx context.Context) ([]domain.Process, error) {
	if mock.ListMyProcessesFunc == nil {
		panic("processServiceMock.ListMyProcessesFunc: method is nil but processService.ListMyProcesses was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListMyProcesses.Lock()
	mock.calls.ListMyProcesses = append(mock.calls.ListMyProcesses, callInfo)
	mock.lockListMyProcesses.Unlock()
	return mock.ListMyProcessesFunc(ctx)
}

func (mock *processServiceMock) ListMyProcessesCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListMyProcesses.RLock()
	calls = mock.calls.ListMyProcesses
	mock.lockListMyProcesses.RUnlock()
	return calls
}

func (mock *processServiceMock) ListProcesses(ctx context.Context, input process.ListInput) ([]domain.Process, error) {
	if mock.ListProcessesFunc == nil {
		panic("processServiceMock.ListProcessesFunc: method is nil but processService.ListProcesses was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input process.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListProcesses.Lock()
	mock.calls.ListProcesses = append(mock.calls.ListProcesses, callInfo)
	mock.lockListProcesses.Unlock()
	return mock.ListProcessesFunc(ctx, input)
}

func (mock *processServiceMock) ListProcessesCalls() []struct {
	Ctx   context.Context
	Input process.ListInput
} {
	var calls []struct {
		Ctx   context.Context
		Input process.ListInput
	}
	mock.lockListProcesses.RLock()
	calls = mock.calls.ListProcesses
	mock.lockListProcesses.RUnlock()
	return calls
}

func (mock *processServiceMock) UpdateProcess(ctx context.Context, input process.UpdateProcessInput) (*domain.Process, error) {
	if mock.UpdateProcessFunc == nil {
		panic("processServiceMock.UpdateProcessFunc: method is nil but processService.UpdateProcess was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input process.UpdateProcessInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateProcess.Lock()
	mock.calls.UpdateProcess = append(mock.calls.UpdateProcess, callInfo)
	mock.lockUpdateProcess.Unlock()
	return mock.UpdateProcessFunc(ctx, input)
}

func (mock *processServiceMock) UpdateProcessCalls() []struct {
	Ctx   context.Context
	Input process.UpdateProcessInput
} {
	var calls []struct {
		Ctx   context.Context
		Input process.UpdateProcessInput
	}
	mock.lockUpdateProcess.RLock()
	calls = mock.calls.UpdateProcess
	mock.lockUpdateProcess.RUnlock()
	return calls
}
