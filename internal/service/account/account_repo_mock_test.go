package account

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

var _ accountRepo = &accountRepoMock{}

type accountRepoMock struct {
	CreateFunc        func(ctx context.Context, acc *domain.Account) (*domain.Account, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*domain.Account, error)
	UpdateFunc        func(ctx context.Context, id uuid.UUID, params domain.AccountUpdateParams) (*domain.Account, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Acc *domain.Account
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByUsername []struct {
			Ctx      context.Context
			Username string
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.AccountUpdateParams
		}
	}
	lockCreate        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockGetByUsername sync.RWMutex
	lockUpdate        sync.RWMutex
}

func (mock *accountRepoMock) Create(ctx context.Context, acc *domain.Account) (*domain.Account, error) {
	if mock.CreateFunc == nil {
		panic("accountRepoMock.CreateFunc: method is nil but accountRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Acc *domain.Account
	}{
		Ctx: ctx,
		Acc: acc,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, acc)
}

func (mock *accountRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Acc *domain.Account
} {
	var calls []struct {
		Ctx context.Context
		Acc *domain.Account
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *accountRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if mock.GetByIDFunc == nil {
		panic("accountRepoMock.GetByIDFunc: method is nil but accountRepo.GetByID was just called")
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

func (mock *accountRepoMock) GetByIDCalls() []struct {
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

func (mock *accountRepoMock) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	if mock.GetByUsernameFunc == nil {
		panic("accountRepoMock.GetByUsernameFunc: method is nil but accountRepo.GetByUsername was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{
		Ctx:      ctx,
		Username: username,
	}
	mock.lockGetByUsername.Lock()
	mock.calls.GetByUsername = append(mock.calls.GetByUsername, callInfo)
	mock.lockGetByUsername.Unlock()
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *accountRepoMock) GetByUsernameCalls() []struct {
	Ctx      context.Context
	Username string
} {
	var calls []struct {
		Ctx      context.Context
		Username string
	}
	mock.lockGetByUsername.RLock()
	calls = mock.calls.GetByUsername
	mock.lockGetByUsername.RUnlock()
	return calls
}

func (mock *accountRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.AccountUpdateParams) (*domain.Account, error) {
	if mock.UpdateFunc == nil {
		panic("accountRepoMock.UpdateFunc: method is nil but accountRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.AccountUpdateParams
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

func (mock *accountRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.AccountUpdateParams
} {
	var calls []struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.AccountUpdateParams
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
