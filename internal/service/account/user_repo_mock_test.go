package account

import (
	"context"
	"sync"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc         func(ctx context.Context, a *domain.Account) (*domain.Account, error)
	DeleteFunc         func(ctx context.Context, id int64) error
	ExistsByEmailFunc  func(ctx context.Context, email string) (bool, error)
	GetByEmailFunc     func(ctx context.Context, email string) (*domain.Account, error)
	GetByIDFunc        func(ctx context.Context, id int64) (*domain.Account, error)
	UpdateNicknameFunc func(ctx context.Context, id int64, nickname string) error

	calls struct {
		Create []struct {
			Ctx context.Context
			A   *domain.Account
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		ExistsByEmail []struct {
			Ctx   context.Context
			Email string
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		UpdateNickname []struct {
			Ctx      context.Context
			ID       int64
			Nickname string
		}
	}
	lockCreate         sync.RWMutex
	lockDelete         sync.RWMutex
	lockExistsByEmail  sync.RWMutex
	lockGetByEmail     sync.RWMutex
	lockGetByID        sync.RWMutex
	lockUpdateNickname sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Account
	}{
		Ctx: ctx,
		A:   a,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.Account
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("userRepoMock.DeleteFunc: method is nil but userRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *userRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *userRepoMock) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if mock.ExistsByEmailFunc == nil {
		panic("userRepoMock.ExistsByEmailFunc: method is nil but userRepo.ExistsByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockExistsByEmail.Lock()
	mock.calls.ExistsByEmail = append(mock.calls.ExistsByEmail, callInfo)
	mock.lockExistsByEmail.Unlock()
	return mock.ExistsByEmailFunc(ctx, email)
}

func (mock *userRepoMock) ExistsByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockExistsByEmail.RLock()
	calls := mock.calls.ExistsByEmail
	mock.lockExistsByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateNickname(ctx context.Context, id int64, nickname string) error {
	if mock.UpdateNicknameFunc == nil {
		panic("userRepoMock.UpdateNicknameFunc: method is nil but userRepo.UpdateNickname was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       int64
		Nickname string
	}{
		Ctx:      ctx,
		ID:       id,
		Nickname: nickname,
	}
	mock.lockUpdateNickname.Lock()
	mock.calls.UpdateNickname = append(mock.calls.UpdateNickname, callInfo)
	mock.lockUpdateNickname.Unlock()
	return mock.UpdateNicknameFunc(ctx, id, nickname)
}

func (mock *userRepoMock) UpdateNicknameCalls() []struct {
	Ctx      context.Context
	ID       int64
	Nickname string
} {
	mock.lockUpdateNickname.RLock()
	calls := mock.calls.UpdateNickname
	mock.lockUpdateNickname.RUnlock()
	return calls
}
