package digest

import (
	"context"
	"sync"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

var _ digestRepo = &digestRepoMock{}

type digestRepoMock struct {
	GetFunc    func(ctx context.Context, owner domain.OwnerID, ym string) (*domain.MonthlyDigest, error)
	UpsertFunc func(ctx context.Context, d *domain.MonthlyDigest) error
	YearFunc   func(ctx context.Context, owner domain.OwnerID, year int) ([]domain.MonthlyDigest, error)

	calls struct {
		Get []struct {
			Ctx   context.Context
			Owner domain.OwnerID
			Ym    string
		}
		Upsert []struct {
			Ctx context.Context
			D   *domain.MonthlyDigest
		}
		Year []struct {
			Ctx   context.Context
			Owner domain.OwnerID
			Year  int
		}
	}
	lockGet    sync.RWMutex
	lockUpsert sync.RWMutex
	lockYear   sync.RWMutex
}

func (mock *digestRepoMock) Get(ctx context.Context, owner domain.OwnerID, ym string) (*domain.MonthlyDigest, error) {
	if mock.GetFunc == nil {
		panic("digestRepoMock.GetFunc: method is nil but digestRepo.Get was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.OwnerID
		Ym    string
	}{
		Ctx:   ctx,
		Owner: owner,
		Ym:    ym,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, owner, ym)
}

func (mock *digestRepoMock) GetCalls() []struct {
	Ctx   context.Context
	Owner domain.OwnerID
	Ym    string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *digestRepoMock) Upsert(ctx context.Context, d *domain.MonthlyDigest) error {
	if mock.UpsertFunc == nil {
		panic("digestRepoMock.UpsertFunc: method is nil but digestRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   *domain.MonthlyDigest
	}{
		Ctx: ctx,
		D:   d,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, d)
}

func (mock *digestRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	D   *domain.MonthlyDigest
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *digestRepoMock) Year(ctx context.Context, owner domain.OwnerID, year int) ([]domain.MonthlyDigest, error) {
	if mock.YearFunc == nil {
		panic("digestRepoMock.YearFunc: method is nil but digestRepo.Year was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.OwnerID
		Year  int
	}{
		Ctx:   ctx,
		Owner: owner,
		Year:  year,
	}
	mock.lockYear.Lock()
	mock.calls.Year = append(mock.calls.Year, callInfo)
	mock.lockYear.Unlock()
	return mock.YearFunc(ctx, owner, year)
}

func (mock *digestRepoMock) YearCalls() []struct {
	Ctx   context.Context
	Owner domain.OwnerID
	Year  int
} {
	mock.lockYear.RLock()
	calls := mock.calls.Year
	mock.lockYear.RUnlock()
	return calls
}
