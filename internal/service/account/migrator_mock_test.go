package account

import (
	"context"
	"sync"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

var _ migrator = &migratorMock{}

type migratorMock struct {
	MigrateInTxFunc func(ctx context.Context, from domain.OwnerID, to domain.OwnerID) error

	calls struct {
		MigrateInTx []struct {
			Ctx  context.Context
			From domain.OwnerID
			To   domain.OwnerID
		}
	}
	lockMigrateInTx sync.RWMutex
}

func (mock *migratorMock) MigrateInTx(ctx context.Context, from domain.OwnerID, to domain.OwnerID) error {
	if mock.MigrateInTxFunc == nil {
		panic("migratorMock.MigrateInTxFunc: method is nil but migrator.MigrateInTx was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		From domain.OwnerID
		To   domain.OwnerID
	}{
		Ctx:  ctx,
		From: from,
		To:   to,
	}
	mock.lockMigrateInTx.Lock()
	mock.calls.MigrateInTx = append(mock.calls.MigrateInTx, callInfo)
	mock.lockMigrateInTx.Unlock()
	return mock.MigrateInTxFunc(ctx, from, to)
}

func (mock *migratorMock) MigrateInTxCalls() []struct {
	Ctx  context.Context
	From domain.OwnerID
	To   domain.OwnerID
} {
	mock.lockMigrateInTx.RLock()
	calls := mock.calls.MigrateInTx
	mock.lockMigrateInTx.RUnlock()
	return calls
}
