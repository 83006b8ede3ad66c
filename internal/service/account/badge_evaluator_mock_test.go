package account

import (
	"context"
	"sync"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

var _ badgeEvaluator = &badgeEvaluatorMock{}

type badgeEvaluatorMock struct {
	EvaluateAndGrantFunc func(ctx context.Context, owner domain.OwnerID) ([]int64, error)

	calls struct {
		EvaluateAndGrant []struct {
			Ctx   context.Context
			Owner domain.OwnerID
		}
	}
	lockEvaluateAndGrant sync.RWMutex
}

func (mock *badgeEvaluatorMock) EvaluateAndGrant(ctx context.Context, owner domain.OwnerID) ([]int64, error) {
	if mock.EvaluateAndGrantFunc == nil {
		panic("badgeEvaluatorMock.EvaluateAndGrantFunc: method is nil but badgeEvaluator.EvaluateAndGrant was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.OwnerID
	}{
		Ctx:   ctx,
		Owner: owner,
	}
	mock.lockEvaluateAndGrant.Lock()
	mock.calls.EvaluateAndGrant = append(mock.calls.EvaluateAndGrant, callInfo)
	mock.lockEvaluateAndGrant.Unlock()
	return mock.EvaluateAndGrantFunc(ctx, owner)
}

func (mock *badgeEvaluatorMock) EvaluateAndGrantCalls() []struct {
	Ctx   context.Context
	Owner domain.OwnerID
} {
	mock.lockEvaluateAndGrant.RLock()
	calls := mock.calls.EvaluateAndGrant
	mock.lockEvaluateAndGrant.RUnlock()
	return calls
}
