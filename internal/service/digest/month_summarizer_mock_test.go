package digest

import (
	"context"
	"sync"

	"github.com/heartmarshall/mooddiary-backend/internal/provider"
)

var _ monthSummarizer = &monthSummarizerMock{}

type monthSummarizerMock struct {
	SummarizeMonthFunc func(ctx context.Context, req provider.MonthlyRequest) (*provider.MonthlyResult, error)

	calls struct {
		SummarizeMonth []struct {
			Ctx context.Context
			Req provider.MonthlyRequest
		}
	}
	lockSummarizeMonth sync.RWMutex
}

func (mock *monthSummarizerMock) SummarizeMonth(ctx context.Context, req provider.MonthlyRequest) (*provider.MonthlyResult, error) {
	if mock.SummarizeMonthFunc == nil {
		panic("monthSummarizerMock.SummarizeMonthFunc: method is nil but monthSummarizer.SummarizeMonth was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req provider.MonthlyRequest
	}{
		Ctx: ctx,
		Req: req,
	}
	mock.lockSummarizeMonth.Lock()
	mock.calls.SummarizeMonth = append(mock.calls.SummarizeMonth, callInfo)
	mock.lockSummarizeMonth.Unlock()
	return mock.SummarizeMonthFunc(ctx, req)
}

func (mock *monthSummarizerMock) SummarizeMonthCalls() []struct {
	Ctx context.Context
	Req provider.MonthlyRequest
} {
	mock.lockSummarizeMonth.RLock()
	calls := mock.calls.SummarizeMonth
	mock.lockSummarizeMonth.RUnlock()
	return calls
}
