package mindcard

import (
	"context"
	"sync"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
	"github.com/heartmarshall/mooddiary-backend/internal/service/journal"
)

var _ entryWriter = &entryWriterMock{}

type entryWriterMock struct {
	UpsertEntryFunc func(ctx context.Context, input journal.EntryInput) (*domain.Entry, error)

	calls struct {
		UpsertEntry []struct {
			Ctx   context.Context
			Input journal.EntryInput
		}
	}
	lockUpsertEntry sync.RWMutex
}

func (mock *entryWriterMock) UpsertEntry(ctx context.Context, input journal.EntryInput) (*domain.Entry, error) {
	if mock.UpsertEntryFunc == nil {
		panic("entryWriterMock.UpsertEntryFunc: method is nil but entryWriter.UpsertEntry was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input journal.EntryInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpsertEntry.Lock()
	mock.calls.UpsertEntry = append(mock.calls.UpsertEntry, callInfo)
	mock.lockUpsertEntry.Unlock()
	return mock.UpsertEntryFunc(ctx, input)
}

func (mock *entryWriterMock) UpsertEntryCalls() []struct {
	Ctx   context.Context
	Input journal.EntryInput
} {
	mock.lockUpsertEntry.RLock()
	calls := mock.calls.UpsertEntry
	mock.lockUpsertEntry.RUnlock()
	return calls
}
