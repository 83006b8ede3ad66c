package mindcard

import (
	"context"
	"sync"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

var _ previewer = &previewerMock{}

type previewerMock struct {
	PreviewForFunc func(ctx context.Context, entryID int64) (*domain.MindCardPreview, error)

	calls struct {
		PreviewFor []struct {
			Ctx     context.Context
			EntryID int64
		}
	}
	lockPreviewFor sync.RWMutex
}

func (mock *previewerMock) PreviewFor(ctx context.Context, entryID int64) (*domain.MindCardPreview, error) {
	if mock.PreviewForFunc == nil {
		panic("previewerMock.PreviewForFunc: method is nil but previewer.PreviewFor was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID int64
	}{
		Ctx:     ctx,
		EntryID: entryID,
	}
	mock.lockPreviewFor.Lock()
	mock.calls.PreviewFor = append(mock.calls.PreviewFor, callInfo)
	mock.lockPreviewFor.Unlock()
	return mock.PreviewForFunc(ctx, entryID)
}

func (mock *previewerMock) PreviewForCalls() []struct {
	Ctx     context.Context
	EntryID int64
} {
	mock.lockPreviewFor.RLock()
	calls := mock.calls.PreviewFor
	mock.lockPreviewFor.RUnlock()
	return calls
}
