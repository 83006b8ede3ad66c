package journal

import (
	"context"
	"sync"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	DeleteFunc      func(ctx context.Context, owner domain.OwnerID, id int64) error
	FavoritesFunc   func(ctx context.Context, owner domain.OwnerID) ([]domain.FavoriteCard, error)
	GetByDateFunc   func(ctx context.Context, owner domain.OwnerID, ymd string) (*domain.Entry, error)
	GetByIDFunc     func(ctx context.Context, owner domain.OwnerID, id int64) (*domain.Entry, error)
	ListFunc        func(ctx context.Context, owner domain.OwnerID, f domain.EntryFilter) ([]domain.Entry, error)
	MoodMapFunc     func(ctx context.Context, owner domain.OwnerID, from string, to string) (map[string]domain.Mood, error)
	MoodStatsFunc   func(ctx context.Context, owner domain.OwnerID, from string, to string) ([]domain.MoodStat, error)
	SetFavoriteFunc func(ctx context.Context, owner domain.OwnerID, id int64, favorite bool) error
	TagCountsFunc   func(ctx context.Context, owner domain.OwnerID, from string, to string) ([]domain.TagCount, error)
	UpsertFunc      func(ctx context.Context, e *domain.Entry) (*domain.Entry, error)

	calls struct {
		Delete []struct {
			Ctx   context.Context
			Owner domain.OwnerID
			ID    int64
		}
		Favorites []struct {
			Ctx   context.Context
			Owner domain.OwnerID
		}
		GetByDate []struct {
			Ctx   context.Context
			Owner domain.OwnerID
			Ymd   string
		}
		GetByID []struct {
			Ctx   context.Context
			Owner domain.OwnerID
			ID    int64
		}
		List []struct {
			Ctx   context.Context
			Owner domain.OwnerID
			F     domain.EntryFilter
		}
		MoodMap []struct {
			Ctx   context.Context
			Owner domain.OwnerID
			From  string
			To    string
		}
		MoodStats []struct {
			Ctx   context.Context
			Owner domain.OwnerID
			From  string
			To    string
		}
		SetFavorite []struct {
			Ctx      context.Context
			Owner    domain.OwnerID
			ID       int64
			Favorite bool
		}
		TagCounts []struct {
			Ctx   context.Context
			Owner domain.OwnerID
			From  string
			To    string
		}
		Upsert []struct {
			Ctx context.Context
			E   *domain.Entry
		}
	}
	lockDelete      sync.RWMutex
	lockFavorites   sync.RWMutex
	lockGetByDate   sync.RWMutex
	lockGetByID     sync.RWMutex
	lockList        sync.RWMutex
	lockMoodMap     sync.RWMutex
	lockMoodStats   sync.RWMutex
	lockSetFavorite sync.RWMutex
	lockTagCounts   sync.RWMutex
	lockUpsert      sync.RWMutex
}

func (mock *entryRepoMock) Delete(ctx context.Context, owner domain.OwnerID, id int64) error {
	if mock.DeleteFunc == nil {
		panic("entryRepoMock.DeleteFunc: method is nil but entryRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.OwnerID
		ID    int64
	}{
		Ctx:   ctx,
		Owner: owner,
		ID:    id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, owner, id)
}

func (mock *entryRepoMock) DeleteCalls() []struct {
	Ctx   context.Context
	Owner domain.OwnerID
	ID    int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *entryRepoMock) Favorites(ctx context.Context, owner domain.OwnerID) ([]domain.FavoriteCard, error) {
	if mock.FavoritesFunc == nil {
		panic("entryRepoMock.FavoritesFunc: method is nil but entryRepo.Favorites was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.OwnerID
	}{
		Ctx:   ctx,
		Owner: owner,
	}
	mock.lockFavorites.Lock()
	mock.calls.Favorites = append(mock.calls.Favorites, callInfo)
	mock.lockFavorites.Unlock()
	return mock.FavoritesFunc(ctx, owner)
}

func (mock *entryRepoMock) FavoritesCalls() []struct {
	Ctx   context.Context
	Owner domain.OwnerID
} {
	mock.lockFavorites.RLock()
	calls := mock.calls.Favorites
	mock.lockFavorites.RUnlock()
	return calls
}

func (mock *entryRepoMock) GetByDate(ctx context.Context, owner domain.OwnerID, ymd string) (*domain.Entry, error) {
	if mock.GetByDateFunc == nil {
		panic("entryRepoMock.GetByDateFunc: method is nil but entryRepo.GetByDate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.OwnerID
		Ymd   string
	}{
		Ctx:   ctx,
		Owner: owner,
		Ymd:   ymd,
	}
	mock.lockGetByDate.Lock()
	mock.calls.GetByDate = append(mock.calls.GetByDate, callInfo)
	mock.lockGetByDate.Unlock()
	return mock.GetByDateFunc(ctx, owner, ymd)
}

func (mock *entryRepoMock) GetByDateCalls() []struct {
	Ctx   context.Context
	Owner domain.OwnerID
	Ymd   string
} {
	mock.lockGetByDate.RLock()
	calls := mock.calls.GetByDate
	mock.lockGetByDate.RUnlock()
	return calls
}

func (mock *entryRepoMock) GetByID(ctx context.Context, owner domain.OwnerID, id int64) (*domain.Entry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.OwnerID
		ID    int64
	}{
		Ctx:   ctx,
		Owner: owner,
		ID:    id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, owner, id)
}

func (mock *entryRepoMock) GetByIDCalls() []struct {
	Ctx   context.Context
	Owner domain.OwnerID
	ID    int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *entryRepoMock) List(ctx context.Context, owner domain.OwnerID, f domain.EntryFilter) ([]domain.Entry, error) {
	if mock.ListFunc == nil {
		panic("entryRepoMock.ListFunc: method is nil but entryRepo.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.OwnerID
		F     domain.EntryFilter
	}{
		Ctx:   ctx,
		Owner: owner,
		F:     f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, owner, f)
}

func (mock *entryRepoMock) ListCalls() []struct {
	Ctx   context.Context
	Owner domain.OwnerID
	F     domain.EntryFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *entryRepoMock) MoodMap(ctx context.Context, owner domain.OwnerID, from string, to string) (map[string]domain.Mood, error) {
	if mock.MoodMapFunc == nil {
		panic("entryRepoMock.MoodMapFunc: method is nil but entryRepo.MoodMap was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.OwnerID
		From  string
		To    string
	}{
		Ctx:   ctx,
		Owner: owner,
		From:  from,
		To:    to,
	}
	mock.lockMoodMap.Lock()
	mock.calls.MoodMap = append(mock.calls.MoodMap, callInfo)
	mock.lockMoodMap.Unlock()
	return mock.MoodMapFunc(ctx, owner, from, to)
}

func (mock *entryRepoMock) MoodMapCalls() []struct {
	Ctx   context.Context
	Owner domain.OwnerID
	From  string
	To    string
} {
	mock.lockMoodMap.RLock()
	calls := mock.calls.MoodMap
	mock.lockMoodMap.RUnlock()
	return calls
}

func (mock *entryRepoMock) MoodStats(ctx context.Context, owner domain.OwnerID, from string, to string) ([]domain.MoodStat, error) {
	if mock.MoodStatsFunc == nil {
		panic("entryRepoMock.MoodStatsFunc: method is nil but entryRepo.MoodStats was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.OwnerID
		From  string
		To    string
	}{
		Ctx:   ctx,
		Owner: owner,
		From:  from,
		To:    to,
	}
	mock.lockMoodStats.Lock()
	mock.calls.MoodStats = append(mock.calls.MoodStats, callInfo)
	mock.lockMoodStats.Unlock()
	return mock.MoodStatsFunc(ctx, owner, from, to)
}

func (mock *entryRepoMock) MoodStatsCalls() []struct {
	Ctx   context.Context
	Owner domain.OwnerID
	From  string
	To    string
} {
	mock.lockMoodStats.RLock()
	calls := mock.calls.MoodStats
	mock.lockMoodStats.RUnlock()
	return calls
}

func (mock *entryRepoMock) SetFavorite(ctx context.Context, owner domain.OwnerID, id int64, favorite bool) error {
	if mock.SetFavoriteFunc == nil {
		panic("entryRepoMock.SetFavoriteFunc: method is nil but entryRepo.SetFavorite was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Owner    domain.OwnerID
		ID       int64
		Favorite bool
	}{
		Ctx:      ctx,
		Owner:    owner,
		ID:       id,
		Favorite: favorite,
	}
	mock.lockSetFavorite.Lock()
	mock.calls.SetFavorite = append(mock.calls.SetFavorite, callInfo)
	mock.lockSetFavorite.Unlock()
	return mock.SetFavoriteFunc(ctx, owner, id, favorite)
}

func (mock *entryRepoMock) SetFavoriteCalls() []struct {
	Ctx      context.Context
	Owner    domain.OwnerID
	ID       int64
	Favorite bool
} {
	mock.lockSetFavorite.RLock()
	calls := mock.calls.SetFavorite
	mock.lockSetFavorite.RUnlock()
	return calls
}

func (mock *entryRepoMock) TagCounts(ctx context.Context, owner domain.OwnerID, from string, to string) ([]domain.TagCount, error) {
	if mock.TagCountsFunc == nil {
		panic("entryRepoMock.TagCountsFunc: method is nil but entryRepo.TagCounts was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.OwnerID
		From  string
		To    string
	}{
		Ctx:   ctx,
		Owner: owner,
		From:  from,
		To:    to,
	}
	mock.lockTagCounts.Lock()
	mock.calls.TagCounts = append(mock.calls.TagCounts, callInfo)
	mock.lockTagCounts.Unlock()
	return mock.TagCountsFunc(ctx, owner, from, to)
}

func (mock *entryRepoMock) TagCountsCalls() []struct {
	Ctx   context.Context
	Owner domain.OwnerID
	From  string
	To    string
} {
	mock.lockTagCounts.RLock()
	calls := mock.calls.TagCounts
	mock.lockTagCounts.RUnlock()
	return calls
}

func (mock *entryRepoMock) Upsert(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	if mock.UpsertFunc == nil {
		panic("entryRepoMock.UpsertFunc: method is nil but entryRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.Entry
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, e)
}

func (mock *entryRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	E   *domain.Entry
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
