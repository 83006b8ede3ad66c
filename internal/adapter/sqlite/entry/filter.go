package entry

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

// clampLimit bounds the requested limit to [0, domain.MaxEntryLimit].
func clampLimit(limit int) int {
	if limit < 0 {
		return 0
	}
	if limit > domain.MaxEntryLimit {
		return domain.MaxEntryLimit
	}
	return limit
}

// where builds the predicate shared by listings and aggregates.
func where(owner domain.OwnerID, f domain.EntryFilter) sq.And {
	cond := sq.And{sq.Eq{"owner_id": string(owner)}}
	if !f.IncludeTemporary {
		cond = append(cond, sq.Eq{"is_temporary": 0})
	}
	if f.From != "" {
		cond = append(cond, sq.GtOrEq{"date_ymd": f.From})
	}
	if f.To != "" {
		cond = append(cond, sq.LtOrEq{"date_ymd": f.To})
	}
	if f.FavoritesOnly {
		cond = append(cond, sq.Eq{"is_favorite": 1})
	}
	return cond
}

func orderBy(f domain.EntryFilter) string {
	if f.Descending {
		return "date_ymd DESC"
	}
	return "date_ymd ASC"
}
