package domain

// MaxEntryLimit caps the size of a single entry listing.
const MaxEntryLimit = 1000

// EntryFilter contains filtering/ordering parameters for entry listings.
type EntryFilter struct {
	// From and To bound the date inclusively (YYYY-MM-DD). Empty means unbounded.
	From string
	To   string

	// IncludeTemporary keeps anonymous-session drafts in the result.
	// Lists and aggregates exclude them by default.
	IncludeTemporary bool

	FavoritesOnly bool

	// Descending sorts newest date first. Default: ascending.
	Descending bool

	// Limit caps the result size. Zero means no limit; values above
	// MaxEntryLimit are clamped.
	Limit int
}
