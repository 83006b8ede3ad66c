package digest

import (
	"fmt"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

// ErrNoEntries indicates the month has no entries to summarize.
var ErrNoEntries = fmt.Errorf("no entries in month: %w", domain.ErrNotFound)
