package provider

import (
	"strings"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

// Brief condenses a month of entries into the line-per-entry text the
// monthly prompt expects:
//
//	- 2026-01-03 | mood=기쁨 | tags=산책,친구 | content
//
// At most domain.MaxBriefEntries entries are used and each content is cut to
// domain.MaxBriefContent runes with newlines flattened.
func Brief(entries []domain.Entry) string {
	if len(entries) > domain.MaxBriefEntries {
		entries = entries[:domain.MaxBriefEntries]
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		content := strings.Join(strings.Fields(e.Content), " ")
		if r := []rune(content); len(r) > domain.MaxBriefContent {
			content = string(r[:domain.MaxBriefContent])
		}
		lines = append(lines, "- "+e.DateYmd+
			" | mood="+e.Mood.Label()+
			" | tags="+strings.Join(e.Tags, ",")+
			" | "+content)
	}
	return strings.Join(lines, "\n")
}
