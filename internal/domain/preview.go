package domain

import (
	"strings"
	"unicode/utf8"
)

const ellipsis = "…"

// BuildPreview extracts up to maxSentences leading sentences of text that fit
// into maxChars runes. A first sentence longer than the budget is cut and
// suffixed with an ellipsis. Empty or blank input yields "".
func BuildPreview(text string, maxSentences, maxChars int) string {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" || maxSentences <= 0 || maxChars <= 0 {
		return ""
	}

	var b strings.Builder
	count := 0
	for _, s := range splitSentences(cleaned) {
		if count >= maxSentences {
			break
		}
		next := s
		if b.Len() > 0 {
			next = b.String() + " " + s
		}
		if utf8.RuneCountInString(next) > maxChars {
			if b.Len() == 0 {
				return truncateRunes(s, maxChars) + ellipsis
			}
			break
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s)
		count++
	}

	return strings.TrimSpace(b.String())
}

// splitSentences breaks text after '.', '!', '?' followed by whitespace and
// after every newline. Returned parts are trimmed and non-empty.
func splitSentences(text string) []string {
	var parts []string
	var cur strings.Builder

	flush := func() {
		if p := strings.TrimSpace(cur.String()); p != "" {
			parts = append(parts, p)
		}
		cur.Reset()
	}

	runes := []rune(text)
	for i, r := range runes {
		cur.WriteRune(r)
		switch {
		case r == '\n':
			flush()
		case r == '.' || r == '!' || r == '?':
			if i+1 < len(runes) && isSpace(runes[i+1]) {
				flush()
			}
		}
	}
	flush()

	return parts
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimRight(string(runes[:n]), " \t")
}
