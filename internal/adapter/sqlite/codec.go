package sqlite

import (
	"encoding/json"
	"time"
)

// Millis converts t to the unix-millisecond form every timestamp column uses.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}

// FromMillis is the inverse of Millis. Zero stays the zero time.
func FromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

// EncodeStrings renders a string list as a JSON array. nil encodes as "[]".
func EncodeStrings(values []string) string {
	if values == nil {
		return "[]"
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// DecodeStrings parses a JSON array column. Malformed or empty input yields
// an empty, non-nil slice.
func DecodeStrings(raw string) []string {
	out := []string{}
	if raw == "" {
		return out
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

// Bool converts an INTEGER 0/1 column.
func Bool(v int) bool { return v != 0 }

// Int converts a bool to its INTEGER 0/1 form.
func Int(b bool) int {
	if b {
		return 1
	}
	return 0
}
