package utils

import (
	"fmt"
	"strings"
	"time"
)

// FormatISO renders a timestamp as an ISO-8601 UTC string with a trailing
// 'Z' marker, omitting fractional seconds when they are zero.
func FormatISO(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.999999") + "Z"
}

// isoLayouts are tried in order by ParseISO. Import records come from other
// environments, so both 'Z'-suffixed and offset forms are accepted.
var isoLayouts = []string{
	"2006-01-02T15:04:05.999999Z",
	"2006-01-02T15:04:05Z",
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// ParseISO parses an ISO-8601 timestamp as produced by FormatISO. The result
// is in UTC.
func ParseISO(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 timestamp: %q", s)
}
