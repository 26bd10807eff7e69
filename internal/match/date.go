package match

import (
	"strings"
	"time"
)

// StartLayout is the schedule page's start time format, e.g. "12 Mar 2024, 18:30"
const StartLayout = "2 Jan 2006, 15:04"

// ParseStart parses a raw start time in the league's civil time zone.
// Parsing is strict: anything not in StartLayout returns a *FormatError.
func ParseStart(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(StartLayout, raw, loc)
	if err != nil {
		return time.Time{}, &FormatError{Value: raw, Err: err}
	}
	return t, nil
}

// IsBlank reports whether a score cell holds no score yet
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
