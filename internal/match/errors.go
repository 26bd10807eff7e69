package match

import (
	"errors"
	"fmt"
)

// ErrNoGames is returned when a schedule parsed cleanly but lists no match for the team
var ErrNoGames = errors.New("no games found for the given team")

// StructureError reports that a required field could not be located on the page.
// The page layout no longer matches the locators and nothing extracted from it is trusted.
type StructureError struct {
	Field string // locator name, e.g. "home_team"
	Entry int    // 0-based index of the match entry
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("unexpected page structure: %s not found in match entry %d", e.Field, e.Entry)
}

// FormatError reports a start time that does not match StartLayout
type FormatError struct {
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid match start time %q: %v", e.Value, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
