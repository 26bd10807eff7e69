package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pfrederiksen/mba-calendar/internal/match"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortByPage  SortOrder = "page"
	SortByDate  SortOrder = "date"
	SortByVenue SortOrder = "venue"
)

func parseSortOrder(s string) (SortOrder, error) {
	order := SortOrder(strings.ToLower(s))
	switch order {
	case SortByPage, SortByDate, SortByVenue:
		return order, nil
	}
	return "", fmt.Errorf("invalid sort order: %s (must be 'page', 'date' or 'venue')", s)
}

// sortMatches sorts records in place. SortByPage keeps document order.
func sortMatches(records []match.Record, order SortOrder, loc *time.Location) {
	switch order {
	case SortByDate:
		sort.SliceStable(records, func(i, j int) bool {
			return compareByDate(records[i], records[j], loc)
		})
	case SortByVenue:
		sort.SliceStable(records, func(i, j int) bool {
			if records[i].Location != records[j].Location {
				return strings.ToLower(records[i].Location) < strings.ToLower(records[j].Location)
			}
			// If venues are equal, sort by date
			return compareByDate(records[i], records[j], loc)
		})
	}
}

// compareByDate compares two records by start time
// Returns true if i should come before j
func compareByDate(i, j match.Record, loc *time.Location) bool {
	dateI, errI := match.ParseStart(i.StartRaw, loc)
	dateJ, errJ := match.ParseStart(j.StartRaw, loc)

	// If both dates are valid, compare them
	if errI == nil && errJ == nil {
		return dateI.Before(dateJ)
	}

	// If only one date is valid, put the valid one first
	if errI == nil {
		return true
	}
	if errJ == nil {
		return false
	}

	return i.StartRaw < j.StartRaw
}
