package feed

import (
	"errors"

	"github.com/pfrederiksen/mba-calendar/internal/league"
	"github.com/pfrederiksen/mba-calendar/internal/match"
	"github.com/pfrederiksen/mba-calendar/internal/scraper"
)

// Kind classifies the outcome of a pipeline run
type Kind int

const (
	KindOK Kind = iota
	KindInvalidLeague
	KindFetch
	KindStructure
	KindNoGames
	KindFormat
	KindInternal
)

var kindNames = map[Kind]string{
	KindOK:            "ok",
	KindInvalidLeague: "invalid_league",
	KindFetch:         "fetch",
	KindStructure:     "structure",
	KindNoGames:       "no_games",
	KindFormat:        "format",
	KindInternal:      "internal",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Classify returns the Kind of an error returned by Service
func Classify(err error) Kind {
	var (
		invalidLeague *league.InvalidLeagueError
		fetchErr      *scraper.FetchError
		structErr     *match.StructureError
		formatErr     *match.FormatError
	)

	switch {
	case err == nil:
		return KindOK
	case errors.As(err, &invalidLeague):
		return KindInvalidLeague
	case errors.As(err, &fetchErr):
		return KindFetch
	case errors.As(err, &structErr):
		return KindStructure
	case errors.Is(err, match.ErrNoGames):
		return KindNoGames
	case errors.As(err, &formatErr):
		return KindFormat
	default:
		return KindInternal
	}
}
