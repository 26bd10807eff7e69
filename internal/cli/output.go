package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/mba-calendar/internal/league"
	"github.com/pfrederiksen/mba-calendar/internal/match"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	GeneratedAt time.Time      `json:"generated_at"`
	League      string         `json:"league,omitempty"`
	Team        string         `json:"team"`
	Matches     []match.Record `json:"matches"`
	MatchCount  int            `json:"match_count"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteLeagues writes the league table in the specified format
func WriteLeagues(w io.Writer, leagues []league.League, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, leagues)
	case FormatText:
		for _, l := range leagues {
			fmt.Fprintf(w, "%-15s %d\n", l.Name, l.ID)
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs v as indented JSON
func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if result.MatchCount == 0 {
		fmt.Fprintln(w, "No games found.")
		return nil
	}

	for _, rec := range result.Matches {
		fmt.Fprintf(w, "%s: %s vs %s @ %s\n", rec.StartRaw, rec.HomeTeam, rec.AwayTeam, rec.Location)
		if verbose {
			if rec.Played() {
				fmt.Fprintf(w, "     Score: %s - %s\n", rec.Score.Home, rec.Score.Away)
			}
			fmt.Fprintf(w, "     Description: %s\n", rec.Description())
		}
	}
	fmt.Fprintf(w, "\nTotal: %d matches\n", result.MatchCount)

	return nil
}
