package match

import "fmt"

// Score holds the display scores of a played match.
// Both sides are always set together.
type Score struct {
	Home string `json:"home"`
	Away string `json:"away"`
}

// Record represents one scheduled match involving the requested team
type Record struct {
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
	Score    *Score `json:"score,omitempty"` // nil until the match has been played
	Location string `json:"location"`
	StartRaw string `json:"start_raw"`
}

// Involves reports whether team is exactly the home or away team name.
// The comparison is case-sensitive and whole-string.
func (r *Record) Involves(team string) bool {
	return r.HomeTeam == team || r.AwayTeam == team
}

// Played reports whether the record carries a score
func (r *Record) Played() bool {
	return r.Score != nil
}

// Summary returns the event title, e.g. "MBA: Lions vs Bears"
func (r *Record) Summary(prefix string) string {
	return fmt.Sprintf("%s: %s vs %s", prefix, r.HomeTeam, r.AwayTeam)
}

// Description returns "Lions 3 - 1 Bears" for played matches and "Lions - Bears" otherwise
func (r *Record) Description() string {
	if r.Score == nil {
		return fmt.Sprintf("%s - %s", r.HomeTeam, r.AwayTeam)
	}
	return fmt.Sprintf("%s %s - %s %s", r.HomeTeam, r.Score.Home, r.Score.Away, r.AwayTeam)
}
