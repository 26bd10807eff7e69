package scraper

import (
	"fmt"

	"github.com/andybalholm/cascadia"
)

// Locators names the CSS selectors used to find match fields on a schedule page.
// FixtureList is matched against the whole document and Entry within it; the
// remaining selectors are matched within a single entry.
type Locators struct {
	FixtureList string `yaml:"fixture_list" json:"fixture_list"`
	Entry       string `yaml:"entry" json:"entry"`
	HomeTeam    string `yaml:"home_team" json:"home_team"`
	AwayTeam    string `yaml:"away_team" json:"away_team"`
	HomeScore   string `yaml:"home_score" json:"home_score"`
	AwayScore   string `yaml:"away_score" json:"away_score"`
	StartTime   string `yaml:"start_time" json:"start_time"`
	Venue       string `yaml:"venue" json:"venue"`
}

// DefaultLocators returns the selectors for the hosted Genius Sports schedule layout
func DefaultLocators() Locators {
	return Locators{
		FixtureList: "div.fixture-wrap",
		Entry:       "div.match-wrap",
		HomeTeam:    "div.sched-teams div.home-team div.team-name a span.team-name-full",
		AwayTeam:    "div.sched-teams div.away-team div.team-name a span.team-name-full",
		HomeScore:   "div.sched-teams div.home-team div.team-score.homescore div.fake-cell",
		AwayScore:   "div.sched-teams div.away-team div.team-score.awayscore div.fake-cell",
		StartTime:   "div.match-details-wrap > div div.match-time span",
		Venue:       "div.match-details-wrap > div div.match-venue a",
	}
}

// fields returns the locators keyed by the field names used in errors
func (l Locators) fields() []struct{ name, selector string } {
	return []struct{ name, selector string }{
		{"fixture_list", l.FixtureList},
		{"entry", l.Entry},
		{"home_team", l.HomeTeam},
		{"away_team", l.AwayTeam},
		{"home_score", l.HomeScore},
		{"away_score", l.AwayScore},
		{"start_time", l.StartTime},
		{"venue", l.Venue},
	}
}

// Validate checks that every selector is set and compiles.
// goquery matches nothing for an invalid selector instead of failing.
func (l Locators) Validate() error {
	for _, f := range l.fields() {
		if f.selector == "" {
			return fmt.Errorf("locator %s is empty", f.name)
		}
		if _, err := cascadia.Compile(f.selector); err != nil {
			return fmt.Errorf("locator %s: %w", f.name, err)
		}
	}
	return nil
}
