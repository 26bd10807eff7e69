// Package feed runs the schedule-to-calendar pipeline for one league and team.
//
// Service.Calendar resolves the league, fetches its schedule page, extracts the
// team's matches, and builds the calendar. Every failure is one of a fixed set of
// kinds; Classify maps an error to its Kind so callers can branch exhaustively.
package feed

import (
	"bytes"
	"context"

	"github.com/pfrederiksen/mba-calendar/internal/calendar"
	"github.com/pfrederiksen/mba-calendar/internal/league"
	"github.com/pfrederiksen/mba-calendar/internal/match"
	"github.com/pfrederiksen/mba-calendar/internal/scraper"
)

// Fetcher retrieves the raw schedule page for a league
type Fetcher interface {
	Fetch(ctx context.Context, leagueID int) ([]byte, error)
}

// Service builds team calendars from league schedule pages
type Service struct {
	leagues  *league.Table
	fetcher  Fetcher
	locators scraper.Locators
	builder  *calendar.Builder
}

// NewService creates a Service from its collaborators
func NewService(leagues *league.Table, fetcher Fetcher, locators scraper.Locators, builder *calendar.Builder) *Service {
	return &Service{
		leagues:  leagues,
		fetcher:  fetcher,
		locators: locators,
		builder:  builder,
	}
}

// Leagues returns the league table the service resolves names with
func (s *Service) Leagues() *league.Table {
	return s.leagues
}

// Matches fetches a league's schedule and returns the matches involving team.
// An empty result is match.ErrNoGames.
func (s *Service) Matches(ctx context.Context, leagueName, team string) ([]match.Record, error) {
	leagueID, err := s.leagues.Resolve(leagueName)
	if err != nil {
		return nil, err
	}

	page, err := s.fetcher.Fetch(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	return s.Extract(page, team)
}

// Extract returns the matches involving team from a schedule page already in hand.
// An empty result is match.ErrNoGames.
func (s *Service) Extract(page []byte, team string) ([]match.Record, error) {
	records, err := scraper.ParseHTML(bytes.NewReader(page), team, s.locators)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, match.ErrNoGames
	}
	return records, nil
}

// Calendar builds the calendar feed of team's matches in a league
func (s *Service) Calendar(ctx context.Context, leagueName, team string) (*calendar.Feed, error) {
	records, err := s.Matches(ctx, leagueName, team)
	if err != nil {
		return nil, err
	}
	return s.builder.Build(records, team)
}

// CalendarFromPage builds the calendar feed of team's matches from a saved schedule page
func (s *Service) CalendarFromPage(page []byte, team string) (*calendar.Feed, error) {
	records, err := s.Extract(page, team)
	if err != nil {
		return nil, err
	}
	return s.builder.Build(records, team)
}
