package scraper

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/mba-calendar/internal/match"
)

// ParseHTML parses a schedule page and extracts the matches involving team
func ParseHTML(r io.Reader, team string, loc Locators) ([]match.Record, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return Extract(doc, team, loc)
}

// Extract returns the matches involving team in document order.
// The first entry missing a required field aborts extraction with a
// *match.StructureError and no records.
func Extract(doc *goquery.Document, team string, loc Locators) ([]match.Record, error) {
	records := make([]match.Record, 0)
	var extractErr error

	doc.Find(loc.FixtureList).Find(loc.Entry).EachWithBreak(func(i int, entry *goquery.Selection) bool {
		rec, err := extractEntry(entry, i, team, loc)
		if err != nil {
			extractErr = err
			return false
		}
		if rec != nil {
			records = append(records, *rec)
		}
		return true
	})

	if extractErr != nil {
		return nil, extractErr
	}
	return records, nil
}

// extractEntry reads one match entry. It returns nil, nil when the entry
// does not involve team.
func extractEntry(entry *goquery.Selection, idx int, team string, loc Locators) (*match.Record, error) {
	home, err := text(entry, loc.HomeTeam, "home_team", idx)
	if err != nil {
		return nil, err
	}
	away, err := text(entry, loc.AwayTeam, "away_team", idx)
	if err != nil {
		return nil, err
	}

	rec := &match.Record{HomeTeam: home, AwayTeam: away}
	if !rec.Involves(team) {
		return nil, nil
	}

	homeScore, err := text(entry, loc.HomeScore, "home_score", idx)
	if err != nil {
		return nil, err
	}
	awayScore, err := text(entry, loc.AwayScore, "away_score", idx)
	if err != nil {
		return nil, err
	}
	rec.Score, err = score(homeScore, awayScore, idx)
	if err != nil {
		return nil, err
	}

	if rec.StartRaw, err = text(entry, loc.StartTime, "start_time", idx); err != nil {
		return nil, err
	}
	if rec.Location, err = text(entry, loc.Venue, "venue", idx); err != nil {
		return nil, err
	}

	return rec, nil
}

// text returns the verbatim text of the first node matching selector
func text(entry *goquery.Selection, selector, field string, idx int) (string, error) {
	sel := entry.Find(selector).First()
	if sel.Length() == 0 {
		return "", &match.StructureError{Field: field, Entry: idx}
	}
	return sel.Text(), nil
}

// score maps the two score cells to a score pair. Blank cells mean the match
// has not been played; a single blank cell means the cells no longer mirror
// each other.
func score(home, away string, idx int) (*match.Score, error) {
	homeBlank, awayBlank := match.IsBlank(home), match.IsBlank(away)
	switch {
	case homeBlank && awayBlank:
		return nil, nil
	case homeBlank != awayBlank:
		return nil, &match.StructureError{Field: "score", Entry: idx}
	}
	return &match.Score{Home: home, Away: away}, nil
}
