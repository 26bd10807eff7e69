package scraper

import (
	"fmt"
	"strings"
)

// testEntry describes one match entry of a generated schedule page.
// omit names a field whose markup is left out.
type testEntry struct {
	home, away           string
	homeScore, awayScore string
	when, venue          string
	omit                 string
}

func teamHTML(side, name, scoreClass, score string, omitName, omitScore bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="%s-team">`, side)
	if !omitName {
		fmt.Fprintf(&b, `<div class="team-name"><a href="#"><span class="team-name-full">%s</span></a></div>`, name)
	}
	if !omitScore {
		fmt.Fprintf(&b, `<div class="team-score %s"><div class="fake-cell">%s</div></div>`, scoreClass, score)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func entryHTML(e testEntry) string {
	var b strings.Builder
	b.WriteString(`<div class="match-wrap"><div class="sched-teams">`)
	b.WriteString(teamHTML("home", e.home, "homescore", e.homeScore, e.omit == "home_team", e.omit == "home_score"))
	b.WriteString(teamHTML("away", e.away, "awayscore", e.awayScore, e.omit == "away_team", e.omit == "away_score"))
	b.WriteString(`</div><div class="match-details-wrap"><div class="match-details">`)
	if e.omit != "start_time" {
		fmt.Fprintf(&b, `<div class="match-time"><span>%s</span></div>`, e.when)
	}
	if e.omit != "venue" {
		fmt.Fprintf(&b, `<div class="match-venue"><a href="#">%s</a></div>`, e.venue)
	}
	b.WriteString(`</div></div></div>`)
	return b.String()
}

func pageHTML(entries ...testEntry) string {
	var b strings.Builder
	b.WriteString(`<html><body><div class="fixture-wrap">`)
	for _, e := range entries {
		b.WriteString(entryHTML(e))
	}
	b.WriteString(`</div></body></html>`)
	return b.String()
}

var (
	frogsWolves = testEntry{home: "Singing Frogs", away: "Wolves", when: "12 Mar 2024, 18:30", venue: "Hall A"}
	lionsBears  = testEntry{home: "Lions", away: "Bears", homeScore: "3", awayScore: "1", when: "14 Mar 2024, 19:00", venue: "Arena B"}
	wolvesFrogs = testEntry{home: "Wolves", away: "Singing Frogs", homeScore: "87", awayScore: "92", when: "5 Apr 2024, 20:15", venue: "Hall C"}
)
