// Package scraper fetches a league schedule page and extracts the matches of one team.
//
// Extraction is driven by Locators, a declarative set of CSS selectors naming where each
// field lives inside a match entry. Every entry must expose both team names; entries
// that do not involve the requested team are then skipped. An entry involving the team
// must also expose both score cells, the start time, and the venue. Any missing field
// means the page layout has changed, and extraction fails with a *match.StructureError
// instead of returning a partial schedule.
//
// Client performs the single HTTP GET for a league's schedule page.
package scraper
