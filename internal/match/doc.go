// Package match provides the match record extracted from a league schedule page.
//
// A Record holds the display values read verbatim from one match entry: the two team
// names, the optional score pair, the venue, and the raw start time text. The package
// also renders the summary and description used for calendar events, parses the raw
// start time strictly, and defines the domain errors shared by the scraper, calendar,
// and feed packages.
package match
