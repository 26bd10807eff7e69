// Package server exposes team calendar feeds over HTTP.
//
// GET /?league=<name>&team_name=<team> returns the team's schedule as an
// iCalendar document. Pipeline failures map to plain-text 400 responses with
// a fixed message per failure kind; anything unclassified is a 500.
package server
