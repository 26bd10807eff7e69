// Package cli implements the command-line interface for mba-calendar.
//
// The cli package provides the Cobra-based commands: serve runs the HTTP feed
// server, export writes a team's calendar as an .ics file, matches prints the
// extracted schedule as text or JSON, and leagues lists the configured league
// table. Every command loads the same YAML configuration and wires the league
// table, schedule client, and calendar builder into a feed.Service.
package cli
