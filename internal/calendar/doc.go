// Package calendar builds the iCalendar feed for a team's schedule.
//
// Each match record becomes one event with a fixed duration, in the order the
// records were given. Start times are read in the league's civil time zone and
// written in UTC. Serialization is delegated to github.com/arran4/golang-ical.
package calendar
