package calendar

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pfrederiksen/mba-calendar/internal/match"
)

var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/pfrederiksen/mba-calendar"))

// Event is the calendar entry derived from one match record
type Event struct {
	UID         string    `json:"uid"`
	Summary     string    `json:"summary"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}

// NewEvent derives the calendar event for a match record.
// A malformed start time returns a *match.FormatError.
func NewEvent(rec match.Record, cfg Config) (Event, error) {
	start, err := match.ParseStart(rec.StartRaw, cfg.Location)
	if err != nil {
		return Event{}, err
	}

	return Event{
		UID:         GenerateUID(rec, 0),
		Summary:     rec.Summary(cfg.SummaryPrefix),
		Location:    rec.Location,
		Description: rec.Description(),
		Start:       start,
		End:         start.Add(cfg.Duration),
	}, nil
}

// GenerateUID creates a deterministic UID from the teams and raw start time,
// so refreshed feeds update events in place. occurrence separates repeated
// listings of the same match.
func GenerateUID(rec match.Record, occurrence int) string {
	key := rec.HomeTeam + "|" + rec.AwayTeam + "|" + rec.StartRaw
	if occurrence > 0 {
		key = fmt.Sprintf("%s|%d", key, occurrence)
	}
	return uuid.NewSHA1(uidNamespace, []byte(key)).String()
}
