package calendar

import (
	"fmt"
	"io"
	"time"
	_ "time/tzdata" // league time zones must load on hosts without zoneinfo

	ics "github.com/arran4/golang-ical"
	"github.com/pfrederiksen/mba-calendar/internal/match"
)

const (
	DefaultProductID       = "-//mba-calendar//MBA web scraper//1.0.0"
	DefaultPrefix          = "MBA"
	DefaultTimeZone        = "Europe/Warsaw"
	DefaultRefreshInterval = "PT12H"
	DefaultDuration        = 90 * time.Minute
)

// Config holds the feed metadata and event timing
type Config struct {
	ProductID       string
	NamePrefix      string // calendar name is "<NamePrefix> <title>"
	SummaryPrefix   string // event summary is "<SummaryPrefix>: <home> vs <away>"
	TimeZone        string
	RefreshInterval string // ISO 8601 duration written as X-PUBLISHED-TTL
	Duration        time.Duration

	// Location is the civil time zone of the schedule's start times.
	// NewBuilder loads it from TimeZone when nil.
	Location *time.Location
}

// DefaultConfig returns the feed settings for MBA league schedules
func DefaultConfig() Config {
	return Config{
		ProductID:       DefaultProductID,
		NamePrefix:      DefaultPrefix,
		SummaryPrefix:   DefaultPrefix,
		TimeZone:        DefaultTimeZone,
		RefreshInterval: DefaultRefreshInterval,
		Duration:        DefaultDuration,
	}
}

// Feed is a built calendar document
type Feed struct {
	Name   string
	Events []Event
	cal    *ics.Calendar
}

// Serialize returns the feed in iCalendar text format
func (f *Feed) Serialize() string {
	return f.cal.Serialize()
}

// SerializeTo writes the feed in iCalendar text format
func (f *Feed) SerializeTo(w io.Writer) error {
	return f.cal.SerializeTo(w)
}

// Builder converts match records into calendar feeds
type Builder struct {
	cfg Config
	now func() time.Time
}

// NewBuilder creates a Builder, loading the configured time zone if needed
func NewBuilder(cfg Config) (*Builder, error) {
	if cfg.Location == nil {
		loc, err := time.LoadLocation(cfg.TimeZone)
		if err != nil {
			return nil, fmt.Errorf("loading time zone %q: %w", cfg.TimeZone, err)
		}
		cfg.Location = loc
	}
	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("event duration must be positive, got %v", cfg.Duration)
	}

	return &Builder{
		cfg: cfg,
		now: time.Now,
	}, nil
}

// Build creates a feed named after title with one event per record, in order.
// It does not reject an empty record list. Any malformed start time fails the
// whole build with a *match.FormatError.
func (b *Builder) Build(records []match.Record, title string) (*Feed, error) {
	events := make([]Event, 0, len(records))
	seen := make(map[string]int)

	for _, rec := range records {
		evt, err := NewEvent(rec, b.cfg)
		if err != nil {
			return nil, err
		}

		// Keep UIDs unique when the page lists a match twice.
		key := evt.UID
		if n := seen[key]; n > 0 {
			evt.UID = GenerateUID(rec, n)
		}
		seen[key]++

		events = append(events, evt)
	}

	name := fmt.Sprintf("%s %s", b.cfg.NamePrefix, title)
	return &Feed{
		Name:   name,
		Events: events,
		cal:    b.document(name, events),
	}, nil
}

// document renders events into an iCalendar document
func (b *Builder) document(name string, events []Event) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetProductId(b.cfg.ProductID)
	cal.SetVersion("2.0")
	cal.SetMethod(ics.MethodPublish)
	cal.SetName(name)
	cal.SetXWRCalName(name)
	cal.SetXWRTimezone(b.cfg.TimeZone)
	cal.SetCalscale("GREGORIAN")
	cal.SetXPublishedTTL(b.cfg.RefreshInterval)

	stamp := b.now().UTC()
	for _, evt := range events {
		e := cal.AddEvent(evt.UID)
		e.SetDtStampTime(stamp)
		e.SetStartAt(evt.Start)
		e.SetEndAt(evt.End)
		e.SetSummary(evt.Summary)
		e.SetLocation(evt.Location)
		e.SetDescription(evt.Description)
	}

	return cal
}
