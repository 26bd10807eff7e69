package calendar

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pfrederiksen/mba-calendar/internal/match"
)

var (
	frogsWolves = match.Record{
		HomeTeam: "Singing Frogs",
		AwayTeam: "Wolves",
		Location: "Hall A",
		StartRaw: "12 Mar 2024, 18:30",
	}
	wolvesFrogs = match.Record{
		HomeTeam: "Wolves",
		AwayTeam: "Singing Frogs",
		Score:    &match.Score{Home: "87", Away: "92"},
		Location: "Hall C",
		StartRaw: "5 Apr 2024, 20:15",
	}
)

func newTestBuilder(t *testing.T, cfg Config) *Builder {
	t.Helper()
	b, err := NewBuilder(cfg)
	if err != nil {
		t.Fatalf("NewBuilder() error: %v", err)
	}
	b.now = func() time.Time { return time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC) }
	return b
}

func TestBuild(t *testing.T) {
	b := newTestBuilder(t, DefaultConfig())

	feed, err := b.Build([]match.Record{frogsWolves}, "Singing Frogs")
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if feed.Name != "MBA Singing Frogs" {
		t.Errorf("Name = %q, want %q", feed.Name, "MBA Singing Frogs")
	}
	if len(feed.Events) != 1 {
		t.Fatalf("Build() produced %d events, want 1", len(feed.Events))
	}

	evt := feed.Events[0]
	warsaw := b.cfg.Location
	wantStart := time.Date(2024, time.March, 12, 18, 30, 0, 0, warsaw)
	wantEnd := time.Date(2024, time.March, 12, 20, 0, 0, 0, warsaw)

	if evt.Summary != "MBA: Singing Frogs vs Wolves" {
		t.Errorf("Summary = %q", evt.Summary)
	}
	if !evt.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", evt.Start, wantStart)
	}
	if !evt.End.Equal(wantEnd) {
		t.Errorf("End = %v, want %v", evt.End, wantEnd)
	}
	if evt.Location != "Hall A" {
		t.Errorf("Location = %q, want Hall A", evt.Location)
	}
	if evt.Description != "Singing Frogs - Wolves" {
		t.Errorf("Description = %q, want %q", evt.Description, "Singing Frogs - Wolves")
	}
}

func TestBuild_Serialize(t *testing.T) {
	b := newTestBuilder(t, DefaultConfig())

	feed, err := b.Build([]match.Record{frogsWolves, wolvesFrogs}, "Singing Frogs")
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	out := feed.Serialize()

	requiredFields := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//mba-calendar//MBA web scraper//1.0.0",
		"METHOD:PUBLISH",
		"X-WR-CALNAME:MBA Singing Frogs",
		"X-WR-TIMEZONE:Europe/Warsaw",
		"CALSCALE:GREGORIAN",
		"X-PUBLISHED-TTL:PT12H",
		"BEGIN:VEVENT",
		"UID:" + feed.Events[0].UID,
		"DTSTAMP:20240301T120000Z",
		// 18:30 CET
		"DTSTART:20240312T173000Z",
		"DTEND:20240312T190000Z",
		"SUMMARY:MBA: Singing Frogs vs Wolves",
		"LOCATION:Hall A",
		"DESCRIPTION:Singing Frogs - Wolves",
		// 20:15 CEST
		"DTSTART:20240405T181500Z",
		"DTEND:20240405T194500Z",
		"DESCRIPTION:Wolves 87 - 92 Singing Frogs",
		"END:VEVENT",
		"END:VCALENDAR",
	}

	for _, field := range requiredFields {
		if !strings.Contains(out, field) {
			t.Errorf("ICS missing required field: %s\n%s", field, out)
		}
	}

	if !strings.Contains(out, "\r\n") {
		t.Error("ICS should use \\r\\n line endings")
	}

	// Events keep input order.
	if strings.Index(out, "DTSTART:20240312") > strings.Index(out, "DTSTART:20240405") {
		t.Error("events are not in input order")
	}

	var buf bytes.Buffer
	if err := feed.SerializeTo(&buf); err != nil {
		t.Fatalf("SerializeTo() error: %v", err)
	}
	if buf.String() != out {
		t.Error("SerializeTo() output differs from Serialize()")
	}
}

func TestBuild_Duration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
	}{
		{"default", DefaultDuration},
		{"two hours", 2 * time.Hour},
	}

	records := []match.Record{frogsWolves, wolvesFrogs, frogsWolves}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Duration = tt.duration
			b := newTestBuilder(t, cfg)

			feed, err := b.Build(records, "Singing Frogs")
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			for i, evt := range feed.Events {
				if got := evt.End.Sub(evt.Start); got != tt.duration {
					t.Errorf("event %d duration = %v, want %v", i, got, tt.duration)
				}
			}
		})
	}
}

func TestBuild_FormatError(t *testing.T) {
	b := newTestBuilder(t, DefaultConfig())

	bad := frogsWolves
	bad.StartRaw = "32 Foo 2024"

	feed, err := b.Build([]match.Record{wolvesFrogs, bad}, "Singing Frogs")

	var formatErr *match.FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("Build() error = %v, want *match.FormatError", err)
	}
	if formatErr.Value != "32 Foo 2024" {
		t.Errorf("FormatError.Value = %q", formatErr.Value)
	}
	if feed != nil {
		t.Error("Build() returned a feed alongside an error")
	}
}

func TestBuild_Empty(t *testing.T) {
	b := newTestBuilder(t, DefaultConfig())

	feed, err := b.Build(nil, "Nobody")
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	out := feed.Serialize()
	if strings.Contains(out, "BEGIN:VEVENT") {
		t.Error("empty build should not contain events")
	}
	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "END:VCALENDAR") {
		t.Error("empty build should still be a calendar document")
	}
}

func TestBuild_Duplicates(t *testing.T) {
	b := newTestBuilder(t, DefaultConfig())

	feed, err := b.Build([]match.Record{frogsWolves, frogsWolves}, "Singing Frogs")
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if len(feed.Events) != 2 {
		t.Fatalf("Build() produced %d events, want 2 (no dedup)", len(feed.Events))
	}
	if feed.Events[0].UID == feed.Events[1].UID {
		t.Error("repeated matches should get distinct UIDs")
	}
	if n := strings.Count(feed.Serialize(), "BEGIN:VEVENT"); n != 2 {
		t.Errorf("serialized %d events, want 2", n)
	}
}

func TestBuild_CustomMetadata(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ProductID = "-//Example//Test//EN"
	cfg.NamePrefix = "League"
	cfg.SummaryPrefix = "LG"
	cfg.TimeZone = "UTC"
	cfg.RefreshInterval = "PT1H"
	b := newTestBuilder(t, cfg)

	feed, err := b.Build([]match.Record{frogsWolves}, "Frogs")
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	out := feed.Serialize()

	for _, field := range []string{
		"PRODID:-//Example//Test//EN",
		"X-WR-CALNAME:League Frogs",
		"X-WR-TIMEZONE:UTC",
		"X-PUBLISHED-TTL:PT1H",
		"SUMMARY:LG: Singing Frogs vs Wolves",
		"DTSTART:20240312T183000Z",
	} {
		if !strings.Contains(out, field) {
			t.Errorf("ICS missing field: %s", field)
		}
	}
}

func TestNewBuilder_Errors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeZone = "Mars/Olympus_Mons"
	if _, err := NewBuilder(cfg); err == nil {
		t.Error("NewBuilder() expected error for unknown time zone")
	}

	cfg = DefaultConfig()
	cfg.Duration = 0
	if _, err := NewBuilder(cfg); err == nil {
		t.Error("NewBuilder() expected error for zero duration")
	}
}
