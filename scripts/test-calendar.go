package main

import (
	"fmt"
	"os"

	"github.com/pfrederiksen/mba-calendar/internal/calendar"
	"github.com/pfrederiksen/mba-calendar/internal/match"
)

func main() {
	// Sample fixtures: one played, one upcoming
	records := []match.Record{
		{
			HomeTeam: "Wolves",
			AwayTeam: "Singing Frogs",
			Score:    &match.Score{Home: "87", Away: "92"},
			Location: "Hall C",
			StartRaw: "5 Apr 2024, 20:15",
		},
		{
			HomeTeam: "Singing Frogs",
			AwayTeam: "Lions",
			Location: "Hall A",
			StartRaw: "19 Apr 2024, 18:30",
		},
	}

	builder, err := calendar.NewBuilder(calendar.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating builder: %v\n", err)
		os.Exit(1)
	}

	feed, err := builder.Build(records, "Singing Frogs")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building calendar: %v\n", err)
		os.Exit(1)
	}
	icsContent := feed.Serialize()

	filename := "test-mba-calendar.ics"
	if err := os.WriteFile(filename, []byte(icsContent), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Generated calendar file: %s\n\n", filename)
	fmt.Println("Test it by:")
	fmt.Println("1. Open the .ics file with your calendar app (double-click)")
	fmt.Println("2. Or subscribe to `mba-calendar serve` with ?league=...&team_name=...")
	fmt.Println("\nFile contents preview:")
	fmt.Println("---")
	fmt.Println(icsContent)
}
