package main

import "github.com/pfrederiksen/mba-calendar/internal/cli"

func main() {
	cli.Execute()
}
