// Package league resolves short league names to the numeric competition ids
// used by the schedule host.
package league

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// InvalidLeagueError reports an empty or unknown league name
type InvalidLeagueError struct {
	League string
}

func (e *InvalidLeagueError) Error() string {
	return fmt.Sprintf("Invalid league `%s`.", e.League)
}

// DefaultTable returns the MBA divisions
func DefaultTable() map[string]int {
	return map[string]int{
		"halloffame":  40438,
		"allstar":     40437,
		"development": 40439,
		"aspiration":  40440,
		"recreation":  40441,
	}
}

// League is one named entry of a Table
type League struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
}

// Table maps league names to competition ids. Names are matched after
// Unicode case folding, so "HallOfFame" resolves like "halloffame".
type Table struct {
	ids   map[string]int
	names map[string]string // folded name -> configured name
}

// NewTable builds a Table from a name -> id map
func NewTable(ids map[string]int) (*Table, error) {
	t := &Table{
		ids:   make(map[string]int, len(ids)),
		names: make(map[string]string, len(ids)),
	}

	for name, id := range ids {
		if id <= 0 {
			return nil, fmt.Errorf("league %q: id must be positive, got %d", name, id)
		}
		key := t.key(name)
		if key == "" {
			return nil, fmt.Errorf("league with id %d has an empty name", id)
		}
		if prev, ok := t.names[key]; ok {
			return nil, fmt.Errorf("league %q duplicates %q", name, prev)
		}
		t.ids[key] = id
		t.names[key] = name
	}

	return t, nil
}

// key folds a league name. Casers are stateful, so each call gets its own.
func (t *Table) key(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// Resolve returns the competition id for a league name.
// A positive integer is accepted as a raw competition id.
func (t *Table) Resolve(name string) (int, error) {
	if id, ok := t.ids[t.key(name)]; ok {
		return id, nil
	}
	if id, err := strconv.Atoi(strings.TrimSpace(name)); err == nil && id > 0 {
		return id, nil
	}
	return 0, &InvalidLeagueError{League: name}
}

// Leagues returns the configured leagues sorted by name
func (t *Table) Leagues() []League {
	leagues := make([]League, 0, len(t.ids))
	for key, id := range t.ids {
		leagues = append(leagues, League{Name: t.names[key], ID: id})
	}
	sort.Slice(leagues, func(i, j int) bool {
		return leagues[i].Name < leagues[j].Name
	})
	return leagues
}
