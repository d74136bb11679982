// Package schedule holds the canonical event schedule and the prediction
// categories derived from it. The event table is the source of truth for
// which events exist and when; it is never mutated after package init.
package schedule

import (
	"sort"
	"time"
)

// Gender of an event or category.
type Gender string

const (
	Men   Gender = "Men"
	Women Gender = "Women"
	Mixed Gender = "Mixed"
)

// Event is one canonical medal event.
type Event struct {
	Sport      string
	Name       string
	Gender     Gender
	FirstRound time.Time
	GoldMedal  time.Time
}

// ID returns the unique identifier for the event.
func (e Event) ID() string {
	return e.Sport + " - " + e.Name
}

// All returns every canonical event, in schedule order.
func All() []Event {
	out := make([]Event, len(events))
	copy(out, events)
	return out
}

// ForSport returns all events of one sport, sorted by gold-medal time.
func ForSport(sport string) []Event {
	var out []Event
	for _, e := range events {
		if e.Sport == sport {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GoldMedal.Before(out[j].GoldMedal) })
	return out
}

// Sports returns the sorted list of sports present in the schedule.
func Sports() []string {
	seen := map[string]bool{}
	var out []string
	for _, e := range events {
		if !seen[e.Sport] {
			seen[e.Sport] = true
			out = append(out, e.Sport)
		}
	}
	sort.Strings(out)
	return out
}

// SortedByGoldMedal returns events sorted by gold-medal time ascending.
func SortedByGoldMedal(in []Event) []Event {
	out := make([]Event, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool { return out[i].GoldMedal.Before(out[j].GoldMedal) })
	return out
}

// Countries returns the country names available for predictions.
func Countries() []string {
	out := make([]string, len(countries))
	copy(out, countries)
	return out
}
