package schedule

import (
	"sort"
	"strings"
	"time"
)

// Kind discriminates how a category's outcome is determined.
type Kind int

const (
	// KindSport aggregates gold medals across one sport's events.
	KindSport Kind = iota
	// KindOverall aggregates gold medals across the whole games.
	KindOverall
	// KindFeatured is a single featured event or prop bet, resolved from the
	// authoritative result store rather than computed standings.
	KindFeatured
)

// AnswerType discriminates what a prediction for the category looks like.
type AnswerType int

const (
	AnswerCountry AnswerType = iota
	AnswerYesNo
	AnswerNumber
)

// Category is a grouping of events that users predict a single outcome for.
// Categories are derived from the event table on demand and never stored.
type Category struct {
	ID          string
	Sport       string
	Kind        Kind
	AnswerType  AnswerType
	DisplayName string
	EventCount  int
	FirstEvent  time.Time
	LastEvent   time.Time
}

// IsOverall reports whether this is the cross-sport aggregate category.
func (c Category) IsOverall() bool { return c.Kind == KindOverall }

// IsFeatured reports whether this category is resolved only from stored
// authoritative results.
func (c Category) IsFeatured() bool { return c.Kind == KindFeatured }

// SportID converts a sport display name to a category ID fragment,
// e.g. "Cross-Country Skiing" -> "cross_country_skiing".
func SportID(sport string) string {
	s := strings.ToLower(sport)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Categories returns all prediction categories: one per sport, the overall
// aggregate, and the featured/prop categories.
func Categories() []Category {
	bySport := map[string][]Event{}
	for _, e := range events {
		bySport[e.Sport] = append(bySport[e.Sport], e)
	}

	sports := make([]string, 0, len(bySport))
	for s := range bySport {
		sports = append(sports, s)
	}
	sort.Strings(sports)

	out := make([]Category, 0, len(sports)+1+len(featured))
	for _, sport := range sports {
		evs := bySport[sport]
		first, last := dateSpan(evs)
		out = append(out, Category{
			ID:          SportID(sport),
			Sport:       sport,
			Kind:        KindSport,
			AnswerType:  AnswerCountry,
			DisplayName: "Most Golds in " + sport,
			EventCount:  len(evs),
			FirstEvent:  first,
			LastEvent:   last,
		})
	}

	first, last := dateSpan(events)
	out = append(out, Category{
		ID:          "overall",
		Sport:       "Overall",
		Kind:        KindOverall,
		AnswerType:  AnswerCountry,
		DisplayName: "Most Gold Medals Overall",
		EventCount:  len(events),
		FirstEvent:  first,
		LastEvent:   last,
	})

	out = append(out, featured...)
	return out
}

// CategoryByID returns the category with the given ID, or false.
func CategoryByID(id string) (Category, bool) {
	for _, c := range Categories() {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

func dateSpan(evs []Event) (first, last time.Time) {
	for _, e := range evs {
		if first.IsZero() || e.FirstRound.Before(first) {
			first = e.FirstRound
		}
		if e.GoldMedal.After(last) {
			last = e.GoldMedal
		}
	}
	return first, last
}

// featured lists categories whose outcome cannot be derived from the medal
// standings alone. Event counts of 1 keep the date span meaningful; prop bets
// without a single event carry the span of the sport they depend on.
var featured = []Category{
	{
		ID:          "featured_mens_ice_hockey_gold",
		Sport:       "Ice Hockey",
		Kind:        KindFeatured,
		AnswerType:  AnswerCountry,
		DisplayName: "Men's Ice Hockey Gold",
		EventCount:  1,
		FirstEvent:  feb(11, 12, 10),
		LastEvent:   feb(22, 12, 10),
	},
	{
		ID:          "prop_womens_figure_skating_country",
		Sport:       "Figure Skating",
		Kind:        KindFeatured,
		AnswerType:  AnswerCountry,
		DisplayName: "Women's Figure Skating Singles Winner",
		EventCount:  1,
		FirstEvent:  feb(17, 10, 0),
		LastEvent:   feb(19, 18, 30),
	},
	{
		ID:          "prop_usa_figure_skating_medals",
		Sport:       "Figure Skating",
		Kind:        KindFeatured,
		AnswerType:  AnswerNumber,
		DisplayName: "Total USA Figure Skating Medals",
		EventCount:  5,
		FirstEvent:  feb(6, 10, 0),
		LastEvent:   feb(19, 18, 30),
	},
	{
		ID:          "prop_vonn_gold",
		Sport:       "Alpine Skiing",
		Kind:        KindFeatured,
		AnswerType:  AnswerYesNo,
		DisplayName: "Lindsey Vonn Wins a Gold Medal",
		EventCount:  1,
		FirstEvent:  feb(7, 11, 0),
		LastEvent:   feb(21, 13, 30),
	},
	{
		ID:          "prop_most_individual_medals",
		Sport:       "Overall",
		Kind:        KindFeatured,
		AnswerType:  AnswerCountry,
		DisplayName: "Country of the Most-Decorated Athlete",
		EventCount:  1,
		FirstEvent:  feb(6, 9, 30),
		LastEvent:   feb(22, 12, 30),
	},
}
