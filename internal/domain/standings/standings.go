// Package standings derives per-category medal standings from the latest
// normalized snapshot and the canonical schedule.
package standings

import (
	"context"
	"sort"
	"time"

	"github.com/medalpool/podium/internal/domain/match"
	"github.com/medalpool/podium/internal/domain/medals"
	"github.com/medalpool/podium/internal/domain/schedule"
	"github.com/medalpool/podium/internal/domain/types"
	"github.com/medalpool/podium/pkg/logger"
	"github.com/medalpool/podium/pkg/metrics"
)

// overallRemainingLimit caps the remaining-event list shown for the
// cross-sport overall category.
const overallRemainingLimit = 10

// SnapshotProvider supplies the latest upstream snapshot, or nil when no
// data has been fetched yet.
type SnapshotProvider interface {
	Get(ctx context.Context) *medals.Snapshot
}

// Calculator computes category standings. All methods are pure over the
// supplied snapshot; the same snapshot always yields the same standing.
type Calculator struct {
	snapshots SnapshotProvider
	norm      *medals.Normalizer
	now       func() time.Time
	log       logger.Logger
}

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithClock replaces the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(log logger.Logger) Option {
	return func(c *Calculator) {
		if log != nil {
			c.log = log
		}
	}
}

// NewCalculator creates a Calculator.
func NewCalculator(snapshots SnapshotProvider, norm *medals.Normalizer, opts ...Option) *Calculator {
	c := &Calculator{
		snapshots: snapshots,
		norm:      norm,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StandingFor computes the current standing for a category.
//
// Sport categories aggregate gold counts from the per-event results; tied
// winners each contribute one gold to their country. The overall category
// takes gold counts straight from the medal table totals. Featured
// categories fall through to the authoritative result path and get an empty
// standing here; that is a scope boundary, not a missing feature.
func (c *Calculator) StandingFor(ctx context.Context, cat schedule.Category) types.Standing {
	start := time.Now()
	defer func() {
		metrics.RecordStandingsComputation()
		metrics.RecordStandingsLatency(float64(time.Since(start).Milliseconds()))
	}()

	standing := types.Standing{
		CategoryID: cat.ID,
		GoldCounts: map[string]int{},
	}

	snap := c.snapshots.Get(ctx)

	switch cat.Kind {
	case schedule.KindSport:
		results := c.norm.SportResults(ctx, snap, cat.Sport)
		for _, medalsFor := range results {
			for _, winner := range medalsFor.Gold {
				standing.GoldCounts[winner]++
			}
		}
		standing.CompletedEvents = len(results)
		c.checkInvariant(ctx, cat, results)

	case schedule.KindOverall:
		for _, row := range c.norm.Table(ctx, snap) {
			standing.GoldCounts[row.Country] = row.Gold
		}
		standing.CompletedEvents = len(c.norm.Medalists(ctx, snap))

	case schedule.KindFeatured:
		// Resolved only from stored authoritative results.
		return standing
	}

	remaining := cat.EventCount - standing.CompletedEvents
	if remaining < 0 {
		remaining = 0
	}
	standing.RemainingEvents = remaining
	standing.IsComplete = standing.CompletedEvents >= cat.EventCount
	return standing
}

// checkInvariant verifies that the matcher accounts for every scraped event:
// every upstream result for the sport should match a distinct schedule
// entry, so matched + unmatched-schedule must equal the event count. A
// violation signals a matcher regression and is logged loudly, never
// silently clamped.
func (c *Calculator) checkInvariant(ctx context.Context, cat schedule.Category, results map[string]medals.EventMedals) {
	unmatched := len(c.unmatchedEvents(cat, results))
	if len(results)+unmatched <= cat.EventCount {
		return
	}
	metrics.RecordInvariantViolation()
	if c.log != nil {
		c.log.Error(ctx, "standings invariant violated: completed+remaining exceeds event count",
			logger.String("category", cat.ID),
			logger.Int("completed", len(results)),
			logger.Int("unmatchedSchedule", unmatched),
			logger.Int("eventCount", cat.EventCount),
		)
	}
}

// RemainingEvents lists the not-yet-decided events for a category, sorted by
// gold-medal time.
//
// Sport categories filter their schedule subset through the matcher,
// consuming each upstream result at most once (first match wins, no double
// counting). The overall category shows the next few future events across
// all sports. Featured categories have no event list.
func (c *Calculator) RemainingEvents(ctx context.Context, cat schedule.Category) []schedule.Event {
	snap := c.snapshots.Get(ctx)

	switch cat.Kind {
	case schedule.KindSport:
		results := c.norm.SportResults(ctx, snap, cat.Sport)
		return c.unmatchedEvents(cat, results)

	case schedule.KindOverall:
		now := c.now().In(schedule.Location())
		var future []schedule.Event
		for _, e := range schedule.All() {
			if e.GoldMedal.After(now) {
				future = append(future, e)
			}
		}
		future = schedule.SortedByGoldMedal(future)
		if len(future) > overallRemainingLimit {
			future = future[:overallRemainingLimit]
		}
		return future
	}
	return nil
}

// unmatchedEvents returns the category's schedule events that no upstream
// result matched. Each upstream result name is consumed by the first
// schedule event it matches.
func (c *Calculator) unmatchedEvents(cat schedule.Category, results map[string]medals.EventMedals) []schedule.Event {
	resultNames := make([]string, 0, len(results))
	for name := range results {
		resultNames = append(resultNames, name)
	}
	sort.Strings(resultNames)
	consumed := make([]bool, len(resultNames))

	var remaining []schedule.Event
	for _, event := range schedule.ForSport(cat.Sport) {
		matched := false
		for i, name := range resultNames {
			if consumed[i] {
				continue
			}
			if match.Matches(name, event.Name) {
				consumed[i] = true
				matched = true
				break
			}
		}
		if !matched {
			remaining = append(remaining, event)
		}
	}
	return schedule.SortedByGoldMedal(remaining)
}

// Leaders returns the countries tied for the highest gold count, sorted
// alphabetically, along with that count. An empty standing yields nil.
func Leaders(standing types.Standing) ([]string, int) {
	maxGolds := 0
	for _, g := range standing.GoldCounts {
		if g > maxGolds {
			maxGolds = g
		}
	}
	if maxGolds == 0 && len(standing.GoldCounts) == 0 {
		return nil, 0
	}
	var leaders []string
	for country, g := range standing.GoldCounts {
		if g == maxGolds {
			leaders = append(leaders, country)
		}
	}
	sort.Strings(leaders)
	return leaders, maxGolds
}
