// Package rooting turns a user's predictions and the current standings into
// ordered rooting recommendations with clinch arithmetic and scenario text.
package rooting

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/medalpool/podium/internal/adapters/repository"
	"github.com/medalpool/podium/internal/domain/schedule"
	"github.com/medalpool/podium/internal/domain/standings"
	"github.com/medalpool/podium/internal/domain/types"
	"github.com/medalpool/podium/pkg/logger"
)

// defaultMaxEvents caps the remaining-event list attached to each entry.
const defaultMaxEvents = 10

// Engine produces per-user rooting recommendations. Every answer is derived
// fresh from the latest standing, nothing is cached here.
type Engine struct {
	calc        *standings.Calculator
	predictions repository.PredictionStore
	results     repository.ResultStore
	now         func() time.Time
	maxEvents   int
	log         logger.Logger
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithClock replaces the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithMaxEvents limits how many remaining events each entry lists.
func WithMaxEvents(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxEvents = n
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(log logger.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// NewEngine creates an Engine.
func NewEngine(calc *standings.Calculator, predictions repository.PredictionStore, results repository.ResultStore, opts ...Option) *Engine {
	e := &Engine{
		calc:        calc,
		predictions: predictions,
		results:     results,
		now:         time.Now,
		maxEvents:   defaultMaxEvents,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// InfoForSet returns rooting recommendations for every live prediction in a
// set, sorted by urgency bucket and then by next gold-medal time.
//
// Categories are skipped when already finalized, when no event has completed
// yet (nothing to root for), or when every event is done but the official
// result has not been recorded.
func (e *Engine) InfoForSet(ctx context.Context, setID string) ([]types.RootingInfo, error) {
	predictions, err := e.predictions.PredictionsForSet(ctx, setID)
	if err != nil {
		return nil, err
	}
	finalized, err := e.results.Results(ctx)
	if err != nil {
		return nil, err
	}

	categoryIDs := make([]string, 0, len(predictions))
	for id := range predictions {
		categoryIDs = append(categoryIDs, id)
	}
	sort.Strings(categoryIDs)

	var infos []types.RootingInfo
	for _, categoryID := range categoryIDs {
		prediction := predictions[categoryID]

		if _, done := finalized[categoryID]; done {
			continue
		}
		cat, ok := schedule.CategoryByID(categoryID)
		if !ok {
			if e.log != nil {
				e.log.Warn(ctx, "prediction references unknown category", logger.String("category", categoryID))
			}
			continue
		}

		standing := e.calc.StandingFor(ctx, cat)
		if standing.CompletedEvents == 0 && !cat.IsFeatured() {
			continue
		}

		remaining := e.calc.RemainingEvents(ctx, cat)
		if len(remaining) == 0 && !standing.IsComplete && !cat.IsFeatured() {
			// Every event matched but the official result is pending.
			continue
		}

		info := types.RootingInfo{
			CategoryID:  categoryID,
			DisplayName: cat.DisplayName,
			Prediction:  prediction,
			Remaining:   e.remainingEvents(remaining),
			Scenarios:   Scenarios(cat, standing, prediction),
			IsPossible:  Feasible(standing, prediction),
			Urgency:     e.urgency(remaining),
		}
		if leaders, _ := standings.Leaders(standing); len(leaders) > 0 {
			info.CurrentLeader = strings.Join(leaders, ", ")
			info.UserIsLeading = contains(leaders, prediction)
		}
		if cat.IsFeatured() {
			// Featured picks are settled from stored results only; they stay
			// possible until an official result says otherwise.
			info.IsPossible = true
		}
		infos = append(infos, info)
	}

	sort.SliceStable(infos, func(i, j int) bool {
		oi, oj := urgencyOrder(infos[i].Urgency), urgencyOrder(infos[j].Urgency)
		if oi != oj {
			return oi < oj
		}
		return nextEventTime(infos[i]).Before(nextEventTime(infos[j]))
	})
	return infos, nil
}

func (e *Engine) remainingEvents(events []schedule.Event) []types.RemainingEvent {
	if len(events) > e.maxEvents {
		events = events[:e.maxEvents]
	}
	out := make([]types.RemainingEvent, 0, len(events))
	for _, ev := range events {
		out = append(out, types.RemainingEvent{
			Sport:     ev.Sport,
			Name:      ev.Name,
			GoldMedal: ev.GoldMedal,
		})
	}
	return out
}

// urgency buckets an entry by its next gold-medal time in the host
// timezone: today, within seven days, or later.
func (e *Engine) urgency(events []schedule.Event) string {
	if len(events) == 0 {
		return types.UrgencyLater
	}
	now := e.now().In(schedule.Location())
	next := events[0].GoldMedal.In(schedule.Location())

	ny, nm, nd := now.Date()
	ey, em, ed := next.Date()
	if ny == ey && nm == em && nd == ed {
		return types.UrgencyToday
	}
	if !next.After(now.AddDate(0, 0, 7)) {
		return types.UrgencyThisWeek
	}
	return types.UrgencyLater
}

func urgencyOrder(u string) int {
	switch u {
	case types.UrgencyToday:
		return 0
	case types.UrgencyThisWeek:
		return 1
	default:
		return 2
	}
}

func nextEventTime(info types.RootingInfo) time.Time {
	if len(info.Remaining) == 0 {
		// Sorts after every dated entry.
		return time.Unix(1<<62, 0)
	}
	return info.Remaining[0].GoldMedal
}
