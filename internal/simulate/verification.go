package simulate

import (
	"context"
	"errors"
	"fmt"

	app "github.com/medalpool/podium/internal/app"
	"github.com/medalpool/podium/internal/domain/rooting"
)

// Verify checks the invariants the derived views must hold: event
// accounting never exceeds a category's event count, completed categories
// have a feasible leader, and the leaderboard is ordered by score then
// username. Violations are collected rather than failing fast.
func Verify(ctx context.Context, svc *app.Service, poolCode string) error {
	var problems []error

	for _, cat := range svc.Categories(ctx) {
		if cat.IsFeatured() {
			continue
		}
		standing, err := svc.StandingFor(ctx, cat.ID)
		if err != nil {
			problems = append(problems, fmt.Errorf("standing %s: %w", cat.ID, err))
			continue
		}
		remaining, err := svc.RemainingEventsFor(ctx, cat.ID)
		if err != nil {
			problems = append(problems, fmt.Errorf("remaining %s: %w", cat.ID, err))
			continue
		}

		if standing.CompletedEvents+standing.RemainingEvents != cat.EventCount && !standing.IsComplete {
			problems = append(problems, fmt.Errorf(
				"%s: completed %d + remaining %d != event count %d",
				cat.ID, standing.CompletedEvents, standing.RemainingEvents, cat.EventCount))
		}
		if !cat.IsOverall() && standing.CompletedEvents+len(remaining) > cat.EventCount {
			problems = append(problems, fmt.Errorf(
				"%s: completed %d + unmatched schedule %d exceeds event count %d",
				cat.ID, standing.CompletedEvents, len(remaining), cat.EventCount))
		}

		// A completed category's leader must be feasible for itself.
		if standing.IsComplete {
			for country, g := range standing.GoldCounts {
				if g == 0 {
					continue
				}
				feasible := rooting.Feasible(standing, country)
				leader := isTopCount(standing.GoldCounts, g)
				if feasible != leader {
					problems = append(problems, fmt.Errorf(
						"%s: feasibility for %s is %v but leadership is %v",
						cat.ID, country, feasible, leader))
				}
			}
		}
	}

	scores, err := svc.ScorePool(ctx, poolCode)
	if err != nil {
		problems = append(problems, fmt.Errorf("leaderboard: %w", err))
	}
	for i := 1; i < len(scores); i++ {
		prev, cur := scores[i-1], scores[i]
		if cur.Correct > prev.Correct {
			problems = append(problems, fmt.Errorf(
				"leaderboard out of order at rank %d: %d > %d", i+1, cur.Correct, prev.Correct))
		}
		if cur.Correct == prev.Correct && cur.Username < prev.Username {
			problems = append(problems, fmt.Errorf(
				"leaderboard tie-break out of order at rank %d: %s before %s", i+1, prev.Username, cur.Username))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("verification failed: %w", errors.Join(problems...))
	}
	fmt.Println("\nverification passed")
	return nil
}

func isTopCount(counts map[string]int, g int) bool {
	for _, other := range counts {
		if other > g {
			return false
		}
	}
	return true
}
