package rooting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/medalpool/podium/internal/domain/schedule"
	"github.com/medalpool/podium/internal/domain/types"
)

// Scenarios renders a short human-readable status for one prediction given
// the current standing. Presentation only, it never changes feasibility.
func Scenarios(cat schedule.Category, standing types.Standing, prediction string) []string {
	switch cat.AnswerType {
	case schedule.AnswerYesNo:
		if strings.EqualFold(prediction, "yes") {
			return []string{"Rooting for this to happen!"}
		}
		return []string{"Rooting for this NOT to happen!"}
	case schedule.AnswerNumber:
		return []string{fmt.Sprintf("Rooting for exactly %s medals!", prediction)}
	}

	if len(standing.GoldCounts) == 0 {
		return []string{fmt.Sprintf("Rooting for %s to win gold medals!", prediction)}
	}

	userGolds := standing.GoldCounts[prediction]
	leaders, topGolds := leaderList(standing)

	if contains(leaders, prediction) {
		if len(leaders) == 1 {
			return soleLeaderScenarios(standing, prediction, userGolds)
		}
		return tiedLeaderScenarios(standing, prediction, leaders)
	}

	if standing.RemainingEvents > 0 {
		return behindScenarios(standing, prediction, leaders, topGolds-userGolds)
	}

	return []string{fmt.Sprintf("Mathematically eliminated, %s has too many golds.", leaders[0])}
}

func soleLeaderScenarios(standing types.Standing, prediction string, userGolds int) []string {
	runnerGolds, runners := runnersUp(standing, prediction)
	lead := userGolds - runnerGolds

	// The runner-up cannot catch up even by winning everything left. A
	// final tie still counts as a win.
	if userGolds >= runnerGolds+standing.RemainingEvents {
		return []string{"Clinched! This category is secured, no one can catch up."}
	}

	if standing.RemainingEvents == 0 {
		return []string{fmt.Sprintf("Leading by %d! All events complete, waiting for the official result.", lead)}
	}

	magic := MagicNumber(standing, prediction)

	if len(runners) == 0 {
		if magic == 0 || userGolds >= standing.RemainingEvents {
			return []string{"Dominant! Only country with golds so far, keep it up!"}
		}
		return []string{fmt.Sprintf("Leading! Only country with golds so far, win %d more to clinch.", magic)}
	}

	runnerStr := joinRunners(runners)
	switch {
	case magic == 0:
		return []string{fmt.Sprintf("Leading by %d! This one is in hand.", lead)}
	case magic == 1:
		return []string{fmt.Sprintf("Leading by %d over %s. Win 1 more gold to clinch.", lead, runnerStr)}
	default:
		return []string{fmt.Sprintf("Leading by %d over %s. Win %d more golds to clinch.", lead, runnerStr, magic)}
	}
}

func tiedLeaderScenarios(standing types.Standing, prediction string, leaders []string) []string {
	others := make([]string, 0, len(leaders)-1)
	for _, c := range leaders {
		if c != prediction {
			others = append(others, c)
		}
	}
	joined := strings.Join(others, ", ")
	if standing.RemainingEvents == 0 {
		return []string{fmt.Sprintf("Tied for the lead with %s! You win, a tie counts as a win.", joined)}
	}
	return []string{fmt.Sprintf("Tied for the lead with %s! You're winning, pull ahead or hold the tie.", joined)}
}

func behindScenarios(standing types.Standing, prediction string, leaders []string, gap int) []string {
	leaderStr := leaders[0]
	if len(leaders) > 1 {
		leaderStr = leaders[0] + " (tied)"
	}

	var out []string
	if gap == 1 {
		out = append(out, fmt.Sprintf("Need %s to win 1 more gold than %s.", prediction, leaderStr))
	} else {
		out = append(out, fmt.Sprintf("Need %s to win %d more golds than %s.", prediction, gap, leaderStr))
	}
	if standing.RemainingEvents <= gap {
		out = append(out, fmt.Sprintf("Only %d events left, near-perfect results needed!", standing.RemainingEvents))
	}
	return out
}

// leaderList returns the countries tied at the top gold count, sorted
// alphabetically.
func leaderList(standing types.Standing) ([]string, int) {
	top := maxGolds(standing)
	var leaders []string
	for country, g := range standing.GoldCounts {
		if g == top {
			leaders = append(leaders, country)
		}
	}
	sort.Strings(leaders)
	return leaders, top
}

// runnersUp returns the best gold count among non-predicted countries and
// every country holding it, sorted alphabetically. Countries with zero golds
// never appear as runners-up.
func runnersUp(standing types.Standing, prediction string) (int, []string) {
	best := 0
	var runners []string
	for country, g := range standing.GoldCounts {
		if country == prediction || g == 0 {
			continue
		}
		switch {
		case g > best:
			best = g
			runners = []string{country}
		case g == best:
			runners = append(runners, country)
		}
	}
	sort.Strings(runners)
	return best, runners
}

// joinRunners formats a runner-up list: "A", "A and B (tied)", or
// "A, B, and C (tied)".
func joinRunners(runners []string) string {
	switch len(runners) {
	case 1:
		return runners[0]
	case 2:
		return fmt.Sprintf("%s and %s (tied)", runners[0], runners[1])
	default:
		return strings.Join(runners[:len(runners)-1], ", ") + fmt.Sprintf(", and %s (tied)", runners[len(runners)-1])
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
