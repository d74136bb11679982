package rooting

import "github.com/medalpool/podium/internal/domain/types"

// Feasible reports whether a predicted country can still finish with at
// least a share of the most golds. A tie for the lead counts as a win.
func Feasible(standing types.Standing, prediction string) bool {
	if standing.IsComplete || standing.RemainingEvents == 0 {
		if len(standing.GoldCounts) == 0 {
			return false
		}
		return standing.GoldCounts[prediction] == maxGolds(standing)
	}

	// Best case: the predicted country wins every remaining event.
	bestCase := standing.GoldCounts[prediction] + standing.RemainingEvents
	return bestCase >= bestRival(standing, prediction)
}

// MagicNumber returns how many of the remaining events the predicted country
// must win to guarantee at least a tie for the lead, assuming the best rival
// wins everything else. Zero means the category is clinched. A value above
// RemainingEvents means clinching is impossible and the pick can only win by
// staying ahead.
func MagicNumber(standing types.Standing, prediction string) int {
	n := bestRival(standing, prediction) + standing.RemainingEvents - standing.GoldCounts[prediction]
	if n < 0 {
		return 0
	}
	return n
}

// maxGolds returns the highest gold count in the standing.
func maxGolds(standing types.Standing) int {
	best := 0
	for _, g := range standing.GoldCounts {
		if g > best {
			best = g
		}
	}
	return best
}

// bestRival returns the highest gold count among countries other than the
// predicted one.
func bestRival(standing types.Standing, prediction string) int {
	best := 0
	for country, g := range standing.GoldCounts {
		if country != prediction && g > best {
			best = g
		}
	}
	return best
}
