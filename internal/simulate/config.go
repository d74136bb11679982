// Package simulate seeds an in-process engine with a synthetic mid-Games
// snapshot, fake users, predictions and a pool, then reports standings,
// rooting advice and the leaderboard so the whole stack can be exercised
// without the upstream site.
package simulate

import (
	"time"

	"github.com/medalpool/podium/internal/domain/schedule"
)

// Default simulated date: midway through the Games.
const defaultDate = "2026-02-15T12:00:00"

// Config controls a simulation run.
type Config struct {
	// AsOf is the simulated "now"; events with an earlier gold-medal time
	// count as completed.
	AsOf time.Time

	// Seed makes winner selection and predictions reproducible.
	Seed int64

	// PoolName names the seeded pool.
	PoolName string

	// Verbose prints every rooting scenario line instead of a summary.
	Verbose bool
}

// users maps seeded usernames to how often their predictions track the
// simulated leaders. Spread out so leaderboard ranks differ.
var users = map[string]float64{
	"Alice": 0.8,
	"Bob":   0.5,
	"Carol": 0.3,
	"Dave":  0.1,
}

// predictionPool is the set of countries seeded predictions draw from.
var predictionPool = []string{
	"Norway", "Germany", "United States", "Canada", "Austria",
	"Switzerland", "Sweden", "Netherlands", "South Korea", "France",
	"Italy", "Finland", "Japan",
}

// DefaultDate parses the default simulated date in the schedule timezone.
func DefaultDate() time.Time {
	t, _ := time.ParseInLocation("2006-01-02T15:04:05", defaultDate, schedule.Location())
	return t
}
