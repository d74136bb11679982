// Command simulate runs the engine against a synthetic mid-Games snapshot
// and prints standings, rooting advice and a pool leaderboard.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/medalpool/podium/internal/domain/schedule"
	"github.com/medalpool/podium/internal/simulate"
	"github.com/medalpool/podium/pkg/logger"
)

func main() {
	date := flag.String("date", "", "simulated now, format 2006-01-02T15:04:05 (default mid-Games)")
	seed := flag.Int64("seed", 1, "random seed for winners and predictions")
	pool := flag.String("pool", "Test Pool", "name of the seeded pool")
	verbose := flag.Bool("verbose", false, "print every rooting scenario line")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()
	_ = logger.SetLevelString("warn")

	asOf := simulate.DefaultDate()
	if *date != "" {
		t, err := time.ParseInLocation("2006-01-02T15:04:05", *date, schedule.Location())
		if err != nil {
			os.Stderr.WriteString("invalid -date: " + err.Error() + "\n")
			os.Exit(1)
		}
		asOf = t
	}

	cfg := &simulate.Config{
		AsOf:     asOf,
		Seed:     *seed,
		PoolName: *pool,
		Verbose:  *verbose,
	}

	if err := simulate.Run(context.Background(), cfg); err != nil {
		os.Stderr.WriteString("simulation failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
