package simulate

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"time"

	"github.com/medalpool/podium/internal/adapters/fetch"
	app "github.com/medalpool/podium/internal/app"
	"github.com/medalpool/podium/internal/domain/medals"
	"github.com/medalpool/podium/internal/domain/schedule"
	"github.com/medalpool/podium/pkg/logger"
)

// Run executes a complete simulation: synthesize a snapshot, seed users and
// a pool, auto-finalize, then print and verify the derived views.
func Run(ctx context.Context, cfg *Config) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	snap := BuildSnapshot(cfg.AsOf, rng)

	log := logger.Get().Named("simulate")
	log.Info(ctx, "built synthetic snapshot",
		logger.Time("asOf", cfg.AsOf),
		logger.Int("countries", len(snap.MedalsTable)),
	)

	svc := app.New(
		app.WithLogger(log),
		app.WithSnapshotSource(staticSource(snap)),
		app.WithClock(func() time.Time { return cfg.AsOf }),
	)
	if err := svc.Start(ctx); err != nil {
		return fmt.Errorf("start engine: %w", err)
	}
	defer svc.Stop()

	setIDs, err := seedUsers(ctx, svc, rng)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	pool, err := svc.CreatePool(ctx, cfg.PoolName, "Alice")
	if err != nil {
		return fmt.Errorf("create pool: %w", err)
	}
	for username, setID := range setIDs {
		if err := svc.AddPoolMember(ctx, pool.Code, username, setID); err != nil {
			return fmt.Errorf("add member %s: %w", username, err)
		}
	}

	if err := svc.FinalizeResults(ctx); err != nil {
		return fmt.Errorf("finalize results: %w", err)
	}

	printReport(ctx, svc, cfg, pool.Code, setIDs["Alice"])

	return Verify(ctx, svc, pool.Code)
}

// staticSource always serves the same snapshot.
func staticSource(snap *medals.Snapshot) fetch.Source {
	return func(context.Context) (*medals.Snapshot, error) {
		return snap, nil
	}
}

// seedUsers creates one prediction set per user, biased toward the current
// leaders so leaderboard scores spread out.
func seedUsers(ctx context.Context, svc *app.Service, rng *rand.Rand) (map[string]string, error) {
	names := make([]string, 0, len(users))
	for name := range users {
		names = append(names, name)
	}
	sort.Strings(names)

	setIDs := map[string]string{}
	for _, username := range names {
		setID, err := svc.CreatePredictionSet(ctx, username, username+"'s Picks")
		if err != nil {
			return nil, err
		}
		setIDs[username] = setID

		for _, cat := range svc.Categories(ctx) {
			answer := pickAnswer(ctx, svc, cat, users[username], rng)
			if err := svc.SavePrediction(ctx, setID, cat.ID, answer); err != nil {
				return nil, err
			}
		}
	}
	return setIDs, nil
}

func pickAnswer(ctx context.Context, svc *app.Service, cat schedule.Category, accuracy float64, rng *rand.Rand) string {
	switch cat.AnswerType {
	case schedule.AnswerYesNo:
		if rng.Intn(2) == 0 {
			return "Yes"
		}
		return "No"
	case schedule.AnswerNumber:
		return strconv.Itoa(rng.Intn(7))
	}

	if rng.Float64() < accuracy {
		if standing, err := svc.StandingFor(ctx, cat.ID); err == nil {
			best, leader := 0, ""
			for country, g := range standing.GoldCounts {
				if g > best || (g == best && country < leader) {
					best, leader = g, country
				}
			}
			if leader != "" {
				return leader
			}
		}
	}
	return predictionPool[rng.Intn(len(predictionPool))]
}

func printReport(ctx context.Context, svc *app.Service, cfg *Config, poolCode, aliceSet string) {
	fmt.Printf("== Medal table (as of %s) ==\n", cfg.AsOf.Format("2006-01-02 15:04"))
	for i, row := range svc.MedalTable(ctx) {
		fmt.Printf("%2d. %s %-20s G:%-2d S:%-2d B:%-2d T:%d\n",
			i+1, row.Flag, row.Country, row.Gold, row.Silver, row.Bronze, row.Total)
	}

	fmt.Println("\n== Category standings ==")
	for _, cat := range svc.Categories(ctx) {
		if cat.IsFeatured() {
			continue
		}
		standing, err := svc.StandingFor(ctx, cat.ID)
		if err != nil {
			continue
		}
		fmt.Printf("%-28s completed %d/%d", cat.ID, standing.CompletedEvents, cat.EventCount)
		if standing.IsComplete {
			fmt.Print("  [complete]")
		}
		fmt.Println()
	}

	fmt.Println("\n== Rooting info for Alice ==")
	infos, err := svc.RootingInfoForSet(ctx, aliceSet)
	if err != nil {
		fmt.Println("error:", err)
	}
	for _, info := range infos {
		fmt.Printf("[%s] %s -> %s (possible=%v)\n", info.Urgency, info.DisplayName, info.Prediction, info.IsPossible)
		if cfg.Verbose {
			for _, s := range info.Scenarios {
				fmt.Println("   ", s)
			}
		}
	}

	fmt.Println("\n== Leaderboard ==")
	scores, err := svc.ScorePool(ctx, poolCode)
	if err != nil {
		fmt.Println("error:", err)
	}
	for _, s := range scores {
		fmt.Printf("%d. %-8s %d/%d correct\n", s.Rank, s.Username, s.Correct, s.Total)
	}
}
