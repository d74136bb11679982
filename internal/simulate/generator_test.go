package simulate_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/medalpool/podium/internal/domain/medals"
	"github.com/medalpool/podium/internal/domain/schedule"
	"github.com/medalpool/podium/internal/simulate"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBuildSnapshot(t *testing.T) {
	Convey("Given a mid-games cutoff", t, func() {
		asOf := time.Date(2026, time.February, 12, 0, 0, 0, 0, schedule.Location())

		Convey("When building with the same seed twice", func() {
			first := simulate.BuildSnapshot(asOf, rand.New(rand.NewSource(7)))
			second := simulate.BuildSnapshot(asOf, rand.New(rand.NewSource(7)))

			Convey("Then the output is identical", func() {
				So(second, ShouldResemble, first)
			})
		})

		Convey("When building with different seeds", func() {
			first := simulate.BuildSnapshot(asOf, rand.New(rand.NewSource(1)))
			second := simulate.BuildSnapshot(asOf, rand.New(rand.NewSource(2)))

			So(second, ShouldNotResemble, first)
		})

		Convey("When counting podiums", func() {
			snap := simulate.BuildSnapshot(asOf, rand.New(rand.NewSource(7)))

			decided := 0
			for _, ev := range schedule.All() {
				if ev.GoldMedal.Before(asOf) {
					decided++
				}
			}

			golds, totals := 0, 0
			for _, entry := range snap.MedalsTable {
				golds += entry.MedalsNumber[0].Gold
				totals += entry.MedalsNumber[0].Total
			}

			Convey("Then every decided event has exactly one gold and a full podium", func() {
				So(golds, ShouldEqual, decided)
				So(totals, ShouldEqual, 3*decided)
			})

			Convey("And no event awards two medals to one country", func() {
				for _, entry := range snap.MedalsTable {
					for _, d := range entry.Disciplines {
						seen := map[string]bool{}
						for _, w := range d.MedalWinners {
							So(seen[w.EventCode], ShouldBeFalse)
							seen[w.EventCode] = true
						}
					}
				}
			})
		})

		Convey("When nothing has happened yet", func() {
			opening := time.Date(2026, time.February, 6, 0, 0, 0, 0, schedule.Location())
			snap := simulate.BuildSnapshot(opening, rand.New(rand.NewSource(7)))
			So(snap.MedalsTable, ShouldBeEmpty)
		})

		Convey("When a snapshot feeds the normalizer", func() {
			snap := simulate.BuildSnapshot(asOf, rand.New(rand.NewSource(7)))
			for _, entry := range snap.MedalsTable {
				So(entry.MedalsNumber[0].Type, ShouldEqual, "Total")
				for _, d := range entry.Disciplines {
					So(d.Name, ShouldNotBeEmpty)
					for _, w := range d.MedalWinners {
						So(w.MedalType, ShouldBeIn,
							medals.MedalTypeGold, medals.MedalTypeSilver, medals.MedalTypeBronze)
					}
				}
			}
		})
	})
}
