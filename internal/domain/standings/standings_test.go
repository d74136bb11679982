package standings_test

import (
	"context"
	"testing"
	"time"

	"github.com/medalpool/podium/internal/domain/country"
	"github.com/medalpool/podium/internal/domain/medals"
	"github.com/medalpool/podium/internal/domain/schedule"
	"github.com/medalpool/podium/internal/domain/standings"
	"github.com/medalpool/podium/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

type staticProvider struct {
	snap *medals.Snapshot
}

func (p *staticProvider) Get(context.Context) *medals.Snapshot { return p.snap }

func snapshotWith(winners ...medals.MedalWinner) *medals.Snapshot {
	byOrg := map[string]*medals.TableEntry{}
	var order []string
	for _, w := range winners {
		entry, ok := byOrg[w.Organisation]
		if !ok {
			entry = &medals.TableEntry{
				Organisation: w.Organisation,
				MedalsNumber: []medals.MedalCount{{Type: "Total"}},
				Disciplines:  []medals.Discipline{{Code: "BTH", Name: "Biathlon"}},
			}
			byOrg[w.Organisation] = entry
			order = append(order, w.Organisation)
		}
		entry.Disciplines[0].MedalWinners = append(entry.Disciplines[0].MedalWinners, w)
		if w.MedalType == medals.MedalTypeGold {
			entry.MedalsNumber[0].Gold++
		}
		entry.MedalsNumber[0].Total++
	}
	snap := &medals.Snapshot{}
	for _, org := range order {
		snap.MedalsTable = append(snap.MedalsTable, *byOrg[org])
	}
	return snap
}

func gold(eventCode, event, org string) medals.MedalWinner {
	return medals.MedalWinner{
		EventCode:        eventCode,
		EventDescription: event,
		MedalType:        medals.MedalTypeGold,
		CompetitorName:   "Team " + org,
		Organisation:     org,
	}
}

func newCalculator(snap *medals.Snapshot) *standings.Calculator {
	norm := medals.NewNormalizer(country.NewInMemoryResolver())
	return standings.NewCalculator(&staticProvider{snap: snap}, norm)
}

func TestStandingFor(t *testing.T) {
	Convey("Given a biathlon category", t, func() {
		cat, ok := schedule.CategoryByID("biathlon")
		So(ok, ShouldBeTrue)
		ctx := context.Background()

		Convey("When one event has a sole gold winner", func() {
			calc := newCalculator(snapshotWith(
				gold("BTH001", "Men's 10km Sprint", "FRA"),
			))
			standing := calc.StandingFor(ctx, cat)

			Convey("Then the winner gets one gold and accounting adds up", func() {
				So(standing.GoldCounts["France"], ShouldEqual, 1)
				So(standing.CompletedEvents, ShouldEqual, 1)
				So(standing.RemainingEvents, ShouldEqual, cat.EventCount-1)
				So(standing.IsComplete, ShouldBeFalse)
			})
		})

		Convey("When an event's gold is tied", func() {
			calc := newCalculator(snapshotWith(
				gold("BTH001", "Men's 10km Sprint", "FRA"),
				gold("BTH001", "Men's 10km Sprint", "NOR"),
			))
			standing := calc.StandingFor(ctx, cat)

			Convey("Then each tied country is credited one gold for one event", func() {
				So(standing.GoldCounts["France"], ShouldEqual, 1)
				So(standing.GoldCounts["Norway"], ShouldEqual, 1)
				So(standing.CompletedEvents, ShouldEqual, 1)
			})
		})

		Convey("When there is no snapshot yet", func() {
			calc := newCalculator(nil)
			standing := calc.StandingFor(ctx, cat)

			Convey("Then the standing is empty, not an error", func() {
				So(standing.GoldCounts, ShouldBeEmpty)
				So(standing.CompletedEvents, ShouldEqual, 0)
				So(standing.RemainingEvents, ShouldEqual, cat.EventCount)
			})
		})

		Convey("When recomputing from the same snapshot", func() {
			snap := snapshotWith(gold("BTH001", "Men's 10km Sprint", "FRA"))
			calc := newCalculator(snap)

			first := calc.StandingFor(ctx, cat)
			second := calc.StandingFor(ctx, cat)

			Convey("Then nothing accumulates between computations", func() {
				So(second, ShouldResemble, first)
			})
		})
	})

	Convey("Given the overall category", t, func() {
		cat, ok := schedule.CategoryByID("overall")
		So(ok, ShouldBeTrue)

		calc := newCalculator(snapshotWith(
			gold("BTH001", "Men's 10km Sprint", "FRA"),
			gold("BTH004", "Women's 7.5km Sprint", "FRA"),
			gold("BTH002", "Men's 20km Individual", "NOR"),
		))
		standing := calc.StandingFor(context.Background(), cat)

		Convey("Then gold counts come from the table totals", func() {
			So(standing.GoldCounts["France"], ShouldEqual, 2)
			So(standing.GoldCounts["Norway"], ShouldEqual, 1)
		})

		Convey("And completed events count resolved medalist records", func() {
			So(standing.CompletedEvents, ShouldEqual, 3)
		})
	})

	Convey("Given a featured category", t, func() {
		cat, ok := schedule.CategoryByID("featured_mens_ice_hockey_gold")
		So(ok, ShouldBeTrue)

		calc := newCalculator(snapshotWith(gold("BTH001", "Men's 10km Sprint", "FRA")))
		standing := calc.StandingFor(context.Background(), cat)

		Convey("Then the calculator returns an empty standing", func() {
			So(standing.GoldCounts, ShouldBeEmpty)
			So(standing.CompletedEvents, ShouldEqual, 0)
		})
	})
}

func TestRemainingEvents(t *testing.T) {
	Convey("Given a biathlon category with one decided event", t, func() {
		cat, _ := schedule.CategoryByID("biathlon")
		calc := newCalculator(snapshotWith(gold("BTH001", "Men's 10km Sprint", "FRA")))
		ctx := context.Background()

		remaining := calc.RemainingEvents(ctx, cat)

		Convey("Then the decided event is excluded", func() {
			So(remaining, ShouldHaveLength, cat.EventCount-1)
			for _, ev := range remaining {
				So(ev.Name, ShouldNotEqual, "Men's 10km Sprint")
			}
		})

		Convey("And the list is sorted by gold-medal time", func() {
			for i := 1; i < len(remaining); i++ {
				So(remaining[i].GoldMedal.Before(remaining[i-1].GoldMedal), ShouldBeFalse)
			}
		})
	})

	Convey("Given the overall category", t, func() {
		cat, _ := schedule.CategoryByID("overall")
		midGames := time.Date(2026, 2, 15, 12, 0, 0, 0, schedule.Location())
		norm := medals.NewNormalizer(country.NewInMemoryResolver())
		calc := standings.NewCalculator(&staticProvider{}, norm,
			standings.WithClock(func() time.Time { return midGames }),
		)

		remaining := calc.RemainingEvents(context.Background(), cat)

		Convey("Then it lists the next ten future events", func() {
			So(remaining, ShouldHaveLength, 10)
			for _, ev := range remaining {
				So(ev.GoldMedal.After(midGames), ShouldBeTrue)
			}
		})
	})

	Convey("Given a featured category", t, func() {
		cat, _ := schedule.CategoryByID("prop_vonn_gold")
		calc := newCalculator(nil)

		So(calc.RemainingEvents(context.Background(), cat), ShouldBeEmpty)
	})
}

func TestLeaders(t *testing.T) {
	Convey("Given gold count standings", t, func() {
		Convey("A sole leader is returned alone", func() {
			leaders, golds := standings.Leaders(types.Standing{GoldCounts: map[string]int{"Norway": 5, "Austria": 3}})
			So(leaders, ShouldResemble, []string{"Norway"})
			So(golds, ShouldEqual, 5)
		})

		Convey("Tied leaders come back sorted alphabetically", func() {
			leaders, golds := standings.Leaders(types.Standing{GoldCounts: map[string]int{"Sweden": 2, "Norway": 2, "Italy": 1}})
			So(leaders, ShouldResemble, []string{"Norway", "Sweden"})
			So(golds, ShouldEqual, 2)
		})

		Convey("An empty standing has no leaders", func() {
			leaders, golds := standings.Leaders(types.Standing{GoldCounts: map[string]int{}})
			So(leaders, ShouldBeEmpty)
			So(golds, ShouldEqual, 0)
		})
	})
}
