package medals_test

import (
	"context"
	"testing"

	"github.com/medalpool/podium/internal/domain/country"
	"github.com/medalpool/podium/internal/domain/medals"
	. "github.com/smartystreets/goconvey/convey"
)

func winner(eventCode, event, medalType, athlete, org string) medals.MedalWinner {
	return medals.MedalWinner{
		EventCode:        eventCode,
		EventDescription: event,
		MedalType:        medalType,
		CompetitorName:   athlete,
		Organisation:     org,
	}
}

// testSnapshot has two biathlon events: a decided sprint with a gold tie and
// a pursuit that only has silver so far.
func testSnapshot() *medals.Snapshot {
	return &medals.Snapshot{
		MedalsTable: []medals.TableEntry{
			{
				Organisation: "NOR",
				Description:  "Norway",
				MedalsNumber: []medals.MedalCount{{Type: "Total", Gold: 1, Silver: 1, Total: 2}},
				Disciplines: []medals.Discipline{{
					Code: "BTH", Name: "Biathlon", Gold: 1,
					MedalWinners: []medals.MedalWinner{
						winner("BTH001", "Men's 10km Sprint", medals.MedalTypeGold, "J. Boe", "NOR"),
						winner("BTH002", "Men's 12.5km Pursuit", medals.MedalTypeSilver, "T. Boe", "NOR"),
					},
				}},
			},
			{
				Organisation: "FRA",
				Description:  "France",
				MedalsNumber: []medals.MedalCount{{Type: "Total", Gold: 1, Total: 1}},
				Disciplines: []medals.Discipline{{
					Code: "BTH", Name: "Biathlon", Gold: 1,
					MedalWinners: []medals.MedalWinner{
						winner("BTH001", "Men's 10km Sprint", medals.MedalTypeGold, "Q. Fillon Maillet", "FRA"),
					},
				}},
			},
			{
				Organisation: "XTR",
				Description:  "Testonia",
				MedalsNumber: []medals.MedalCount{{Type: "Total"}},
			},
		},
	}
}

func TestTable(t *testing.T) {
	Convey("Given a raw snapshot", t, func() {
		resolver := country.NewInMemoryResolver()
		n := medals.NewNormalizer(resolver)
		ctx := context.Background()

		Convey("When building the medal table", func() {
			rows := n.Table(ctx, testSnapshot())

			Convey("Then countries sort by gold, silver, bronze descending", func() {
				So(rows, ShouldHaveLength, 2)
				So(rows[0].Country, ShouldEqual, "Norway")
				So(rows[0].Gold, ShouldEqual, 1)
				So(rows[0].Silver, ShouldEqual, 1)
				So(rows[1].Country, ShouldEqual, "France")
			})

			Convey("And zero-total rows are omitted", func() {
				for _, row := range rows {
					So(row.IOC, ShouldNotEqual, "XTR")
				}
			})

			Convey("And every organisation code was offered to the resolver", func() {
				So(resolver.Resolve("XTR"), ShouldEqual, "Testonia")
			})
		})

		Convey("When the snapshot is nil", func() {
			So(n.Table(ctx, nil), ShouldBeEmpty)
		})

		Convey("When normalizing the same snapshot twice", func() {
			first := n.Table(ctx, testSnapshot())
			second := n.Table(ctx, testSnapshot())

			Convey("Then the outputs are identical", func() {
				So(second, ShouldResemble, first)
			})
		})
	})
}

func TestMedalists(t *testing.T) {
	Convey("Given a raw snapshot", t, func() {
		n := medals.NewNormalizer(country.NewInMemoryResolver())
		ctx := context.Background()

		Convey("When flattening to per-event records", func() {
			records := n.Medalists(ctx, testSnapshot())

			Convey("Then the gold tie is merged into one record", func() {
				So(records, ShouldHaveLength, 1)
				So(records[0].Event, ShouldEqual, "Men's 10km Sprint")
				So(records[0].Sport, ShouldEqual, "Biathlon")
				So(records[0].Gold, ShouldHaveLength, 2)
			})

			Convey("And events without a gold are omitted entirely", func() {
				for _, rec := range records {
					So(rec.Event, ShouldNotEqual, "Men's 12.5km Pursuit")
				}
			})
		})

		Convey("When the snapshot is nil", func() {
			So(n.Medalists(ctx, nil), ShouldBeEmpty)
		})
	})
}

func TestSportResults(t *testing.T) {
	Convey("Given a raw snapshot", t, func() {
		n := medals.NewNormalizer(country.NewInMemoryResolver())
		ctx := context.Background()

		Convey("When filtering by sport", func() {
			results := n.SportResults(ctx, testSnapshot(), "Biathlon")

			Convey("Then the decided event appears with resolved tied winners", func() {
				So(results, ShouldContainKey, "Men's 10km Sprint")
				So(results["Men's 10km Sprint"].Gold, ShouldResemble, []string{"Norway", "France"})
			})
		})

		Convey("When the sport name differs only in case", func() {
			So(n.SportResults(ctx, testSnapshot(), "biathlon"), ShouldNotBeEmpty)
		})

		Convey("When filtering an unrepresented sport", func() {
			So(n.SportResults(ctx, testSnapshot(), "Curling"), ShouldBeEmpty)
		})
	})
}
