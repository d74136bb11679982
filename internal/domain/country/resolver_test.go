package country_test

import (
	"context"
	"testing"

	"github.com/medalpool/podium/internal/domain/country"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInMemoryResolver(t *testing.T) {
	Convey("Given a fresh resolver", t, func() {
		r := country.NewInMemoryResolver()
		ctx := context.Background()

		Convey("When resolving a curated code", func() {
			So(r.Resolve("NOR"), ShouldEqual, "Norway")
			So(r.Resolve("USA"), ShouldEqual, "United States")
			So(r.Resolve("GER"), ShouldEqual, "Germany")
		})

		Convey("When resolving an unknown code", func() {
			Convey("Then the raw code comes back unchanged", func() {
				So(r.Resolve("ZZX"), ShouldEqual, "ZZX")
			})
		})

		Convey("When learning a new code", func() {
			r.Learn(ctx, "ZZX", "Zedland")

			Convey("Then it resolves to the learned name", func() {
				So(r.Resolve("ZZX"), ShouldEqual, "Zedland")
				So(r.LearnedCount(), ShouldEqual, 1)
			})

			Convey("And a later observation never overwrites it", func() {
				r.Learn(ctx, "ZZX", "Garbled Name")
				So(r.Resolve("ZZX"), ShouldEqual, "Zedland")
				So(r.LearnedCount(), ShouldEqual, 1)
			})
		})

		Convey("When learning a code already in the curated table", func() {
			r.Learn(ctx, "NOR", "Not Norway")

			Convey("Then the curated name wins and nothing is cached", func() {
				So(r.Resolve("NOR"), ShouldEqual, "Norway")
				So(r.LearnedCount(), ShouldEqual, 0)
			})
		})

		Convey("When learning with empty inputs", func() {
			r.Learn(ctx, "", "Somewhere")
			r.Learn(ctx, "ABC", "")

			Convey("Then nothing is recorded", func() {
				So(r.LearnedCount(), ShouldEqual, 0)
			})
		})
	})

	Convey("Given a resolver seeded for tests", t, func() {
		r := country.NewInMemoryResolver(country.WithSeed(map[string]string{"QQQ": "Testland"}))
		So(r.Resolve("QQQ"), ShouldEqual, "Testland")
		So(r.LearnedCount(), ShouldEqual, 1)
	})
}

func TestFlag(t *testing.T) {
	Convey("Given flag glyph lookup", t, func() {
		Convey("Known IOC codes map through the ISO override table", func() {
			So(country.Flag("GER"), ShouldEqual, "\U0001F1E9\U0001F1EA")
			So(country.Flag("NOR"), ShouldEqual, "\U0001F1F3\U0001F1F4")
		})

		Convey("Neutral athletes get the white flag", func() {
			So(country.Flag("AIN"), ShouldEqual, "\U0001F3F3\uFE0F")
		})

		Convey("Codes without overrides fall back to their first two letters", func() {
			So(country.Flag("FR"), ShouldEqual, "\U0001F1EB\U0001F1F7")
		})

		Convey("Invalid input yields no glyph", func() {
			So(country.Flag("1"), ShouldEqual, "")
		})
	})
}
