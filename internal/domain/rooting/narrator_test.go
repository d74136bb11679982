package rooting_test

import (
	"testing"

	"github.com/medalpool/podium/internal/domain/rooting"
	"github.com/medalpool/podium/internal/domain/schedule"
	. "github.com/smartystreets/goconvey/convey"
)

func countryCategory() schedule.Category {
	cat, _ := schedule.CategoryByID("biathlon")
	return cat
}

func TestScenarios(t *testing.T) {
	Convey("Given the scenario narrator", t, func() {
		cat := countryCategory()

		Convey("When no gold has been won yet", func() {
			s := standing(map[string]int{}, 11, false)
			So(rooting.Scenarios(cat, s, "Norway"), ShouldResemble,
				[]string{"Rooting for Norway to win gold medals!"})
		})

		Convey("When the pick has clinched", func() {
			s := standing(map[string]int{"Norway": 5, "Austria": 3}, 2, false)
			lines := rooting.Scenarios(cat, s, "Norway")
			So(lines, ShouldHaveLength, 1)
			So(lines[0], ShouldContainSubstring, "Clinched!")
		})

		Convey("When the pick leads and needs one more win", func() {
			s := standing(map[string]int{"Norway": 4, "Austria": 3}, 2, false)
			lines := rooting.Scenarios(cat, s, "Norway")
			So(lines[0], ShouldContainSubstring, "Leading by 1 over Austria")
			So(lines[0], ShouldContainSubstring, "Win 1 more gold to clinch")
		})

		Convey("When the pick leads with several wins still required", func() {
			s := standing(map[string]int{"Norway": 4, "Austria": 3}, 5, false)
			lines := rooting.Scenarios(cat, s, "Norway")
			So(lines[0], ShouldEqual, "Leading by 1 over Austria. Win 4 more golds to clinch.")
		})

		Convey("When the pick is the only country with golds", func() {
			Convey("And its lead covers the remaining events", func() {
				s := standing(map[string]int{"Norway": 6}, 5, false)
				So(rooting.Scenarios(cat, s, "Norway")[0], ShouldContainSubstring, "Dominant!")
			})

			Convey("And it still needs wins to clinch", func() {
				s := standing(map[string]int{"Norway": 2}, 5, false)
				lines := rooting.Scenarios(cat, s, "Norway")
				So(lines[0], ShouldContainSubstring, "Only country with golds so far")
				So(lines[0], ShouldContainSubstring, "win 3 more to clinch")
			})
		})

		Convey("When runners-up are tied", func() {
			Convey("Two runners-up read as a pair", func() {
				s := standing(map[string]int{"Norway": 4, "Austria": 3, "Sweden": 3}, 3, false)
				So(rooting.Scenarios(cat, s, "Norway")[0],
					ShouldContainSubstring, "Austria and Sweden (tied)")
			})

			Convey("Three or more use an enumerated list", func() {
				s := standing(map[string]int{"Norway": 4, "Austria": 3, "Sweden": 3, "Italy": 3}, 3, false)
				So(rooting.Scenarios(cat, s, "Norway")[0],
					ShouldContainSubstring, "Austria, Italy, and Sweden (tied)")
			})
		})

		Convey("When the pick is tied for the lead", func() {
			Convey("With events remaining", func() {
				s := standing(map[string]int{"Norway": 3, "Sweden": 3}, 2, false)
				lines := rooting.Scenarios(cat, s, "Norway")
				So(lines[0], ShouldContainSubstring, "Tied for the lead with Sweden")
				So(lines[0], ShouldContainSubstring, "pull ahead or hold the tie")
			})

			Convey("With everything decided", func() {
				s := standing(map[string]int{"Norway": 3, "Sweden": 3}, 0, false)
				So(rooting.Scenarios(cat, s, "Norway")[0],
					ShouldContainSubstring, "a tie counts as a win")
			})
		})

		Convey("When the pick trails but is still alive", func() {
			s := standing(map[string]int{"Norway": 5, "Austria": 3}, 4, false)
			lines := rooting.Scenarios(cat, s, "Austria")
			So(lines[0], ShouldContainSubstring, "Need Austria to win 2 more golds than Norway")

			Convey("And a tight race adds an urgency warning", func() {
				tight := standing(map[string]int{"Norway": 5, "Austria": 3}, 2, false)
				warned := rooting.Scenarios(cat, tight, "Austria")
				So(warned, ShouldHaveLength, 2)
				So(warned[1], ShouldContainSubstring, "near-perfect results")
			})
		})

		Convey("When the pick is eliminated", func() {
			s := standing(map[string]int{"Norway": 5, "Austria": 3}, 0, false)
			So(rooting.Scenarios(cat, s, "Austria")[0],
				ShouldContainSubstring, "Mathematically eliminated")
		})

		Convey("When the category is a yes/no prop", func() {
			prop, _ := schedule.CategoryByID("prop_vonn_gold")
			s := standing(map[string]int{}, 0, false)
			So(rooting.Scenarios(prop, s, "Yes"), ShouldResemble,
				[]string{"Rooting for this to happen!"})
			So(rooting.Scenarios(prop, s, "No"), ShouldResemble,
				[]string{"Rooting for this NOT to happen!"})
		})

		Convey("When the category asks for a number", func() {
			prop, _ := schedule.CategoryByID("prop_usa_figure_skating_medals")
			s := standing(map[string]int{}, 0, false)
			So(rooting.Scenarios(prop, s, "4"), ShouldResemble,
				[]string{"Rooting for exactly 4 medals!"})
		})
	})
}
