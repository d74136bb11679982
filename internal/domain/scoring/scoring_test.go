package scoring_test

import (
	"context"
	"testing"

	"github.com/medalpool/podium/internal/adapters/repository"
	"github.com/medalpool/podium/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func seedMember(ctx context.Context, store *repository.MemoryStore, poolCode, username string, answers map[string]string) string {
	setID, _ := store.CreateSet(ctx, username, username+"'s picks")
	for cat, answer := range answers {
		_ = store.SavePrediction(ctx, setID, cat, answer)
	}
	_ = store.AddMember(ctx, poolCode, username, setID)
	return setID
}

func TestScore(t *testing.T) {
	Convey("Given a pool with finalized results", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore()
		scorer := scoring.NewScorer(store, store, store)

		pool, err := store.CreatePool(ctx, "Office Pool", "alice")
		So(err, ShouldBeNil)

		So(store.SaveResult(ctx, "biathlon", []string{"Norway", "France"}), ShouldBeNil)
		So(store.SaveResult(ctx, "luge", []string{"Germany"}), ShouldBeNil)

		seedMember(ctx, store, pool.Code, "alice", map[string]string{
			"biathlon": "Norway",
			"luge":     "Germany",
		})
		seedMember(ctx, store, pool.Code, "bob", map[string]string{
			"biathlon": "France",
			"luge":     "Austria",
		})
		seedMember(ctx, store, pool.Code, "carol", map[string]string{
			"biathlon": "Sweden",
			"luge":     "Austria",
		})

		Convey("When scoring the pool", func() {
			scores, err := scorer.Score(ctx, pool.Code)
			So(err, ShouldBeNil)
			So(scores, ShouldHaveLength, 3)

			Convey("Then members rank by correct count descending", func() {
				So(scores[0].Username, ShouldEqual, "alice")
				So(scores[0].Correct, ShouldEqual, 2)
				So(scores[0].Rank, ShouldEqual, 1)
				So(scores[2].Username, ShouldEqual, "carol")
				So(scores[2].Correct, ShouldEqual, 0)
			})

			Convey("And picking any tied winner scores the point", func() {
				So(scores[1].Username, ShouldEqual, "bob")
				So(scores[1].Correct, ShouldEqual, 1)
			})

			Convey("And every row carries the member's prediction count", func() {
				for _, s := range scores {
					So(s.Total, ShouldEqual, 2)
				}
			})
		})

		Convey("When two members have the same score", func() {
			seedMember(ctx, store, pool.Code, "dave", map[string]string{
				"biathlon": "France",
			})

			scores, err := scorer.Score(ctx, pool.Code)
			So(err, ShouldBeNil)

			Convey("Then they share a rank, sorted by username", func() {
				So(scores[1].Username, ShouldEqual, "bob")
				So(scores[2].Username, ShouldEqual, "dave")
				So(scores[1].Rank, ShouldEqual, 2)
				So(scores[2].Rank, ShouldEqual, 2)
				So(scores[3].Rank, ShouldEqual, 4)
			})
		})

		Convey("When the pool does not exist", func() {
			_, err := scorer.Score(ctx, "NOPOOL")
			So(err, ShouldEqual, repository.ErrNotFound)
		})
	})
}

func TestDetails(t *testing.T) {
	Convey("Given a member's prediction set", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore()
		scorer := scoring.NewScorer(store, store, store)

		setID, err := store.CreateSet(ctx, "alice", "Alice's picks")
		So(err, ShouldBeNil)
		So(store.SavePrediction(ctx, setID, "biathlon", "Norway"), ShouldBeNil)
		So(store.SavePrediction(ctx, setID, "luge", "Austria"), ShouldBeNil)
		So(store.SavePrediction(ctx, setID, "curling", "Canada"), ShouldBeNil)
		So(store.SaveResult(ctx, "biathlon", []string{"Norway"}), ShouldBeNil)
		So(store.SaveResult(ctx, "luge", []string{"Germany"}), ShouldBeNil)

		Convey("When building the breakdown", func() {
			details, err := scorer.Details(ctx, setID)
			So(err, ShouldBeNil)

			Convey("Then categories come back sorted by ID", func() {
				So(details, ShouldHaveLength, 3)
				So(details[0].CategoryID, ShouldEqual, "biathlon")
				So(details[1].CategoryID, ShouldEqual, "curling")
				So(details[2].CategoryID, ShouldEqual, "luge")
			})

			Convey("And finalized categories carry a verdict", func() {
				So(details[0].Correct, ShouldNotBeNil)
				So(*details[0].Correct, ShouldBeTrue)
				So(details[0].Winners, ShouldResemble, []string{"Norway"})
				So(details[2].Correct, ShouldNotBeNil)
				So(*details[2].Correct, ShouldBeFalse)
			})

			Convey("And unfinalized categories stay undecided", func() {
				So(details[1].Correct, ShouldBeNil)
				So(details[1].Winners, ShouldBeEmpty)
			})
		})

		Convey("When the set does not exist", func() {
			_, err := scorer.Details(ctx, "missing")
			So(err, ShouldEqual, repository.ErrNotFound)
		})
	})
}
