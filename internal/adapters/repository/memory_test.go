package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/medalpool/podium/internal/adapters/repository"
	. "github.com/smartystreets/goconvey/convey"
)

func TestResultStore(t *testing.T) {
	Convey("Given an empty store", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore()

		Convey("When saving and reading results", func() {
			So(store.SaveResult(ctx, "biathlon", []string{"Norway", "France"}), ShouldBeNil)

			results, err := store.Results(ctx)
			So(err, ShouldBeNil)
			So(results["biathlon"], ShouldResemble, []string{"Norway", "France"})

			Convey("And a second save overwrites the first", func() {
				So(store.SaveResult(ctx, "biathlon", []string{"Norway"}), ShouldBeNil)
				results, _ := store.Results(ctx)
				So(results["biathlon"], ShouldResemble, []string{"Norway"})
			})

			Convey("And mutating the returned map does not touch the store", func() {
				results["biathlon"][0] = "Atlantis"
				fresh, _ := store.Results(ctx)
				So(fresh["biathlon"][0], ShouldEqual, "Norway")
			})
		})

		Convey("When saving with empty inputs", func() {
			So(store.SaveResult(ctx, "", []string{"Norway"}), ShouldNotBeNil)
			So(store.SaveResult(ctx, "biathlon", nil), ShouldNotBeNil)
		})

		Convey("When deleting a result", func() {
			So(store.SaveResult(ctx, "biathlon", []string{"Norway"}), ShouldBeNil)
			So(store.DeleteResult(ctx, "biathlon"), ShouldBeNil)

			results, _ := store.Results(ctx)
			So(results, ShouldBeEmpty)

			Convey("And deleting it again reports not found", func() {
				So(errors.Is(store.DeleteResult(ctx, "biathlon"), repository.ErrNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestPredictionStore(t *testing.T) {
	Convey("Given an empty store", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore()

		Convey("When creating a set and saving predictions", func() {
			setID, err := store.CreateSet(ctx, "alice", "Alice's picks")
			So(err, ShouldBeNil)
			So(setID, ShouldNotBeEmpty)

			So(store.SavePrediction(ctx, setID, "biathlon", "Norway"), ShouldBeNil)
			So(store.SavePrediction(ctx, setID, "biathlon", "France"), ShouldBeNil)

			predictions, err := store.PredictionsForSet(ctx, setID)
			So(err, ShouldBeNil)

			Convey("Then the latest answer per category wins", func() {
				So(predictions, ShouldResemble, map[string]string{"biathlon": "France"})
			})
		})

		Convey("When the set ID generator is replaced", func() {
			seeded := repository.NewMemoryStore(repository.WithIDGenerator(func() string { return "set-1" }))
			setID, err := seeded.CreateSet(ctx, "alice", "picks")
			So(err, ShouldBeNil)
			So(setID, ShouldEqual, "set-1")
		})

		Convey("When the owner is empty", func() {
			_, err := store.CreateSet(ctx, "", "nameless")
			So(err, ShouldNotBeNil)
		})

		Convey("When the set does not exist", func() {
			So(errors.Is(store.SavePrediction(ctx, "missing", "biathlon", "Norway"), repository.ErrNotFound), ShouldBeTrue)

			_, err := store.PredictionsForSet(ctx, "missing")
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestPoolStore(t *testing.T) {
	Convey("Given an empty store", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore(
			repository.WithCodeGenerator(func() string { return "AAAAAA" }),
		)

		Convey("When creating a pool", func() {
			pool, err := store.CreatePool(ctx, "Office Pool", "alice")
			So(err, ShouldBeNil)
			So(pool.Code, ShouldEqual, "AAAAAA")
			So(pool.Name, ShouldEqual, "Office Pool")

			Convey("And members join with their prediction sets", func() {
				bobSet, _ := store.CreateSet(ctx, "bob", "Bob's picks")
				aliceSet, _ := store.CreateSet(ctx, "alice", "Alice's picks")
				So(store.AddMember(ctx, pool.Code, "bob", bobSet), ShouldBeNil)
				So(store.AddMember(ctx, pool.Code, "alice", aliceSet), ShouldBeNil)

				Convey("Then the pool lists members sorted by username", func() {
					got, err := store.Pool(ctx, pool.Code)
					So(err, ShouldBeNil)
					So(got.Members, ShouldHaveLength, 2)
					So(got.Members[0].Username, ShouldEqual, "alice")
					So(got.Members[1].Username, ShouldEqual, "bob")
				})

				Convey("And assignments map usernames to set IDs", func() {
					assignments, err := store.Assignments(ctx, pool.Code)
					So(err, ShouldBeNil)
					So(assignments, ShouldResemble, map[string]string{
						"alice": aliceSet,
						"bob":   bobSet,
					})
				})
			})

			Convey("And joining with an unknown set is rejected", func() {
				err := store.AddMember(ctx, pool.Code, "mallory", "no-such-set")
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When looking up an unknown code", func() {
			_, err := store.Pool(ctx, "ZZZZZZ")
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)

			_, err = store.Assignments(ctx, "ZZZZZZ")
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)

			So(errors.Is(store.AddMember(ctx, "ZZZZZZ", "alice", "set"), repository.ErrNotFound), ShouldBeTrue)
		})

		Convey("When generated pool codes come from real UUIDs", func() {
			random := repository.NewMemoryStore()
			pool, err := random.CreatePool(ctx, "Random", "alice")
			So(err, ShouldBeNil)
			So(pool.Code, ShouldHaveLength, 6)
		})
	})
}
