package fetch_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medalpool/podium/internal/adapters/fetch"
	"github.com/medalpool/podium/internal/domain/medals"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCache(t *testing.T) {
	Convey("Given a snapshot cache over a counting source", t, func() {
		ctx := context.Background()
		now := time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC)
		clock := func() time.Time { return now }

		calls := 0
		var sourceErr error
		source := func(context.Context) (*medals.Snapshot, error) {
			calls++
			if sourceErr != nil {
				return nil, sourceErr
			}
			return &medals.Snapshot{MedalsTable: []medals.TableEntry{{Organisation: "NOR"}}}, nil
		}

		cache := fetch.NewCache(source, fetch.WithTTL(time.Minute), fetch.WithClock(clock))

		Convey("When getting within the TTL", func() {
			first := cache.Get(ctx)
			now = now.Add(30 * time.Second)
			second := cache.Get(ctx)

			Convey("Then the source is hit only once", func() {
				So(first, ShouldNotBeNil)
				So(second, ShouldEqual, first)
				So(calls, ShouldEqual, 1)
			})
		})

		Convey("When the TTL expires", func() {
			cache.Get(ctx)
			now = now.Add(2 * time.Minute)
			cache.Get(ctx)

			Convey("Then the snapshot is refetched", func() {
				So(calls, ShouldEqual, 2)
			})
		})

		Convey("When a refresh fails after a good fetch", func() {
			good := cache.Get(ctx)
			now = now.Add(2 * time.Minute)
			sourceErr = errors.New("upstream down")
			stale := cache.Get(ctx)

			Convey("Then the stale snapshot is served, not the error", func() {
				So(stale, ShouldEqual, good)
			})
		})

		Convey("When no fetch has ever succeeded", func() {
			sourceErr = errors.New("upstream down")

			Convey("Then Get returns nil and Age reports empty", func() {
				So(cache.Get(ctx), ShouldBeNil)
				_, ok := cache.Age()
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When invalidating", func() {
			cache.Get(ctx)
			cache.Invalidate()
			cache.Get(ctx)

			Convey("Then the next Get refetches immediately", func() {
				So(calls, ShouldEqual, 2)
			})
		})

		Convey("When forcing a refresh inside the TTL", func() {
			cache.Get(ctx)
			So(cache.Refresh(ctx), ShouldBeNil)
			So(calls, ShouldEqual, 2)

			Convey("And a failed forced refresh reports the error", func() {
				sourceErr = errors.New("upstream down")
				So(cache.Refresh(ctx), ShouldNotBeNil)
				So(cache.Get(ctx), ShouldNotBeNil)
			})
		})

		Convey("When reading the snapshot age", func() {
			cache.Get(ctx)
			now = now.Add(45 * time.Second)

			age, ok := cache.Age()
			So(ok, ShouldBeTrue)
			So(age, ShouldEqual, 45*time.Second)
		})
	})
}
