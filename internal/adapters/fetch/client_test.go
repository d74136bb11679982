package fetch_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/medalpool/podium/internal/adapters/fetch"
	"github.com/medalpool/podium/internal/domain/medals"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClientFetchPage(t *testing.T) {
	Convey("Given an upstream server", t, func() {
		ctx := context.Background()

		Convey("When the upstream responds with the page", func() {
			var gotUA string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUA = r.Header.Get("User-Agent")
				_, _ = w.Write([]byte("<html>medals</html>"))
			}))
			defer srv.Close()

			client := fetch.NewClient(srv.URL)
			page, err := client.FetchPage(ctx)

			So(err, ShouldBeNil)
			So(page, ShouldEqual, "<html>medals</html>")

			Convey("And the request carries browser headers", func() {
				So(gotUA, ShouldContainSubstring, "Mozilla/5.0")
			})
		})

		Convey("When the upstream returns a non-200 status", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			}))
			defer srv.Close()

			_, err := fetch.NewClient(srv.URL).FetchPage(ctx)
			So(errors.Is(err, fetch.ErrFetch), ShouldBeTrue)
		})

		Convey("When the upstream is unreachable", func() {
			client := fetch.NewClient("http://127.0.0.1:1", fetch.WithTimeout(time.Second))
			_, err := client.FetchPage(ctx)
			So(errors.Is(err, fetch.ErrFetch), ShouldBeTrue)
		})
	})
}

type countingFinalizer struct {
	mu    sync.Mutex
	calls int
}

func (f *countingFinalizer) FinalizeResults(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return nil
}

func (f *countingFinalizer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestPoller(t *testing.T) {
	Convey("Given a poller over a working source", t, func() {
		ctx := context.Background()
		source := func(context.Context) (*medals.Snapshot, error) {
			return &medals.Snapshot{}, nil
		}
		cache := fetch.NewCache(source)
		finalizer := &countingFinalizer{}

		Convey("When running and stopping", func() {
			poller := fetch.NewPoller(cache, finalizer, fetch.WithInterval(time.Hour))
			go poller.Run(ctx)
			poller.Stop()

			Convey("Then the immediate first pass refreshed and finalized", func() {
				_, ok := cache.Age()
				So(ok, ShouldBeTrue)
				So(finalizer.count(), ShouldEqual, 1)
			})

			Convey("And a second Stop does not block", func() {
				poller.Stop()
			})
		})

		Convey("When the refresh fails", func() {
			failing := fetch.NewCache(func(context.Context) (*medals.Snapshot, error) {
				return nil, errors.New("upstream down")
			})
			poller := fetch.NewPoller(failing, finalizer, fetch.WithInterval(time.Hour))
			go poller.Run(ctx)
			poller.Stop()

			Convey("Then finalization still ran against the old state", func() {
				So(finalizer.count(), ShouldEqual, 1)
			})
		})
	})
}
