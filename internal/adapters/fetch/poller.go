package fetch

import (
	"context"
	"time"

	"github.com/medalpool/podium/pkg/logger"
	"github.com/medalpool/podium/pkg/metrics"
)

const defaultPollInterval = 10 * time.Minute

// Finalizer runs the result-finalization pass over the latest snapshot:
// saving authoritative results for completed categories and retracting
// premature ones.
type Finalizer interface {
	FinalizeResults(ctx context.Context) error
}

// Poller periodically refreshes the snapshot cache and runs finalization.
// One pass failing never stops the loop; upstream flakiness is expected.
type Poller struct {
	cache     *Cache
	finalizer Finalizer
	interval  time.Duration
	log       logger.Logger

	shutdown chan struct{}
	done     chan struct{}
}

// PollerOption applies a configuration option to the Poller.
type PollerOption func(*Poller)

// WithInterval sets the refresh interval.
func WithInterval(d time.Duration) PollerOption {
	return func(p *Poller) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithPollerLogger sets a custom logger.
func WithPollerLogger(log logger.Logger) PollerOption {
	return func(p *Poller) {
		if log != nil {
			p.log = log
		}
	}
}

// NewPoller creates a Poller over the given cache and finalizer.
func NewPoller(cache *Cache, finalizer Finalizer, opts ...PollerOption) *Poller {
	p := &Poller{
		cache:     cache,
		finalizer: finalizer,
		interval:  defaultPollInterval,
		shutdown:  make(chan struct{}),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes the poll loop until ctx is canceled or Stop is called. It
// runs one pass immediately so a fresh process has data without waiting a
// full interval.
func (p *Poller) Run(ctx context.Context) {
	defer close(p.done)

	p.pass(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.shutdown:
			return
		case <-ticker.C:
			p.pass(ctx)
		}
	}
}

// Stop signals the loop to exit and waits for the in-flight pass.
func (p *Poller) Stop() {
	select {
	case <-p.shutdown:
	default:
		close(p.shutdown)
	}
	<-p.done
}

func (p *Poller) pass(ctx context.Context) {
	start := time.Now()

	if err := p.cache.Refresh(ctx); err != nil {
		metrics.RecordPollerError()
		if p.log != nil {
			p.log.Warn(ctx, "poller refresh failed", logger.Error(err))
		}
		// Finalization still runs; it sees the previous snapshot and will
		// not retract anything based on transient fetch failures.
	}

	if p.finalizer != nil {
		if err := p.finalizer.FinalizeResults(ctx); err != nil {
			metrics.RecordPollerError()
			if p.log != nil {
				p.log.Warn(ctx, "result finalization failed", logger.Error(err))
			}
			return
		}
	}

	metrics.RecordPollerRun()
	if p.log != nil {
		p.log.Debug(ctx, "poller pass complete", logger.Duration("took", time.Since(start)))
	}
}
