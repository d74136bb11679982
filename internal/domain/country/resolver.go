// Package country maps committee codes to canonical country names and flags.
//
// The static table is curated; codes discovered at runtime from upstream data
// are kept in a learned cache that never overrides curated or earlier-learned
// entries. Upstream descriptions are free text, so first-seen wins.
package country

import (
	"context"
	"sync"

	"github.com/medalpool/podium/pkg/logger"
	"github.com/medalpool/podium/pkg/metrics"
)

// Resolver resolves committee codes to country names.
type Resolver interface {
	// Resolve returns the country name for a code. Unknown codes are
	// returned unchanged; resolution never fails.
	Resolve(code string) string

	// Learn records a code-to-name mapping discovered at runtime. It is a
	// no-op when the code is already known, statically or learned.
	Learn(ctx context.Context, code, description string)

	// LearnedCount returns the number of runtime-learned codes.
	LearnedCount() int
}

// InMemoryResolver implements Resolver with the curated table plus a
// process-lifetime learned cache. Safe for concurrent use.
type InMemoryResolver struct {
	mu      sync.RWMutex
	learned map[string]string
	log     logger.Logger
}

// Option applies a configuration option to the InMemoryResolver.
type Option func(*InMemoryResolver)

// WithLogger sets a custom logger.
func WithLogger(log logger.Logger) Option {
	return func(r *InMemoryResolver) {
		if log != nil {
			r.log = log
		}
	}
}

// WithSeed pre-populates the learned cache, mainly for tests.
func WithSeed(seed map[string]string) Option {
	return func(r *InMemoryResolver) {
		for code, name := range seed {
			r.learned[code] = name
		}
	}
}

// NewInMemoryResolver creates a resolver with an empty learned cache.
func NewInMemoryResolver(opts ...Option) *InMemoryResolver {
	r := &InMemoryResolver{
		learned: make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the country name for a committee code.
func (r *InMemoryResolver) Resolve(code string) string {
	if name, ok := staticCodes[code]; ok {
		return name
	}
	r.mu.RLock()
	name, ok := r.learned[code]
	r.mu.RUnlock()
	if ok {
		return name
	}
	return code
}

// Learn caches a code discovered at runtime. Known codes are never replaced.
func (r *InMemoryResolver) Learn(ctx context.Context, code, description string) {
	if code == "" || description == "" {
		return
	}
	if _, ok := staticCodes[code]; ok {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.learned[code]; ok {
		return
	}
	r.learned[code] = description
	metrics.UpdateLearnedCodes(len(r.learned))
	if r.log != nil {
		r.log.Info(ctx, "learned committee code",
			logger.String("code", code),
			logger.String("country", description),
		)
	}
}

// LearnedCount returns the number of runtime-learned codes.
func (r *InMemoryResolver) LearnedCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.learned)
}
