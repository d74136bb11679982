// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the snapshot poller.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/medalpool/podium/internal/adapters/fetch"
	"github.com/medalpool/podium/internal/adapters/repository"
	"github.com/medalpool/podium/internal/domain/country"
	"github.com/medalpool/podium/internal/domain/medals"
	"github.com/medalpool/podium/internal/domain/rooting"
	"github.com/medalpool/podium/internal/domain/schedule"
	"github.com/medalpool/podium/internal/domain/scoring"
	"github.com/medalpool/podium/internal/domain/standings"
	"github.com/medalpool/podium/internal/domain/types"
	"github.com/medalpool/podium/pkg/logger"
	"github.com/medalpool/podium/pkg/metrics"
)

// Stats is a point-in-time view of the engine's state.
type Stats struct {
	SnapshotAgeSeconds  float64 `json:"snapshot_age_seconds"`
	HasSnapshot         bool    `json:"has_snapshot"`
	LearnedCountryCodes int     `json:"learned_country_codes"`
	Categories          int     `json:"categories"`
	FinalizedResults    int     `json:"finalized_results"`
	ScheduledEvents     int     `json:"scheduled_events"`
}

// Service wires the domain components together and implements the API
// dependencies for the prediction pool engine.
type Service struct {
	mu sync.RWMutex

	// Core components
	resolver    country.Resolver
	normalizer  *medals.Normalizer
	client      *fetch.Client
	source      fetch.Source
	cache       *fetch.Cache
	calculator  *standings.Calculator
	rooting     *rooting.Engine
	scorer      *scoring.Scorer
	results     repository.ResultStore
	predictions repository.PredictionStore
	pools       repository.PoolStore

	// Configuration
	medalsURL       string
	fetchTimeout    time.Duration
	cacheTTL        time.Duration
	maxRootingItems int
	now             func() time.Time

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithMedalsURL sets the upstream medals page URL.
func WithMedalsURL(url string) Option {
	return func(s *Service) {
		if url != "" {
			s.medalsURL = url
		}
	}
}

// WithFetchTimeout sets the upstream fetch timeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.fetchTimeout = d
		}
	}
}

// WithCacheTTL sets how long a fetched snapshot stays fresh.
func WithCacheTTL(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.cacheTTL = d
		}
	}
}

// WithMaxRootingEvents caps the remaining-event list per rooting entry.
func WithMaxRootingEvents(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxRootingItems = n
		}
	}
}

// WithStores replaces the repositories, for tests.
func WithStores(results repository.ResultStore, predictions repository.PredictionStore, pools repository.PoolStore) Option {
	return func(s *Service) {
		s.results = results
		s.predictions = predictions
		s.pools = pools
	}
}

// WithSnapshotSource replaces the upstream fetch with a custom source, for
// tests and simulation.
func WithSnapshotSource(source fetch.Source) Option {
	return func(s *Service) {
		if source != nil {
			s.source = source
		}
	}
}

// WithClock replaces the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		medalsURL:       "https://www.olympics.com/en/milano-cortina-2026/medals",
		fetchTimeout:    20 * time.Second,
		cacheTTL:        10 * time.Minute,
		maxRootingItems: 10,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the component graph. Idempotent.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting podium engine...")

	if s.resolver == nil {
		s.resolver = country.NewInMemoryResolver(country.WithLogger(s.logger.Named("country")))
	}
	s.normalizer = medals.NewNormalizer(s.resolver)

	if s.results == nil {
		store := repository.NewMemoryStore()
		s.results = store
		s.predictions = store
		s.pools = store
	}

	if s.source == nil {
		s.client = fetch.NewClient(s.medalsURL,
			fetch.WithTimeout(s.fetchTimeout),
			fetch.WithClientLogger(s.logger.Named("fetch")),
		)
		s.source = s.snapshotSource()
	}
	s.cache = fetch.NewCache(s.source,
		fetch.WithTTL(s.cacheTTL),
		fetch.WithCacheLogger(s.logger.Named("cache")),
	)

	s.calculator = standings.NewCalculator(s.cache, s.normalizer,
		standings.WithClock(s.now),
		standings.WithLogger(s.logger.Named("standings")),
	)
	s.rooting = rooting.NewEngine(s.calculator, s.predictions, s.results,
		rooting.WithClock(s.now),
		rooting.WithMaxEvents(s.maxRootingItems),
		rooting.WithLogger(s.logger.Named("rooting")),
	)
	s.scorer = scoring.NewScorer(s.pools, s.predictions, s.results,
		scoring.WithLogger(s.logger.Named("scoring")),
	)

	s.started = true
	s.logger.Info(ctx, "podium engine started",
		logger.String("medalsURL", s.medalsURL),
		logger.Duration("cacheTTL", s.cacheTTL),
		logger.Int("scheduledEvents", len(schedule.All())),
	)
	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "podium engine stopped")
}

// Cache exposes the snapshot cache for the background poller.
func (s *Service) Cache() *fetch.Cache {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache
}

// snapshotSource fetches and extracts one upstream snapshot.
func (s *Service) snapshotSource() fetch.Source {
	return func(ctx context.Context) (*medals.Snapshot, error) {
		page, err := s.client.FetchPage(ctx)
		if err != nil {
			return nil, err
		}
		return fetch.ExtractSnapshot(page)
	}
}

// MedalTable returns the current country medal table, best first.
func (s *Service) MedalTable(ctx context.Context) []medals.TableRow {
	return s.normalizer.Table(ctx, s.cache.Get(ctx))
}

// Medalists returns every resolved event result in the current snapshot.
func (s *Service) Medalists(ctx context.Context) []medals.Medalist {
	return s.normalizer.Medalists(ctx, s.cache.Get(ctx))
}

// Categories lists every prediction category.
func (s *Service) Categories(_ context.Context) []schedule.Category {
	return schedule.Categories()
}

// StandingFor computes the current standing for a category.
func (s *Service) StandingFor(ctx context.Context, categoryID string) (types.Standing, error) {
	cat, ok := schedule.CategoryByID(categoryID)
	if !ok {
		return types.Standing{}, fmt.Errorf("%w: %s", ErrUnknownCategory, categoryID)
	}
	return s.calculator.StandingFor(ctx, cat), nil
}

// RemainingEventsFor lists the not-yet-decided events for a category.
func (s *Service) RemainingEventsFor(ctx context.Context, categoryID string) ([]schedule.Event, error) {
	cat, ok := schedule.CategoryByID(categoryID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, categoryID)
	}
	return s.calculator.RemainingEvents(ctx, cat), nil
}

// RootingInfoForSet returns ordered rooting recommendations for a set.
func (s *Service) RootingInfoForSet(ctx context.Context, setID string) ([]types.RootingInfo, error) {
	return s.rooting.InfoForSet(ctx, setID)
}

// ScorePool returns the ranked leaderboard for a pool.
func (s *Service) ScorePool(ctx context.Context, poolCode string) ([]types.UserScore, error) {
	return s.scorer.Score(ctx, poolCode)
}

// ScoreDetails returns a prediction set's per-category breakdown.
func (s *Service) ScoreDetails(ctx context.Context, setID string) ([]scoring.Detail, error) {
	return s.scorer.Details(ctx, setID)
}

// Results returns all finalized category outcomes.
func (s *Service) Results(ctx context.Context) (map[string][]string, error) {
	return s.results.Results(ctx)
}

// SaveResult records an authoritative category outcome.
func (s *Service) SaveResult(ctx context.Context, categoryID string, winners []string) error {
	if _, ok := schedule.CategoryByID(categoryID); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, categoryID)
	}
	if len(winners) == 0 {
		return fmt.Errorf("%w: winners required", ErrInvalidInput)
	}
	return s.results.SaveResult(ctx, categoryID, winners)
}

// DeleteResult retracts a category outcome.
func (s *Service) DeleteResult(ctx context.Context, categoryID string) error {
	return s.results.DeleteResult(ctx, categoryID)
}

// CreatePredictionSet creates an empty prediction set and returns its ID.
func (s *Service) CreatePredictionSet(ctx context.Context, owner, name string) (string, error) {
	if owner == "" {
		return "", fmt.Errorf("%w: owner required", ErrInvalidInput)
	}
	return s.predictions.CreateSet(ctx, owner, name)
}

// SavePrediction records one category prediction in a set.
func (s *Service) SavePrediction(ctx context.Context, setID, categoryID, answer string) error {
	if _, ok := schedule.CategoryByID(categoryID); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, categoryID)
	}
	if answer == "" {
		return fmt.Errorf("%w: answer required", ErrInvalidInput)
	}
	return s.predictions.SavePrediction(ctx, setID, categoryID, answer)
}

// CreatePool creates a pool and returns it with a generated join code.
func (s *Service) CreatePool(ctx context.Context, name, createdBy string) (repository.Pool, error) {
	if name == "" {
		return repository.Pool{}, fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	return s.pools.CreatePool(ctx, name, createdBy)
}

// PoolByCode returns a pool with its members.
func (s *Service) PoolByCode(ctx context.Context, code string) (repository.Pool, error) {
	return s.pools.Pool(ctx, code)
}

// AddPoolMember adds a participant with their prediction set assignment.
func (s *Service) AddPoolMember(ctx context.Context, code, username, setID string) error {
	if username == "" {
		return fmt.Errorf("%w: username required", ErrInvalidInput)
	}
	return s.pools.AddMember(ctx, code, username, setID)
}

// Stats returns current engine statistics.
func (s *Service) Stats(ctx context.Context) Stats {
	st := Stats{
		LearnedCountryCodes: s.resolver.LearnedCount(),
		Categories:          len(schedule.Categories()),
		ScheduledEvents:     len(schedule.All()),
	}
	if age, ok := s.cache.Age(); ok {
		st.HasSnapshot = true
		st.SnapshotAgeSeconds = age.Seconds()
		metrics.UpdateSnapshotAge(age.Seconds())
	}
	if results, err := s.results.Results(ctx); err == nil {
		st.FinalizedResults = len(results)
	}
	return st
}

// GetStats implements the API stats provider.
func (s *Service) GetStats(ctx context.Context) map[string]interface{} {
	st := s.Stats(ctx)
	return map[string]interface{}{
		"has_snapshot":          st.HasSnapshot,
		"snapshot_age_seconds":  st.SnapshotAgeSeconds,
		"learned_country_codes": st.LearnedCountryCodes,
		"categories":            st.Categories,
		"finalized_results":     st.FinalizedResults,
		"scheduled_events":      st.ScheduledEvents,
	}
}

// FinalizeResults walks every auto-resolvable category and reconciles the
// stored outcome with the latest standing. A category finalizes when its
// last scheduled event has passed, or as a fallback when the scrape already
// accounts for every event. A stored result for a category that is no
// longer complete was saved prematurely from a bad snapshot and is
// retracted. Featured categories are never touched, they are resolved by
// hand.
func (s *Service) FinalizeResults(ctx context.Context) error {
	stored, err := s.results.Results(ctx)
	if err != nil {
		return err
	}
	now := s.now().In(schedule.Location())

	for _, cat := range schedule.Categories() {
		if cat.IsFeatured() {
			continue
		}
		standing := s.calculator.StandingFor(ctx, cat)
		complete := now.After(cat.LastEvent) || standing.IsComplete

		if !complete {
			if _, ok := stored[cat.ID]; ok {
				if err := s.results.DeleteResult(ctx, cat.ID); err != nil {
					return err
				}
				metrics.RecordResultRetracted()
				s.logger.Warn(ctx, "retracted premature result",
					logger.String("category", cat.ID),
					logger.Int("completed", standing.CompletedEvents),
					logger.Int("eventCount", cat.EventCount),
				)
			}
			continue
		}

		leaders, golds := standings.Leaders(standing)
		if len(leaders) == 0 || golds == 0 {
			continue
		}
		if equalWinners(stored[cat.ID], leaders) {
			continue
		}
		if err := s.results.SaveResult(ctx, cat.ID, leaders); err != nil {
			return err
		}
		metrics.RecordResultFinalized()
		s.logger.Info(ctx, "finalized category result",
			logger.String("category", cat.ID),
			logger.Strings("winners", leaders),
			logger.Int("golds", golds),
		)
	}
	return nil
}

func equalWinners(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
