package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

const poolCodeLen = 6

// MemoryStore implements ResultStore, PredictionStore and PoolStore with
// plain maps. Safe for concurrent use.
type MemoryStore struct {
	mu sync.RWMutex

	results     map[string][]string          // category ID -> winners
	predictions map[string]map[string]string // set ID -> category ID -> answer
	setOwners   map[string]string            // set ID -> owner
	pools       map[string]*poolRecord       // code -> pool

	newID   func() string
	newCode func() string
}

type poolRecord struct {
	name        string
	createdBy   string
	assignments map[string]string // username -> set ID
}

// MemoryOption applies a configuration option to the MemoryStore.
type MemoryOption func(*MemoryStore)

// WithIDGenerator replaces the prediction set ID generator, for tests.
func WithIDGenerator(gen func() string) MemoryOption {
	return func(s *MemoryStore) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithCodeGenerator replaces the pool code generator, for tests.
func WithCodeGenerator(gen func() string) MemoryOption {
	return func(s *MemoryStore) {
		if gen != nil {
			s.newCode = gen
		}
	}
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		results:     make(map[string][]string),
		predictions: make(map[string]map[string]string),
		setOwners:   make(map[string]string),
		pools:       make(map[string]*poolRecord),
		newID:       uuid.NewString,
		newCode:     newPoolCode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// newPoolCode derives a short join code from a fresh UUID.
func newPoolCode() string {
	u := uuid.NewString()
	code := strings.ToUpper(strings.ReplaceAll(u, "-", ""))
	return code[:poolCodeLen]
}

// ResultStore.

func (s *MemoryStore) Results(_ context.Context) (map[string][]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string][]string, len(s.results))
	for id, winners := range s.results {
		out[id] = append([]string(nil), winners...)
	}
	return out, nil
}

func (s *MemoryStore) SaveResult(_ context.Context, categoryID string, winners []string) error {
	if categoryID == "" || len(winners) == 0 {
		return fmt.Errorf("%w: empty category or winners", ErrNotFound)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[categoryID] = append([]string(nil), winners...)
	return nil
}

func (s *MemoryStore) DeleteResult(_ context.Context, categoryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.results[categoryID]; !ok {
		return ErrNotFound
	}
	delete(s.results, categoryID)
	return nil
}

// PredictionStore.

func (s *MemoryStore) CreateSet(_ context.Context, owner, name string) (string, error) {
	if owner == "" {
		return "", fmt.Errorf("%w: empty owner", ErrNotFound)
	}
	_ = name // names are display-only; the record is keyed by ID
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.newID()
	s.predictions[id] = make(map[string]string)
	s.setOwners[id] = owner
	return id, nil
}

func (s *MemoryStore) SavePrediction(_ context.Context, setID, categoryID, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.predictions[setID]
	if !ok {
		return ErrNotFound
	}
	set[categoryID] = answer
	return nil
}

func (s *MemoryStore) PredictionsForSet(_ context.Context, setID string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set, ok := s.predictions[setID]
	if !ok {
		return nil, ErrNotFound
	}
	out := make(map[string]string, len(set))
	for cat, answer := range set {
		out[cat] = answer
	}
	return out, nil
}

// PoolStore.

func (s *MemoryStore) CreatePool(_ context.Context, name, createdBy string) (Pool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	code := s.newCode()
	for s.pools[code] != nil {
		code = s.newCode()
	}
	s.pools[code] = &poolRecord{
		name:        name,
		createdBy:   createdBy,
		assignments: make(map[string]string),
	}
	return Pool{Code: code, Name: name}, nil
}

func (s *MemoryStore) Pool(_ context.Context, code string) (Pool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.pools[code]
	if !ok {
		return Pool{}, ErrNotFound
	}
	return Pool{Code: code, Name: rec.name, Members: rec.members()}, nil
}

func (s *MemoryStore) AddMember(_ context.Context, code, username, setID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.pools[code]
	if !ok {
		return ErrNotFound
	}
	if _, ok := s.predictions[setID]; !ok {
		return fmt.Errorf("%w: prediction set %s", ErrNotFound, setID)
	}
	rec.assignments[username] = setID
	return nil
}

func (s *MemoryStore) Assignments(_ context.Context, code string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.pools[code]
	if !ok {
		return nil, ErrNotFound
	}
	out := make(map[string]string, len(rec.assignments))
	for user, setID := range rec.assignments {
		out[user] = setID
	}
	return out, nil
}

func (r *poolRecord) members() []Member {
	out := make([]Member, 0, len(r.assignments))
	for user, setID := range r.assignments {
		out = append(out, Member{Username: user, SetID: setID})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out
}
