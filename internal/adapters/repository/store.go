// Package repository defines the persistence interfaces for authoritative
// category results, prediction sets, and pools, plus an in-memory
// implementation. Everything derived (standings, rooting, scores) is
// recomputed on demand and never stored here.
package repository

import "context"

// ResultStore holds authoritative finalized category outcomes. Once a result
// is present it is treated as ground truth and standings computation for
// that category is skipped.
type ResultStore interface {
	// Results returns all finalized outcomes, ties as multi-element lists.
	Results(ctx context.Context) (map[string][]string, error)

	// SaveResult upserts a finalized outcome.
	SaveResult(ctx context.Context, categoryID string, winners []string) error

	// DeleteResult retracts an outcome. Retraction exists specifically to
	// undo a premature automatic save made from an incomplete snapshot.
	DeleteResult(ctx context.Context, categoryID string) error
}

// PredictionStore holds users' prediction sets.
type PredictionStore interface {
	// CreateSet creates a named prediction set and returns its ID.
	CreateSet(ctx context.Context, owner, name string) (string, error)

	// SavePrediction records one category prediction in a set.
	SavePrediction(ctx context.Context, setID, categoryID, answer string) error

	// PredictionsForSet returns category ID -> predicted answer.
	// Returns ErrNotFound for unknown sets.
	PredictionsForSet(ctx context.Context, setID string) (map[string]string, error)
}

// Member is one pool participant with an assigned prediction set.
type Member struct {
	Username string
	SetID    string
}

// Pool is a named group of participants competing on the same predictions.
type Pool struct {
	Code    string
	Name    string
	Members []Member
}

// PoolStore holds pools and per-member prediction set assignments.
type PoolStore interface {
	// CreatePool creates a pool and returns it with a generated join code.
	CreatePool(ctx context.Context, name, createdBy string) (Pool, error)

	// Pool returns a pool by join code. Returns ErrNotFound when unknown.
	Pool(ctx context.Context, code string) (Pool, error)

	// AddMember adds a participant with their prediction set assignment.
	AddMember(ctx context.Context, code, username, setID string) error

	// Assignments returns username -> prediction set ID for a pool.
	Assignments(ctx context.Context, code string) (map[string]string, error)
}
