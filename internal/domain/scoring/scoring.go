// Package scoring computes pool leaderboards from finalized category
// results and the members' prediction sets.
package scoring

import (
	"context"
	"sort"

	"github.com/medalpool/podium/internal/adapters/repository"
	"github.com/medalpool/podium/internal/domain/types"
	"github.com/medalpool/podium/pkg/logger"
)

// Detail is one category line in a member's score breakdown.
type Detail struct {
	CategoryID string   `json:"category_id"`
	Prediction string   `json:"prediction,omitempty"`
	Winners    []string `json:"winners,omitempty"`
	Correct    *bool    `json:"correct"`
}

// Scorer ranks pool members by prediction correctness.
type Scorer struct {
	pools       repository.PoolStore
	predictions repository.PredictionStore
	results     repository.ResultStore
	log         logger.Logger
}

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithLogger sets a custom logger.
func WithLogger(log logger.Logger) Option {
	return func(s *Scorer) {
		if log != nil {
			s.log = log
		}
	}
}

// NewScorer creates a Scorer.
func NewScorer(pools repository.PoolStore, predictions repository.PredictionStore, results repository.ResultStore, opts ...Option) *Scorer {
	s := &Scorer{pools: pools, predictions: predictions, results: results}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score returns the ranked leaderboard for a pool. A prediction is correct
// when a finalized result exists for the category and the predicted answer
// is among its winners, so every member picking any one of several tied
// winners scores the point. Ranking is by correct count descending with ties
// broken alphabetically by username; tied scores share the same rank.
func (s *Scorer) Score(ctx context.Context, poolCode string) ([]types.UserScore, error) {
	assignments, err := s.pools.Assignments(ctx, poolCode)
	if err != nil {
		return nil, err
	}
	finalized, err := s.results.Results(ctx)
	if err != nil {
		return nil, err
	}

	scores := make([]types.UserScore, 0, len(assignments))
	for username, setID := range assignments {
		predictions, err := s.predictions.PredictionsForSet(ctx, setID)
		if err != nil {
			if s.log != nil {
				s.log.Warn(ctx, "pool member has no usable prediction set",
					logger.String("pool", poolCode),
					logger.String("username", username),
					logger.Error(err),
				)
			}
			scores = append(scores, types.UserScore{Username: username})
			continue
		}

		correct := 0
		for categoryID, answer := range predictions {
			if isCorrect(finalized[categoryID], answer) {
				correct++
			}
		}
		scores = append(scores, types.UserScore{
			Username: username,
			Correct:  correct,
			Total:    len(predictions),
		})
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Correct != scores[j].Correct {
			return scores[i].Correct > scores[j].Correct
		}
		return scores[i].Username < scores[j].Username
	})
	for i := range scores {
		if i > 0 && scores[i].Correct == scores[i-1].Correct {
			scores[i].Rank = scores[i-1].Rank
			continue
		}
		scores[i].Rank = i + 1
	}
	return scores, nil
}

// Details returns a member's per-category breakdown, sorted by category ID.
// Correct is nil while the category has no finalized result.
func (s *Scorer) Details(ctx context.Context, setID string) ([]Detail, error) {
	predictions, err := s.predictions.PredictionsForSet(ctx, setID)
	if err != nil {
		return nil, err
	}
	finalized, err := s.results.Results(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(predictions))
	for id := range predictions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]Detail, 0, len(ids))
	for _, id := range ids {
		d := Detail{CategoryID: id, Prediction: predictions[id]}
		if winners, ok := finalized[id]; ok {
			d.Winners = winners
			correct := isCorrect(winners, predictions[id])
			d.Correct = &correct
		}
		out = append(out, d)
	}
	return out, nil
}

func isCorrect(winners []string, answer string) bool {
	for _, w := range winners {
		if w == answer {
			return true
		}
	}
	return false
}
