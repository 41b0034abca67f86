// Package scoring computes multi-signal relevance scores for profile and
// opportunity pairs.
package scoring

import (
	"context"

	"github.com/jonathan/opportunity-matcher/internal/types"
)

// Scorer scores one profile/opportunity pair on [0,1]. Implementations are
// independently swappable; the aggregator is agnostic to which scorers exist.
type Scorer interface {
	// Name identifies the signal this scorer produces
	Name() string
	// Score returns the signal value in [0,1]
	Score(ctx context.Context, profile *types.ArtistProfile, opp *types.Opportunity) (float64, error)
}

// clamp01 bounds a score to the valid [0,1] range
func clamp01(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
