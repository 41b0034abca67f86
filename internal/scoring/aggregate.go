package scoring

import "github.com/jonathan/opportunity-matcher/internal/types"

// Aggregate blends component scores into one overall score via the weighted
// mean Σ(score·weight)/Σ(weight). Dividing by the total active weight keeps
// the result in [0,1] even after partial weight updates.
func Aggregate(scores types.ComponentScores, weights types.ScoringWeights) float64 {
	total := weights.Total()
	if total <= 0 {
		return 0
	}

	weighted := scores.Semantic*weights.Semantic +
		scores.Keyword*weights.Keyword +
		scores.Category*weights.Category +
		scores.Location*weights.Location +
		scores.Experience*weights.Experience +
		scores.Deadline*weights.Deadline

	return clamp01(weighted / total)
}
