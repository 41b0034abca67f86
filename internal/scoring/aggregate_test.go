package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/opportunity-matcher/internal/types"
)

func TestAggregate_WeightedMean(t *testing.T) {
	weights := types.DefaultScoringWeights()

	perfect := types.ComponentScores{
		Semantic: 1, Keyword: 1, Category: 1, Location: 1, Experience: 1, Deadline: 1,
	}
	assert.InDelta(t, 1.0, Aggregate(perfect, weights), 1e-9)

	zero := types.ComponentScores{}
	assert.Equal(t, 0.0, Aggregate(zero, weights))

	mixed := types.ComponentScores{Semantic: 0.8, Keyword: 0.4}
	expected := (0.8*0.35 + 0.4*0.25) / weights.Total()
	assert.InDelta(t, expected, Aggregate(mixed, weights), 1e-9)
}

func TestAggregate_PartialWeightsNormalize(t *testing.T) {
	weights := types.ScoringWeights{Deadline: 1.0}
	scores := types.ComponentScores{Semantic: 0.1, Deadline: 0.8}

	assert.InDelta(t, 0.8, Aggregate(scores, weights), 1e-9)
}

func TestAggregate_ZeroTotalWeight(t *testing.T) {
	assert.Equal(t, 0.0, Aggregate(types.ComponentScores{Semantic: 1}, types.ScoringWeights{}))
}

func TestBuildReasoning_TiersAndCap(t *testing.T) {
	strong := types.ComponentScores{
		Semantic: 0.9, Keyword: 0.9, Category: 0.9, Location: 0.9, Experience: 0.9, Deadline: 0.9,
	}
	reasoning := BuildReasoning(0.85, strong)

	phrases := strings.Split(reasoning, "; ")
	assert.Equal(t, "Excellent match", phrases[0])
	assert.LessOrEqual(t, len(phrases), 4)

	weak := BuildReasoning(0.2, types.ComponentScores{})
	assert.True(t, strings.HasPrefix(weak, "Weak match"))

	assert.True(t, strings.HasPrefix(BuildReasoning(0.7, types.ComponentScores{Semantic: 0.5}), "Good match"))
	assert.True(t, strings.HasPrefix(BuildReasoning(0.5, types.ComponentScores{Semantic: 0.5}), "Moderate match"))
}

func TestBuildReasoning_NeutralSignalsProduceNoPhrases(t *testing.T) {
	neutral := types.ComponentScores{
		Semantic: 0.5, Keyword: 0.5, Category: 0.5, Location: 0.5, Experience: 0.5, Deadline: 0.5,
	}

	assert.Equal(t, "Moderate match", BuildReasoning(0.5, neutral))
}
