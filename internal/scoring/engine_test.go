package scoring

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/opportunity-matcher/internal/cache"
	"github.com/jonathan/opportunity-matcher/internal/errs"
	"github.com/jonathan/opportunity-matcher/internal/types"
)

func engineProfile() *types.ArtistProfile {
	return &types.ArtistProfile{
		ID:         uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Name:       "Test Artist",
		Mediums:    []string{"painting"},
		Skills:     []string{"oil painting"},
		Interests:  []string{"climate"},
		Experience: "professional painter with 10 years of experience",
		Location:   "Brooklyn, NY",
	}
}

func engineOpportunity() *types.Opportunity {
	deadline := time.Now().AddDate(0, 0, 20)
	return &types.Opportunity{
		ID:          uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		Title:       "Painting Fellowship",
		Description: "Support for professional painters addressing climate themes",
		Location:    "Brooklyn, NY",
		Tags:        []string{"painting", "climate"},
		Deadline:    &deadline,
	}
}

func TestEngine_ScoreOne_RejectsNilInputs(t *testing.T) {
	engine := NewEngine(nil, nil, nil, EngineConfig{})

	_, err := engine.ScoreOne(context.Background(), nil, engineOpportunity())
	var validation *errs.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "profile", validation.Field)

	_, err = engine.ScoreOne(context.Background(), engineProfile(), nil)
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "opportunity", validation.Field)
}

func TestEngine_ScoreOne_Deterministic(t *testing.T) {
	engine := NewEngine(nil, nil, nil, EngineConfig{})

	first, err := engine.ScoreOne(context.Background(), engineProfile(), engineOpportunity())
	require.NoError(t, err)
	second, err := engine.ScoreOne(context.Background(), engineProfile(), engineOpportunity())
	require.NoError(t, err)

	assert.Equal(t, first.OverallScore, second.OverallScore)
	assert.Equal(t, first.ComponentScores, second.ComponentScores)
	assert.Equal(t, first.Reasoning, second.Reasoning)
	assert.False(t, first.AIServiceUsed)
}

func TestEngine_ScoreOne_PopulatesResult(t *testing.T) {
	engine := NewEngine(nil, nil, nil, EngineConfig{})
	opp := engineOpportunity()

	result, err := engine.ScoreOne(context.Background(), engineProfile(), opp)

	require.NoError(t, err)
	assert.Equal(t, opp.ID, result.OpportunityID)
	assert.GreaterOrEqual(t, result.OverallScore, 0.0)
	assert.LessOrEqual(t, result.OverallScore, 1.0)
	assert.NotEmpty(t, result.Reasoning)
	assert.Equal(t, 1.0, result.ComponentScores.Location)
	assert.Equal(t, 0.8, result.ComponentScores.Deadline)
}

func TestEngine_ScoreOne_UsesEmbeddingsWhenAvailable(t *testing.T) {
	client := &stubClient{vector: []float32{1, 0}}
	engine := NewEngine(client, nil, nil, EngineConfig{})

	result, err := engine.ScoreOne(context.Background(), engineProfile(), engineOpportunity())

	require.NoError(t, err)
	assert.True(t, result.AIServiceUsed)
}

func TestEngine_ScoreOne_CachesResults(t *testing.T) {
	client := &stubClient{vector: []float32{1, 0}}
	store := cache.NewMemory()
	engine := NewEngine(client, store, nil, EngineConfig{})

	first, err := engine.ScoreOne(context.Background(), engineProfile(), engineOpportunity())
	require.NoError(t, err)
	callsAfterFirst := client.embedCalls

	second, err := engine.ScoreOne(context.Background(), engineProfile(), engineOpportunity())
	require.NoError(t, err)

	assert.Equal(t, callsAfterFirst, client.embedCalls, "cached result skips external calls")
	assert.Equal(t, first.OverallScore, second.OverallScore)
}

func TestEngine_UpdateWeights_MergesPartialUpdate(t *testing.T) {
	engine := NewEngine(nil, nil, nil, EngineConfig{})
	half := 0.5

	merged := engine.UpdateWeights(context.Background(), types.WeightUpdates{Semantic: &half})

	assert.Equal(t, 0.5, merged.Semantic)
	assert.Equal(t, 0.25, merged.Keyword, "untouched weights keep their defaults")
	assert.Equal(t, merged, engine.Weights())
}

func TestEngine_UpdateWeights_InvalidatesCachedScores(t *testing.T) {
	store := cache.NewMemory()
	engine := NewEngine(nil, store, nil, EngineConfig{})
	profile := engineProfile()
	opp := engineOpportunity()

	before, err := engine.ScoreOne(context.Background(), profile, opp)
	require.NoError(t, err)

	// Move all weight onto the deadline signal. The opportunity's deadline
	// is 20 days out, so the overall score must become exactly 0.8.
	one, zero := 1.0, 0.0
	engine.UpdateWeights(context.Background(), types.WeightUpdates{
		Semantic: &zero, Keyword: &zero, Category: &zero,
		Location: &zero, Experience: &zero, Deadline: &one,
	})

	after, err := engine.ScoreOne(context.Background(), profile, opp)
	require.NoError(t, err)

	assert.InDelta(t, 0.8, after.OverallScore, 1e-9)
	assert.NotEqual(t, before.OverallScore, after.OverallScore)
}

func TestEngine_ScoreMany_ScoresEveryOpportunity(t *testing.T) {
	engine := NewEngine(nil, nil, nil, EngineConfig{BatchSize: 10})
	profile := engineProfile()

	opportunities := make([]*types.Opportunity, 25)
	for i := range opportunities {
		opp := engineOpportunity()
		opp.ID = uuid.New()
		opp.Title = fmt.Sprintf("Painting Fellowship %d", i)
		opportunities[i] = opp
	}

	batch, err := engine.ScoreMany(context.Background(), profile, opportunities)

	require.NoError(t, err)
	assert.Len(t, batch.Scores, 25)
	assert.Len(t, batch.Detailed, 25)
	assert.Empty(t, batch.Errors)
	for _, opp := range opportunities {
		assert.Contains(t, batch.Scores, opp.ID)
	}

	total := 0.0
	for _, result := range batch.Detailed {
		total += result.OverallScore
	}
	assert.InDelta(t, total/25, batch.AverageScore, 1e-9)
}

func TestEngine_ScoreMany_CollectsPerItemErrors(t *testing.T) {
	engine := NewEngine(nil, nil, nil, EngineConfig{})
	profile := engineProfile()

	opportunities := []*types.Opportunity{engineOpportunity(), nil}

	batch, err := engine.ScoreMany(context.Background(), profile, opportunities)

	require.NoError(t, err)
	assert.Len(t, batch.Scores, 1)
	require.Len(t, batch.Errors, 1)
	assert.Equal(t, uuid.Nil, batch.Errors[0].OpportunityID)
	var validation *errs.ValidationError
	assert.ErrorAs(t, batch.Errors[0].Err, &validation)
}

func TestEngine_ScoreMany_EmptyInput(t *testing.T) {
	engine := NewEngine(nil, nil, nil, EngineConfig{})

	batch, err := engine.ScoreMany(context.Background(), engineProfile(), nil)

	require.NoError(t, err)
	assert.Empty(t, batch.Scores)
	assert.Empty(t, batch.Errors)
	assert.Zero(t, batch.AverageScore)
}

func TestEngine_ScoreMany_NilProfile(t *testing.T) {
	engine := NewEngine(nil, nil, nil, EngineConfig{})

	_, err := engine.ScoreMany(context.Background(), nil, []*types.Opportunity{engineOpportunity()})

	var validation *errs.ValidationError
	require.ErrorAs(t, err, &validation)
}
