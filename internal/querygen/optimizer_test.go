package querygen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/opportunity-matcher/internal/types"
)

func TestOptimize_DeduplicatesKeepingHigherPriority(t *testing.T) {
	candidates := []types.GeneratedQuery{
		{Text: "painting grants 2026", Priority: 0.5},
		{Text: "  Painting   GRANTS 2026 ", Priority: 0.9},
	}

	result := Optimize(candidates, 10)

	require.Len(t, result, 1)
	assert.Equal(t, 0.9, result[0].Priority)
}

func TestOptimize_SortsByPriorityThenExpectedResults(t *testing.T) {
	candidates := []types.GeneratedQuery{
		{Text: "low", Priority: 0.3, ExpectedResults: 50},
		{Text: "high few", Priority: 0.9, ExpectedResults: 5},
		{Text: "high many", Priority: 0.9, ExpectedResults: 20},
	}

	result := Optimize(candidates, 10)

	require.Len(t, result, 3)
	assert.Equal(t, "high many", result[0].Text)
	assert.Equal(t, "high few", result[1].Text)
	assert.Equal(t, "low", result[2].Text)
}

func TestOptimize_TruncatesToMax(t *testing.T) {
	candidates := []types.GeneratedQuery{
		{Text: "a", Priority: 0.9},
		{Text: "b", Priority: 0.8},
		{Text: "c", Priority: 0.7},
	}

	result := Optimize(candidates, 2)

	require.Len(t, result, 2)
	assert.Equal(t, "a", result[0].Text)
}

func TestOptimize_DropsEmptyText(t *testing.T) {
	candidates := []types.GeneratedQuery{
		{Text: "   ", Priority: 1.0},
		{Text: "real query", Priority: 0.5},
	}

	result := Optimize(candidates, 10)

	require.Len(t, result, 1)
	assert.Equal(t, "real query", result[0].Text)
}

func TestNormalizeQueryText(t *testing.T) {
	assert.Equal(t, "a b c", normalizeQueryText("  A   b\tC "))
}
