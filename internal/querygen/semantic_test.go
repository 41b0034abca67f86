package querygen

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/opportunity-matcher/internal/errs"
	"github.com/jonathan/opportunity-matcher/internal/llm"
	"github.com/jonathan/opportunity-matcher/internal/types"
)

// fakeClient satisfies llm.Client with canned responses for tests.
type fakeClient struct {
	response string
	err      error
	calls    int
}

func (f *fakeClient) Embed(ctx context.Context, text string) ([]float32, error) {
	return nil, errors.New("embeddings not supported")
}

func (f *fakeClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

func TestSemanticTemplates_ParsesValidResponse(t *testing.T) {
	client := &fakeClient{
		response: `[{"text": "emerging painter grants nyc", "priority": 0.85, "expected_results": 12}]`,
	}

	queries, err := SemanticTemplates(context.Background(), client, types.QueryContext{ProfileSummary: "intermediate artist"}, types.SourceWebSearch, 3, 0)

	require.NoError(t, err)
	require.Len(t, queries, 1)
	assert.Equal(t, "emerging painter grants nyc", queries[0].Text)
	assert.Equal(t, 0.85, queries[0].Priority)
	assert.Equal(t, 12, queries[0].ExpectedResults)
	assert.Equal(t, types.SourceWebSearch, queries[0].Source)
	assert.Equal(t, "semantic", queries[0].Context)
}

func TestSemanticTemplates_DefaultsPriority(t *testing.T) {
	client := &fakeClient{response: `[{"text": "sculpture residency"}]`}

	queries, err := SemanticTemplates(context.Background(), client, types.QueryContext{}, types.SourceSocial, 3, 0)

	require.NoError(t, err)
	require.Len(t, queries, 1)
	assert.Equal(t, prioritySemantic, queries[0].Priority)
}

func TestSemanticTemplates_TruncatesToCount(t *testing.T) {
	client := &fakeClient{
		response: `[{"text": "a"}, {"text": "b"}, {"text": "c"}]`,
	}

	queries, err := SemanticTemplates(context.Background(), client, types.QueryContext{}, types.SourceWebSearch, 2, 0)

	require.NoError(t, err)
	assert.Len(t, queries, 2)
}

func TestSemanticTemplates_TransportErrorWrapped(t *testing.T) {
	client := &fakeClient{err: errors.New("rate limited")}

	_, err := SemanticTemplates(context.Background(), client, types.QueryContext{}, types.SourceWebSearch, 3, 0)

	require.Error(t, err)
	var upstream *errs.UpstreamServiceError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "completion", upstream.Service)
	assert.Equal(t, "completeQueries", upstream.Operation)
}

func TestSemanticTemplates_RejectsSchemaViolations(t *testing.T) {
	cases := []struct {
		name     string
		response string
	}{
		{"not json", "sure, here are some queries"},
		{"not an array", `{"text": "a"}`},
		{"missing text field", `[{"priority": 0.9}]`},
		{"empty array", `[]`},
		{"extra fields", `[{"text": "a", "confidence": 0.9}]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := &fakeClient{response: tc.response}

			_, err := SemanticTemplates(context.Background(), client, types.QueryContext{}, types.SourceWebSearch, 3, 0)

			var upstream *errs.UpstreamServiceError
			require.ErrorAs(t, err, &upstream)
		})
	}
}

func TestSemanticTemplates_NilClient(t *testing.T) {
	_, err := SemanticTemplates(context.Background(), nil, types.QueryContext{}, types.SourceWebSearch, 3, 0)

	var cfg *errs.ConfigurationError
	require.ErrorAs(t, err, &cfg)
}
