package querygen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	_ "embed"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/opportunity-matcher/internal/errs"
	"github.com/jonathan/opportunity-matcher/internal/llm"
	"github.com/jonathan/opportunity-matcher/internal/types"
)

//go:embed queries_schema.json
var queriesSchema string

// prioritySemantic is assigned to AI queries that omit their own priority
const prioritySemantic = 0.75

// semanticQuery is the wire shape AI-assisted templates must return
type semanticQuery struct {
	Text            string  `json:"text"`
	Priority        float64 `json:"priority,omitempty"`
	ExpectedResults int     `json:"expected_results,omitempty"`
}

// SemanticTemplates asks the completion service for query strings grounded
// in the rendered profile context. The response must be a JSON array matching
// the embedded schema; any failure (transport, schema, parse) is returned as
// an UpstreamServiceError so the generator can fall back to local templates.
func SemanticTemplates(ctx context.Context, client llm.Client, qc types.QueryContext, source types.DiscoverySource, count, maxContextChars int) ([]types.GeneratedQuery, error) {
	if client == nil {
		return nil, &errs.ConfigurationError{Component: "querygen", Message: "no completion-service client configured"}
	}
	if count <= 0 {
		return nil, nil
	}

	prompt := buildQueryPrompt(qc, source, count, maxContextChars)
	raw, err := client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, &errs.UpstreamServiceError{
			Service:   "completion",
			Operation: "completeQueries",
			Context:   string(source),
			Cause:     err,
		}
	}

	queries, err := parseSemanticQueries(raw, source)
	if err != nil {
		return nil, &errs.UpstreamServiceError{
			Service:   "completion",
			Operation: "completeQueries",
			Context:   string(source),
			Cause:     err,
		}
	}

	if len(queries) > count {
		queries = queries[:count]
	}
	return queries, nil
}

// buildQueryPrompt renders the bounded context plus output instructions
func buildQueryPrompt(qc types.QueryContext, source types.DiscoverySource, count, maxContextChars int) string {
	var sb strings.Builder
	sb.WriteString(RenderContext(qc, maxContextChars))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf(
		"Generate %d search queries for the %q discovery channel that would surface relevant grants, residencies, and exhibitions for this artist.\n",
		count, source))
	sb.WriteString(`Respond with a JSON array only: [{"text": "...", "priority": 0.0-1.0, "expected_results": <int>}]`)
	return sb.String()
}

// parseSemanticQueries validates the raw response against the schema and
// converts it to GeneratedQuery values.
func parseSemanticQueries(raw string, source types.DiscoverySource) ([]types.GeneratedQuery, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(queriesSchema),
		gojsonschema.NewStringLoader(raw),
	)
	if err != nil {
		return nil, fmt.Errorf("query response is not valid JSON: %w", err)
	}
	if !result.Valid() {
		descriptions := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			descriptions = append(descriptions, desc.String())
		}
		return nil, fmt.Errorf("query response failed schema validation: %s", strings.Join(descriptions, "; "))
	}

	var parsed []semanticQuery
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse query response: %w", err)
	}

	queries := make([]types.GeneratedQuery, 0, len(parsed))
	for _, sq := range parsed {
		text := strings.TrimSpace(sq.Text)
		if text == "" {
			continue
		}
		priority := sq.Priority
		if priority == 0 {
			priority = prioritySemantic
		}
		expected := sq.ExpectedResults
		if expected == 0 {
			expected = 15
		}
		queries = append(queries, types.GeneratedQuery{
			Text:            text,
			Source:          source,
			Priority:        priority,
			Context:         "semantic",
			ExpectedResults: expected,
		})
	}

	if len(queries) == 0 {
		return nil, fmt.Errorf("query response contained no usable queries")
	}
	return queries, nil
}
