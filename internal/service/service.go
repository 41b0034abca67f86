// Package service exposes the matcher's contract to orchestrating callers:
// query generation, relevance scoring, weight management, and health probes.
package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/opportunity-matcher/internal/cache"
	"github.com/jonathan/opportunity-matcher/internal/errs"
	"github.com/jonathan/opportunity-matcher/internal/llm"
	"github.com/jonathan/opportunity-matcher/internal/querygen"
	"github.com/jonathan/opportunity-matcher/internal/scoring"
	"github.com/jonathan/opportunity-matcher/internal/types"
)

// Options configures the matcher service
type Options struct {
	Generator querygen.Options
	Engine    scoring.EngineConfig
}

// Matcher is the orchestration facade over query generation and scoring
type Matcher struct {
	generator *querygen.Generator
	engine    *scoring.Engine
	client    llm.Client
	validate  *validator.Validate
	logger    *zap.Logger
}

// New creates a matcher service. client and store may be nil; the matcher
// then runs with deterministic templates and fallback scoring only.
func New(client llm.Client, store cache.Cache, logger *zap.Logger, opts Options) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{
		generator: querygen.NewGenerator(client, store, logger, opts.Generator),
		engine:    scoring.NewEngine(client, store, logger, opts.Engine),
		client:    client,
		validate:  validator.New(),
		logger:    logger,
	}
}

// GenerateQueries returns ranked search strings for the profile. sources may
// be nil to use the default set for the given priority tier.
func (m *Matcher) GenerateQueries(ctx context.Context, profile *types.ArtistProfile, sources []types.DiscoverySource, maxQueries int) ([]string, error) {
	if err := m.ready(); err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, &errs.ValidationError{Field: "profile", Reason: "profile is required"}
	}
	return m.generator.Generate(ctx, profile, sources, maxQueries)
}

// GenerateQueriesWithMetadata returns the full generation result including
// per-source distribution and the cache-hit flag.
func (m *Matcher) GenerateQueriesWithMetadata(ctx context.Context, profile *types.ArtistProfile, sources []types.DiscoverySource, maxQueries int) (*types.QueryGenerationResult, error) {
	if err := m.ready(); err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, &errs.ValidationError{Field: "profile", Reason: "profile is required"}
	}
	return m.generator.GenerateWithMetadata(ctx, profile, sources, maxQueries)
}

// ScoreOpportunity validates and scores one opportunity against the profile
func (m *Matcher) ScoreOpportunity(ctx context.Context, profile *types.ArtistProfile, opp *types.Opportunity) (*types.ScoringResult, error) {
	if err := m.ready(); err != nil {
		return nil, err
	}
	if opp == nil {
		return nil, &errs.ValidationError{Field: "opportunity", Reason: "opportunity is required"}
	}
	if err := m.validate.Struct(opp); err != nil {
		return nil, &errs.ValidationError{Field: "opportunity", Reason: err.Error()}
	}
	return m.engine.ScoreOne(ctx, profile, opp)
}

// ScoreOpportunities scores a batch; malformed opportunities are reported in
// the result's error list without blocking the rest of the batch.
func (m *Matcher) ScoreOpportunities(ctx context.Context, profile *types.ArtistProfile, opportunities []*types.Opportunity) (*types.BatchScoringResult, error) {
	if err := m.ready(); err != nil {
		return nil, err
	}

	valid := make([]*types.Opportunity, 0, len(opportunities))
	var invalid []types.BatchError
	for _, opp := range opportunities {
		if opp == nil {
			continue
		}
		if err := m.validate.Struct(opp); err != nil {
			ve := &errs.ValidationError{Field: "opportunity", Reason: err.Error()}
			invalid = append(invalid, types.BatchError{
				OpportunityID: opp.ID,
				Err:           ve,
				Message:       ve.Error(),
			})
			continue
		}
		valid = append(valid, opp)
	}

	result, err := m.engine.ScoreMany(ctx, profile, valid)
	if err != nil {
		return nil, err
	}
	result.Errors = append(result.Errors, invalid...)
	return result, nil
}

// UpdateWeights merges a partial weight update and clears the score cache
func (m *Matcher) UpdateWeights(ctx context.Context, updates types.WeightUpdates) (types.ScoringWeights, error) {
	if err := m.ready(); err != nil {
		return types.ScoringWeights{}, err
	}
	return m.engine.UpdateWeights(ctx, updates), nil
}

// Weights returns the active weight set
func (m *Matcher) Weights() types.ScoringWeights {
	if m.engine == nil {
		return types.ScoringWeights{}
	}
	return m.engine.Weights()
}

// ready guards against use before initialization
func (m *Matcher) ready() error {
	if m == nil || m.generator == nil || m.engine == nil {
		return &errs.ConfigurationError{Component: "matcher", Message: "service used before initialization"}
	}
	return nil
}
