package scoring

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/opportunity-matcher/internal/cache"
	"github.com/jonathan/opportunity-matcher/internal/errs"
	"github.com/jonathan/opportunity-matcher/internal/llm"
	"github.com/jonathan/opportunity-matcher/internal/types"
)

// Engine defaults
const (
	DefaultBatchSize     = 10
	defaultScoreCacheTTL = 30 * time.Minute
	// neutralScore substitutes for a sub-scorer that failed outright
	neutralScore = 0.5
)

// EngineConfig tunes the relevance scoring engine
type EngineConfig struct {
	BatchSize     int
	CallTimeout   time.Duration
	ScoreCacheTTL time.Duration
	MaxEmbedChars int
}

// Engine orchestrates the sub-scorers and the aggregator: it fans out the
// five signals concurrently per opportunity, computes deadline urgency
// inline, blends via the active weights, and caches results per
// (profile, opportunity) pair.
type Engine struct {
	semantic   Scorer
	keyword    Scorer
	category   Scorer
	location   Scorer
	experience Scorer

	mu      sync.RWMutex
	weights types.ScoringWeights

	cache  cache.Cache
	logger *zap.Logger
	cfg    EngineConfig
}

// NewEngine creates a scoring engine with the default sub-scorer set.
// client may be nil: the semantic signal then always uses its keyword
// fallback. store may be nil to disable caching.
func NewEngine(client llm.Client, store cache.Cache, logger *zap.Logger, cfg EngineConfig) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.ScoreCacheTTL <= 0 {
		cfg.ScoreCacheTTL = defaultScoreCacheTTL
	}

	return &Engine{
		semantic:   NewSemanticScorer(client, store, logger, cfg.MaxEmbedChars),
		keyword:    NewKeywordScorer(),
		category:   NewCategoryScorer(),
		location:   NewLocationScorer(),
		experience: NewExperienceScorer(),
		weights:    types.DefaultScoringWeights(),
		cache:      store,
		logger:     logger,
		cfg:        cfg,
	}
}

// Weights returns a copy of the active weight set
func (e *Engine) Weights() types.ScoringWeights {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.weights
}

// UpdateWeights merges a partial weight update into the active set and
// clears the score cache. Weights change the meaning of every cached result,
// so partial invalidation is unsafe; a full clear is the barrier.
func (e *Engine) UpdateWeights(ctx context.Context, updates types.WeightUpdates) types.ScoringWeights {
	e.mu.Lock()
	e.weights = e.weights.Merge(updates)
	merged := e.weights
	e.mu.Unlock()

	if e.cache != nil {
		e.cache.Clear(ctx)
	}
	return merged
}

// ScoreOne scores a single opportunity against a profile
func (e *Engine) ScoreOne(ctx context.Context, profile *types.ArtistProfile, opp *types.Opportunity) (*types.ScoringResult, error) {
	if profile == nil {
		return nil, &errs.ValidationError{Field: "profile", Reason: "profile is required"}
	}
	if opp == nil {
		return nil, &errs.ValidationError{Field: "opportunity", Reason: "opportunity is required"}
	}

	cacheKey := scoreCacheKey(profile, opp)
	if e.cache != nil {
		if stored, ok := e.cache.Get(ctx, cacheKey); ok {
			var cached types.ScoringResult
			if err := json.Unmarshal([]byte(stored), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	started := time.Now()
	result := &types.ScoringResult{OpportunityID: opp.ID}

	// The five signals run concurrently; aggregation waits for all of them
	// so it never observes a partial component set.
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		callCtx, cancel := e.callContext(groupCtx)
		defer cancel()
		score, aiUsed := e.scoreSemantic(callCtx, profile, opp)
		result.ComponentScores.Semantic = score
		result.AIServiceUsed = aiUsed
		return nil
	})
	group.Go(func() error {
		result.ComponentScores.Keyword = e.runScorer(groupCtx, e.keyword, profile, opp)
		return nil
	})
	group.Go(func() error {
		result.ComponentScores.Category = e.runScorer(groupCtx, e.category, profile, opp)
		return nil
	})
	group.Go(func() error {
		result.ComponentScores.Location = e.runScorer(groupCtx, e.location, profile, opp)
		return nil
	})
	group.Go(func() error {
		result.ComponentScores.Experience = e.runScorer(groupCtx, e.experience, profile, opp)
		return nil
	})

	// Sub-scorer goroutines never return errors; failures degrade in place
	_ = group.Wait()

	result.ComponentScores.Deadline = DeadlineScore(opp.Deadline, time.Now())

	weights := e.Weights()
	result.OverallScore = Aggregate(result.ComponentScores, weights)
	result.Reasoning = BuildReasoning(result.OverallScore, result.ComponentScores)
	result.ProcessingTime = time.Since(started)

	if e.cache != nil {
		if encoded, err := json.Marshal(result); err == nil {
			e.cache.Set(ctx, cacheKey, string(encoded), e.cfg.ScoreCacheTTL)
		}
	}
	return result, nil
}

// ScoreMany scores opportunities in sequential fixed-size batches, bounding
// peak concurrent external calls. Per-item failures are collected rather
// than aborting the batch.
func (e *Engine) ScoreMany(ctx context.Context, profile *types.ArtistProfile, opportunities []*types.Opportunity) (*types.BatchScoringResult, error) {
	if profile == nil {
		return nil, &errs.ValidationError{Field: "profile", Reason: "profile is required"}
	}

	batch := &types.BatchScoringResult{
		Scores: make(map[uuid.UUID]float64, len(opportunities)),
	}
	if len(opportunities) == 0 {
		return batch, nil
	}

	var mu sync.Mutex
	for start := 0; start < len(opportunities); start += e.cfg.BatchSize {
		end := start + e.cfg.BatchSize
		if end > len(opportunities) {
			end = len(opportunities)
		}

		group, groupCtx := errgroup.WithContext(ctx)
		for _, opp := range opportunities[start:end] {
			opp := opp
			group.Go(func() error {
				oppID := uuid.Nil
				if opp != nil {
					oppID = opp.ID
				}
				result, err := e.ScoreOne(groupCtx, profile, opp)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					batch.Errors = append(batch.Errors, types.BatchError{
						OpportunityID: oppID,
						Err:           err,
						Message:       err.Error(),
					})
					return nil
				}
				batch.Scores[opp.ID] = result.OverallScore
				batch.Detailed = append(batch.Detailed, *result)
				return nil
			})
		}
		// Batch N+1 does not start until batch N has fully resolved
		_ = group.Wait()
	}

	if len(batch.Detailed) > 0 {
		total := 0.0
		for _, result := range batch.Detailed {
			total += result.OverallScore
		}
		batch.AverageScore = total / float64(len(batch.Detailed))
	}
	return batch, nil
}

// scoreSemantic resolves the semantic signal, reporting whether embeddings
// were used. A substituted (test) semantic scorer loses the mode flag.
func (e *Engine) scoreSemantic(ctx context.Context, profile *types.ArtistProfile, opp *types.Opportunity) (float64, bool) {
	if detailed, ok := e.semantic.(*SemanticScorer); ok {
		return detailed.ScoreWithMode(ctx, profile, opp)
	}
	return e.runScorer(ctx, e.semantic, profile, opp), false
}

// runScorer executes one sub-scorer, degrading an outright failure to a
// neutral score so a single signal can never abort an opportunity.
func (e *Engine) runScorer(ctx context.Context, scorer Scorer, profile *types.ArtistProfile, opp *types.Opportunity) float64 {
	score, err := scorer.Score(ctx, profile, opp)
	if err != nil {
		e.logger.Warn("sub-scorer failed, using neutral score",
			zap.String("scorer", scorer.Name()),
			zap.String("opportunity_id", opp.ID.String()),
			zap.Error(err))
		return neutralScore
	}
	return clamp01(score)
}

// callContext derives a context for an external call with the configured
// engine-level timeout.
func (e *Engine) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.cfg.CallTimeout > 0 {
		return context.WithTimeout(ctx, e.cfg.CallTimeout)
	}
	return context.WithCancel(ctx)
}

// scoreCacheKey addresses a cached result by profile and opportunity identity
func scoreCacheKey(profile *types.ArtistProfile, opp *types.Opportunity) string {
	return "score:" + cache.Key(profile.ID.String(), opp.ID.String())
}
