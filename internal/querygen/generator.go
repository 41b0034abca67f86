package querygen

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/opportunity-matcher/internal/analysis"
	"github.com/jonathan/opportunity-matcher/internal/cache"
	"github.com/jonathan/opportunity-matcher/internal/llm"
	"github.com/jonathan/opportunity-matcher/internal/logger"
	"github.com/jonathan/opportunity-matcher/internal/types"
)

// Defaults for query generation
const (
	DefaultMaxQueries    = 12
	defaultQueryCacheTTL = time.Hour

	// Per-source quota split between deterministic and AI-assisted templates
	basicShare = 0.4
)

// Options configures a Generator
type Options struct {
	MaxContextChars int
	QueryCacheTTL   time.Duration
	EnableSemantic  bool
	RequestTimeout  time.Duration
}

// Generator orchestrates context building, template execution, and query
// optimization, with content-hash caching of results.
type Generator struct {
	client llm.Client
	cache  cache.Cache
	logger *zap.Logger
	opts   Options
}

// NewGenerator creates a query generator. client may be nil, in which case
// only deterministic templates run. store may be nil to disable caching.
func NewGenerator(client llm.Client, store cache.Cache, logger *zap.Logger, opts Options) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.MaxContextChars <= 0 {
		opts.MaxContextChars = defaultMaxContextChars
	}
	if opts.QueryCacheTTL <= 0 {
		opts.QueryCacheTTL = defaultQueryCacheTTL
	}
	return &Generator{client: client, cache: store, logger: logger, opts: opts}
}

// DefaultSources returns the discovery sources to target for a given
// priority tier when the caller does not specify sources explicitly.
func DefaultSources(priority string) []types.DiscoverySource {
	switch strings.ToLower(priority) {
	case "high":
		return []types.DiscoverySource{types.SourceWebSearch, types.SourceSocial, types.SourceBookmark, types.SourceNewsletter}
	case "medium":
		return []types.DiscoverySource{types.SourceWebSearch, types.SourceSocial, types.SourceBookmark}
	default:
		return []types.DiscoverySource{types.SourceWebSearch, types.SourceBookmark}
	}
}

// Generate returns ranked query strings for the profile. sources may be nil
// to use the low-priority default set; maxQueries <= 0 uses the default cap.
func (g *Generator) Generate(ctx context.Context, profile *types.ArtistProfile, sources []types.DiscoverySource, maxQueries int) ([]string, error) {
	result, err := g.GenerateWithMetadata(ctx, profile, sources, maxQueries)
	if err != nil {
		return nil, err
	}

	texts := make([]string, len(result.Queries))
	for i, query := range result.Queries {
		texts[i] = query.Text
	}
	return texts, nil
}

// GenerateWithMetadata returns the full generation result including
// per-source distribution and the cache-hit flag.
func (g *Generator) GenerateWithMetadata(ctx context.Context, profile *types.ArtistProfile, sources []types.DiscoverySource, maxQueries int) (*types.QueryGenerationResult, error) {
	if len(sources) == 0 {
		sources = DefaultSources("")
	}
	if maxQueries <= 0 {
		maxQueries = DefaultMaxQueries
	}

	profileAnalysis := analysis.Analyze(profile)
	cacheKey := generationCacheKey(profile, sources, maxQueries)

	if g.cache != nil {
		if stored, ok := g.cache.Get(ctx, cacheKey); ok {
			var cached types.QueryGenerationResult
			if err := json.Unmarshal([]byte(stored), &cached); err == nil {
				cached.CacheHit = true
				return &cached, nil
			}
		}
	}

	qc := BuildContext(profileAnalysis)
	quota := perSourceQuota(maxQueries, len(sources))

	result := &types.QueryGenerationResult{
		Distribution: make(map[types.DiscoverySource]int, len(sources)),
	}

	var candidates []types.GeneratedQuery
	for _, source := range sources {
		sourceQueries := g.generateForSource(ctx, profileAnalysis, qc, source, quota)
		result.Distribution[source] = len(sourceQueries)
		candidates = append(candidates, sourceQueries...)
		for _, query := range sourceQueries {
			if query.Context == "semantic" {
				result.AIAssisted = true
				break
			}
		}
	}

	result.Queries = Optimize(candidates, maxQueries)

	if g.cache != nil {
		if encoded, err := json.Marshal(result); err == nil {
			g.cache.Set(ctx, cacheKey, string(encoded), g.opts.QueryCacheTTL)
		}
	}
	return result, nil
}

// generateForSource runs basic and semantic templates for one source. A
// failed semantic path degrades to extra basic output; a source with no
// output at all receives the fallback pair.
func (g *Generator) generateForSource(ctx context.Context, profileAnalysis types.ProfileAnalysis, qc types.QueryContext, source types.DiscoverySource, quota int) []types.GeneratedQuery {
	basicQuota := int(float64(quota)*basicShare + 0.5)
	if basicQuota < 1 {
		basicQuota = 1
	}
	semanticQuota := quota - basicQuota

	queries := BasicTemplates(profileAnalysis, source, basicQuota)

	if g.opts.EnableSemantic && g.client != nil && semanticQuota > 0 {
		callCtx := ctx
		if g.opts.RequestTimeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, g.opts.RequestTimeout)
			defer cancel()
		}

		g.logger.Debug("running semantic templates",
			zap.String("source", string(source)),
			zap.Int("quota", semanticQuota),
			zap.String("context", logger.TruncateForLog(RenderContext(qc, g.opts.MaxContextChars), 300)))

		semanticQueries, err := SemanticTemplates(callCtx, g.client, qc, source, semanticQuota, g.opts.MaxContextChars)
		if err != nil {
			g.logger.Warn("semantic templates failed, using local templates",
				zap.String("source", string(source)),
				zap.Error(err))
			queries = append(queries, BasicTemplates(profileAnalysis, source, quota)...)
		} else {
			queries = append(queries, semanticQueries...)
		}
	} else if semanticQuota > 0 {
		queries = BasicTemplates(profileAnalysis, source, quota)
	}

	if len(queries) == 0 {
		queries = FallbackQueries(profileAnalysis, source)
	}
	return queries
}

// perSourceQuota splits the overall cap evenly across sources, with a floor
// that keeps every source represented.
func perSourceQuota(maxQueries, sourceCount int) int {
	quota := maxQueries / sourceCount
	if quota < 2 {
		quota = 2
	}
	return quota
}

// generationCacheKey hashes the analysis-relevant profile fields plus the
// requested sources and cap. Sorting makes the key order-insensitive.
func generationCacheKey(profile *types.ArtistProfile, sources []types.DiscoverySource, maxQueries int) string {
	mediums := sortedCopy(profile.Mediums)
	skills := sortedCopy(profile.Skills)
	interests := sortedCopy(profile.Interests)

	sourceNames := make([]string, len(sources))
	for i, source := range sources {
		sourceNames[i] = string(source)
	}
	sort.Strings(sourceNames)

	return "queries:" + cache.Key(
		strings.Join(mediums, ","),
		strings.Join(skills, ","),
		strings.Join(interests, ","),
		profile.Experience,
		profile.Location,
		strings.Join(sourceNames, ","),
		strconv.Itoa(maxQueries),
	)
}

func sortedCopy(values []string) []string {
	copied := make([]string, len(values))
	copy(copied, values)
	sort.Strings(copied)
	return copied
}
