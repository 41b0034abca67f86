package scoring

import (
	"context"
	"encoding/json"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/opportunity-matcher/internal/cache"
	"github.com/jonathan/opportunity-matcher/internal/llm"
	"github.com/jonathan/opportunity-matcher/internal/types"
)

// defaultMaxEmbedChars caps embedding input length
const defaultMaxEmbedChars = 8000

// jaccardEmptyFloor is returned by the fallback when both keyword sets are empty
const jaccardEmptyFloor = 0.1

// SemanticScorer measures thematic similarity via embedding cosine
// similarity, degrading to Jaccard keyword overlap when the completion
// service is unavailable.
type SemanticScorer struct {
	client        llm.Client
	cache         cache.Cache
	logger        *zap.Logger
	maxInputChars int
}

// NewSemanticScorer creates a semantic scorer. client may be nil, in which
// case every call uses the Jaccard fallback.
func NewSemanticScorer(client llm.Client, store cache.Cache, logger *zap.Logger, maxInputChars int) *SemanticScorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxInputChars <= 0 {
		maxInputChars = defaultMaxEmbedChars
	}
	return &SemanticScorer{client: client, cache: store, logger: logger, maxInputChars: maxInputChars}
}

// Name identifies the signal
func (s *SemanticScorer) Name() string { return "semantic" }

// Score returns the semantic signal, never failing: embedding errors degrade
// to the keyword-overlap fallback.
func (s *SemanticScorer) Score(ctx context.Context, profile *types.ArtistProfile, opp *types.Opportunity) (float64, error) {
	score, _ := s.ScoreWithMode(ctx, profile, opp)
	return score, nil
}

// ScoreWithMode additionally reports whether the embedding path was used
func (s *SemanticScorer) ScoreWithMode(ctx context.Context, profile *types.ArtistProfile, opp *types.Opportunity) (float64, bool) {
	if s.client != nil {
		score, err := s.scoreByEmbedding(ctx, profile, opp)
		if err == nil {
			return score, true
		}
		s.logger.Warn("embedding similarity failed, using keyword overlap",
			zap.String("opportunity_id", opp.ID.String()),
			zap.Error(err))
	}
	return s.jaccardFallback(profile, opp), false
}

// scoreByEmbedding embeds both texts, computes cosine similarity, remaps
// from [-1,1] to [0,1], and applies a logistic transform that accentuates
// separation near the midpoint.
func (s *SemanticScorer) scoreByEmbedding(ctx context.Context, profile *types.ArtistProfile, opp *types.Opportunity) (float64, error) {
	profileVec, err := s.embed(ctx, profileText(profile))
	if err != nil {
		return 0, err
	}
	oppVec, err := s.embed(ctx, opportunityText(opp))
	if err != nil {
		return 0, err
	}

	similarity := cosineSimilarity(profileVec, oppVec)
	remapped := (similarity + 1) / 2
	sharpened := 1 / (1 + math.Exp(-4*(remapped-0.5)))
	return clamp01(sharpened), nil
}

// embed returns the embedding for text, truncated to the configured cap and
// cached by a hash of the truncated input.
func (s *SemanticScorer) embed(ctx context.Context, text string) ([]float32, error) {
	truncated := llm.TruncateWithMarker(text, s.maxInputChars)
	key := "embed:" + cache.Key(truncated)

	if s.cache != nil {
		if stored, ok := s.cache.Get(ctx, key); ok {
			var vec []float32
			if err := json.Unmarshal([]byte(stored), &vec); err == nil && len(vec) > 0 {
				return vec, nil
			}
		}
	}

	vec, err := s.client.Embed(ctx, truncated)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(vec); err == nil {
			s.cache.Set(ctx, key, string(encoded), 0)
		}
	}
	return vec, nil
}

// jaccardFallback computes Jaccard overlap between the profile keyword set
// (mediums, skills, interests) and the opportunity keyword set (tags plus
// title and description words longer than 3 characters).
func (s *SemanticScorer) jaccardFallback(profile *types.ArtistProfile, opp *types.Opportunity) float64 {
	profileSet := make(map[string]bool)
	for _, values := range [][]string{profile.Mediums, profile.Skills, profile.Interests} {
		for _, value := range values {
			normalized := strings.ToLower(strings.TrimSpace(value))
			if normalized != "" {
				profileSet[normalized] = true
			}
		}
	}

	oppSet := make(map[string]bool)
	for _, tag := range opp.Tags {
		normalized := strings.ToLower(strings.TrimSpace(tag))
		if normalized != "" {
			oppSet[normalized] = true
		}
	}
	for _, word := range strings.Fields(strings.ToLower(opp.Title + " " + opp.Description)) {
		word = strings.Trim(word, ".,;:!?()\"'")
		if len(word) > 3 {
			oppSet[word] = true
		}
	}

	if len(profileSet) == 0 && len(oppSet) == 0 {
		return jaccardEmptyFloor
	}

	intersection := 0
	for keyword := range profileSet {
		if oppSet[keyword] {
			intersection++
		}
	}
	union := len(profileSet) + len(oppSet) - intersection
	if union == 0 {
		return jaccardEmptyFloor
	}
	return clamp01(float64(intersection) / float64(union))
}

// profileText builds the embedding input for a profile
func profileText(profile *types.ArtistProfile) string {
	parts := []string{
		profile.Name,
		strings.Join(profile.Mediums, ", "),
		strings.Join(profile.Skills, ", "),
		strings.Join(profile.Interests, ", "),
		profile.Experience,
		profile.Statement,
		profile.Bio,
	}
	return joinNonEmpty(parts, ". ")
}

// opportunityText builds the embedding input for an opportunity
func opportunityText(opp *types.Opportunity) string {
	parts := []string{
		opp.Title,
		opp.Organization,
		opp.Description,
		opp.Location,
		opp.Amount,
		strings.Join(opp.Tags, ", "),
	}
	return joinNonEmpty(parts, ". ")
}

func joinNonEmpty(parts []string, sep string) string {
	kept := parts[:0]
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}

// cosineSimilarity computes cosine similarity between two vectors, returning
// 0 for mismatched or zero-magnitude inputs.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, magA, magB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
