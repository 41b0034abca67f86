package scoring

import (
	"context"
	"strings"

	"github.com/jonathan/opportunity-matcher/internal/types"
)

// categoryNeutral is returned when the profile declares no mediums
const categoryNeutral = 0.5

// CategoryScorer measures what fraction of the profile's mediums appear in
// the opportunity's title, description, or tags.
type CategoryScorer struct{}

// NewCategoryScorer creates a category scorer
func NewCategoryScorer() *CategoryScorer { return &CategoryScorer{} }

// Name identifies the signal
func (s *CategoryScorer) Name() string { return "category" }

// Score returns the fraction of profile mediums found as substrings of the
// combined opportunity text, capped at 1. No declared mediums scores neutral.
func (s *CategoryScorer) Score(_ context.Context, profile *types.ArtistProfile, opp *types.Opportunity) (float64, error) {
	if len(profile.Mediums) == 0 {
		return categoryNeutral, nil
	}

	searchText := strings.ToLower(opp.SearchText())
	matches := 0
	for _, medium := range profile.Mediums {
		normalized := strings.ToLower(strings.TrimSpace(medium))
		if normalized != "" && strings.Contains(searchText, normalized) {
			matches++
		}
	}

	return clamp01(float64(matches) / float64(len(profile.Mediums))), nil
}
