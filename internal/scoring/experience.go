package scoring

import (
	"context"
	"strings"

	"github.com/jonathan/opportunity-matcher/internal/types"
)

// Experience signal values
const (
	experienceOpenToAny    = 0.8
	experienceExactMatch   = 1.0
	experienceIntermediate = 0.7
	experienceMismatch     = 0.4
)

// Keyword sets classifying the profile's own level
var (
	profileAdvancedKeywords = []string{
		"professional", "established", "exhibited", "experienced",
		"advanced", "accomplished", "represented",
	}
	profileBeginnerKeywords = []string{
		"beginner", "beginning", "student", "learning", "new to",
		"hobbyist", "aspiring",
	}
)

// Keyword sets classifying what level an opportunity targets
var (
	oppAdvancedKeywords = []string{
		"advanced", "experienced", "professional", "established", "mid-career",
	}
	oppBeginnerKeywords = []string{
		"beginner", "emerging", "student", "entry-level", "early-career",
	}
)

// ExperienceScorer compares the profile's inferred experience level with the
// level an opportunity is aimed at.
type ExperienceScorer struct{}

// NewExperienceScorer creates an experience scorer
func NewExperienceScorer() *ExperienceScorer { return &ExperienceScorer{} }

// Name identifies the signal
func (s *ExperienceScorer) Name() string { return "experience" }

// Score classifies both sides from fixed keyword sets (profile defaults to
// intermediate, opportunity defaults to open-to-any) and compares them.
func (s *ExperienceScorer) Score(_ context.Context, profile *types.ArtistProfile, opp *types.Opportunity) (float64, error) {
	profileLevel := classifyProfileLevel(profile)
	oppLevel := classifyOpportunityLevel(opp)

	switch {
	case oppLevel == "any":
		return experienceOpenToAny, nil
	case profileLevel == oppLevel:
		return experienceExactMatch, nil
	case profileLevel == "intermediate":
		// Intermediate profiles are broadly eligible either direction
		return experienceIntermediate, nil
	default:
		return experienceMismatch, nil
	}
}

// classifyProfileLevel buckets the profile text into beginner, advanced, or
// intermediate (the default).
func classifyProfileLevel(profile *types.ArtistProfile) string {
	text := strings.ToLower(profile.Bio + " " + profile.Statement + " " + profile.Experience)
	if containsAny(text, profileAdvancedKeywords) {
		return "advanced"
	}
	if containsAny(text, profileBeginnerKeywords) {
		return "beginner"
	}
	return "intermediate"
}

// classifyOpportunityLevel buckets the opportunity text into beginner,
// advanced, or any (the default).
func classifyOpportunityLevel(opp *types.Opportunity) string {
	text := strings.ToLower(opp.SearchText())
	if containsAny(text, oppAdvancedKeywords) {
		return "advanced"
	}
	if containsAny(text, oppBeginnerKeywords) {
		return "beginner"
	}
	return "any"
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
