package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/opportunity-matcher/internal/analysis"
	"github.com/jonathan/opportunity-matcher/internal/querygen"
	"github.com/jonathan/opportunity-matcher/internal/scoring"
	"github.com/jonathan/opportunity-matcher/internal/types"
)

// syntheticProfile is the fixed probe input used by health checks
func syntheticProfile() *types.ArtistProfile {
	return &types.ArtistProfile{
		ID:         uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		Name:       "Probe Artist",
		Bio:        "Professional painter with 10 years of experience, exhibited internationally.",
		Statement:  "Exploring color and community through large scale public work.",
		Mediums:    []string{"painting"},
		Skills:     []string{"oil painting", "color theory"},
		Interests:  []string{"community art"},
		Experience: "professional",
		Location:   "Brooklyn, NY",
	}
}

// syntheticOpportunity is the fixed probe counterpart
func syntheticOpportunity() *types.Opportunity {
	deadline := time.Now().AddDate(0, 1, 0)
	return &types.Opportunity{
		ID:           uuid.MustParse("00000000-0000-0000-0000-000000000002"),
		Title:        "Painting Fellowship for Professional Artists",
		Description:  "A one-year fellowship supporting painters working with community themes.",
		Organization: "Probe Arts Foundation",
		Location:     "Remote",
		Amount:       "$25,000",
		Tags:         []string{"painting", "fellowship"},
		Deadline:     &deadline,
	}
}

// Health exercises each sub-scorer and the basic templates against a fixed
// synthetic profile and reports pass/fail per component. The semantic probe
// passes on the fallback path too: availability of a score is the contract,
// not availability of the completion service.
func (m *Matcher) Health(ctx context.Context) map[string]bool {
	profile := syntheticProfile()
	opp := syntheticOpportunity()

	scorers := []scoring.Scorer{
		scoring.NewSemanticScorer(m.client, nil, m.logger, 0),
		scoring.NewKeywordScorer(),
		scoring.NewCategoryScorer(),
		scoring.NewLocationScorer(),
		scoring.NewExperienceScorer(),
	}

	health := make(map[string]bool, len(scorers)+2)
	for _, scorer := range scorers {
		score, err := scorer.Score(ctx, profile, opp)
		health[scorer.Name()] = err == nil && score >= 0 && score <= 1
	}

	deadlineScore := scoring.DeadlineScore(opp.Deadline, time.Now())
	health["deadline"] = deadlineScore >= 0 && deadlineScore <= 1

	probeAnalysis := analysis.Analyze(profile)
	queries := querygen.BasicTemplates(probeAnalysis, types.SourceWebSearch, 4)
	health["templates"] = len(queries) > 0

	return health
}
