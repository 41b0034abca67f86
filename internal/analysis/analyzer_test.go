package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/opportunity-matcher/internal/types"
)

func sampleProfile() *types.ArtistProfile {
	return &types.ArtistProfile{
		Name:       "Test Artist",
		Bio:        "Professional painter, exhibited in galleries for 12 years.",
		Statement:  "My work explores community and climate themes.",
		Mediums:    []string{"Painting", "Ceramics"},
		Skills:     []string{"oil painting", "grant writing", "photoshop"},
		Interests:  []string{"community art", "environmental justice"},
		Experience: "professional artist",
		Location:   "Brooklyn, NY",
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	profile := sampleProfile()

	first := Analyze(profile)
	second := Analyze(profile)

	assert.Equal(t, first, second)
}

func TestAnalyze_NilProfile(t *testing.T) {
	result := Analyze(nil)

	assert.Empty(t, result.PrimaryMediums)
	assert.Empty(t, result.CoreSkills)
	assert.Equal(t, types.ExperienceIntermediate, result.ExperienceLevel.Category)
}

func TestAnalyze_MediumBucketing(t *testing.T) {
	result := Analyze(sampleProfile())

	assert.Equal(t, []string{"painting", "ceramics"}, result.PrimaryMediums)
	// Secondary mediums come from the alias table for both primaries
	assert.Contains(t, result.SecondaryMediums, "watercolor")
	assert.Contains(t, result.SecondaryMediums, "pottery")
	assert.NotContains(t, result.SecondaryMediums, "painting")
}

func TestAnalyze_SkillBucketing(t *testing.T) {
	result := Analyze(sampleProfile())

	assert.Contains(t, result.CoreSkills, "oil painting")
	assert.Contains(t, result.SupportingSkills, "grant writing")
	assert.Contains(t, result.SupportingSkills, "photoshop")
}

func TestAnalyze_UnknownSkillDefaultsToCore(t *testing.T) {
	profile := &types.ArtistProfile{Skills: []string{"basket juggling"}}

	result := Analyze(profile)

	assert.Contains(t, result.CoreSkills, "basket juggling")
	assert.Empty(t, result.SupportingSkills)
}

func TestAnalyze_InterestClusters(t *testing.T) {
	result := Analyze(sampleProfile())

	assert.Contains(t, result.PrimaryInterests, "social practice")
	assert.Contains(t, result.PrimaryInterests, "environment")
}

func TestAnalyze_KeywordCap(t *testing.T) {
	profile := &types.ArtistProfile{}
	for i := 0; i < 30; i++ {
		profile.Skills = append(profile.Skills, "skill-"+string(rune('a'+i)))
	}

	result := Analyze(profile)

	assert.LessOrEqual(t, len(result.SearchableKeywords), 20)
	assert.LessOrEqual(t, len(result.OpportunityTypes), 6)
	assert.LessOrEqual(t, len(result.FundingPreferences), 4)
}

func TestParseGeographicScope_CityState(t *testing.T) {
	profile := &types.ArtistProfile{Location: "Brooklyn, NY"}

	scope := parseGeographicScope(profile)

	assert.Equal(t, "Brooklyn", scope.City)
	assert.Equal(t, "NY", scope.State)
	assert.Equal(t, "Northeast", scope.Region)
	assert.Equal(t, "United States", scope.Country)
}

func TestParseGeographicScope_FullStateName(t *testing.T) {
	profile := &types.ArtistProfile{Location: "Austin, Texas"}

	scope := parseGeographicScope(profile)

	assert.Equal(t, "TX", scope.State)
	assert.Equal(t, "South", scope.Region)
}

func TestParseGeographicScope_CityCountry(t *testing.T) {
	profile := &types.ArtistProfile{Location: "Berlin, Germany"}

	scope := parseGeographicScope(profile)

	assert.Equal(t, "Berlin", scope.City)
	assert.Empty(t, scope.State)
	assert.Equal(t, "Germany", scope.Country)
	assert.Empty(t, scope.Region)
}

func TestParseGeographicScope_Empty(t *testing.T) {
	scope := parseGeographicScope(&types.ArtistProfile{})

	assert.Empty(t, scope.City)
	assert.False(t, scope.RemoteEligible)
}

func TestParseGeographicScope_RemoteFromBio(t *testing.T) {
	profile := &types.ArtistProfile{Bio: "I teach online workshops."}

	scope := parseGeographicScope(profile)

	assert.True(t, scope.RemoteEligible)
}

func TestInferExperienceLevel_Professional(t *testing.T) {
	profile := &types.ArtistProfile{
		Experience: "professional, established, exhibited",
	}

	level := inferExperienceLevel(profile)

	assert.Equal(t, types.ExperienceProfessional, level.Category)
	assert.Contains(t, level.Keywords, "professional")
}

func TestInferExperienceLevel_TieFavorsDeclarationOrder(t *testing.T) {
	// One hit each for professional ("gallery") and advanced ("mfa")
	profile := &types.ArtistProfile{Bio: "gallery artist with an mfa"}

	level := inferExperienceLevel(profile)

	assert.Equal(t, types.ExperienceProfessional, level.Category)
}

func TestInferExperienceLevel_NoSignalsDefaultsIntermediate(t *testing.T) {
	level := inferExperienceLevel(&types.ArtistProfile{Bio: "I make things."})

	assert.Equal(t, types.ExperienceIntermediate, level.Category)
	assert.Nil(t, level.YearsEstimate)
}

func TestInferExperienceLevel_YearsEstimateTakesMax(t *testing.T) {
	profile := &types.ArtistProfile{
		Bio:        "5 years of printmaking",
		Experience: "12 years as a working artist",
	}

	level := inferExperienceLevel(profile)

	require.NotNil(t, level.YearsEstimate)
	assert.Equal(t, 12, *level.YearsEstimate)
}

func TestAnalyze_OpportunityTypesForProfessional(t *testing.T) {
	result := Analyze(sampleProfile())

	assert.Contains(t, result.OpportunityTypes, "grant")
	assert.Contains(t, result.OpportunityTypes, "fellowship")
}
