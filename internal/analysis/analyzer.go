// Package analysis turns raw artist profiles into structured analyses that
// drive query generation and relevance scoring.
package analysis

import (
	"sort"
	"strings"

	"github.com/jonathan/opportunity-matcher/internal/types"
)

// Caps on derived list sizes
const (
	maxSearchableKeywords = 20
	maxOpportunityTypes   = 6
	maxFundingPreferences = 4
)

// Analyze converts a profile into a ProfileAnalysis. It is a total,
// deterministic, side-effect-free function: missing fields are treated as
// empty, identical input always yields an identical analysis, and it is safe
// to call concurrently without synchronization.
func Analyze(profile *types.ArtistProfile) types.ProfileAnalysis {
	if profile == nil {
		profile = &types.ArtistProfile{}
	}

	primary, secondary := bucketMediums(profile.Mediums)
	core, supporting := bucketSkills(profile.Skills)
	interests := clusterInterests(profile.Interests)
	scope := parseGeographicScope(profile)
	level := inferExperienceLevel(profile)

	analysis := types.ProfileAnalysis{
		PrimaryMediums:   primary,
		SecondaryMediums: secondary,
		CoreSkills:       core,
		SupportingSkills: supporting,
		PrimaryInterests: interests,
		GeographicScope:  scope,
		ExperienceLevel:  level,
	}
	analysis.SearchableKeywords = buildSearchableKeywords(analysis)
	analysis.OpportunityTypes = deriveOpportunityTypes(analysis)
	analysis.FundingPreferences = deriveFundingPreferences(analysis)

	return analysis
}

// bucketMediums keeps the declared mediums as primary (normalized,
// deduplicated) and expands them into secondary mediums via the alias table.
func bucketMediums(mediums []string) (primary, secondary []string) {
	seen := make(map[string]bool)
	secondarySeen := make(map[string]bool)

	for _, medium := range mediums {
		normalized := strings.ToLower(strings.TrimSpace(medium))
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		primary = append(primary, normalized)

		for alias, expansions := range mediumAliases {
			if !strings.Contains(normalized, alias) {
				continue
			}
			for _, expansion := range expansions {
				if expansion == normalized || secondarySeen[expansion] {
					continue
				}
				secondarySeen[expansion] = true
				secondary = append(secondary, expansion)
			}
		}
	}

	// Alias map iteration order is not stable; sort so the analysis is
	// deterministic for identical input.
	sort.Strings(secondary)
	return primary, secondary
}

// bucketSkills splits skills into core (technical/traditional) and
// supporting (business/digital) via substring overlap against the fixed
// vocabularies. Unmatched skills default to core.
func bucketSkills(skills []string) (core, supporting []string) {
	seen := make(map[string]bool)
	for _, skill := range skills {
		normalized := strings.ToLower(strings.TrimSpace(skill))
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true

		switch {
		case matchesVocab(normalized, technicalSkillVocab) || matchesVocab(normalized, traditionalSkillVocab):
			core = append(core, normalized)
		case matchesVocab(normalized, businessSkillVocab) || matchesVocab(normalized, digitalSkillVocab):
			supporting = append(supporting, normalized)
		default:
			core = append(core, normalized)
		}
	}
	return core, supporting
}

// matchesVocab reports whether the skill overlaps any vocabulary entry by
// substring containment in either direction.
func matchesVocab(skill string, vocab []string) bool {
	for _, term := range vocab {
		if strings.Contains(skill, term) || strings.Contains(term, skill) {
			return true
		}
	}
	return false
}

// clusterInterests maps declared interests onto the fixed interest clusters
// via keyword containment, preserving cluster declaration order.
func clusterInterests(interests []string) []string {
	matched := make(map[string]bool)
	for _, interest := range interests {
		normalized := strings.ToLower(strings.TrimSpace(interest))
		if normalized == "" {
			continue
		}
		for _, cluster := range interestClusterOrder {
			if matched[cluster] {
				continue
			}
			for _, keyword := range interestClusters[cluster] {
				if strings.Contains(normalized, keyword) {
					matched[cluster] = true
					break
				}
			}
		}
	}

	clusters := make([]string, 0, len(matched))
	for _, cluster := range interestClusterOrder {
		if matched[cluster] {
			clusters = append(clusters, cluster)
		}
	}
	return clusters
}

// buildSearchableKeywords flattens the analyzed lists into a capped keyword
// set in fixed precedence order: primary mediums, core skills, interests,
// secondary mediums, supporting skills.
func buildSearchableKeywords(analysis types.ProfileAnalysis) []string {
	keywords := make([]string, 0, maxSearchableKeywords)
	seen := make(map[string]bool)

	appendAll := func(values []string) {
		for _, value := range values {
			if len(keywords) >= maxSearchableKeywords {
				return
			}
			if value == "" || seen[value] {
				continue
			}
			seen[value] = true
			keywords = append(keywords, value)
		}
	}

	appendAll(analysis.PrimaryMediums)
	appendAll(analysis.CoreSkills)
	appendAll(analysis.PrimaryInterests)
	appendAll(analysis.SecondaryMediums)
	appendAll(analysis.SupportingSkills)
	return keywords
}

// deriveOpportunityTypes picks the opportunity types a profile should target,
// in fixed order, capped at maxOpportunityTypes.
func deriveOpportunityTypes(analysis types.ProfileAnalysis) []string {
	opportunityTypes := []string{"grant", "residency", "exhibition"}

	switch analysis.ExperienceLevel.Category {
	case types.ExperienceProfessional, types.ExperienceAdvanced:
		opportunityTypes = append(opportunityTypes, "fellowship", "commission")
	case types.ExperienceIntermediate:
		opportunityTypes = append(opportunityTypes, "open call", "competition")
	default:
		opportunityTypes = append(opportunityTypes, "workshop", "open call")
	}

	for _, cluster := range analysis.PrimaryInterests {
		if cluster == "social practice" || cluster == "urbanism" {
			opportunityTypes = append(opportunityTypes, "public art commission")
			break
		}
	}

	if len(opportunityTypes) > maxOpportunityTypes {
		opportunityTypes = opportunityTypes[:maxOpportunityTypes]
	}
	return opportunityTypes
}

// deriveFundingPreferences maps experience level and remote eligibility onto
// funding preferences, capped at maxFundingPreferences.
func deriveFundingPreferences(analysis types.ProfileAnalysis) []string {
	var preferences []string

	switch analysis.ExperienceLevel.Category {
	case types.ExperienceProfessional:
		preferences = append(preferences, "project grants", "fellowships", "commissions")
	case types.ExperienceAdvanced:
		preferences = append(preferences, "project grants", "residency stipends")
	case types.ExperienceIntermediate:
		preferences = append(preferences, "emerging artist grants", "residency stipends")
	default:
		preferences = append(preferences, "emerging artist grants", "micro-grants")
	}

	if analysis.GeographicScope.RemoteEligible {
		preferences = append(preferences, "remote-friendly awards")
	}

	if len(preferences) > maxFundingPreferences {
		preferences = preferences[:maxFundingPreferences]
	}
	return preferences
}
