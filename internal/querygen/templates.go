package querygen

import (
	"fmt"
	"strings"

	"github.com/jonathan/opportunity-matcher/internal/types"
)

// Priority bands for template output. Higher priorities survive deduplication
// and truncation first.
const (
	priorityMediumType = 0.9
	priorityLocation   = 0.8
	priorityInterest   = 0.7
	prioritySkill      = 0.6
	priorityFallback   = 0.3
)

// BasicTemplates generates deterministic queries for one discovery source by
// interpolating mediums, skills, interests, and location into fixed patterns.
// Output is capped at quota, keeping the highest-priority patterns.
func BasicTemplates(analysis types.ProfileAnalysis, source types.DiscoverySource, quota int) []types.GeneratedQuery {
	if quota <= 0 {
		return nil
	}

	var queries []types.GeneratedQuery
	add := func(text string, priority float64, expected int, context string) {
		queries = append(queries, types.GeneratedQuery{
			Text:            text,
			Source:          source,
			Priority:        priority,
			Context:         context,
			ExpectedResults: expected,
		})
	}

	year := "2026"
	for _, medium := range analysis.PrimaryMediums {
		for _, oppType := range analysis.OpportunityTypes {
			add(fmt.Sprintf("%s %s %s", medium, oppType, year), priorityMediumType, 25, "medium+type")
		}
	}

	if city := analysis.GeographicScope.City; city != "" {
		for _, medium := range analysis.PrimaryMediums {
			add(fmt.Sprintf("%s opportunities %s", medium, city), priorityLocation, 15, "medium+city")
		}
	}
	if analysis.GeographicScope.RemoteEligible {
		for _, oppType := range analysis.OpportunityTypes {
			add(fmt.Sprintf("remote %s for artists", oppType), priorityLocation, 20, "remote+type")
		}
	}

	for _, interest := range analysis.PrimaryInterests {
		add(fmt.Sprintf("%s art grant open call", interest), priorityInterest, 10, "interest")
	}
	for _, skill := range analysis.CoreSkills {
		add(fmt.Sprintf("%s artist residency application", skill), prioritySkill, 10, "skill")
	}

	if len(queries) > quota {
		queries = queries[:quota]
	}
	return queries
}

// FallbackQueries is the minimal deterministic pair returned for a source
// when every other template path fails. Generation never yields zero queries
// for a requested source.
func FallbackQueries(analysis types.ProfileAnalysis, source types.DiscoverySource) []types.GeneratedQuery {
	medium := "artist"
	if len(analysis.PrimaryMediums) > 0 {
		medium = analysis.PrimaryMediums[0]
	}

	return []types.GeneratedQuery{
		{
			Text:            strings.TrimSpace(medium + " grants for artists"),
			Source:          source,
			Priority:        priorityFallback,
			Context:         "fallback",
			ExpectedResults: 20,
		},
		{
			Text:            strings.TrimSpace(medium + " open call residency"),
			Source:          source,
			Priority:        priorityFallback,
			Context:         "fallback",
			ExpectedResults: 15,
		},
	}
}
