// Package querygen turns profile analyses into ranked, deduplicated search
// queries for the external discovery subsystem.
package querygen

import (
	"fmt"
	"strings"

	"github.com/jonathan/opportunity-matcher/internal/types"
)

// defaultMaxContextChars bounds the rendered prompt context length
const defaultMaxContextChars = 2000

// BuildContext turns a profile analysis into the structured prompt context
// consumed by AI-assisted query templates.
func BuildContext(analysis types.ProfileAnalysis) types.QueryContext {
	qc := types.QueryContext{
		ProfileSummary: summarizeProfile(analysis),
	}

	for _, oppType := range analysis.OpportunityTypes {
		qc.Objectives = append(qc.Objectives, fmt.Sprintf("find %s opportunities", oppType))
	}

	if len(analysis.PrimaryInterests) > 0 {
		qc.Hints = append(qc.Hints, "themes: "+strings.Join(analysis.PrimaryInterests, ", "))
	}
	if len(analysis.FundingPreferences) > 0 {
		qc.Hints = append(qc.Hints, "funding: "+strings.Join(analysis.FundingPreferences, ", "))
	}

	if analysis.GeographicScope.RemoteEligible {
		qc.Constraints = append(qc.Constraints, "include remote and online opportunities")
	}
	if region := analysis.GeographicScope.Region; region != "" {
		qc.Constraints = append(qc.Constraints, "prefer opportunities in the "+region+" region")
	}
	qc.Constraints = append(qc.Constraints,
		"queries must be literal search strings, under 12 words each")

	return qc
}

// summarizeProfile produces a one-paragraph summary of the analysis
func summarizeProfile(analysis types.ProfileAnalysis) string {
	var sb strings.Builder

	sb.WriteString(string(analysis.ExperienceLevel.Category))
	sb.WriteString(" artist")
	if len(analysis.PrimaryMediums) > 0 {
		sb.WriteString(" working in ")
		sb.WriteString(strings.Join(analysis.PrimaryMediums, ", "))
	}
	if len(analysis.CoreSkills) > 0 {
		sb.WriteString("; skills: ")
		sb.WriteString(strings.Join(analysis.CoreSkills, ", "))
	}
	if city := analysis.GeographicScope.City; city != "" {
		sb.WriteString("; based in ")
		sb.WriteString(city)
		if analysis.GeographicScope.State != "" {
			sb.WriteString(", " + analysis.GeographicScope.State)
		}
	}
	return sb.String()
}

// RenderContext flattens a query context into prompt text bounded by
// maxChars. Whole sections are dropped from the end until the rendered text
// fits; the profile summary is always kept (truncated as a last resort).
func RenderContext(qc types.QueryContext, maxChars int) string {
	if maxChars <= 0 {
		maxChars = defaultMaxContextChars
	}

	sections := []string{"Profile: " + qc.ProfileSummary}
	if len(qc.Objectives) > 0 {
		sections = append(sections, "Objectives:\n- "+strings.Join(qc.Objectives, "\n- "))
	}
	if len(qc.Hints) > 0 {
		sections = append(sections, "Hints:\n- "+strings.Join(qc.Hints, "\n- "))
	}
	if len(qc.Constraints) > 0 {
		sections = append(sections, "Constraints:\n- "+strings.Join(qc.Constraints, "\n- "))
	}

	for len(sections) > 1 {
		rendered := strings.Join(sections, "\n\n")
		if len(rendered) <= maxChars {
			return rendered
		}
		sections = sections[:len(sections)-1]
	}

	rendered := sections[0]
	if len(rendered) > maxChars {
		rendered = rendered[:maxChars]
	}
	return rendered
}
