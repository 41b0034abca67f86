package analysis

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/opportunity-matcher/internal/types"
)

// yearsPattern matches "<N> year(s)" declarations, optionally with a plus
var yearsPattern = regexp.MustCompile(`(\d+)\s*\+?\s*years?`)

// inferExperienceLevel sums keyword hits per category across the profile's
// free text and takes the arg-max. Ties at the maximum favor declaration
// order: professional > advanced > intermediate > beginner. A profile with no
// matching keywords at all is treated as intermediate.
func inferExperienceLevel(profile *types.ArtistProfile) types.ExperienceLevel {
	text := strings.ToLower(profile.Bio + " " + profile.Statement + " " + profile.Experience)

	bestCategory := ""
	bestScore := 0
	var bestKeywords []string

	for _, category := range experienceCategoryOrder {
		score := 0
		var matched []string
		for _, keyword := range experienceKeywords[category] {
			if strings.Contains(text, keyword) {
				score++
				matched = append(matched, keyword)
			}
		}
		// Strictly greater keeps the earlier (higher-priority) category on ties
		if score > bestScore {
			bestScore = score
			bestCategory = category
			bestKeywords = matched
		}
	}

	level := types.ExperienceLevel{
		Category: types.ExperienceIntermediate,
		Keywords: bestKeywords,
	}
	if bestScore > 0 {
		level.Category = types.ExperienceCategory(bestCategory)
	}
	if years, ok := extractMaxYears(text); ok {
		level.YearsEstimate = &years
	}
	return level
}

// extractMaxYears returns the largest "<N> years" figure mentioned in text
func extractMaxYears(text string) (int, bool) {
	matches := yearsPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return 0, false
	}

	maxYears := 0
	found := false
	for _, match := range matches {
		years, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		found = true
		if years > maxYears {
			maxYears = years
		}
	}
	return maxYears, found
}
