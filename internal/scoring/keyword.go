package scoring

import (
	"context"
	"math"
	"strings"

	"github.com/jonathan/opportunity-matcher/internal/types"
)

// Keyword category importance weights
const (
	keywordWeightMedium     = 3.0
	keywordWeightSkill      = 2.5
	keywordWeightInterest   = 2.0
	keywordWeightExperience = 1.8
	keywordWeightLocation   = 1.5
	keywordWeightGeneral    = 1.0
)

// Opportunity field importance weights
const (
	fieldWeightTitle        = 3.0
	fieldWeightTags         = 2.5
	fieldWeightOrganization = 2.0
	fieldWeightDescription  = 1.0
	fieldWeightLocation     = 0.8
	fieldWeightAmount       = 0.5
)

// maxGeneralKeywords caps how many free-text words join the keyword set
const maxGeneralKeywords = 10

// Suffix stripping rules, applied in order; the first matching suffix wins.
// A rule only applies when the remaining stem is at least 3 characters.
var stemSuffixes = []string{
	"ing", "ed", "er", "est", "ly", "ion", "tion", "sion",
	"ness", "ment", "able", "ible", "s",
}

var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "that": true,
	"this": true, "from": true, "have": true, "are": true, "was": true,
	"has": true, "her": true, "his": true, "their": true, "them": true,
	"into": true, "about": true, "been": true, "were": true, "will": true,
	"would": true, "work": true, "works": true, "also": true, "more": true,
	"who": true, "which": true, "where": true, "when": true, "through": true,
}

// weightedKeyword is one profile keyword with its category importance
type weightedKeyword struct {
	stem   string
	weight float64
}

// KeywordScorer counts weighted profile-keyword occurrences across weighted
// opportunity fields, squashing the raw hit mass through tanh.
type KeywordScorer struct{}

// NewKeywordScorer creates a keyword scorer
func NewKeywordScorer() *KeywordScorer { return &KeywordScorer{} }

// Name identifies the signal
func (s *KeywordScorer) Name() string { return "keyword" }

// Score returns the keyword signal. Pure string math; never fails.
func (s *KeywordScorer) Score(_ context.Context, profile *types.ArtistProfile, opp *types.Opportunity) (float64, error) {
	keywords := extractProfileKeywords(profile)
	if len(keywords) == 0 {
		return 0, nil
	}

	fields := []struct {
		text   string
		weight float64
	}{
		{strings.ToLower(opp.Title), fieldWeightTitle},
		{strings.ToLower(strings.Join(opp.Tags, " ")), fieldWeightTags},
		{strings.ToLower(opp.Organization), fieldWeightOrganization},
		{strings.ToLower(opp.Description), fieldWeightDescription},
		{strings.ToLower(opp.Location), fieldWeightLocation},
		{strings.ToLower(opp.Amount), fieldWeightAmount},
	}

	weightedScore := 0.0
	matchCount := 0
	for _, keyword := range keywords {
		for _, field := range fields {
			if field.text == "" {
				continue
			}
			occurrences := strings.Count(field.text, keyword.stem)
			if occurrences == 0 {
				continue
			}
			weightedScore += float64(occurrences) * keyword.weight * field.weight
			matchCount += occurrences
		}
	}

	bonus := math.Min(0.2, float64(matchCount)*0.02)
	return clamp01(math.Tanh(weightedScore/10) + bonus), nil
}

// extractProfileKeywords buckets profile terms by category, stems them, and
// drops stop words. Deduplication keeps the first (highest-weight) bucket.
func extractProfileKeywords(profile *types.ArtistProfile) []weightedKeyword {
	var keywords []weightedKeyword
	seen := make(map[string]bool)

	add := func(term string, weight float64) {
		for _, word := range strings.Fields(strings.ToLower(term)) {
			word = strings.Trim(word, ".,;:!?()\"'")
			if len(word) < 3 || stopWords[word] {
				continue
			}
			stem := stemWord(word)
			if stem == "" || seen[stem] {
				continue
			}
			seen[stem] = true
			keywords = append(keywords, weightedKeyword{stem: stem, weight: weight})
		}
	}

	for _, medium := range profile.Mediums {
		add(medium, keywordWeightMedium)
	}
	for _, skill := range profile.Skills {
		add(skill, keywordWeightSkill)
	}
	for _, interest := range profile.Interests {
		add(interest, keywordWeightInterest)
	}
	add(profile.Experience, keywordWeightExperience)
	add(profile.Location, keywordWeightLocation)

	general := 0
	for _, word := range strings.Fields(strings.ToLower(profile.Statement + " " + profile.Bio)) {
		if general >= maxGeneralKeywords {
			break
		}
		word = strings.Trim(word, ".,;:!?()\"'")
		if len(word) < 4 || stopWords[word] {
			continue
		}
		stem := stemWord(word)
		if stem == "" || seen[stem] {
			continue
		}
		seen[stem] = true
		keywords = append(keywords, weightedKeyword{stem: stem, weight: keywordWeightGeneral})
		general++
	}

	return keywords
}

// stemWord strips the first matching suffix from the fixed rule list,
// provided the stem keeps at least 3 characters.
func stemWord(word string) string {
	for _, suffix := range stemSuffixes {
		if strings.HasSuffix(word, suffix) {
			stem := strings.TrimSuffix(word, suffix)
			if len(stem) >= 3 {
				return stem
			}
			// First matching suffix wins even when it cannot apply
			return word
		}
	}
	return word
}
