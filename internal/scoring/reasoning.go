package scoring

import (
	"strings"

	"github.com/jonathan/opportunity-matcher/internal/types"
)

// maxReasoningPhrases caps the reasoning string length
const maxReasoningPhrases = 4

// BuildReasoning produces a short human-readable explanation: one
// overall-tier phrase followed by per-signal phrases chosen against fixed
// thresholds, truncated to the first four phrases.
func BuildReasoning(overall float64, scores types.ComponentScores) string {
	var phrases []string

	switch {
	case overall > 0.8:
		phrases = append(phrases, "Excellent match")
	case overall > 0.6:
		phrases = append(phrases, "Good match")
	case overall > 0.4:
		phrases = append(phrases, "Moderate match")
	default:
		phrases = append(phrases, "Weak match")
	}

	if scores.Semantic > 0.7 {
		phrases = append(phrases, "strong thematic alignment with your practice")
	} else if scores.Semantic < 0.3 {
		phrases = append(phrases, "limited thematic overlap")
	}

	if scores.Keyword > 0.7 {
		phrases = append(phrases, "many of your keywords appear in the listing")
	} else if scores.Keyword < 0.3 {
		phrases = append(phrases, "few keyword matches")
	}

	if scores.Category > 0.8 {
		phrases = append(phrases, "your medium is directly featured")
	} else if scores.Category < 0.4 {
		phrases = append(phrases, "medium fit is uncertain")
	}

	if scores.Location > 0.7 {
		phrases = append(phrases, "location works for you")
	} else if scores.Location < 0.3 {
		phrases = append(phrases, "location may be a barrier")
	}

	if scores.Experience > 0.7 {
		phrases = append(phrases, "experience level fits")
	} else if scores.Experience < 0.3 {
		phrases = append(phrases, "experience level may not fit")
	}

	if scores.Deadline > 0.8 {
		phrases = append(phrases, "deadline is coming up soon")
	} else if scores.Deadline < 0.3 {
		phrases = append(phrases, "deadline has passed or is far out")
	}

	if len(phrases) > maxReasoningPhrases {
		phrases = phrases[:maxReasoningPhrases]
	}
	return strings.Join(phrases, "; ")
}
