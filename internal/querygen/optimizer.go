package querygen

import (
	"sort"
	"strings"

	"github.com/jonathan/opportunity-matcher/internal/types"
)

// Optimize sorts candidates by (priority desc, expected results desc), drops
// case/whitespace-normalized duplicates keeping the first (highest-ranked)
// occurrence, then truncates to maxQueries. maxQueries <= 0 means no cap.
func Optimize(candidates []types.GeneratedQuery, maxQueries int) []types.GeneratedQuery {
	sorted := make([]types.GeneratedQuery, len(candidates))
	copy(sorted, candidates)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority > sorted[j].Priority
		}
		return sorted[i].ExpectedResults > sorted[j].ExpectedResults
	})

	seen := make(map[string]bool, len(sorted))
	deduped := make([]types.GeneratedQuery, 0, len(sorted))
	for _, query := range sorted {
		normalized := normalizeQueryText(query.Text)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		deduped = append(deduped, query)
	}

	if maxQueries > 0 && len(deduped) > maxQueries {
		deduped = deduped[:maxQueries]
	}
	return deduped
}

// normalizeQueryText lowercases and collapses interior whitespace so that
// queries differing only in case or spacing deduplicate together.
func normalizeQueryText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
