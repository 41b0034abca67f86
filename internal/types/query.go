package types

// DiscoverySource identifies which external discovery channel a query targets
type DiscoverySource string

// Supported discovery sources
const (
	SourceWebSearch  DiscoverySource = "websearch"
	SourceSocial     DiscoverySource = "social"
	SourceBookmark   DiscoverySource = "bookmark"
	SourceNewsletter DiscoverySource = "newsletter"
)

// GeneratedQuery is one candidate search string produced by a query template
type GeneratedQuery struct {
	Text            string          `json:"text"`
	Source          DiscoverySource `json:"source"`
	Priority        float64         `json:"priority"`
	Context         string          `json:"context,omitempty"`
	ExpectedResults int             `json:"expected_results"`
}

// QueryGenerationResult is the metadata-rich output of query generation
type QueryGenerationResult struct {
	Queries      []GeneratedQuery        `json:"queries"`
	Distribution map[DiscoverySource]int `json:"distribution"`
	CacheHit     bool                    `json:"cache_hit"`
	AIAssisted   bool                    `json:"ai_assisted"`
}

// QueryContext is the bounded prompt context handed to AI-assisted templates
type QueryContext struct {
	ProfileSummary string   `json:"profile_summary"`
	Objectives     []string `json:"objectives"`
	Hints          []string `json:"hints"`
	Constraints    []string `json:"constraints"`
}
