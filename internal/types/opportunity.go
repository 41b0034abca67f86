package types

import (
	"time"

	"github.com/google/uuid"
)

// Opportunity represents an externally discovered grant, residency, or
// exhibition candidate to be scored against a profile. Discovery owns the
// descriptive fields; the scoring engine fills in the score fields.
type Opportunity struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title" validate:"required"`
	Description  string     `json:"description" validate:"required"`
	Organization string     `json:"organization,omitempty"`
	URL          string     `json:"url,omitempty" validate:"omitempty,url"`
	Location     string     `json:"location,omitempty"`
	Amount       string     `json:"amount,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
	Deadline     *time.Time `json:"deadline,omitempty"`

	// Score writeback fields, populated after scoring
	RelevanceScore  float64          `json:"relevance_score,omitempty"`
	ComponentScores *ComponentScores `json:"component_scores,omitempty"`
	AIServiceUsed   bool             `json:"ai_service_used,omitempty"`
}

// SearchText returns the concatenated free text of the opportunity used by
// substring-based scorers.
func (o *Opportunity) SearchText() string {
	text := o.Title + " " + o.Description
	for _, tag := range o.Tags {
		text += " " + tag
	}
	return text
}
