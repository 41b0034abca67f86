package types

import (
	"time"

	"github.com/google/uuid"
)

// ComponentScores holds the six independent relevance signals, each in [0,1]
type ComponentScores struct {
	Semantic   float64 `json:"semantic"`
	Keyword    float64 `json:"keyword"`
	Category   float64 `json:"category"`
	Location   float64 `json:"location"`
	Experience float64 `json:"experience"`
	Deadline   float64 `json:"deadline"`
}

// ScoringWeights controls how component scores are blended into one number
type ScoringWeights struct {
	Semantic   float64 `json:"semantic"`
	Keyword    float64 `json:"keyword"`
	Category   float64 `json:"category"`
	Location   float64 `json:"location"`
	Experience float64 `json:"experience"`
	Deadline   float64 `json:"deadline"`
}

// DefaultScoringWeights returns the standard weight set
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		Semantic:   0.35,
		Keyword:    0.25,
		Category:   0.20,
		Location:   0.10,
		Experience: 0.10,
		Deadline:   0.05,
	}
}

// WeightUpdates carries a partial weight update; nil fields are left unchanged
type WeightUpdates struct {
	Semantic   *float64 `json:"semantic,omitempty"`
	Keyword    *float64 `json:"keyword,omitempty"`
	Category   *float64 `json:"category,omitempty"`
	Location   *float64 `json:"location,omitempty"`
	Experience *float64 `json:"experience,omitempty"`
	Deadline   *float64 `json:"deadline,omitempty"`
}

// Merge returns a copy of w with the non-nil fields of updates applied
func (w ScoringWeights) Merge(updates WeightUpdates) ScoringWeights {
	merged := w
	if updates.Semantic != nil {
		merged.Semantic = *updates.Semantic
	}
	if updates.Keyword != nil {
		merged.Keyword = *updates.Keyword
	}
	if updates.Category != nil {
		merged.Category = *updates.Category
	}
	if updates.Location != nil {
		merged.Location = *updates.Location
	}
	if updates.Experience != nil {
		merged.Experience = *updates.Experience
	}
	if updates.Deadline != nil {
		merged.Deadline = *updates.Deadline
	}
	return merged
}

// Total returns the sum of all active weights
func (w ScoringWeights) Total() float64 {
	return w.Semantic + w.Keyword + w.Category + w.Location + w.Experience + w.Deadline
}

// ScoringResult is the outcome of scoring a single (profile, opportunity) pair
type ScoringResult struct {
	OpportunityID   uuid.UUID       `json:"opportunity_id"`
	OverallScore    float64         `json:"overall_score"`
	ComponentScores ComponentScores `json:"component_scores"`
	Reasoning       string          `json:"reasoning"`
	ProcessingTime  time.Duration   `json:"processing_time"`
	AIServiceUsed   bool            `json:"ai_service_used"`
}

// BatchError records a per-item failure inside a batch scoring call
type BatchError struct {
	OpportunityID uuid.UUID `json:"opportunity_id"`
	Err           error     `json:"-"`
	Message       string    `json:"message"`
}

// BatchScoringResult aggregates the outcome of scoring many opportunities.
// Every successfully scored opportunity id appears exactly once in Scores;
// failures are collected in Errors rather than aborting the batch.
type BatchScoringResult struct {
	Scores       map[uuid.UUID]float64 `json:"scores"`
	Detailed     []ScoringResult       `json:"detailed"`
	AverageScore float64               `json:"average_score"`
	Errors       []BatchError          `json:"errors,omitempty"`
}
