// Package types provides type definitions for structured data used throughout the opportunity-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// ArtistProfile represents a creative professional's self-description.
// It is owned by the persistence layer and treated as read-only input here.
type ArtistProfile struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Bio        string    `json:"bio,omitempty"`
	Statement  string    `json:"statement,omitempty"`
	Mediums    []string  `json:"mediums"`
	Skills     []string  `json:"skills"`
	Interests  []string  `json:"interests"`
	Experience string    `json:"experience,omitempty"`
	Location   string    `json:"location,omitempty"`
}

// ExperienceCategory is an inferred career stage
type ExperienceCategory string

// Experience categories in tie-break priority order (highest first)
const (
	ExperienceProfessional ExperienceCategory = "professional"
	ExperienceAdvanced     ExperienceCategory = "advanced"
	ExperienceIntermediate ExperienceCategory = "intermediate"
	ExperienceBeginner     ExperienceCategory = "beginner"
)

// ExperienceLevel represents the inferred experience level of a profile
type ExperienceLevel struct {
	Category      ExperienceCategory `json:"category"`
	YearsEstimate *int               `json:"years_estimate,omitempty"`
	Keywords      []string           `json:"keywords"`
}

// GeographicScope represents the parsed geography of a profile location string
type GeographicScope struct {
	City           string `json:"city,omitempty"`
	State          string `json:"state,omitempty"`
	Country        string `json:"country,omitempty"`
	Region         string `json:"region,omitempty"`
	RemoteEligible bool   `json:"remote_eligible"`
}

// ProfileAnalysis is the structured result of analyzing an artist profile.
// It is a pure function of the profile text: identical input produces an
// identical analysis, which is what makes content-hash caching valid.
type ProfileAnalysis struct {
	PrimaryMediums     []string        `json:"primary_mediums"`
	SecondaryMediums   []string        `json:"secondary_mediums"`
	CoreSkills         []string        `json:"core_skills"`
	SupportingSkills   []string        `json:"supporting_skills"`
	PrimaryInterests   []string        `json:"primary_interests"`
	GeographicScope    GeographicScope `json:"geographic_scope"`
	ExperienceLevel    ExperienceLevel `json:"experience_level"`
	SearchableKeywords []string        `json:"searchable_keywords"`
	OpportunityTypes   []string        `json:"opportunity_types"`
	FundingPreferences []string        `json:"funding_preferences"`
}
