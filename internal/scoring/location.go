package scoring

import (
	"context"
	"strings"

	"github.com/jonathan/opportunity-matcher/internal/types"
)

// Location signal values
const (
	locationBothMissing = 0.5
	locationOneMissing  = 0.7
	locationExactMatch  = 1.0
	locationRemote      = 0.9
	locationContainment = 0.8
	locationMismatch    = 0.3
)

// LocationScorer compares the profile and opportunity location strings
type LocationScorer struct{}

// NewLocationScorer creates a location scorer
func NewLocationScorer() *LocationScorer { return &LocationScorer{} }

// Name identifies the signal
func (s *LocationScorer) Name() string { return "location" }

// Score compares locations: neutral when both are missing, slightly positive
// when one side is missing, full on exact match, moderate on containment,
// high for remote opportunities, low otherwise.
func (s *LocationScorer) Score(_ context.Context, profile *types.ArtistProfile, opp *types.Opportunity) (float64, error) {
	profileLoc := strings.ToLower(strings.TrimSpace(profile.Location))
	oppLoc := strings.ToLower(strings.TrimSpace(opp.Location))

	switch {
	case profileLoc == "" && oppLoc == "":
		return locationBothMissing, nil
	case profileLoc == "" || oppLoc == "":
		return locationOneMissing, nil
	case profileLoc == oppLoc:
		return locationExactMatch, nil
	case strings.Contains(oppLoc, profileLoc) || strings.Contains(profileLoc, oppLoc):
		return locationContainment, nil
	case strings.Contains(oppLoc, "remote") || strings.Contains(oppLoc, "online"):
		return locationRemote, nil
	default:
		return locationMismatch, nil
	}
}
