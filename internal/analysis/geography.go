package analysis

import (
	"strings"

	"github.com/jonathan/opportunity-matcher/internal/types"
)

var remoteMarkers = []string{"remote", "online", "virtual", "anywhere"}

// parseGeographicScope derives a geographic scope by naive comma-splitting of
// the location string plus a US-state-to-region lookup. It never fails;
// unparseable locations leave fields empty.
func parseGeographicScope(profile *types.ArtistProfile) types.GeographicScope {
	scope := types.GeographicScope{
		RemoteEligible: mentionsRemote(profile),
	}

	location := strings.TrimSpace(profile.Location)
	if location == "" {
		return scope
	}

	parts := strings.Split(location, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	switch len(parts) {
	case 1:
		// Single token: a bare state name/code stays a state, anything else
		// is treated as a city.
		if code, ok := normalizeUSState(parts[0]); ok {
			scope.State = code
		} else {
			scope.City = parts[0]
		}
	case 2:
		scope.City = parts[0]
		if code, ok := normalizeUSState(parts[1]); ok {
			scope.State = code
		} else {
			scope.Country = parts[1]
		}
	default:
		scope.City = parts[0]
		if code, ok := normalizeUSState(parts[1]); ok {
			scope.State = code
		} else {
			scope.State = parts[1]
		}
		scope.Country = parts[2]
	}

	if scope.State != "" {
		if region, ok := usStateRegions[scope.State]; ok {
			scope.Region = region
			if scope.Country == "" {
				scope.Country = "United States"
			}
		}
	}

	return scope
}

// normalizeUSState resolves a state token (two-letter code or full name) to
// its two-letter code.
func normalizeUSState(token string) (string, bool) {
	token = strings.TrimSpace(token)
	if len(token) == 2 {
		code := strings.ToUpper(token)
		if _, ok := usStateRegions[code]; ok {
			return code, true
		}
		return "", false
	}
	if code, ok := usStateNames[strings.ToLower(token)]; ok {
		return code, true
	}
	return "", false
}

// mentionsRemote reports whether any profile text signals remote eligibility
func mentionsRemote(profile *types.ArtistProfile) bool {
	combined := strings.ToLower(profile.Location + " " + profile.Bio + " " + profile.Statement)
	for _, marker := range remoteMarkers {
		if strings.Contains(combined, marker) {
			return true
		}
	}
	return false
}
