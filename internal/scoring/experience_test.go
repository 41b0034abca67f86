package scoring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/opportunity-matcher/internal/types"
)

func TestExperienceScorer_Score(t *testing.T) {
	cases := []struct {
		name        string
		profileText string
		oppText     string
		expected    float64
	}{
		{
			"exact advanced match",
			"professional, established, exhibited",
			"Fellowship for advanced practitioners",
			1.0,
		},
		{
			"open to any level",
			"professional painter",
			"Open call for all artists",
			0.8,
		},
		{
			"intermediate profile broadly eligible",
			"painter working in oils",
			"Residency for emerging artists",
			0.7,
		},
		{
			"beginner vs advanced mismatch",
			"student just learning to paint",
			"mid-career artist fellowship",
			0.4,
		},
		{
			"beginner exact match",
			"aspiring hobbyist",
			"entry-level mentorship for emerging artists",
			1.0,
		},
	}

	scorer := NewExperienceScorer()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile := &types.ArtistProfile{Experience: tc.profileText}
			opp := &types.Opportunity{Title: tc.oppText}

			score, err := scorer.Score(context.Background(), profile, opp)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, score)
		})
	}
}

func TestClassifyProfileLevel_ReadsBioAndStatement(t *testing.T) {
	profile := &types.ArtistProfile{Bio: "Represented by a gallery in Chelsea"}
	assert.Equal(t, "advanced", classifyProfileLevel(profile))

	profile = &types.ArtistProfile{Statement: "I am new to printmaking"}
	assert.Equal(t, "beginner", classifyProfileLevel(profile))

	assert.Equal(t, "intermediate", classifyProfileLevel(&types.ArtistProfile{}))
}
