package scoring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/opportunity-matcher/internal/types"
)

func TestCategoryScorer_Score(t *testing.T) {
	cases := []struct {
		name     string
		mediums  []string
		opp      types.Opportunity
		expected float64
	}{
		{
			"no declared mediums is neutral",
			nil,
			types.Opportunity{Title: "Painting Fellowship"},
			0.5,
		},
		{
			"all mediums present",
			[]string{"painting", "sculpture"},
			types.Opportunity{Title: "Painting and Sculpture Biennial"},
			1.0,
		},
		{
			"half the mediums present",
			[]string{"painting", "ceramics"},
			types.Opportunity{Title: "Painting Open Call", Description: "juried show"},
			0.5,
		},
		{
			"match via tags",
			[]string{"photography"},
			types.Opportunity{Title: "Image Makers Grant", Tags: []string{"photography"}},
			1.0,
		},
		{
			"no overlap",
			[]string{"ceramics"},
			types.Opportunity{Title: "Documentary Film Fund", Description: "for filmmakers"},
			0.0,
		},
	}

	scorer := NewCategoryScorer()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile := &types.ArtistProfile{Mediums: tc.mediums}

			score, err := scorer.Score(context.Background(), profile, &tc.opp)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, score)
		})
	}
}
