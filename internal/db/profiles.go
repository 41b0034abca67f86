package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/opportunity-matcher/internal/errs"
	"github.com/jonathan/opportunity-matcher/internal/types"
)

// GetProfile loads an artist profile by id
func (db *DB) GetProfile(ctx context.Context, id uuid.UUID) (*types.ArtistProfile, error) {
	var profile types.ArtistProfile
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, COALESCE(bio, ''), COALESCE(statement, ''),
		        COALESCE(mediums, '{}'), COALESCE(skills, '{}'), COALESCE(interests, '{}'),
		        COALESCE(experience, ''), COALESCE(location, '')
		 FROM artist_profiles WHERE id = $1`,
		id,
	).Scan(
		&profile.ID, &profile.Name, &profile.Bio, &profile.Statement,
		&profile.Mediums, &profile.Skills, &profile.Interests,
		&profile.Experience, &profile.Location,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.NotFoundError{Resource: "profile", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to load profile %s: %w", id, err)
	}
	return &profile, nil
}
