package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/opportunity-matcher/internal/errs"
	"github.com/jonathan/opportunity-matcher/internal/types"
)

// GetOpportunity loads a discovered opportunity by id
func (db *DB) GetOpportunity(ctx context.Context, id uuid.UUID) (*types.Opportunity, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, title, description, COALESCE(organization, ''), COALESCE(url, ''),
		        COALESCE(location, ''), COALESCE(amount, ''), COALESCE(tags, '{}'), deadline
		 FROM opportunities WHERE id = $1`,
		id,
	)

	opp, err := scanOpportunity(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.NotFoundError{Resource: "opportunity", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to load opportunity %s: %w", id, err)
	}
	return opp, nil
}

// ListUnscoredOpportunities returns up to limit opportunities that have not
// been scored yet, newest first.
func (db *DB) ListUnscoredOpportunities(ctx context.Context, limit int) ([]*types.Opportunity, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, description, COALESCE(organization, ''), COALESCE(url, ''),
		        COALESCE(location, ''), COALESCE(amount, ''), COALESCE(tags, '{}'), deadline
		 FROM opportunities
		 WHERE relevance_score IS NULL
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}
	defer rows.Close()

	var opportunities []*types.Opportunity
	for rows.Next() {
		opp, err := scanOpportunity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan opportunity: %w", err)
		}
		opportunities = append(opportunities, opp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read opportunities: %w", err)
	}
	return opportunities, nil
}

// SaveScore persists a scoring result onto its opportunity row
func (db *DB) SaveScore(ctx context.Context, result *types.ScoringResult) error {
	components, err := json.Marshal(result.ComponentScores)
	if err != nil {
		return fmt.Errorf("failed to encode component scores: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE opportunities
		 SET relevance_score = $1, component_scores = $2, ai_service_used = $3, scored_at = NOW()
		 WHERE id = $4`,
		result.OverallScore, components, result.AIServiceUsed, result.OpportunityID,
	)
	if err != nil {
		return fmt.Errorf("failed to save score for %s: %w", result.OpportunityID, err)
	}
	if tag.RowsAffected() == 0 {
		return &errs.NotFoundError{Resource: "opportunity", ID: result.OpportunityID.String()}
	}
	return nil
}

// scanOpportunity reads one opportunity from a row
func scanOpportunity(row pgx.Row) (*types.Opportunity, error) {
	var opp types.Opportunity
	err := row.Scan(
		&opp.ID, &opp.Title, &opp.Description, &opp.Organization, &opp.URL,
		&opp.Location, &opp.Amount, &opp.Tags, &opp.Deadline,
	)
	if err != nil {
		return nil, err
	}
	return &opp, nil
}
