package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/opportunity-matcher/internal/db"
)

var scoreCommand = &cobra.Command{
	Use:   "score",
	Short: "Score stored opportunities against a profile and persist the results",
	RunE:  runScoreCmd,
}

var (
	scoreConfigPath string
	scoreProfileID  string
	scoreLimit      int
)

func init() {
	scoreCommand.Flags().StringVar(&scoreConfigPath, "config", "", "Path to config.json file")
	scoreCommand.Flags().StringVarP(&scoreProfileID, "profile", "p", "", "Profile UUID (required)")
	scoreCommand.Flags().IntVar(&scoreLimit, "limit", 100, "Maximum opportunities to score")
	_ = scoreCommand.MarkFlagRequired("profile")

	rootCmd.AddCommand(scoreCommand)
}

func runScoreCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	profileID, err := uuid.Parse(scoreProfileID)
	if err != nil {
		return fmt.Errorf("invalid profile id %q: %w", scoreProfileID, err)
	}

	cfg, err := loadConfig(scoreConfigPath)
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database URL is required (config file or DATABASE_URL)")
	}

	rt, err := buildRuntime(ctx, cfg)
	if err != nil {
		return err
	}
	defer rt.close()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	profile, err := database.GetProfile(ctx, profileID)
	if err != nil {
		return err
	}

	opportunities, err := database.ListUnscoredOpportunities(ctx, scoreLimit)
	if err != nil {
		return err
	}
	if len(opportunities) == 0 {
		fmt.Println("No unscored opportunities found.")
		return nil
	}

	result, err := rt.matcher.ScoreOpportunities(ctx, profile, opportunities)
	if err != nil {
		return err
	}

	saved := 0
	for i := range result.Detailed {
		if err := database.SaveScore(ctx, &result.Detailed[i]); err != nil {
			rt.log.Warn("failed to persist score",
				zap.String("opportunity_id", result.Detailed[i].OpportunityID.String()),
				zap.Error(err))
			continue
		}
		saved++
	}

	fmt.Printf("Scored %d opportunities (average %.3f), saved %d, %d errors\n",
		len(result.Detailed), result.AverageScore, saved, len(result.Errors))
	for _, batchErr := range result.Errors {
		fmt.Printf("  error for %s: %s\n", batchErr.OpportunityID, batchErr.Message)
	}
	return nil
}
