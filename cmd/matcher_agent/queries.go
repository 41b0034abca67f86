package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/opportunity-matcher/internal/db"
	"github.com/jonathan/opportunity-matcher/internal/querygen"
	"github.com/jonathan/opportunity-matcher/internal/types"
)

var queriesCommand = &cobra.Command{
	Use:   "queries",
	Short: "Generate ranked discovery queries for a stored profile",
	RunE:  runQueriesCmd,
}

var (
	queriesConfigPath string
	queriesProfileID  string
	queriesPriority   string
	queriesSources    []string
	queriesMax        int
)

func init() {
	queriesCommand.Flags().StringVar(&queriesConfigPath, "config", "", "Path to config.json file")
	queriesCommand.Flags().StringVarP(&queriesProfileID, "profile", "p", "", "Profile UUID (required)")
	queriesCommand.Flags().StringVar(&queriesPriority, "priority", "low", "Source selection tier when --source is omitted: high, medium, or low")
	queriesCommand.Flags().StringArrayVar(&queriesSources, "source", nil, "Discovery source to target (repeatable: websearch, social, bookmark, newsletter)")
	queriesCommand.Flags().IntVar(&queriesMax, "max", 0, "Maximum queries to generate")
	_ = queriesCommand.MarkFlagRequired("profile")

	rootCmd.AddCommand(queriesCommand)
}

func runQueriesCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	profileID, err := uuid.Parse(queriesProfileID)
	if err != nil {
		return fmt.Errorf("invalid profile id %q: %w", queriesProfileID, err)
	}

	cfg, err := loadConfig(queriesConfigPath)
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

	sources := make([]types.DiscoverySource, 0, len(queriesSources))
	for _, source := range queriesSources {
		sources = append(sources, types.DiscoverySource(source))
	}
	if len(sources) == 0 {
		sources = querygen.DefaultSources(queriesPriority)
	}

	result, err := rt.matcher.GenerateQueriesWithMetadata(ctx, profile, sources, queriesMax)
	if err != nil {
		return err
	}

	fmt.Printf("Generated %d queries (cache hit: %v, AI assisted: %v)\n",
		len(result.Queries), result.CacheHit, result.AIAssisted)
	for _, query := range result.Queries {
		fmt.Printf("  [%.2f] %-10s %s\n", query.Priority, query.Source, query.Text)
	}
	return nil
}
