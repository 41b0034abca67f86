package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var healthCommand = &cobra.Command{
	Use:   "health",
	Short: "Probe each scoring and query-generation component",
	RunE:  runHealthCmd,
}

var healthConfigPath string

func init() {
	healthCommand.Flags().StringVar(&healthConfigPath, "config", "", "Path to config.json file")
	rootCmd.AddCommand(healthCommand)
}

func runHealthCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(healthConfigPath)
	if err != nil {
		return err
	}

	rt, err := buildRuntime(ctx, cfg)
	if err != nil {
		return err
	}
	defer rt.close()

	health := rt.matcher.Health(ctx)

	components := make([]string, 0, len(health))
	for component := range health {
		components = append(components, component)
	}
	sort.Strings(components)

	failed := 0
	for _, component := range components {
		status := "ok"
		if !health[component] {
			status = "FAIL"
			failed++
		}
		fmt.Printf("  %-12s %s\n", component, status)
	}

	if failed > 0 {
		return fmt.Errorf("%d component(s) failing", failed)
	}
	return nil
}
