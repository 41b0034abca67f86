// Package main provides the entry point for the opportunity matcher CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "matcher_agent",
	Short: "Opportunity Matcher CLI",
	Long:  "Opportunity Matcher turns artist profiles into ranked discovery queries and scores discovered grants, residencies, and exhibitions against them.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
