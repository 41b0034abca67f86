// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration loaded from a JSON file.
// All fields are optional; missing values use defaults or environment
// variables.
type Config struct {
	// Collaborators
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	RedisURL    string `json:"redis_url,omitempty"`    // Redis cache URL, empty disables Redis
	APIKey      string `json:"api_key,omitempty"`      // Completion-service API key
	Provider    string `json:"provider,omitempty"`     // Completion-service provider (default gemini)

	// Behavior
	MaxQueries     int  `json:"max_queries,omitempty"`     // Cap on generated queries
	BatchSize      int  `json:"batch_size,omitempty"`      // Scoring batch size
	TimeoutSeconds int  `json:"timeout_seconds,omitempty"` // Per external call timeout
	EnableSemantic bool `json:"enable_semantic,omitempty"` // Use AI-assisted query templates
	Verbose        bool `json:"verbose,omitempty"`         // Debug logging
	JSONLogs       bool `json:"json_logs,omitempty"`       // JSON log encoding
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	cfg.ApplyEnv()
	return &cfg, nil
}

// ApplyEnv fills empty fields from environment variables
func (c *Config) ApplyEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.RedisURL == "" {
		c.RedisURL = os.Getenv("REDIS_URL")
	}
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	if c.MaxQueries < 0 {
		return fmt.Errorf("config error: 'max_queries' must be non-negative")
	}
	if c.BatchSize < 0 {
		return fmt.Errorf("config error: 'batch_size' must be non-negative")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.EnableSemantic && c.APIKey == "" {
		return fmt.Errorf("config error: 'enable_semantic' requires an API key")
	}
	return nil
}
