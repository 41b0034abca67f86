package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/opportunity-matcher/internal/cache"
	"github.com/jonathan/opportunity-matcher/internal/config"
	"github.com/jonathan/opportunity-matcher/internal/llm"
	"github.com/jonathan/opportunity-matcher/internal/logger"
	"github.com/jonathan/opportunity-matcher/internal/querygen"
	"github.com/jonathan/opportunity-matcher/internal/scoring"
	"github.com/jonathan/opportunity-matcher/internal/service"
)

// runtime bundles the wired collaborators behind the matcher service
type runtime struct {
	matcher *service.Matcher
	client  llm.Client
	log     *zap.Logger
}

// loadConfig reads the config file when given, otherwise starts from an
// empty config filled from the environment.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		cfg, err := config.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	cfg := &config.Config{}
	cfg.ApplyEnv()
	return cfg, nil
}

// buildRuntime wires the logger, optional completion-service client, cache,
// and the matcher service from configuration.
func buildRuntime(ctx context.Context, cfg *config.Config) (*runtime, error) {
	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	var client llm.Client
	if cfg.APIKey != "" {
		llmConfig := llm.DefaultConfig()
		if cfg.Provider != "" {
			llmConfig.Provider = llm.Provider(cfg.Provider)
		}
		client, err = llm.NewClient(ctx, llmConfig, cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create completion-service client: %w", err)
		}
	} else {
		log.Info("no API key configured, running with deterministic templates and fallback scoring")
	}

	var store cache.Cache = cache.NewMemory()
	if cfg.RedisURL != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		store = cache.NewRedis(redisClient, "matcher:")
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	matcher := service.New(client, store, log, service.Options{
		Generator: querygen.Options{
			EnableSemantic: cfg.EnableSemantic,
			RequestTimeout: timeout,
		},
		Engine: scoring.EngineConfig{
			BatchSize:   cfg.BatchSize,
			CallTimeout: timeout,
		},
	})

	return &runtime{matcher: matcher, client: client, log: log}, nil
}

// close releases runtime resources
func (r *runtime) close() {
	if r.client != nil {
		_ = r.client.Close()
	}
	_ = r.log.Sync()
}
