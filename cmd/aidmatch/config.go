package main

import (
	"context"
	"fmt"

	"aidmatch/internal/db"
	"aidmatch/internal/matching"
	"aidmatch/internal/service"
	"aidmatch/internal/store"
	"aidmatch/pkg/types"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

func loadConfig() (*types.Config, error) {
	c := new(types.Config)
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if c.DatabaseURL == "" {
		return nil, fmt.Errorf("set DATABASE_URL")
	}

	if c.ServerPort == 0 {
		c.ServerPort = 8080
	}

	if c.ReadTimeoutSec == 0 {
		c.ReadTimeoutSec = 10
	}

	if c.WriteTimeoutSec == 0 {
		c.WriteTimeoutSec = 15
	}

	if c.MatchThreshold <= 0 || c.MatchThreshold > 100 {
		return nil, fmt.Errorf("MATCH_THRESHOLD must be above 0 and at most 100, got %v", c.MatchThreshold)
	}

	if c.ProofMinFaceMatch < 0 || c.ProofMinFaceMatch > 1 {
		return nil, fmt.Errorf("PROOF_MIN_FACE_MATCH must be between 0 and 1, got %v", c.ProofMinFaceMatch)
	}

	return c, nil
}

func newLogger(config *types.Config) (*logrus.Logger, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", config.LogLevel, err)
	}
	logger.SetLevel(level)

	if config.Environment != "development" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger, nil
}

func matcherConfig(config *types.Config) matching.Config {
	mc := matching.DefaultConfig()
	if config.MatchThreshold > 0 {
		mc.MatchThreshold = config.MatchThreshold
	}
	if config.DefaultSuggestions > 0 {
		mc.DefaultSuggestions = config.DefaultSuggestions
	}
	return mc
}

func proofPolicy(config *types.Config) matching.ProofPolicy {
	policy := matching.DefaultProofPolicy()
	if config.ProofMinFaceMatch > 0 {
		policy.MinFaceMatch = config.ProofMinFaceMatch
	}
	if config.ProofMaxDistanceKm > 0 {
		policy.MaxDistanceKm = config.ProofMaxDistanceKm
	}
	return policy
}

// newService wires the repositories and matcher. The caller closes the pool.
func newService(ctx context.Context, config *types.Config, logger logrus.FieldLogger) (*service.Service, *pgxpool.Pool, error) {
	pool, err := db.Connect(ctx, config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	matcher := matching.New(matcherConfig(config), logger)

	svc := service.New(logger, matcher, proofPolicy(config), service.Repositories{
		Beneficiaries: store.NewBeneficiaryRepository(pool),
		Providers:     store.NewProviderRepository(pool),
		Donations:     store.NewDonationRepository(pool),
		Crises:        store.NewCrisisRepository(pool),
		Allocations:   store.NewAllocationRepository(pool),
	})

	return svc, pool, nil
}
