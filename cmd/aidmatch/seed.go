package main

import (
	"context"
	"fmt"

	"aidmatch/internal/db"
	"aidmatch/internal/seed"
	"aidmatch/internal/store"

	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with demo providers, beneficiaries and crises",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logger.Info("Connected to database")

		// Providers first, beneficiaries reference them.
		if err := seed.SeedProviders(ctx, logger, store.NewProviderRepository(pool)); err != nil {
			return err
		}
		if err := seed.SeedBeneficiaries(ctx, logger, store.NewBeneficiaryRepository(pool)); err != nil {
			return err
		}
		if err := seed.SeedCrises(ctx, logger, store.NewCrisisRepository(pool)); err != nil {
			return err
		}

		logger.Info("Seed data synced")

		return nil
	},
}
