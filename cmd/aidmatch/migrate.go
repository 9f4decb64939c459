package main

import (
	"context"
	"fmt"

	"aidmatch/internal/db"

	"github.com/urfave/cli/v2"
)

var migrateCommand = &cli.Command{
	Name:  "migrate",
	Usage: "Create the database schema",
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

		if err := db.Migrate(ctx, pool); err != nil {
			return err
		}

		logger.Info("schema applied")
		return nil
	},
}
