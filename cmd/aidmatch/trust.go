package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/urfave/cli/v2"
)

var trustCommand = &cli.Command{
	Name:  "trust",
	Usage: "Recompute provider trust scores",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "provider",
			Aliases: []string{"p"},
			Usage:   "Only recompute this provider",
		},
	},
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

		svc, pool, err := newService(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer pool.Close()

		if id := c.String("provider"); id != "" {
			result, err := svc.RefreshTrustScore(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("%s\t%.1f\n", id, result.TrustScore)
			return nil
		}

		scores, err := svc.RefreshTrustScores(ctx)
		if err != nil {
			return err
		}

		ids := make([]string, 0, len(scores))
		for id := range scores {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			fmt.Printf("%s\t%.1f\n", id, scores[id])
		}
		return nil
	},
}
