package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/k0kubun/pp/v3"
	"github.com/urfave/cli/v2"
)

var matchCommand = &cli.Command{
	Name:  "match",
	Usage: "Run a batch match over pending beneficiaries",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "persist",
			Usage: "Write assignments back to the database",
		},
		&cli.StringFlag{
			Name:    "beneficiary",
			Aliases: []string{"b"},
			Usage:   "Match a single beneficiary instead of the whole queue",
		},
		&cli.BoolFlag{
			Name:  "dump",
			Usage: "Pretty print the full result",
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

		if id := c.String("beneficiary"); id != "" {
			match, err := svc.MatchBeneficiary(ctx, id)
			if err != nil {
				return err
			}
			if match == nil {
				fmt.Printf("no provider cleared the threshold for %s\n", id)
				return nil
			}
			if c.Bool("dump") {
				pp.Println(match)
				return nil
			}
			fmt.Printf("%s -> %s (%.2f)\n", match.BeneficiaryID, match.ProviderID, match.Score)
			return nil
		}

		outcome, err := svc.RunBatch(ctx, c.Bool("persist"))
		if err != nil {
			return err
		}

		if c.Bool("dump") {
			pp.Println(outcome)
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "BENEFICIARY\tPROVIDER\tSCORE")
		for _, match := range outcome.Matches {
			fmt.Fprintf(w, "%s\t%s\t%.2f\n", match.BeneficiaryID, match.ProviderID, match.Score)
		}
		for _, id := range outcome.Unmatched {
			fmt.Fprintf(w, "%s\t-\t-\n", id)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("\n%d matched, %d unmatched, persisted=%t\n", len(outcome.Matches), len(outcome.Unmatched), outcome.Persisted)
		return nil
	},
}
