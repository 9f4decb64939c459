package main

import (
	"context"
	"fmt"
	"strings"

	"aidmatch/internal/matching"

	"github.com/urfave/cli/v2"
)

var fraudCommand = &cli.Command{
	Name:  "fraud",
	Usage: "Screen applications for duplicate NIDs and cost outliers",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "beneficiary",
			Aliases: []string{"b"},
			Usage:   "Screen a single beneficiary",
		},
		&cli.BoolFlag{
			Name:  "all",
			Usage: "Include applications with no flags",
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
			report, err := svc.ScreenBeneficiary(ctx, id)
			if err != nil {
				return err
			}
			printReport(*report)
			return nil
		}

		reports, err := svc.ScanFraud(ctx, !c.Bool("all"))
		if err != nil {
			return err
		}

		for _, report := range reports {
			printReport(report)
		}
		fmt.Printf("%d reports\n", len(reports))
		return nil
	},
}

func printReport(report matching.FraudReport) {
	fmt.Printf("%s\t%s\t%s\n", report.BeneficiaryID, report.RiskLevel, strings.Join(report.Details, "; "))
}
