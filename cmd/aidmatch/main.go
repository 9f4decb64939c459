package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "aidmatch",
		Usage: "Match beneficiaries and donations to aid providers",
		Commands: []*cli.Command{
			serveCommand,
			migrateCommand,
			seedCommand,
			matchCommand,
			trustCommand,
			fraudCommand,
			nanoidCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("application failed")
	}
}
