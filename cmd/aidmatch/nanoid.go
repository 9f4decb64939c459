package main

import (
	"fmt"

	"aidmatch/internal/utils"

	"github.com/urfave/cli/v2"
)

var nanoidCommand = &cli.Command{
	Name:  "nanoid",
	Usage: "Generate IDs for use in seed files",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"c"},
			Usage:   "Number of IDs to generate",
			Value:   1,
		},
		&cli.StringFlag{
			Name:    "kind",
			Aliases: []string{"k"},
			Usage:   "Entity prefix: ben, prv, crs, don or alc",
		},
	},
	Action: func(c *cli.Context) error {
		kind := utils.IDKind(c.String("kind"))
		for range c.Int("count") {
			fmt.Println(utils.NewID(kind))
		}
		return nil
	},
}
