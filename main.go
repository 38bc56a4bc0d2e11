/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/labdash/cmd"
)

func main() {
	app := &cli.Command{
		Name:  "labdash",
		Usage: "Labdash - Biomarker Report Dashboard",
		Commands: []*cli.Command{
			cmd.CmdStart,
			cmd.CmdCheck,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
