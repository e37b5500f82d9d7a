/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/medreport/cmd"
)

func main() {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	app := &cli.Command{
		Name:  "medreport",
		Usage: "Medreport - Bilingual Medical Report Analyzer",
		Commands: []*cli.Command{
			cmd.CmdStart,
			cmd.CmdAnalyze,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
