/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"github.com/urfave/cli/v3"

	"github.com/humaidq/medreport/analysis"
	"github.com/humaidq/medreport/routes"
	"github.com/humaidq/medreport/upload"
)

// sharedFlags configure the analysis pipeline for both the server and the
// command line.
func sharedFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "gemini-api-key",
			Sources: cli.EnvVars("GEMINI_API_KEY", "API_KEY"),
			Usage:   "API key for the Gemini generateContent endpoint",
		},
		&cli.StringFlag{
			Name:    "gemini-model",
			Sources: cli.EnvVars("GEMINI_MODEL"),
			Value:   analysis.DefaultModel,
			Usage:   "model used for report analysis",
		},
		&cli.StringFlag{
			Name:    "gemini-api-url",
			Sources: cli.EnvVars("GEMINI_API_URL"),
			Value:   analysis.DefaultBaseURL,
			Usage:   "base URL of the inference API",
		},
		&cli.DurationFlag{
			Name:    "analysis-timeout",
			Sources: cli.EnvVars("ANALYSIS_TIMEOUT"),
			Value:   routes.DefaultAnalysisTimeout,
			Usage:   "upper bound for one analysis call (0 disables)",
		},
		&cli.Int64Flag{
			Name:    "max-upload",
			Sources: cli.EnvVars("MAX_UPLOAD_BYTES"),
			Value:   upload.DefaultMaxSize,
			Usage:   "maximum report size in bytes",
		},
		&cli.StringFlag{
			Name:    "arabic-font",
			Sources: cli.EnvVars("ARABIC_FONT"),
			Usage:   "TrueType font with Arabic glyphs for PDF export",
		},
	}
}

func analysisConfig(cmd *cli.Command) analysis.Config {
	return analysis.Config{
		APIKey:  cmd.String("gemini-api-key"),
		Model:   cmd.String("gemini-model"),
		BaseURL: cmd.String("gemini-api-url"),
		Timeout: cmd.Duration("analysis-timeout"),
	}
}

func maxUpload(cmd *cli.Command) (int64, error) {
	limit := cmd.Int64("max-upload")
	if limit <= 0 {
		return 0, errInvalidMaxUpload
	}

	return limit, nil
}
