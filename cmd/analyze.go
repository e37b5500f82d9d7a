/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/medreport/analysis"
	"github.com/humaidq/medreport/export"
	"github.com/humaidq/medreport/i18n"
	"github.com/humaidq/medreport/render"
	"github.com/humaidq/medreport/upload"
)

var CmdAnalyze = newAnalyzeCommand()

func newAnalyzeCommand() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Analyze a report file and print the result",
		ArgsUsage: "FILE",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"o"},
				Value:   formatHuman,
				Usage:   "output format: human, json or yaml",
			},
			&cli.StringFlag{
				Name:  "lang",
				Value: string(i18n.English),
				Usage: "language of human output: en or ar",
			},
			&cli.StringFlag{
				Name:  "pdf",
				Usage: "also write the report as a PDF to this path",
			},
			&cli.BoolFlag{
				Name:  "dark",
				Usage: "use the dark theme for the PDF",
			},
		}, sharedFlags()...),
		Action: analyzeReport,
	}
}

func analyzeReport(ctx context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return errReportPathRequired
	}

	format := cmd.String("format")
	if !validFormat(format) {
		return errInvalidFormat
	}

	lang, ok := i18n.Parse(cmd.String("lang"))
	if !ok {
		return errInvalidLanguage
	}

	limit, err := maxUpload(cmd)
	if err != nil {
		return err
	}

	file, err := readReportFile(path, limit)
	if err != nil {
		return err
	}

	client, err := analysis.NewClient(analysisConfig(cmd), nil)
	if err != nil {
		return err
	}

	// The PDF fonts load while the remote call runs.
	var readiness *export.Readiness
	if pdfPath := cmd.String("pdf"); pdfPath != "" {
		readiness = export.LoadAsync(export.CapabilityOptions{ArabicFontPath: cmd.String("arabic-font")})
	}

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = fmt.Sprintf(" Analyzing %s with %s...", file.Name, client.Model())
	s.Start()

	result, err := client.Analyze(ctx, file.Data, file.MimeType)
	s.Stop()

	if err != nil {
		return err
	}

	out := outputWriter(cmd)
	if err := displayResults(out, result, lang, format); err != nil {
		return err
	}

	if readiness == nil {
		return nil
	}

	container := render.NewContainer(render.Render(result, lang), 0)

	return writePDF(ctx, cmd.String("pdf"), container, export.NewController(readiness, 30*time.Second), export.Options{
		Dark:      cmd.Bool("dark"),
		Reference: "medreport:" + file.ID + ":" + file.Fingerprint,
	})
}

func readReportFile(path string, limit int64) (*upload.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report: %w", err)
	}
	defer f.Close()

	return upload.Read(filepath.Base(path), "", f, limit)
}

// writePDF only creates path once the export has succeeded.
func writePDF(ctx context.Context, path string, container *render.Container, controller *export.Controller, opts export.Options) error {
	var buf bytes.Buffer
	if err := controller.ExportPDF(ctx, container, opts, &buf); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	printSuccess(os.Stderr, "Wrote "+path)

	return nil
}

func outputWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}

	return os.Stdout
}
