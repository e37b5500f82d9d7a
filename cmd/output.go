/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/humaidq/medreport/i18n"
	"github.com/humaidq/medreport/render"
	"github.com/humaidq/medreport/report"
)

const (
	formatHuman = "human"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func validFormat(format string) bool {
	switch format {
	case formatHuman, formatJSON, formatYAML:
		return true
	default:
		return false
	}
}

// displayResults writes result to w. Machine formats carry both languages;
// human output is projected onto lang.
func displayResults(w io.Writer, result *report.AnalysisResult, lang i18n.Language, format string) error {
	switch format {
	case formatJSON:
		output, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(output))

		return err
	case formatYAML:
		output, err := yaml.Marshal(result)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, string(output))

		return err
	default:
		displayHuman(w, render.Render(result, lang))
		return nil
	}
}

func displayHuman(w io.Writer, rep *render.Report) {
	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite, color.Bold)

	for _, page := range rep.Pages {
		fmt.Fprintln(w)
		cyan.Fprintf(w, "%s %d: %s\n", i18n.T(rep.Language, i18n.KeyPageLabel), page.Number, page.Title)
		fmt.Fprintln(w, strings.Repeat("─", 80))

		if page.Summary != nil {
			white.Fprintln(w, page.Summary.Title)
			fmt.Fprintf(w, "   %s\n\n", page.Summary.Summary)
		}

		if page.Physician != nil {
			displayPhysician(w, rep.Language, page.Physician)
		}

		if page.Recommendations != nil {
			white.Fprintln(w, i18n.T(rep.Language, i18n.KeyRecommendationsTitle))
			for _, group := range page.Recommendations.Groups {
				fmt.Fprintf(w, "   %s\n", group.Title)
				for _, point := range group.Points {
					fmt.Fprintf(w, "     • %s\n", point)
				}
			}
			fmt.Fprintln(w)
		}
	}

	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintln(w, color.HiBlackString(i18n.T(rep.Language, i18n.KeyDisclaimer)))
}

func displayPhysician(w io.Writer, lang i18n.Language, section *render.PhysicianSection) {
	white := color.New(color.FgWhite, color.Bold)

	white.Fprintln(w, section.Title)
	if section.Introduction != "" {
		fmt.Fprintf(w, "   %s\n", section.Introduction)
	}

	for _, row := range section.Rows {
		ref := ""
		if row.ReferenceRange != "" {
			ref = " (" + row.ReferenceRange + ")"
		}

		fmt.Fprintf(w, "   %s %s: %s%s ", severityIcon(row.Severity), row.Test, row.Value, ref)
		severityColor(row.Severity).Fprintln(w, row.Interpretation)
	}

	if section.AdvancedAnalysis != "" {
		fmt.Fprintln(w)
		white.Fprintln(w, i18n.T(lang, i18n.KeyAdvancedAnalysisTitle))
		fmt.Fprintf(w, "   %s\n", section.AdvancedAnalysis)
	}

	fmt.Fprintln(w)
}

func severityColor(s report.Severity) *color.Color {
	switch s {
	case report.SeverityHigh:
		return color.New(color.FgRed, color.Bold)
	case report.SeverityLow:
		return color.New(color.FgBlue, color.Bold)
	case report.SeverityNormal:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgWhite)
	}
}

func severityIcon(s report.Severity) string {
	switch s {
	case report.SeverityHigh:
		return "▲"
	case report.SeverityLow:
		return "▼"
	case report.SeverityNormal:
		return "●"
	default:
		return "○"
	}
}

func printSuccess(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", color.GreenString("✓"), message)
}
