/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package render

import (
	"bytes"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/humaidq/medreport/i18n"
	"github.com/humaidq/medreport/report"
)

var severityColors = map[report.Severity]string{
	report.SeverityHigh:   "#dc2626",
	report.SeverityLow:    "#2563eb",
	report.SeverityNormal: "#15803d",
	report.SeverityNone:   "#6b7280",
}

var severityKeys = map[report.Severity]string{
	report.SeverityHigh:   i18n.KeySeverityHigh,
	report.SeverityLow:    i18n.KeySeverityLow,
	report.SeverityNormal: i18n.KeySeverityNormal,
	report.SeverityNone:   i18n.KeySeverityNone,
}

// SeverityLabel returns the localized name of a severity.
func SeverityLabel(s report.Severity, lang i18n.Language) string {
	return i18n.T(lang, severityKeys[s])
}

// SeverityChart renders the row breakdown of a physician section as a
// standalone HTML document. It returns "" when there are no rows.
func SeverityChart(section *PhysicianSection, lang i18n.Language) (string, error) {
	if section == nil || section.Breakdown.Total() == 0 {
		return "", nil
	}

	items := make([]opts.PieData, 0, len(report.Severities))
	for _, s := range report.Severities {
		count := section.Breakdown.Count(s)
		if count == 0 {
			continue
		}

		items = append(items, opts.PieData{
			Name:      SeverityLabel(s, lang),
			Value:     count,
			ItemStyle: &opts.ItemStyle{Color: severityColors[s]},
		})
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "100%",
			Height: "260px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: i18n.T(lang, i18n.KeyBreakdownTitle),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:   opts.Bool(true),
			Bottom: "0",
		}),
	)

	pie.AddSeries("severity", items).
		SetSeriesOptions(
			charts.WithPieChartOpts(opts.PieChart{
				Radius: []string{"40%", "65%"},
			}),
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Formatter: "{b}: {c}",
			}),
		)

	var buf bytes.Buffer
	if err := pie.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}
