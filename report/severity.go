/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import "strings"

// Severity is the visual classification of a lab row.
type Severity string

// Severity values, in classification priority order.
const (
	SeverityHigh   Severity = "high"
	SeverityLow    Severity = "low"
	SeverityNormal Severity = "normal"
	SeverityNone   Severity = "none"
)

// Severities lists every severity in display order.
var Severities = []Severity{SeverityHigh, SeverityLow, SeverityNormal, SeverityNone}

// ClassifyInterpretation maps an English interpretation to a severity.
// Matching is case-insensitive on substrings, so "Highly elevated" is high
// and "Below normal" is low. "abnormal" never counts as normal.
func ClassifyInterpretation(en string) Severity {
	text := strings.ToLower(en)

	switch {
	case strings.Contains(text, "high") || strings.Contains(text, "critical"):
		return SeverityHigh
	case strings.Contains(text, "low"):
		return SeverityLow
	case strings.Contains(strings.ReplaceAll(text, "abnormal", ""), "normal"):
		return SeverityNormal
	default:
		return SeverityNone
	}
}

// Classify returns the severity of a row. Only the English interpretation is
// read, so the result is the same whatever language is displayed.
func Classify(row ResultRow) Severity {
	return ClassifyInterpretation(row.Interpretation.EN)
}

// RowClass is the CSS class for a table row of this severity.
func (s Severity) RowClass() string {
	if s == SeverityNone {
		return "row-neutral"
	}

	return "row-" + string(s)
}

// TextClass is the CSS class for the interpretation text of this severity.
func (s Severity) TextClass() string {
	if s == SeverityNone {
		return "text-neutral"
	}

	return "text-" + string(s)
}

// RGB returns the row background used by the rasterizer.
func (s Severity) RGB() (r, g, b float64) {
	switch s {
	case SeverityHigh:
		return 0.996, 0.949, 0.949
	case SeverityLow:
		return 0.937, 0.965, 1.0
	case SeverityNormal:
		return 0.941, 0.992, 0.957
	default:
		return 1, 1, 1
	}
}
