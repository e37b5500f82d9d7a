// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package report

import "testing"

func TestClassifyInterpretation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Severity
	}{
		{input: "High", want: SeverityHigh},
		{input: "CRITICAL", want: SeverityHigh},
		{input: "Borderline high", want: SeverityHigh},
		{input: "critically low", want: SeverityHigh},
		{input: "Highly elevated", want: SeverityHigh},
		{input: "Below normal", want: SeverityLow},
		{input: "Lower than range", want: SeverityLow},
		{input: "low", want: SeverityLow},
		{input: "Low-normal", want: SeverityLow},
		{input: "Normal", want: SeverityNormal},
		{input: "within normal limits", want: SeverityNormal},
		{input: "Abnormal", want: SeverityNone},
		{input: "Abnormal, repeat test", want: SeverityNone},
		{input: "Normal (previously abnormal)", want: SeverityNormal},
		{input: "Elevated", want: SeverityNone},
		{input: "", want: SeverityNone},
		{input: "مرتفع", want: SeverityNone},
	}

	for _, tt := range tests {
		if got := ClassifyInterpretation(tt.input); got != tt.want {
			t.Fatalf("ClassifyInterpretation(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestClassifyReadsOnlyEnglishChannel(t *testing.T) {
	t.Parallel()

	row := ResultRow{Interpretation: BilingualText{EN: "High", AR: "طبيعي"}}
	if got := Classify(row); got != SeverityHigh {
		t.Fatalf("expected high from english channel, got %q", got)
	}

	row.Interpretation.AR = "منخفض"
	if got := Classify(row); got != SeverityHigh {
		t.Fatalf("arabic text changed classification to %q", got)
	}
}

func TestSeverityClasses(t *testing.T) {
	t.Parallel()

	if SeverityHigh.RowClass() != "row-high" || SeverityHigh.TextClass() != "text-high" {
		t.Fatalf("unexpected classes for high")
	}
	if SeverityNone.RowClass() != "row-neutral" || SeverityNone.TextClass() != "text-neutral" {
		t.Fatalf("unexpected classes for none")
	}
}
