/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import (
	"encoding/json"

	"github.com/humaidq/medreport/i18n"
)

// BilingualText carries the English and Arabic rendition of one value.
type BilingualText struct {
	EN string `json:"en" yaml:"en"`
	AR string `json:"ar" yaml:"ar"`
}

// UnmarshalJSON decodes a {en, ar} object. Absent fields stay empty.
func (b *BilingualText) UnmarshalJSON(data []byte) error {
	var raw struct {
		EN *string `json:"en"`
		AR *string `json:"ar"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*b = BilingualText{}
	if raw.EN != nil {
		b.EN = *raw.EN
	}
	if raw.AR != nil {
		b.AR = *raw.AR
	}

	return nil
}

// Get projects the text onto one language. It never falls back to the other
// language: an empty Arabic rendition stays empty.
func (b BilingualText) Get(lang i18n.Language) string {
	if lang == i18n.Arabic {
		return b.AR
	}

	return b.EN
}

// ResultRow is one lab-test line of the physician report.
type ResultRow struct {
	Test           BilingualText `json:"test" yaml:"test"`
	Value          string        `json:"value" yaml:"value"`
	ReferenceRange string        `json:"referenceRange" yaml:"referenceRange"`
	Interpretation BilingualText `json:"interpretation" yaml:"interpretation"`
}

// PatientSummary is the plain-language section for the patient.
type PatientSummary struct {
	Title   BilingualText `json:"title" yaml:"title"`
	Summary BilingualText `json:"summary" yaml:"summary"`
}

// PhysicianReport is the professional section with the lab table.
type PhysicianReport struct {
	Title            BilingualText `json:"title" yaml:"title"`
	Introduction     BilingualText `json:"introduction" yaml:"introduction"`
	ResultsTable     []ResultRow   `json:"resultsTable" yaml:"resultsTable"`
	AdvancedAnalysis BilingualText `json:"advancedAnalysis" yaml:"advancedAnalysis"`
}

// RecommendationGroup is a titled list of advice points.
type RecommendationGroup struct {
	Title  BilingualText   `json:"title" yaml:"title"`
	Points []BilingualText `json:"points" yaml:"points"`
}

// Recommendations holds the three fixed recommendation categories.
type Recommendations struct {
	General         *RecommendationGroup `json:"general,omitempty" yaml:"general,omitempty"`
	Nutritional     *RecommendationGroup `json:"nutritional,omitempty" yaml:"nutritional,omitempty"`
	PhysicalTherapy *RecommendationGroup `json:"physicalTherapy,omitempty" yaml:"physicalTherapy,omitempty"`
}

// ReportPage is one logical page of the analysis. Every section is optional.
type ReportPage struct {
	PageTitle       BilingualText    `json:"pageTitle" yaml:"pageTitle"`
	PatientSummary  *PatientSummary  `json:"patientSummary,omitempty" yaml:"patientSummary,omitempty"`
	PhysicianReport *PhysicianReport `json:"physicianReport,omitempty" yaml:"physicianReport,omitempty"`
	Recommendations *Recommendations `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
}

// AnalysisResult is the structured result returned by the model.
type AnalysisResult struct {
	Pages []ReportPage `json:"pages" yaml:"pages"`
}

// Validate checks the structural invariants of a result.
func (r *AnalysisResult) Validate() error {
	if r == nil || len(r.Pages) == 0 {
		return ErrNoPages
	}

	return nil
}

// Rows returns every lab row across all pages in page order.
func (r *AnalysisResult) Rows() []ResultRow {
	if r == nil {
		return nil
	}

	var rows []ResultRow
	for _, page := range r.Pages {
		if page.PhysicianReport != nil {
			rows = append(rows, page.PhysicianReport.ResultsTable...)
		}
	}

	return rows
}
