/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package render

import (
	"github.com/humaidq/medreport/i18n"
	"github.com/humaidq/medreport/report"
)

// Report is an analysis projected onto one language.
type Report struct {
	Language i18n.Language
	Dir      string
	Pages    []Page
}

// Page is one rendered ReportPage.
type Page struct {
	Index           int
	Number          int
	Title           string
	Summary         *SummarySection
	Physician       *PhysicianSection
	Recommendations *RecommendationsSection
}

// SummarySection is the patient summary card.
type SummarySection struct {
	Title   string
	Summary string
}

// PhysicianSection is the professional report card.
type PhysicianSection struct {
	Title            string
	Introduction     string
	Rows             []Row
	AdvancedAnalysis string
	Breakdown        Breakdown
}

// Row is one lab-table line.
type Row struct {
	Test           string
	Value          string
	ReferenceRange string
	Interpretation string
	Severity       report.Severity
	RowClass       string
	TextClass      string
}

// RecommendationsSection holds the present recommendation groups.
type RecommendationsSection struct {
	Groups []RecommendationGroup
}

// RecommendationGroup keys, in display order.
const (
	GroupGeneral         = "general"
	GroupNutritional     = "nutritional"
	GroupPhysicalTherapy = "physicalTherapy"
)

// RecommendationGroup is one recommendation card.
type RecommendationGroup struct {
	Key    string
	Title  string
	Points []string
}

// Render projects result onto lang. It does not modify result, so switching
// language only needs another call with the retained result.
func Render(result *report.AnalysisResult, lang i18n.Language) *Report {
	r := &Report{Language: lang, Dir: lang.Dir()}
	if result == nil {
		return r
	}

	for i, p := range result.Pages {
		page := Page{
			Index:  i,
			Number: i + 1,
			Title:  p.PageTitle.Get(lang),
		}

		if p.PatientSummary != nil {
			page.Summary = &SummarySection{
				Title:   p.PatientSummary.Title.Get(lang),
				Summary: p.PatientSummary.Summary.Get(lang),
			}
		}

		if p.PhysicianReport != nil {
			page.Physician = renderPhysician(p.PhysicianReport, lang)
		}

		if p.Recommendations != nil {
			page.Recommendations = renderRecommendations(p.Recommendations, lang)
		}

		r.Pages = append(r.Pages, page)
	}

	return r
}

func renderPhysician(pr *report.PhysicianReport, lang i18n.Language) *PhysicianSection {
	section := &PhysicianSection{
		Title:            pr.Title.Get(lang),
		Introduction:     pr.Introduction.Get(lang),
		AdvancedAnalysis: pr.AdvancedAnalysis.Get(lang),
		Rows:             make([]Row, 0, len(pr.ResultsTable)),
	}

	for _, row := range pr.ResultsTable {
		severity := report.Classify(row)
		section.Rows = append(section.Rows, Row{
			Test:           row.Test.Get(lang),
			Value:          row.Value,
			ReferenceRange: row.ReferenceRange,
			Interpretation: row.Interpretation.Get(lang),
			Severity:       severity,
			RowClass:       severity.RowClass(),
			TextClass:      severity.TextClass(),
		})
		section.Breakdown.add(severity)
	}

	return section
}

func renderRecommendations(recs *report.Recommendations, lang i18n.Language) *RecommendationsSection {
	section := &RecommendationsSection{}

	groups := []struct {
		key   string
		group *report.RecommendationGroup
	}{
		{GroupGeneral, recs.General},
		{GroupNutritional, recs.Nutritional},
		{GroupPhysicalTherapy, recs.PhysicalTherapy},
	}

	for _, g := range groups {
		if g.group == nil {
			continue
		}

		rg := RecommendationGroup{
			Key:    g.key,
			Title:  g.group.Title.Get(lang),
			Points: make([]string, 0, len(g.group.Points)),
		}
		for _, point := range g.group.Points {
			rg.Points = append(rg.Points, point.Get(lang))
		}

		section.Groups = append(section.Groups, rg)
	}

	if len(section.Groups) == 0 {
		return nil
	}

	return section
}

// Breakdown counts lab rows per severity.
type Breakdown struct {
	High   int
	Low    int
	Normal int
	None   int
}

func (b *Breakdown) add(s report.Severity) {
	switch s {
	case report.SeverityHigh:
		b.High++
	case report.SeverityLow:
		b.Low++
	case report.SeverityNormal:
		b.Normal++
	default:
		b.None++
	}
}

// Count returns the number of rows with severity s.
func (b Breakdown) Count(s report.Severity) int {
	switch s {
	case report.SeverityHigh:
		return b.High
	case report.SeverityLow:
		return b.Low
	case report.SeverityNormal:
		return b.Normal
	default:
		return b.None
	}
}

// Total returns the number of classified rows.
func (b Breakdown) Total() int {
	return b.High + b.Low + b.Normal + b.None
}
