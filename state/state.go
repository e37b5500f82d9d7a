/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package state

import (
	"errors"

	"github.com/humaidq/medreport/i18n"
	"github.com/humaidq/medreport/report"
	"github.com/humaidq/medreport/upload"
)

// Status is the analysis lifecycle of a session.
type Status string

// Status values.
const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Theme is the colour scheme.
type Theme string

// Theme values.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// FontSize is the base text size step.
type FontSize string

// FontSize values, in cycle order.
const (
	FontSmall  FontSize = "sm"
	FontBase   FontSize = "base"
	FontLarge  FontSize = "lg"
	FontXLarge FontSize = "xl"
)

// FontSizes lists the sizes CycleFontSize steps through.
var FontSizes = []FontSize{FontSmall, FontBase, FontLarge, FontXLarge}

// State is everything one browser session shows.
type State struct {
	Language   i18n.Language
	Theme      Theme
	FontSize   FontSize
	File       *upload.File
	Status     Status
	Result     *report.AnalysisResult
	ErrorKey   string
	RequestID  string
	ResultPage int
}

// New returns the initial state for a session.
func New(lang i18n.Language) State {
	if _, ok := i18n.Parse(string(lang)); !ok {
		lang = i18n.Default
	}

	return State{
		Language: lang,
		Theme:    ThemeLight,
		FontSize: FontBase,
		Status:   StatusIdle,
	}
}

// SelectFile replaces the selected file. The previous result and error are
// cleared and any in-flight request is invalidated. A nil file clears the
// selection.
func (s *State) SelectFile(f *upload.File) {
	s.File = f
	s.Result = nil
	s.ErrorKey = ""
	s.RequestID = ""
	s.ResultPage = 0
	s.Status = StatusIdle
}

// BeginAnalysis moves to loading under token. Without a file the state
// moves to error and nothing should be sent.
func (s *State) BeginAnalysis(token string) error {
	if s.Status == StatusLoading {
		return ErrAnalysisInFlight
	}

	if s.File == nil {
		s.Status = StatusError
		s.ErrorKey = i18n.KeyErrorNoFile
		s.Result = nil

		return ErrNoFileSelected
	}

	s.Status = StatusLoading
	s.ErrorKey = ""
	s.Result = nil
	s.ResultPage = 0
	s.RequestID = token

	return nil
}

// CompleteAnalysis stores result if token is still current.
func (s *State) CompleteAnalysis(token string, result *report.AnalysisResult) error {
	if !s.current(token) {
		return ErrStaleRequest
	}

	s.Status = StatusSuccess
	s.Result = result
	s.ErrorKey = ""
	s.ResultPage = 0
	s.RequestID = ""

	return nil
}

// FailAnalysis records err if token is still current. Any previous result
// is dropped.
func (s *State) FailAnalysis(token string, err error) error {
	if !s.current(token) {
		return ErrStaleRequest
	}

	s.Status = StatusError
	s.Result = nil
	s.ErrorKey = errorKey(err)
	s.RequestID = ""

	return nil
}

func (s *State) current(token string) bool {
	return token != "" && s.Status == StatusLoading && s.RequestID == token
}

func errorKey(err error) string {
	if errors.Is(err, ErrNoFileSelected) {
		return i18n.KeyErrorNoFile
	}

	return i18n.KeyErrorAnalysis
}

// ToggleLanguage flips between English and Arabic. The result is kept.
func (s *State) ToggleLanguage() {
	s.Language = s.Language.Toggle()
}

// ToggleTheme flips between light and dark.
func (s *State) ToggleTheme() {
	if s.Theme == ThemeDark {
		s.Theme = ThemeLight
	} else {
		s.Theme = ThemeDark
	}
}

// CycleFontSize steps to the next font size, wrapping after the largest.
func (s *State) CycleFontSize() {
	for i, size := range FontSizes {
		if size == s.FontSize {
			s.FontSize = FontSizes[(i+1)%len(FontSizes)]
			return
		}
	}

	s.FontSize = FontBase
}

// SetResultPage selects the page shown on screen, clamped to the result.
func (s *State) SetResultPage(n int) {
	pages := 0
	if s.Result != nil {
		pages = len(s.Result.Pages)
	}

	switch {
	case pages == 0 || n < 0:
		s.ResultPage = 0
	case n >= pages:
		s.ResultPage = pages - 1
	default:
		s.ResultPage = n
	}
}

// Loading reports whether an analysis is in flight.
func (s State) Loading() bool {
	return s.Status == StatusLoading
}

// CanAnalyze reports whether the analyze control should be enabled.
func (s State) CanAnalyze() bool {
	return s.File != nil && s.Status != StatusLoading
}
