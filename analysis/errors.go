/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package analysis

import "errors"

var (
	// ErrAnalysis is wrapped by every failure of Analyze.
	ErrAnalysis       = errors.New("analysis failed")
	ErrAPIKeyRequired = errors.New("GEMINI_API_KEY (or API_KEY) is required")
	ErrNoCandidates   = errors.New("model returned no candidates")
	ErrPromptBlocked  = errors.New("prompt was blocked by the model")
	ErrEmptyInput     = errors.New("no report data to analyze")
)
