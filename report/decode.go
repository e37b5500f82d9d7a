/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var fencePattern = regexp.MustCompile("```[a-zA-Z]*\n?|```")

// stripFences removes markdown code fences such as ```json ... ```.
func stripFences(text string) string {
	return strings.TrimSpace(fencePattern.ReplaceAllString(text, ""))
}

// Decode parses and validates the textual model response. Partial results
// are never returned: any failure yields a nil result.
func Decode(text string) (*AnalysisResult, error) {
	cleaned := stripFences(text)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResult, ErrEmptyResponse)
	}

	var result AnalysisResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResult, err)
	}

	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResult, err)
	}

	return &result, nil
}
