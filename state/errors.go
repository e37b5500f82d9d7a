/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package state

import "errors"

var (
	// ErrNoFileSelected is returned when an analysis is requested without a file.
	ErrNoFileSelected = errors.New("no file selected")
	// ErrAnalysisInFlight is returned when an analysis is already running.
	ErrAnalysisInFlight = errors.New("analysis already in progress")
	// ErrStaleRequest is returned when a response arrives for a request
	// token that is no longer current.
	ErrStaleRequest = errors.New("stale analysis response")
	// ErrSessionNotFound is returned for unknown session ids.
	ErrSessionNotFound = errors.New("session not found")
)
