/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import "errors"

var (
	// ErrInvalidResult is wrapped by every decoding and validation failure.
	ErrInvalidResult = errors.New("invalid analysis result")
	ErrEmptyResponse = errors.New("empty response text")
	ErrNoPages       = errors.New("result has no pages")
)
