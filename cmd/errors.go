/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "errors"

var (
	errReportPathRequired = errors.New("report file path is required")
	errInvalidFormat      = errors.New("format must be one of: human, json, yaml")
	errInvalidLanguage    = errors.New("lang must be one of: en, ar")
	errInvalidMaxUpload   = errors.New("max-upload must be positive")
)
