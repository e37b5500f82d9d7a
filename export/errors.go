/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package export

import "errors"

var (
	// ErrExportUnavailable is returned when the export capabilities have not
	// loaded or there is nothing to export.
	ErrExportUnavailable = errors.New("export unavailable")
	// ErrExportFailed is returned when rasterization or document generation fails.
	ErrExportFailed = errors.New("export failed")
)
