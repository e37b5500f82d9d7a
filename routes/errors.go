/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import "errors"

var (
	errMissingUpload = errors.New("missing report upload")
	errInvalidPage   = errors.New("invalid page number")
)
