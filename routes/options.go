/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"context"
	"time"

	"github.com/humaidq/medreport/upload"
)

// DefaultAnalysisTimeout bounds one remote analysis call.
const DefaultAnalysisTimeout = 5 * time.Minute

// Options configure the handlers. They are mapped into the injector once at
// startup.
type Options struct {
	// MaxUploadBytes caps the size of an uploaded report.
	MaxUploadBytes int64
	// AnalysisTimeout bounds each analysis. Zero disables the bound.
	AnalysisTimeout time.Duration
	// BaseContext parents background analyses so they stop on shutdown.
	BaseContext context.Context
}

func (o Options) maxUploadBytes() int64 {
	if o.MaxUploadBytes <= 0 {
		return upload.DefaultMaxSize
	}

	return o.MaxUploadBytes
}

func (o Options) baseContext() context.Context {
	if o.BaseContext == nil {
		return context.Background()
	}

	return o.BaseContext
}
