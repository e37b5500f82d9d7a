/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/humaidq/medreport/i18n"
	"github.com/humaidq/medreport/render"
)

// DefaultWait bounds how long an export waits for capabilities to load.
const DefaultWait = 3 * time.Second

// Options describe one export.
type Options struct {
	Dark      bool
	Reference string
}

// Controller produces PDF exports of a report container.
type Controller struct {
	readiness *Readiness
	wait      time.Duration
}

// NewController returns a controller backed by readiness. A zero wait uses
// DefaultWait.
func NewController(readiness *Readiness, wait time.Duration) *Controller {
	if wait == 0 {
		wait = DefaultWait
	}

	return &Controller{readiness: readiness, wait: wait}
}

// Ready reports whether an export can start right away.
func (c *Controller) Ready() bool {
	return c.readiness.Ready()
}

// Settled is closed once capability loading has finished. Ready then tells
// whether it succeeded.
func (c *Controller) Settled() <-chan struct{} {
	return c.readiness.Done()
}

// ExportPDF rasterizes every page of container and writes the paginated
// document to w. Nothing is written to w on failure. The container's export
// mode is set for the duration of the call and always cleared afterwards.
func (c *Controller) ExportPDF(ctx context.Context, container *render.Container, opts Options, w io.Writer) (err error) {
	caps, err := c.readiness.Wait(ctx, c.wait)
	if err != nil {
		return err
	}

	if container == nil || container.PageCount() == 0 {
		return fmt.Errorf("%w: no report to export", ErrExportUnavailable)
	}

	container.SetExportMode(true)
	defer container.SetExportMode(false)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrExportFailed, r)
		}
	}()

	lang := i18n.Default
	if r := container.Report(); r != nil {
		lang = r.Language
	}

	doc := Document{Language: lang, Pages: container.VisiblePages()}

	img, err := caps.Rasterizer.Rasterize(ctx, doc, RasterOptions{
		Scale:     DefaultScale,
		Dark:      opts.Dark,
		Reference: opts.Reference,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	var buf bytes.Buffer
	if err := WritePDF(&buf, img, i18n.T(lang, i18n.KeyAppName)); err != nil {
		return err
	}

	if _, err := io.Copy(w, &buf); err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	return nil
}
