/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package render

import "sync"

// Container is the report container. On screen it shows one page at a
// time; while the export-mode marker is set every page is visible so the
// whole report can be captured in one pass.
type Container struct {
	mu         sync.Mutex
	report     *Report
	page       int
	exportMode bool
}

// NewContainer wraps r with page selected for screen display. The page is
// clamped to the available range.
func NewContainer(r *Report, page int) *Container {
	c := &Container{report: r}
	c.page = c.clamp(page)

	return c
}

func (c *Container) clamp(page int) int {
	n := c.pageCountLocked()
	if page < 0 || n == 0 {
		return 0
	}
	if page >= n {
		return n - 1
	}

	return page
}

func (c *Container) pageCountLocked() int {
	if c.report == nil {
		return 0
	}

	return len(c.report.Pages)
}

// Report returns the wrapped report.
func (c *Container) Report() *Report {
	return c.report
}

// PageCount returns the number of report pages.
func (c *Container) PageCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.pageCountLocked()
}

// CurrentPage returns the index of the page shown on screen.
func (c *Container) CurrentPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.page
}

// SetExportMode sets or clears the export-mode marker.
func (c *Container) SetExportMode(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.exportMode = on
}

// ExportMode reports whether the export-mode marker is set.
func (c *Container) ExportMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.exportMode
}

// VisiblePages returns the pages currently visible: the selected page on
// screen, or all pages in export mode.
func (c *Container) VisiblePages() []Page {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pageCountLocked() == 0 {
		return nil
	}

	if c.exportMode {
		return c.report.Pages
	}

	return c.report.Pages[c.page : c.page+1]
}

// HasPrevious reports whether a page precedes the current one.
func (c *Container) HasPrevious() bool {
	return c.CurrentPage() > 0
}

// HasNext reports whether a page follows the current one.
func (c *Container) HasNext() bool {
	return c.CurrentPage() < c.PageCount()-1
}
