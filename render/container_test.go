// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"testing"

	"github.com/humaidq/medreport/i18n"
)

func TestContainerScreenShowsOnePage(t *testing.T) {
	t.Parallel()

	c := NewContainer(Render(sampleResult(), i18n.English), 1)

	pages := c.VisiblePages()
	if len(pages) != 1 || pages[0].Index != 1 {
		t.Fatalf("expected page 1 only, got %+v", pages)
	}
	if !c.HasPrevious() || !c.HasNext() {
		t.Fatal("expected both neighbours for the middle page")
	}
}

func TestContainerExportModeShowsAllPages(t *testing.T) {
	t.Parallel()

	c := NewContainer(Render(sampleResult(), i18n.English), 0)
	c.SetExportMode(true)

	if !c.ExportMode() {
		t.Fatal("expected export mode")
	}
	if got := len(c.VisiblePages()); got != 3 {
		t.Fatalf("expected 3 visible pages, got %d", got)
	}

	c.SetExportMode(false)
	if got := len(c.VisiblePages()); got != 1 {
		t.Fatalf("expected 1 visible page after export, got %d", got)
	}
}

func TestContainerClampsPage(t *testing.T) {
	t.Parallel()

	r := Render(sampleResult(), i18n.English)

	if got := NewContainer(r, 99).CurrentPage(); got != 2 {
		t.Fatalf("expected clamp to 2, got %d", got)
	}
	if got := NewContainer(r, -4).CurrentPage(); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}

	empty := NewContainer(Render(nil, i18n.English), 3)
	if empty.VisiblePages() != nil || empty.PageCount() != 0 || empty.HasNext() {
		t.Fatal("expected empty container")
	}
}
