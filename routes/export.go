/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/session"

	"github.com/humaidq/medreport/export"
	"github.com/humaidq/medreport/i18n"
	"github.com/humaidq/medreport/render"
	"github.com/humaidq/medreport/state"
)

// ExportPDF serves the current report as a paginated PDF download. On
// failure the user is sent back to the report with an alert.
func ExportPDF(c flamego.Context, s session.Session, store *state.Store, exporter *export.Controller) {
	st, ok := store.Get(s.ID())
	if !ok || st.Result == nil {
		SetErrorFlash(s, i18n.KeyErrorNoResult)
		c.Redirect("/", http.StatusSeeOther)

		return
	}

	container := render.NewContainer(render.Render(st.Result, st.Language), st.ResultPage)
	opts := export.Options{
		Dark:      st.Theme == state.ThemeDark,
		Reference: exportReference(st),
	}

	start := time.Now()

	var buf bytes.Buffer
	if err := exporter.ExportPDF(c.Request().Context(), container, opts, &buf); err != nil {
		key := i18n.KeyErrorExportFailed
		if errors.Is(err, export.ErrExportUnavailable) {
			key = i18n.KeyErrorExportUnavailable
		}

		exportLogger.Error("export failed", append([]interface{}{"error", err}, baseRequestFields(c, s)...)...)
		SetErrorFlash(s, key)
		c.Redirect("/", http.StatusSeeOther)

		return
	}

	exportLogger.Info("export complete",
		"session", shortID(s.ID()),
		"pages", container.PageCount(),
		"bytes", buf.Len(),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	w := c.ResponseWriter()
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// exportReference identifies the analysed file in the exported header.
func exportReference(st state.State) string {
	if st.File == nil {
		return ""
	}

	return "medreport:" + st.File.ID + ":" + st.File.Fingerprint
}

// ExportEvents tells the page when PDF export becomes available, so the
// export control can enable itself without a reload. It sends "ready" or
// "unavailable" once capability loading has settled.
func ExportEvents(c flamego.Context, exporter *export.Controller) {
	ctx := c.Request().Context()
	sendEvent := eventStream(c.ResponseWriter())

	keepAlive := time.NewTicker(eventKeepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case <-exporter.Settled():
			if exporter.Ready() {
				sendEvent("ready", "")
			} else {
				sendEvent("unavailable", "")
			}

			return
		case <-keepAlive.C:
			sendEvent("status", "loading")
		case <-ctx.Done():
			return
		}
	}
}
