/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/google/uuid"

	"github.com/humaidq/medreport/analysis"
	"github.com/humaidq/medreport/i18n"
	"github.com/humaidq/medreport/state"
	"github.com/humaidq/medreport/upload"
)

const eventKeepAlive = 15 * time.Second

// Analyze starts an analysis of the selected report on a background
// goroutine. The page reloads into the loading state and follows progress
// through AnalysisEvents.
func Analyze(c flamego.Context, s session.Session, store *state.Store, analyzer analysis.Analyzer, opts Options) {
	token := uuid.NewString()

	st, err := updateState(c, s, store, func(st *state.State) error {
		return st.BeginAnalysis(token)
	})

	switch {
	case errors.Is(err, state.ErrNoFileSelected):
		webLogger.Warn("analysis requested without a file", baseRequestFields(c, s)...)
	case errors.Is(err, state.ErrAnalysisInFlight):
		SetWarningFlash(s, i18n.KeyErrorAnalysisInFlight)
	case err != nil:
		webLogger.Error("failed to start analysis", append([]interface{}{"error", err}, baseRequestFields(c, s)...)...)
		SetErrorFlash(s, i18n.KeyErrorAnalysis)
	default:
		go runAnalysis(opts.baseContext(), store, analyzer, s.ID(), token, st.File, opts.AnalysisTimeout)
	}

	c.Redirect("/", http.StatusSeeOther)
}

// runAnalysis performs one remote call and records its outcome under token.
// Outcomes for a token that is no longer current are dropped.
func runAnalysis(ctx context.Context, store *state.Store, analyzer analysis.Analyzer, sessionID, token string, file *upload.File, timeout time.Duration) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	result, err := analyzer.Analyze(ctx, file.Data, file.MimeType)

	fields := []interface{}{
		"session", shortID(sessionID),
		"fingerprint", file.Fingerprint,
		"mime", file.MimeType,
		"duration_ms", time.Since(start).Milliseconds(),
	}

	_, updateErr := store.Update(sessionID, func(st *state.State) error {
		if err != nil {
			return st.FailAnalysis(token, err)
		}

		return st.CompleteAnalysis(token, result)
	})

	switch {
	case errors.Is(updateErr, state.ErrStaleRequest), errors.Is(updateErr, state.ErrSessionNotFound):
		analysisLogger.Info("discarded stale analysis response", fields...)
	case err != nil:
		analysisLogger.Error("analysis failed", append(fields, "error", err)...)
	default:
		analysisLogger.Info("analysis complete", append(fields, "pages", len(result.Pages))...)
	}
}

// AnalysisEvents streams the analysis status of the session as server-sent
// events until it leaves loading.
func AnalysisEvents(c flamego.Context, s session.Session, store *state.Store) {
	ctx := c.Request().Context()
	sendEvent := eventStream(c.ResponseWriter())

	keepAlive := time.NewTicker(eventKeepAlive)
	defer keepAlive.Stop()

	for {
		st, changed, err := store.Snapshot(s.ID())
		if err != nil {
			sendEvent("error", err.Error())
			return
		}

		if !st.Loading() {
			sendEvent("done", string(st.Status))
			return
		}

		sendEvent("status", string(st.Status))

		select {
		case <-changed:
		case <-keepAlive.C:
		case <-ctx.Done():
			return
		}
	}
}

// eventStream prepares w for server-sent events and returns the writer for
// single events.
func eventStream(w http.ResponseWriter) func(event, data string) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	return func(event, data string) {
		if event != "" {
			_, _ = w.Write([]byte("event: " + event + "\n"))
		}
		escapedData := strings.ReplaceAll(data, "\n", "\ndata: ")
		_, _ = w.Write([]byte("data: " + escapedData + "\n\n"))
		if flusher, ok := w.(http.Flusher); ok {
			flusher.Flush()
		}
	}
}
