/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/session"

	"github.com/humaidq/medreport/logging"
)

var (
	requestLogger  = logging.Logger(logging.SourceWebRequest)
	webLogger      = logging.Logger(logging.SourceWeb)
	analysisLogger = logging.Logger(logging.SourceAnalysis)
	exportLogger   = logging.Logger(logging.SourceExport)
)

// RequestLogger logs request metadata and timing for each HTTP request.
func RequestLogger(c flamego.Context, s session.Session) {
	start := time.Now()

	c.Next()

	status := c.ResponseWriter().Status()
	if status == 0 {
		status = http.StatusOK
	}

	fields := []interface{}{
		"event", "request",
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
	}
	fields = append(fields, baseRequestFields(c, s)...)

	requestLogger.Info("request", fields...)
}

func baseRequestFields(c flamego.Context, s session.Session) []interface{} {
	return []interface{}{
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"ip", clientIP(c),
		"user_agent", c.Request().UserAgent(),
		"session", shortID(s.ID()),
	}
}

// shortID keeps log lines correlatable without printing whole session ids.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}

	return id
}

func clientIP(c flamego.Context) string {
	forwardedFor := c.Request().Header.Get("X-Forwarded-For")
	if forwardedFor != "" {
		if idx := strings.Index(forwardedFor, ","); idx != -1 {
			forwardedFor = forwardedFor[:idx]
		}

		if ip := strings.TrimSpace(forwardedFor); ip != "" {
			return ip
		}
	}

	return c.RemoteAddr()
}
