// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/flamego/flamego"

	"github.com/humaidq/medreport/analysis"
	"github.com/humaidq/medreport/export"
	"github.com/humaidq/medreport/routes"
	"github.com/humaidq/medreport/state"
)

func newTestApp(t *testing.T) (*flamego.Flame, *state.Store) {
	t.Helper()

	readiness := export.NewReadiness()
	readiness.Fail(errors.New("not loaded"))

	store := state.NewStore()

	f, err := newApp(appConfig{
		CSRFSecret: "test-secret",
		Store:      store,
		Analyzer:   analysis.Unavailable{Err: analysis.ErrAPIKeyRequired},
		Exporter:   export.NewController(readiness, 0),
		Options:    routes.Options{BaseContext: context.Background()},
	})
	if err != nil {
		t.Fatalf("newApp failed: %v", err)
	}

	return f, store
}

func TestNewAppServesShell(t *testing.T) {
	t.Parallel()

	f, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, `lang="en"`) || !strings.Contains(body, `dir="ltr"`) {
		t.Fatalf("expected english shell, got %q", body)
	}

	if !strings.Contains(body, `name="_csrf"`) {
		t.Fatalf("expected csrf token in forms")
	}

	if got := rec.Header().Get("Cache-Control"); !strings.Contains(got, "no-store") {
		t.Fatalf("expected no-store cache header, got %q", got)
	}
}

func TestNewAppServesStaticAssets(t *testing.T) {
	t.Parallel()

	f, _ := newTestApp(t)

	for _, path := range []string{"/app.css", "/app.js"} {
		rec := httptest.NewRecorder()
		f.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d", path, rec.Code)
		}

		if rec.Body.Len() == 0 {
			t.Fatalf("expected content for %s", path)
		}
	}
}

func TestNewAppRejectsPostWithoutCSRFToken(t *testing.T) {
	t.Parallel()

	f, store := newTestApp(t)

	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/theme", nil))

	if rec.Code < http.StatusBadRequest {
		t.Fatalf("expected request without token to be rejected, got %d", rec.Code)
	}

	if store.Len() > 1 {
		t.Fatalf("expected at most the visiting session, got %d", store.Len())
	}
}

func TestNewAnalyzerFallsBackWithoutKey(t *testing.T) {
	t.Parallel()

	analyzer := newAnalyzer(analysis.Config{})

	unavailable, ok := analyzer.(analysis.Unavailable)
	if !ok {
		t.Fatalf("expected Unavailable analyzer, got %T", analyzer)
	}

	if !errors.Is(unavailable.Err, analysis.ErrAPIKeyRequired) {
		t.Fatalf("expected missing key error, got %v", unavailable.Err)
	}

	_, err := analyzer.Analyze(context.Background(), []byte("x"), "image/png")
	if !errors.Is(err, analysis.ErrAnalysis) {
		t.Fatalf("expected ErrAnalysis, got %v", err)
	}
}

func TestNewAnalyzerConfiguresClient(t *testing.T) {
	t.Parallel()

	analyzer := newAnalyzer(analysis.Config{APIKey: "key"})
	if _, ok := analyzer.(*analysis.Client); !ok {
		t.Fatalf("expected *analysis.Client, got %T", analyzer)
	}
}

func TestRandomSecretIsUnique(t *testing.T) {
	t.Parallel()

	a, err := randomSecret()
	if err != nil {
		t.Fatalf("randomSecret failed: %v", err)
	}

	b, err := randomSecret()
	if err != nil {
		t.Fatalf("randomSecret failed: %v", err)
	}

	if len(a) != 64 || a == b {
		t.Fatalf("expected two distinct 64 char secrets, got %q and %q", a, b)
	}
}
