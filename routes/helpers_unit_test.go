// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/flamego/csrf"
	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/humaidq/medreport/i18n"
)

type testSession struct {
	id    string
	data  map[interface{}]interface{}
	flash interface{}
}

func newTestSession() *testSession {
	return &testSession{
		id:   "test-session-0001",
		data: make(map[interface{}]interface{}),
	}
}

func (s *testSession) ID() string {
	return s.id
}

func (s *testSession) RegenerateID(http.ResponseWriter, *http.Request) error {
	return nil
}

func (s *testSession) Get(key interface{}) interface{} {
	return s.data[key]
}

func (s *testSession) Set(key, val interface{}) {
	s.data[key] = val
}

func (s *testSession) SetFlash(val interface{}) {
	s.flash = val
}

func (s *testSession) Delete(key interface{}) {
	delete(s.data, key)
}

func (s *testSession) Flush() {
	s.data = make(map[interface{}]interface{})
}

func (s *testSession) Encode() ([]byte, error) {
	return nil, nil
}

func (s *testSession) HasChanged() bool {
	return true
}

type testCSRF struct {
	token string
}

func (c testCSRF) Token() string {
	return c.token
}

func (c testCSRF) ValidToken(string) bool {
	return true
}

func (c testCSRF) Error(http.ResponseWriter) {}

func (c testCSRF) Validate(flamego.Context) {}

func TestSetFlashHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		set     func(session.Session, string)
		wantTyp FlashType
	}{
		{name: "error", set: SetErrorFlash, wantTyp: FlashError},
		{name: "success", set: SetSuccessFlash, wantTyp: FlashSuccess},
		{name: "warning", set: SetWarningFlash, wantTyp: FlashWarning},
		{name: "info", set: SetInfoFlash, wantTyp: FlashInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newTestSession()
			tt.set(s, i18n.KeyErrorUpload)

			msg, ok := s.flash.(FlashMessage)
			if !ok {
				t.Fatalf("flash has unexpected type: %T", s.flash)
			}

			if msg.Type != tt.wantTyp || msg.Key != i18n.KeyErrorUpload {
				t.Fatalf("unexpected flash message: %#v", msg)
			}
		})
	}
}

func TestCSRFInjector(t *testing.T) {
	t.Parallel()

	handler, ok := CSRFInjector().(func(csrf.CSRF, template.Data))
	if !ok {
		t.Fatalf("unexpected CSRFInjector handler type")
	}

	data := template.Data{}
	handler(testCSRF{token: "csrf-123"}, data)

	if got, ok := data["csrf_token"].(string); !ok || got != "csrf-123" {
		t.Fatalf("unexpected csrf_token value: %#v", data["csrf_token"])
	}
}

func TestFlashInjector(t *testing.T) {
	t.Parallel()

	handler, ok := FlashInjector().(func(session.Flash, template.Data))
	if !ok {
		t.Fatalf("unexpected FlashInjector handler type")
	}

	data := template.Data{}
	handler(FlashMessage{Type: FlashError, Key: i18n.KeyErrorExportFailed}, data)

	msg, ok := data["Flash"].(FlashMessage)
	if !ok || msg.Key != i18n.KeyErrorExportFailed {
		t.Fatalf("unexpected Flash value: %#v", data["Flash"])
	}

	empty := template.Data{}
	handler(nil, empty)
	if _, ok := empty["Flash"]; ok {
		t.Fatal("expected no Flash without a message")
	}
}

func TestNoCacheHeaders(t *testing.T) {
	t.Parallel()

	f := flamego.New()
	f.Use(NoCacheHeaders())
	f.Get("/", func(c flamego.Context) {
		c.ResponseWriter().WriteHeader(http.StatusNoContent)
	})
	f.Post("/", func(c flamego.Context) {
		c.ResponseWriter().WriteHeader(http.StatusNoContent)
	})

	getReq := httptest.NewRequest(http.MethodGet, "/", nil)
	getRec := httptest.NewRecorder()
	f.ServeHTTP(getRec, getReq)

	if got := getRec.Header().Get("Cache-Control"); got != "no-store, max-age=0" {
		t.Fatalf("unexpected Cache-Control for GET: %q", got)
	}

	if got := getRec.Header().Get("Pragma"); got != "no-cache" {
		t.Fatalf("unexpected Pragma for GET: %q", got)
	}

	if got := getRec.Header().Get("Expires"); got != "0" {
		t.Fatalf("unexpected Expires for GET: %q", got)
	}

	postReq := httptest.NewRequest(http.MethodPost, "/", nil)
	postRec := httptest.NewRecorder()
	f.ServeHTTP(postRec, postReq)

	if got := postRec.Header().Get("Cache-Control"); got != "" {
		t.Fatalf("expected no Cache-Control for POST, got %q", got)
	}
}

func TestLimitBody(t *testing.T) {
	t.Parallel()

	f := flamego.New()
	f.Use(LimitBody(8))
	f.Post("/", func(c flamego.Context) {
		_, err := io.ReadAll(c.Request().Request.Body)

		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.ResponseWriter().WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}

		c.ResponseWriter().WriteHeader(http.StatusNoContent)
	})

	small := httptest.NewRecorder()
	f.ServeHTTP(small, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("12345678")))

	if small.Code != http.StatusNoContent {
		t.Fatalf("expected body within limit to pass, got %d", small.Code)
	}

	large := httptest.NewRecorder()
	f.ServeHTTP(large, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("123456789")))

	if large.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected body over limit to be cut off, got %d", large.Code)
	}
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	f := flamego.New()

	var got string
	f.Get("/", func(c flamego.Context) {
		got = clientIP(c)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", " 203.0.113.7 , 10.0.0.1")
	f.ServeHTTP(httptest.NewRecorder(), req)

	if got != "203.0.113.7" {
		t.Fatalf("expected forwarded ip, got %q", got)
	}
}

func TestShortID(t *testing.T) {
	t.Parallel()

	if got := shortID("abcdefghijkl"); got != "abcdefgh" {
		t.Fatalf("unexpected short id %q", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Fatalf("unexpected short id %q", got)
	}
}

func TestSetPublicSiteTitle(t *testing.T) {
	t.Setenv(publicSiteTitleEnvVar, "")

	data := template.Data{}
	setPublicSiteTitle(data, i18n.Arabic)
	if data["PageTitle"] != i18n.T(i18n.Arabic, i18n.KeyAppName) {
		t.Fatalf("unexpected default title %#v", data["PageTitle"])
	}

	t.Setenv(publicSiteTitleEnvVar, "  Clinic Reports ")
	setPublicSiteTitle(data, i18n.English)
	if data["PageTitle"] != "Clinic Reports" {
		t.Fatalf("unexpected configured title %#v", data["PageTitle"])
	}
}
