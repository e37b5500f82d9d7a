// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package i18n

import "testing"

func TestTextTablesHaveSameKeys(t *testing.T) {
	t.Parallel()

	en := Texts(English)
	ar := Texts(Arabic)

	for key := range en {
		if _, ok := ar[key]; !ok {
			t.Fatalf("arabic table missing key %q", key)
		}
	}
	for key := range ar {
		if _, ok := en[key]; !ok {
			t.Fatalf("english table missing key %q", key)
		}
	}
}

func TestTSelectsLanguage(t *testing.T) {
	t.Parallel()

	if got := T(English, "print"); got != "Print" {
		t.Fatalf("expected english text, got %q", got)
	}
	if got := T(Arabic, "print"); got != "طباعة" {
		t.Fatalf("expected arabic text, got %q", got)
	}
	if got := T(English, "no-such-key"); got != "no-such-key" {
		t.Fatalf("expected key echo for unknown key, got %q", got)
	}
}

func TestToggleTwiceIsIdentity(t *testing.T) {
	t.Parallel()

	for _, l := range []Language{English, Arabic} {
		if got := l.Toggle().Toggle(); got != l {
			t.Fatalf("toggle twice from %q returned %q", l, got)
		}
		if l.Toggle() == l {
			t.Fatalf("toggle from %q did not change language", l)
		}
	}
}

func TestDir(t *testing.T) {
	t.Parallel()

	if English.Dir() != "ltr" || English.IsRTL() {
		t.Fatalf("expected english to be ltr")
	}
	if Arabic.Dir() != "rtl" || !Arabic.IsRTL() {
		t.Fatalf("expected arabic to be rtl")
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Language
		ok    bool
	}{
		{input: "en", want: English, ok: true},
		{input: "ar", want: Arabic, ok: true},
		{input: "fr", want: Default, ok: false},
		{input: "", want: Default, ok: false},
	}

	for _, tt := range tests {
		got, ok := Parse(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("Parse(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNegotiate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		want   Language
	}{
		{header: "", want: English},
		{header: "ar-AE,ar;q=0.9,en;q=0.8", want: Arabic},
		{header: "en-GB,en;q=0.9", want: English},
		{header: "fr-FR", want: English},
		{header: "%%%", want: English},
	}

	for _, tt := range tests {
		if got := Negotiate(tt.header); got != tt.want {
			t.Fatalf("Negotiate(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}
