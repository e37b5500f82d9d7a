/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package i18n

import (
	"golang.org/x/text/language"
)

// Language is a UI language tag.
type Language string

// Supported UI languages.
const (
	English Language = "en"
	Arabic  Language = "ar"
)

// Default is used when no usable language preference is available.
const Default = English

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Arabic,
})

// Parse returns the language for a tag, reporting whether it is supported.
func Parse(tag string) (Language, bool) {
	switch Language(tag) {
	case English, Arabic:
		return Language(tag), true
	default:
		return Default, false
	}
}

// Negotiate picks a supported language from an Accept-Language header value.
func Negotiate(acceptLanguage string) Language {
	if acceptLanguage == "" {
		return Default
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}

	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default
	}

	if idx == 1 {
		return Arabic
	}

	return English
}

// Toggle returns the other supported language.
func (l Language) Toggle() Language {
	if l == Arabic {
		return English
	}

	return Arabic
}

// Dir returns the text direction for the language.
func (l Language) Dir() string {
	if l == Arabic {
		return "rtl"
	}

	return "ltr"
}

// IsRTL reports whether the language is written right to left.
func (l Language) IsRTL() bool {
	return l.Dir() == "rtl"
}

// String implements fmt.Stringer.
func (l Language) String() string {
	return string(l)
}

// T returns the UI string for key. Unknown keys return the key itself so a
// missing translation is visible rather than blank.
func T(l Language, key string) string {
	table, ok := texts[l]
	if !ok {
		table = texts[Default]
	}

	if s, ok := table[key]; ok {
		return s
	}

	return key
}

// Texts returns the full UI string table for the language. The returned map
// must not be modified.
func Texts(l Language) map[string]string {
	if table, ok := texts[l]; ok {
		return table
	}

	return texts[Default]
}
