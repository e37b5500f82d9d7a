/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/gob"

	"github.com/flamego/session"
)

// FlashType represents the type of flash message
type FlashType string

const (
	FlashError   FlashType = "error"
	FlashSuccess FlashType = "success"
	FlashWarning FlashType = "warning"
	FlashInfo    FlashType = "info"
)

// FlashMessage is a one-shot alert shown on the next page load. Key is an
// i18n key so the alert follows the session language when it is rendered.
type FlashMessage struct {
	Type FlashType
	Key  string
}

func init() {
	gob.Register(FlashMessage{})
}

// SetErrorFlash sets an error flash message in the session
func SetErrorFlash(s session.Session, key string) {
	s.SetFlash(FlashMessage{Type: FlashError, Key: key})
}

// SetSuccessFlash sets a success flash message in the session
func SetSuccessFlash(s session.Session, key string) {
	s.SetFlash(FlashMessage{Type: FlashSuccess, Key: key})
}

// SetWarningFlash sets a warning flash message in the session
func SetWarningFlash(s session.Session, key string) {
	s.SetFlash(FlashMessage{Type: FlashWarning, Key: key})
}

// SetInfoFlash sets an info flash message in the session
func SetInfoFlash(s session.Session, key string) {
	s.SetFlash(FlashMessage{Type: FlashInfo, Key: key})
}
