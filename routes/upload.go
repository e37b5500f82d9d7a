/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/session"

	"github.com/humaidq/medreport/i18n"
	"github.com/humaidq/medreport/state"
	"github.com/humaidq/medreport/upload"
)

// UploadFormField is the multipart field carrying the report.
const UploadFormField = "report"

// multipartOverhead is allowed on top of the file limit for form framing.
const multipartOverhead = 1 << 20

// UploadBodyLimit is the request body cap for an upload limit.
func UploadBodyLimit(maxUpload int64) int64 {
	return maxUpload + multipartOverhead
}

// UploadReport selects a new report for the session. Picker selections and
// drag-and-drop both arrive here and get the same checks.
func UploadReport(c flamego.Context, s session.Session, store *state.Store, opts Options) {
	f, err := readUpload(c.Request().Request, opts.maxUploadBytes())
	if err != nil {
		webLogger.Warn("upload rejected", append([]interface{}{"error", err}, baseRequestFields(c, s)...)...)
		SetErrorFlash(s, uploadErrorKey(err))
		c.Redirect("/", http.StatusSeeOther)

		return
	}

	if _, err := updateState(c, s, store, func(st *state.State) error {
		st.SelectFile(f)
		return nil
	}); err != nil {
		webLogger.Error("failed to store upload", append([]interface{}{"error", err}, baseRequestFields(c, s)...)...)
		SetErrorFlash(s, i18n.KeyErrorUpload)
		c.Redirect("/", http.StatusSeeOther)

		return
	}

	webLogger.Info("report selected",
		"session", shortID(s.ID()),
		"file", f.Name,
		"size", f.Size,
		"mime", f.MimeType,
		"fingerprint", f.Fingerprint,
	)
	SetInfoFlash(s, i18n.KeyFileSelected)
	c.Redirect("/", http.StatusSeeOther)
}

func readUpload(r *http.Request, limit int64) (*upload.File, error) {
	file, header, err := r.FormFile(UploadFormField)
	if err != nil {
		var maxErr *http.MaxBytesError

		switch {
		case errors.As(err, &maxErr):
			return nil, fmt.Errorf("%w: %w", upload.ErrFileTooLarge, err)
		case errors.Is(err, http.ErrMissingFile):
			return nil, errMissingUpload
		default:
			return nil, fmt.Errorf("failed to read upload: %w", err)
		}
	}
	defer file.Close()

	return upload.Read(header.Filename, header.Header.Get("Content-Type"), file, limit)
}

func uploadErrorKey(err error) string {
	switch {
	case errors.Is(err, upload.ErrFileTooLarge):
		return i18n.KeyErrorFileTooLarge
	case errors.Is(err, upload.ErrUnsupportedType):
		return i18n.KeyErrorUnsupportedFile
	case errors.Is(err, upload.ErrEmptyFile):
		return i18n.KeyErrorEmptyFile
	case errors.Is(err, errMissingUpload):
		return i18n.KeyErrorNoFile
	default:
		return i18n.KeyErrorUpload
	}
}

// ClearFile removes the selected report and everything derived from it.
func ClearFile(c flamego.Context, s session.Session, store *state.Store) {
	SetSuccessFlash(s, i18n.KeyFileCleared)
	mutateAndReturn(c, s, store, func(st *state.State) error {
		st.SelectFile(nil)
		return nil
	})
}
