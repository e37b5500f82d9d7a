/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package upload

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// DefaultMaxSize is the inline-data ceiling of the inference API.
const DefaultMaxSize = 20 << 20

// Accepted report content types.
const (
	TypePNG  = "image/png"
	TypeJPEG = "image/jpeg"
	TypePDF  = "application/pdf"
)

// AcceptedTypes lists the content types a report may have.
var AcceptedTypes = []string{TypePNG, TypeJPEG, TypePDF}

// AcceptAttr is the file picker filter.
var AcceptAttr = strings.Join(AcceptedTypes, ", ")

// File is a selected report held in memory for one session.
type File struct {
	ID          string
	Name        string
	Size        int64
	MimeType    string
	Data        []byte
	Fingerprint string
	UploadedAt  time.Time
}

// Read validates and loads a report. The content is sniffed so that files
// arriving through drag-and-drop get the same checks as picker selections;
// the declared type is never trusted and only appears in errors.
func Read(name, declaredType string, r io.Reader, limit int64) (*File, error) {
	if limit <= 0 {
		limit = DefaultMaxSize
	}

	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrFileTooLarge, limit)
	}

	mimeType, err := detectType(data, declaredType)
	if err != nil {
		return nil, err
	}

	return &File{
		ID:          uuid.NewString(),
		Name:        cleanName(name),
		Size:        int64(len(data)),
		MimeType:    mimeType,
		Data:        data,
		Fingerprint: fingerprint(data),
		UploadedAt:  time.Now().UTC(),
	}, nil
}

func detectType(data []byte, declaredType string) (string, error) {
	sniffed := http.DetectContentType(data)
	if idx := strings.Index(sniffed, ";"); idx != -1 {
		sniffed = sniffed[:idx]
	}

	for _, accepted := range AcceptedTypes {
		if sniffed == accepted {
			return sniffed, nil
		}
	}

	declared := strings.ToLower(strings.TrimSpace(declaredType))
	return "", fmt.Errorf("%w: detected %q (declared %q)", ErrUnsupportedType, sniffed, declared)
}

func cleanName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)
	if name == "." || name == "/" || name == "" {
		return "report"
	}

	return name
}

func fingerprint(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])[:16]
}

// DataURI returns the displayable preview of the file.
func (f *File) DataURI() string {
	return "data:" + f.MimeType + ";base64," + base64.StdEncoding.EncodeToString(f.Data)
}

// PreviewURL is DataURI typed for use as an image source in templates. Only
// sniffed image types are marked safe; anything else yields "".
func (f *File) PreviewURL() template.URL {
	switch f.MimeType {
	case TypePNG, TypeJPEG:
		return template.URL(f.DataURI())
	default:
		return ""
	}
}

// IsImage reports whether the preview can be shown as an image.
func (f *File) IsImage() bool {
	return strings.HasPrefix(f.MimeType, "image/")
}

// SizeLabel formats the size in kilobytes.
func (f *File) SizeLabel() string {
	return fmt.Sprintf("%.2f KB", float64(f.Size)/1024)
}
