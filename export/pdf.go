/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/go-pdf/fpdf"
)

// Filename is the name the exported document is served under.
const Filename = "medical_report_analysis.pdf"

const bitmapName = "report"

// PageCount returns how many pages of pageW x pageH are needed to hold an
// imgW x imgH bitmap scaled to the page width.
func PageCount(imgH, imgW, pageW, pageH float64) int {
	if imgH <= 0 || imgW <= 0 || pageW <= 0 || pageH <= 0 {
		return 0
	}

	return int(math.Ceil((imgH * pageW / imgW) / pageH))
}

// WritePDF slices img over as many A4 portrait pages as it needs. Every page
// draws the same full-width bitmap, shifted up by one page height per page.
func WritePDF(w io.Writer, img image.Image, title string) error {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return fmt.Errorf("%w: empty bitmap", ErrExportFailed)
	}

	var encoded bytes.Buffer
	if err := png.Encode(&encoded, img); err != nil {
		return fmt.Errorf("%w: failed to encode bitmap: %w", ErrExportFailed, err)
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetCreator("medreport", true)
	pdf.SetAutoPageBreak(false, 0)

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(bitmapName, opts, &encoded)

	pageW, pageH := pdf.GetPageSize()
	scaledH := float64(bounds.Dy()) * pageW / float64(bounds.Dx())
	pages := PageCount(float64(bounds.Dy()), float64(bounds.Dx()), pageW, pageH)

	for i := 0; i < pages; i++ {
		pdf.AddPage()
		pdf.ImageOptions(bitmapName, 0, -float64(i)*pageH, pageW, scaledH, false, opts, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%w: failed to write document: %w", ErrExportFailed, err)
	}

	return nil
}
