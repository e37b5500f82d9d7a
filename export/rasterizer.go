/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package export

import (
	"context"
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/skip2/go-qrcode"

	"github.com/humaidq/medreport/i18n"
	"github.com/humaidq/medreport/render"
	"github.com/humaidq/medreport/report"
)

// Layout constants in CSS pixels, before scaling.
const (
	pageWidthPx = 794
	marginPx    = 40
	qrSizePx    = 72
	cellPadPx   = 6
	lineSpacing = 1.45
)

// Font sizes in points at scale 1.
const (
	sizeTitle     = 22
	sizePageTitle = 18
	sizeSection   = 15
	sizeGroup     = 13
	sizeBody      = 11
	sizeTable     = 10
	sizeSmall     = 9
)

// DefaultScale is the rasterization scale used for exports.
const DefaultScale = 2

// Document is what gets rasterized.
type Document struct {
	Language i18n.Language
	Pages    []render.Page
}

// RasterOptions tune one rasterization.
type RasterOptions struct {
	Scale     float64
	Dark      bool
	Reference string
}

// Rasterizer renders a document to a single tall bitmap.
type Rasterizer interface {
	Rasterize(ctx context.Context, doc Document, opts RasterOptions) (image.Image, error)
}

type ggRasterizer struct {
	fonts *fontSet
}

func (g *ggRasterizer) Rasterize(ctx context.Context, doc Document, opts RasterOptions) (image.Image, error) {
	if len(doc.Pages) == 0 {
		return nil, fmt.Errorf("%w: nothing to rasterize", ErrExportFailed)
	}

	if opts.Scale <= 0 {
		opts.Scale = DefaultScale
	}

	qr, err := qrImage(opts.Reference, int(qrSizePx*opts.Scale))
	if err != nil {
		return nil, err
	}

	measure := g.newCanvas(gg.NewContext(1, 1), doc.Language, opts, qr, false)
	if err := measure.layout(ctx, doc); err != nil {
		return nil, err
	}

	width := int(math.Ceil(pageWidthPx * opts.Scale))
	height := int(math.Ceil(measure.y))

	dc := gg.NewContext(width, height)
	c := g.newCanvas(dc, doc.Language, opts, qr, true)
	c.setColor(c.pal.background)
	dc.Clear()

	if err := c.layout(ctx, doc); err != nil {
		return nil, err
	}

	return dc.Image(), nil
}

func qrImage(reference string, size int) (image.Image, error) {
	if reference == "" {
		return nil, nil
	}

	q, err := qrcode.New(reference, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to generate qr code: %w", err)
	}
	q.DisableBorder = true

	return q.Image(size), nil
}

type rgb struct {
	r, g, b float64
}

type palette struct {
	background rgb
	text       rgb
	muted      rgb
	rule       rgb
	header     rgb
	rows       map[report.Severity]rgb
	severity   map[report.Severity]rgb
}

func newPalette(dark bool) palette {
	severity := map[report.Severity]rgb{
		report.SeverityHigh:   {0.86, 0.15, 0.15},
		report.SeverityLow:    {0.15, 0.39, 0.92},
		report.SeverityNormal: {0.08, 0.5, 0.24},
	}

	if dark {
		severity[report.SeverityHigh] = rgb{0.97, 0.44, 0.44}
		severity[report.SeverityLow] = rgb{0.38, 0.65, 0.98}
		severity[report.SeverityNormal] = rgb{0.29, 0.87, 0.5}

		return palette{
			background: rgb{0.07, 0.09, 0.15},
			text:       rgb{0.95, 0.96, 0.97},
			muted:      rgb{0.6, 0.64, 0.7},
			rule:       rgb{0.22, 0.26, 0.33},
			header:     rgb{0.12, 0.15, 0.22},
			rows: map[report.Severity]rgb{
				report.SeverityHigh:   {0.27, 0.1, 0.12},
				report.SeverityLow:    {0.1, 0.16, 0.3},
				report.SeverityNormal: {0.07, 0.22, 0.15},
				report.SeverityNone:   {0.07, 0.09, 0.15},
			},
			severity: severity,
		}
	}

	rows := make(map[report.Severity]rgb, len(report.Severities))
	for _, s := range report.Severities {
		r, g, b := s.RGB()
		rows[s] = rgb{r, g, b}
	}

	return palette{
		background: rgb{1, 1, 1},
		text:       rgb{0.12, 0.16, 0.22},
		muted:      rgb{0.42, 0.45, 0.5},
		rule:       rgb{0.85, 0.87, 0.9},
		header:     rgb{0.95, 0.96, 0.97},
		rows:       rows,
		severity:   severity,
	}
}

func (p palette) severityText(s report.Severity) rgb {
	if c, ok := p.severity[s]; ok {
		return c
	}

	return p.muted
}

// canvas walks the document once to measure and once to draw. When draw is
// false only the y cursor advances.
type canvas struct {
	dc    *gg.Context
	fonts *fontSet
	faces faceCache
	pal   palette
	lang  i18n.Language
	qr    image.Image
	scale float64
	rtl   bool
	draw  bool
	y     float64
}

func (g *ggRasterizer) newCanvas(dc *gg.Context, lang i18n.Language, opts RasterOptions, qr image.Image, draw bool) *canvas {
	return &canvas{
		dc:    dc,
		fonts: g.fonts,
		faces: make(faceCache),
		pal:   newPalette(opts.Dark),
		lang:  lang,
		qr:    qr,
		scale: opts.Scale,
		rtl:   lang.IsRTL(),
		draw:  draw,
	}
}

func (c *canvas) px(v float64) float64 {
	return v * c.scale
}

func (c *canvas) left() float64 {
	return c.px(marginPx)
}

func (c *canvas) contentWidth() float64 {
	return c.px(pageWidthPx - 2*marginPx)
}

func (c *canvas) setColor(col rgb) {
	c.dc.SetRGB(col.r, col.g, col.b)
}

func (c *canvas) setFace(s string, size float64, bold bool) float64 {
	c.dc.SetFontFace(c.faces.get(c.fonts.pick(s, bold), c.px(size)))
	return c.dc.FontHeight() * lineSpacing
}

func (c *canvas) layout(ctx context.Context, doc Document) error {
	c.y = c.left()
	c.header()

	for i, page := range doc.Pages {
		if err := ctx.Err(); err != nil {
			return err
		}

		if i > 0 {
			c.rule()
		}

		c.page(page)
	}

	c.y += c.left()

	return nil
}

func (c *canvas) header() {
	top := c.y
	textWidth := c.contentWidth()

	if c.qr != nil {
		size := c.qr.Bounds().Dx()
		x := c.left() + c.contentWidth() - float64(size)
		if c.rtl {
			x = c.left()
		}

		if c.draw {
			c.dc.DrawImage(c.qr, int(x), int(top))
		}

		textWidth -= float64(size) + c.px(cellPadPx*2)
	}

	c.textIn(i18n.T(c.lang, i18n.KeyAppName), sizeTitle, true, c.pal.text, textWidth)

	if c.qr != nil {
		c.y = math.Max(c.y, top+float64(c.qr.Bounds().Dy()))
	}

	c.y += c.px(8)
	c.rule()
}

func (c *canvas) rule() {
	c.y += c.px(8)

	if c.draw {
		c.setColor(c.pal.rule)
		c.dc.SetLineWidth(c.px(1))
		c.dc.DrawLine(c.left(), c.y, c.left()+c.contentWidth(), c.y)
		c.dc.Stroke()
	}

	c.y += c.px(12)
}

func (c *canvas) page(p render.Page) {
	c.text(p.Title, sizePageTitle, true, c.pal.text)
	c.y += c.px(6)

	if p.Summary != nil {
		c.text(p.Summary.Title, sizeSection, true, c.pal.text)
		c.text(p.Summary.Summary, sizeBody, false, c.pal.text)
		c.y += c.px(10)
	}

	if p.Physician != nil {
		c.text(p.Physician.Title, sizeSection, true, c.pal.text)
		c.text(p.Physician.Introduction, sizeBody, false, c.pal.text)
		c.y += c.px(6)
		c.table(p.Physician.Rows)

		if p.Physician.AdvancedAnalysis != "" {
			c.y += c.px(6)
			c.text(i18n.T(c.lang, i18n.KeyAdvancedAnalysisTitle), sizeGroup, true, c.pal.text)
			c.text(p.Physician.AdvancedAnalysis, sizeBody, false, c.pal.text)
		}

		c.y += c.px(10)
	}

	if p.Recommendations != nil {
		c.text(i18n.T(c.lang, i18n.KeyRecommendationsTitle), sizeSection, true, c.pal.text)

		for _, group := range p.Recommendations.Groups {
			c.text(group.Title, sizeGroup, true, c.pal.text)
			for _, point := range group.Points {
				c.text("• "+point, sizeBody, false, c.pal.text)
			}
			c.y += c.px(4)
		}
	}
}

func (c *canvas) text(s string, size float64, bold bool, col rgb) {
	c.textIn(s, size, bold, col, c.contentWidth())
}

// textIn writes s as wrapped lines within width. RTL text is right aligned.
func (c *canvas) textIn(s string, size float64, bold bool, col rgb, width float64) {
	if s == "" {
		return
	}

	s = shapeArabic(s)

	lh := c.setFace(s, size, bold)
	x, ax := c.left(), 0.0
	if c.rtl {
		x, ax = c.left()+c.contentWidth(), 1.0
	}

	if c.draw {
		c.setColor(col)
	}

	for _, line := range c.dc.WordWrap(s, width) {
		if c.draw {
			c.dc.DrawStringAnchored(visualLine(line, c.rtl), x, c.y, ax, 1)
		}
		c.y += lh
	}
}

var columnWidths = []float64{0.28, 0.2, 0.2, 0.32}

// column returns the x position and width of column i, mirrored for RTL.
func (c *canvas) column(i int) (float64, float64) {
	offset := 0.0
	for _, w := range columnWidths[:i] {
		offset += w
	}

	w := columnWidths[i] * c.contentWidth()
	x := c.left() + offset*c.contentWidth()
	if c.rtl {
		x = c.left() + c.contentWidth() - offset*c.contentWidth() - w
	}

	return x, w
}

func (c *canvas) table(rows []render.Row) {
	if len(rows) == 0 {
		return
	}

	headers := []string{
		i18n.T(c.lang, i18n.KeyResultsTableTest),
		i18n.T(c.lang, i18n.KeyResultsTableValue),
		i18n.T(c.lang, i18n.KeyResultsTableRef),
		i18n.T(c.lang, i18n.KeyResultsTableInterp),
	}
	c.tableRow(headers, true, c.pal.header, nil)

	for _, row := range rows {
		interp := c.pal.severityText(row.Severity)
		cells := []string{row.Test, row.Value, row.ReferenceRange, row.Interpretation}
		c.tableRow(cells, false, c.pal.rows[row.Severity], &interp)
	}
}

// tableRow draws one row. When lastColor is set it colours the last cell.
func (c *canvas) tableRow(cells []string, bold bool, bg rgb, lastColor *rgb) {
	pad := c.px(cellPadPx)

	wrapped := make([][]string, len(cells))
	lineHeights := make([]float64, len(cells))
	height := 0.0

	shaped := make([]string, len(cells))
	for i, cell := range cells {
		shaped[i] = shapeArabic(cell)
	}
	cells = shaped

	for i, cell := range cells {
		_, w := c.column(i)
		lineHeights[i] = c.setFace(cell, sizeTable, bold)
		wrapped[i] = c.dc.WordWrap(cell, w-2*pad)
		height = math.Max(height, float64(len(wrapped[i]))*lineHeights[i])
	}
	height += 2 * pad

	if c.draw {
		c.setColor(bg)
		c.dc.DrawRectangle(c.left(), c.y, c.contentWidth(), height)
		c.dc.Fill()

		for i, lines := range wrapped {
			x, w := c.column(i)
			tx, ax := x+pad, 0.0
			if c.rtl {
				tx, ax = x+w-pad, 1.0
			}

			col := c.pal.text
			if lastColor != nil && i == len(cells)-1 {
				col = *lastColor
			}

			c.setFace(cells[i], sizeTable, bold)
			c.setColor(col)

			y := c.y + pad
			for _, line := range lines {
				c.dc.DrawStringAnchored(visualLine(line, c.rtl), tx, y, ax, 1)
				y += lineHeights[i]
			}
		}

		c.setColor(c.pal.rule)
		c.dc.SetLineWidth(c.px(0.5))
		c.dc.DrawLine(c.left(), c.y+height, c.left()+c.contentWidth(), c.y+height)
		c.dc.Stroke()
	}

	c.y += height
}
