/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package export

import (
	"fmt"
	"os"
	"unicode"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// CapabilityOptions configures LoadCapabilities.
type CapabilityOptions struct {
	// ArabicFontPath is an optional TrueType font with Arabic glyphs. The Go
	// fonts have none, so Arabic text renders as boxes without it.
	ArabicFontPath string
}

// Capabilities are the parsed resources an export needs.
type Capabilities struct {
	Rasterizer Rasterizer
}

type fontSet struct {
	regular *truetype.Font
	bold    *truetype.Font
	arabic  *truetype.Font
}

// LoadCapabilities parses the fonts and builds the rasterizer.
func LoadCapabilities(opts CapabilityOptions) (*Capabilities, error) {
	fonts, err := loadFonts(opts.ArabicFontPath)
	if err != nil {
		return nil, err
	}

	return &Capabilities{Rasterizer: &ggRasterizer{fonts: fonts}}, nil
}

func loadFonts(arabicPath string) (*fontSet, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}

	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}

	fonts := &fontSet{regular: regular, bold: bold}

	if arabicPath == "" {
		return fonts, nil
	}

	data, err := os.ReadFile(arabicPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read arabic font: %w", err)
	}

	fonts.arabic, err = truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse arabic font %s: %w", arabicPath, err)
	}

	return fonts, nil
}

// pick returns the font for s. Arabic text uses the Arabic font when one is
// loaded; it has no bold variant.
func (f *fontSet) pick(s string, bold bool) *truetype.Font {
	if f.arabic != nil && hasArabic(s) {
		return f.arabic
	}

	if bold {
		return f.bold
	}

	return f.regular
}

func hasArabic(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Arabic, r) {
			return true
		}
	}

	return false
}

type faceKey struct {
	font *truetype.Font
	size float64
}

// faceCache holds faces for one rasterization. Faces keep glyph caches and
// must not be shared between goroutines.
type faceCache map[faceKey]font.Face

func (c faceCache) get(f *truetype.Font, size float64) font.Face {
	key := faceKey{font: f, size: size}
	if face, ok := c[key]; ok {
		return face
	}

	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	c[key] = face

	return face
}
