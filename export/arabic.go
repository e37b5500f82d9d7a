/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package export

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/bidi"
)

// gg draws runes one after another from left to right with no shaping. Arabic
// text is therefore mapped to its presentation forms and reordered into
// visual order before it is drawn.

const (
	tatweel = 'ـ'
	lam     = 'ل'
)

type arabicLetter struct {
	isolated rune
	// forms is 1 (non-joining), 2 (joins the previous letter only) or 4.
	// Forms follow isolated, final, initial, medial.
	forms int
}

var arabicLetters = buildArabicLetters()

// Presentation Forms-B lays the letters out contiguously from U+FE80.
func buildArabicLetters() map[rune]arabicLetter {
	order := []struct {
		r     rune
		forms int
	}{
		{'ء', 1}, {'آ', 2}, {'أ', 2}, {'ؤ', 2}, {'إ', 2},
		{'ئ', 4}, {'ا', 2}, {'ب', 4}, {'ة', 2}, {'ت', 4},
		{'ث', 4}, {'ج', 4}, {'ح', 4}, {'خ', 4}, {'د', 2},
		{'ذ', 2}, {'ر', 2}, {'ز', 2}, {'س', 4}, {'ش', 4},
		{'ص', 4}, {'ض', 4}, {'ط', 4}, {'ظ', 4}, {'ع', 4},
		{'غ', 4}, {'ف', 4}, {'ق', 4}, {'ك', 4}, {'ل', 4},
		{'م', 4}, {'ن', 4}, {'ه', 4}, {'و', 2}, {'ى', 2},
		{'ي', 4},
	}

	letters := make(map[rune]arabicLetter, len(order))
	next := rune(0xFE80)

	for _, o := range order {
		letters[o.r] = arabicLetter{isolated: next, forms: o.forms}
		next += rune(o.forms)
	}

	return letters
}

// Isolated lam-alef ligatures; the final form follows each.
var lamAlef = map[rune]rune{
	'آ': 0xFEF5,
	'أ': 0xFEF7,
	'إ': 0xFEF9,
	'ا': 0xFEFB,
}

func joinsNext(r rune) bool {
	if r == tatweel {
		return true
	}

	l, ok := arabicLetters[r]

	return ok && l.forms == 4
}

func joinsPrevious(r rune) bool {
	if r == tatweel {
		return true
	}

	l, ok := arabicLetters[r]

	return ok && l.forms >= 2
}

// neighbour skips combining marks, which do not break joining.
func neighbour(rs []rune, i, step int) (rune, bool) {
	for j := i + step; j >= 0 && j < len(rs); j += step {
		if !unicode.Is(unicode.Mn, rs[j]) {
			return rs[j], true
		}
	}

	return 0, false
}

// shapeArabic replaces Arabic letters in s with their contextual
// presentation forms. Logical order is kept.
func shapeArabic(s string) string {
	if !hasArabic(s) {
		return s
	}

	rs := []rune(s)

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(rs); i++ {
		r := rs[i]

		letter, ok := arabicLetters[r]
		if !ok {
			b.WriteRune(r)
			continue
		}

		prev, hasPrev := neighbour(rs, i, -1)
		joinPrev := hasPrev && joinsNext(prev) && letter.forms >= 2

		if r == lam && i+1 < len(rs) {
			if lig, ok := lamAlef[rs[i+1]]; ok {
				if joinPrev {
					lig++
				}

				b.WriteRune(lig)
				i++

				continue
			}
		}

		next, hasNext := neighbour(rs, i, 1)
		joinNext := hasNext && letter.forms == 4 && joinsPrevious(next)

		form := 0
		switch {
		case joinPrev && joinNext:
			form = 3
		case joinNext:
			form = 2
		case joinPrev:
			form = 1
		}

		b.WriteRune(letter.isolated + rune(form))
	}

	return b.String()
}

type bidiDir int8

const (
	dirNeutral bidiDir = iota
	dirLTR
	dirRTL
	// dirNumber is laid out left to right but counts as RTL for the
	// neutrals around it.
	dirNumber
)

func runeDir(r rune) bidiDir {
	p, _ := bidi.LookupRune(r)

	switch p.Class() {
	case bidi.R, bidi.AL:
		return dirRTL
	case bidi.L:
		return dirLTR
	case bidi.EN, bidi.AN:
		return dirNumber
	default:
		return dirNeutral
	}
}

// visualLine reorders one line of logical text into left-to-right drawing
// order. Embeddings deeper than one level (Latin inside Arabic inside Latin)
// are flattened.
func visualLine(line string, rtl bool) string {
	if !hasArabic(line) {
		return line
	}

	rs := []rune(line)
	dirs := make([]bidiDir, len(rs))

	for i, r := range rs {
		dirs[i] = runeDir(r)
	}

	// Separators inside numbers ("5.4", "1,200") and terminators next to
	// them ("12%") belong to the number.
	for i, r := range rs {
		p, _ := bidi.LookupRune(r)

		switch p.Class() {
		case bidi.CS, bidi.ES:
			if i > 0 && i+1 < len(rs) && dirs[i-1] == dirNumber && runeDir(rs[i+1]) == dirNumber {
				dirs[i] = dirNumber
			}
		case bidi.ET:
			if i > 0 && dirs[i-1] == dirNumber {
				dirs[i] = dirNumber
			}
		}
	}
	for i := len(rs) - 2; i >= 0; i-- {
		if p, _ := bidi.LookupRune(rs[i]); p.Class() == bidi.ET && dirs[i+1] == dirNumber {
			dirs[i] = dirNumber
		}
	}

	base := dirLTR
	if rtl {
		base = dirRTL
	}

	strong := func(i, step int) bidiDir {
		for j := i + step; j >= 0 && j < len(rs); j += step {
			switch dirs[j] {
			case dirLTR:
				return dirLTR
			case dirRTL, dirNumber:
				return dirRTL
			}
		}

		return base
	}

	resolved := make([]bidiDir, len(rs))
	for i, d := range dirs {
		switch d {
		case dirNeutral:
			if before := strong(i, -1); before == strong(i, 1) {
				resolved[i] = before
			} else {
				resolved[i] = base
			}
		case dirNumber:
			resolved[i] = dirLTR
		default:
			resolved[i] = d
		}
	}

	var runs []string
	start := 0

	for i := 1; i <= len(rs); i++ {
		if i < len(rs) && resolved[i] == resolved[start] {
			continue
		}

		text := string(rs[start:i])
		if resolved[start] == dirRTL {
			text = bidi.ReverseString(text)
		}

		runs = append(runs, text)
		start = i
	}

	var b strings.Builder
	b.Grow(len(line))

	if rtl {
		for i := len(runs) - 1; i >= 0; i-- {
			b.WriteString(runs[i])
		}
	} else {
		for _, r := range runs {
			b.WriteString(r)
		}
	}

	return b.String()
}
