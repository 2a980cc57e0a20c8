// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import "strings"

// WidthFunc estimates the rendered width in points of text at a font size.
// It returns an error for text the underlying font cannot measure
// (unsupported glyphs or encodings).
type WidthFunc func(text string, size float64) (float64, error)

// fallbackCharFactor estimates per-character width as a fraction of the font
// size when the metric function fails.
const fallbackCharFactor = 0.58

// Wrap breaks text into lines no wider than maxWidth points, measuring with
// widthOf at the given font size. Words are accumulated greedily; a single
// word wider than maxWidth is split character by character so no line is
// ever unrenderable. Wrap never returns an empty slice for non-empty input
// and preserves word order.
func Wrap(text string, maxWidth float64, widthOf WidthFunc, size float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		if text == "" {
			return nil
		}
		// Whitespace-only input still yields one (empty) line.
		return []string{""}
	}

	measure := func(s string) float64 {
		w, err := widthOf(s, size)
		if err != nil {
			return float64(len([]rune(s))) * size * fallbackCharFactor
		}
		return w
	}

	var lines []string
	var line string

	flush := func() {
		if line != "" {
			lines = append(lines, line)
			line = ""
		}
	}

	for _, word := range words {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if measure(candidate) <= maxWidth {
			line = candidate
			continue
		}

		flush()

		if measure(word) <= maxWidth {
			line = word
			continue
		}

		// The word alone overflows: accumulate characters instead.
		for _, r := range word {
			candidate := line + string(r)
			if line != "" && measure(candidate) > maxWidth {
				lines = append(lines, line)
				line = string(r)
				continue
			}
			line = candidate
		}
	}
	flush()

	if len(lines) == 0 {
		// maxWidth smaller than any single character; emit the text anyway.
		lines = []string{strings.Join(words, " ")}
	}
	return lines
}
