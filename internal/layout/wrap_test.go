// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/docsmith/pkg/types"
)

// fixedWidth measures every character as half the font size, close to the
// metrics of a monospaced core font.
func fixedWidth(text string, size float64) (float64, error) {
	return float64(len([]rune(text))) * size * 0.5, nil
}

func failingWidth(text string, size float64) (float64, error) {
	return 0, errors.New("unsupported glyph")
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth float64
		size     float64
		want     []string
	}{
		{
			name:     "single short line",
			text:     "hello world",
			maxWidth: 200,
			size:     12,
			want:     []string{"hello world"},
		},
		{
			name:     "breaks between words",
			text:     "one two three four",
			maxWidth: 60, // 10 chars at size 12
			size:     12,
			want:     []string{"one two", "three four"},
		},
		{
			name:     "long word splits by characters",
			text:     "abcdefghijklmnop",
			maxWidth: 30, // 5 chars at size 12
			size:     12,
			want:     []string{"abcde", "fghij", "klmno", "p"},
		},
		{
			name:     "empty input",
			text:     "",
			maxWidth: 100,
			size:     12,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.maxWidth, fixedWidth, tt.size)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestWrapPreservesWords verifies that no word is dropped or duplicated:
// joining the wrapped lines with spaces reproduces the input word sequence.
// Widths are chosen so every word fits on a line; narrower widths trigger
// character splitting, covered separately.
func TestWrapPreservesWords(t *testing.T) {
	texts := []string{
		"the quick brown fox jumps over the lazy dog",
		"a b c d e f g h i j k l m n o p",
		"word",
		"  leading and   trailing   spaces  ",
	}
	for _, text := range texts {
		for _, maxWidth := range []float64{60, 90, 400} {
			lines := Wrap(text, maxWidth, fixedWidth, 12)
			require.NotEmpty(t, lines, "non-empty input must wrap to at least one line")

			joined := strings.Fields(strings.Join(lines, " "))
			assert.Equal(t, strings.Fields(text), joined,
				"wrap(%q, %v) must preserve word sequence", text, maxWidth)
		}
	}
}

// TestWrapNarrowWidthKeepsCharacters verifies that when words are wider than
// the line and get split by characters, no character is lost or reordered.
func TestWrapNarrowWidthKeepsCharacters(t *testing.T) {
	texts := []string{
		"leading and trailing spaces",
		"incomprehensibilities",
		"mixed short extraordinarily long words",
	}
	for _, text := range texts {
		// 40pt fits six 12pt characters, narrower than several words.
		lines := Wrap(text, 40, fixedWidth, 12)
		require.NotEmpty(t, lines)

		got := strings.ReplaceAll(strings.Join(lines, ""), " ", "")
		want := strings.ReplaceAll(text, " ", "")
		assert.Equal(t, want, got, "wrap(%q) must keep every character in order", text)
	}
}

// TestWrapIdempotent verifies that re-wrapping an already-wrapped line at the
// same width reproduces that line.
func TestWrapIdempotent(t *testing.T) {
	lines := Wrap("the quick brown fox jumps over the lazy dog", 90, fixedWidth, 12)
	require.NotEmpty(t, lines)

	for _, line := range lines {
		again := Wrap(line, 90, fixedWidth, 12)
		assert.Equal(t, []string{line}, again)
	}
}

// TestWrapMetricFallback verifies that a failing metric function degrades to
// the per-character estimate instead of aborting.
func TestWrapMetricFallback(t *testing.T) {
	lines := Wrap("some text that still wraps", 60, failingWidth, 10)
	require.NotEmpty(t, lines)
	assert.Equal(t,
		strings.Fields("some text that still wraps"),
		strings.Fields(strings.Join(lines, " ")))
}

func TestPageDim(t *testing.T) {
	a4 := PageDim(types.PageA4)
	assert.InDelta(t, 595.28, a4.Width, 0.01)
	assert.InDelta(t, 841.89, a4.Height, 0.01)

	letter := PageDim(types.PageLetter)
	assert.Equal(t, 612.0, letter.Width)
	assert.Equal(t, 792.0, letter.Height)

	// Unknown size falls back to A4.
	assert.Equal(t, a4, PageDim(types.PageSize("tabloid")))
}

func TestMarginWidth(t *testing.T) {
	assert.Equal(t, 72.0, MarginWidth(types.MarginNormal))
	assert.Equal(t, 36.0, MarginWidth(types.MarginNarrow))
	assert.Equal(t, 108.0, MarginWidth(types.MarginWide))
	assert.Equal(t, 72.0, MarginWidth(types.Margin("gutter")))
}
