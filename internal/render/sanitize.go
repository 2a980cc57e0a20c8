// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "strings"

// placeholderGlyph substitutes characters the core font encoding cannot
// represent. Precision is sacrificed for completion: drawing continues.
const placeholderGlyph = "?"

// typographicMap rewrites typographic punctuation to safe equivalents
// before encoding checks.
var typographicMap = map[rune]string{
	'‘': "'", // left single quote
	'’': "'", // right single quote
	'‚': "'",
	'“': `"`, // left double quote
	'”': `"`, // right double quote
	'„': `"`,
	'–': "-",   // en dash
	'—': "--",  // em dash
	'…': "...", // ellipsis
	' ': " ",   // no-break space
	'•': "-",   // bullet
	'−': "-",   // minus sign
	'ﬁ': "fi",  // fi ligature
	'ﬂ': "fl",  // fl ligature
}

// sanitizeText maps text into the core font's encoding range. It returns the
// safe string and whether any character needed the placeholder glyph.
func sanitizeText(text string) (clean string, substituted bool) {
	var sb strings.Builder
	for _, r := range text {
		if mapped, ok := typographicMap[r]; ok {
			sb.WriteString(mapped)
			continue
		}
		if encodable(r) {
			sb.WriteRune(r)
			continue
		}
		sb.WriteString(placeholderGlyph)
		substituted = true
	}
	return sb.String(), substituted
}

// encodable reports whether the rune survives the cp1252 encoding the core
// fonts use: printable ASCII plus the Latin-1 block, excluding the
// 0x80-0x9F control range.
func encodable(r rune) bool {
	if r == '\t' {
		return true
	}
	if r >= 0x20 && r < 0x7F {
		return true
	}
	return r >= 0xA0 && r <= 0xFF
}
