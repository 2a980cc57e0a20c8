// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markup

import "strings"

// styleMap normalizes source style names, as found in Word documents and
// HTML-like renderings of them, onto the fixed tag vocabulary. Keys are
// compared case-insensitively with spaces collapsed.
var styleMap = map[string]Tag{
	"title":      TagTitle,
	"heading1":   TagHeading1,
	"heading 1":  TagHeading1,
	"h1":         TagHeading1,
	"heading2":   TagHeading2,
	"heading 2":  TagHeading2,
	"h2":         TagHeading2,
	"heading3":   TagHeading3,
	"heading 3":  TagHeading3,
	"h3":         TagHeading3,
	"heading4":   TagHeading4,
	"heading 4":  TagHeading4,
	"h4":         TagHeading4,
	"normal":     TagParagraph,
	"body text":  TagParagraph,
	"p":          TagParagraph,
	"quote":      TagQuote,
	"blockquote": TagQuote,
	"intense quote": TagQuote,
	"list paragraph": TagListItem,
	"listparagraph":  TagListItem,
	"li":             TagListItem,
	"strong":         TagBold,
	"b":              TagBold,
	"emphasis":       TagItalic,
	"em":             TagItalic,
	"i":              TagItalic,
	"hyperlink":      TagLink,
	"a":              TagLink,
}

// NormalizeStyle maps a source style name to a vocabulary tag. Unmapped
// styles degrade to paragraph rather than failing.
func NormalizeStyle(name string) Tag {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.Join(strings.Fields(key), " ")
	if tag, ok := styleMap[key]; ok {
		return tag
	}
	return TagParagraph
}

// Normalize rewrites an element tree in place so every node carries a tag
// from the fixed vocabulary. Nodes already tagged are left alone; nodes with
// unknown tags become paragraphs.
func Normalize(root *Element) *Element {
	if root == nil {
		return nil
	}
	if !knownTag(root.Tag) {
		root.Tag = NormalizeStyle(string(root.Tag))
	}
	for _, c := range root.Children {
		Normalize(c)
	}
	return root
}

func knownTag(t Tag) bool {
	switch t {
	case TagTitle, TagHeading1, TagHeading2, TagHeading3, TagHeading4,
		TagParagraph, TagQuote, TagListItem, TagTable, TagTableCell,
		TagBold, TagItalic, TagLink, TagImage, TagText, TagPageBreak:
		return true
	}
	return false
}
