package render

import "strings"

// escapeHTML replaces the characters that carry markup meaning in text
// content with their entity forms. Text node data always passes through
// here before it is written.
func escapeHTML(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if e, ok := textEntities[r]; ok {
			b.WriteString(e)
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// escapeAttr escapes a value for a double-quoted attribute. Beyond the
// text entities, whitespace that would break attribute parsing is encoded
// numerically.
func escapeAttr(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if e, ok := attrEntities[r]; ok {
			b.WriteString(e)
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}

var textEntities = map[rune]string{
	'&':  "&amp;",
	'<':  "&lt;",
	'>':  "&gt;",
	'"':  "&quot;",
	'\'': "&#39;",
}

var attrEntities = map[rune]string{
	'&':  "&amp;",
	'<':  "&lt;",
	'>':  "&gt;",
	'"':  "&quot;",
	'\'': "&#39;",
	'\n': "&#10;",
	'\r': "&#13;",
	'\t': "&#9;",
}
