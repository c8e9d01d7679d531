// Package decode implements the decoding steps applied when reducing raw
// tokenizer output to canonical tokens: null placeholder substitution,
// character reference decoding for text, and attribute value decoding.
//
// Decoding is not idempotent (running it twice over "&amp;amp;" yields "&"
// instead of "&amp;"), so callers are responsible for applying each function
// exactly once per piece of raw input.
package decode

import (
	"html"
	"strings"
)

// Nulls replaces every NUL in s with U+FFFD, the replacement the HTML
// specification requires for names, comments and doctype fields.
func Nulls(s string) string {
	if !strings.ContainsRune(s, 0) {
		return s
	}
	return strings.ReplaceAll(s, "\x00", "�")
}

// Text decodes the raw content of a text node.  Null substitution always
// applies; character references are only decoded when refs is true, i.e.
// when the text was emitted from a tokenizer state that processes them.
func Text(s string, refs bool) string {
	s = Nulls(s)
	if refs {
		s = html.UnescapeString(s)
	}
	return s
}

// AttrValue decodes a raw attribute value: character references then null
// substitution.
func AttrValue(s string) string {
	return html.UnescapeString(Nulls(s))
}
