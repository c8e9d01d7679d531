package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTokenString tests the readable forms used in diffs and failure
// messages.
func TestTokenString(t *testing.T) {
	name := "html"
	public := "-//W3C//DTD HTML 4.01//EN"

	tests := []struct {
		name     string
		token    Token
		expected string
	}{
		{"text", &Text{Content: "hello"}, `Text("hello")`},
		{"text with escapes", &Text{Content: "a\nb"}, `Text("a\nb")`},
		{"comment", &Comment{Content: "done"}, `Comment("done")`},
		{"end tag", &EndTag{Name: "div"}, `EndTag("div")`},
		{
			"start tag without attributes",
			&StartTag{Name: "p", Attributes: map[string]string{}},
			`StartTag("p")`,
		},
		{
			"start tag with sorted attributes",
			&StartTag{Name: "a", Attributes: map[string]string{"href": "/x", "class": "c"}},
			`StartTag("a", class="c", href="/x")`,
		},
		{
			"self-closing start tag",
			&StartTag{Name: "br", Attributes: map[string]string{}, SelfClosing: true},
			`StartTag("br", self-closing)`,
		},
		{
			"doctype with name only",
			&Doctype{Name: &name},
			`Doctype("html", public=<none>, system=<none>)`,
		},
		{
			"doctype with public id and quirks",
			&Doctype{Name: &name, PublicID: &public, ForceQuirks: true},
			`Doctype("html", public="-//W3C//DTD HTML 4.01//EN", system=<none>, force-quirks)`,
		},
		{
			"doctype with nothing",
			&Doctype{ForceQuirks: true},
			`Doctype(<none>, public=<none>, system=<none>, force-quirks)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.token.String())
		})
	}
}
