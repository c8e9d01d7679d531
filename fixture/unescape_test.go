package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnodel/tokencheck/token"
)

// TestUnescape tests the in-place rewrite of every string-bearing field.
func TestUnescape(t *testing.T) {
	tests := []struct {
		name     string
		token    token.Token
		expected token.Token
	}{
		{
			"text",
			&token.Text{Content: `a & b`},
			&token.Text{Content: "a & b"},
		},
		{
			"comment",
			&token.Comment{Content: `line1\nline2`},
			&token.Comment{Content: "line1\nline2"},
		},
		{
			"end tag",
			&token.EndTag{Name: `div`},
			&token.EndTag{Name: "div"},
		},
		{
			"start tag name and attribute values",
			&token.StartTag{
				Name:       `a`,
				Attributes: map[string]string{"href": `/x`, "plain": "y"},
			},
			&token.StartTag{
				Name:       "a",
				Attributes: map[string]string{"href": "/x", "plain": "y"},
			},
		},
		{
			"doctype fields",
			&token.Doctype{
				Name:     strPtr(`html`),
				PublicID: strPtr(`pub`),
				SystemID: nil,
			},
			&token.Doctype{
				Name:     strPtr("html"),
				PublicID: strPtr("pub"),
				SystemID: nil,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, Unescape(tt.token))
			assert.Equal(t, tt.expected, tt.token)
		})
	}
}

// TestUnescapeError tests that a failing field aborts the pass and the
// error reaches the caller; earlier fields stay rewritten (no rollback).
func TestUnescapeError(t *testing.T) {
	tok := &token.StartTag{
		Name:       `ok`,
		Attributes: map[string]string{"bad": `\x`},
	}
	err := Unescape(tok)
	require.Error(t, err)
	// The name is processed before attribute values, so it has already
	// been rewritten when the failure surfaces.
	assert.Equal(t, "ok", tok.Name)
}

func TestUnescapeErrorVariants(t *testing.T) {
	tests := []struct {
		name  string
		token token.Token
	}{
		{"text", &token.Text{Content: `\`}},
		{"comment", &token.Comment{Content: `\q`}},
		{"end tag", &token.EndTag{Name: `"`}},
		{"doctype public id", &token.Doctype{PublicID: strPtr(`\u00`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, Unescape(tt.token))
		})
	}
}
