package token

import (
	"fmt"
	"sort"
	"strings"
)

// A Token is one canonical item in the normalized output of an HTML
// tokenizer.  For example, the markup
//
//	<a HREF="/x">hi &amp; bye</a><!--done-->
//
// normalizes to the stream of Token (in pseudocode for clarity):
//
//	<a HREF="/x">   -> StartTag("a", {"href": "/x"})
//	hi &amp; bye    -> Text("hi & bye")
//	</a>            -> EndTag("a")
//	<!--done-->     -> Comment("done")
//
// All string content is fully decoded and names are normalized, so two
// Token lists can be compared for structural equality regardless of how
// the markup was spelled or how the tokenizer chunked its output.
type Token interface {
	fmt.Stringer
}

// Text is the fully decoded content of one logical text node.  A text node
// may have been delivered by the tokenizer as several raw fragments; a Text
// token always covers the whole node.
type Text struct {
	Content string
}

func (t *Text) String() string {
	return fmt.Sprintf("Text(%q)", t.Content)
}

var _ Token = &Text{}

// Comment is the decoded content of a comment, without the surrounding
// markers.
type Comment struct {
	Content string
}

func (c *Comment) String() string {
	return fmt.Sprintf("Comment(%q)", c.Content)
}

var _ Token = &Comment{}

// StartTag is an opening (or self-closing) tag.  Attribute keys are unique:
// when the source declares the same attribute more than once, the first
// declaration in document order wins and later ones are discarded.
type StartTag struct {
	Name        string
	Attributes  map[string]string
	SelfClosing bool
}

func (t *StartTag) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "StartTag(%q", t.Name)
	// Sort keys so the output is stable.
	keys := make([]string, 0, len(t.Attributes))
	for k := range t.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, ", %s=%q", k, t.Attributes[k])
	}
	if t.SelfClosing {
		b.WriteString(", self-closing")
	}
	b.WriteString(")")
	return b.String()
}

var _ Token = &StartTag{}

// EndTag is a closing tag.
type EndTag struct {
	Name string
}

func (t *EndTag) String() string {
	return fmt.Sprintf("EndTag(%q)", t.Name)
}

var _ Token = &EndTag{}

// Doctype is a doctype declaration.  Name, PublicID and SystemID are nil
// when the corresponding part is absent from the declaration, which is
// distinct from being empty.
type Doctype struct {
	Name        *string
	PublicID    *string
	SystemID    *string
	ForceQuirks bool
}

func (t *Doctype) String() string {
	var b strings.Builder
	b.WriteString("Doctype(")
	b.WriteString(optString(t.Name))
	b.WriteString(", public=")
	b.WriteString(optString(t.PublicID))
	b.WriteString(", system=")
	b.WriteString(optString(t.SystemID))
	if t.ForceQuirks {
		b.WriteString(", force-quirks")
	}
	b.WriteString(")")
	return b.String()
}

var _ Token = &Doctype{}

func optString(s *string) string {
	if s == nil {
		return "<none>"
	}
	return fmt.Sprintf("%q", *s)
}
