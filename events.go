package tokencheck

import (
	"fmt"
	"strings"
)

// A TextType identifies the tokenizer state a text chunk was emitted from.
// Only Data and RCData text has character references processed; the other
// states pass text through raw.
type TextType uint8

const (
	Data TextType = iota
	PlainText
	RCData
	RawText
	ScriptData
	CDataSection
)

var textTypeNames = [...]string{"Data", "PlainText", "RCData", "RawText", "ScriptData", "CDataSection"}

func (t TextType) String() string {
	if int(t) < len(textTypeNames) {
		return textTypeNames[t]
	}
	return fmt.Sprintf("TextType(%d)", uint8(t))
}

// DecodesReferences reports whether text emitted in this state has
// character references decoded when the node is normalized.
func (t TextType) DecodesReferences() bool {
	return t == Data || t == RCData
}

// An Event is one record emitted by the tokenizer under test.  Event values
// carry raw, undecoded content: decoding is the accumulator's job, so that
// the harness exercises it rather than the tokenizer's own decoding.
type Event interface {
	fmt.Stringer
}

// TextChunkEvent is one fragment of a text node's raw content.  A logical
// text node may be delivered as several consecutive chunks; the final one
// carries LastInNode.
type TextChunkEvent struct {
	Raw        string
	Type       TextType
	LastInNode bool
}

func (e *TextChunkEvent) String() string {
	suffix := ""
	if e.LastInNode {
		suffix = ", last"
	}
	return fmt.Sprintf("TextChunk(%q, %s%s)", e.Raw, e.Type, suffix)
}

var _ Event = &TextChunkEvent{}

// CommentEvent is a comment's raw content, without the surrounding markers.
type CommentEvent struct {
	Raw string
}

func (e *CommentEvent) String() string {
	return fmt.Sprintf("Comment(%q)", e.Raw)
}

var _ Event = &CommentEvent{}

// An Attribute is one attribute as declared in the source, in declaration
// order and with raw name and value.  Duplicate names are allowed here;
// they are resolved during normalization.
type Attribute struct {
	Name  string
	Value string
}

// StartTagEvent is an opening (or self-closing) tag with its attribute list
// in declaration order.
type StartTagEvent struct {
	Name        string
	Attributes  []Attribute
	SelfClosing bool
}

func (e *StartTagEvent) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "StartTag(%q", e.Name)
	for _, a := range e.Attributes {
		fmt.Fprintf(&b, ", %s=%q", a.Name, a.Value)
	}
	if e.SelfClosing {
		b.WriteString(", self-closing")
	}
	b.WriteString(")")
	return b.String()
}

var _ Event = &StartTagEvent{}

// EndTagEvent is a closing tag.
type EndTagEvent struct {
	Name string
}

func (e *EndTagEvent) String() string {
	return fmt.Sprintf("EndTag(%q)", e.Name)
}

var _ Event = &EndTagEvent{}

// DoctypeEvent is a doctype declaration.  Absent parts are nil.
type DoctypeEvent struct {
	Name        *string
	PublicID    *string
	SystemID    *string
	ForceQuirks bool
}

func (e *DoctypeEvent) String() string {
	name := "<none>"
	if e.Name != nil {
		name = fmt.Sprintf("%q", *e.Name)
	}
	return fmt.Sprintf("Doctype(%s)", name)
}

var _ Event = &DoctypeEvent{}
