package tokencheck

import (
	"github.com/arnodel/tokencheck/internal/decode"
	"github.com/arnodel/tokencheck/token"
)

// A TokenList reduces a stream of tokenizer events into canonical tokens.
// The zero value is ready to use.
//
// Text nodes may arrive as several consecutive chunks.  The list keeps the
// current text node open, concatenating raw fragments, until a chunk carries
// LastInNode; only then is the undecoded suffix decoded, in one pass over
// the complete concatenation.  The decoded cursor guarantees that no part of
// the content is ever decoded twice, as decoding is not idempotent.
//
// The tokenizer must mark the final fragment of every text node.  If the
// stream ends with a node still open, Tokens returns it with whatever raw
// content was accumulated; this is a caller contract violation and is not
// detected here.
type TokenList struct {
	tokens []token.Token

	// openText aliases the last element of tokens when it is a Text token;
	// decodedUpTo counts the bytes of its content already decoded.
	openText    *token.Text
	decodedUpTo int
}

var _ EventSink = &TokenList{}

// Push observes the next event from the tokenizer.  It must be called once
// per event, in emission order.
func (l *TokenList) Push(ev Event) {
	switch e := ev.(type) {
	case *TextChunkEvent:
		l.pushText(e)
	case *CommentEvent:
		l.append(&token.Comment{Content: decode.Nulls(e.Raw)})
	case *StartTagEvent:
		attrs := make(map[string]string, len(e.Attributes))
		// Insert in reverse declaration order: on a duplicate name the
		// earliest declaration is written last and wins.
		for i := len(e.Attributes) - 1; i >= 0; i-- {
			a := e.Attributes[i]
			attrs[decode.Nulls(a.Name)] = decode.AttrValue(a.Value)
		}
		l.append(&token.StartTag{
			Name:        decode.Nulls(e.Name),
			Attributes:  attrs,
			SelfClosing: e.SelfClosing,
		})
	case *EndTagEvent:
		l.append(&token.EndTag{Name: decode.Nulls(e.Name)})
	case *DoctypeEvent:
		l.append(&token.Doctype{
			Name:        nullDecoded(e.Name),
			PublicID:    nullDecoded(e.PublicID),
			SystemID:    nullDecoded(e.SystemID),
			ForceQuirks: e.ForceQuirks,
		})
	}
}

func (l *TokenList) pushText(e *TextChunkEvent) {
	if l.openText != nil {
		l.openText.Content += e.Raw
		if e.LastInNode {
			decoded := decode.Text(l.openText.Content[l.decodedUpTo:], e.Type.DecodesReferences())
			l.openText.Content = l.openText.Content[:l.decodedUpTo] + decoded
			l.decodedUpTo = len(l.openText.Content)
		}
		return
	}
	t := &token.Text{}
	if e.LastInNode {
		t.Content = decode.Text(e.Raw, e.Type.DecodesReferences())
		l.decodedUpTo = len(t.Content)
	} else {
		t.Content = e.Raw
		l.decodedUpTo = 0
	}
	l.tokens = append(l.tokens, t)
	l.openText = t
}

// append adds a non-text token, closing any open text node: the next text
// chunk starts a fresh node.
func (l *TokenList) append(t token.Token) {
	l.tokens = append(l.tokens, t)
	l.openText = nil
}

// Consume implements EventSink, so a whole source can be reduced in one
// call with ConsumeStream.
func (l *TokenList) Consume(in <-chan Event) error {
	for ev := range in {
		l.Push(ev)
	}
	return nil
}

// Tokens returns the accumulated canonical tokens.
func (l *TokenList) Tokens() []token.Token {
	return l.tokens
}

func nullDecoded(s *string) *string {
	if s == nil {
		return nil
	}
	decoded := decode.Nulls(*s)
	return &decoded
}
