// Package htmlstream adapts the golang.org/x/net/html tokenizer to the
// event stream consumed by tokencheck.TokenList, so a conformance suite can
// be run end to end against a real tokenizer.
//
// Events carry raw text: text chunks are taken from the tokenizer's raw
// bytes so that character reference decoding is left to the accumulator
// under test rather than done here.
package htmlstream

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/arnodel/tokencheck"
)

// rawTextTypes maps the elements whose content the tokenizer emits without
// processing character references.
var rawTextTypes = map[string]tokencheck.TextType{
	"plaintext": tokencheck.PlainText,
	"title":     tokencheck.RCData,
	"textarea":  tokencheck.RCData,
	"style":     tokencheck.RawText,
	"xmp":       tokencheck.RawText,
	"iframe":    tokencheck.RawText,
	"noembed":   tokencheck.RawText,
	"noframes":  tokencheck.RawText,
	"script":    tokencheck.ScriptData,
}

// A Tokenizer produces tokencheck events from HTML input.
type Tokenizer struct {
	tz *html.Tokenizer

	// Tokenizer state for labelling text chunks.  rawTag is the name of
	// the open raw-text element, "" outside of one.
	rawTag   string
	textType tokencheck.TextType
}

var _ tokencheck.EventSource = &Tokenizer{}

// New sets up a new Tokenizer instance to read from the given input.
func New(in io.Reader) *Tokenizer {
	return &Tokenizer{tz: html.NewTokenizer(in)}
}

// Produce tokenizes the whole input, emitting one event per token.  The
// underlying tokenizer may deliver one text node as several consecutive
// text tokens, so a text event's LastInNode flag needs one token of
// lookahead: a text event is held back until the next token shows whether
// the node continues.
func (t *Tokenizer) Produce(out chan<- tokencheck.Event) error {
	var pendingText *tokencheck.TextChunkEvent
	for {
		tt := t.tz.Next()
		if tt == html.ErrorToken {
			if pendingText != nil {
				pendingText.LastInNode = true
				out <- pendingText
			}
			err := t.tz.Err()
			if err == io.EOF {
				return nil
			}
			return err
		}
		if pendingText != nil {
			pendingText.LastInNode = tt != html.TextToken
			out <- pendingText
			pendingText = nil
		}
		switch tt {
		case html.TextToken:
			pendingText = &tokencheck.TextChunkEvent{
				Raw:  string(t.tz.Raw()),
				Type: t.textType,
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			out <- t.startTagEvent(tt == html.SelfClosingTagToken)
		case html.EndTagToken:
			name, _ := t.tz.TagName()
			t.closeTag(string(name))
			out <- &tokencheck.EndTagEvent{Name: string(name)}
		case html.CommentToken:
			out <- &tokencheck.CommentEvent{Raw: commentContent(string(t.tz.Raw()))}
		case html.DoctypeToken:
			out <- parseDoctype(string(t.tz.Raw()))
		}
	}
}

func (t *Tokenizer) startTagEvent(selfClosing bool) *tokencheck.StartTagEvent {
	// Copy the raw bytes before TagName: it lowercases the shared buffer
	// in place.
	raw := string(t.tz.Raw())
	name, hasAttr := t.tz.TagName()
	ev := &tokencheck.StartTagEvent{
		Name:        string(name),
		SelfClosing: selfClosing,
	}
	if hasAttr {
		ev.Attributes = rawAttributes(raw)
	}
	if !selfClosing {
		if textType, ok := rawTextTypes[ev.Name]; ok {
			t.rawTag = ev.Name
			t.textType = textType
		}
	}
	return ev
}

func (t *Tokenizer) closeTag(name string) {
	// plaintext never closes; everything after it is raw text.
	if t.rawTag != "" && t.rawTag != "plaintext" && name == t.rawTag {
		t.rawTag = ""
		t.textType = tokencheck.Data
	}
}

// commentContent strips the comment markers from the raw token bytes,
// leaving the content undecoded.  The underlying tokenizer's Text method is
// no use here: it entity-unescapes comments, which HTML never does.  Bogus
// comments like <!x> or <?x> keep everything between the bracket and the
// closing ">".
func commentContent(raw string) string {
	s := strings.TrimSuffix(raw, ">")
	if rest, ok := strings.CutPrefix(s, "<!--"); ok {
		return strings.TrimSuffix(rest, "--")
	}
	s = strings.TrimPrefix(s, "<!")
	s = strings.TrimPrefix(s, "<?")
	return s
}

// rawAttributes scans a start tag's raw bytes for its attributes, keeping
// values exactly as they appear in the source.  The underlying tokenizer's
// TagAttr only exposes unescaped values, but events must carry raw content
// so that reference decoding is exercised in the accumulator.
func rawAttributes(raw string) []tokencheck.Attribute {
	s := strings.TrimPrefix(raw, "<")
	i := 0
	for i < len(s) && !isSpace(s[i]) && s[i] != '>' && s[i] != '/' {
		i++
	}
	s = s[i:]
	var attrs []tokencheck.Attribute
	for {
		for len(s) > 0 && (isSpace(s[0]) || s[0] == '/') {
			s = s[1:]
		}
		if len(s) == 0 || s[0] == '>' {
			return attrs
		}
		i = 0
		for i < len(s) && !isSpace(s[i]) && s[i] != '=' && s[i] != '/' && s[i] != '>' {
			i++
		}
		name := asciiLower(s[:i])
		s = s[i:]
		for len(s) > 0 && isSpace(s[0]) {
			s = s[1:]
		}
		var value string
		if len(s) > 0 && s[0] == '=' {
			s = s[1:]
			for len(s) > 0 && isSpace(s[0]) {
				s = s[1:]
			}
			if len(s) > 0 && (s[0] == '"' || s[0] == '\'') {
				q := s[0]
				end := strings.IndexByte(s[1:], q)
				if end < 0 {
					value, s = s[1:], ""
				} else {
					value, s = s[1:1+end], s[2+end:]
				}
			} else {
				i = 0
				for i < len(s) && !isSpace(s[i]) && s[i] != '>' {
					i++
				}
				value, s = s[:i], s[i:]
			}
		}
		attrs = append(attrs, tokencheck.Attribute{Name: name, Value: value})
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\f' || c == '\r'
}

// asciiLower lowercases ASCII letters only, matching the tokenizer's own
// name normalization.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

// parseDoctype extracts the name and public and system ids from the raw
// doctype bytes, which the underlying tokenizer does not break down.
// Quirks detection is keyword based and covers the common corpus shapes,
// not every malformed-doctype corner case.
func parseDoctype(raw string) *tokencheck.DoctypeEvent {
	s := strings.TrimSuffix(raw, ">")
	s = strings.TrimPrefix(s, "<!")
	if len(s) >= 7 && strings.EqualFold(s[:7], "doctype") {
		s = s[7:]
	}
	s = trimHTMLSpace(s)
	ev := &tokencheck.DoctypeEvent{}
	if s == "" {
		ev.ForceQuirks = true
		return ev
	}
	name := s
	if i := strings.IndexAny(s, " \t\n\f\r"); i >= 0 {
		name, s = s[:i], trimHTMLSpace(s[i:])
	} else {
		s = ""
	}
	name = strings.ToLower(name)
	ev.Name = &name
	if len(s) >= 6 {
		keyword, rest := strings.ToUpper(s[:6]), s[6:]
		switch keyword {
		case "PUBLIC":
			pub, rest, ok := readQuoted(rest)
			if !ok {
				ev.ForceQuirks = true
				break
			}
			ev.PublicID = &pub
			if sys, _, ok := readQuoted(rest); ok {
				ev.SystemID = &sys
			}
		case "SYSTEM":
			sys, _, ok := readQuoted(rest)
			if !ok {
				ev.ForceQuirks = true
				break
			}
			ev.SystemID = &sys
		}
	}
	return ev
}

func readQuoted(s string) (quoted, rest string, ok bool) {
	s = trimHTMLSpace(s)
	if s == "" {
		return "", "", false
	}
	q := s[0]
	if q != '"' && q != '\'' {
		return "", "", false
	}
	end := strings.IndexByte(s[1:], q)
	if end < 0 {
		return "", "", false
	}
	return s[1 : 1+end], s[2+end:], true
}

func trimHTMLSpace(s string) string {
	return strings.Trim(s, " \t\n\f\r")
}
