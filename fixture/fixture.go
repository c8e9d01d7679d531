// Package fixture parses tokenizer conformance fixtures in the html5lib
// format: each expected token is a compact positional JSON array whose first
// element names the token kind and whose arity depends on it, e.g.
//
//	["Character", "hello"]
//	["StartTag", "a", {"href": "/x"}, true]
//	["DOCTYPE", "html", null, null, true]
//
// Fixtures decode into the same canonical model as live tokenizer output
// (the token package), so the two can be compared directly.
package fixture

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/arnodel/tokencheck/token"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Kind discriminators recognized at position 0 of a fixture array.
const (
	KindCharacter = "Character"
	KindComment   = "Comment"
	KindStartTag  = "StartTag"
	KindEndTag    = "EndTag"
	KindDoctype   = "DOCTYPE"
)

// A LengthError reports a fixture array with fewer elements than its kind
// requires.
type LengthError struct {
	Kind string // the kind discriminator, or "" when position 0 itself is missing
	Want string // human-readable minimum, e.g. "2" or "3 or 4"
	Got  int
}

func (e *LengthError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("fixture token: invalid length %d, expected %s", e.Got, e.Want)
	}
	return fmt.Sprintf("fixture %s token: invalid length %d, expected %s", e.Kind, e.Got, e.Want)
}

// An UnknownKindError reports an unrecognized kind discriminator at
// position 0.
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("fixture token: unknown kind %q at position 0", e.Kind)
}

// DecodeToken parses one positional fixture array into a canonical token.
func DecodeToken(data []byte) (token.Token, error) {
	var elems []jsoniter.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("fixture token: %w", err)
	}
	return decodeElems(elems)
}

func decodeElems(elems []jsoniter.RawMessage) (token.Token, error) {
	if len(elems) == 0 {
		return nil, &LengthError{Want: "2 or more", Got: 0}
	}
	var kind string
	if err := json.Unmarshal(elems[0], &kind); err != nil {
		return nil, fmt.Errorf("fixture token: position 0: %w", err)
	}
	switch kind {
	case KindCharacter:
		content, err := stringAt(elems, 1, kind, "2")
		if err != nil {
			return nil, err
		}
		return &token.Text{Content: content}, nil

	case KindComment:
		content, err := stringAt(elems, 1, kind, "2")
		if err != nil {
			return nil, err
		}
		return &token.Comment{Content: content}, nil

	case KindStartTag:
		name, err := stringAt(elems, 1, kind, "3 or 4")
		if err != nil {
			return nil, err
		}
		rawAttrs, err := attrsAt(elems, 2, kind, "3 or 4")
		if err != nil {
			return nil, err
		}
		attrs := make(map[string]string, len(rawAttrs))
		for k, v := range rawAttrs {
			attrs[asciiLower(k)] = v
		}
		selfClosing := false
		if len(elems) > 3 {
			selfClosing, err = boolAt(elems, 3, kind, "3 or 4")
			if err != nil {
				return nil, err
			}
		}
		return &token.StartTag{
			Name:        asciiLower(name),
			Attributes:  attrs,
			SelfClosing: selfClosing,
		}, nil

	case KindEndTag:
		name, err := stringAt(elems, 1, kind, "2")
		if err != nil {
			return nil, err
		}
		return &token.EndTag{Name: asciiLower(name)}, nil

	case KindDoctype:
		name, err := optStringAt(elems, 1, kind, "5")
		if err != nil {
			return nil, err
		}
		publicID, err := optStringAt(elems, 2, kind, "5")
		if err != nil {
			return nil, err
		}
		systemID, err := optStringAt(elems, 3, kind, "5")
		if err != nil {
			return nil, err
		}
		// The fixture encodes quirks-mode correctness, not force_quirks.
		correct, err := boolAt(elems, 4, kind, "5")
		if err != nil {
			return nil, err
		}
		if name != nil {
			*name = asciiLower(*name)
		}
		return &token.Doctype{
			Name:        name,
			PublicID:    publicID,
			SystemID:    systemID,
			ForceQuirks: !correct,
		}, nil

	default:
		return nil, &UnknownKindError{Kind: kind}
	}
}

func stringAt(elems []jsoniter.RawMessage, i int, kind, want string) (string, error) {
	if i >= len(elems) {
		return "", &LengthError{Kind: kind, Want: want, Got: len(elems)}
	}
	var s string
	if err := json.Unmarshal(elems[i], &s); err != nil {
		return "", fmt.Errorf("fixture %s token: position %d: %w", kind, i, err)
	}
	return s, nil
}

func optStringAt(elems []jsoniter.RawMessage, i int, kind, want string) (*string, error) {
	if i >= len(elems) {
		return nil, &LengthError{Kind: kind, Want: want, Got: len(elems)}
	}
	// jsoniter decodes a JSON null into an empty RawMessage instead of
	// preserving the literal as encoding/json does, so an empty element
	// here can only mean null.
	if len(elems[i]) == 0 {
		return nil, nil
	}
	var s *string
	if err := json.Unmarshal(elems[i], &s); err != nil {
		return nil, fmt.Errorf("fixture %s token: position %d: %w", kind, i, err)
	}
	return s, nil
}

func boolAt(elems []jsoniter.RawMessage, i int, kind, want string) (bool, error) {
	if i >= len(elems) {
		return false, &LengthError{Kind: kind, Want: want, Got: len(elems)}
	}
	var b bool
	if err := json.Unmarshal(elems[i], &b); err != nil {
		return false, fmt.Errorf("fixture %s token: position %d: %w", kind, i, err)
	}
	return b, nil
}

func attrsAt(elems []jsoniter.RawMessage, i int, kind, want string) (map[string]string, error) {
	if i >= len(elems) {
		return nil, &LengthError{Kind: kind, Want: want, Got: len(elems)}
	}
	var m map[string]string
	if err := json.Unmarshal(elems[i], &m); err != nil {
		return nil, fmt.Errorf("fixture %s token: position %d: %w", kind, i, err)
	}
	return m, nil
}

// asciiLower lowercases ASCII letters only; non-ASCII casing is untouched.
func asciiLower(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

// A TestCase is one tokenizer conformance test: an input document and the
// canonical tokens a conforming tokenizer must produce for it.
type TestCase struct {
	Description   string
	Input         string
	Output        []token.Token
	InitialStates []string
	LastStartTag  string
	DoubleEscaped bool
}

// UnmarshalJSON decodes a test case record.  When the record is marked
// doubleEscaped, the input string and every expected token are unescaped at
// load time, so the decoded case is directly comparable to live output.
func (c *TestCase) UnmarshalJSON(data []byte) error {
	var raw struct {
		Description   string                `json:"description"`
		Input         string                `json:"input"`
		Output        []jsoniter.RawMessage `json:"output"`
		InitialStates []string              `json:"initialStates"`
		LastStartTag  string                `json:"lastStartTag"`
		DoubleEscaped bool                  `json:"doubleEscaped"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	output := make([]token.Token, 0, len(raw.Output))
	for i, msg := range raw.Output {
		tok, err := DecodeToken(msg)
		if err != nil {
			return fmt.Errorf("output[%d]: %w", i, err)
		}
		output = append(output, tok)
	}
	c.Description = raw.Description
	c.Input = raw.Input
	c.Output = output
	c.InitialStates = raw.InitialStates
	c.LastStartTag = raw.LastStartTag
	c.DoubleEscaped = raw.DoubleEscaped
	if raw.DoubleEscaped {
		if err := unescapeString(&c.Input); err != nil {
			return fmt.Errorf("input: %w", err)
		}
		for i, tok := range c.Output {
			if err := Unescape(tok); err != nil {
				return fmt.Errorf("output[%d]: %w", i, err)
			}
		}
	}
	return nil
}

// A Suite is one conformance suite file: a named list of test cases.
type Suite struct {
	Tests []TestCase `json:"tests"`
}

// DecodeSuite parses a suite file's contents.
func DecodeSuite(data []byte) (*Suite, error) {
	var suite Suite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, err
	}
	return &suite, nil
}

// LoadSuiteFile reads and parses a suite file.
func LoadSuiteFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	suite, err := DecodeSuite(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return suite, nil
}
