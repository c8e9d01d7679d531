package fixture

import (
	"fmt"

	"github.com/arnodel/tokencheck/token"
)

// Unescape rewrites every string-bearing field of tok in place, treating
// each field as a double-escaped JSON string and decoding one level of
// escaping.  Some suite variants store expected strings double-escaped so
// that unpaired surrogates and control characters survive the JSON file.
//
// Unescaping fails fast: on the first field that does not decode, the token
// is left partially rewritten and the error is returned.
func Unescape(tok token.Token) error {
	switch t := tok.(type) {
	case *token.Text:
		return unescapeString(&t.Content)
	case *token.Comment:
		return unescapeString(&t.Content)
	case *token.EndTag:
		return unescapeString(&t.Name)
	case *token.StartTag:
		if err := unescapeString(&t.Name); err != nil {
			return err
		}
		for k, v := range t.Attributes {
			if err := unescapeString(&v); err != nil {
				return err
			}
			t.Attributes[k] = v
		}
		return nil
	case *token.Doctype:
		if err := unescapeOpt(t.Name); err != nil {
			return err
		}
		if err := unescapeOpt(t.PublicID); err != nil {
			return err
		}
		return unescapeOpt(t.SystemID)
	}
	return nil
}

func unescapeOpt(s *string) error {
	if s == nil {
		return nil
	}
	return unescapeString(s)
}

// unescapeString decodes one level of JSON string escaping by re-parsing s
// as a JSON string literal.
func unescapeString(s *string) error {
	var out string
	if err := json.Unmarshal([]byte(`"`+*s+`"`), &out); err != nil {
		return fmt.Errorf("unescape %q: %w", *s, err)
	}
	*s = out
	return nil
}
