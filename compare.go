package tokencheck

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/arnodel/tokencheck/token"
)

// compareOptions treats a nil token list, a nil attribute map and their
// empty counterparts as equal: fixtures with no output decode to an empty
// slice while an untouched TokenList holds a nil one.
var compareOptions = cmp.Options{cmpopts.EquateEmpty()}

// Equal reports whether two canonical token lists are structurally equal.
func Equal(expected, actual []token.Token) bool {
	return cmp.Equal(expected, actual, compareOptions)
}

// Diff returns a human-readable description of how actual differs from
// expected.  It returns the empty string when the lists are equal.
func Diff(expected, actual []token.Token) string {
	return cmp.Diff(expected, actual, compareOptions)
}
