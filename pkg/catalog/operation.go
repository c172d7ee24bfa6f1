package catalog

import (
	"strings"

	"github.com/bytekue/Library-book-tracker/pkg/constants"
)

// Op identifies which operation an argument string requests.
type Op int

const (
	// OpSearchISBN is an exact ISBN lookup.
	OpSearchISBN Op = iota
	// OpAdd inserts a new record parsed from the argument.
	OpAdd
	// OpSearchTitle is a case-insensitive title substring search.
	OpSearchTitle
)

// String returns a human-readable operation name.
func (op Op) String() string {
	switch op {
	case OpSearchISBN:
		return "search-isbn"
	case OpAdd:
		return "add"
	default:
		return "search-title"
	}
}

// ClassifyOperation decides what a single operation argument means from its
// lexical shape alone. The order of checks is significant: a 13-digit string
// is always an ISBN search, anything else containing the field delimiter is
// an add payload, and everything remaining is a title search.
func ClassifyOperation(arg string) Op {
	if isbnPattern.MatchString(arg) {
		return OpSearchISBN
	}
	if strings.Contains(arg, constants.FieldDelimiter) {
		return OpAdd
	}
	return OpSearchTitle
}
