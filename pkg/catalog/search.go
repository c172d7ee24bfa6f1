package catalog

import (
	"strings"

	"github.com/bytekue/Library-book-tracker/pkg/errors"
)

// SearchByISBN scans the catalog for an exact ISBN match. A missing ISBN is
// not an error: the result is nil. More than one match means the catalog
// file already contained duplicates; that corruption is detected here, not
// repaired, and surfaces as a DuplicateISBNError.
func (c *Catalog) SearchByISBN(isbn string) (*Book, error) {
	var matches []Book
	for _, b := range c.books {
		if b.ISBN == isbn {
			matches = append(matches, b)
		}
	}

	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return &matches[0], nil
	default:
		return nil, &errors.DuplicateISBNError{ISBN: isbn, Count: len(matches)}
	}
}

// SearchByTitle returns every record whose title contains the keyword,
// case-insensitively, in original catalog order. No matches yields an empty
// result, not an error.
func (c *Catalog) SearchByTitle(keyword string) []Book {
	key := strings.ToLower(keyword)

	var results []Book
	for _, b := range c.books {
		if strings.Contains(strings.ToLower(b.Title), key) {
			results = append(results, b)
		}
	}
	return results
}
