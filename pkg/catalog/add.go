package catalog

import (
	"sort"
	"strings"

	"github.com/bytekue/Library-book-tracker/pkg/errors"
)

// Add parses the colon-delimited argument into a record, rejects ISBN
// collisions, inserts the record, re-sorts the collection by title
// (case-insensitive, stable), and persists the whole catalog. On any
// failure the catalog file is left untouched and the in-memory addition is
// discarded with the process.
func (c *Catalog) Add(arg string) (Book, error) {
	book, err := ParseLine(arg)
	if err != nil {
		return Book{}, err
	}

	for _, existing := range c.books {
		if existing.ISBN == book.ISBN {
			return Book{}, errors.NewDuplicateISBNError(book.ISBN)
		}
	}

	c.books = append(c.books, book)
	sort.SliceStable(c.books, func(i, j int) bool {
		return strings.ToLower(c.books[i].Title) < strings.ToLower(c.books[j].Title)
	})

	if err := c.Save(); err != nil {
		return Book{}, err
	}

	return book, nil
}
