package catalog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/bytekue/Library-book-tracker/pkg/constants"
	"github.com/bytekue/Library-book-tracker/pkg/errors"
)

// isbnPattern matches exactly 13 decimal digits. ISBNs are kept as text to
// preserve leading zeros.
var isbnPattern = regexp.MustCompile(`^[0-9]{13}$`)

// Book is one catalog record. Books are immutable after construction:
// ParseLine is the only way to build one, and no operation mutates an
// existing record.
type Book struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
	Copies int    `json:"copies"`
}

// ParseLine parses and validates a single catalog line of the form
// `title:author:isbn:copies` into a Book. It is the single validated
// factory used for both catalog-file lines and add-operation arguments.
//
// Text fields are trimmed. Returns an error of kind ErrMalformedEntry when
// the field count is not 4, title or author is empty after trimming, or
// copies is not a positive integer, and of kind ErrInvalidISBN when the
// ISBN field is not exactly 13 decimal digits.
func ParseLine(line string) (Book, error) {
	parts := strings.Split(line, constants.FieldDelimiter)
	if len(parts) != constants.FieldCount {
		return Book{}, errors.NewMalformedEntryError(line, "line must have 4 fields")
	}

	title := strings.TrimSpace(parts[0])
	author := strings.TrimSpace(parts[1])
	isbn := strings.TrimSpace(parts[2])
	copiesText := strings.TrimSpace(parts[3])

	if title == "" || author == "" {
		return Book{}, errors.NewMalformedEntryError(line, "title/author cannot be empty")
	}

	if !isbnPattern.MatchString(isbn) {
		return Book{}, errors.NewInvalidISBNError(line, "ISBN must be exactly 13 digits")
	}

	copies, err := strconv.Atoi(copiesText)
	if err != nil {
		return Book{}, errors.NewMalformedEntryError(line, "copies must be an integer")
	}
	if copies <= 0 {
		return Book{}, errors.NewMalformedEntryError(line, "copies must be positive")
	}

	return Book{
		Title:  title,
		Author: author,
		ISBN:   isbn,
		Copies: copies,
	}, nil
}

// Line serializes the book back into its catalog file representation.
// ParseLine(b.Line()) yields a book identical to b.
func (b Book) Line() string {
	return strings.Join([]string{
		b.Title,
		b.Author,
		b.ISBN,
		strconv.Itoa(b.Copies),
	}, constants.FieldDelimiter)
}
