// Package table provides table formatting data for CLI output.
package table

import (
	"strconv"

	"github.com/bytekue/Library-book-tracker/pkg/catalog"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// BooksToTableData converts book records to table format with the
// Title/Author/ISBN/Copies display columns.
func BooksToTableData(books []catalog.Book) Data {
	headers := []string{"Title", "Author", "ISBN", "Copies"}

	rows := make([][]string, 0, len(books))
	for _, b := range books {
		rows = append(rows, []string{
			b.Title,
			b.Author,
			b.ISBN,
			strconv.Itoa(b.Copies),
		})
	}

	return Data{
		Headers: headers,
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignLeft,
			AlignLeft,
			AlignLeft,
			AlignRight,
		},
	}
}
