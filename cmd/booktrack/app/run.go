package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bytekue/Library-book-tracker/internal/cmd/output"
	"github.com/bytekue/Library-book-tracker/internal/cmd/table"
	"github.com/bytekue/Library-book-tracker/pkg/catalog"
)

// run loads the catalog, classifies the operation argument, and dispatches
// to the matching operation. Invalid catalog lines are skipped during load
// and appended to the errors.log next to the catalog file; they never fail
// the invocation.
func (a *App) run(cmd *cobra.Command, args []string) error {
	catalogPath, operation := args[0], args[1]

	if err := catalog.Prepare(catalogPath); err != nil {
		return err
	}

	errlog, err := catalog.OpenErrorLog(catalogPath)
	if err != nil {
		return err
	}
	defer func() { _ = errlog.Close() }()

	cat, stats, err := catalog.Load(catalogPath, errlog)
	if err != nil {
		return err
	}

	a.logger.Info().
		Str("catalog", catalogPath).
		Int("loaded", stats.Loaded).
		Int("skipped", stats.Skipped).
		Msg("Catalog loaded")

	out := cmd.OutOrStdout()

	op := catalog.ClassifyOperation(operation)
	a.logger.Debug().Stringer("operation", op).Str("argument", operation).Msg("Dispatching operation")

	switch op {
	case catalog.OpSearchISBN:
		return a.runSearchByISBN(out, cat, operation)
	case catalog.OpAdd:
		return a.runAdd(out, cat, operation)
	default:
		return a.runSearchByTitle(out, cat, operation)
	}
}

// runSearchByISBN performs an exact ISBN lookup.
func (a *App) runSearchByISBN(out io.Writer, cat *catalog.Catalog, isbn string) error {
	book, err := cat.SearchByISBN(isbn)
	if err != nil {
		return err
	}
	if book == nil {
		fmt.Fprintln(out, "No book found with this ISBN.")
		return nil
	}
	return a.render(out, []catalog.Book{*book})
}

// runSearchByTitle performs a case-insensitive title substring search.
func (a *App) runSearchByTitle(out io.Writer, cat *catalog.Catalog, keyword string) error {
	results := cat.SearchByTitle(keyword)
	if len(results) == 0 {
		fmt.Fprintf(out, "No books found matching: %s\n", keyword)
		return nil
	}
	return a.render(out, results)
}

// runAdd parses the argument as a new record, inserts it, and persists the
// re-sorted catalog.
func (a *App) runAdd(out io.Writer, cat *catalog.Catalog, arg string) error {
	book, err := cat.Add(arg)
	if err != nil {
		return err
	}

	a.logger.Info().Str("isbn", book.ISBN).Str("title", book.Title).Msg("Book added")

	fmt.Fprintln(out, "Book added successfully:")
	return a.render(out, []catalog.Book{book})
}

// render writes books in the configured output format: a Title/Author/ISBN/
// Copies table by default, or raw records for json/yaml output.
func (a *App) render(out io.Writer, books []catalog.Book) error {
	format := output.DetectFormat(a.config.Format)
	formatter := output.NewFormatter(format)

	if format == output.FormatTable {
		return formatter.Format(out, table.BooksToTableData(books))
	}
	return formatter.Format(out, books)
}
