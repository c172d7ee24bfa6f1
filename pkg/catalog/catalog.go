// Package catalog implements the flat-file book catalog: record parsing and
// validation, whole-file load/save, search, and the add workflow.
//
// The catalog file is UTF-8 text with one `title:author:isbn:copies` record
// per line. The full collection is read into memory at the start of an
// invocation and written back in full at most once. There is no file locking;
// concurrent invocations against the same file are out of contract.
package catalog

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytekue/Library-book-tracker/pkg/constants"
	"github.com/bytekue/Library-book-tracker/pkg/errors"
	"github.com/bytekue/Library-book-tracker/pkg/logging"
)

// Catalog is the ordered in-memory collection of records backed by one
// catalog file. It lives for a single process invocation.
type Catalog struct {
	path  string
	books []Book
}

// LoadStats summarizes one load: how many lines parsed into records and how
// many were rejected and routed to the error log.
type LoadStats struct {
	Loaded  int
	Skipped int
}

// ValidatePath checks that the catalog path carries the required .txt
// extension (case-insensitive). It performs no I/O.
func ValidatePath(path string) error {
	if !strings.HasSuffix(strings.ToLower(path), constants.CatalogExtension) {
		return errors.ErrInvalidFileName
	}
	return nil
}

// Prepare creates the catalog file and its parent directory when missing,
// so that a first invocation against a fresh path starts from an empty
// catalog.
func Prepare(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	return file.Close()
}

// Load reads the catalog file line by line, order-preserving. Every line is
// independently parsed; lines that fail validation are skipped and reported
// to errlog (which may be nil). Load never fails on bad content — a fully
// invalid file yields an empty catalog. Only an I/O failure is returned as
// an error.
func Load(path string, errlog *ErrorLog) (*Catalog, LoadStats, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}, errors.WrapIO("open", path, err)
	}
	defer file.Close()

	c := &Catalog{path: path}
	var stats LoadStats

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		book, err := ParseLine(line)
		if err != nil {
			stats.Skipped++
			errlog.Record(line, err)
			logging.Debug().Str("line", line).Err(err).Msg("Skipping invalid catalog entry")
			continue
		}
		c.books = append(c.books, book)
		stats.Loaded++
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, errors.WrapIO("read", path, err)
	}

	return c, stats, nil
}

// Save serializes the full collection back to the catalog file, one record
// per line, truncating prior contents. A failed write surfaces as a
// PersistenceError and is never retried.
func (c *Catalog) Save() error {
	var sb strings.Builder
	for _, b := range c.books {
		sb.WriteString(b.Line())
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(c.path, []byte(sb.String()), constants.FilePermissions); err != nil {
		return errors.WrapPersistence(c.path, err)
	}
	return nil
}

// Path returns the backing catalog file path.
func (c *Catalog) Path() string {
	return c.path
}

// Books returns the records in catalog order. The returned slice is shared;
// callers must not modify it.
func (c *Catalog) Books() []Book {
	return c.books
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.books)
}
