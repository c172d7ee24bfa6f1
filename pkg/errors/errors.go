// Package errors provides custom error types for the booktrack system.
// These errors enable programmatic error checking via errors.Is and carry
// enough context (offending line, ISBN, path) for user-facing messages.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Sentinel errors for the booktrack system. Typed errors below satisfy
// errors.Is against these, so callers can branch on kind without caring
// about the concrete type.
var (
	// ErrInsufficientArguments indicates fewer than two CLI arguments.
	ErrInsufficientArguments = errors.New("insufficient arguments")

	// ErrInvalidFileName indicates a catalog path without a .txt extension.
	ErrInvalidFileName = errors.New("invalid file name")

	// ErrMalformedEntry indicates a record line that fails structural
	// validation (field count, empty title/author, bad copies value).
	ErrMalformedEntry = errors.New("malformed entry")

	// ErrInvalidISBN indicates an ISBN field that is not exactly 13
	// decimal digits.
	ErrInvalidISBN = errors.New("invalid ISBN")

	// ErrDuplicateISBN indicates an ISBN collision: rejected on add,
	// data corruption when found during search.
	ErrDuplicateISBN = errors.New("duplicate ISBN")

	// ErrPersistence indicates the catalog file could not be written.
	ErrPersistence = errors.New("persistence failure")
)

// EntryError represents a record line that failed parsing or validation.
// Kind is one of ErrMalformedEntry or ErrInvalidISBN.
type EntryError struct {
	Line   string
	Reason string
	Kind   error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	if e.Line != "" {
		return fmt.Sprintf("invalid entry %q: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("invalid entry: %s", e.Reason)
}

// Is implements errors.Is support.
func (e *EntryError) Is(target error) bool {
	return target == e.Kind
}

// NewMalformedEntryError creates an EntryError of kind ErrMalformedEntry.
func NewMalformedEntryError(line, reason string) *EntryError {
	return &EntryError{Line: line, Reason: reason, Kind: ErrMalformedEntry}
}

// NewInvalidISBNError creates an EntryError of kind ErrInvalidISBN.
func NewInvalidISBNError(line, reason string) *EntryError {
	return &EntryError{Line: line, Reason: reason, Kind: ErrInvalidISBN}
}

// DuplicateISBNError represents an ISBN collision.
type DuplicateISBNError struct {
	ISBN string
	// Count is the number of records sharing the ISBN when the collision
	// was discovered during a search; zero for add-time rejections.
	Count int
}

// Error implements the error interface.
func (e *DuplicateISBNError) Error() string {
	if e.Count > 1 {
		return fmt.Sprintf("%d books share ISBN %s: catalog data is corrupt", e.Count, e.ISBN)
	}
	return fmt.Sprintf("cannot add: ISBN %s already exists", e.ISBN)
}

// Is implements errors.Is support.
func (e *DuplicateISBNError) Is(target error) bool {
	return target == ErrDuplicateISBN
}

// NewDuplicateISBNError creates an add-time DuplicateISBNError.
func NewDuplicateISBNError(isbn string) *DuplicateISBNError {
	return &DuplicateISBNError{ISBN: isbn}
}

// PersistenceError represents a failed catalog write.
type PersistenceError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to save catalog %s: %v", e.Path, e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support.
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// WrapPersistence wraps an error as a PersistenceError.
func WrapPersistence(path string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Path: path, Err: err}
}

// IOError represents an error during I/O operations other than saving.
type IOError struct {
	Operation string // "read", "create", "open"
	Path      string
	Err       error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *IOError) Unwrap() error {
	return e.Err
}

// WrapIO wraps an error as an IOError.
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Err: err}
}

// Helper functions for error checking.

// IsMalformedEntry checks if an error is a malformed entry error.
func IsMalformedEntry(err error) bool {
	return errors.Is(err, ErrMalformedEntry)
}

// IsInvalidISBN checks if an error is an invalid ISBN error.
func IsInvalidISBN(err error) bool {
	return errors.Is(err, ErrInvalidISBN)
}

// IsDuplicateISBN checks if an error is a duplicate ISBN error.
func IsDuplicateISBN(err error) bool {
	return errors.Is(err, ErrDuplicateISBN)
}

// IsPersistence checks if an error is a persistence error.
func IsPersistence(err error) bool {
	return errors.Is(err, ErrPersistence)
}
