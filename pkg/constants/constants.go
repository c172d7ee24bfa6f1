// Package constants provides shared constants used throughout the booktrack
// codebase, including file permissions and the catalog wire format.
package constants

// Catalog file format constants.
const (
	// FieldDelimiter separates record fields within a catalog line.
	// Fields may not contain it; there is no escaping.
	FieldDelimiter = ":"

	// FieldCount is the number of fields in a catalog line
	// (title, author, isbn, copies).
	FieldCount = 4

	// ISBNLength is the required number of decimal digits in an ISBN-13.
	ISBNLength = 13

	// CatalogExtension is the required catalog file extension,
	// matched case-insensitively.
	CatalogExtension = ".txt"

	// ErrorLogName is the name of the malformed-entry log file created
	// next to the catalog file.
	ErrorLogName = "errors.log"
)

// File permission constants define standard Unix file permissions.
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
