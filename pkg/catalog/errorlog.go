package catalog

import (
	"io"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/bytekue/Library-book-tracker/pkg/constants"
	"github.com/bytekue/Library-book-tracker/pkg/logging"
)

// ErrorLog records malformed catalog entries encountered during load.
// It appends one timestamped JSON event per rejected line to an errors.log
// file next to the catalog, and never truncates prior contents.
type ErrorLog struct {
	logger zerolog.Logger
	closer io.Closer
}

// OpenErrorLog opens (creating when missing) the error log that lives next
// to the given catalog file.
func OpenErrorLog(catalogPath string) (*ErrorLog, error) {
	path := filepath.Join(filepath.Dir(catalogPath), constants.ErrorLogName)
	logger, closer, err := logging.NewFileLogger(path)
	if err != nil {
		return nil, err
	}
	return &ErrorLog{logger: logger, closer: closer}, nil
}

// Record appends one entry with the offending source line and the reason it
// was rejected.
func (l *ErrorLog) Record(line string, reason error) {
	if l == nil {
		return
	}
	l.logger.Error().
		Str("line", line).
		Str("reason", reason.Error()).
		Msg("invalid catalog entry")
}

// Close releases the underlying log file.
func (l *ErrorLog) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
