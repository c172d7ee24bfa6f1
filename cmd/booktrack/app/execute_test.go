package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytekue/Library-book-tracker/pkg/errors"
	"github.com/bytekue/Library-book-tracker/pkg/logging"
)

// newTestApp builds an app with logging discarded and table output forced,
// so command output is deterministic regardless of the test terminal.
func newTestApp(t *testing.T) *App {
	t.Helper()

	nop := logging.Nop
	application, err := New("test", "none", "unknown", "tests",
		WithConfig(&Config{
			Format:    "table",
			LogFormat: "json",
			LogOutput: "discard",
		}),
		WithLogger(&nop),
	)
	require.NoError(t, err)
	return application
}

// execute runs the root command with the given args and captures stdout.
func execute(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd := a.createRootCommand()
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestExecute_InsufficientArguments(t *testing.T) {
	a := newTestApp(t)

	_, err := execute(t, a, "catalog.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInsufficientArguments)

	_, err = execute(t, a)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInsufficientArguments)
}

func TestExecute_InvalidFileName(t *testing.T) {
	a := newTestApp(t)

	_, err := execute(t, a, "catalog.csv", "hobbit")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidFileName)

	// The check happens before any I/O: no file is created.
	_, statErr := os.Stat("catalog.csv")
	assert.True(t, os.IsNotExist(statErr))
}

func TestExecute_AddThenSearch(t *testing.T) {
	a := newTestApp(t)
	path := filepath.Join(t.TempDir(), "catalog.txt")

	out, err := execute(t, a, path, "The Hobbit:J.R.R. Tolkien:9780261102217:3")
	require.NoError(t, err)
	assert.Contains(t, out, "Book added successfully:")
	assert.Contains(t, out, "The Hobbit")

	out, err = execute(t, a, path, "Dune:Frank Herbert:9780441013593:5")
	require.NoError(t, err)
	assert.Contains(t, out, "Dune")

	// The persisted file is sorted case-insensitively by title.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Dune:Frank Herbert:9780441013593:5\nThe Hobbit:J.R.R. Tolkien:9780261102217:3\n",
		string(data))

	// Exact ISBN lookup.
	out, err = execute(t, a, path, "9780261102217")
	require.NoError(t, err)
	assert.Contains(t, out, "The Hobbit")
	assert.NotContains(t, out, "Dune")

	// Case-insensitive title substring search.
	out, err = execute(t, a, path, "hobbit")
	require.NoError(t, err)
	assert.Contains(t, out, "The Hobbit")
}

func TestExecute_SearchNoResults(t *testing.T) {
	a := newTestApp(t)
	path := filepath.Join(t.TempDir(), "catalog.txt")

	// A 13-digit argument is always an ISBN search, even when absent.
	out, err := execute(t, a, path, "1234567890123")
	require.NoError(t, err)
	assert.Contains(t, out, "No book found with this ISBN.")

	out, err = execute(t, a, path, "hobbit")
	require.NoError(t, err)
	assert.Contains(t, out, "No books found matching: hobbit")
}

func TestExecute_DuplicateAddFails(t *testing.T) {
	a := newTestApp(t)
	path := filepath.Join(t.TempDir(), "catalog.txt")

	_, err := execute(t, a, path, "The Hobbit:J.R.R. Tolkien:9780261102217:3")
	require.NoError(t, err)

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = execute(t, a, path, "Hobbit Reprint:Someone:9780261102217:1")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDuplicateISBN)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestExecute_InvalidLinesAreSkippedAndLogged(t *testing.T) {
	a := newTestApp(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.txt")

	content := strings.Join([]string{
		"The Hobbit:J.R.R. Tolkien:9780261102217:3",
		"garbage line",
		"Dune:Frank Herbert:9780441013593:5",
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	out, err := execute(t, a, path, "e")
	require.NoError(t, err)
	assert.Contains(t, out, "The Hobbit")
	assert.Contains(t, out, "Dune")

	logData, err := os.ReadFile(filepath.Join(dir, "errors.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logData), "garbage line")
}

func TestExecute_JSONFormat(t *testing.T) {
	a := newTestApp(t)
	path := filepath.Join(t.TempDir(), "catalog.txt")

	out, err := execute(t, a, path, "--format", "json", "The Hobbit:J.R.R. Tolkien:9780261102217:3")
	require.NoError(t, err)
	assert.Contains(t, out, `"isbn": "9780261102217"`)
}

func TestExecute_VersionCommand(t *testing.T) {
	a := newTestApp(t)

	out, err := execute(t, a, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "booktrack version test")
}
