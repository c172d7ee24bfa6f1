package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryError(t *testing.T) {
	err := NewMalformedEntryError("bad line", "line must have 4 fields")
	assert.ErrorIs(t, err, ErrMalformedEntry)
	assert.NotErrorIs(t, err, ErrInvalidISBN)
	assert.Contains(t, err.Error(), "bad line")
	assert.Contains(t, err.Error(), "line must have 4 fields")

	isbnErr := NewInvalidISBNError("a:b:123:1", "ISBN must be exactly 13 digits")
	assert.ErrorIs(t, isbnErr, ErrInvalidISBN)
	assert.NotErrorIs(t, isbnErr, ErrMalformedEntry)
}

func TestDuplicateISBNError(t *testing.T) {
	addErr := NewDuplicateISBNError("9780261102217")
	assert.ErrorIs(t, addErr, ErrDuplicateISBN)
	assert.Contains(t, addErr.Error(), "already exists")

	searchErr := &DuplicateISBNError{ISBN: "9780261102217", Count: 2}
	assert.ErrorIs(t, searchErr, ErrDuplicateISBN)
	assert.Contains(t, searchErr.Error(), "corrupt")
}

func TestPersistenceError(t *testing.T) {
	cause := stderrors.New("disk full")
	err := WrapPersistence("catalog.txt", cause)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "catalog.txt")

	assert.NoError(t, WrapPersistence("catalog.txt", nil))
}

func TestIOError(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := WrapIO("open", "catalog.txt", cause)

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "open")
	assert.Contains(t, err.Error(), "catalog.txt")

	assert.NoError(t, WrapIO("open", "catalog.txt", nil))
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsMalformedEntry(NewMalformedEntryError("x", "y")))
	assert.True(t, IsInvalidISBN(NewInvalidISBNError("x", "y")))
	assert.True(t, IsDuplicateISBN(NewDuplicateISBNError("9780261102217")))
	assert.True(t, IsPersistence(WrapPersistence("f", stderrors.New("boom"))))

	other := stderrors.New("unrelated")
	assert.False(t, IsMalformedEntry(other))
	assert.False(t, IsInvalidISBN(other))
	assert.False(t, IsDuplicateISBN(other))
	assert.False(t, IsPersistence(other))
}
