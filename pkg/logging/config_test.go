package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"WARN", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.input), "parseLevel(%q)", tt.input)
	}
}

func TestNewLoggerFromConfig_Levels(t *testing.T) {
	logger := NewLoggerFromConfig(&Config{Level: "warn", Format: "json", Output: "discard"})
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	// Nil config falls back to defaults.
	logger = NewLoggerFromConfig(nil)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.log")

	logger, closer, err := NewFileLogger(path)
	require.NoError(t, err)
	logger.Error().Str("line", "garbage").Msg("invalid catalog entry")
	require.NoError(t, closer.Close())

	// Reopening appends rather than truncating.
	logger, closer, err = NewFileLogger(path)
	require.NoError(t, err)
	logger.Error().Str("line", "more garbage").Msg("invalid catalog entry")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		assert.Contains(t, entry, "time")
		assert.Contains(t, entry, "line")
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSON(&buf)
	logger.Info().Str("catalog", "catalog.txt").Msg("Catalog loaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "catalog.txt", entry["catalog"])
	assert.Equal(t, "Catalog loaded", entry["message"])
}
