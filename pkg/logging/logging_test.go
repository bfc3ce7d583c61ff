package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "json", Out: &buf})
	require.NoError(t, err)

	logger.Info().Str("component", "comparator").Msg("run started")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "comparator", entry["component"])
	assert.Equal(t, "run started", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNewLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "json", Out: &buf})
	require.NoError(t, err)

	logger.Info().Msg("suppressed")
	assert.Empty(t, buf.Bytes())

	logger.Warn().Msg("emitted")
	assert.NotEmpty(t, buf.Bytes())
}

func TestNewDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Out: &buf})
	require.NoError(t, err)

	logger.Debug().Msg("below default info level")
	assert.Empty(t, buf.Bytes())
}

func TestNewInvalidOptions(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)

	_, err = New(Options{Format: "xml"})
	assert.Error(t, err)
}

func TestNewFileSink(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "run.log")

	logger, err := New(Options{Format: "json", File: path, Out: &buf})
	require.NoError(t, err)

	logger.Error().Msg("written to both sinks")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to both sinks")
	assert.Contains(t, buf.String(), "written to both sinks")
}
