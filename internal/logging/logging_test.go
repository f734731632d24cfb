package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Level = "warn"
	opts.ReportTimestamp = false

	logger, err := New(&buf, opts)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "id", "42")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "id=42")
	assert.Contains(t, out, "tasklist")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	opts := DefaultOptions()
	opts.Level = "loud"
	_, err := New(&bytes.Buffer{}, opts)
	assert.Error(t, err)
}

func TestOpenFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tasklist.log")

	logger, closer, err := OpenFile(path, DefaultOptions())
	require.NoError(t, err)
	logger.Info("first")
	require.NoError(t, closer.Close())

	logger, closer, err = OpenFile(path, DefaultOptions())
	require.NoError(t, err)
	logger.Info("second")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}
