package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerIn(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "moru")
	require.NoError(t, InitLoggerIn(dir))
	t.Cleanup(func() { debugLogger = nil })

	LogDebug("listing %d runs", 3)

	data, err := os.ReadFile(filepath.Join(dir, "debug.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "=== Moru CLI Started ===")
	assert.Contains(t, string(data), "listing 3 runs")
	assert.Contains(t, string(data), "logger_test.go")
}

func TestLogDebugWithoutLogger(t *testing.T) {
	debugLogger = nil
	assert.Nil(t, Logger())
	LogDebug("dropped")

	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { debugLogger = nil })

	require.NotNil(t, Logger())
	LogDebug("kept")
	assert.Contains(t, buf.String(), "kept")
}
