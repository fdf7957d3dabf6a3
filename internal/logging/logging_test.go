package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf)

	logger.Infof("task started: session=%s", "abc")
	logger.Warnf("hook mismatch")
	logger.Errorf("insert failed: %v", os.ErrPermission)

	out := buf.String()
	assert.Contains(t, out, "INFO - task started: session=abc")
	assert.Contains(t, out, "WARNING - hook mismatch")
	assert.Contains(t, out, "ERROR - insert failed: permission denied")
}

func TestNewCreatesParentDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "notifier.log")

	logger := New(path, 1, 1)
	logger.Infof("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INFO - hello")
}

func TestNopDiscards(t *testing.T) {
	// Must not panic or write anywhere.
	Nop().Errorf("ignored")
}
