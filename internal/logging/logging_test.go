package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/satococoa/deskshell/internal/config"
)

func TestNew_WritesToFallback(t *testing.T) {
	var buf bytes.Buffer

	logger, closeFn, err := New(config.Log{Level: "info"}, &buf)
	require.NoError(t, err)
	defer func() { _ = closeFn() }()

	logger.Info("executing command", zap.String("command", "ls"))
	logger.Debug("hidden below level")

	assert.Contains(t, buf.String(), "executing command")
	assert.Contains(t, buf.String(), `"command": "ls"`)
	assert.NotContains(t, buf.String(), "hidden below level")
}

func TestNew_DebugLevel(t *testing.T) {
	var buf bytes.Buffer

	logger, _, err := New(config.Log{Level: "debug"}, &buf)
	require.NoError(t, err)

	logger.Debug("command stdout", zap.String("stdout", "hello"))

	assert.Contains(t, buf.String(), "command stdout")
}

func TestNew_WritesToFile(t *testing.T) {
	var buf bytes.Buffer
	logFile := filepath.Join(t.TempDir(), "deskshell.log")

	logger, closeFn, err := New(config.Log{Level: "info", File: logFile}, &buf)
	require.NoError(t, err)

	logger.Info("to file")
	require.NoError(t, logger.Sync())
	require.NoError(t, closeFn())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Empty(t, buf.String())
}

func TestNew_NopWithoutSink(t *testing.T) {
	logger, closeFn, err := New(config.Log{Level: "info"}, nil)
	require.NoError(t, err)

	assert.NotPanics(t, func() { logger.Info("nowhere") })
	assert.NoError(t, closeFn())
}

func TestNew_InvalidLevel(t *testing.T) {
	_, _, err := New(config.Log{Level: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse log level")
}

func TestNew_UnwritableFile(t *testing.T) {
	_, _, err := New(config.Log{Level: "info", File: filepath.Join(t.TempDir(), "missing", "x.log")}, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open log file")
}
