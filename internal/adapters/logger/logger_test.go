package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildfy/internal/adapters/logger"
	"go.trai.ch/buildfy/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger returns a logger writing uncolored output into a buffer.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Debug("hidden")
	lg.Info("Starting build...")
	lg.Warn("PyInstaller not found")

	assert.Equal(t, "Starting build...\n! PyInstaller not found\n", buf.String())
}

func TestLogger_Verbose(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetVerbose(true)

	lg.Debug("span build finished")

	assert.Equal(t, "● span build finished\n", buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "INFO", record["level"])
}

func TestLogger_JSONKeepsOutput(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.SetVerbose(true)

	lg.Debug("kept")

	assert.Contains(t, buf.String(), `"msg":"kept"`)
}

func TestLogger_ErrorSimple(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(os.ErrPermission)

	assert.Equal(t, "✗ Error: permission denied\n", buf.String())
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_ErrorChain(t *testing.T) {
	lg, buf := newTestLogger(t)

	err := zerr.With(zerr.Wrap(errors.New("mkdir out: permission denied"), domain.ErrOutputDirCreateFailed.Error()), "path", "out")
	err = zerr.Wrap(err, domain.ErrInvalidInput.Error())
	lg.Error(err)

	g := goldie.New(t)
	g.Assert(t, "error_chain", buf.Bytes())
}

func TestFormatErrorEntries_Multiline(t *testing.T) {
	err := zerr.Wrap(errors.New("yaml: unmarshal errors:\n  line 3: cannot unmarshal"), domain.ErrConfigReadFailed.Error())

	got := logger.FormatErrorEntries(logger.CollectErrorEntries(err))

	assert.Equal(t, "Error: failed to read config file\n\n  Caused by:\n    → yaml: unmarshal errors:\n        line 3: cannot unmarshal", got)
}

func TestFormatErrorEntries_Metadata(t *testing.T) {
	err := zerr.With(zerr.With(domain.ErrSourceNotFound, "path", "app.py"), "attempt", 1)

	got := logger.FormatErrorEntries(logger.CollectErrorEntries(err))

	assert.Equal(t, "Error: selected Python file does not exist\n       attempt: 1\n       path: app.py", got)
}
