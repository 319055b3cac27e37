package logging

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	// Disable color output in tests so assertions match plain text.
	color.NoColor = true
}

// captureOutput redirects diagnostics into a buffer for the duration of fn.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	old := output
	var buf bytes.Buffer
	output = &buf
	defer func() { output = old }()

	fn()
	return buf.String()
}

func TestWarn(t *testing.T) {
	out := captureOutput(t, func() {
		Warn("caution")
	})
	assert.Equal(t, "[WARN] caution\n", out)
}

func TestError(t *testing.T) {
	out := captureOutput(t, func() {
		Error("failure")
	})
	assert.Equal(t, "[ERROR] failure\n", out)
}

func TestDebugSuppressedWhenNotVerbose(t *testing.T) {
	SetVerbose(false)
	out := captureOutput(t, func() {
		Debug("hidden")
	})
	assert.Empty(t, out)
}

func TestDebugShownWhenVerbose(t *testing.T) {
	SetVerbose(true)
	defer SetVerbose(false)

	out := captureOutput(t, func() {
		Debug("visible")
	})
	assert.Contains(t, out, "[DEBUG]")
	assert.Contains(t, out, "visible")
}

func TestNewTraceDisabled(t *testing.T) {
	out := captureOutput(t, func() {
		logger := NewTrace(false)
		logger.Debug().Str("tool", "node").Msg("probe finished")
	})
	assert.Empty(t, out)
}

func TestNewTraceEnabled(t *testing.T) {
	out := captureOutput(t, func() {
		logger := NewTrace(true)
		logger.Debug().Str("tool", "node").Msg("probe finished")
	})
	assert.Contains(t, out, "probe finished")
	assert.Contains(t, out, "tool=node")
	assert.Contains(t, out, "app=devcheck")
}
