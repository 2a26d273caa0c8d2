package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, v bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(v)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebug_WhenVerbose(t *testing.T) {
	buf := capture(t, true)

	Debug("reading key from %s", "/keys/a.json")

	out := buf.String()
	assert.Contains(t, out, "DEBU")
	assert.Contains(t, out, "metricminer")
	assert.Contains(t, out, "reading key from /keys/a.json")
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("test message")

	assert.Zero(t, buf.Len(), "expected no output when verbose is disabled")
}

func TestSection(t *testing.T) {
	buf := capture(t, true)

	Section("Client")

	assert.Contains(t, buf.String(), "=== Client ===")
}

func TestInfo(t *testing.T) {
	buf := capture(t, true)

	Info("bound %s", "analyticsreporting:v4")

	assert.Contains(t, buf.String(), "INFO")
	assert.Contains(t, buf.String(), "bound analyticsreporting:v4")
}

func TestWarn(t *testing.T) {
	buf := capture(t, true)

	Warn("discovery %s", "skipped")

	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "discovery skipped")
}

func TestAllLevels_SilentWhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("d")
	Info("i")
	Warn("w")
	Section("s")

	assert.Empty(t, buf.String())
}
