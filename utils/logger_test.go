package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T, level LogLevel) *bytes.Buffer {
	var buf bytes.Buffer
	oldOutput, oldLevel := LogOutput, GlobalLogLevel
	LogOutput, GlobalLogLevel = &buf, level
	t.Cleanup(func() {
		LogOutput, GlobalLogLevel = oldOutput, oldLevel
	})
	return &buf
}

func TestLogLevels(t *testing.T) {
	buf := captureLog(t, LogLevelError|LogLevelInfo)

	Debugf("test", "hidden %d", 1)
	Noticef("test", "hidden %d", 2)
	require.Zero(t, buf.Len())
	require.False(t, IsLogLevelDebug())

	Logf("test", "shown %d", 3)
	Errorf("test", "shown %d", 4)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasSuffix(lines[0], "[test] INFO shown 3"), lines[0])
	require.True(t, strings.HasSuffix(lines[1], "[test] ERROR shown 4"), lines[1])
}

func TestLogDebug(t *testing.T) {
	buf := captureLog(t, LogLevelDebug)
	require.True(t, IsLogLevelDebug())

	Debugf("test", "visible")
	Errorf("test", "hidden")
	require.Equal(t, 1, strings.Count(buf.String(), "\n"))
	require.Contains(t, buf.String(), "[test] DEBUG visible")
}

func TestPanicf(t *testing.T) {
	buf := captureLog(t, 0)

	var recovered any
	func() {
		defer func() {
			recovered = recover()
		}()
		Panicf("broken %d", 7)
	}()

	msg, ok := recovered.(string)
	require.True(t, ok)
	require.Contains(t, msg, "PANIC broken 7")
	require.Contains(t, buf.String(), "PANIC broken 7")
}
