package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func decodeSingle(t *testing.T, buf *bytes.Buffer) logEntry {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	return entry
}

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf, Component: "showcase"})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"theme": "default", "mode": "dark"})
	log.Info("mounted")

	entry := decodeSingle(t, buf)
	require.Equal(t, "mounted", entry["message"])
	require.Equal(t, "showcase", entry["component"])
	require.Equal(t, "default", entry["theme"])
	require.Equal(t, "dark", entry["mode"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDefaultsToWarn(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.Info("this should not appear")
	log.Debug("nor this")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
	require.True(t, log.Enabled("warn"))
	require.False(t, log.Enabled("info"))
	require.False(t, log.Enabled("bogus"))
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestLoggerIssueNamesField(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.WithComponent("config").Issue("buttons[2].variant", errors.New("unknown variant"), "using default variant")

	entry := decodeSingle(t, buf)
	require.Equal(t, "warn", entry["level"])
	require.Equal(t, "config", entry["component"])
	require.Equal(t, "buttons[2].variant", entry["field"])
	require.Equal(t, "unknown variant", entry["error"])
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"asset": "logo.txt"})
	log.Error(errors.New("boom"), "failed")

	entry := decodeSingle(t, buf)
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "logo.txt", entry["asset"])
	require.Equal(t, "boom", entry["error"])
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLog *Logger
	require.NotPanics(t, func() {
		nilLog.Info("x")
		nilLog.Issue("f", nil, "x")
		nilLog.Error(nil, "x")
		require.Nil(t, nilLog.WithComponent("c"))
	})

	require.NotPanics(t, func() {
		Nop().Warn("discarded")
	})
}
