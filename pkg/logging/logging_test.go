package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "petrovich", "petrovich.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should be created at %s", logPath)
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	got := getLogFilePath()
	assert.Equal(t, filepath.Join("/custom/state", "petrovich", "petrovich.log"), got)
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})

	prevConfigured := configured.Load()
	t.Cleanup(func() { configured.Store(prevConfigured) })

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf)
	configured.Store(true)

	logger := GetLogger("rules.loader")
	logger.Info().Msg("test message")

	assert.Contains(t, buf.String(), `"component":"rules.loader"`)
	assert.Contains(t, buf.String(), "test message")
}

func TestGetLogger_BeforeSetup(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	prevLevel := zerolog.GlobalLevel()
	prevConfigured := configured.Load()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
		configured.Store(prevConfigured)
	})

	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	log.Logger = zerolog.New(&buf)
	configured.Store(false)

	logger := GetLogger("inflect")
	logger.Trace().Msg("segment")
	logger.Debug().Msg("initialized")
	logger.Info().Msg("loaded")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("careful")
	assert.Contains(t, buf.String(), "careful")
}

func TestNewConsoleWriter_NoColor(t *testing.T) {
	tests := []struct {
		name      string
		noColor   string
		wantColor bool
	}{
		{"NO_COLOR set", "1", false},
		{"NO_COLOR unset", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			var buf bytes.Buffer

			logger := zerolog.New(newConsoleWriter(&buf))
			logger.Warn().Msg("plain warning")

			assert.Contains(t, buf.String(), "plain warning")
			assert.Equal(t, tt.wantColor, bytes.Contains(buf.Bytes(), []byte("\x1b[")))
		})
	}
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prevLevel) })
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := zerolog.New(&buf)
	done := LogOperationStart(logger, "inflect")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, `"operation":"inflect"`)
}

func TestSetupLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "petrovich.log")
	f, err := setupLogFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
