package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"", zerolog.WarnLevel},
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lvl, err := ParseLevel(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, lvl)
		})
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, FormatJSON, "info")
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Str("algo", "lz4").Msg("benchmark complete")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var event map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &event))
	require.Equal(t, "info", event["level"])
	require.Equal(t, "lz4", event["algo"])
	require.Equal(t, "benchmark complete", event["message"])
	require.Contains(t, event, "time")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, FormatConsole, "debug")
	require.NoError(t, err)

	log.Debug().Str("algo", "zstd").Msg("write phase done")

	out := buf.String()
	require.Contains(t, out, "DBG")
	require.Contains(t, out, "write phase done")
	require.Contains(t, out, "algo=zstd")
	require.NotContains(t, out, "\x1b[")
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "xml", "info")
	require.ErrorIs(t, err, ErrInvalidFormat)

	_, err = New(&bytes.Buffer{}, FormatJSON, "loud")
	require.Error(t, err)
}
