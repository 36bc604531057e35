package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prisoners-dilemma/internal/config"
)

func TestNew_Level(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := New(&config.Config{LogLevel: tt.level})
			assert.Equal(t, tt.want, l.GetLevel())
		})
	}
}

func TestSetLevel_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := SetLevel(&buf, zerolog.InfoLevel)

	l.Debug().Msg("hidden")
	l.Info().Int("pass", 3).Msg("shown")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, float64(3), entry["pass"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "caller")
}

func TestSetLevel_LeavesTimeFormat(t *testing.T) {
	prev := zerolog.TimeFieldFormat
	t.Cleanup(func() { zerolog.TimeFieldFormat = prev })
	zerolog.TimeFieldFormat = "2006"

	SetLevel(&bytes.Buffer{}, zerolog.InfoLevel)
	assert.Equal(t, "2006", zerolog.TimeFieldFormat)

	New(&config.Config{})
	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
}
