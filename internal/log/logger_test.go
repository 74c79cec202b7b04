package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoggerWritesComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelInfo, Component: ComponentRunner, Output: &buf})

	l.Info("run finished", FieldDays, 10)
	l.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "component=runner")
	assert.Contains(t, out, "days=10")
	assert.NotContains(t, out, "hidden")

	buf.Reset()
	l.WithComponent(ComponentJournal).With(FieldRunID, "R1").Warn("slow")
	assert.Contains(t, buf.String(), "component=journal")
	assert.Contains(t, buf.String(), "run_id=R1")
}
