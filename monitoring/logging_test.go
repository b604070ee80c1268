package monitoring_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/davidvella/fibheap/monitoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogger_Log(t *testing.T) {
	var buf bytes.Buffer
	logger := monitoring.NewLogger("heap", &buf, monitoring.INFO)

	logger.Log(monitoring.DEBUG, "consolidate", "dropped", nil)
	logger.Log(monitoring.WARN, "meld", "kept", map[string]interface{}{"size": 3})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry monitoring.LogEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "WARN", entry.Level)
	assert.Equal(t, "heap", entry.Component)
	assert.Equal(t, "meld", entry.EventType)
	assert.Equal(t, "kept", entry.Message)
	assert.InDelta(t, 3, entry.Details["size"], 0)
	assert.False(t, entry.Timestamp.IsZero())
}

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level monitoring.LogLevel
		want  string
	}{
		{monitoring.DEBUG, "DEBUG"},
		{monitoring.INFO, "INFO"},
		{monitoring.WARN, "WARN"},
		{monitoring.ERROR, "ERROR"},
		{monitoring.LogLevel(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.String())
		})
	}
}
