package monitoring

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

type LogEntry struct {
	Timestamp time.Time              `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Component string                 `json:"component"`
	EventType string                 `json:"event_type"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// JSONLogger writes one JSON encoded LogEntry per line.
type JSONLogger struct {
	component string
	minLevel  LogLevel
	enc       *json.Encoder
	mu        sync.Mutex
}

// NewLogger creates a logger for component that writes entries at or above
// minLevel to w.
func NewLogger(component string, w io.Writer, minLevel LogLevel) *JSONLogger {
	return &JSONLogger{
		component: component,
		minLevel:  minLevel,
		enc:       json.NewEncoder(w),
	}
}

func (l *JSONLogger) Log(level LogLevel, eventType string, message string, details map[string]interface{}) {
	if level < l.minLevel {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now(),
		Level:     level.String(),
		Message:   message,
		Component: l.component,
		EventType: eventType,
		Details:   details,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	//nolint:errcheck // logging is best effort.
	l.enc.Encode(entry)
}

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

type Logger interface {
	Log(level LogLevel, eventType string, message string, details map[string]interface{})
}
