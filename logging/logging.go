package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}

// Logger writes leveled messages, dropping those below its threshold.
// Messages never go to stdout, which is reserved for program output.
type Logger struct {
	level int
	out   *log.Logger
}

// New creates a Logger writing to w at the given minimum level
func New(w io.Writer, level int) *Logger {
	return &Logger{level: level, out: log.New(w, "", log.LstdFlags)}
}

// Default creates an InfoLevel Logger writing to stderr
func Default() *Logger {
	return New(os.Stderr, InfoLevel)
}

// Discard creates a Logger which drops every message
func Discard() *Logger {
	return New(io.Discard, FatalLevel+1)
}

// Enabled returns true iff messages at level would be written
func (l *Logger) Enabled(level int) bool {
	return level >= l.level
}

// Logf writes a message at the given level
func (l *Logger) Logf(level int, format string, v ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	l.out.Printf("[%s] %s", LogLevelToString(level), fmt.Sprintf(format, v...))
}

// Debugf writes a DebugLevel message
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.Logf(DebugLevel, format, v...)
}

// Infof writes an InfoLevel message
func (l *Logger) Infof(format string, v ...interface{}) {
	l.Logf(InfoLevel, format, v...)
}

// Warnf writes a WarnLevel message
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.Logf(WarnLevel, format, v...)
}
