// Package logger provides leveled diagnostic logging for the djdeploy CLI.
//
// Diagnostics go to stderr, separate from the operator-facing text written
// by the output package on stdout.
//
// # Log Levels
//
//   - Debug: each external command, file write and directory decision
//   - Info: pipeline stage transitions
//   - Warn: non-fatal conditions (missing binaries, invalid port input)
//   - Error: the failure that ended the run
//
// By default only Warn and Error are shown. Init(true) enables everything;
// the CLI calls it when the settings file sets verbose: true or
// DJDEPLOY_VERBOSE is set.
//
// # Output Format
//
//	[LEVEL] YYYY-MM-DD HH:MM:SS message key=value ...
//	[DEBUG] 2026-02-03 10:30:45 running command cmd="systemctl daemon-reload"
//
// Field keys are sorted so output is stable.
package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level represents a logging severity level.
type Level int

// Log levels from least to most severe.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Fields are structured key/value pairs appended to a log line.
type Fields map[string]interface{}

// String renders fields as sorted key=value pairs.
// Values containing spaces are quoted.
func (f Fields) String() string {
	if len(f) == 0 {
		return ""
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v := fmt.Sprintf("%v", f[k])
		if strings.ContainsAny(v, " \t") {
			v = fmt.Sprintf("%q", v)
		}
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, " ")
}

// Logger handles leveled logging with serialized output.
type Logger struct {
	level  Level
	output io.Writer
	now    func() time.Time
	mu     sync.Mutex
}

// New creates a Logger writing to w at the given minimum level.
func New(w io.Writer, level Level) *Logger {
	return &Logger{level: level, output: w, now: time.Now}
}

var std = New(os.Stderr, LevelWarn)

// Init sets the global verbosity. verbose enables Debug and Info.
func Init(verbose bool) {
	if verbose {
		SetLevel(LevelDebug)
		return
	}
	SetLevel(LevelWarn)
}

// SetLevel sets the minimum log level for the global logger.
func SetLevel(level Level) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.level = level
}

// SetOutput sets the output destination for the global logger.
func SetOutput(w io.Writer) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.output = w
}

// GetLevel returns the current log level.
func GetLevel() Level {
	std.mu.Lock()
	defer std.mu.Unlock()
	return std.level
}

// Enabled reports whether messages at level would be written.
func (l *Logger) Enabled(level Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return level >= l.level
}

// Log writes msg at level with optional fields.
func (l *Logger) Log(level Level, msg string, fields Fields) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	line := fmt.Sprintf("[%s] %s %s", level, l.now().Format("2006-01-02 15:04:05"), msg)
	if s := fields.String(); s != "" {
		line += " " + s
	}
	_, _ = fmt.Fprintln(l.output, line)
}

// Debug logs a debug message.
func Debug(format string, args ...interface{}) {
	std.Log(LevelDebug, fmt.Sprintf(format, args...), nil)
}

// Info logs an informational message.
func Info(format string, args ...interface{}) {
	std.Log(LevelInfo, fmt.Sprintf(format, args...), nil)
}

// Warn logs a warning message.
func Warn(format string, args ...interface{}) {
	std.Log(LevelWarn, fmt.Sprintf(format, args...), nil)
}

// Error logs an error message.
func Error(format string, args ...interface{}) {
	std.Log(LevelError, fmt.Sprintf(format, args...), nil)
}

// DebugFields logs a debug message with structured fields.
func DebugFields(msg string, fields Fields) {
	std.Log(LevelDebug, msg, fields)
}

// InfoFields logs an informational message with structured fields.
func InfoFields(msg string, fields Fields) {
	std.Log(LevelInfo, msg, fields)
}

// WarnFields logs a warning message with structured fields.
func WarnFields(msg string, fields Fields) {
	std.Log(LevelWarn, msg, fields)
}

// LogError logs err with a context message. nil errors are ignored.
func LogError(err error, msg string) {
	if err == nil {
		return
	}
	std.Log(LevelError, msg, Fields{"error": err.Error()})
}
