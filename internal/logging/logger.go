package logging

import (
	"io"
	"log"
	"os"
	"strings"
)

// Level orders message severity; a logger drops messages below its level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger writes leveled diagnostics to stderr through the standard log package.
type Logger struct {
	level Level
	debug *log.Logger
	info  *log.Logger
	warn  *log.Logger
	err   *log.Logger
}

// New creates a logger writing to stderr at the named level ("debug", "info",
// "warn", "error"; anything else means info).
func New(level string) *Logger {
	return NewWithWriter(level, os.Stderr)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(level string, w io.Writer) *Logger {
	flags := log.Ldate | log.Ltime
	return &Logger{
		level: ParseLevel(level),
		debug: log.New(w, "DEBUG: ", flags),
		info:  log.New(w, "INFO: ", flags),
		warn:  log.New(w, "WARN: ", flags),
		err:   log.New(w, "ERROR: ", flags),
	}
}

// NewDiscard returns a logger that drops everything.
func NewDiscard() *Logger {
	return NewWithWriter("error", io.Discard)
}

// ParseLevel maps a level name to a Level, defaulting to LevelInfo.
func ParseLevel(level string) Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(format string, v ...any) {
	if l.level > LevelDebug {
		return
	}
	l.debug.Printf(format, v...)
}

// Info logs at LevelInfo.
func (l *Logger) Info(format string, v ...any) {
	if l.level > LevelInfo {
		return
	}
	l.info.Printf(format, v...)
}

// Warn logs at LevelWarn.
func (l *Logger) Warn(format string, v ...any) {
	if l.level > LevelWarn {
		return
	}
	l.warn.Printf(format, v...)
}

// Error always logs.
func (l *Logger) Error(format string, v ...any) {
	l.err.Printf(format, v...)
}
