// Package logging provides the notifier's rotating file log.
//
// Each hook invocation is a short-lived process, so the logger is
// constructed once per invocation and passed down explicitly; there is
// no package-level logger.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger writes leveled lines to the notifier log file.
type Logger struct {
	out *log.Logger
}

// New creates a Logger appending to path, rotating at maxSizeMB and
// keeping maxBackups rotated files. The parent directory is created if
// needed; if that fails the logger falls back to stderr so logging
// never blocks event handling.
func New(path string, maxSizeMB, maxBackups int) *Logger {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &Logger{out: log.New(os.Stderr, "", log.LstdFlags)}
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
	}
	return &Logger{out: log.New(w, "", log.LstdFlags)}
}

// NewWithWriter creates a Logger writing to w (for testing).
func NewWithWriter(w io.Writer) *Logger {
	return &Logger{out: log.New(w, "", log.LstdFlags)}
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{out: log.New(io.Discard, "", 0)}
}

// Infof logs an informational line.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.out.Printf("INFO - %s", fmt.Sprintf(format, args...))
}

// Warnf logs a warning line.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.out.Printf("WARNING - %s", fmt.Sprintf(format, args...))
}

// Errorf logs an error line.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.out.Printf("ERROR - %s", fmt.Sprintf(format, args...))
}
