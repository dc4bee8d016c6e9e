// Package logger provides verbose logging for the whatif CLI.
// When verbose mode is enabled via the --verbose flag, pipeline steps
// (special-case detection, insight counts, keyword hits, sentiments)
// are printed to stderr.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Logger writes levelled lines when enabled.
type Logger struct {
	mu      sync.RWMutex
	verbose bool
	output  io.Writer
}

// New creates a disabled logger writing to w.
func New(w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{output: w}
}

var std = New(os.Stderr)

// SetVerbose enables or disables verbose logging.
func (l *Logger) SetVerbose(v bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func (l *Logger) IsVerbose() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.verbose
}

// SetOutput sets the output writer.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
}

func (l *Logger) printf(level, format string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if !l.verbose {
		return
	}
	fmt.Fprintf(l.output, "["+level+"] "+format+"\n", args...)
}

// Debug prints a debug line.
func (l *Logger) Debug(format string, args ...any) { l.printf("DEBUG", format, args...) }

// Info prints an informational line.
func (l *Logger) Info(format string, args ...any) { l.printf("INFO", format, args...) }

// Warn prints a warning line.
func (l *Logger) Warn(format string, args ...any) { l.printf("WARN", format, args...) }

// Section prints a section header.
func (l *Logger) Section(name string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.verbose {
		fmt.Fprintf(l.output, "\n=== %s ===\n", name)
	}
}

// Default returns the process-wide logger.
func Default() *Logger { return std }

// SetVerbose enables or disables the process-wide logger.
func SetVerbose(v bool) { std.SetVerbose(v) }

// IsVerbose returns true if the process-wide logger is enabled.
func IsVerbose() bool { return std.IsVerbose() }

// SetOutput sets the process-wide output writer.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) { std.SetOutput(w) }

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) { std.Debug(format, args...) }

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) { std.Info(format, args...) }

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) { std.Warn(format, args...) }

// Section prints a section header if verbose mode is enabled.
func Section(name string) { std.Section(name) }
