// Package logger builds charmbracelet/log loggers for the rest of the app.
//
// The TUI owns stdout, so everything is written to a single sink that main
// points at a log file. Packages ask for a prefixed logger with New.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu   sync.RWMutex
	sink io.Writer = os.Stderr
)

// SetOutput redirects every logger created afterwards to w
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	sink = w
}

// SetLevel sets the global level used by New
func SetLevel(level log.Level) {
	log.SetLevel(level)
}

// ParseLevel converts a config string ("debug", "info", ...) to a level, defaulting to info
func ParseLevel(s string) log.Level {
	level, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// New creates a prefixed logger that respects the global log level
func New(prefix string) *log.Logger {
	mu.RLock()
	w := sink
	mu.RUnlock()
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// Discard returns a logger that drops everything, handy in tests
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
