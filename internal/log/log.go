// Package log provides a category-based structured logging facade for
// digitduel. Log lines go to a file under the data directory rather than
// stdout so they never interleave with command output or the TUI.
//
// Categories tag each line with the subsystem that produced it:
//
//	log.Debug(log.CatSolver, "Greedy max complete", "digits", n)
//	log.ErrorErr(log.CatDB, "Failed to open database", err, "path", path)
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Category identifies the subsystem emitting a log line.
type Category string

const (
	CatCLI    Category = "cli"
	CatNum    Category = "bignum"
	CatSolver Category = "solver"
	CatDB     Category = "db"
	CatUI     Category = "ui"
	CatConfig Category = "config"
)

var (
	mu     sync.RWMutex
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	file   *os.File
)

// Init opens (or creates) the log file at path and routes all subsequent
// log calls to it at the given level. Until Init is called, logging is a
// no-op, which keeps library use of this package silent by default.
func Init(path string, level slog.Level) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) //nolint:gosec // G304: path comes from config, not user input
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if file != nil {
		_ = file.Close()
	}
	file = f
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return nil
}

// Close flushes and closes the log file. Safe to call when Init was never
// called.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return err
}

// Debug logs a debug-level message in the given category.
func Debug(cat Category, msg string, args ...any) {
	current().Debug(msg, withCat(cat, args)...)
}

// Info logs an info-level message in the given category.
func Info(cat Category, msg string, args ...any) {
	current().Info(msg, withCat(cat, args)...)
}

// Warn logs a warn-level message in the given category.
func Warn(cat Category, msg string, args ...any) {
	current().Warn(msg, withCat(cat, args)...)
}

// Error logs an error-level message in the given category.
func Error(cat Category, msg string, args ...any) {
	current().Error(msg, withCat(cat, args)...)
}

// ErrorErr logs an error-level message with the error attached as an
// "error" attribute.
func ErrorErr(cat Category, msg string, err error, args ...any) {
	current().Error(msg, withCat(cat, append([]any{"error", err}, args...))...)
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func withCat(cat Category, args []any) []any {
	return append([]any{"cat", string(cat)}, args...)
}
