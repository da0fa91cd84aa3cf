package cli

import (
	"log/slog"
	"os"

	"github.com/cruciblehq/hyrun/internal"
	"golang.org/x/term"
)

// Installs a logger writing to f as the default.
//
// Records are human-readable text when f is a terminal and JSON otherwise,
// so piped output stays machine-parseable. The level follows the debug and
// quiet modes.
func SetDefaultLogger(f *os.File) {
	slog.SetDefault(NewLogger(f))
}

// Creates a logger for f according to the current log modes.
func NewLogger(f *os.File) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     Level(),
		AddSource: internal.IsVerbose(),
	}

	var handler slog.Handler
	if term.IsTerminal(int(f.Fd())) {
		handler = slog.NewTextHandler(f, opts)
	} else {
		handler = slog.NewJSONHandler(f, opts)
	}

	return slog.New(handler.WithGroup(internal.Name))
}

// Returns the log level for the current modes. Debug wins over quiet.
func Level() slog.Level {
	if internal.IsDebug() {
		return slog.LevelDebug
	}
	if internal.IsQuiet() {
		return slog.LevelWarn
	}
	return slog.LevelInfo
}
