// Package util provides common utilities including logging helpers and
// file system locations.
package util

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the process-wide logger. It discards output until SetupLogging
// runs, since the terminal belongs to the UI.
var Logger = zerolog.Nop()

// SetupLogging points Logger at w with the given level name. Unknown levels
// fall back to info.
func SetupLogging(w io.Writer, level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	z := zerolog.New(w).With().Timestamp()
	if lvl <= zerolog.DebugLevel {
		z = z.Caller()
	}
	Logger = z.Logger().Level(lvl)
}

// OpenLogFile opens path for appending, creating its directory.
func OpenLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %q: %w", path, err)
	}
	return f, nil
}

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		Logger.Error().Err(err).Msg(context)
	}
}
