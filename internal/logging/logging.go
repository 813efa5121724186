// Package logging routes the global zerolog logger to a file. The terminal is
// owned by the UI, so nothing is ever logged to stdout or stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options configures Setup.
type Options struct {
	Path  string // log file; empty selects DefaultPath
	Debug bool
}

// DefaultPath returns $XDG_CACHE_HOME/fm/fm.log.
func DefaultPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache dir: %w", err)
	}
	return filepath.Join(dir, "fm", "fm.log"), nil
}

// Setup opens the log file and installs it as the global logger. The returned
// closer flushes and closes the file.
func Setup(opts Options) (io.Closer, error) {
	path := strings.TrimSpace(opts.Path)
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	Install(file, opts.Debug)
	log.Debug().Str("path", path).Msg("logging started")
	return file, nil
}

// Install points the global logger at w.
func Install(w io.Writer, debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
}

// Discard silences the global logger.
func Discard() {
	log.Logger = zerolog.Nop()
}
