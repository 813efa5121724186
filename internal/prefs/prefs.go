// Package prefs persists the panel directories between sessions.
// Preferences are stored in $XDG_CONFIG_HOME/fm/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

// Prefs holds the state restored at startup.
type Prefs struct {
	Left  string `toml:"left"`
	Right string `toml:"right"`
}

const prefsFileName = "prefs.toml"

// DefaultPath returns the default preferences file path.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "fm", prefsFileName), nil
}

// Load reads preferences from the given path. Missing or unreadable files
// yield empty preferences; directories that no longer exist are dropped.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Prefs{}, nil
	}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Debug().Err(err).Str("path", resolved).Msg("prefs unreadable")
		}
		return Prefs{}, nil // Graceful degradation
	}

	var p Prefs
	if err := toml.Unmarshal(bytes, &p); err != nil {
		log.Debug().Err(err).Str("path", resolved).Msg("prefs invalid")
		return Prefs{}, nil // Graceful degradation
	}

	p.Left = existingDir(p.Left)
	p.Right = existingDir(p.Right)
	return p, nil
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func existingDir(dir string) string {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return ""
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return ""
	}
	return dir
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultPath()
	}
	return filepath.Abs(strings.TrimSpace(path))
}
