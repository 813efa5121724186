package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/five82/fm/internal/prefs"
)

// startDir returns the working directory. When it has been removed from under
// the process, the first readable ancestor of $PWD is used instead.
func startDir() (string, error) {
	if cwd, err := os.Getwd(); err == nil {
		return cwd, nil
	}
	pwd := os.Getenv("PWD")
	if pwd == "" {
		return "", fmt.Errorf("get current working directory: PWD not set")
	}
	return readableAncestor(pwd), nil
}

func readableAncestor(dir string) string {
	dir = filepath.Clean(dir)
	for {
		if _, err := os.ReadDir(dir); err == nil {
			return dir
		}
		up := filepath.Dir(dir)
		if up == dir {
			return dir
		}
		dir = up
	}
}

// panelDirs picks the left and right directories. Explicit arguments win over
// restored preferences, which win over the start directory.
func panelDirs(opts Options) (string, string, error) {
	start, err := startDir()
	if err != nil {
		return "", "", err
	}
	left, right := start, start

	if !opts.NoRestore {
		p, _ := prefs.Load(opts.PrefsPath)
		if p.Left != "" {
			left = p.Left
		}
		if p.Right != "" {
			right = p.Right
		}
		log.Debug().Str("left", p.Left).Str("right", p.Right).Msg("restored panel dirs")
	}

	if len(opts.Dirs) > 0 {
		left = opts.Dirs[0]
	}
	if len(opts.Dirs) > 1 {
		right = opts.Dirs[1]
	}
	return left, right, nil
}

// finish persists the panel directories and writes the focused directory to
// the printwd file.
func finish(opts Options, left, right, focused string) error {
	if err := prefs.Save(opts.PrefsPath, prefs.Prefs{Left: left, Right: right}); err != nil {
		log.Warn().Err(err).Msg("save prefs")
	}
	if opts.PrintWD == "" {
		return nil
	}
	if err := os.WriteFile(opts.PrintWD, []byte(focused), 0o644); err != nil {
		return fmt.Errorf("write printwd: %w", err)
	}
	return nil
}
