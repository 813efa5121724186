package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

//go:embed default-config.toml
var defaultConfig []byte

// Config is the colour configuration for the whole UI.
type Config struct {
	UI        UI        `toml:"ui"`
	Highlight Highlight `toml:"highlight"`
	Dialog    Dialog    `toml:"dialog"`
}

// UI holds the colours of the panels and the button bar.
type UI struct {
	HotkeyFg   Color `toml:"hotkey_fg"`
	HotkeyBg   Color `toml:"hotkey_bg"`
	SelectedFg Color `toml:"selected_fg"`
	SelectedBg Color `toml:"selected_bg"`
}

// Highlight is a base16 palette used for syntax colouring.
type Highlight struct {
	Base00 Color `toml:"base00"`
	Base03 Color `toml:"base03"`
	Base05 Color `toml:"base05"`
	Base08 Color `toml:"base08"`
	Base09 Color `toml:"base09"`
	Base0A Color `toml:"base0A"`
	Base0B Color `toml:"base0B"`
	Base0C Color `toml:"base0C"`
	Base0D Color `toml:"base0D"`
	Base0E Color `toml:"base0E"`
	Base0F Color `toml:"base0F"`
}

// Dialog holds the colours of the modal dialogs.
type Dialog struct {
	ErrorFg   Color `toml:"error_fg"`
	ErrorBg   Color `toml:"error_bg"`
	WarningFg Color `toml:"warning_fg"`
	WarningBg Color `toml:"warning_bg"`
	InfoFg    Color `toml:"info_fg"`
	InfoBg    Color `toml:"info_bg"`
	InputFg   Color `toml:"input_fg"`
	InputBg   Color `toml:"input_bg"`
}

const (
	appDir         = "fm"
	configFileName = "fm-config.toml"
)

// Default returns the built-in configuration.
func Default() Config {
	var cfg Config
	if err := toml.Unmarshal(defaultConfig, &cfg); err != nil {
		panic(fmt.Sprintf("built-in config is invalid: %v", err))
	}
	return cfg
}

// DefaultBytes returns the text of the built-in configuration file.
func DefaultBytes() []byte {
	return append([]byte(nil), defaultConfig...)
}

// Parse decodes a configuration file. Keys missing from data keep their
// built-in values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Load reads the configuration at path, or at the default location when path
// is empty. A missing file yields the built-in configuration, which is written
// to the resolved path so it can be edited later.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if werr := writeDefault(resolved); werr != nil {
				log.Warn().Err(werr).Str("path", resolved).Msg("could not save default config")
			}
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	log.Debug().Str("path", resolved).Msg("config loaded")
	return cfg, nil
}

// DefaultPath returns the configuration path used when none is given.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, appDir, configFileName), nil
}

func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, defaultConfig, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultPath()
	}
	return ExpandPath(path)
}

// ExpandPath expands a leading tilde and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
