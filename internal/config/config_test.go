package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if cfg.UI.SelectedBg != "6" {
		t.Fatalf("SelectedBg = %q, want %q", cfg.UI.SelectedBg, "6")
	}
	if cfg.Highlight.Base0A != "#f0c674" {
		t.Fatalf("Base0A = %q, want %q", cfg.Highlight.Base0A, "#f0c674")
	}
	if cfg.Dialog.ErrorBg != "1" {
		t.Fatalf("ErrorBg = %q, want %q", cfg.Dialog.ErrorBg, "1")
	}
}

func TestLoad_MissingConfigWritesDefault(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load = %+v, want defaults", cfg)
	}

	written, err := os.ReadFile(filepath.Join(xdg, "fm", "fm-config.toml"))
	if err != nil {
		t.Fatalf("default config not written: %v", err)
	}
	if string(written) != string(DefaultBytes()) {
		t.Fatalf("written config differs from built-in")
	}
}

func TestLoad_UnwritableLocationStillReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(filepath.Join(blocker, "sub", "fm-config.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load = %+v, want defaults", cfg)
	}
}

func TestLoad_ParsesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fm-config.toml")
	if err := os.WriteFile(path, []byte(`
[ui]
selected_bg = "Light-Blue"

[dialog]
error_bg = "#AA0000"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.UI.SelectedBg != "12" {
		t.Fatalf("SelectedBg = %q, want %q", cfg.UI.SelectedBg, "12")
	}
	if cfg.Dialog.ErrorBg != "#aa0000" {
		t.Fatalf("ErrorBg = %q, want %q", cfg.Dialog.ErrorBg, "#aa0000")
	}
	if cfg.UI.HotkeyFg != Default().UI.HotkeyFg {
		t.Fatalf("HotkeyFg = %q, want the built-in value", cfg.UI.HotkeyFg)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fm-config.toml")
	if err := os.WriteFile(path, []byte(`[ui`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_InvalidColorFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fm-config.toml")
	if err := os.WriteFile(path, []byte("[ui]\nhotkey_fg = \"chartreuse-ish\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("Load returned nil error, want colour error")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"red", "1", false},
		{"  DarkGray ", "8", false},
		{"light_cyan", "14", false},
		{"reset", "", false},
		{"#C5C8C6", "#c5c8c6", false},
		{"255", "255", false},
		{"007", "7", false},
		{"256", "", true},
		{"-1", "", true},
		{"#abc", "", true},
		{"#zzzzzz", "", true},
		{"", "", true},
		{"mauve", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Fatalf("ParseColor(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestColor_Terminal(t *testing.T) {
	if _, ok := Color("").Terminal().(lipgloss.NoColor); !ok {
		t.Fatalf("empty colour should map to NoColor")
	}
	if got := Color("#81a2be").Terminal(); got != lipgloss.Color("#81a2be") {
		t.Fatalf("Terminal() = %v, want lipgloss.Color", got)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := ExpandPath("   "); err == nil {
		t.Fatalf("ExpandPath returned nil error, want error")
	}
}
