package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p != (Prefs{}) {
		t.Fatalf("Load = %+v, want empty", p)
	}
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	left := t.TempDir()

	prefsDir := filepath.Join(xdg, "fm")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	data := []byte("left = \"" + left + "\"\n")
	if err := os.WriteFile(filepath.Join(prefsDir, "prefs.toml"), data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Left != left || p.Right != "" {
		t.Fatalf("Load = %+v, want left=%q", p, left)
	}
}

func TestSave_RoundTripsThroughNewDirs(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "subdir", "prefs.toml")
	want := Prefs{Left: t.TempDir(), Right: t.TempDir()}

	if err := Save(prefsFile, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got != want {
		t.Fatalf("Load = %+v, want %+v", got, want)
	}
}

func TestLoad_DropsVanishedDirectories(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "prefs.toml")
	right := t.TempDir()
	if err := Save(prefsFile, Prefs{Left: filepath.Join(tmp, "gone"), Right: right}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Left != "" || p.Right != right {
		t.Fatalf("Load = %+v, want left dropped and right=%q", p, right)
	}
}

func TestLoad_InvalidTOMLIsEmpty(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p != (Prefs{}) {
		t.Fatalf("Load = %+v, want empty", p)
	}
}
