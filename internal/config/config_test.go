package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.General.Currency != "₹" {
		t.Errorf("Currency = %q, want default ₹", cfg.General.Currency)
	}
	if cfg.Appearance.Theme != "light" || cfg.Appearance.AccentColor != "purple" {
		t.Errorf("Appearance = %+v, want light/purple defaults", cfg.Appearance)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.Currency = "$"
	cfg.Appearance.Theme = "dark"
	cfg.Sheets.SheetID = "sheet-123"
	cfg.Sheets.RetiredScriptURLs = []string{"https://script.example/old"}

	if err := Save(cfg); err != nil {
		t.Fatal(err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.General.Currency != "$" {
		t.Errorf("Currency = %q, want $", loaded.General.Currency)
	}
	if loaded.Appearance.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", loaded.Appearance.Theme)
	}
	if loaded.Sheets.SheetID != "sheet-123" {
		t.Errorf("SheetID = %q, want sheet-123", loaded.Sheets.SheetID)
	}
	if len(loaded.Sheets.RetiredScriptURLs) != 1 {
		t.Errorf("RetiredScriptURLs = %v, want one entry", loaded.Sheets.RetiredScriptURLs)
	}
}

func TestLoad_BadTOMLErrors(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "triptrack")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte("[[[not toml"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load of invalid TOML succeeded, want error")
	}
}

func TestStatePath_PrefersConfiguredDataDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.DataDir = "/custom/data"
	if got := StatePath(cfg); got != filepath.Join("/custom/data", "state.db") {
		t.Errorf("StatePath = %q, want /custom/data/state.db", got)
	}
}

func TestStatePath_XDGFallback(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	got := StatePath(DefaultConfig())
	want := filepath.Join(dir, "triptrack", "state.db")
	if got != want {
		t.Errorf("StatePath = %q, want %q", got, want)
	}
}
