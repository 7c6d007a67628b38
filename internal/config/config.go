// Package config loads and saves the bootstrap TOML configuration:
// local paths, appearance, currency, and default credentials for the
// spreadsheet sync. Service credentials entered at runtime live in the
// persisted app state; this file only seeds their defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all triptrack configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Sheets     SheetsConfig     `toml:"sheets"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Currency string `toml:"currency"`
	DataDir  string `toml:"data_dir,omitempty"`
}

// AppearanceConfig holds theme settings for the dashboard.
type AppearanceConfig struct {
	Theme       string `toml:"theme"`
	AccentColor string `toml:"accent_color"`
}

// SheetsConfig seeds the spreadsheet sync settings. Blank fields in a
// loaded state blob are backfilled from these values; script URLs
// listed in RetiredScriptURLs are replaced by ScriptURL on load.
type SheetsConfig struct {
	SheetID           string   `toml:"sheet_id,omitempty"`
	APIKey            string   `toml:"api_key,omitempty"`
	ScriptURL         string   `toml:"script_url,omitempty"`
	RetiredScriptURLs []string `toml:"retired_script_urls,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Currency: "₹",
		},
		Appearance: AppearanceConfig{
			Theme:       "light",
			AccentColor: "purple",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "triptrack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "triptrack")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DataDir returns the directory holding the state database: the
// configured one if set, otherwise an XDG data directory.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "triptrack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "triptrack")
}

// StatePath returns the full path to the state database.
func StatePath(cfg Config) string {
	return filepath.Join(DataDir(cfg), "state.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
