// Package cmd implements the triptrack CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"triptrack/internal/cli"
	"triptrack/internal/config"
	"triptrack/internal/logging"
	"triptrack/internal/model"
	"triptrack/internal/state"
	"triptrack/internal/store"
)

var (
	flagDataDir string
	flagQuiet   bool
	flagYes     bool
)

var rootCmd = &cobra.Command{
	Use:   "triptrack",
	Short: "Trip expense and itinerary tracker",
	Long:  "Track trips, shared expenses, and itineraries. Local-first, with optional spreadsheet sync.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Override the state database directory")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Skip confirmation prompts")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		logging.Setup()
		cfg := loadConfig()
		cli.SetCurrency(cfg.General.Currency)

		if !config.Exists() && !flagQuiet && cmd.Name() != "setup" {
			fmt.Fprintln(os.Stderr, "  Tip: run `triptrack setup` to configure currency, theme and sync.")
		}
	}
}

// loadConfig reads the bootstrap config, falling back to defaults on
// any error so a broken config file never bricks the CLI.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Warning: %v (using defaults)\n", err)
	}
	return cfg
}

// openState opens the blob store and loads the state container.
// The returned func closes the store.
func openState() (*state.Container, func(), error) {
	cfg := loadConfig()

	dbPath := config.StatePath(cfg)
	if flagDataDir != "" {
		dbPath = filepath.Join(flagDataDir, "state.db")
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, err
	}

	c, err := state.Open(s, cfg.Sheets)
	if err != nil {
		_ = s.Close()
		return nil, nil, err
	}
	return c, func() { _ = s.Close() }, nil
}

// requireActiveTrip returns the active trip from a snapshot or a
// user-facing error.
func requireActiveTrip(snap model.AppState) (model.Trip, error) {
	trip, ok := snap.Active()
	if !ok {
		return model.Trip{}, errors.New("no active trip; create one with `triptrack trip add` or select one with `triptrack trip activate`")
	}
	return trip, nil
}

// resolveTrip finds a trip by id or exact name.
func resolveTrip(snap model.AppState, key string) (model.Trip, error) {
	if t, ok := snap.TripByID(key); ok {
		return t, nil
	}
	var match model.Trip
	found := 0
	for _, t := range snap.Trips {
		if t.Name == key {
			match = t
			found++
		}
	}
	switch found {
	case 1:
		return match, nil
	case 0:
		return model.Trip{}, fmt.Errorf("no trip matching %q", key)
	default:
		return model.Trip{}, fmt.Errorf("%d trips named %q, use the id instead", found, key)
	}
}

// confirm gates destructive operations behind an interactive prompt.
// --yes bypasses it for scripting.
func confirm(title string) (bool, error) {
	if flagYes {
		return true, nil
	}
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if err != nil {
		return false, err
	}
	return ok, nil
}
