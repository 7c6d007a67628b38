package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"triptrack/internal/cli"
	"triptrack/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect and change sync, theme and credential settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set a sync field: sheet-id, script-url",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

var settingsSetKeyCmd = &cobra.Command{
	Use:   "set-key <name> <value>",
	Short: "Store a credential in the system keyring: gemini, weather, sheets",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSetKey,
}

var settingsThemeCmd = &cobra.Command{
	Use:   "theme <light|dark> [accent]",
	Short: "Change the dashboard theme and accent color",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runSettingsTheme,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd, settingsSetKeyCmd, settingsThemeCmd)
	rootCmd.AddCommand(settingsCmd)
}

// mask hides all but the last four characters of a credential.
func mask(s string) string {
	if s == "" {
		return "(not set)"
	}
	if len(s) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}

func runSettingsShow(_ *cobra.Command, _ []string) error {
	states, done, err := openState()
	if err != nil {
		return err
	}
	defer done()

	snap := states.Snapshot()
	set := snap.Settings

	fmt.Println(cli.RenderTitle("Settings"))
	fmt.Printf("  Theme        %s / %s\n", snap.Theme, snap.AccentColor)
	fmt.Printf("  Sheet ID     %s\n", orNotSet(set.SheetID))
	fmt.Printf("  Script URL   %s\n", orNotSet(set.ScriptURL))
	fmt.Printf("  Sheets key   %s\n", mask(config.SheetsKey(set)))
	fmt.Printf("  Gemini key   %s\n", mask(config.GeminiKey(set)))
	fmt.Printf("  Weather key  %s\n", mask(config.WeatherKey(set)))
	return nil
}

func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

func runSettingsSet(_ *cobra.Command, args []string) error {
	field, value := args[0], args[1]

	states, done, err := openState()
	if err != nil {
		return err
	}
	defer done()

	set := states.Snapshot().Settings
	switch field {
	case "sheet-id":
		set.SheetID = value
	case "script-url":
		set.ScriptURL = value
	default:
		return fmt.Errorf("unknown field %q, want sheet-id or script-url", field)
	}
	if err := states.UpdateSettings(set); err != nil {
		return err
	}
	fmt.Printf("  Set %s.\n", field)
	return nil
}

func runSettingsSetKey(_ *cobra.Command, args []string) error {
	name, value := args[0], args[1]

	var secret string
	switch name {
	case "gemini":
		secret = config.SecretGeminiKey
	case "weather":
		secret = config.SecretWeatherKey
	case "sheets":
		secret = config.SecretSheetsKey
	default:
		return fmt.Errorf("unknown key %q, want gemini, weather or sheets", name)
	}

	if value == "" {
		if err := config.DeleteSecret(secret); err != nil {
			return fmt.Errorf("clearing %s key: %w", name, err)
		}
		fmt.Printf("  Cleared %s key.\n", name)
		return nil
	}

	if err := config.SetSecret(secret, value); err != nil {
		return fmt.Errorf("storing %s key: %w", name, err)
	}
	fmt.Printf("  Stored %s key in the system keyring.\n", name)
	return nil
}

func runSettingsTheme(_ *cobra.Command, args []string) error {
	theme := strings.ToLower(args[0])
	if theme != "light" && theme != "dark" {
		return fmt.Errorf("unknown theme %q, want light or dark", args[0])
	}

	states, done, err := openState()
	if err != nil {
		return err
	}
	defer done()

	accent := states.Snapshot().AccentColor
	if len(args) > 1 {
		accent = strings.ToLower(args[1])
	}
	if err := states.SetTheme(theme, accent); err != nil {
		return err
	}
	fmt.Printf("  Theme set to %s / %s.\n", theme, accent)
	return nil
}
