package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"triptrack/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to triptrack!")
	fmt.Println()

	// 1. Currency
	fmt.Println("  1. Currency symbol")
	fmt.Printf("     Current: %s\n", cfg.General.Currency)
	fmt.Print("     > ")
	currency, _ := reader.ReadString('\n')
	currency = strings.TrimSpace(currency)
	if currency != "" {
		cfg.General.Currency = currency
	}
	fmt.Println()

	// 2. Theme
	fmt.Println("  2. Dashboard theme")
	fmt.Println("     (1) Light [default]")
	fmt.Println("     (2) Dark")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "dark"
	default:
		cfg.Appearance.Theme = "light"
	}
	fmt.Println()

	// 3. Spreadsheet sync
	fmt.Println("  3. Spreadsheet sync (optional, Enter to skip)")
	fmt.Println("     Sheet ID")
	if cfg.Sheets.SheetID != "" {
		fmt.Printf("     Current: %s\n", cfg.Sheets.SheetID)
	}
	fmt.Print("     > ")
	sheetID, _ := reader.ReadString('\n')
	if v := strings.TrimSpace(sheetID); v != "" {
		cfg.Sheets.SheetID = v
	}

	fmt.Println("     Apps Script URL")
	fmt.Print("     > ")
	scriptURL, _ := reader.ReadString('\n')
	if v := strings.TrimSpace(scriptURL); v != "" {
		cfg.Sheets.ScriptURL = v
	}

	fmt.Println("     Sheets API key (stored in the system keyring)")
	fmt.Print("     > ")
	sheetsKey, _ := reader.ReadString('\n')
	if v := strings.TrimSpace(sheetsKey); v != "" {
		if err := config.SetSecret(config.SecretSheetsKey, v); err != nil {
			fmt.Printf("     Keyring unavailable (%v), keeping it in the config file.\n", err)
			cfg.Sheets.APIKey = v
		}
	}
	fmt.Println()

	// 4. Optional service keys
	fmt.Println("  4. Gemini API key for AI answers (Enter to skip)")
	fmt.Print("     > ")
	geminiKey, _ := reader.ReadString('\n')
	if v := strings.TrimSpace(geminiKey); v != "" {
		if err := config.SetSecret(config.SecretGeminiKey, v); err != nil {
			fmt.Printf("     Keyring unavailable: %v\n", err)
		}
	}

	fmt.Println("  5. OpenWeather API key for destination weather (Enter to skip)")
	fmt.Print("     > ")
	weatherKey, _ := reader.ReadString('\n')
	if v := strings.TrimSpace(weatherKey); v != "" {
		if err := config.SetSecret(config.SecretWeatherKey, v); err != nil {
			fmt.Printf("     Keyring unavailable: %v\n", err)
		}
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `triptrack setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
