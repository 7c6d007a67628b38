package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Back up, restore, or wipe local data",
}

var dataExportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Write all local data to a JSON backup file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDataExport,
}

var dataImportCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Replace local data with a JSON backup",
	Args:  cobra.ExactArgs(1),
	RunE:  runDataImport,
}

var dataClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all local data",
	RunE:  runDataClear,
}

func init() {
	dataCmd.AddCommand(dataExportCmd, dataImportCmd, dataClearCmd)
	rootCmd.AddCommand(dataCmd)
}

func runDataExport(_ *cobra.Command, args []string) error {
	path := fmt.Sprintf("triptrack_backup_%s.json", time.Now().Format("2006-01-02"))
	if len(args) > 0 {
		path = args[0]
	}

	states, done, err := openState()
	if err != nil {
		return err
	}
	defer done()

	if err := states.Export(path); err != nil {
		return err
	}
	fmt.Printf("  Exported to %s\n", path)
	return nil
}

func runDataImport(_ *cobra.Command, args []string) error {
	states, done, err := openState()
	if err != nil {
		return err
	}
	defer done()

	ok, err := confirm("Importing replaces all local trips, expenses and settings. Continue?")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("  Cancelled.")
		return nil
	}

	if err := states.Import(args[0]); err != nil {
		return err
	}
	snap := states.Snapshot()
	fmt.Printf("  Imported %d trips and %d expenses.\n", len(snap.Trips), len(snap.Expenses))
	return nil
}

func runDataClear(_ *cobra.Command, _ []string) error {
	states, done, err := openState()
	if err != nil {
		return err
	}
	defer done()

	ok, err := confirm("Delete ALL local trips, expenses, itineraries and settings?")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("  Cancelled.")
		return nil
	}

	if err := states.Clear(); err != nil {
		return err
	}
	fmt.Println("  All local data cleared.")
	return nil
}
