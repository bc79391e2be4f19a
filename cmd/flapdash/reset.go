package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkoval/flapdash/internal/storage"
)

var flagYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the leaderboard",
	Long: `Delete every recorded run from the scores database.

Requires --yes to actually delete anything.

Examples:
  flapdash reset --yes
  flapdash reset --db ./scores.db --yes`,
	Run: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagYes, "yes", false, "Confirm deletion")
}

func runReset(_ *cobra.Command, _ []string) {
	if !flagYes {
		fmt.Fprintln(os.Stderr, "This deletes all recorded runs. Re-run with --yes to confirm.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.ClearRuns(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Leaderboard cleared.")
}
