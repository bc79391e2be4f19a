package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkoval/flapdash/internal/platform/tui"
	"github.com/dkoval/flapdash/internal/storage"
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Browse the leaderboard interactively",
	Long: `Open the leaderboard in an interactive table.

Tab switches between all runs and the best-per-player view.

Examples:
  flapdash top`,
	Run: runTop,
}

func runTop(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
