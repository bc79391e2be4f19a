package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkoval/flapdash/internal/storage"
)

var flagBest bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the leaderboard",
	Long: `Display the top 10 runs.

By default every recorded run is eligible, so one player can hold
several rows. With --best each player appears once, with their single
best run.

Examples:
  flapdash scores
  flapdash scores --best`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBest, "best", false, "One row per player (personal bests only)")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var runs []storage.Run
	if flagBest {
		runs, err = store.BestPerPlayer(10)
	} else {
		runs, err = store.TopRuns(10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	if flagBest {
		fmt.Println("Leaderboard (best per player)")
	} else {
		fmt.Println("Leaderboard (all runs)")
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flapdash play' to set the first score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-12s  %-6s  %s\n", "Rank", "Player", "Time", "Tokens", "Date")
	fmt.Printf("  %-4s  %-16s  %-12s  %-6s  %s\n", "----", "------", "----", "------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-16s  %-12s  %-6d  %s\n",
			i+1, r.Player, formatScore(r.ScoreMS), r.Tokens, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	st, err := store.Stats()
	if err == nil && st.Runs > 0 {
		fmt.Println()
		fmt.Printf("%d runs by %d players, best %s, avg %s, %d tokens collected\n",
			st.Runs, st.Players, formatScore(st.BestMS), formatScore(int64(st.AvgMS)), st.AllTokens)
	}
}

// formatScore renders a millisecond score as m:ss.mmm.
func formatScore(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%d:%02d.%03d", ms/60000, (ms%60000)/1000, ms%1000)
}
