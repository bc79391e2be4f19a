// flapdash is an endless flappy-style arcade game for the terminal.
//
// Usage:
//
//	flapdash play            - Play the game
//	flapdash scores          - Print the leaderboard
//	flapdash top             - Browse the leaderboard interactively
//	flapdash serve           - Start SSH server for remote play
//	flapdash reset           - Clear the leaderboard
//
// Global flags:
//
//	--db <path>     - Set database path (default: ~/.flapdash/scores.db)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--name <player> - Player name for the leaderboard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath string
	flagSeed   int64
	flagName   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flapdash",
	Short: "Flapdash - endless flappy arcade in your terminal",
	Long: `Flapdash is an endless one-button arcade game. Tap to flap, thread
the pipe gaps, grab tokens, and survive as long as you can. Your score
is your survival time in milliseconds.

Available commands:
  play     - Play the game
  scores   - Print the leaderboard
  top      - Interactive leaderboard browser
  serve    - Start SSH server for remote play
  reset    - Clear the leaderboard

Examples:
  flapdash play
  flapdash play --name alice --seed 42
  flapdash scores --best
  flapdash serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flapdash/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagName, "name", "anon", "Player name for the leaderboard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
}
