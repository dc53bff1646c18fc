// muncher is a terminal maze-chase game: eat every pellet while dodging
// the ghosts, grab a power pellet to turn the tables.
//
// Usage:
//
//	muncher play              - Play a round
//	muncher mazes             - List built-in mazes
//	muncher scores            - Show the high-score board
//	muncher serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.muncher/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/kdanilov/maze-muncher/internal/games/muncher"
)

// gameID is the registry ID the muncher game registers under.
const gameID = "muncher"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "muncher",
	Short: "Maze Muncher - A terminal maze-chase game",
	Long: `Maze Muncher is a terminal maze-chase game. Steer through the maze,
eat every pellet, and stay clear of the ghosts. Power pellets briefly
let you eat the ghosts instead.

Available commands:
  play     - Play a round
  mazes    - List built-in mazes
  scores   - View the high-score board
  serve    - Start SSH server for remote play

Examples:
  muncher play
  muncher play --maze loop --difficulty hard
  muncher scores
  muncher serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.muncher/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(mazesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
