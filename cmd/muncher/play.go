package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kdanilov/maze-muncher/internal/core"
	"github.com/kdanilov/maze-muncher/internal/games/muncher"
	"github.com/kdanilov/maze-muncher/internal/platform/tui"
	"github.com/kdanilov/maze-muncher/internal/registry"
	"github.com/kdanilov/maze-muncher/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMaze       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round of Maze Muncher.

Controls:
  WASD/Arrows  - Move
  Enter/Space  - Start round
  P/Esc        - Pause
  R            - Restart the round
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower ghosts that wander more, extra lives
  normal - Default tuning
  hard   - Faster, more focused ghosts, fewer lives

Examples:
  muncher play
  muncher play --maze loop
  muncher play --difficulty hard
  muncher play --config ./my-muncher.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagMaze, "maze", "", "Built-in maze name (see 'muncher mazes')")
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagMaze != "" {
		if _, ok := muncher.MazeByName(flagMaze); !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown maze %q\n", flagMaze)
			fmt.Fprintln(os.Stderr, "Run 'muncher mazes' to see available mazes.")
			os.Exit(1)
		}
	}

	// Get terminal size for the runtime config
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path, difficulty, and maze before creation
	muncher.SetConfigPath(flagConfig)
	muncher.SetDifficultyPreset(flagDifficulty)
	muncher.SetMaze(flagMaze)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
