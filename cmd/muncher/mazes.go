package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kdanilov/maze-muncher/internal/games/muncher"
)

var mazesCmd = &cobra.Command{
	Use:   "mazes",
	Short: "List built-in mazes",
	Long:  `Shows the built-in mazes that can be selected with 'muncher play --maze'.`,
	Run:   runMazes,
}

func runMazes(cmd *cobra.Command, args []string) {
	names := muncher.MazeNames()

	if len(names) == 0 {
		fmt.Println("No mazes available.")
		return
	}

	fmt.Println("Built-in mazes:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, name := range names {
		if len(name) > maxNameLen {
			maxNameLen = len(name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Size")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "----")

	for _, name := range names {
		m, _ := muncher.MazeByName(name)
		fmt.Printf("  %-*s  %dx%d\n", maxNameLen, name, len(m.Layout[0]), len(m.Layout))
	}

	fmt.Println()
	fmt.Println("Run 'muncher play --maze <name>' to play a maze.")
}
