package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolve"
	"github.com/seamusw/cubesolve/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show <scramble>",
	Short: "Show the cube state after a move sequence",
	Long: `Apply a move sequence to a solved cube and print the resulting
net along with the furthest milestone the state satisfies.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	moves, err := cubesolve.ParseMoves(args[0])
	if err != nil {
		return err
	}

	cube := cubesolve.NewCube()
	cube.ApplyMoves(moves)

	fmt.Println(render.Net(cube, cfg.ColorOutput))
	fmt.Printf("Milestone: %s\n", cube.DetectMilestone().DisplayName())
	return nil
}
