package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolve"
	"github.com/seamusw/cubesolve/internal/render"
)

var (
	scrambleLength int
	scrambleSeed   int64
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random scramble and show the resulting cube state.

Consecutive moves never turn the same face. Use --seed for a
reproducible scramble.`,
	RunE: runScramble,
}

func init() {
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "n", 0, "Number of moves (default from config)")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (0 means random)")
	rootCmd.AddCommand(scrambleCmd)
}

func runScramble(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	length := cfg.ScrambleLength
	if scrambleLength > 0 {
		length = scrambleLength
	}

	opts := []cubesolve.ScrambleOption{cubesolve.WithLength(length)}
	if scrambleSeed != 0 {
		opts = append(opts, cubesolve.WithSeed(scrambleSeed))
	}

	scramble := cubesolve.NewScrambler(opts...).Scramble()
	cube := cubesolve.NewCube()
	cube.ApplyMoves(scramble)

	fmt.Println(cubesolve.FormatMoves(scramble))
	fmt.Println()
	fmt.Println(render.Net(cube, cfg.ColorOutput))
	return nil
}
