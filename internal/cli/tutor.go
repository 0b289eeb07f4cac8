package cli

import (
	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolve"
	"github.com/seamusw/cubesolve/internal/tui"
)

var tutorRandom bool

var tutorCmd = &cobra.Command{
	Use:   "tutor [scramble]",
	Short: "Step through a solve interactively",
	Long: `Solve a scrambled cube and replay the solution one step at a
time in an interactive viewer. Each step shows the cube state, the moves
to make, and the milestone reached.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTutor,
}

func init() {
	tutorCmd.Flags().BoolVar(&tutorRandom, "random", false, "Generate a random scramble")
	rootCmd.AddCommand(tutorCmd)
}

func runTutor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	scramble, err := scrambleFromArgs(cfg, args, tutorRandom)
	if err != nil {
		return err
	}

	cube := cubesolve.NewCube()
	cube.ApplyMoves(scramble)
	sol := cubesolve.Solve(cube)

	return tui.Run(tui.NewPlayer(scramble, sol))
}
