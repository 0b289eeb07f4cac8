package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolve"
	"github.com/seamusw/cubesolve/internal/config"
	"github.com/seamusw/cubesolve/internal/render"
	"github.com/seamusw/cubesolve/internal/storage"
)

var (
	solveRandom bool
	solveNoSave bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled cube",
	Long: `Solve a cube scrambled by the given move sequence.

The scramble uses standard face notation, e.g. "R U R' U2 F". With
--random (or no argument) a scramble is generated instead. The solve is
recorded in history unless --no-save is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&solveRandom, "random", false, "Generate a random scramble")
	solveCmd.Flags().BoolVar(&solveNoSave, "no-save", false, "Do not record the solve in history")
	rootCmd.AddCommand(solveCmd)
}

// scrambleFromArgs resolves the scramble from the argument list or the
// generator.
func scrambleFromArgs(cfg *config.Config, args []string, random bool) ([]cubesolve.Move, error) {
	if random || len(args) == 0 {
		return cubesolve.NewScrambler(cubesolve.WithLength(cfg.ScrambleLength)).Scramble(), nil
	}
	return cubesolve.ParseMoves(args[0])
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	scramble, err := scrambleFromArgs(cfg, args, solveRandom)
	if err != nil {
		return err
	}

	cube := cubesolve.NewCube()
	cube.ApplyMoves(scramble)

	fmt.Printf("Scramble: %s\n\n", cubesolve.FormatMoves(scramble))
	fmt.Println(render.Net(cube, cfg.ColorOutput))

	sol := cubesolve.Solve(cube)
	for _, step := range sol.Steps {
		fmt.Println(render.Step(step))
	}

	fmt.Printf("\nOutcome: %s (%d steps, %d moves)\n", sol.Outcome, len(sol.Steps), len(sol.Moves()))
	if len(sol.Unresolved) > 0 {
		fmt.Printf("Unresolved: %s\n", strings.Join(sol.Unresolved, ", "))
	}
	if len(sol.Steps) > 0 {
		fmt.Printf("Solution: %s\n", sol.Notation())
	}

	if !solveNoSave {
		db, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		id, err := storage.NewSolveRepository(db).Save(scramble, sol)
		if err != nil {
			return err
		}
		fmt.Printf("Saved solve %s\n", id)
	}

	return nil
}
