package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolve/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded solves",
	RunE:  runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <solve-id>",
	Short: "Show the recorded steps of one solve",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of solves to list")
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	solves, err := storage.NewSolveRepository(db).List(historyLimit)
	if err != nil {
		return err
	}

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		return nil
	}

	for _, s := range solves {
		fmt.Printf("%s  %s  %-7s  %3d moves  %s\n",
			s.SolveID[:8], s.CreatedAt.Local().Format("2006-01-02 15:04"),
			s.Outcome, s.MoveCount, s.Scramble)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	solve, err := findSolve(repo, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Solve:    %s\n", solve.SolveID)
	fmt.Printf("Date:     %s\n", solve.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Scramble: %s\n", solve.Scramble)
	fmt.Printf("Outcome:  %s (%d steps, %d moves)\n\n", solve.Outcome, solve.StepCount, solve.MoveCount)

	steps, err := repo.Steps(solve.SolveID)
	if err != nil {
		return err
	}
	for _, s := range steps {
		fmt.Printf("%3d  [%s] %s: %s\n", s.Seq+1, s.Phase, s.Description, s.Moves)
	}
	return nil
}

// findSolve resolves a full or abbreviated solve id.
func findSolve(repo *storage.SolveRepository, id string) (*storage.Solve, error) {
	solve, err := repo.Get(id)
	if err != nil {
		return nil, err
	}
	if solve != nil {
		return solve, nil
	}

	// Fall back to prefix match over recent solves.
	solves, err := repo.List(1000)
	if err != nil {
		return nil, err
	}
	for i := range solves {
		if len(id) >= 4 && len(solves[i].SolveID) >= len(id) && solves[i].SolveID[:len(id)] == id {
			return &solves[i], nil
		}
	}
	return nil, fmt.Errorf("solve %q not found", id)
}
