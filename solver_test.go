package cubesolve

import "testing"

// solveAndReplay scrambles a fresh cube, solves it, then replays the
// flattened move list against the scrambled state.
func solveAndReplay(t *testing.T, scramble string) *Solution {
	t.Helper()
	moves, err := ParseMoves(scramble)
	if err != nil {
		t.Fatalf("bad scramble %q: %v", scramble, err)
	}
	cube := NewCube()
	cube.ApplyMoves(moves)

	sol := Solve(cube)

	cube.ApplyMoves(sol.Moves())
	if !cube.IsSolved() {
		t.Errorf("replaying the solution on scramble %q did not solve the cube", scramble)
	}
	return sol
}

func TestSolveSolvedCube(t *testing.T) {
	sol := Solve(NewCube())
	if sol.Outcome != OutcomeSolved {
		t.Errorf("outcome = %v, want solved", sol.Outcome)
	}
	if len(sol.Steps) != 0 {
		t.Errorf("solving a solved cube recorded %d steps, want 0", len(sol.Steps))
	}
	if len(sol.Moves()) != 0 {
		t.Errorf("solving a solved cube produced %d moves, want 0", len(sol.Moves()))
	}
}

func TestSolveTPermScramble(t *testing.T) {
	sol := solveAndReplay(t, "R U R' U' R' F R2 U' R' U' R U R' F'")
	if sol.Outcome != OutcomeSolved {
		t.Errorf("outcome = %v, want solved", sol.Outcome)
	}
	if len(sol.Unresolved) != 0 {
		t.Errorf("unresolved = %v, want none", sol.Unresolved)
	}
}

func TestSolveScrambles(t *testing.T) {
	scrambles := []string{
		"F R U R' U' F'",
		"R U2 L' D B2 F R' U L2 D2",
		"B2 L2 F' D R U' B L D' F2 U R'",
		"U",
		"R2 F2 B2 L2 D2 U2",
		"D' L2 B' R F U2 D F2 L' B2 U R2",
	}
	for _, scramble := range scrambles {
		sol := solveAndReplay(t, scramble)
		if sol.Outcome != OutcomeSolved {
			t.Errorf("scramble %q: outcome = %v, want solved", scramble, sol.Outcome)
		}
	}
}

func TestSolveRandomScrambles(t *testing.T) {
	scrambler := NewScrambler(WithSeed(42))
	for i := 0; i < 50; i++ {
		scramble := scrambler.Scramble()
		cube := NewCube()
		cube.ApplyMoves(scramble)

		sol := Solve(cube)
		if sol.Outcome != OutcomeSolved {
			t.Fatalf("scramble %q: outcome = %v, want solved", FormatMoves(scramble), sol.Outcome)
		}

		cube.ApplyMoves(sol.Moves())
		if !cube.IsSolved() {
			t.Fatalf("scramble %q: replay did not solve the cube", FormatMoves(scramble))
		}
	}
}

func TestSolveDoesNotMutateInput(t *testing.T) {
	cube := NewCube()
	moves, _ := ParseMoves("R U R' U'")
	cube.ApplyMoves(moves)

	before := cube.String()
	Solve(cube)
	if cube.String() != before {
		t.Error("Solve mutated the input cube")
	}
}

func TestSolveStepsAreOrderedByPhase(t *testing.T) {
	sol := solveAndReplay(t, "B2 L2 F' D R U' B L D' F2 U R'")
	last := PhaseCross
	for _, step := range sol.Steps {
		if step.Phase < last {
			t.Fatalf("step phase %v appears after %v", step.Phase, last)
		}
		last = step.Phase
	}
}

func TestSolveStepsCarryDetail(t *testing.T) {
	sol := solveAndReplay(t, "R U2 L' D B2 F R' U L2 D2")
	for i, step := range sol.Steps {
		if step.Description == "" {
			t.Errorf("step %d has no description", i)
		}
		if len(step.Moves) == 0 {
			t.Errorf("step %d (%s) has no moves", i, step.Description)
		}
		if len(step.PieceIDs) == 0 {
			t.Errorf("step %d (%s) names no pieces", i, step.Description)
		}
	}
}

func TestSolveStopAfterCross(t *testing.T) {
	moves, _ := ParseMoves("B2 L2 F' D R U' B L D' F2 U R'")
	cube := NewCube()
	cube.ApplyMoves(moves)

	sol := Solve(cube, WithStopAfter(PhaseCross))
	for _, step := range sol.Steps {
		if step.Phase != PhaseCross {
			t.Fatalf("phase %v ran past the cross stop", step.Phase)
		}
	}

	cube.ApplyMoves(sol.Moves())
	if !cube.GetProgress().Cross {
		t.Error("cross should be complete after replaying a cross-only solution")
	}
	if sol.Outcome != OutcomePartial {
		t.Errorf("outcome = %v, want partial", sol.Outcome)
	}
}

func TestSolveStepCallback(t *testing.T) {
	moves, _ := ParseMoves("F R U R' U' F'")
	cube := NewCube()
	cube.ApplyMoves(moves)

	var seen []Step
	sol := Solve(cube, WithStepCallback(func(s Step) {
		seen = append(seen, s)
	}))
	if len(seen) != len(sol.Steps) {
		t.Errorf("callback saw %d steps, solution has %d", len(seen), len(sol.Steps))
	}
}

func TestSolveNotationMatchesMoves(t *testing.T) {
	sol := solveAndReplay(t, "F R U R' U' F'")
	if sol.Notation() != FormatMoves(sol.Moves()) {
		t.Error("Notation() should format the flattened move list")
	}
}
