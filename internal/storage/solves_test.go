package storage

import (
	"path/filepath"
	"testing"

	"github.com/seamusw/cubesolve"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func solveFixture(t *testing.T) ([]cubesolve.Move, *cubesolve.Solution) {
	t.Helper()
	scramble, err := cubesolve.ParseMoves("F R U R' U' F'")
	if err != nil {
		t.Fatal(err)
	}
	cube := cubesolve.NewCube()
	cube.ApplyMoves(scramble)
	return scramble, cubesolve.Solve(cube)
}

func TestSaveAndGetSolve(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)
	scramble, sol := solveFixture(t)

	id, err := repo.Save(scramble, sol)
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil for a saved solve")
	}
	if got.Scramble != "F R U R' U' F'" {
		t.Errorf("scramble = %q, want %q", got.Scramble, "F R U R' U' F'")
	}
	if got.Outcome != "solved" {
		t.Errorf("outcome = %q, want solved", got.Outcome)
	}
	if got.StepCount != len(sol.Steps) {
		t.Errorf("step count = %d, want %d", got.StepCount, len(sol.Steps))
	}
}

func TestGetMissingSolve(t *testing.T) {
	db := openTestDB(t)
	got, err := NewSolveRepository(db).Get("no-such-id")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got != nil {
		t.Error("Get of a missing solve should return nil")
	}
}

func TestStepsRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)
	scramble, sol := solveFixture(t)

	id, err := repo.Save(scramble, sol)
	if err != nil {
		t.Fatal(err)
	}

	steps, err := repo.Steps(id)
	if err != nil {
		t.Fatalf("Steps returned error: %v", err)
	}
	if len(steps) != len(sol.Steps) {
		t.Fatalf("got %d steps, want %d", len(steps), len(sol.Steps))
	}
	for i, s := range steps {
		if s.Seq != i {
			t.Errorf("step %d has seq %d", i, s.Seq)
		}
		if s.Description != sol.Steps[i].Description {
			t.Errorf("step %d description = %q, want %q", i, s.Description, sol.Steps[i].Description)
		}
		if s.Moves != cubesolve.FormatMoves(sol.Steps[i].Moves) {
			t.Errorf("step %d moves = %q, want %q", i, s.Moves, cubesolve.FormatMoves(sol.Steps[i].Moves))
		}
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)
	scramble, sol := solveFixture(t)

	var ids []string
	for i := 0; i < 3; i++ {
		id, err := repo.Save(scramble, sol)
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}

	solves, err := repo.List(10)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(solves) != 3 {
		t.Fatalf("got %d solves, want 3", len(solves))
	}
	for _, s := range solves {
		found := false
		for _, id := range ids {
			if s.SolveID == id {
				found = true
			}
		}
		if !found {
			t.Errorf("listed unknown solve %s", s.SolveID)
		}
	}
}
