package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/seamusw/cubesolve"
)

// Solve is one persisted solve attempt.
type Solve struct {
	SolveID   string
	CreatedAt time.Time
	Scramble  string
	Solution  string
	Outcome   string
	MoveCount int
	StepCount int
}

// SolveStep is one persisted solver step.
type SolveStep struct {
	Seq         int
	Phase       string
	Description string
	Moves       string
	PieceIDs    []string
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Save persists a solution together with its scramble and returns the new
// solve id. The solve row and its steps commit atomically.
func (r *SolveRepository) Save(scramble []cubesolve.Move, sol *cubesolve.Solution) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	err := r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO solves (solve_id, created_at, scramble, solution, outcome, move_count, step_count)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, id, createdAt.Format(time.RFC3339), cubesolve.FormatMoves(scramble),
			sol.Notation(), sol.Outcome.String(), len(sol.Moves()), len(sol.Steps))
		if err != nil {
			return fmt.Errorf("failed to insert solve: %w", err)
		}

		for i, step := range sol.Steps {
			_, err := tx.Exec(`
				INSERT INTO solve_steps (solve_id, seq, phase, description, moves, piece_ids)
				VALUES (?, ?, ?, ?, ?, ?)
			`, id, i, step.Phase.String(), step.Description,
				cubesolve.FormatMoves(step.Moves), strings.Join(step.PieceIDs, " "))
			if err != nil {
				return fmt.Errorf("failed to insert step %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// Get retrieves a solve by id. Returns nil if it does not exist.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	var s Solve
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT solve_id, created_at, scramble, solution, outcome, move_count, step_count
		FROM solves
		WHERE solve_id = ?
	`, solveID).Scan(&s.SolveID, &createdAtStr, &s.Scramble, &s.Solution,
		&s.Outcome, &s.MoveCount, &s.StepCount)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}

	s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &s, nil
}

// List returns the most recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, created_at, scramble, solution, outcome, move_count, step_count
		FROM solves
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var s Solve
		var createdAtStr string
		if err := rows.Scan(&s.SolveID, &createdAtStr, &s.Scramble, &s.Solution,
			&s.Outcome, &s.MoveCount, &s.StepCount); err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		solves = append(solves, s)
	}

	return solves, rows.Err()
}

// Steps returns the recorded steps of a solve in execution order.
func (r *SolveRepository) Steps(solveID string) ([]SolveStep, error) {
	rows, err := r.db.Query(`
		SELECT seq, phase, description, moves, piece_ids
		FROM solve_steps
		WHERE solve_id = ?
		ORDER BY seq
	`, solveID)
	if err != nil {
		return nil, fmt.Errorf("failed to list steps: %w", err)
	}
	defer rows.Close()

	var steps []SolveStep
	for rows.Next() {
		var s SolveStep
		var pieceIDs string
		if err := rows.Scan(&s.Seq, &s.Phase, &s.Description, &s.Moves, &pieceIDs); err != nil {
			return nil, fmt.Errorf("failed to scan step: %w", err)
		}
		s.PieceIDs = strings.Fields(pieceIDs)
		steps = append(steps, s)
	}

	return steps, rows.Err()
}
