package cubesolve

// Outcome reports how a solve attempt ended.
type Outcome int

const (
	// OutcomeSolved means the resulting move list brings the input state to
	// the solved cube.
	OutcomeSolved Outcome = iota

	// OutcomePartial means some pieces were solved but at least one piece
	// exhausted its attempt budget. This only happens on states that are
	// not reachable by legal moves, such as a cube with a twisted corner.
	OutcomePartial

	// OutcomeStuck means the solver made no progress at all.
	OutcomeStuck
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSolved:
		return "solved"
	case OutcomePartial:
		return "partial"
	case OutcomeStuck:
		return "stuck"
	default:
		return "unknown"
	}
}

// Step is one recorded solver action: a short move burst aimed at specific
// pieces during one phase.
type Step struct {
	Phase       Phase    // pipeline phase this step belongs to
	Description string   // what the step accomplishes
	Moves       []Move   // the moves applied, in order
	PieceIDs    []string // ids of the pieces the step targets
}

// Solution is the result of a solve attempt.
type Solution struct {
	Steps      []Step   // every recorded step, in execution order
	Outcome    Outcome  // how the attempt ended
	Unresolved []string // ids of pieces (or stages) that hit their budget
}

// Moves returns the flattened move list of all steps in order. Applying it
// to the original input state reproduces the solver's final state.
func (s *Solution) Moves() []Move {
	var out []Move
	for _, step := range s.Steps {
		out = append(out, step.Moves...)
	}
	return out
}

// Notation returns the flattened move list in standard notation.
func (s *Solution) Notation() string {
	return FormatMoves(s.Moves())
}

// Per-target attempt budgets. Each loop converges in a handful of
// iterations on any reachable state; the budgets only bound corrupted
// input.
const (
	crossAttempts   = 24
	cornerAttempts  = 40
	edgeAttempts    = 40
	orientAttempts  = 16
	permuteAttempts = 8
)

// solver walks a working copy of the cube through the phase pipeline,
// recording every step it takes.
type solver struct {
	c          *Cube
	cfg        *solveConfig
	steps      []Step
	unresolved []string
}

// Solve computes a layer-by-layer solution for the given cube state.
// The input cube is never modified; the solver works on a clone.
//
// Phases run in order: bottom cross, first-layer corners, second-layer
// edges, last-layer orientation, last-layer permutation. The returned
// Solution carries the recorded steps and an explicit outcome rather than
// pretending success: a state that cannot be finished (possible only for
// assemblies unreachable by legal moves) yields OutcomePartial or
// OutcomeStuck with the offending piece ids listed.
func Solve(c *Cube, opts ...Option) *Solution {
	cfg := defaultSolveConfig()
	for _, o := range opts {
		o(cfg)
	}

	s := &solver{c: c.Clone(), cfg: cfg}

	phases := []struct {
		phase Phase
		run   func()
	}{
		{PhaseCross, s.solveCross},
		{PhaseCorners, s.solveCorners},
		{PhaseEdges, s.solveEdges},
		{PhaseOrientLast, s.orientLast},
		{PhasePermuteLast, s.permuteLast},
	}
	for _, p := range phases {
		if p.phase > cfg.stopAfter {
			break
		}
		p.run()
	}

	return &Solution{
		Steps:      s.steps,
		Outcome:    s.outcome(),
		Unresolved: s.unresolved,
	}
}

// outcome classifies the final state of the working cube.
func (s *solver) outcome() Outcome {
	if s.c.IsSolved() {
		return OutcomeSolved
	}
	if len(s.unresolved) > 0 {
		// No step at all, or not a single cross edge placed: nothing to
		// build on.
		if len(s.steps) == 0 || s.crossUnresolved() == len(sideFaces) {
			return OutcomeStuck
		}
	}
	return OutcomePartial
}

func (s *solver) crossUnresolved() int {
	n := 0
	for _, id := range s.unresolved {
		for _, f := range sideFaces {
			if id == PieceID(FaceD, f) {
				n++
			}
		}
	}
	return n
}

// record applies a move burst to the working cube and logs it as a step.
func (s *solver) record(phase Phase, desc string, moves []Move, ids ...string) {
	s.c.ApplyMoves(moves)
	step := Step{Phase: phase, Description: desc, Moves: moves, PieceIDs: ids}
	s.steps = append(s.steps, step)
	if s.cfg.onStep != nil {
		s.cfg.onStep(step)
	}
}

// sideFaces is the equatorial ring of faces in clockwise order viewed from
// above. Slot and algorithm indexing throughout the solver follows it.
var sideFaces = []Face{FaceF, FaceR, FaceB, FaceL}

func sideIndex(f Face) int {
	for i, s := range sideFaces {
		if s == f {
			return i
		}
	}
	return -1
}

func rightOf(f Face) Face {
	return sideFaces[(sideIndex(f)+1)%4]
}

func leftOf(f Face) Face {
	return sideFaces[(sideIndex(f)+3)%4]
}

// sideAxis projects a position onto the equatorial plane.
func sideAxis(pos Vec) Vec {
	return Vec{pos.X, 0, pos.Z}
}

// rotateAlg substitutes the side faces of an algorithm shifted k steps
// along the F R B L ring. U and D moves are unchanged, so the rotated
// algorithm acts on the cube the way the original acts on a cube turned k
// quarter turns about the vertical axis.
func rotateAlg(moves []Move, k int) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		if idx := sideIndex(m.Face); idx >= 0 {
			m.Face = sideFaces[(idx+k)%4]
		}
		out[i] = m
	}
	return out
}

// uTurns returns the single U-layer move that carries the side axis cur to
// target, or nil when they already match. One clockwise U carries
// F to L to B to R.
func uTurns(cur, target Vec) []Move {
	ring := []Face{FaceF, FaceL, FaceB, FaceR}
	ci, ti := -1, -1
	for i, f := range ring {
		if FaceAxis(f) == cur {
			ci = i
		}
		if FaceAxis(f) == target {
			ti = i
		}
	}
	switch (ti - ci + 4) % 4 {
	case 1:
		return []Move{U}
	case 2:
		return []Move{U2}
	case 3:
		return []Move{UPrime}
	default:
		return nil
	}
}

// mustParse parses a fixed algorithm literal. Only package-level algorithm
// tables call it.
func mustParse(s string) []Move {
	moves, err := ParseMoves(s)
	if err != nil {
		panic(err)
	}
	return moves
}
