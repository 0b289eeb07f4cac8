package cubesolve

import "math/rand"

// allFaces lists every turnable face for scramble generation.
var allFaces = []Face{FaceU, FaceD, FaceF, FaceB, FaceR, FaceL}

// Scrambler generates random scrambles.
type Scrambler struct {
	rng    *rand.Rand
	length int
}

// ScrambleOption configures a Scrambler.
type ScrambleOption func(*Scrambler)

// WithLength sets the number of moves per scramble. Default is 25.
func WithLength(n int) ScrambleOption {
	return func(s *Scrambler) {
		if n > 0 {
			s.length = n
		}
	}
}

// WithSeed makes the scrambler deterministic.
func WithSeed(seed int64) ScrambleOption {
	return func(s *Scrambler) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// NewScrambler creates a scrambler with the given options.
func NewScrambler(opts ...ScrambleOption) *Scrambler {
	s := &Scrambler{length: 25}
	for _, o := range opts {
		o(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return s
}

// Scramble returns a random move sequence. Consecutive moves never turn
// the same face, so no move cancels the one before it.
func (s *Scrambler) Scramble() []Move {
	moves := make([]Move, 0, s.length)
	var last Face
	for len(moves) < s.length {
		f := allFaces[s.rng.Intn(len(allFaces))]
		if f == last {
			continue
		}
		turns := []Turn{CW, CCW, Double}
		moves = append(moves, Move{Face: f, Turn: turns[s.rng.Intn(3)]})
		last = f
	}
	return moves
}
