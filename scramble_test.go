package cubesolve

import "testing"

func TestScrambleLength(t *testing.T) {
	s := NewScrambler(WithSeed(1), WithLength(30))
	if got := len(s.Scramble()); got != 30 {
		t.Errorf("scramble length = %d, want 30", got)
	}
}

func TestScrambleDefaultLength(t *testing.T) {
	s := NewScrambler(WithSeed(1))
	if got := len(s.Scramble()); got != 25 {
		t.Errorf("default scramble length = %d, want 25", got)
	}
}

func TestScrambleNoRepeatedFace(t *testing.T) {
	s := NewScrambler(WithSeed(7), WithLength(200))
	moves := s.Scramble()
	for i := 1; i < len(moves); i++ {
		if moves[i].Face == moves[i-1].Face {
			t.Fatalf("moves %d and %d turn the same face %s", i-1, i, moves[i].Face)
		}
	}
}

func TestScrambleDeterministicWithSeed(t *testing.T) {
	a := NewScrambler(WithSeed(99)).Scramble()
	b := NewScrambler(WithSeed(99)).Scramble()
	if FormatMoves(a) != FormatMoves(b) {
		t.Error("same seed should produce the same scramble")
	}
}

func TestScrambleActuallyScrambles(t *testing.T) {
	cube := NewCube()
	cube.ApplyMoves(NewScrambler(WithSeed(3)).Scramble())
	if cube.IsSolved() {
		t.Error("a 25-move scramble should not leave the cube solved")
	}
}
