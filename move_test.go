package cubesolve

import (
	"errors"
	"testing"
)

func TestParseMove(t *testing.T) {
	cases := []struct {
		in   string
		want Move
	}{
		{"R", R},
		{"R'", RPrime},
		{"R2", R2},
		{"u", U},
		{"f'", FPrime},
		{"B2'", B2},
		{" L ", L},
	}
	for _, c := range cases {
		got, err := ParseMove(c.in)
		if err != nil {
			t.Errorf("ParseMove(%q) returned error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseMove(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, in := range []string{"", "X", "R3", "R''", "2R"} {
		if _, err := ParseMove(in); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMove(%q) error = %v, want ErrInvalidNotation", in, err)
		}
	}
}

func TestParseMovesRejectsBadToken(t *testing.T) {
	if _, err := ParseMoves("R U X R'"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("ParseMoves with bad token: error = %v, want ErrInvalidNotation", err)
	}
}

func TestParseMovesRoundTrip(t *testing.T) {
	in := "R U R' U' R' F R2 U' R' U' R U R' F'"
	moves, err := ParseMoves(in)
	if err != nil {
		t.Fatalf("ParseMoves(%q) returned error: %v", in, err)
	}
	if got := FormatMoves(moves); got != in {
		t.Errorf("FormatMoves round trip = %q, want %q", got, in)
	}
}

func TestAllTokensRoundTrip(t *testing.T) {
	for _, f := range []Face{FaceU, FaceD, FaceF, FaceB, FaceR, FaceL} {
		for _, suffix := range []string{"", "'", "2"} {
			token := string(f) + suffix
			m, err := ParseMove(token)
			if err != nil {
				t.Fatalf("ParseMove(%q) returned error: %v", token, err)
			}
			if got := m.Notation(); got != token {
				t.Errorf("Notation(ParseMove(%q)) = %q", token, got)
			}
		}
	}
}

func TestMoveInverse(t *testing.T) {
	cases := []struct {
		in, want Move
	}{
		{R, RPrime},
		{RPrime, R},
		{R2, R2},
		{UPrime, U},
	}
	for _, c := range cases {
		if got := c.in.Inverse(); got != c.want {
			t.Errorf("%v.Inverse() = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestInverseMovesUndoes(t *testing.T) {
	cube := NewCube()
	moves := []Move{R, U2, FPrime, L, DPrime, B2}
	cube.ApplyMoves(moves)
	cube.ApplyMoves(InverseMoves(moves))
	if !cube.IsSolved() {
		t.Error("applying a sequence then its inverse should return to solved")
	}
}

func TestNotation(t *testing.T) {
	if got := R.Notation(); got != "R" {
		t.Errorf("R.Notation() = %q, want %q", got, "R")
	}
	if got := RPrime.Notation(); got != "R'" {
		t.Errorf("RPrime.Notation() = %q, want %q", got, "R'")
	}
	if got := U2.Notation(); got != "U2" {
		t.Errorf("U2.Notation() = %q, want %q", got, "U2")
	}
}
