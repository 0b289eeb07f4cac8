package cubesolve

import (
	"errors"
	"testing"
)

func TestNewCubeIsSolved(t *testing.T) {
	cube := NewCube()
	if !cube.IsSolved() {
		t.Error("new cube should be solved")
	}
	if got := len(cube.Pieces()); got != 26 {
		t.Errorf("cube has %d pieces, want 26", got)
	}
}

func TestPieceCategories(t *testing.T) {
	cube := NewCube()
	if got := len(cube.PiecesByCategory(Center)); got != 6 {
		t.Errorf("got %d centers, want 6", got)
	}
	if got := len(cube.PiecesByCategory(Edge)); got != 12 {
		t.Errorf("got %d edges, want 12", got)
	}
	if got := len(cube.PiecesByCategory(Corner)); got != 8 {
		t.Errorf("got %d corners, want 8", got)
	}
}

func TestR4ReturnsToSolved(t *testing.T) {
	cube := NewCube()
	for i := 0; i < 4; i++ {
		cube.ApplyMove(R)
	}
	if !cube.IsSolved() {
		t.Error("four R turns should return to solved")
	}
}

func TestDoubleTurnIsOwnInverse(t *testing.T) {
	cube := NewCube()
	cube.ApplyMove(R2)
	cube.ApplyMove(R2)
	if !cube.IsSolved() {
		t.Error("two R2 turns should return to solved")
	}
}

func TestSexyMoveSixTimesReturnsToSolved(t *testing.T) {
	cube := NewCube()
	for i := 0; i < 6; i++ {
		cube.ApplyMoves(SexyMove)
	}
	if !cube.IsSolved() {
		t.Error("six sexy moves should return to solved")
	}
}

func TestSexyMoveThenInverse(t *testing.T) {
	cube := NewCube()
	cube.ApplyMoves(SexyMove)
	if cube.IsSolved() {
		t.Error("one sexy move should not be solved")
	}
	cube.ApplyMoves(InverseSexyMove)
	if !cube.IsSolved() {
		t.Error("sexy move then inverse should return to solved")
	}
}

func TestFindNormalizesID(t *testing.T) {
	cube := NewCube()
	for _, id := range []string{"DFR", "RFD", "dfr", "fdr"} {
		p, err := cube.Find(id)
		if err != nil {
			t.Fatalf("Find(%q) returned error: %v", id, err)
		}
		if p.ID != "DFR" {
			t.Errorf("Find(%q).ID = %q, want %q", id, p.ID, "DFR")
		}
	}
}

func TestFindUnknownID(t *testing.T) {
	cube := NewCube()
	for _, id := range []string{"", "X", "UD", "UDF"} {
		if _, err := cube.Find(id); !errors.Is(err, ErrUnknownPiece) {
			t.Errorf("Find(%q) error = %v, want ErrUnknownPiece", id, err)
		}
	}
}

func TestRMovesCornerPiece(t *testing.T) {
	cube := NewCube()
	cube.ApplyMove(R)

	// The front-right bottom corner rides the R layer to the top front.
	p, err := cube.Find("DFR")
	if err != nil {
		t.Fatal(err)
	}
	want := Vec{1, 1, 1}
	if p.Pos != want {
		t.Errorf("DFR position after R = %v, want %v", p.Pos, want)
	}

	// Its yellow sticker now faces front.
	n, ok := p.NormalOf(Yellow)
	if !ok || n != AxisF {
		t.Errorf("DFR yellow normal after R = %v, want %v", n, AxisF)
	}
}

func TestIndexConsistentAfterMoves(t *testing.T) {
	cube := NewCube()
	moves, err := ParseMoves("R U2 L' D B2 F R' U L2 D2")
	if err != nil {
		t.Fatal(err)
	}
	cube.ApplyMoves(moves)

	for _, p := range cube.Pieces() {
		got := cube.At(p.Pos)
		if got == nil || got.ID != p.ID {
			t.Errorf("index lookup at %v returned %v, want piece %s", p.Pos, got, p.ID)
		}
	}
}

func TestCenterNeverMoves(t *testing.T) {
	cube := NewCube()
	moves, _ := ParseMoves("R U F L D B R2 U' F'")
	cube.ApplyMoves(moves)
	for _, p := range cube.PiecesByCategory(Center) {
		f, err := AxisFace(p.Pos)
		if err != nil {
			t.Fatalf("center at %v is off axis", p.Pos)
		}
		if p.Stickers[p.Pos] != CanonicalColor(f) {
			t.Errorf("center of %s face shows %v, want %v", f, p.Stickers[p.Pos], CanonicalColor(f))
		}
	}
}

func TestApplyNotation(t *testing.T) {
	cube := NewCube()
	if err := cube.ApplyNotation("R U R' U'"); err != nil {
		t.Fatalf("ApplyNotation returned error: %v", err)
	}
	if cube.IsSolved() {
		t.Error("cube should not be solved after a sexy move")
	}

	before := cube.String()
	if err := cube.ApplyNotation("R U X"); err == nil {
		t.Error("ApplyNotation should reject a malformed token")
	}
	if cube.String() != before {
		t.Error("a failed ApplyNotation should leave the cube untouched")
	}
}

func TestFaceAxisRoundTrip(t *testing.T) {
	for _, f := range []Face{FaceU, FaceD, FaceF, FaceB, FaceR, FaceL} {
		got, err := AxisFace(FaceAxis(f))
		if err != nil {
			t.Fatalf("AxisFace(FaceAxis(%s)) returned error: %v", f, err)
		}
		if got != f {
			t.Errorf("AxisFace(FaceAxis(%s)) = %s", f, got)
		}
	}
	if _, err := AxisFace(Vec{1, 1, 0}); err == nil {
		t.Error("AxisFace should reject a non-axis vector")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	cube := NewCube()
	clone := cube.Clone()
	clone.ApplyMove(R)
	if !cube.IsSolved() {
		t.Error("mutating a clone should not affect the original")
	}
	if clone.IsSolved() {
		t.Error("clone should reflect its own moves")
	}
}

func TestFaceColorsSolved(t *testing.T) {
	cube := NewCube()
	for _, f := range []Face{FaceU, FaceD, FaceF, FaceB, FaceR, FaceL} {
		grid := cube.FaceColors(f)
		want := CanonicalColor(f)
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				if grid[r][c] != want {
					t.Errorf("solved %s face grid[%d][%d] = %v, want %v", f, r, c, grid[r][c], want)
				}
			}
		}
	}
}

func TestFaceColorsAfterU(t *testing.T) {
	cube := NewCube()
	cube.ApplyMove(U)

	// The top row of F now shows the color from R.
	grid := cube.FaceColors(FaceF)
	for c := 0; c < 3; c++ {
		if grid[0][c] != Red {
			t.Errorf("F top row after U shows %v at col %d, want Red", grid[0][c], c)
		}
	}
	// Rows below the top are untouched.
	for r := 1; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if grid[r][c] != Green {
				t.Errorf("F row %d after U shows %v, want Green", r, grid[r][c])
			}
		}
	}
}

func TestScrambleThenInverseSolves(t *testing.T) {
	cube := NewCube()
	scramble, err := ParseMoves("B2 L2 F' D R U' B L D' F2 U R'")
	if err != nil {
		t.Fatal(err)
	}
	cube.ApplyMoves(scramble)
	if cube.IsSolved() {
		t.Fatal("scrambled cube should not be solved")
	}
	cube.ApplyMoves(InverseMoves(scramble))
	if !cube.IsSolved() {
		t.Error("scramble then inverse should return to solved")
	}
}
