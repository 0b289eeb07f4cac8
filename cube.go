package cubesolve

import (
	"sort"
	"strings"
)

// Color represents a face color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// CanonicalColor returns the color of a face when solved.
func CanonicalColor(f Face) Color {
	switch f {
	case FaceU:
		return White
	case FaceD:
		return Yellow
	case FaceF:
		return Green
	case FaceB:
		return Blue
	case FaceR:
		return Red
	default:
		return Orange
	}
}

// colorFace is the inverse of CanonicalColor.
func colorFace(c Color) Face {
	switch c {
	case White:
		return FaceU
	case Yellow:
		return FaceD
	case Green:
		return FaceF
	case Blue:
		return FaceB
	case Red:
		return FaceR
	default:
		return FaceL
	}
}

// Cube represents a 3x3 Rubik's cube as 26 pieces keyed by id, plus a
// position index for O(1) spatial lookup. Centers never leave their axes,
// so the cube's orientation in space is fixed.
type Cube struct {
	pieces map[string]*Piece
	index  map[Vec]string
}

// NewCube creates a solved cube with standard orientation:
// White on top, Green in front.
func NewCube() *Cube {
	c := &Cube{}
	c.Reset()
	return c
}

// Reset returns the cube to the solved state.
func (c *Cube) Reset() {
	c.pieces = make(map[string]*Piece, 26)
	c.index = make(map[Vec]string, 26)
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				if x == 0 && y == 0 && z == 0 {
					continue // hidden core, not a piece
				}
				pos := Vec{x, y, z}
				stickers := make(map[Vec]Color, 3)
				var faces []Face
				for _, n := range []Vec{{x, 0, 0}, {0, y, 0}, {0, 0, z}} {
					if n == (Vec{}) {
						continue
					}
					f, _ := AxisFace(n)
					stickers[n] = CanonicalColor(f)
					faces = append(faces, f)
				}
				id := PieceID(faces...)
				c.pieces[id] = &Piece{ID: id, Pos: pos, Stickers: stickers}
				c.index[pos] = id
			}
		}
	}
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := &Cube{
		pieces: make(map[string]*Piece, len(c.pieces)),
		index:  make(map[Vec]string, len(c.index)),
	}
	for id, p := range c.pieces {
		clone.pieces[id] = p.Clone()
	}
	for pos, id := range c.index {
		clone.index[pos] = id
	}
	return clone
}

// Find returns the piece with the given id. The id is case-insensitive and
// the face labels may appear in any order: "RFD", "dfr" and "DFR" all name
// the front-right bottom corner.
func (c *Cube) Find(id string) (*Piece, error) {
	faces := make([]Face, 0, len(id))
	for _, r := range strings.ToUpper(id) {
		if !strings.ContainsRune(labelOrder, r) {
			return nil, ErrUnknownPiece
		}
		faces = append(faces, Face(r))
	}
	p, ok := c.pieces[PieceID(faces...)]
	if !ok {
		return nil, ErrUnknownPiece
	}
	return p, nil
}

// At returns the piece currently occupying the given position.
// Positions off the surface return nil.
func (c *Cube) At(pos Vec) *Piece {
	id, ok := c.index[pos]
	if !ok {
		return nil
	}
	return c.pieces[id]
}

// Pieces returns all 26 pieces sorted by id.
func (c *Cube) Pieces() []*Piece {
	out := make([]*Piece, 0, len(c.pieces))
	for _, p := range c.pieces {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PiecesByCategory returns the pieces of one category sorted by id.
func (c *Cube) PiecesByCategory(cat Category) []*Piece {
	out := make([]*Piece, 0, 12)
	for _, p := range c.pieces {
		if p.Category() == cat {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ApplyMove applies a single move to the cube.
// A half turn is two quarter turns, so every rotation stays exact.
func (c *Cube) ApplyMove(m Move) {
	a := FaceAxis(m.Face)
	reps := 1
	if m.Turn == Double {
		reps = 2
	}
	rot := rotateCW
	if m.Turn == CCW {
		rot = rotateCCW
	}
	for r := 0; r < reps; r++ {
		moved := make([]*Piece, 0, 9)
		for _, p := range c.pieces {
			if p.Pos.Dot(a) == 1 {
				moved = append(moved, p)
			}
		}
		// Drop every stale index entry before re-inserting: a rotated
		// piece may land on a position another piece just vacated.
		for _, p := range moved {
			delete(c.index, p.Pos)
			p.Pos = rot(p.Pos, a)
			stickers := make(map[Vec]Color, len(p.Stickers))
			for n, col := range p.Stickers {
				stickers[rot(n, a)] = col
			}
			p.Stickers = stickers
		}
		for _, p := range moved {
			c.index[p.Pos] = p.ID
		}
	}
}

// ApplyMoves applies a sequence of moves to the cube.
func (c *Cube) ApplyMoves(moves []Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}

// ApplyNotation parses a notation string and applies it. The cube is left
// untouched if any token is malformed.
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	c.ApplyMoves(moves)
	return nil
}

// IsSolved returns true if every sticker shows the canonical color of the
// face it currently points at.
func (c *Cube) IsSolved() bool {
	for _, p := range c.pieces {
		for n, col := range p.Stickers {
			f, err := AxisFace(n)
			if err != nil || CanonicalColor(f) != col {
				return false
			}
		}
	}
	return true
}

// faceBases gives the in-face row and column axes used to lay out the
// 3x3 grid of a face. The choice only affects grid orientation.
var faceBases = map[Face][2]Vec{
	FaceU: {{0, 0, -1}, {1, 0, 0}},
	FaceD: {{0, 0, 1}, {1, 0, 0}},
	FaceF: {{0, -1, 0}, {1, 0, 0}},
	FaceB: {{0, -1, 0}, {-1, 0, 0}},
	FaceR: {{0, -1, 0}, {0, 0, -1}},
	FaceL: {{0, -1, 0}, {0, 0, 1}},
}

// FaceColors returns the 3x3 color grid currently showing on a face,
// top-left to bottom-right as seen from outside the cube.
func (c *Cube) FaceColors(f Face) [3][3]Color {
	a := FaceAxis(f)
	bases := faceBases[f]
	var grid [3][3]Color
	for r := -1; r <= 1; r++ {
		for col := -1; col <= 1; col++ {
			pos := a.Add(bases[0].Scale(r)).Add(bases[1].Scale(col))
			p := c.At(pos)
			color, ok := p.Stickers[a]
			if !ok {
				color = CanonicalColor(f)
			}
			grid[r+1][col+1] = color
		}
	}
	return grid
}

// String returns a text net of the cube: U on top, then L F R B, then D.
func (c *Cube) String() string {
	var b strings.Builder

	writeRow := func(grid [3][3]Color, row int) {
		for col := 0; col < 3; col++ {
			b.WriteString(grid[row][col].String())
			b.WriteString(" ")
		}
	}

	up := c.FaceColors(FaceU)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(up, row)
		b.WriteString("\n")
	}

	var sides [4][3][3]Color
	for i, f := range []Face{FaceL, FaceF, FaceR, FaceB} {
		sides[i] = c.FaceColors(f)
	}
	for row := 0; row < 3; row++ {
		for i := range sides {
			writeRow(sides[i], row)
		}
		b.WriteString("\n")
	}

	down := c.FaceColors(FaceD)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(down, row)
		b.WriteString("\n")
	}

	return b.String()
}
