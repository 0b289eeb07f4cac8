package cubesolve

import (
	"sort"
	"strings"
)

// Category classifies a piece by how many stickers it carries.
type Category int

const (
	Center Category = 1 // one sticker, fixed on its axis
	Edge   Category = 2 // two stickers
	Corner Category = 3 // three stickers
)

func (c Category) String() string {
	switch c {
	case Center:
		return "center"
	case Edge:
		return "edge"
	case Corner:
		return "corner"
	default:
		return "unknown"
	}
}

// labelOrder fixes the ordering of face labels inside piece ids.
const labelOrder = "UDFBRL"

// PieceID builds the canonical id for the piece whose home position touches
// the given faces. Labels are sorted U, D, F, B, R, L, so the front-right
// bottom corner is "DFR" regardless of argument order.
func PieceID(faces ...Face) string {
	labels := make([]byte, len(faces))
	for i, f := range faces {
		labels[i] = f[0]
	}
	sort.Slice(labels, func(i, j int) bool {
		return strings.IndexByte(labelOrder, labels[i]) < strings.IndexByte(labelOrder, labels[j])
	})
	return string(labels)
}

// Piece is one of the 26 physical cubies.
// Its id is fixed at creation from the faces of its home position; its
// position and sticker normals change as moves are applied.
type Piece struct {
	ID       string        // canonical face labels of the home position
	Pos      Vec           // current position
	Stickers map[Vec]Color // outward normal -> color
}

// Clone returns a deep copy of the piece.
func (p *Piece) Clone() *Piece {
	stickers := make(map[Vec]Color, len(p.Stickers))
	for n, c := range p.Stickers {
		stickers[n] = c
	}
	return &Piece{ID: p.ID, Pos: p.Pos, Stickers: stickers}
}

// Category returns whether the piece is a center, edge, or corner.
func (p *Piece) Category() Category {
	return Category(len(p.Stickers))
}

// NormalOf returns the outward normal currently carrying the given color.
// The second return value is false if the piece has no sticker of that color.
func (p *Piece) NormalOf(color Color) (Vec, bool) {
	for n, c := range p.Stickers {
		if c == color {
			return n, true
		}
	}
	return Vec{}, false
}
