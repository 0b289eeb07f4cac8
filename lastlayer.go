package cubesolve

import "fmt"

// Last-layer algorithm tables. Each acts on the U layer as written; when a
// case sits elsewhere on the ring, rotateAlg shifts the side faces so the
// algorithm applies to a cube turned about the vertical axis.
var (
	// topEdgeFlip handles the dot and line cases of the top cross.
	topEdgeFlip = mustParse("F R U R' U' F'")

	// topEdgeFlipL handles the L-shape case with the oriented pair sitting
	// at back and left.
	topEdgeFlipL = mustParse("F U R U' R' F'")

	// cornerTwist rotates the front-right top corner in place. The rest of
	// the top layer is untouched, so repeating it walks a corner through
	// its three orientations.
	cornerTwist = mustParse("R' D' R D R' D' R D")

	// cornerCycle is the A-perm: three-cycles the FR, RB and BL top
	// corners, leaving LF fixed and all orientations intact.
	cornerCycle = mustParse("R' F R' B2 R F' R' B2 R2")

	// edgeCycle is the U-perm: three-cycles the top edges, leaving the B
	// edge fixed.
	edgeCycle = mustParse("R2 U R U R' U' R' U' R' U R'")
)

// topCornersOriented reports whether all four top corners show White up.
func (c *Cube) topCornersOriented() bool {
	for _, slot := range cornerSlots {
		p := c.At(AxisU.Add(FaceAxis(slot[0])).Add(FaceAxis(slot[1])))
		if p.Stickers[AxisU] != White {
			return false
		}
	}
	return true
}

// orientLast turns every top-layer sticker facing up to White: edges first
// (the top cross), then corners.
func (s *solver) orientLast() {
	s.orientTopEdges()
	s.orientTopCorners()
}

func (s *solver) topEdgeIDs() []string {
	ids := make([]string, 0, 4)
	for _, f := range sideFaces {
		ids = append(ids, s.c.At(AxisU.Add(FaceAxis(f))).ID)
	}
	return ids
}

// orientTopEdges builds the top cross. The oriented-edge pattern is always
// a dot, a line, an L-shape, or complete; two applications of the flip
// algorithms suffice, the loop bound covers the interleaved setup turns.
func (s *solver) orientTopEdges() {
	for i := 0; i < 4; i++ {
		var good []Face
		for _, f := range sideFaces {
			p := s.c.At(AxisU.Add(FaceAxis(f)))
			if p.Stickers[AxisU] == White {
				good = append(good, f)
			}
		}
		if len(good) == 4 {
			return
		}
		ids := s.topEdgeIDs()
		switch len(good) {
		case 0:
			s.record(PhaseOrientLast, "orient top edges (dot)", topEdgeFlip, ids...)
		case 2:
			if FaceAxis(good[0]) == FaceAxis(good[1]).Neg() {
				// line: make it run left to right first
				if good[0] == FaceF || good[0] == FaceB {
					s.record(PhaseOrientLast, "rotate top line", []Move{U}, ids...)
				}
				s.record(PhaseOrientLast, "orient top edges (line)", topEdgeFlip, ids...)
			} else {
				if mv := lShapeTurns(good); mv != nil {
					s.record(PhaseOrientLast, "rotate top L-shape", mv, ids...)
				}
				s.record(PhaseOrientLast, "orient top edges (L-shape)", topEdgeFlipL, ids...)
			}
		default:
			// odd counts cannot occur on a state reachable by legal moves
			s.record(PhaseOrientLast, "orient top edges", topEdgeFlip, ids...)
		}
	}
}

// lShapeTurns returns the U-layer turn that parks the two oriented edges
// of an L-shape at the back and left faces.
func lShapeTurns(good []Face) []Move {
	ring := []Face{FaceF, FaceL, FaceB, FaceR}
	ringIndex := func(f Face) int {
		for i, r := range ring {
			if r == f {
				return i
			}
		}
		return -1
	}
	for k := 0; k < 4; k++ {
		hit := 0
		for _, g := range good {
			switch ring[(ringIndex(g)+k)%4] {
			case FaceB, FaceL:
				hit++
			}
		}
		if hit == 2 {
			switch k {
			case 0:
				return nil
			case 1:
				return []Move{U}
			case 2:
				return []Move{U2}
			default:
				return []Move{UPrime}
			}
		}
	}
	return nil
}

// orientTopCorners twists top corners one at a time: the front-right
// corner is twisted in place until it shows White, then the next
// unoriented corner is rotated in. The bottom two layers are disturbed
// mid-loop but restored by the time every corner is oriented.
func (s *solver) orientTopCorners() {
	for i := 0; i < orientAttempts; i++ {
		if s.c.topCornersOriented() {
			return
		}
		p := s.c.At(Vec{1, 1, 1})
		if p.Stickers[AxisU] == White {
			s.record(PhaseOrientLast, "bring an unoriented corner to the front-right", []Move{U}, p.ID)
		} else {
			s.record(PhaseOrientLast, fmt.Sprintf("twist %s corner", p.ID), cornerTwist, p.ID)
		}
	}
	s.unresolved = append(s.unresolved, "last-layer corner orientation")
}

// permuteLast places the last-layer pieces: corners first with A-perm
// cycles, then edges with U-perm cycles.
func (s *solver) permuteLast() {
	s.permuteTopCorners()
	s.permuteTopEdges()
}

func (s *solver) topCornerPlaced(a, b Face) bool {
	id := PieceID(FaceU, a, b)
	return s.c.index[AxisU.Add(FaceAxis(a)).Add(FaceAxis(b))] == id
}

func (s *solver) topEdgePlaced(f Face) bool {
	id := PieceID(FaceU, f)
	return s.c.index[AxisU.Add(FaceAxis(f))] == id
}

// cornerPermParity returns the parity of the permutation carrying each top
// corner's home slot to its current slot, or -1 when a top slot holds a
// piece from another layer.
func (s *solver) cornerPermParity() int {
	perm := make(map[int]int, 4)
	for i, slot := range cornerSlots {
		p, err := s.c.Find(PieceID(FaceU, slot[0], slot[1]))
		if err != nil {
			return -1
		}
		for j, slot2 := range cornerSlots {
			if p.Pos == AxisU.Add(FaceAxis(slot2[0])).Add(FaceAxis(slot2[1])) {
				perm[i] = j
			}
		}
	}
	if len(perm) < 4 {
		return -1
	}
	seen := make(map[int]bool, 4)
	parity := 0
	for i := 0; i < 4; i++ {
		if seen[i] {
			continue
		}
		j, length := i, 0
		for !seen[j] {
			seen[j] = true
			j = perm[j]
			length++
		}
		parity ^= (length - 1) % 2
	}
	return parity
}

// permuteTopCorners cycles the top corners into their slots. Three-cycles
// only generate even permutations, so an odd arrangement first gets a U
// offset, which also shifts the edge permutation to even.
func (s *solver) permuteTopCorners() {
	ids := make([]string, 0, 4)
	for _, slot := range cornerSlots {
		ids = append(ids, PieceID(FaceU, slot[0], slot[1]))
	}
	for i := 0; i < permuteAttempts; i++ {
		var placed []int
		for j, slot := range cornerSlots {
			if s.topCornerPlaced(slot[0], slot[1]) {
				placed = append(placed, j)
			}
		}
		if len(placed) == 4 {
			return
		}
		if s.cornerPermParity() == 1 {
			s.record(PhasePermuteLast, "offset the top layer", []Move{U}, ids...)
			continue
		}
		k := 1
		if len(placed) > 0 {
			k = (placed[0] + 1) % 4
		}
		s.record(PhasePermuteLast, "cycle top corners", rotateAlg(cornerCycle, k), ids...)
	}
	s.unresolved = append(s.unresolved, "last-layer corner permutation")
}

// permuteTopEdges cycles the top edges into their slots. Once the corners
// are placed the edge permutation is even, so U-perm three-cycles always
// finish.
func (s *solver) permuteTopEdges() {
	ids := make([]string, 0, 4)
	for _, f := range sideFaces {
		ids = append(ids, PieceID(FaceU, f))
	}
	for i := 0; i < permuteAttempts; i++ {
		var placed []int
		for j, f := range sideFaces {
			if s.topEdgePlaced(f) {
				placed = append(placed, j)
			}
		}
		if len(placed) == 4 {
			return
		}
		k := 0
		if len(placed) > 0 {
			k = (placed[0] + 2) % 4
		}
		s.record(PhasePermuteLast, "cycle top edges", rotateAlg(edgeCycle, k), ids...)
	}
	s.unresolved = append(s.unresolved, "last-layer edge permutation")
}
