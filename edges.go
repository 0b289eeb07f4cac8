package cubesolve

import "fmt"

// insertRight drops the top edge showing at front into the slot on front's
// right: U R U' R' U' F' U F, as seen from the F face.
func insertRight(front Face) []Move {
	r := Move{Face: rightOf(front), Turn: CW}
	fm := Move{Face: front, Turn: CW}
	return []Move{U, r, UPrime, r.Inverse(), UPrime, fm.Inverse(), U, fm}
}

// insertLeft mirrors insertRight for the slot on front's left.
func insertLeft(front Face) []Move {
	l := Move{Face: leftOf(front), Turn: CW}
	fm := Move{Face: front, Turn: CW}
	return []Move{UPrime, l.Inverse(), U, l, U, fm, UPrime, fm.Inverse()}
}

// solveEdges places the four middle-layer edges. An edge stuck in a middle
// slot (wrong slot or flipped) is ejected by running an insert at that
// slot; once on top it is aligned with its side-color face and inserted
// left or right depending on where its top color belongs.
func (s *solver) solveEdges() {
	for _, slot := range cornerSlots {
		a, b := slot[0], slot[1]
		id := PieceID(a, b)
		done := false
		for i := 0; i < edgeAttempts; i++ {
			if s.c.middleEdgeSolved(a, b) {
				done = true
				break
			}
			p, _ := s.c.Find(id)
			if p.Pos.Y == 0 {
				fa, _ := AxisFace(Vec{p.Pos.X, 0, 0})
				fb, _ := AxisFace(Vec{0, 0, p.Pos.Z})
				front := fb
				if rightOf(fa) == fb {
					front = fa
				}
				s.record(PhaseEdges, fmt.Sprintf("eject %s edge from the middle layer", id),
					insertRight(front), id)
				continue
			}
			t := sideAxis(p.Pos)
			sideColor := p.Stickers[t]
			topColor := p.Stickers[AxisU]
			want := FaceAxis(colorFace(sideColor))
			if t != want {
				s.record(PhaseEdges, fmt.Sprintf("align %s edge with its side face", id),
					uTurns(t, want), id)
				continue
			}
			front := colorFace(sideColor)
			if rightOf(front) == colorFace(topColor) {
				s.record(PhaseEdges, fmt.Sprintf("insert %s edge to the right", id),
					insertRight(front), id)
			} else {
				s.record(PhaseEdges, fmt.Sprintf("insert %s edge to the left", id),
					insertLeft(front), id)
			}
		}
		if !done {
			s.unresolved = append(s.unresolved, id)
		}
	}
}
