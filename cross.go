package cubesolve

import "fmt"

// crossFlipBase reinserts an edge that sits above its slot with the bottom
// color facing sideways: U L F' L', as seen from the F face. rotateAlg
// shifts it to the other three faces.
var crossFlipBase = mustParse("U L F' L'")

func crossFlip(f Face) []Move {
	return rotateAlg(crossFlipBase, sideIndex(f))
}

// solveCross places the four bottom edges one at a time. Each edge is
// routed to the top layer first, aligned above its slot with U turns, then
// dropped or flipped in.
func (s *solver) solveCross() {
	for _, f := range sideFaces {
		id := PieceID(FaceD, f)
		done := false
		for i := 0; i < crossAttempts; i++ {
			if s.c.crossEdgeSolved(f) {
				done = true
				break
			}
			p, _ := s.c.Find(id)
			switch {
			case p.Pos.Y == 1:
				n, _ := p.NormalOf(Yellow)
				mv := uTurns(sideAxis(p.Pos), FaceAxis(f))
				if n == AxisU {
					if mv != nil {
						s.record(PhaseCross, fmt.Sprintf("align %s edge above the %s face", id, f), mv, id)
					} else {
						s.record(PhaseCross, fmt.Sprintf("drop %s edge into the bottom cross", id),
							[]Move{{Face: f, Turn: Double}}, id)
					}
				} else {
					if mv != nil {
						s.record(PhaseCross, fmt.Sprintf("align flipped %s edge above the %s face", id, f), mv, id)
					} else {
						s.record(PhaseCross, fmt.Sprintf("flip %s edge into the bottom cross", id), crossFlip(f), id)
					}
				}
			case p.Pos.Y == -1:
				t, _ := AxisFace(sideAxis(p.Pos))
				s.record(PhaseCross, fmt.Sprintf("lift %s edge out of the bottom layer", id),
					[]Move{{Face: t, Turn: Double}}, id)
			default:
				s.record(PhaseCross, fmt.Sprintf("lift %s edge out of the middle layer", id),
					middleEdgeLift(p.Pos), id)
			}
		}
		if !done {
			s.unresolved = append(s.unresolved, id)
		}
	}
}

// middleEdgeLift returns the three-move trigger that carries a middle-layer
// edge into the top layer.
func middleEdgeLift(pos Vec) []Move {
	for _, ax := range []Vec{{pos.X, 0, 0}, {0, 0, pos.Z}} {
		f, err := AxisFace(ax)
		if err != nil {
			continue
		}
		x := Move{Face: f, Turn: CW}
		if rotateCW(pos, ax).Y == 1 {
			return []Move{x, U, x.Inverse()}
		}
		if rotateCCW(pos, ax).Y == 1 {
			return []Move{x.Inverse(), U, x}
		}
	}
	return nil
}
