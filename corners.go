package cubesolve

import "fmt"

// cornerSlots lists the four vertical slot pairs in clockwise order viewed
// from above. The same ring indexes the second-layer edge slots.
var cornerSlots = [4][2]Face{
	{FaceF, FaceR},
	{FaceR, FaceB},
	{FaceB, FaceL},
	{FaceL, FaceF},
}

// topCornerRing is the orbit of top corner positions under a clockwise U
// turn: FR -> LF -> BL -> RB.
var topCornerRing = [4][2]Face{
	{FaceF, FaceR},
	{FaceL, FaceF},
	{FaceB, FaceL},
	{FaceR, FaceB},
}

func topCornerIndex(pos Vec) int {
	for i, slot := range topCornerRing {
		if pos == AxisU.Add(FaceAxis(slot[0])).Add(FaceAxis(slot[1])) {
			return i
		}
	}
	return -1
}

// cornerLiftFace returns the face whose clockwise turn lifts the bottom
// corner of slot (a, b) into the top layer.
func cornerLiftFace(a, b Face) Face {
	pos := AxisD.Add(FaceAxis(a)).Add(FaceAxis(b))
	for _, f := range []Face{a, b} {
		if rotateCW(pos, FaceAxis(f)).Y == 1 {
			return f
		}
	}
	return a
}

// cornerEvict pops a bottom corner out of a foreign slot into the top
// layer, restoring the side faces it borrowed.
func cornerEvict(pos Vec) []Move {
	for _, ax := range []Vec{{pos.X, 0, 0}, {0, 0, pos.Z}} {
		f, err := AxisFace(ax)
		if err != nil {
			continue
		}
		x := Move{Face: f, Turn: CW}
		if rotateCW(pos, ax).Y == 1 {
			return []Move{x, U2, x.Inverse()}
		}
		if rotateCCW(pos, ax).Y == 1 {
			return []Move{x.Inverse(), U2, x}
		}
	}
	return nil
}

// solveCorners completes the first layer. Each bottom corner is evicted to
// the top layer if it occupies the wrong bottom slot, aligned above its own
// slot with U turns, then driven in with the sexy-move trigger. A corner
// misoriented in its own slot goes through the trigger as well, which
// lifts and reinserts it one twist at a time.
func (s *solver) solveCorners() {
	for _, slot := range cornerSlots {
		a, b := slot[0], slot[1]
		id := PieceID(FaceD, a, b)
		targetTop := AxisU.Add(FaceAxis(a)).Add(FaceAxis(b))
		targetBottom := AxisD.Add(FaceAxis(a)).Add(FaceAxis(b))
		done := false
		for i := 0; i < cornerAttempts; i++ {
			if s.c.cornerSolved(a, b) {
				done = true
				break
			}
			p, _ := s.c.Find(id)
			switch {
			case p.Pos.Y == -1 && p.Pos != targetBottom:
				s.record(PhaseCorners, fmt.Sprintf("evict %s corner to the top layer", id),
					cornerEvict(p.Pos), id)
			case p.Pos.Y == 1 && p.Pos != targetTop:
				var mv []Move
				switch (topCornerIndex(targetTop) - topCornerIndex(p.Pos) + 4) % 4 {
				case 1:
					mv = []Move{U}
				case 2:
					mv = []Move{U2}
				default:
					mv = []Move{UPrime}
				}
				s.record(PhaseCorners, fmt.Sprintf("align %s corner above its slot", id), mv, id)
			default:
				x := Move{Face: cornerLiftFace(a, b), Turn: CW}
				s.record(PhaseCorners, fmt.Sprintf("insert %s corner into the %s%s slot", id, a, b),
					[]Move{x, U, x.Inverse(), UPrime}, id)
			}
		}
		if !done {
			s.unresolved = append(s.unresolved, id)
		}
	}
}
