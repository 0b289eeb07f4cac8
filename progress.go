package cubesolve

// Milestone identifies how far a cube state has progressed through the
// layer-by-layer method. Milestones are ordered from Scrambled to Solved,
// allowing comparison with < and > operators.
type Milestone int

const (
	// MilestoneScrambled indicates no layer is complete yet.
	MilestoneScrambled Milestone = iota

	// MilestoneCross indicates the bottom cross is complete.
	// The 4 bottom edges sit in their slots with Yellow facing down.
	MilestoneCross

	// MilestoneFirstLayer indicates the whole bottom layer is complete.
	MilestoneFirstLayer

	// MilestoneSecondLayer indicates the middle layer edges are placed.
	MilestoneSecondLayer

	// MilestoneTopOriented indicates the top face shows uniform White.
	MilestoneTopOriented

	// MilestoneSolved indicates the cube is completely solved.
	MilestoneSolved
)

// String returns a short identifier for the milestone.
func (m Milestone) String() string {
	switch m {
	case MilestoneScrambled:
		return "scrambled"
	case MilestoneCross:
		return "cross"
	case MilestoneFirstLayer:
		return "first_layer"
	case MilestoneSecondLayer:
		return "second_layer"
	case MilestoneTopOriented:
		return "top_oriented"
	case MilestoneSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the milestone.
func (m Milestone) DisplayName() string {
	switch m {
	case MilestoneScrambled:
		return "Scrambled"
	case MilestoneCross:
		return "Bottom Cross"
	case MilestoneFirstLayer:
		return "First Layer"
	case MilestoneSecondLayer:
		return "Second Layer"
	case MilestoneTopOriented:
		return "Top Face Oriented"
	case MilestoneSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// IsComplete returns true if the cube is solved.
func (m Milestone) IsComplete() bool {
	return m == MilestoneSolved
}

// Progress reports which milestones a cube state has reached.
type Progress struct {
	Cross       bool
	FirstLayer  bool
	SecondLayer bool
	TopOriented bool
	Solved      bool
}

// crossEdgeSolved reports whether the bottom edge of side face s is in its
// slot with the bottom color facing down.
func (c *Cube) crossEdgeSolved(s Face) bool {
	p, err := c.Find(PieceID(FaceD, s))
	if err != nil {
		return false
	}
	if p.Pos != AxisD.Add(FaceAxis(s)) {
		return false
	}
	n, ok := p.NormalOf(Yellow)
	return ok && n == AxisD
}

// cornerSolved reports whether the bottom corner between side faces a and b
// is in its slot with the bottom color facing down.
func (c *Cube) cornerSolved(a, b Face) bool {
	p, err := c.Find(PieceID(FaceD, a, b))
	if err != nil {
		return false
	}
	if p.Pos != AxisD.Add(FaceAxis(a)).Add(FaceAxis(b)) {
		return false
	}
	n, ok := p.NormalOf(Yellow)
	return ok && n == AxisD
}

// middleEdgeSolved reports whether the middle edge between side faces a and
// b is in its slot with matching orientation.
func (c *Cube) middleEdgeSolved(a, b Face) bool {
	p, err := c.Find(PieceID(a, b))
	if err != nil {
		return false
	}
	if p.Pos != FaceAxis(a).Add(FaceAxis(b)) {
		return false
	}
	n, ok := p.NormalOf(CanonicalColor(a))
	return ok && n == FaceAxis(a)
}

// crossDone reports whether all four bottom edges are solved.
func (c *Cube) crossDone() bool {
	for _, s := range sideFaces {
		if !c.crossEdgeSolved(s) {
			return false
		}
	}
	return true
}

// firstLayerDone reports whether the cross and all bottom corners are solved.
func (c *Cube) firstLayerDone() bool {
	if !c.crossDone() {
		return false
	}
	for _, slot := range cornerSlots {
		if !c.cornerSolved(slot[0], slot[1]) {
			return false
		}
	}
	return true
}

// secondLayerDone reports whether the middle layer edges are solved.
func (c *Cube) secondLayerDone() bool {
	for _, slot := range cornerSlots {
		if !c.middleEdgeSolved(slot[0], slot[1]) {
			return false
		}
	}
	return true
}

// topOriented reports whether every top-layer sticker facing up is White.
func (c *Cube) topOriented() bool {
	for x := -1; x <= 1; x++ {
		for z := -1; z <= 1; z++ {
			p := c.At(Vec{x, 1, z})
			if p.Stickers[AxisU] != White {
				return false
			}
		}
	}
	return true
}

// DetectMilestone returns the furthest milestone this state has reached.
// Milestones are cumulative: the second layer only counts once the first
// layer below it is intact.
func (c *Cube) DetectMilestone() Milestone {
	if !c.crossDone() {
		return MilestoneScrambled
	}
	if !c.firstLayerDone() {
		return MilestoneCross
	}
	if !c.secondLayerDone() {
		return MilestoneFirstLayer
	}
	if !c.topOriented() {
		return MilestoneSecondLayer
	}
	if !c.IsSolved() {
		return MilestoneTopOriented
	}
	return MilestoneSolved
}

// GetProgress returns the detailed milestone breakdown for this state.
func (c *Cube) GetProgress() Progress {
	cross := c.crossDone()
	first := cross && c.firstLayerDone()
	second := first && c.secondLayerDone()
	oriented := second && c.topOriented()
	return Progress{
		Cross:       cross,
		FirstLayer:  first,
		SecondLayer: second,
		TopOriented: oriented,
		Solved:      oriented && c.IsSolved(),
	}
}
