package cubesolve

// Tracker wraps a Cube and watches milestone transitions as moves are
// applied.
type Tracker struct {
	cube              *Cube
	lastMilestone     Milestone
	highestMilestone  Milestone // monotonic, never goes backwards
	milestoneCallback func(m Milestone, key string)
}

// NewTracker creates a tracker starting from a solved cube.
func NewTracker() *Tracker {
	return &Tracker{
		cube:          NewCube(),
		lastMilestone: MilestoneSolved,
	}
}

// NewTrackerFrom creates a tracker starting from a copy of the given state.
func NewTrackerFrom(c *Cube) *Tracker {
	cube := c.Clone()
	m := cube.DetectMilestone()
	return &Tracker{
		cube:             cube,
		lastMilestone:    m,
		highestMilestone: m,
	}
}

// SetMilestoneCallback sets a callback that fires when a new milestone is
// reached for the first time.
func (t *Tracker) SetMilestoneCallback(cb func(m Milestone, key string)) {
	t.milestoneCallback = cb
}

// Reset returns the tracker to a solved cube.
func (t *Tracker) Reset() {
	t.cube = NewCube()
	t.lastMilestone = MilestoneSolved
	t.highestMilestone = MilestoneScrambled
}

// ApplyMove applies a move and checks for milestone transitions.
func (t *Tracker) ApplyMove(m Move) {
	t.cube.ApplyMove(m)
	t.checkTransition()
}

// ApplyMoves applies multiple moves.
func (t *Tracker) ApplyMoves(moves []Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

// checkTransition fires the callback when a new high milestone is reached.
// The raw milestone may go backwards mid-solve; the high-water mark never
// does.
func (t *Tracker) checkTransition() {
	current := t.cube.DetectMilestone()
	t.lastMilestone = current
	if current > t.highestMilestone {
		t.highestMilestone = current
		if t.milestoneCallback != nil {
			t.milestoneCallback(current, current.String())
		}
	}
}

// CurrentMilestone returns the milestone of the raw cube state.
func (t *Tracker) CurrentMilestone() Milestone {
	return t.cube.DetectMilestone()
}

// HighestMilestone returns the highest milestone reached so far.
func (t *Tracker) HighestMilestone() Milestone {
	return t.highestMilestone
}

// GetProgress returns the detailed progress of the current state.
func (t *Tracker) GetProgress() Progress {
	return t.cube.GetProgress()
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Cube returns the underlying cube for inspection.
func (t *Tracker) Cube() *Cube {
	return t.cube
}
