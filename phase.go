package cubesolve

// Phase identifies one stage of the layer-by-layer solving pipeline.
// Phases are ordered, so they compare with < and >.
type Phase int

const (
	// PhaseCross places the four bottom edges.
	PhaseCross Phase = iota

	// PhaseCorners places and orients the four first-layer corners.
	PhaseCorners

	// PhaseEdges places the four second-layer edges.
	PhaseEdges

	// PhaseOrientLast orients the last layer so the top face is uniform.
	PhaseOrientLast

	// PhasePermuteLast permutes the last-layer pieces into their slots.
	PhasePermuteLast
)

// String returns a short identifier for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseCross:
		return "cross"
	case PhaseCorners:
		return "first_corners"
	case PhaseEdges:
		return "second_edges"
	case PhaseOrientLast:
		return "orient_last"
	case PhasePermuteLast:
		return "permute_last"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseCross:
		return "Bottom Cross"
	case PhaseCorners:
		return "First-Layer Corners"
	case PhaseEdges:
		return "Second-Layer Edges"
	case PhaseOrientLast:
		return "Last-Layer Orientation"
	case PhasePermuteLast:
		return "Last-Layer Permutation"
	default:
		return "Unknown"
	}
}

// ParsePhase maps a short identifier back to its Phase.
func ParsePhase(s string) (Phase, bool) {
	for p := PhaseCross; p <= PhasePermuteLast; p++ {
		if p.String() == s {
			return p, true
		}
	}
	return 0, false
}
