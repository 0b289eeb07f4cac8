package cubesolve

// Vec is an integer vector in the cube's coordinate space.
// Piece positions and sticker normals use components in {-1, 0, 1}.
// The six face centers sit on the unit axes.
type Vec struct {
	X, Y, Z int
}

// Unit axes for the six faces in the solved orientation.
var (
	AxisU = Vec{0, 1, 0}  // Up
	AxisD = Vec{0, -1, 0} // Down
	AxisF = Vec{0, 0, 1}  // Front
	AxisB = Vec{0, 0, -1} // Back
	AxisR = Vec{1, 0, 0}  // Right
	AxisL = Vec{-1, 0, 0} // Left
)

// Add returns the component-wise sum of v and o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k int) Vec {
	return Vec{v.X * k, v.Y * k, v.Z * k}
}

// Neg returns the negation of v.
func (v Vec) Neg() Vec {
	return Vec{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) int {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v x o.
func (v Vec) Cross(o Vec) Vec {
	return Vec{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// rotateCW rotates v a quarter turn about the unit axis a, clockwise as
// seen from outside the face whose outward normal is a.
// For unit axes, a*(a.v) - a x v is an exact integer rotation.
func rotateCW(v, a Vec) Vec {
	d := a.Dot(v)
	c := a.Cross(v)
	return Vec{a.X*d - c.X, a.Y*d - c.Y, a.Z*d - c.Z}
}

// rotateCCW is the inverse of rotateCW about the same axis.
func rotateCCW(v, a Vec) Vec {
	d := a.Dot(v)
	c := a.Cross(v)
	return Vec{a.X*d + c.X, a.Y*d + c.Y, a.Z*d + c.Z}
}

// FaceAxis returns the outward normal of a face.
func FaceAxis(f Face) Vec {
	switch f {
	case FaceU:
		return AxisU
	case FaceD:
		return AxisD
	case FaceF:
		return AxisF
	case FaceB:
		return AxisB
	case FaceR:
		return AxisR
	default:
		return AxisL
	}
}

// AxisFace returns the face whose outward normal is v.
func AxisFace(v Vec) (Face, error) {
	switch v {
	case AxisU:
		return FaceU, nil
	case AxisD:
		return FaceD, nil
	case AxisF:
		return FaceF, nil
	case AxisB:
		return FaceB, nil
	case AxisR:
		return FaceR, nil
	case AxisL:
		return FaceL, nil
	default:
		return "", ErrNotAnAxis
	}
}
