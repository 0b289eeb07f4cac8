package cubesolve

import "errors"

// Common errors returned by the cubesolve package.
var (
	// ErrInvalidNotation is returned when a move string cannot be parsed.
	ErrInvalidNotation = errors.New("cubesolve: invalid move notation")

	// ErrUnknownPiece is returned when a piece id does not name one of the
	// 26 pieces.
	ErrUnknownPiece = errors.New("cubesolve: unknown piece id")

	// ErrNotAnAxis is returned when a vector is not one of the six unit
	// face normals.
	ErrNotAnAxis = errors.New("cubesolve: vector is not a face axis")
)
