package ir

import "errors"

var (
	// ErrNoNextEdge is returned when linking from a vertex kind without a "next" edge
	ErrNoNextEdge = errors.New("vertex has no next edge")
	// ErrNotStart is returned when a non-Start vertex is used as a graph's start
	ErrNotStart = errors.New("vertex is not a Start vertex")
	// ErrNotCall is returned when adding an argument to a non-Call vertex
	ErrNotCall = errors.New("vertex is not a Call vertex")
	// ErrNotPhi is returned when adding an operand to a non-Phi vertex
	ErrNotPhi = errors.New("vertex is not a Phi vertex")
	// ErrPhiLabel is returned when relabelling a Phi operand edge
	ErrPhiLabel = errors.New("phi operand labels are derived from their branch")
)
