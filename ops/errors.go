package ops

import "errors"

// Sentinel errors returned by the operations in this package. Callers
// branch with errors.Is.
var (
	// ErrBoundaryFace indicates SplitFace was asked to split a face with
	// only one incident tet. Splitting a boundary face is out of scope
	// for this core (surface reconstruction lies outside it).
	ErrBoundaryFace = errors.New("ops: cannot split a boundary face")

	// ErrNotAnEdge indicates the cursor's vertex does not sit on a shared
	// edge of its tet, or the two endpoints requested for SplitEdge do
	// not name one of the tet's six edges.
	ErrNotAnEdge = errors.New("ops: cursor does not address a tet edge")

	// ErrStaleCursorTet indicates the cursor's tet could not be resolved
	// to a live vertex quadruple, most likely because it was already
	// removed by a prior operation in the same pass.
	ErrStaleCursorTet = errors.New("ops: cursor's tet is not live")
)
