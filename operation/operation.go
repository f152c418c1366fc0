package operation

import "github.com/katalvlaran/tetmesh/tuple"

// Operation is the capability record every local mesh edit implements:
// which tets it destroys, how many new vertex slots it needs, what
// replacement tets it produces, and the before/after attribute hooks.
// A single Operation value is used for exactly one call to
// CustomizedOperation; implementations are free to cache state between
// methods (see ops.SplitEdge, ops.SplitFace, ops.DivideTet).
type Operation interface {
	// RemovedTids declares which live tets this operation will destroy,
	// given the cursor CustomizedOperation was invoked with. Called
	// before any mutation.
	RemovedTids(cur tuple.Tuple) ([]int, error)

	// RequestVertSlots declares how many new vertex indices must be
	// allocated.
	RequestVertSlots() int

	// ReplacingTets returns the replacement tet vertex quadruples, given
	// the freshly allocated vertex slot ids, in the operation's own
	// convention-defined order.
	ReplacingTets(slots []int) ([][4]int, error)

	// Before is the user hook to snapshot attributes of the soon-to-be-
	// removed region. Returning false aborts the operation with no
	// state change.
	Before(cur tuple.Tuple) (bool, error)

	// After is the user hook to install attributes on the new region,
	// given cursors for every replacement tet in the same order
	// ReplacingTets produced them. Returning false is fatal: the mesh is
	// not rolled back, and the caller must treat it as a corrupt-mesh
	// error (see ErrAfterHookFailed).
	After(newCursors []tuple.Tuple) (bool, error)
}
