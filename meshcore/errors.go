package meshcore

import "errors"

// Sentinel errors returned by package meshcore. Callers branch on these
// with errors.Is; context is attached at call sites with fmt.Errorf's
// %w, never by constructing ad hoc string errors.
var (
	// ErrOutsideHull indicates the point locator could not find any leaf
	// tet containing a query point. Fatal for the insertion pass it
	// occurred in.
	ErrOutsideHull = errors.New("meshcore: point outside hull")

	// ErrBadTetID indicates a tet id argument is out of range.
	ErrBadTetID = errors.New("meshcore: tet id out of range")

	// ErrBadVertexID indicates a vertex id argument is out of range.
	ErrBadVertexID = errors.New("meshcore: vertex id out of range")

	// ErrTetRemoved indicates an operation referenced a tet that has
	// already been tombstoned.
	ErrTetRemoved = errors.New("meshcore: tet already removed")

	// ErrNonPositiveOrientation indicates a candidate tet's vertex
	// quadruple is not positively oriented under the exact orientation
	// predicate. Neither NewMesh nor AllocTetSlot reorders a quadruple;
	// both reject it with this error.
	ErrNonPositiveOrientation = errors.New("meshcore: tet is not positively oriented")

	// ErrIncidenceCorruption indicates an invariant check inside
	// Consolidate (or CheckInvariants) failed.
	ErrIncidenceCorruption = errors.New("meshcore: incidence invariant violated")
)
