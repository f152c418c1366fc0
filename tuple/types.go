package tuple

import "errors"

// ErrStaleCursor names the condition of a Tuple used after the
// connectivity it refers to has been mutated. This is a programmer
// error — the contract is that no operation may carry a Tuple across a
// mutation without re-validating it first. No function in this package
// returns it: IsValid reports staleness as a bool.
var ErrStaleCursor = errors.New("tuple: stale cursor")

// ErrNoSuchCell names the condition of no tet in the given connectivity
// realizing a requested cell. No function in this package returns it:
// the From* constructors report a missing cell with ok == false.
var ErrNoSuchCell = errors.New("tuple: no tet realizes the requested cell")

// Tuple locates a (vertex, local edge, local face, tet) incidence chain.
//
// Vid is a global vertex id. Eid and Fid are LOCAL indices into the tet
// identified by Tid: Eid in [0,6) indexes one of the tet's six edges,
// Fid in [0,4) indexes one of its four faces (see localEdges/localFaces
// in switch.go for the canonical numbering). hash is a snapshot of the
// tet's hash at construction time, used by IsValid.
type Tuple struct {
	Vid int
	Eid int
	Fid int
	Tid int
	hash uint64
}

// Hash exposes the cached hash, mainly for tests that need to assert a
// Tuple went stale.
func (t Tuple) Hash() uint64 { return t.hash }

// Connectivity is the minimal read-only view of a tetrahedral mesh that
// the tuple package needs in order to compute switch operations. It is
// implemented by meshcore.Mesh; the tuple package itself has no
// dependency on meshcore, which keeps the two packages acyclic.
type Connectivity interface {
	// TetVids returns the tet's oriented vertex quadruple. ok is false
	// when tid is out of range or the tet has been removed.
	TetVids(tid int) (vids [4]int, ok bool)

	// TetHash returns the tet's current mutation counter.
	TetHash(tid int) uint64

	// VertexIncidence returns the (unordered) list of live tet ids
	// incident to vid.
	VertexIncidence(vid int) []int
}

// IsValid reports whether t still refers to a live, unmutated tet.
func IsValid(conn Connectivity, t Tuple) bool {
	_, ok := conn.TetVids(t.Tid)
	if !ok {
		return false
	}
	return conn.TetHash(t.Tid) == t.hash
}
