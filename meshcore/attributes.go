package meshcore

import "github.com/katalvlaran/tetmesh/predicates"

// VertexAttributes is the per-vertex payload carried on every mesh
// vertex.
type VertexAttributes struct {
	// PosF is the double-precision position, always present.
	PosF predicates.Point

	// Rounded reports whether PosF is considered geometrically valid.
	Rounded bool

	// OnSurface marks the vertex as lying on the input surface.
	OnSurface bool

	// OnBoundary marks the vertex as lying on the mesh's outer boundary.
	OnBoundary bool

	// OnBBoxFaces lists bounding-box face indices this vertex lies on;
	// empty when interior.
	OnBBoxFaces []int

	// Sizing is a scalar sizing-field value consumed by the (external)
	// sizing-field adaptation pass.
	Sizing float64

	// Freeze excludes the vertex from position updates by higher-level
	// smoothing passes.
	Freeze bool

	// PartitionID supports the future concurrent mesh-improvement layer:
	// a local operation's working set is bounded by the partitions its
	// removed_tids touch (see Mesh.PartitionLockOrder).
	PartitionID int
}

// FaceAttributes is the per-face payload, keyed externally by
// attrs.FaceKey (the sorted vertex triple).
type FaceAttributes struct {
	// Surface marks the face as part of the input surface.
	Surface bool

	// BBoxFace is the bounding-box face index this face lies on, or -1
	// when internal.
	BBoxFace int

	// OppositeTetID is a cache hint for the tet on the other side of
	// this face. It is never a source of truth: incidence lists remain
	// authoritative, and stale values here are harmless.
	OppositeTetID int
}

// Reset clears the tags that identify a face as a mesh boundary,
// leaving it as a plain internal face.
func (f *FaceAttributes) Reset() {
	f.Surface = false
	f.BBoxFace = -1
	f.OppositeTetID = -1
}

// TetAttributes is the per-tet payload carried on every live tet,
// including a free-form Scalar slot for caller-defined sizing fields.
type TetAttributes struct {
	// Quality is a recomputed shape-quality scalar; see ops.Quality.
	Quality float64

	// Outside marks a tet classified as outside the input domain by the
	// (external) filter_outside pass.
	Outside bool

	// Scalar is a free-form scalar slot for caller-defined use.
	Scalar float64
}
