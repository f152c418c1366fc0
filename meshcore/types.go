package meshcore

import (
	"sync"

	"github.com/katalvlaran/tetmesh/attrs"
	"github.com/katalvlaran/tetmesh/predicates"
)

// vertexConnectivity mirrors wmtk::TriMesh::VertexConnectivity,
// generalized to tets: the list of tets incident to this vertex and a
// removal flag.
type vertexConnectivity struct {
	connTets []int
	removed  bool
}

// tetConnectivity mirrors wmtk::TriMesh::TriangleConnectivity,
// generalized to tets: the oriented vertex quadruple, a removal flag and
// a monotonically increasing mutation hash.
type tetConnectivity struct {
	vids    [4]int
	removed bool
	hash    uint64
}

// Mesh is the connectivity store plus attribute tables for a tetrahedral
// complex. muVert guards vertex connectivity and the vertex attribute
// table; muTet guards tet connectivity and the tet/face attribute
// tables, splitting the lock by cell kind so a reader walking tets never
// blocks on vertex-table writers and vice versa.
type Mesh struct {
	muVert sync.RWMutex
	muTet  sync.RWMutex

	oracle predicates.Oracle

	vertices []vertexConnectivity
	tets     []tetConnectivity

	vertexAttrs *attrs.IndexTable[VertexAttributes]
	tetAttrs    *attrs.IndexTable[TetAttributes]
	faceAttrs   *attrs.FaceTable[FaceAttributes]
}

// Oracle returns the exact-predicate oracle this mesh was constructed
// with.
func (m *Mesh) Oracle() predicates.Oracle { return m.oracle }
