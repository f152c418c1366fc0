package locate

import (
	"github.com/katalvlaran/tetmesh/meshcore"
	"github.com/katalvlaran/tetmesh/predicates"
	"github.com/katalvlaran/tetmesh/tuple"
)

// Mesh is the view of *meshcore.Mesh this package needs: connectivity,
// the exact-predicate oracle and vertex positions. Expressed as an
// interface for the same reason package ops does — testability against
// a fake without a hard dependency on meshcore's concrete type.
type Mesh interface {
	tuple.Connectivity
	Oracle() predicates.Oracle
	VertexAttr(vid int) meshcore.VertexAttributes
}

var _ Mesh = (*meshcore.Mesh)(nil)

func posOf(m Mesh, vid int) predicates.Point {
	return m.VertexAttr(vid).PosF
}
