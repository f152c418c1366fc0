package insertion

import (
	"github.com/katalvlaran/tetmesh/meshcore"
	"github.com/katalvlaran/tetmesh/ops"
)

// Mesh is the view of *meshcore.Mesh the insertion driver needs: every
// capability ops.Mesh requires (so the dispatched operations can run)
// plus ForEachTet, which the default linear-scan hint source uses to
// find a starting tet with no AABB tree available.
type Mesh interface {
	ops.Mesh
	ForEachTet(f func(tid int))
}

var _ Mesh = (*meshcore.Mesh)(nil)
