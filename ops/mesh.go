package ops

import (
	"github.com/katalvlaran/tetmesh/meshcore"
	"github.com/katalvlaran/tetmesh/operation"
	"github.com/katalvlaran/tetmesh/predicates"
)

// Mesh is the view of *meshcore.Mesh the three operations in this
// package need: the operation.Mesh mutation primitives plus attribute
// read/write access and the exact-predicate oracle. Expressed as an
// interface (rather than importing *meshcore.Mesh concretely everywhere)
// so tests can substitute a fake the way operation's own driver tests do,
// though in practice every caller passes a *meshcore.Mesh.
type Mesh interface {
	operation.Mesh

	Oracle() predicates.Oracle

	VertexAttr(vid int) meshcore.VertexAttributes
	SetVertexAttr(vid int, a meshcore.VertexAttributes)
	SetVertexPos(vid int, p predicates.Point)

	TetAttr(tid int) meshcore.TetAttributes
	SetTetAttr(tid int, a meshcore.TetAttributes)

	FaceAttr(a, b, c int) (meshcore.FaceAttributes, bool)
	SetFaceAttr(a, b, c int, attr meshcore.FaceAttributes)
	DeleteFaceAttr(a, b, c int)
}

var _ Mesh = (*meshcore.Mesh)(nil)
