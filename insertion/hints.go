package insertion

import (
	"github.com/katalvlaran/tetmesh/locate"
	"github.com/katalvlaran/tetmesh/predicates"
)

// HintSource stands in for an external spatial index (an AABB tree or
// similar): given a point, it proposes a starting tet for the
// split-history descent. ok is false when the source has no candidate
// at all, which the driver treats the same as an outside-hull result.
type HintSource interface {
	PointQuery(p predicates.Point) (tid int, ok bool)
}

// LinearScanHintSource is the standalone default: it tests every live
// tet for containment and returns the first match. Adequate for the
// test suite and small meshes; real callers are expected to substitute
// an actual spatial index.
type LinearScanHintSource struct {
	m Mesh
}

// NewLinearScanHintSource constructs a HintSource that brute-force scans m.
func NewLinearScanHintSource(m Mesh) *LinearScanHintSource {
	return &LinearScanHintSource{m: m}
}

// PointQuery implements HintSource.
func (h *LinearScanHintSource) PointQuery(p predicates.Point) (int, bool) {
	found := -1
	h.m.ForEachTet(func(tid int) {
		if found != -1 {
			return
		}
		if ok, live := locate.TetContainsPoint(h.m, tid, p); live && ok {
			found = tid
		}
	})
	if found == -1 {
		return 0, false
	}
	return found, true
}
