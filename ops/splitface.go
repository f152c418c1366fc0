package ops

import (
	"github.com/katalvlaran/tetmesh/meshcore"
	"github.com/katalvlaran/tetmesh/predicates"
	"github.com/katalvlaran/tetmesh/tuple"
)

// SplitFace implements operation.Operation by replacing the two tets
// sharing the cursor's face with six children, substituting each of the
// three face vertices with a freshly allocated vertex in turn.
type SplitFace struct {
	m   Mesh
	pos predicates.Point

	faceVerts [3]int
	tids      [2]int

	newVid       int
	splitAttr    meshcore.FaceAttributes
	hasSplitAttr bool
	cached       []cachedFace
}

// NewSplitFace constructs a SplitFace operation against m. The new
// vertex is placed at pos by ReplacingTets, before the replacement tets
// are allocated.
func NewSplitFace(m Mesh, pos predicates.Point) *SplitFace {
	return &SplitFace{m: m, pos: pos}
}

// NewVertexID returns the vertex slot allocated at the split point. Only
// meaningful after ReplacingTets has run.
func (s *SplitFace) NewVertexID() int { return s.newVid }

func (s *SplitFace) resolve(cur tuple.Tuple) ([3]int, [2]int, error) {
	tri, ok := tuple.FaceVertices(s.m, cur)
	if !ok {
		return tri, [2]int{}, ErrStaleCursorTet
	}
	other, ok := tuple.SwitchTet(s.m, cur)
	if !ok {
		return tri, [2]int{}, ErrBoundaryFace
	}
	return tri, [2]int{cur.Tid, other.Tid}, nil
}

// Before caches the split face's own attribute plus every distinct face
// attribute of the two removed tets, so After can redistribute them.
func (s *SplitFace) Before(cur tuple.Tuple) (bool, error) {
	tri, tids, err := s.resolve(cur)
	if err != nil {
		return false, err
	}
	s.faceVerts, s.tids = tri, tids
	s.splitAttr, s.hasSplitAttr = s.m.FaceAttr(tri[0], tri[1], tri[2])

	seen := make(map[[3]int]bool)
	for _, tid := range s.tids {
		vids, ok := s.m.TetVids(tid)
		if !ok {
			continue
		}
		for _, t := range tetFaceTriples(vids) {
			if seen[t] {
				continue
			}
			seen[t] = true
			attr, has := s.m.FaceAttr(t[0], t[1], t[2])
			s.cached = append(s.cached, cachedFace{tri: t, attr: attr, has: has})
		}
	}
	return true, nil
}

// RemovedTids returns the two tets sharing the split face.
func (s *SplitFace) RemovedTids(cur tuple.Tuple) ([]int, error) {
	if s.tids == ([2]int{}) {
		_, tids, err := s.resolve(cur)
		if err != nil {
			return nil, err
		}
		return tids[:], nil
	}
	return s.tids[:], nil
}

// RequestVertSlots requests the single new vertex at the split point.
func (s *SplitFace) RequestVertSlots() int { return 1 }

// ReplacingTets installs the new vertex's position first — so the
// replacement tets about to be allocated pass their orientation check
// against the real split point rather than a fresh slot's zero value —
// then substitutes each of the three split-face vertices with the new
// vertex in turn, three children per removed tet.
func (s *SplitFace) ReplacingTets(slots []int) ([][4]int, error) {
	nv := slots[0]
	s.newVid = nv
	s.m.SetVertexPos(nv, s.pos)

	out := make([][4]int, 0, 6)
	for _, tid := range s.tids {
		vids, ok := s.m.TetVids(tid)
		if !ok {
			continue
		}
		for _, fv := range s.faceVerts {
			i := indexOf(vids, fv)
			if i < 0 {
				return nil, ErrNotAnEdge
			}
			child := vids
			child[i] = nv
			out = append(out, child)
		}
	}
	return out, nil
}

// After tags the new vertex (its position was already installed by
// ReplacingTets) with the split face's surface and bbox tags, then for
// every cached face: the split face itself fans out into three new faces
// (one per substituted face-vertex) inheriting its attribute; a face
// with exactly one vertex off the split face persists unchanged under
// its own key in the child that substituted the missing face-vertex, and
// additionally contributes two new internal faces (substituting each of
// its two face-vertices with the new vertex) that get a reset attribute;
// a face with both off-vertices present is left untouched under the
// same triple.
func (s *SplitFace) After(newCursors []tuple.Tuple) (bool, error) {
	va := s.m.VertexAttr(s.newVid)
	if s.hasSplitAttr {
		va.OnSurface = s.splitAttr.Surface
		if s.splitAttr.BBoxFace >= 0 {
			va.OnBBoxFaces = append(va.OnBBoxFaces, s.splitAttr.BBoxFace)
		}
	}
	s.m.SetVertexAttr(s.newVid, va)

	for _, f := range s.cached {
		off := verticesNotIn(f.tri, s.faceVerts)
		switch len(off) {
		case 0:
			if !f.has {
				continue
			}
			for _, fv := range s.faceVerts {
				nt := substitute(f.tri, fv, s.newVid)
				s.m.SetFaceAttr(nt[0], nt[1], nt[2], f.attr)
			}
			s.m.DeleteFaceAttr(f.tri[0], f.tri[1], f.tri[2])
		case 1:
			var reset meshcore.FaceAttributes
			reset.Reset()
			for _, p := range removeOne(f.tri, off[0]) {
				nt := substitute(f.tri, p, s.newVid)
				s.m.SetFaceAttr(nt[0], nt[1], nt[2], reset)
			}
		default:
			// both off-vertices present (or a defensive no-op for an
			// unreachable configuration): preserved under the same triple.
		}
	}

	for _, c := range newCursors {
		recomputeQuality(s.m, c.Tid)
	}
	return true, nil
}

func verticesNotIn(tri, set [3]int) []int {
	var out []int
	for _, v := range tri {
		found := false
		for _, s := range set {
			if v == s {
				found = true
				break
			}
		}
		if !found {
			out = append(out, v)
		}
	}
	return out
}

func removeOne(tri [3]int, x int) []int {
	out := make([]int, 0, 2)
	for _, v := range tri {
		if v != x {
			out = append(out, v)
		}
	}
	return out
}
