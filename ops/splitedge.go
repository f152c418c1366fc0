package ops

import (
	"sort"

	"github.com/katalvlaran/tetmesh/meshcore"
	"github.com/katalvlaran/tetmesh/predicates"
	"github.com/katalvlaran/tetmesh/tuple"
)

// SplitEdgeOption configures a SplitEdge operation, following the same
// functional-options shape the rest of this module's configuration uses.
type SplitEdgeOption func(*SplitEdge)

// WithPosition overrides the new vertex's position; without it, SplitEdge
// places the new vertex at the midpoint of the split edge.
func WithPosition(p predicates.Point) SplitEdgeOption {
	return func(s *SplitEdge) {
		s.pos = p
		s.hasPos = true
	}
}

type cachedFace struct {
	tri  [3]int
	attr meshcore.FaceAttributes
	has  bool
}

// SplitEdge implements operation.Operation by replacing every tet
// incident to the cursor's edge with two children, substituting one
// endpoint with a freshly allocated vertex in turn.
type SplitEdge struct {
	m Mesh

	pos    predicates.Point
	hasPos bool

	u, w    int
	removed []int
	newVid  int

	surfaceFlag bool
	faces       []cachedFace
}

// NewSplitEdge constructs a SplitEdge operation against m.
func NewSplitEdge(m Mesh, opts ...SplitEdgeOption) *SplitEdge {
	s := &SplitEdge{m: m}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewVertexID returns the vertex slot allocated for the split point.
// Only meaningful after ReplacingTets has run.
func (s *SplitEdge) NewVertexID() int { return s.newVid }

func (s *SplitEdge) edgeRing(cur tuple.Tuple) (u, w int, ring []int) {
	ends, _ := tuple.EdgeVertices(s.m, cur)
	u = cur.Vid
	w = ends[0]
	if w == u {
		w = ends[1]
	}
	ring = intersectTwo(s.m.VertexIncidence(u), s.m.VertexIncidence(w))
	return
}

// Before caches the edge's surface flag (derived from whether any
// incident face spanning both endpoints is surface-tagged) and every
// distinct face attribute among the removed tets, keyed by sorted
// triple, so After can redistribute them once the edge is gone.
func (s *SplitEdge) Before(cur tuple.Tuple) (bool, error) {
	u, w, ring := s.edgeRing(cur)
	s.u, s.w, s.removed = u, w, ring

	seen := make(map[[3]int]bool)
	for _, tid := range ring {
		vids, ok := s.m.TetVids(tid)
		if !ok {
			continue
		}
		for _, tri := range tetFaceTriples(vids) {
			if seen[tri] {
				continue
			}
			seen[tri] = true
			attr, has := s.m.FaceAttr(tri[0], tri[1], tri[2])
			if has && attr.Surface && containsBoth(tri, u, w) {
				s.surfaceFlag = true
			}
			s.faces = append(s.faces, cachedFace{tri: tri, attr: attr, has: has})
		}
	}
	return true, nil
}

// RemovedTids returns every tet in the edge's incidence ring.
func (s *SplitEdge) RemovedTids(cur tuple.Tuple) ([]int, error) {
	if s.removed == nil {
		_, _, ring := s.edgeRing(cur)
		return ring, nil
	}
	return s.removed, nil
}

// RequestVertSlots requests the single new midpoint vertex.
func (s *SplitEdge) RequestVertSlots() int { return 1 }

// ReplacingTets installs the new vertex's position first — so that the
// replacement tets the driver is about to allocate pass their
// orientation check against real coordinates rather than a fresh slot's
// zero value — then substitutes each endpoint with the new vertex in
// turn, producing two children per removed tet.
func (s *SplitEdge) ReplacingTets(slots []int) ([][4]int, error) {
	nv := slots[0]
	s.newVid = nv

	pos := s.pos
	if !s.hasPos {
		pos = predicates.Midpoint(s.m.VertexAttr(s.u).PosF, s.m.VertexAttr(s.w).PosF)
	}
	s.pos, s.hasPos = pos, true
	s.m.SetVertexPos(nv, pos)

	out := make([][4]int, 0, 2*len(s.removed))
	for _, tid := range s.removed {
		vids, ok := s.m.TetVids(tid)
		if !ok {
			continue
		}
		iu := indexOf(vids, s.u)
		iw := indexOf(vids, s.w)
		if iu < 0 || iw < 0 {
			return nil, ErrNotAnEdge
		}

		child1 := vids
		child1[iu] = nv
		child2 := vids
		child2[iw] = nv
		out = append(out, child1, child2)
	}
	return out, nil
}

// After tags the new vertex's surface flag (its position was already
// installed by ReplacingTets), then redistributes every cached face
// attribute: faces touching neither endpoint are untouched, faces
// touching exactly one endpoint keep their key (the substitution never
// removes that endpoint from the face), and faces touching both
// endpoints are split into the two substituted keys, each inheriting the
// old attribute, with the old combined key deleted.
func (s *SplitEdge) After(newCursors []tuple.Tuple) (bool, error) {
	va := s.m.VertexAttr(s.newVid)
	va.OnSurface = s.surfaceFlag
	s.m.SetVertexAttr(s.newVid, va)

	for _, f := range s.faces {
		switch countMatches(f.tri, s.u, s.w) {
		case 0, 1:
			// key unchanged; the existing attribute record (if any)
			// remains correctly associated.
		case 2:
			if !f.has {
				continue
			}
			for _, end := range [2]int{s.u, s.w} {
				nt := substitute(f.tri, end, s.newVid)
				s.m.SetFaceAttr(nt[0], nt[1], nt[2], f.attr)
			}
			s.m.DeleteFaceAttr(f.tri[0], f.tri[1], f.tri[2])
		}
	}

	for _, c := range newCursors {
		recomputeQuality(s.m, c.Tid)
	}
	return true, nil
}

func tetFaceTriples(vids [4]int) [][3]int {
	idx := [4][3]int{{1, 2, 3}, {0, 2, 3}, {0, 1, 3}, {0, 1, 2}}
	out := make([][3]int, 4)
	for i, ix := range idx {
		tri := [3]int{vids[ix[0]], vids[ix[1]], vids[ix[2]]}
		sort.Ints(tri[:])
		out[i] = tri
	}
	return out
}

func containsBoth(tri [3]int, u, w int) bool {
	return countMatches(tri, u, w) == 2
}

func countMatches(tri [3]int, u, w int) int {
	n := 0
	for _, v := range tri {
		if v == u || v == w {
			n++
		}
	}
	return n
}

func substitute(tri [3]int, from, to int) [3]int {
	for i, v := range tri {
		if v == from {
			tri[i] = to
		}
	}
	return tri
}

func indexOf(vids [4]int, v int) int {
	for i, x := range vids {
		if x == v {
			return i
		}
	}
	return -1
}

func intersectTwo(a, b []int) []int {
	set := make(map[int]bool, len(a))
	for _, x := range a {
		set[x] = true
	}
	var out []int
	for _, x := range b {
		if set[x] {
			out = append(out, x)
		}
	}
	return out
}

func recomputeQuality(m Mesh, tid int) {
	vids, ok := m.TetVids(tid)
	if !ok {
		return
	}
	p0 := m.VertexAttr(vids[0]).PosF
	p1 := m.VertexAttr(vids[1]).PosF
	p2 := m.VertexAttr(vids[2]).PosF
	p3 := m.VertexAttr(vids[3]).PosF

	ta := m.TetAttr(tid)
	ta.Quality = Quality(p0, p1, p2, p3)
	m.SetTetAttr(tid, ta)
}
