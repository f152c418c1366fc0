package locate

import "github.com/katalvlaran/tetmesh/predicates"

// Kind discriminates a Configuration's classification of a point against
// a tet.
type Kind int

const (
	// Interior means the point lies strictly inside the tet.
	Interior Kind = iota
	// Vertex means the point coincides with one of the tet's vertices.
	Vertex
	// Edge means the point lies on one of the tet's edges (excluding its
	// endpoints).
	Edge
	// Face means the point lies on one of the tet's faces (excluding its
	// boundary).
	Face
)

// Configuration is the point locator's classification of a point
// against a tet's vertex quadruple: which global vertex/edge/face it
// coincides with, or Interior with no further detail.
type Configuration struct {
	Kind Kind

	// Vid is set when Kind == Vertex.
	Vid int

	// U, W are set when Kind == Edge (the edge's two global endpoints).
	U, W int

	// A, B, C are set when Kind == Face (the face's three global
	// vertices, in the order the classifier found them).
	A, B, C int
}

// Classify determines where point p falls relative to the tet with
// vertex quadruple vids, by testing vertex coincidence first, then for
// each face (in local-vertex order 0..3) testing coplanarity and, within
// a coplanar face, collinearity with each of its three edges in turn.
// The first zero orientation encountered wins; within that face, the
// first collinear pair wins. This tie-break order must stay fixed since
// classification feeds the split-history descent and must be
// deterministic.
func Classify(oracle predicates.Oracle, posOf func(vid int) predicates.Point, vids [4]int, p predicates.Point) Configuration {
	for i := 0; i < 4; i++ {
		if p.Equal(posOf(vids[i])) {
			return Configuration{Kind: Vertex, Vid: vids[i]}
		}
	}

	for i := 0; i < 4; i++ {
		a := vids[(i+1)%4]
		b := vids[(i+2)%4]
		c := vids[(i+3)%4]

		if oracle.Orient3D(p, posOf(a), posOf(b), posOf(c)) != 0 {
			continue
		}

		for j := 0; j < 3; j++ {
			u := vids[(i+1+j)%4]
			w := vids[(i+1+(j+1)%3)%4]
			if oracle.PointsAreCollinear3D(p, posOf(u), posOf(w)) {
				return Configuration{Kind: Edge, U: u, W: w}
			}
		}
		return Configuration{Kind: Face, A: a, B: b, C: c}
	}

	return Configuration{Kind: Interior}
}

// ClassifyInTet classifies p against the live tet tid of m.
func ClassifyInTet(m Mesh, tid int, p predicates.Point) (Configuration, bool) {
	vids, ok := m.TetVids(tid)
	if !ok {
		return Configuration{}, false
	}
	return Classify(m.Oracle(), func(v int) predicates.Point { return posOf(m, v) }, vids, p), true
}

// ContainsPoint is the containment test: p lies
// in the tet with vertex quadruple (a,b,c,d) — assumed positively
// oriented — iff substituting p for each vertex in turn yields a
// non-negative orientation. A zero result for one or more substitutions
// indicates a degenerate (on-boundary) configuration, still reported as
// contained.
func ContainsPoint(oracle predicates.Oracle, posOf func(vid int) predicates.Point, vids [4]int, p predicates.Point) bool {
	a, b, c, d := posOf(vids[0]), posOf(vids[1]), posOf(vids[2]), posOf(vids[3])

	if oracle.Orient3D(p, b, c, d) < 0 {
		return false
	}
	if oracle.Orient3D(a, p, c, d) < 0 {
		return false
	}
	if oracle.Orient3D(a, b, p, d) < 0 {
		return false
	}
	if oracle.Orient3D(a, b, c, p) < 0 {
		return false
	}
	return true
}

// TetContainsPoint tests whether the live tet tid of m contains p.
func TetContainsPoint(m Mesh, tid int, p predicates.Point) (bool, bool) {
	vids, ok := m.TetVids(tid)
	if !ok {
		return false, false
	}
	return ContainsPoint(m.Oracle(), func(v int) predicates.Point { return posOf(m, v) }, vids, p), true
}
