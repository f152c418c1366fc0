package tuple

import "sort"

// FromTet returns the canonical cursor for a tet: vertex v0, the local
// edge (v0,v1), and the local face {v0,v1,v2}.
func FromTet(conn Connectivity, tid int) (Tuple, bool) {
	vids, ok := conn.TetVids(tid)
	if !ok {
		return Tuple{}, false
	}
	return Tuple{
		Vid:  vids[0],
		Eid:  2, // local edge (v0,v1)
		Fid:  3, // local face {v0,v1,v2}
		Tid:  tid,
		hash: conn.TetHash(tid),
	}, true
}

// FromEdge searches the incidence lists of u and w for any live tet
// containing both, and returns a cursor over that edge anchored at u.
func FromEdge(conn Connectivity, u, w int) (Tuple, bool) {
	for _, tid := range conn.VertexIncidence(u) {
		vids, ok := conn.TetVids(tid)
		if !ok {
			continue
		}
		lu, lw := localIndexOf(vids, u), localIndexOf(vids, w)
		if lu == -1 || lw == -1 {
			continue
		}
		eidx := edgeIndexFromLocalPair(lu, lw)
		var fidx int
		for f := range localFaces {
			if faceContainsEdge(f, eidx) {
				fidx = f
				break
			}
		}
		return Tuple{Vid: u, Eid: eidx, Fid: fidx, Tid: tid, hash: conn.TetHash(tid)}, true
	}
	return Tuple{}, false
}

// FromFace searches for a live tet realizing the face (a,b,c) and
// returns a cursor over it plus the face's content-addressed key (the
// sorted triple, since faces are not first-class cells here).
func FromFace(conn Connectivity, a, b, c int) (Tuple, [3]int, bool) {
	key := [3]int{a, b, c}
	sort.Ints(key[:])

	for _, tid := range conn.VertexIncidence(a) {
		vids, ok := conn.TetVids(tid)
		if !ok {
			continue
		}
		la, lb, lc := localIndexOf(vids, a), localIndexOf(vids, b), localIndexOf(vids, c)
		if la == -1 || lb == -1 || lc == -1 {
			continue
		}
		fidx := faceIndexFromLocalTriple(la, lb, lc)
		if fidx == -1 {
			continue
		}
		eidx := edgeIndexFromLocalPair(la, lb)
		return Tuple{Vid: a, Eid: eidx, Fid: fidx, Tid: tid, hash: conn.TetHash(tid)}, key, true
	}
	return Tuple{}, key, false
}

// OrientedTetVids returns t's owning tet's vertex quadruple, guaranteed
// to be positively oriented by the connectivity store's invariants.
func OrientedTetVids(conn Connectivity, t Tuple) ([4]int, bool) {
	return conn.TetVids(t.Tid)
}

// FaceVertices returns the three global vertex ids of the face t.Fid
// addresses within t's owning tet.
func FaceVertices(conn Connectivity, t Tuple) ([3]int, bool) {
	vids, ok := conn.TetVids(t.Tid)
	if !ok {
		return [3]int{}, false
	}
	f := localFaces[t.Fid]
	return [3]int{vids[f[0]], vids[f[1]], vids[f[2]]}, true
}

// EdgeVertices returns the two global vertex ids of the edge t.Eid
// addresses within t's owning tet.
func EdgeVertices(conn Connectivity, t Tuple) ([2]int, bool) {
	vids, ok := conn.TetVids(t.Tid)
	if !ok {
		return [2]int{}, false
	}
	e := localEdges[t.Eid]
	return [2]int{vids[e[0]], vids[e[1]]}, true
}
