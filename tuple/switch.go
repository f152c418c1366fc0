package tuple

// localEdges enumerates the six edges of a tet as pairs of LOCAL vertex
// indices (0..3). localFaces enumerates its four faces, face i being
// the face opposite local vertex i, as the other three local indices in
// ascending order.
var localEdges = [6][2]int{
	{1, 2}, // e0
	{0, 2}, // e1
	{0, 1}, // e2
	{0, 3}, // e3
	{1, 3}, // e4
	{2, 3}, // e5
}

var localFaces = [4][3]int{
	{1, 2, 3}, // f0, opposite v0
	{0, 2, 3}, // f1, opposite v1
	{0, 1, 3}, // f2, opposite v2
	{0, 1, 2}, // f3, opposite v3
}

func localIndexOf(vids [4]int, global int) int {
	for i, v := range vids {
		if v == global {
			return i
		}
	}
	return -1
}

func edgeIndexFromLocalPair(a, b int) int {
	if a > b {
		a, b = b, a
	}
	for i, e := range localEdges {
		if e[0] == a && e[1] == b {
			return i
		}
	}
	return -1
}

func faceIndexFromLocalTriple(a, b, c int) int {
	t := [3]int{a, b, c}
	// sort the 3-element triple in place (insertion sort, n=3)
	for i := 1; i < 3; i++ {
		for j := i; j > 0 && t[j-1] > t[j]; j-- {
			t[j-1], t[j] = t[j], t[j-1]
		}
	}
	for i, f := range localFaces {
		if f[0] == t[0] && f[1] == t[1] && f[2] == t[2] {
			return i
		}
	}
	return -1
}

func edgeContainsLocal(eidx, local int) bool {
	e := localEdges[eidx]
	return e[0] == local || e[1] == local
}

func faceContainsEdge(fidx, eidx int) bool {
	e := localEdges[eidx]
	f := localFaces[fidx]
	return containsLocal(f, e[0]) && containsLocal(f, e[1])
}

func containsLocal(f [3]int, v int) bool {
	return f[0] == v || f[1] == v || f[2] == v
}

// SwitchVertex returns the cursor that shares t's edge, face and tet but
// points at the edge's other endpoint.
func SwitchVertex(conn Connectivity, t Tuple) Tuple {
	vids, _ := conn.TetVids(t.Tid)
	e := localEdges[t.Eid]
	a, b := vids[e[0]], vids[e[1]]

	nt := t
	if t.Vid == a {
		nt.Vid = b
	} else {
		nt.Vid = a
	}
	return nt
}

// SwitchEdge returns the cursor that shares t's vertex, face and tet but
// points at the other edge of that face incident to the vertex.
func SwitchEdge(conn Connectivity, t Tuple) Tuple {
	vids, _ := conn.TetVids(t.Tid)
	vLocal := localIndexOf(vids, t.Vid)
	f := localFaces[t.Fid]

	var candidates []int
	pairs := [3][2]int{{f[0], f[1]}, {f[0], f[2]}, {f[1], f[2]}}
	for _, p := range pairs {
		if p[0] == vLocal || p[1] == vLocal {
			candidates = append(candidates, edgeIndexFromLocalPair(p[0], p[1]))
		}
	}

	nt := t
	for _, c := range candidates {
		if c != t.Eid {
			nt.Eid = c
			break
		}
	}
	return nt
}

// SwitchFace returns the cursor that shares t's vertex, edge and tet but
// points at the other of the tet's two faces containing that edge.
func SwitchFace(conn Connectivity, t Tuple) Tuple {
	nt := t
	for fidx := range localFaces {
		if fidx != t.Fid && faceContainsEdge(fidx, t.Eid) {
			nt.Fid = fidx
			break
		}
	}
	return nt
}

// SwitchTet returns the cursor on the other side of t's face, sharing
// the same vertex and edge (re-expressed in the neighbor tet's local
// numbering). ok is false when the face is on the boundary (at most one
// live tet contains it).
func SwitchTet(conn Connectivity, t Tuple) (Tuple, bool) {
	vids, ok := conn.TetVids(t.Tid)
	if !ok {
		return Tuple{}, false
	}
	fl := localFaces[t.Fid]
	faceGlobal := [3]int{vids[fl[0]], vids[fl[1]], vids[fl[2]]}

	candidates := intersectIncidence(conn, faceGlobal[0], faceGlobal[1], faceGlobal[2])

	newTid := -1
	for _, c := range candidates {
		if c != t.Tid {
			newTid = c
			break
		}
	}
	if newTid == -1 {
		return Tuple{}, false
	}

	newVids, ok := conn.TetVids(newTid)
	if !ok {
		return Tuple{}, false
	}
	e := localEdges[t.Eid]
	edgeGlobalA, edgeGlobalB := vids[e[0]], vids[e[1]]

	newEidx := edgeIndexFromLocalPair(
		localIndexOf(newVids, edgeGlobalA),
		localIndexOf(newVids, edgeGlobalB),
	)
	newFidx := faceIndexFromLocalTriple(
		localIndexOf(newVids, faceGlobal[0]),
		localIndexOf(newVids, faceGlobal[1]),
		localIndexOf(newVids, faceGlobal[2]),
	)

	return Tuple{
		Vid:  t.Vid,
		Eid:  newEidx,
		Fid:  newFidx,
		Tid:  newTid,
		hash: conn.TetHash(newTid),
	}, true
}

func intersectIncidence(conn Connectivity, a, b, c int) []int {
	ia := conn.VertexIncidence(a)
	set := make(map[int]int, len(ia))
	for _, t := range ia {
		set[t]++
	}
	ib := conn.VertexIncidence(b)
	for _, t := range ib {
		if _, ok := set[t]; ok {
			set[t]++
		}
	}
	ic := conn.VertexIncidence(c)
	var out []int
	for _, t := range ic {
		if set[t] == 2 {
			out = append(out, t)
		}
	}
	return out
}
