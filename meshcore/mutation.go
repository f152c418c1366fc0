package meshcore

import (
	"fmt"

	"github.com/katalvlaran/tetmesh/tuple"
)

// AllocVertexSlot appends one new vertex slot (growing the incidence
// table and the vertex attribute table) and returns its id. This is the
// only way request_vert_slots demand gets satisfied; the new slot starts
// with no incident tets and a zero-valued attribute record.
func (m *Mesh) AllocVertexSlot() int {
	m.muVert.Lock()
	defer m.muVert.Unlock()

	vid := len(m.vertices)
	m.vertices = append(m.vertices, vertexConnectivity{})
	m.vertexAttrs.Grow(vid + 1)
	return vid
}

// AllocTetSlot appends one new tet with vertex quadruple vids, checks
// that it is positively oriented under the mesh's oracle, wires up
// vertex incidence, and returns its id. Returns ErrNonPositiveOrientation
// (without mutating anything) if the orientation check fails.
func (m *Mesh) AllocTetSlot(vids [4]int) (int, error) {
	p0 := m.VertexAttr(vids[0]).PosF
	p1 := m.VertexAttr(vids[1]).PosF
	p2 := m.VertexAttr(vids[2]).PosF
	p3 := m.VertexAttr(vids[3]).PosF

	if m.oracle.Orient3D(p0, p1, p2, p3) <= 0 {
		return -1, ErrNonPositiveOrientation
	}

	m.muTet.Lock()
	tid := len(m.tets)
	m.tets = append(m.tets, tetConnectivity{vids: vids, hash: 1})
	m.tetAttrs.Grow(tid + 1)
	m.muTet.Unlock()

	for _, v := range vids {
		m.addTetToVertex(v, tid)
	}
	return tid, nil
}

// MarkTetRemoved tombstones tid, bumps its hash so outstanding cursors
// go stale, and removes it from every one of its vertices' incidence
// lists. If tid is out of range or already removed it does nothing;
// callers (package operation's driver) collect tid via RemovedTids on a
// still-live tet.
func (m *Mesh) MarkTetRemoved(tid int) {
	vids, ok := m.TetVids(tid)
	if !ok {
		return
	}

	m.muTet.Lock()
	m.tets[tid].removed = true
	m.tets[tid].hash++
	m.muTet.Unlock()

	for _, v := range vids {
		m.removeTetFromVertex(v, tid)
	}
}

func (m *Mesh) addTetToVertex(vid, tid int) {
	m.muVert.Lock()
	defer m.muVert.Unlock()
	m.vertices[vid].connTets = append(m.vertices[vid].connTets, tid)
}

func (m *Mesh) removeTetFromVertex(vid, tid int) {
	m.muVert.Lock()
	defer m.muVert.Unlock()
	list := m.vertices[vid].connTets
	for i, t := range list {
		if t == tid {
			list[i] = list[len(list)-1]
			m.vertices[vid].connTets = list[:len(list)-1]
			return
		}
	}
}

// TupleFromTetID returns the canonical cursor for tid, assuming tid is
// live. Exists so package operation's driver can materialize cursors for
// newly allocated tets via the mesh alone.
func (m *Mesh) TupleFromTetID(tid int) (tuple.Tuple, error) {
	t, ok := tuple.FromTet(m, tid)
	if !ok {
		return tuple.Tuple{}, fmt.Errorf("meshcore: tet %d: %w", tid, ErrTetRemoved)
	}
	return t, nil
}
