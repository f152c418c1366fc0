package meshcore

import (
	"fmt"

	"github.com/katalvlaran/tetmesh/attrs"
	"github.com/katalvlaran/tetmesh/predicates"
)

// NewMesh bulk-loads a tetrahedral complex: numVertices vertex slots and
// one tet per entry of tets. Every tet's vertex quadruple must already
// be positively oriented under oracle; NewMesh does not reorder them
// (AllocTetSlot, used by local operations, applies the same check and
// likewise rejects rather than reorders).
func NewMesh(numVertices int, tets [][4]int, oracle predicates.Oracle) (*Mesh, error) {
	m := &Mesh{
		oracle:      oracle,
		vertices:    make([]vertexConnectivity, numVertices),
		tets:        make([]tetConnectivity, 0, len(tets)),
		vertexAttrs: attrs.NewIndexTable[VertexAttributes](numVertices),
		tetAttrs:    attrs.NewIndexTable[TetAttributes](len(tets)),
		faceAttrs:   attrs.NewFaceTable[FaceAttributes](),
	}

	for tid, vids := range tets {
		for _, v := range vids {
			if v < 0 || v >= numVertices {
				return nil, fmt.Errorf("meshcore: tet %d references vertex %d: %w", tid, v, ErrBadVertexID)
			}
		}
		// Invariant 1: every live tet's vertex quadruple has positive
		// orientation under the exact predicate.
		if oracle.Orient3D(
			m.vertexPoint(vids[0]),
			m.vertexPoint(vids[1]),
			m.vertexPoint(vids[2]),
			m.vertexPoint(vids[3]),
		) <= 0 {
			return nil, fmt.Errorf("meshcore: tet %d: %w", tid, ErrNonPositiveOrientation)
		}

		m.tets = append(m.tets, tetConnectivity{vids: vids, hash: 1})
		for _, v := range vids {
			m.vertices[v].connTets = append(m.vertices[v].connTets, tid)
		}
	}

	return m, nil
}

// vertexPoint is a convenience accessor used while validating orientation
// during NewMesh, before vertex positions have necessarily been
// installed by the caller; it returns the zero Point for any vertex
// whose attribute hasn't been set, which is fine since NewMesh only
// cares about the *shape* check, and callers are expected to call
// SetVertexPos for every input vertex before relying on orientation.
func (m *Mesh) vertexPoint(vid int) predicates.Point {
	return m.vertexAttrs.Get(vid).PosF
}

// VertCapacity returns the number of vertex slots, live or tombstoned.
func (m *Mesh) VertCapacity() int {
	m.muVert.RLock()
	defer m.muVert.RUnlock()
	return len(m.vertices)
}

// TetCapacity returns the number of tet slots, live or tombstoned.
func (m *Mesh) TetCapacity() int {
	m.muTet.RLock()
	defer m.muTet.RUnlock()
	return len(m.tets)
}

// TetVids implements tuple.Connectivity.
func (m *Mesh) TetVids(tid int) ([4]int, bool) {
	m.muTet.RLock()
	defer m.muTet.RUnlock()
	if tid < 0 || tid >= len(m.tets) || m.tets[tid].removed {
		return [4]int{}, false
	}
	return m.tets[tid].vids, true
}

// TetHash implements tuple.Connectivity.
func (m *Mesh) TetHash(tid int) uint64 {
	m.muTet.RLock()
	defer m.muTet.RUnlock()
	if tid < 0 || tid >= len(m.tets) {
		return 0
	}
	return m.tets[tid].hash
}

// VertexIncidence implements tuple.Connectivity.
func (m *Mesh) VertexIncidence(vid int) []int {
	m.muVert.RLock()
	defer m.muVert.RUnlock()
	if vid < 0 || vid >= len(m.vertices) {
		return nil
	}
	out := make([]int, len(m.vertices[vid].connTets))
	copy(out, m.vertices[vid].connTets)
	return out
}

// IsTetRemoved reports whether tid has been tombstoned (or is out of
// range).
func (m *Mesh) IsTetRemoved(tid int) bool {
	m.muTet.RLock()
	defer m.muTet.RUnlock()
	if tid < 0 || tid >= len(m.tets) {
		return true
	}
	return m.tets[tid].removed
}

// OrientedTetVids returns tid's positively oriented vertex quadruple.
func (m *Mesh) OrientedTetVids(tid int) ([4]int, bool) {
	return m.TetVids(tid)
}

// ForEachTet calls f once per live tet id, in increasing id order.
func (m *Mesh) ForEachTet(f func(tid int)) {
	m.muTet.RLock()
	ids := make([]int, 0, len(m.tets))
	for tid, tc := range m.tets {
		if !tc.removed {
			ids = append(ids, tid)
		}
	}
	m.muTet.RUnlock()
	for _, tid := range ids {
		f(tid)
	}
}

// ForEachVertex calls f once per live vertex id, in increasing id order.
func (m *Mesh) ForEachVertex(f func(vid int)) {
	m.muVert.RLock()
	ids := make([]int, 0, len(m.vertices))
	for vid, vc := range m.vertices {
		if !vc.removed {
			ids = append(ids, vid)
		}
	}
	m.muVert.RUnlock()
	for _, vid := range ids {
		f(vid)
	}
}

// VertexAttr returns a copy of vid's attribute record.
func (m *Mesh) VertexAttr(vid int) VertexAttributes {
	m.muVert.RLock()
	defer m.muVert.RUnlock()
	return m.vertexAttrs.Get(vid)
}

// SetVertexAttr overwrites vid's attribute record.
func (m *Mesh) SetVertexAttr(vid int, a VertexAttributes) {
	m.muVert.Lock()
	defer m.muVert.Unlock()
	m.vertexAttrs.Set(vid, a)
}

// SetVertexPos sets vid's double-precision position, matching the
// driver's final "set the new vertex's double position to p" step.
func (m *Mesh) SetVertexPos(vid int, p predicates.Point) {
	m.muVert.Lock()
	defer m.muVert.Unlock()
	a := m.vertexAttrs.Get(vid)
	a.PosF = p
	a.Rounded = true
	m.vertexAttrs.Set(vid, a)
}

// TetAttr returns a copy of tid's attribute record.
func (m *Mesh) TetAttr(tid int) TetAttributes {
	m.muTet.RLock()
	defer m.muTet.RUnlock()
	return m.tetAttrs.Get(tid)
}

// SetTetAttr overwrites tid's attribute record.
func (m *Mesh) SetTetAttr(tid int, a TetAttributes) {
	m.muTet.Lock()
	defer m.muTet.Unlock()
	m.tetAttrs.Set(tid, a)
}

// FaceAttr returns the attribute stored for the face keyed by the
// sorted triple (a,b,c), and whether one had been set.
func (m *Mesh) FaceAttr(a, b, c int) (FaceAttributes, bool) {
	m.muTet.RLock()
	defer m.muTet.RUnlock()
	return m.faceAttrs.Get(attrs.NewFaceKey(a, b, c))
}

// SetFaceAttr stores attr under the sorted triple (a,b,c).
func (m *Mesh) SetFaceAttr(a, b, c int, attr FaceAttributes) {
	m.muTet.Lock()
	defer m.muTet.Unlock()
	m.faceAttrs.Set(attrs.NewFaceKey(a, b, c), attr)
}

// DeleteFaceAttr removes any record stored under the sorted triple
// (a,b,c), so that the next query sees a fresh (zero) value.
func (m *Mesh) DeleteFaceAttr(a, b, c int) {
	m.muTet.Lock()
	defer m.muTet.Unlock()
	m.faceAttrs.Delete(attrs.NewFaceKey(a, b, c))
}

// PartitionLockOrder sorts the distinct partition ids touched by tids in
// ascending order: a future concurrent local-operation scheduler that
// acquires every touched partition id in ascending order avoids
// lock-cycle deadlocks. No locks are actually taken here — this mesh's
// operations run single-threaded — the helper exists so a caller
// computes the order the same way a parallel scheduler eventually would.
func (m *Mesh) PartitionLockOrder(tids []int) []int {
	seen := make(map[int]bool)
	var order []int
	for _, tid := range tids {
		vids, ok := m.TetVids(tid)
		if !ok {
			continue
		}
		for _, v := range vids {
			pid := m.VertexAttr(v).PartitionID
			if !seen[pid] {
				seen[pid] = true
				order = append(order, pid)
			}
		}
	}
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && order[j-1] > order[j]; j-- {
			order[j-1], order[j] = order[j], order[j-1]
		}
	}
	return order
}
