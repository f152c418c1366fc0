package meshcore

import "github.com/katalvlaran/tetmesh/attrs"

// ConsolidateHooks lets a caller relocate attribute data it keeps
// outside meshcore's own tables when a slot is relabeled during
// compaction. Either field may be nil.
type ConsolidateHooks struct {
	MoveVertexAttribute func(from, to int)
	MoveTetAttribute    func(from, to int)
}

// Consolidate compacts tombstoned tet slots and every vertex slot that
// is tombstoned or no longer referenced by a live tet, relabeling
// every surviving index to a contiguous range starting at 0. It is only
// safe to call between insertion passes, never mid-pass (package
// attrs's append-only growth contract assumes indices are stable for
// the duration of a pass).
func (m *Mesh) Consolidate(hooks ConsolidateHooks) error {
	if err := m.CheckInvariants(); err != nil {
		return err
	}

	m.muTet.Lock()
	m.muVert.Lock()
	defer m.muTet.Unlock()
	defer m.muVert.Unlock()

	oldToNewVid := make([]int, len(m.vertices))
	liveVerts := make([]int, 0, len(m.vertices))
	for old, vc := range m.vertices {
		if vc.removed || len(vc.connTets) == 0 {
			oldToNewVid[old] = -1
			continue
		}
		oldToNewVid[old] = len(liveVerts)
		liveVerts = append(liveVerts, old)
	}

	oldToNewTid := make([]int, len(m.tets))
	liveTets := make([]int, 0, len(m.tets))
	for old, tc := range m.tets {
		if tc.removed {
			oldToNewTid[old] = -1
			continue
		}
		oldToNewTid[old] = len(liveTets)
		liveTets = append(liveTets, old)
	}

	newVertices := make([]vertexConnectivity, len(liveVerts))
	for newID, old := range liveVerts {
		vc := m.vertices[old]
		remapped := make([]int, 0, len(vc.connTets))
		for _, t := range vc.connTets {
			if nt := oldToNewTid[t]; nt >= 0 {
				remapped = append(remapped, nt)
			}
		}
		newVertices[newID] = vertexConnectivity{connTets: remapped}
		m.vertexAttrs.MoveTo(old, newID)
		if hooks.MoveVertexAttribute != nil && newID != old {
			hooks.MoveVertexAttribute(old, newID)
		}
	}
	m.vertexAttrs.Truncate(len(liveVerts))
	m.vertices = newVertices

	newFaceAttrs := attrs.NewFaceTable[FaceAttributes]()
	newTets := make([]tetConnectivity, len(liveTets))
	for newID, old := range liveTets {
		tc := m.tets[old]
		var newVids [4]int
		for i, v := range tc.vids {
			newVids[i] = oldToNewVid[v]
		}
		newTets[newID] = tetConnectivity{vids: newVids, hash: 1}
		m.tetAttrs.MoveTo(old, newID)
		if hooks.MoveTetAttribute != nil && newID != old {
			hooks.MoveTetAttribute(old, newID)
		}

		for j := 0; j < 4; j++ {
			a, b, c := newVids[(j+1)%4], newVids[(j+2)%4], newVids[(j+3)%4]
			oa, ob, oc := tc.vids[(j+1)%4], tc.vids[(j+2)%4], tc.vids[(j+3)%4]
			if attr, ok := m.faceAttrs.Get(attrs.NewFaceKey(oa, ob, oc)); ok {
				newFaceAttrs.Set(attrs.NewFaceKey(a, b, c), attr)
			}
		}
	}
	m.tetAttrs.Truncate(len(liveTets))
	m.tets = newTets
	m.faceAttrs = newFaceAttrs

	return nil
}
