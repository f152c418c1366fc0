package meshcore

import "fmt"

// CheckInvariants verifies the properties that must hold on a quiescent
// mesh:
//
//  1. every live tet's vertex quadruple is positively oriented;
//  2. for every live tet T and v in T, v's incidence list contains T
//     exactly once;
//  3. for every vertex v, every tet id in its incidence list is live and
//     contains v.
//
// It never mutates the mesh; it is meant to be called between passes
// (e.g. from tests, or by a caller wrapping Consolidate).
func (m *Mesh) CheckInvariants() error {
	m.muTet.RLock()
	m.muVert.RLock()
	defer m.muTet.RUnlock()
	defer m.muVert.RUnlock()

	for tid, tc := range m.tets {
		if tc.removed {
			continue
		}
		if m.oracle.Orient3D(
			m.vertexAttrs.Get(tc.vids[0]).PosF,
			m.vertexAttrs.Get(tc.vids[1]).PosF,
			m.vertexAttrs.Get(tc.vids[2]).PosF,
			m.vertexAttrs.Get(tc.vids[3]).PosF,
		) <= 0 {
			return fmt.Errorf("meshcore: tet %d not positively oriented: %w", tid, ErrIncidenceCorruption)
		}

		for _, v := range tc.vids {
			count := 0
			for _, t := range m.vertices[v].connTets {
				if t == tid {
					count++
				}
			}
			if count != 1 {
				return fmt.Errorf(
					"meshcore: vertex %d incidence lists tet %d %d times, want 1: %w",
					v, tid, count, ErrIncidenceCorruption,
				)
			}
		}
	}

	for vid, vc := range m.vertices {
		if vc.removed {
			continue
		}
		for _, tid := range vc.connTets {
			if tid < 0 || tid >= len(m.tets) || m.tets[tid].removed {
				return fmt.Errorf("meshcore: vertex %d incidence references dead tet %d: %w", vid, tid, ErrIncidenceCorruption)
			}
			found := false
			for _, v := range m.tets[tid].vids {
				if v == vid {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("meshcore: vertex %d incidence references tet %d which does not contain it: %w", vid, tid, ErrIncidenceCorruption)
			}
		}
	}

	return nil
}
