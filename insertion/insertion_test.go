package insertion_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tetmesh/insertion"
	"github.com/katalvlaran/tetmesh/meshcore"
	"github.com/katalvlaran/tetmesh/predicates"
	"github.com/stretchr/testify/require"
)

func newMeshFromPoints(t *testing.T, pts []predicates.Point, tets [][4]int) *meshcore.Mesh {
	t.Helper()
	m, err := meshcore.NewMesh(0, nil, predicates.Double{})
	require.NoError(t, err)
	for _, p := range pts {
		vid := m.AllocVertexSlot()
		m.SetVertexPos(vid, p)
	}
	for _, q := range tets {
		_, err := m.AllocTetSlot(q)
		require.NoError(t, err)
	}
	return m
}

func liveTetCount(m *meshcore.Mesh) int {
	n := 0
	m.ForEachTet(func(int) { n++ })
	return n
}

// Scenario 1: interior insertion into a single tet.
func TestInsertAllPoints_InteriorInsertion(t *testing.T) {
	m := newMeshFromPoints(t, []predicates.Point{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}, [][4]int{{0, 1, 2, 3}})

	hints := insertion.NewLinearScanHintSource(m)
	p := predicates.Point{X: 0.25, Y: 0.25, Z: 0.25}
	res, err := insertion.InsertAllPoints(context.Background(), m, hints, []predicates.Point{p})
	require.NoError(t, err)
	require.Equal(t, []insertion.DispatchKind{insertion.DispatchInterior}, res.Dispatches)
	require.Equal(t, 4, res.VertexIDs[0])
	require.Equal(t, 1, res.Stats.InteriorDivides)

	require.Equal(t, 4, liveTetCount(m))
	require.Equal(t, p, m.VertexAttr(4).PosF)
	require.NoError(t, m.CheckInvariants())
}

// Scenario 2: face insertion between two tets sharing a face.
func TestInsertAllPoints_FaceInsertion(t *testing.T) {
	m := newMeshFromPoints(t, []predicates.Point{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: 0, Y: 0, Z: -1},
	}, [][4]int{
		{0, 1, 2, 3},
		{0, 2, 1, 4},
	})

	hints := insertion.NewLinearScanHintSource(m)
	p := predicates.Point{X: 1.0 / 3, Y: 1.0 / 3, Z: 0}
	res, err := insertion.InsertAllPoints(context.Background(), m, hints, []predicates.Point{p})
	require.NoError(t, err)
	require.Equal(t, insertion.DispatchFace, res.Dispatches[0])
	require.Equal(t, 5, res.VertexIDs[0])
	require.Equal(t, 1, res.Stats.FaceSplits)

	require.Equal(t, 6, liveTetCount(m))
	require.Equal(t, p, m.VertexAttr(5).PosF)
	require.NoError(t, m.CheckInvariants())
}

// Scenario 3: edge insertion into a three-tet bipyramid.
func TestInsertAllPoints_EdgeInsertion(t *testing.T) {
	const s = 0.8660254037844387
	m := newMeshFromPoints(t, []predicates.Point{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: -0.5, Z: s},
		{X: 0, Y: -0.5, Z: -s},
	}, [][4]int{
		{0, 1, 2, 3},
		{0, 1, 3, 4},
		{0, 1, 4, 2},
	})

	hints := insertion.NewLinearScanHintSource(m)
	p := predicates.Point{X: 0.5, Y: 0, Z: 0}
	res, err := insertion.InsertAllPoints(context.Background(), m, hints, []predicates.Point{p})
	require.NoError(t, err)
	require.Equal(t, insertion.DispatchEdge, res.Dispatches[0])
	require.Equal(t, 5, res.VertexIDs[0])
	require.Equal(t, 1, res.Stats.EdgeSplits)

	require.Equal(t, 6, liveTetCount(m))
	require.Equal(t, p, m.VertexAttr(5).PosF)
	require.NoError(t, m.CheckInvariants())
}

// Scenario 4: vertex snap — inserting an existing vertex's exact
// position is a no-op that returns its id.
func TestInsertAllPoints_VertexSnap(t *testing.T) {
	m := newMeshFromPoints(t, []predicates.Point{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}, [][4]int{{0, 1, 2, 3}})

	hints := insertion.NewLinearScanHintSource(m)
	res, err := insertion.InsertAllPoints(context.Background(), m, hints, []predicates.Point{{X: 1, Y: 0, Z: 0}})
	require.NoError(t, err)
	require.Equal(t, insertion.DispatchVertex, res.Dispatches[0])
	require.Equal(t, 1, res.VertexIDs[0])
	require.Equal(t, 1, res.Stats.VertexHits)

	require.Equal(t, 1, liveTetCount(m))
	require.NoError(t, m.CheckInvariants())
}

// Scenario 5: stacked insertions — the second point must descend the
// split-history recorded by the first into the correct child tet.
func TestInsertAllPoints_StackedInsertions(t *testing.T) {
	m := newMeshFromPoints(t, []predicates.Point{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}, [][4]int{{0, 1, 2, 3}})

	hints := insertion.NewLinearScanHintSource(m)
	points := []predicates.Point{
		{X: 0.25, Y: 0.25, Z: 0.25},
		{X: 0.1, Y: 0.1, Z: 0.1},
	}
	res, err := insertion.InsertAllPoints(context.Background(), m, hints, points)
	require.NoError(t, err)
	require.Equal(t, insertion.DispatchInterior, res.Dispatches[0])
	require.Equal(t, insertion.DispatchInterior, res.Dispatches[1])

	require.Equal(t, 7, liveTetCount(m))
	require.Equal(t, points[1], m.VertexAttr(res.VertexIDs[1]).PosF)
	require.NoError(t, m.CheckInvariants())
}

// Scenario 6: bulk-insert 100 random interior points into a unit cube
// meshed with 6 tets and check the universal invariants hold throughout.
func TestInsertAllPoints_BulkRandomInteriorPoints(t *testing.T) {
	// Standard 6-tet decomposition of a cube, all sharing the main
	// diagonal 0-6. Vertices: 0=(0,0,0),1=(1,0,0),2=(1,1,0),3=(0,1,0),
	// 4=(0,0,1),5=(1,0,1),6=(1,1,1),7=(0,1,1).
	m2, err := meshcore.NewMesh(0, nil, predicates.Double{})
	require.NoError(t, err)
	cube := []predicates.Point{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
	for _, p := range cube {
		vid := m2.AllocVertexSlot()
		m2.SetVertexPos(vid, p)
	}
	oracle := predicates.Double{}
	orient := func(quad [4]int) [4]int {
		pts := [4]predicates.Point{}
		for i, v := range quad {
			pts[i] = m2.VertexAttr(v).PosF
		}
		if oracle.Orient3D(pts[0], pts[1], pts[2], pts[3]) <= 0 {
			quad[0], quad[1] = quad[1], quad[0]
		}
		return quad
	}
	tets := [][4]int{
		{0, 1, 2, 6},
		{0, 2, 3, 6},
		{0, 3, 7, 6},
		{0, 7, 4, 6},
		{0, 4, 5, 6},
		{0, 5, 1, 6},
	}
	for _, q := range tets {
		_, err := m2.AllocTetSlot(orient(q))
		require.NoError(t, err)
	}
	require.NoError(t, m2.CheckInvariants())

	rng := rand.New(rand.NewSource(1))
	points := make([]predicates.Point, 100)
	for i := range points {
		points[i] = predicates.Point{
			X: 0.05 + 0.9*rng.Float64(),
			Y: 0.05 + 0.9*rng.Float64(),
			Z: 0.05 + 0.9*rng.Float64(),
		}
	}

	hints := insertion.NewLinearScanHintSource(m2)
	_, err = insertion.InsertAllPoints(context.Background(), m2, hints, points)
	require.NoError(t, err)

	m2.ForEachTet(func(tid int) {
		vids, ok := m2.TetVids(tid)
		require.True(t, ok)
		pts := [4]predicates.Point{}
		for i, v := range vids {
			pts[i] = m2.VertexAttr(v).PosF
		}
		require.Equal(t, 1, oracle.Orient3D(pts[0], pts[1], pts[2], pts[3]), "tet %d not positively oriented", tid)
	})
	require.NoError(t, m2.CheckInvariants())
}
