package ops_test

import (
	"testing"

	"github.com/katalvlaran/tetmesh/meshcore"
	"github.com/katalvlaran/tetmesh/operation"
	"github.com/katalvlaran/tetmesh/ops"
	"github.com/katalvlaran/tetmesh/predicates"
	"github.com/katalvlaran/tetmesh/tuple"
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

func requirePositiveOrientation(t *testing.T, m *meshcore.Mesh, tid int) {
	t.Helper()
	vids, ok := m.TetVids(tid)
	require.True(t, ok)
	p := [4]predicates.Point{}
	for i, v := range vids {
		p[i] = m.VertexAttr(v).PosF
	}
	require.Equal(t, 1, predicates.Double{}.Orient3D(p[0], p[1], p[2], p[3]))
}

// Scenario 1: interior insertion into a single tet.
func TestDivideTet_InteriorInsertion(t *testing.T) {
	m := newMeshFromPoints(t, []predicates.Point{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}, [][4]int{{0, 1, 2, 3}})

	cur, ok := tuple.FromTet(m, 0)
	require.True(t, ok)

	op := ops.NewDivideTet(m, predicates.Point{X: 0.25, Y: 0.25, Z: 0.25})
	ok, cursors, err := operation.CustomizedOperation(m, op, cur)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, cursors, 4)

	require.True(t, m.IsTetRemoved(0))
	newVid := 4
	require.Equal(t, predicates.Point{X: 0.25, Y: 0.25, Z: 0.25}, m.VertexAttr(newVid).PosF)

	inc := m.VertexIncidence(newVid)
	require.Len(t, inc, 4)
	for _, tid := range inc {
		requirePositiveOrientation(t, m, tid)
	}
	require.NoError(t, m.CheckInvariants())
}

// Scenario 2: face insertion between two tets sharing a face.
func TestSplitFace_FaceInsertion(t *testing.T) {
	m := newMeshFromPoints(t, []predicates.Point{
		{X: 0, Y: 0, Z: 0}, // a = 0
		{X: 1, Y: 0, Z: 0}, // b = 1
		{X: 0, Y: 1, Z: 0}, // c = 2
		{X: 0, Y: 0, Z: 1}, // apex1 = 3
		{X: 0, Y: 0, Z: -1}, // apex2 = 4
	}, [][4]int{
		{0, 1, 2, 3}, // tet0: a,b,c,apex1 (positive)
		{0, 2, 1, 4}, // tet1: a,c,b,apex2 (positive)
	})

	cur, _, ok := tuple.FromFace(m, 0, 1, 2)
	require.True(t, ok)

	p := predicates.Point{X: 1.0 / 3, Y: 1.0 / 3, Z: 0}
	op := ops.NewSplitFace(m, p)
	ok, cursors, err := operation.CustomizedOperation(m, op, cur)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, cursors, 6)

	require.True(t, m.IsTetRemoved(0))
	require.True(t, m.IsTetRemoved(1))

	newVid := 5
	require.Equal(t, p, m.VertexAttr(newVid).PosF)
	inc := m.VertexIncidence(newVid)
	require.Len(t, inc, 6)
	for _, tid := range inc {
		requirePositiveOrientation(t, m, tid)
	}
	require.NoError(t, m.CheckInvariants())
}

// Scenario 3: edge insertion into a three-tet bipyramid around a shared
// edge.
func TestSplitEdge_EdgeInsertion(t *testing.T) {
	const s = 0.8660254037844387 // sqrt(3)/2
	m := newMeshFromPoints(t, []predicates.Point{
		{X: 0, Y: 0, Z: 0},     // u = 0
		{X: 1, Y: 0, Z: 0},     // w = 1
		{X: 0, Y: 1, Z: 0},     // p0 = 2
		{X: 0, Y: -0.5, Z: s},  // p1 = 3
		{X: 0, Y: -0.5, Z: -s}, // p2 = 4
	}, [][4]int{
		{0, 1, 2, 3}, // u,w,p0,p1
		{0, 1, 3, 4}, // u,w,p1,p2
		{0, 1, 4, 2}, // u,w,p2,p0
	})

	cur, ok := tuple.FromEdge(m, 0, 1)
	require.True(t, ok)

	op := ops.NewSplitEdge(m)
	ok, cursors, err := operation.CustomizedOperation(m, op, cur)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, cursors, 6)

	for _, tid := range []int{0, 1, 2} {
		require.True(t, m.IsTetRemoved(tid))
	}

	newVid := 5
	require.Equal(t, predicates.Point{X: 0.5, Y: 0, Z: 0}, m.VertexAttr(newVid).PosF)

	inc := m.VertexIncidence(newVid)
	require.Len(t, inc, 6)
	for _, tid := range inc {
		requirePositiveOrientation(t, m, tid)
	}

	// ux must be adjacent (share a live tet) with every prior ring vertex
	// plus both original endpoints.
	for _, v := range []int{0, 1, 2, 3, 4} {
		shared := false
		for _, tid := range m.VertexIncidence(v) {
			for _, other := range inc {
				if tid == other {
					shared = true
				}
			}
		}
		require.True(t, shared, "vertex %d not adjacent to new vertex", v)
	}
	require.NoError(t, m.CheckInvariants())
}

func TestQuality_RegularTetScoresOne(t *testing.T) {
	a := predicates.Point{X: 0, Y: 0, Z: 0}
	b := predicates.Point{X: 1, Y: 0, Z: 0}
	c := predicates.Point{X: 0.5, Y: 0.8660254037844387, Z: 0}
	d := predicates.Point{X: 0.5, Y: 0.28867513459481287, Z: 0.8164965809277260}

	q := ops.Quality(a, b, c, d)
	require.InDelta(t, 1.0, q, 1e-9)
}
